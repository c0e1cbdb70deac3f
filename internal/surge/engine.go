// Package surge реализует детерминированный движок оценки риска наплыва пациентов.
// Движок не выполняет ввод-вывод, не хранит состояние и безопасен для конкурентного вызова.
package surge

import (
	"fmt"
	"math"
	"strings"
)

// Version меняется при любом изменении таблицы порогов
const Version = "1.0.0"

// Result - полный результат анализа снимка
type Result struct {
	Risk                          Tier      `json:"risk"`
	PredictedAdditionalPatients6h int       `json:"predicted_additional_patients_6h"`
	RecommendedActions            []Action  `json:"recommended_actions"`
	AlertMessage                  string    `json:"alert_message"`
	Confidence                    float64   `json:"confidence"`
	Reasoning                     string    `json:"reasoning"`
	CapacityRatio                 float64   `json:"capacity_ratio"`
	TriggerScore                  int       `json:"trigger_score"`
	SimulatedOutcomes             []Outcome `json:"simulated_outcomes"`
}

// QuickCheckResult - результат быстрой предварительной проверки
type QuickCheckResult struct {
	Risk                   Tier    `json:"risk"`
	CapacityRatio          float64 `json:"capacity_ratio"`
	PredictedNeedEstimate  int     `json:"predicted_need_estimate"`
	TriggerScore           int     `json:"trigger_score"`
	RecommendedQuickAction string  `json:"recommended_quick_action"`
}

// NeedsEscalation сообщает, нужен ли полный анализ после быстрой проверки
func (q QuickCheckResult) NeedsEscalation() bool {
	return q.Risk != TierLow || q.TriggerScore >= massCasualtyWeight
}

var quickActions = map[Tier]string{
	TierHigh:   "URGENT: Activate emergency protocols. Contact nearby hospitals for patient transfer.",
	TierMedium: "CAUTION: Monitor situation closely. Review supply inventory.",
	TierLow:    "Normal operations. Continue routine monitoring.",
}

// QuickCheck использует ту же таблицу порогов, что и FullAnalysis, без построения плана действий
func QuickCheck(s Snapshot) QuickCheckResult {
	a := assess(s)
	tier := a.classify()
	return QuickCheckResult{
		Risk:                   tier,
		CapacityRatio:          round2(a.capacityRatio),
		PredictedNeedEstimate:  a.predicted,
		TriggerScore:           a.triggerScore,
		RecommendedQuickAction: quickActions[tier],
	}
}

// FullAnalysis выполняет все шаги оценки. prior - необязательный результат предшествующей быстрой проверки.
func FullAnalysis(s Snapshot, prior *QuickCheckResult) Result {
	a := assess(s)
	tier := a.classify()
	actions := recommend(a, tier)

	reasoning := explain(a, tier)
	if prior != nil {
		reasoning += fmt.Sprintf(" Escalated from quick check (%s, trigger score %d).", prior.Risk, prior.TriggerScore)
	}

	return Result{
		Risk:                          tier,
		PredictedAdditionalPatients6h: a.predicted,
		RecommendedActions:            actions,
		AlertMessage:                  alertMessage(tier, a.predicted, a.roundedRatio()),
		Confidence:                    confidence(tier, a.triggerScore),
		Reasoning:                     reasoning,
		CapacityRatio:                 round2(a.capacityRatio),
		TriggerScore:                  a.triggerScore,
		SimulatedOutcomes:             SimulateOutcomes(tier, actions),
	}
}

// Escalate запускает быструю проверку и при необходимости полный анализ.
// Для спокойных снимков минимальный результат собирается из чисел быстрой проверки.
func Escalate(s Snapshot) (QuickCheckResult, Result) {
	qc := QuickCheck(s)
	if qc.NeedsEscalation() {
		return qc, FullAnalysis(s, &qc)
	}

	actions := (&plan{actions: []Action{{
		Type:    ActionAdvisory,
		Detail:  detailContinueMonitor,
		Urgency: UrgencyLow,
	}}}).ranked()

	return qc, Result{
		Risk:                          TierLow,
		PredictedAdditionalPatients6h: qc.PredictedNeedEstimate,
		RecommendedActions:            actions,
		AlertMessage:                  alertMessage(TierLow, qc.PredictedNeedEstimate, int(math.Round(qc.CapacityRatio))),
		Confidence:                    confidence(TierLow, qc.TriggerScore),
		Reasoning: fmt.Sprintf("Quick check resolved Low risk (capacity %.2f%%, trigger score %d); full analysis not required.",
			qc.CapacityRatio, qc.TriggerScore),
		CapacityRatio:     qc.CapacityRatio,
		TriggerScore:      qc.TriggerScore,
		SimulatedOutcomes: SimulateOutcomes(TierLow, actions),
	}
}

func alertMessage(tier Tier, predicted, ratio int) string {
	switch tier {
	case TierHigh:
		return fmt.Sprintf("URGENT: %d additional patients predicted. Capacity at %d%%. Immediate action required: activate emergency protocols and coordinate transfers.", predicted, ratio)
	case TierMedium:
		return fmt.Sprintf("CAUTION: %d patients expected. Capacity %d%%. Monitor closely and ensure staff standby readiness.", predicted, ratio)
	default:
		return fmt.Sprintf("Normal operations. Predicted %d patients. Capacity comfortable at %d%%. Continue routine monitoring.", predicted, ratio)
	}
}

// confidence - статичная эвристика доверия, а не откалиброванная вероятность
func confidence(tier Tier, trigger int) float64 {
	switch {
	case tier == TierHigh && trigger >= massCasualtyWeight:
		return 0.92
	case tier == TierMedium:
		return 0.80
	case tier == TierLow:
		return 0.88
	default:
		return 0.85
	}
}

func explain(a assessment, tier Tier) string {
	s := a.snapshot

	festival := "No"
	if s.hasFestival() {
		festival = "Yes"
	}
	news := "Normal"
	if a.massCasualty {
		news = "Critical incident"
	}

	var capacity string
	switch {
	case a.capacityBelow(15):
		capacity = "critical capacity"
	case a.capacityBelow(30):
		capacity = "limited capacity"
	default:
		capacity = "sufficient capacity"
	}

	var external string
	switch {
	case a.triggerScore >= 3:
		external = "high"
	case a.triggerScore >= 2:
		external = "moderate"
	default:
		external = "low"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analysis based on %d total beds with %d available (%d%% free). ", s.BedsTotal, a.bedsFree, a.roundedRatio())
	fmt.Fprintf(&b, "Trigger score: %d (AQI: %d, Festival: %s, News: %s). ", a.triggerScore, s.AQI, festival, news)
	fmt.Fprintf(&b, "Staff: %d doctors, %d nurses. Resources: %d O2, %d vents. ", s.DoctorsOnShift, s.NursesOnShift, s.OxygenCylinders, s.Ventilators)
	fmt.Fprintf(&b, "Risk determined as %s due to %s and %s external risk factors.", tier, capacity, external)
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
