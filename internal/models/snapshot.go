package models

import (
	"math"
	"time"

	"github.com/shenikar/hospital_surge_system/internal/surge"
)

// Snapshot представляет сохраненный снимок ресурсов стационара. После создания не изменяется.
type Snapshot struct {
	ID        int64          `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Medicines map[string]int `json:"medicines,omitempty"`
	surge.Snapshot
}

// Analysis - сохраненный результат движка для снимка
type Analysis struct {
	ID                            int64           `json:"id"`
	SnapshotID                    int64           `json:"snapshot_id"`
	Risk                          surge.Tier      `json:"risk"`
	PredictedAdditionalPatients6h int             `json:"predicted_additional_patients_6h"`
	RecommendedActions            []surge.Action  `json:"recommended_actions"`
	AlertMessage                  string          `json:"alert_message"`
	Confidence                    float64         `json:"confidence"`
	CapacityRatio                 float64         `json:"capacity_ratio"`
	TriggerScore                  int             `json:"trigger_score"`
	Reasoning                     string          `json:"reasoning"`
	SimulatedOutcomes             []surge.Outcome `json:"simulated_outcomes"`
	Strategy                      string          `json:"strategy"`
	EngineVersion                 string          `json:"engine_version"`
	CreatedAt                     time.Time       `json:"created_at"`
}

// NewAnalysis переносит результат движка в запись для хранения
func NewAnalysis(res surge.Result, strategy string) *Analysis {
	return &Analysis{
		Risk:                          res.Risk,
		PredictedAdditionalPatients6h: res.PredictedAdditionalPatients6h,
		RecommendedActions:            res.RecommendedActions,
		AlertMessage:                  res.AlertMessage,
		Confidence:                    res.Confidence,
		CapacityRatio:                 res.CapacityRatio,
		TriggerScore:                  res.TriggerScore,
		Reasoning:                     res.Reasoning,
		SimulatedOutcomes:             res.SimulatedOutcomes,
		Strategy:                      strategy,
		EngineVersion:                 surge.Version,
	}
}

// HistoryEntry - снимок вместе с анализом (анализ может отсутствовать)
type HistoryEntry struct {
	Snapshot *Snapshot `json:"snapshot"`
	Analysis *Analysis `json:"analysis"`
}

// TrendPoint - точка графика исторических трендов
type TrendPoint struct {
	Timestamp                     time.Time   `json:"timestamp"`
	SnapshotID                    int64       `json:"snapshot_id"`
	AnalysisID                    *int64      `json:"analysis_id"`
	Risk                          *surge.Tier `json:"risk"`
	PredictedAdditionalPatients6h *int        `json:"predicted_additional_patients_6h"`
	Confidence                    *float64    `json:"confidence"`
	OccupancyRate                 float64     `json:"occupancy_rate"`
	StaffOnShift                  int         `json:"staff_on_shift"`
	BedsTotal                     int         `json:"beds_total"`
	BedsFree                      int         `json:"beds_free"`
	OxygenCylinders               int         `json:"oxygen_cylinders"`
	Ventilators                   int         `json:"ventilators"`
	IncomingEmergencies           int         `json:"incoming_emergencies"`
	AQI                           int         `json:"aqi"`
	Festival                      string      `json:"festival"`
}

// TrendReport - тренды стационара за период
type TrendReport struct {
	HospitalID string        `json:"hospital_id"`
	PeriodDays int           `json:"period_days"`
	DataPoints []*TrendPoint `json:"data_points"`
}

// OccupancyRate возвращает процент занятых коек с точностью до десятых
func (s *Snapshot) OccupancyRate() float64 {
	if s.BedsTotal <= 0 {
		return 0
	}
	rate := 100 * float64(s.BedsTotal-s.BedsFree) / float64(s.BedsTotal)
	return math.Round(rate*10) / 10
}

// StaffTotal - врачи и медсестры на смене
func (s *Snapshot) StaffTotal() int {
	return s.DoctorsOnShift + s.NursesOnShift
}

// HistoryFilter - параметры выборки истории снимков стационара
type HistoryFilter struct {
	HospitalID string
	From       *time.Time
	To         *time.Time
	Ascending  bool
}

// QuickCheckOutcome - быстрая проверка и результат эскалации
type QuickCheckOutcome struct {
	Quick     surge.QuickCheckResult `json:"quick_check"`
	Result    surge.Result           `json:"result"`
	Escalated bool                   `json:"escalated"`
}
