package surge

import (
	"math"
	"strings"
)

// Tier - уровень риска
type Tier string

const (
	TierLow    Tier = "Low"
	TierMedium Tier = "Medium"
	TierHigh   Tier = "High"
)

// Ключевые слова новостей, указывающие на массовое поступление пострадавших
var incidentKeywords = []string{"accident", "mass casualty", "collapse", "disaster"}

const (
	aqiThreshold       = 200
	emergencyThreshold = 5
	massCasualtyWeight = 3
)

// surgeMultipliers - множитель прогноза в десятых долях по trigger score (0, 1, 2, >=3)
var surgeMultipliers = [...]int{10, 15, 20, 28}

// assessment - промежуточные величины, общие для QuickCheck и FullAnalysis
type assessment struct {
	snapshot      Snapshot
	bedsFree      int
	denominator   int
	capacityRatio float64
	triggerScore  int
	massCasualty  bool
	predicted     int
}

func assess(s Snapshot) assessment {
	a := assessment{
		snapshot:    s,
		bedsFree:    s.BedsFree,
		denominator: max(1, s.BedsTotal),
	}
	if a.bedsFree > s.BedsTotal {
		a.bedsFree = s.BedsTotal
	}
	if a.bedsFree < 0 {
		a.bedsFree = 0
	}
	a.capacityRatio = 100 * float64(a.bedsFree) / float64(a.denominator)

	a.massCasualty = matchesIncident(s.NewsSummary)
	a.triggerScore = triggerScore(s, a.massCasualty)

	baseline := ceilDiv(max(0, s.BedsTotal), 10)
	a.predicted = ceilDiv(baseline*surgeMultipliers[min(a.triggerScore, len(surgeMultipliers)-1)], 10)
	return a
}

func matchesIncident(news string) bool {
	text := strings.ToLower(news)
	for _, keyword := range incidentKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func triggerScore(s Snapshot, massCasualty bool) int {
	score := 0
	if s.AQI >= aqiThreshold {
		score += 2
	}
	if s.hasFestival() {
		score++
	}
	if massCasualty {
		score += massCasualtyWeight
	}
	if s.IncomingEmergencies >= emergencyThreshold {
		score++
	}
	return score
}

// capacityBelow сравнивает capacity ratio с порогом в процентах без потери точности
func (a assessment) capacityBelow(percent int) bool {
	return 100*a.bedsFree < percent*a.denominator
}

// classify - таблица порогов; первый совпавший уровень побеждает
func (a assessment) classify() Tier {
	oxygen := a.snapshot.OxygenCylinders
	switch {
	case a.capacityBelow(10),
		oxygen < max(5, a.predicted/2),
		a.triggerScore >= massCasualtyWeight,
		a.massCasualty:
		return TierHigh
	case a.capacityBelow(30),
		oxygen < a.predicted,
		a.triggerScore >= 2:
		return TierMedium
	default:
		return TierLow
	}
}

func (a assessment) roundedRatio() int {
	return int(math.Round(a.capacityRatio))
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
