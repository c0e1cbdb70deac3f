package surge

import "strings"

// Outcome - оценочный эффект одного из первых трёх действий
type Outcome struct {
	Action                  string `json:"action"`
	EstimatedBedsFreed      int    `json:"estimated_beds_freed"`
	EstimatedOxygenIncrease int    `json:"estimated_oxygen_increase"`
	Impact                  string `json:"impact"`
}

const simulatedTop = 3

var impactLabels = map[Tier][simulatedTop]string{
	TierHigh:   {"Critical for surge capacity", "Significant resource boost", "Supports emergency response"},
	TierMedium: {"Moderate improvement", "Stabilizes capacity", "Maintains readiness"},
	TierLow:    {"Moderate improvement", "Stabilizes capacity", "Maintains readiness"},
}

// SimulateOutcomes оценивает освобождённые койки и прирост кислорода для первых трёх действий
func SimulateOutcomes(tier Tier, actions []Action) []Outcome {
	n := min(len(actions), simulatedTop)
	outcomes := make([]Outcome, 0, n)
	labels := impactLabels[tier]

	for i, action := range actions[:n] {
		o := Outcome{
			Action: action.Detail,
			Impact: labels[i],
		}
		amount := 0
		if action.Qty != nil {
			amount = *action.Qty
		}
		switch {
		case action.Type == ActionTransfer:
			o.EstimatedBedsFreed = amount
		case action.Type == ActionSupply && strings.Contains(strings.ToLower(action.Detail), "oxygen"):
			o.EstimatedOxygenIncrease = amount
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}
