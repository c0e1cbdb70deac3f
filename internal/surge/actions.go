package surge

import (
	"fmt"
	"sort"
)

// ActionType - категория рекомендованного действия
type ActionType string

const (
	ActionStaff    ActionType = "staff"
	ActionSupply   ActionType = "supply"
	ActionTransfer ActionType = "transfer"
	ActionAdvisory ActionType = "advisory"
)

// Urgency - срочность действия
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) rank() int {
	switch u {
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	default:
		return 1
	}
}

// Action - один шаг плана реагирования
type Action struct {
	Step     int        `json:"step"`
	Type     ActionType `json:"type"`
	Detail   string     `json:"detail"`
	Qty      *int       `json:"qty"`
	Urgency  Urgency    `json:"urgency"`
	ETAHours *float64   `json:"eta_hours"`
}

// Тексты и ETA действий - статичные константы политики
const (
	detailMassCasualty     = "Activate Mass Casualty Incident (MCI) protocols immediately"
	detailTransfer         = "Initiate patient transfer to nearby hospitals"
	detailOxygenEmergency  = "Emergency oxygen cylinder delivery"
	detailStaffRecall      = "Recall off-duty staff and request emergency staffing support"
	detailVentilators      = "Request ventilator equipment from regional medical center"
	detailNotifyAdmin      = "Notify hospital administration and regional health authority"
	detailStandby          = "Place staff on standby and prepare emergency response plans"
	detailOxygenReplenish  = "Schedule oxygen cylinder replenishment"
	detailExtraShifts      = "Schedule additional nursing shifts for coverage"
	detailRoutineReview    = "Review and update emergency contact list and supply inventory"
	detailContinueMonitor  = "Continue routine capacity monitoring and maintain current operations"
	detailRoutineOxygenBuy = "Schedule routine oxygen inventory replenishment"
)

type plan struct {
	actions []Action
}

func (p *plan) add(kind ActionType, detail string, qty *int, urgency Urgency, eta *float64) {
	p.actions = append(p.actions, Action{
		Type:     kind,
		Detail:   detail,
		Qty:      qty,
		Urgency:  urgency,
		ETAHours: eta,
	})
}

// ranked сортирует по убыванию срочности с сохранением порядка добавления и нумерует шаги
func (p *plan) ranked() []Action {
	sort.SliceStable(p.actions, func(i, j int) bool {
		return p.actions[i].Urgency.rank() > p.actions[j].Urgency.rank()
	})
	for i := range p.actions {
		p.actions[i].Step = i + 1
	}
	return p.actions
}

func recommend(a assessment, tier Tier) []Action {
	s := a.snapshot
	p := &plan{}

	switch tier {
	case TierHigh:
		if a.massCasualty {
			p.add(ActionAdvisory, detailMassCasualty, nil, UrgencyHigh, hours(0.25))
		}
		// (15 - ratio)/100 * beds_total в целых числах; при beds_total=0 переводить некого
		if transfer := ceilDiv(15*s.BedsTotal-100*a.bedsFree, 100); a.capacityBelow(15) && transfer > 0 {
			p.add(ActionTransfer, detailTransfer, qty(transfer), UrgencyHigh, hours(1.0))
		}
		if 2*s.OxygenCylinders < a.predicted {
			p.add(ActionSupply, detailOxygenEmergency, qty(ceilDiv(a.predicted-2*s.OxygenCylinders, 2)), UrgencyHigh, hours(2.0))
		}
		if required := ceilDiv(15*s.BedsTotal, 100); s.staff() < required {
			p.add(ActionStaff, detailStaffRecall, qty(required-s.staff()), UrgencyHigh, hours(1.5))
		}
		if s.Ventilators < 5 {
			p.add(ActionSupply, detailVentilators, qty(max(5-s.Ventilators, 3)), UrgencyHigh, hours(3.0))
		}
		p.add(ActionAdvisory, detailNotifyAdmin, nil, UrgencyHigh, hours(0.5))

	case TierMedium:
		if a.capacityBelow(30) {
			p.add(ActionAdvisory, detailStandby, nil, UrgencyMedium, hours(0.5))
		}
		if s.OxygenCylinders < a.predicted {
			p.add(ActionSupply, detailOxygenReplenish, qty(a.predicted-s.OxygenCylinders+5), UrgencyMedium, hours(4.0))
		}
		if 10*s.staff() < s.BedsTotal {
			p.add(ActionStaff, detailExtraShifts, qty(ceilDiv(s.BedsTotal-10*s.staff(), 10)), UrgencyMedium, hours(6.0))
		}
		p.add(ActionAdvisory, detailRoutineReview, nil, UrgencyMedium, hours(1.0))

	case TierLow:
		p.add(ActionAdvisory, detailContinueMonitor, nil, UrgencyLow, nil)
		if 5*s.OxygenCylinders < s.BedsTotal {
			// пополнение до 25% от числа коек
			p.add(ActionSupply, detailRoutineOxygenBuy, qty(ceilDiv(s.BedsTotal-4*s.OxygenCylinders, 4)), UrgencyLow, hours(24.0))
		}

	default:
		panic(fmt.Sprintf("surge: classification produced unknown tier %q", tier))
	}

	return p.ranked()
}

func qty(n int) *int {
	return &n
}

func hours(h float64) *float64 {
	return &h
}
