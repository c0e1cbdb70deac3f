package surge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSnapshot оборачивается всеми ошибками валидации снимка
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot - состояние одного стационара на момент отправки
type Snapshot struct {
	HospitalID          string `json:"hospital_id"`
	BedsTotal           int    `json:"beds_total"`
	BedsFree            int    `json:"beds_free"`
	DoctorsOnShift      int    `json:"doctors_on_shift"`
	NursesOnShift       int    `json:"nurses_on_shift"`
	OxygenCylinders     int    `json:"oxygen_cylinders"`
	Ventilators         int    `json:"ventilators"`
	IncomingEmergencies int    `json:"incoming_emergencies"`
	AQI                 int    `json:"aqi"`
	Festival            string `json:"festival"`
	NewsSummary         string `json:"news_summary"`
}

// Validate проверяет инварианты снимка до вызова движка
func Validate(s Snapshot) error {
	if strings.TrimSpace(s.HospitalID) == "" {
		return fmt.Errorf("%w: hospital_id is required", ErrInvalidSnapshot)
	}

	counts := []struct {
		name  string
		value int
	}{
		{"beds_total", s.BedsTotal},
		{"beds_free", s.BedsFree},
		{"doctors_on_shift", s.DoctorsOnShift},
		{"nurses_on_shift", s.NursesOnShift},
		{"oxygen_cylinders", s.OxygenCylinders},
		{"ventilators", s.Ventilators},
		{"incoming_emergencies", s.IncomingEmergencies},
		{"aqi", s.AQI},
	}
	for _, c := range counts {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidSnapshot, c.name, c.value)
		}
	}

	if s.BedsFree > s.BedsTotal {
		return fmt.Errorf("%w: beds_free (%d) exceeds beds_total (%d)", ErrInvalidSnapshot, s.BedsFree, s.BedsTotal)
	}
	return nil
}

// hasFestival: пустая метка и "None" означают отсутствие события
func (s Snapshot) hasFestival() bool {
	label := strings.TrimSpace(s.Festival)
	return label != "" && !strings.EqualFold(label, "none")
}

// staff возвращает общее число врачей и медсестёр на смене
func (s Snapshot) staff() int {
	return s.DoctorsOnShift + s.NursesOnShift
}
