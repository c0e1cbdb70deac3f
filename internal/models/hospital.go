package models

import (
	"time"

	"github.com/google/uuid"
)

type Hospital struct {
	ID            uuid.UUID `json:"id"`
	HospitalID    string    `json:"hospital_id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	CapacityTotal int       `json:"capacity_total"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HospitalComparison - последний снимок и прогноз стационара для сводной панели
type HospitalComparison struct {
	Hospital       *Hospital `json:"hospital"`
	LatestSnapshot *Snapshot `json:"latest_snapshot"`
	LatestAnalysis *Analysis `json:"latest_analysis"`
	OccupancyRate  float64   `json:"occupancy_rate"`
	StaffTotal     int       `json:"staff_total"`
}
