package v1

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/hospital_surge_system/internal/surge"
)

// SnapshotRequest DTO снимка ресурсов стационара
// @Description DTO снимка ресурсов стационара
type SnapshotRequest struct {
	HospitalID          string         `json:"hospital_id" validate:"required,max=64"`
	Timestamp           *time.Time     `json:"timestamp,omitempty"`
	BedsTotal           *int           `json:"beds_total" validate:"required,gte=0"`
	BedsFree            *int           `json:"beds_free" validate:"required,gte=0"`
	DoctorsOnShift      *int           `json:"doctors_on_shift" validate:"required,gte=0"`
	NursesOnShift       *int           `json:"nurses_on_shift" validate:"required,gte=0"`
	OxygenCylinders     *int           `json:"oxygen_cylinders" validate:"required,gte=0"`
	Ventilators         *int           `json:"ventilators" validate:"required,gte=0"`
	IncomingEmergencies *int           `json:"incoming_emergencies" validate:"required,gte=0"`
	AQI                 int            `json:"aqi" validate:"gte=0"`
	Festival            string         `json:"festival,omitempty" validate:"max=128"`
	NewsSummary         string         `json:"news_summary,omitempty" validate:"max=4096"`
	Medicines           map[string]int `json:"medicines,omitempty" validate:"omitempty,dive,keys,required,endkeys,gte=0"`
}

// snapshotRequestStructLevel: свободных коек не больше, чем всего
func snapshotRequestStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(SnapshotRequest)
	if req.BedsTotal == nil || req.BedsFree == nil {
		return
	}
	if *req.BedsFree > *req.BedsTotal {
		sl.ReportError(req.BedsFree, "BedsFree", "beds_free", "ltefield", "BedsTotal")
	}
}

// PriorQuickCheck DTO результата предшествующей быстрой проверки
// @Description DTO результата предшествующей быстрой проверки
type PriorQuickCheck struct {
	Risk                   string  `json:"risk" validate:"required,oneof=Low Medium High"`
	CapacityRatio          float64 `json:"capacity_ratio" validate:"gte=0,lte=100"`
	PredictedNeedEstimate  int     `json:"predicted_need_estimate" validate:"gte=0"`
	TriggerScore           int     `json:"trigger_score" validate:"gte=0"`
	RecommendedQuickAction string  `json:"recommended_quick_action,omitempty"`
}

// FullAnalysisRequest DTO для полного анализа без сохранения
// @Description DTO для полного анализа без сохранения
type FullAnalysisRequest struct {
	Snapshot   SnapshotRequest  `json:"snapshot"`
	QuickCheck *PriorQuickCheck `json:"quick_check,omitempty"`
}

// CreateHospitalRequest DTO для регистрации стационара
// @Description DTO для регистрации стационара
type CreateHospitalRequest struct {
	HospitalID    string `json:"hospital_id" validate:"required,max=64"`
	Name          string `json:"name" validate:"required,min=2,max=255"`
	Location      string `json:"location,omitempty" validate:"max=255"`
	CapacityTotal int    `json:"capacity_total" validate:"gte=0"`
}

// HospitalResponse DTO для ответа с информацией о стационаре
// @Description DTO для ответа с информацией о стационаре
type HospitalResponse struct {
	ID            uuid.UUID `json:"id"`
	HospitalID    string    `json:"hospital_id"`
	Name          string    `json:"name"`
	Location      string    `json:"location,omitempty"`
	CapacityTotal int       `json:"capacity_total"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SnapshotResponse DTO сохраненного снимка
// @Description DTO сохраненного снимка
type SnapshotResponse struct {
	ID                  int64          `json:"id"`
	HospitalID          string         `json:"hospital_id"`
	Timestamp           time.Time      `json:"timestamp"`
	BedsTotal           int            `json:"beds_total"`
	BedsFree            int            `json:"beds_free"`
	DoctorsOnShift      int            `json:"doctors_on_shift"`
	NursesOnShift       int            `json:"nurses_on_shift"`
	OxygenCylinders     int            `json:"oxygen_cylinders"`
	Ventilators         int            `json:"ventilators"`
	IncomingEmergencies int            `json:"incoming_emergencies"`
	AQI                 int            `json:"aqi"`
	Festival            string         `json:"festival,omitempty"`
	NewsSummary         string         `json:"news_summary,omitempty"`
	Medicines           map[string]int `json:"medicines,omitempty"`
	OccupancyRate       float64        `json:"occupancy_rate"`
}

// AnalysisResponse DTO сохраненного анализа
// @Description DTO сохраненного анализа
type AnalysisResponse struct {
	ID                            int64           `json:"id"`
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

// HistoryEntryResponse DTO снимка с анализом
// @Description DTO снимка с анализом; analysis может быть null
type HistoryEntryResponse struct {
	Snapshot *SnapshotResponse `json:"snapshot"`
	Analysis *AnalysisResponse `json:"analysis"`
}

// SubmitSnapshotResponse DTO ответа на отправку снимка
// @Description DTO ответа на отправку снимка
type SubmitSnapshotResponse struct {
	SnapshotID int64             `json:"snapshot_id"`
	AnalysisID int64             `json:"analysis_id"`
	HospitalID string            `json:"hospital_id"`
	Timestamp  time.Time         `json:"timestamp"`
	Analysis   *AnalysisResponse `json:"analysis"`
}

// QuickCheckResponse DTO быстрой проверки с результатом эскалации
// @Description DTO быстрой проверки с результатом эскалации
type QuickCheckResponse struct {
	QuickCheck surge.QuickCheckResult `json:"quick_check"`
	Escalated  bool                   `json:"escalated"`
	Result     surge.Result           `json:"result"`
}

// FullAnalysisResponse DTO полного анализа
// @Description DTO полного анализа
type FullAnalysisResponse struct {
	Source string       `json:"source"`
	Result surge.Result `json:"result"`
}

// DemoSnapshotResponse DTO демо-снимка с анализом
// @Description DTO демо-снимка с анализом
type DemoSnapshotResponse struct {
	Snapshot surge.Snapshot `json:"snapshot"`
	QuickCheckResponse
}

// HospitalComparisonResponse DTO строки сравнения стационаров
// @Description DTO строки сравнения стационаров
type HospitalComparisonResponse struct {
	Hospital       *HospitalResponse `json:"hospital"`
	LatestSnapshot *SnapshotResponse `json:"latest_snapshot"`
	LatestAnalysis *AnalysisResponse `json:"latest_analysis"`
	OccupancyRate  float64           `json:"occupancy_rate"`
	StaffTotal     int               `json:"staff_total"`
}
