package v1

import (
	"time"

	"github.com/shenikar/hospital_surge_system/internal/models"
	"github.com/shenikar/hospital_surge_system/internal/surge"
)

// DTOToSurgeSnapshot преобразует DTO в снимок движка
func DTOToSurgeSnapshot(dto SnapshotRequest) surge.Snapshot {
	return surge.Snapshot{
		HospitalID:          dto.HospitalID,
		BedsTotal:           deref(dto.BedsTotal),
		BedsFree:            deref(dto.BedsFree),
		DoctorsOnShift:      deref(dto.DoctorsOnShift),
		NursesOnShift:       deref(dto.NursesOnShift),
		OxygenCylinders:     deref(dto.OxygenCylinders),
		Ventilators:         deref(dto.Ventilators),
		IncomingEmergencies: deref(dto.IncomingEmergencies),
		AQI:                 dto.AQI,
		Festival:            dto.Festival,
		NewsSummary:         dto.NewsSummary,
	}
}

// deref возвращает 0 для nil; обязательность полей проверяет валидатор
func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// DTOToSnapshotModel преобразует DTO в модель для сохранения. Без timestamp используется now.
func DTOToSnapshotModel(dto SnapshotRequest, now time.Time) *models.Snapshot {
	ts := now.UTC()
	if dto.Timestamp != nil {
		ts = dto.Timestamp.UTC()
	}
	return &models.Snapshot{
		Timestamp: ts,
		Medicines: dto.Medicines,
		Snapshot:  DTOToSurgeSnapshot(dto),
	}
}

// DTOToQuickCheck преобразует DTO предшествующей быстрой проверки
func DTOToQuickCheck(dto *PriorQuickCheck) *surge.QuickCheckResult {
	if dto == nil {
		return nil
	}
	return &surge.QuickCheckResult{
		Risk:                   surge.Tier(dto.Risk),
		CapacityRatio:          dto.CapacityRatio,
		PredictedNeedEstimate:  dto.PredictedNeedEstimate,
		TriggerScore:           dto.TriggerScore,
		RecommendedQuickAction: dto.RecommendedQuickAction,
	}
}

// DTOToHospitalModel преобразует DTO регистрации в доменную модель
func DTOToHospitalModel(dto CreateHospitalRequest) *models.Hospital {
	return &models.Hospital{
		HospitalID:    dto.HospitalID,
		Name:          dto.Name,
		Location:      dto.Location,
		CapacityTotal: dto.CapacityTotal,
	}
}

func ModelToHospitalResponse(model *models.Hospital) *HospitalResponse {
	return &HospitalResponse{
		ID:            model.ID,
		HospitalID:    model.HospitalID,
		Name:          model.Name,
		Location:      model.Location,
		CapacityTotal: model.CapacityTotal,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ModelsToHospitalResponses(models []*models.Hospital) []*HospitalResponse {
	responses := make([]*HospitalResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToHospitalResponse(model)
	}
	return responses
}

// ModelToSnapshotResponse возвращает nil для nil модели
func ModelToSnapshotResponse(model *models.Snapshot) *SnapshotResponse {
	if model == nil {
		return nil
	}
	return &SnapshotResponse{
		ID:                  model.ID,
		HospitalID:          model.HospitalID,
		Timestamp:           model.Timestamp,
		BedsTotal:           model.BedsTotal,
		BedsFree:            model.BedsFree,
		DoctorsOnShift:      model.DoctorsOnShift,
		NursesOnShift:       model.NursesOnShift,
		OxygenCylinders:     model.OxygenCylinders,
		Ventilators:         model.Ventilators,
		IncomingEmergencies: model.IncomingEmergencies,
		AQI:                 model.AQI,
		Festival:            model.Festival,
		NewsSummary:         model.NewsSummary,
		Medicines:           model.Medicines,
		OccupancyRate:       model.OccupancyRate(),
	}
}

// ModelToAnalysisResponse возвращает nil для снимка без анализа
func ModelToAnalysisResponse(model *models.Analysis) *AnalysisResponse {
	if model == nil {
		return nil
	}
	return &AnalysisResponse{
		ID:                            model.ID,
		Risk:                          model.Risk,
		PredictedAdditionalPatients6h: model.PredictedAdditionalPatients6h,
		RecommendedActions:            model.RecommendedActions,
		AlertMessage:                  model.AlertMessage,
		Confidence:                    model.Confidence,
		CapacityRatio:                 model.CapacityRatio,
		TriggerScore:                  model.TriggerScore,
		Reasoning:                     model.Reasoning,
		SimulatedOutcomes:             model.SimulatedOutcomes,
		Strategy:                      model.Strategy,
		EngineVersion:                 model.EngineVersion,
		CreatedAt:                     model.CreatedAt,
	}
}

func ModelToHistoryEntryResponse(entry *models.HistoryEntry) *HistoryEntryResponse {
	return &HistoryEntryResponse{
		Snapshot: ModelToSnapshotResponse(entry.Snapshot),
		Analysis: ModelToAnalysisResponse(entry.Analysis),
	}
}

func ModelsToHistoryEntryResponses(entries []*models.HistoryEntry) []*HistoryEntryResponse {
	responses := make([]*HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ModelToHistoryEntryResponse(entry)
	}
	return responses
}

func ModelToSubmitResponse(entry *models.HistoryEntry) *SubmitSnapshotResponse {
	return &SubmitSnapshotResponse{
		SnapshotID: entry.Snapshot.ID,
		AnalysisID: entry.Analysis.ID,
		HospitalID: entry.Snapshot.HospitalID,
		Timestamp:  entry.Snapshot.Timestamp,
		Analysis:   ModelToAnalysisResponse(entry.Analysis),
	}
}

func ModelToQuickCheckResponse(outcome *models.QuickCheckOutcome) QuickCheckResponse {
	return QuickCheckResponse{
		QuickCheck: outcome.Quick,
		Escalated:  outcome.Escalated,
		Result:     outcome.Result,
	}
}

func ModelsToComparisonResponses(items []*models.HospitalComparison) []*HospitalComparisonResponse {
	responses := make([]*HospitalComparisonResponse, len(items))
	for i, item := range items {
		responses[i] = &HospitalComparisonResponse{
			Hospital:       ModelToHospitalResponse(item.Hospital),
			LatestSnapshot: ModelToSnapshotResponse(item.LatestSnapshot),
			LatestAnalysis: ModelToAnalysisResponse(item.LatestAnalysis),
			OccupancyRate:  item.OccupancyRate,
			StaffTotal:     item.StaffTotal,
		}
	}
	return responses
}
