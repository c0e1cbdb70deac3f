package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/hospital_surge_system/internal/config"
	"github.com/shenikar/hospital_surge_system/internal/models"
	"github.com/shenikar/hospital_surge_system/internal/service"
	"github.com/shenikar/hospital_surge_system/internal/surge"
	"github.com/shenikar/hospital_surge_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	snapshotService service.SnapshotService
	hospitalService service.HospitalService
	alerts          webhook.AlertFeed
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
	now             func() time.Time
}

func NewHandler(
	snapshotService service.SnapshotService,
	hospitalService service.HospitalService,
	alerts webhook.AlertFeed,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		snapshotService: snapshotService,
		hospitalService: hospitalService,
		alerts:          alerts,
		logger:          logger,
		validate:        newValidator(),
		cfg:             cfg,
		now:             time.Now,
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(snapshotRequestStructLevel, SnapshotRequest{})
	return v
}

// bindAndValidate разбирает тело запроса и проверяет теги validate; при ошибке ответ уже записан
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибки сервиса в HTTP статусы
func respondError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, surge.ErrInvalidSnapshot), errors.Is(err, service.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, service.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Register a hospital
// @Description Register a hospital in the registry. Requires API key or bearer token.
// @Tags Hospitals
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Security BearerAuth
// @Param hospital body CreateHospitalRequest true "Hospital registration request"
// @Success 201 {object} HospitalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Hospital already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals [post]
func (h *Handler) createHospital(c *gin.Context) {
	var input CreateHospitalRequest
	log := h.logger.WithField("method", "createHospital")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToHospitalModel(input)
	if err := h.hospitalService.CreateHospital(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create hospital in service")
		respondError(c, err, "hospital not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToHospitalResponse(model))
}

// @Summary List hospitals
// @Description List registered hospitals ordered by name. Requires API key or bearer token.
// @Tags Hospitals
// @Produce json
// @Security ApiKeyAuth
// @Security BearerAuth
// @Success 200 {array} HospitalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals [get]
func (h *Handler) listHospitals(c *gin.Context) {
	hospitals, err := h.hospitalService.ListHospitals(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "listHospitals").WithError(err).Error("Failed to list hospitals from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToHospitalResponses(hospitals))
}

// @Summary Get a hospital
// @Description Get a registered hospital by its external ID. Requires API key or bearer token.
// @Tags Hospitals
// @Produce json
// @Security ApiKeyAuth
// @Security BearerAuth
// @Param hospital_id path string true "Hospital ID"
// @Success 200 {object} HospitalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/{hospital_id} [get]
func (h *Handler) getHospital(c *gin.Context) {
	hospitalID := c.Param("hospital_id")
	log := h.logger.WithFields(logrus.Fields{"method": "getHospital", "hospital_id": hospitalID})

	hospital, err := h.hospitalService.GetHospital(c.Request.Context(), hospitalID)
	if err != nil {
		log.WithError(err).Warn("Failed to get hospital from service")
		respondError(c, err, "hospital not found")
		return
	}
	c.JSON(http.StatusOK, ModelToHospitalResponse(hospital))
}

// @Summary Compare hospitals
// @Description Latest snapshot and prediction for every registered hospital. Requires API key or bearer token.
// @Tags Hospitals
// @Produce json
// @Security ApiKeyAuth
// @Security BearerAuth
// @Success 200 {array} HospitalComparisonResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/comparison [get]
func (h *Handler) compareHospitals(c *gin.Context) {
	comparison, err := h.hospitalService.Compare(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "compareHospitals").WithError(err).Error("Failed to compare hospitals")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToComparisonResponses(comparison))
}

// @Summary Historical trends
// @Description Occupancy, staffing and risk over the last N days (default 7, capped by HISTORY_MAX_DAYS).
// @Tags Hospitals
// @Produce json
// @Security ApiKeyAuth
// @Security BearerAuth
// @Param hospital_id path string true "Hospital ID"
// @Param days query int false "Period in days" default(7)
// @Success 200 {object} models.TrendReport
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/{hospital_id}/trends [get]
func (h *Handler) getTrends(c *gin.Context) {
	hospitalID := c.Param("hospital_id")
	log := h.logger.WithField("method", "getTrends").WithField("hospital_id", hospitalID)

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	report, err := h.snapshotService.Trends(c.Request.Context(), hospitalID, days)
	if err != nil {
		log.WithError(err).Error("Failed to build trends")
		respondError(c, err, "hospital not found")
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Latest analysis
// @Description Most recent snapshot and analysis of a hospital (cached). Requires API key or bearer token.
// @Tags Hospitals
// @Produce json
// @Security ApiKeyAuth
// @Security BearerAuth
// @Param hospital_id path string true "Hospital ID"
// @Success 200 {object} HistoryEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No snapshots for hospital"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospitals/{hospital_id}/latest [get]
func (h *Handler) getLatestAnalysis(c *gin.Context) {
	hospitalID := c.Param("hospital_id")
	log := h.logger.WithField("method", "getLatestAnalysis").WithField("hospital_id", hospitalID)

	entry, err := h.snapshotService.LatestAnalysis(c.Request.Context(), hospitalID)
	if err != nil {
		log.WithError(err).Warn("Failed to get latest analysis from service")
		respondError(c, err, "no snapshots for hospital")
		return
	}
	c.JSON(http.StatusOK, ModelToHistoryEntryResponse(entry))
}

// @Summary Submit a snapshot
// @Description Validate, analyse and store a hospital snapshot. High risk triggers a webhook alert.
// @Tags Snapshots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Security BearerAuth
// @Param snapshot body SnapshotRequest true "Hospital snapshot"
// @Success 201 {object} SubmitSnapshotResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /snapshots [post]
func (h *Handler) submitSnapshot(c *gin.Context) {
	var input SnapshotRequest
	log := h.logger.WithField("method", "submitSnapshot")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToSnapshotModel(input, h.now())
	entry, err := h.snapshotService.SubmitSnapshot(c.Request.Context(), model)
	if err != nil {
		log.WithError(err).Error("Failed to submit snapshot in service")
		respondError(c, err, "snapshot not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToSubmitResponse(entry))
}

// @Summary List snapshot history
// @Description Snapshots of a hospital with their analyses, newest first.
// @Tags Snapshots
// @Produce json
// @Security ApiKeyAuth
// @Security BearerAuth
// @Param hospital_id query string true "Hospital ID"
// @Param from query string false "Lower bound (RFC3339)"
// @Param to query string false "Upper bound (RFC3339)"
// @Success 200 {array} HistoryEntryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /snapshots [get]
func (h *Handler) listHistory(c *gin.Context) {
	log := h.logger.WithField("method", "listHistory")

	filter := models.HistoryFilter{HospitalID: c.Query("hospital_id")}
	if filter.HospitalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hospital_id is required"})
		return
	}

	for _, bound := range []struct {
		name string
		dst  **time.Time
	}{{"from", &filter.From}, {"to", &filter.To}} {
		raw := c.Query(bound.name)
		if raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + bound.name + " timestamp, expected RFC3339"})
			return
		}
		*bound.dst = &ts
	}

	entries, err := h.snapshotService.ListHistory(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list history from service")
		respondError(c, err, "hospital not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToHistoryEntryResponses(entries))
}

// @Summary Get snapshot by ID
// @Description Snapshot with its analysis. Requires API key or bearer token.
// @Tags Snapshots
// @Produce json
// @Security ApiKeyAuth
// @Security BearerAuth
// @Param id path int true "Snapshot ID"
// @Success 200 {object} HistoryEntryResponse
// @Failure 400 {object} map[string]string "Invalid snapshot ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /snapshots/{id} [get]
func (h *Handler) getSnapshot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid snapshot ID"})
		return
	}
	log := h.logger.WithField("method", "getSnapshot").WithField("id", id)

	entry, err := h.snapshotService.GetSnapshot(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get snapshot from service")
		respondError(c, err, "snapshot not found")
		return
	}
	c.JSON(http.StatusOK, ModelToHistoryEntryResponse(entry))
}

// @Summary Delete a snapshot
// @Description Delete a snapshot and its analysis. Requires admin role.
// @Tags Snapshots
// @Security ApiKeyAuth
// @Security BearerAuth
// @Param id path int true "Snapshot ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid snapshot ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /snapshots/{id} [delete]
func (h *Handler) deleteSnapshot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid snapshot ID"})
		return
	}
	log := h.logger.WithFields(logrus.Fields{
		"method":  "deleteSnapshot",
		"id":      id,
		"subject": c.GetString(subjectContextKey),
	})

	if err := h.snapshotService.DeleteSnapshot(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete snapshot in service")
		respondError(c, err, "snapshot not found")
		return
	}

	log.Info("Snapshot deleted by administrator")
	c.Status(http.StatusNoContent)
}

// @Summary Quick check
// @Description Fast risk check; escalates to a full analysis when risk is not Low. Nothing is stored.
// @Tags Analysis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Security BearerAuth
// @Param snapshot body SnapshotRequest true "Hospital snapshot"
// @Success 200 {object} QuickCheckResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /analysis/quick-check [post]
func (h *Handler) quickCheck(c *gin.Context) {
	var input SnapshotRequest
	log := h.logger.WithField("method", "quickCheck")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	outcome, err := h.snapshotService.QuickCheck(c.Request.Context(), DTOToSurgeSnapshot(input))
	if err != nil {
		log.WithError(err).Warn("Quick check rejected")
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelToQuickCheckResponse(outcome))
}

// @Summary Full analysis
// @Description Full analysis with the configured strategy, optionally noting a prior quick check. Nothing is stored.
// @Tags Analysis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Security BearerAuth
// @Param request body FullAnalysisRequest true "Snapshot and optional quick check"
// @Success 200 {object} FullAnalysisResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analysis/full [post]
func (h *Handler) fullAnalysis(c *gin.Context) {
	var input FullAnalysisRequest
	log := h.logger.WithField("method", "fullAnalysis")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	report, err := h.snapshotService.FullAnalysis(c.Request.Context(), DTOToSurgeSnapshot(input.Snapshot), DTOToQuickCheck(input.QuickCheck))
	if err != nil {
		log.WithError(err).Error("Full analysis failed")
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, FullAnalysisResponse{Source: report.Source, Result: report.Result})
}

// @Summary Demo snapshot
// @Description Generate a random snapshot and run it through the quick check with escalation.
// @Tags Demo
// @Produce json
// @Security ApiKeyAuth
// @Security BearerAuth
// @Param hospital_id query string false "Hospital ID" default(HOSP-DEMO)
// @Success 200 {object} DemoSnapshotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /demo/snapshot [get]
func (h *Handler) demoSnapshot(c *gin.Context) {
	snapshot, outcome := h.snapshotService.DemoAnalysis(c.Request.Context(), c.Query("hospital_id"))
	c.JSON(http.StatusOK, DemoSnapshotResponse{
		Snapshot:           snapshot,
		QuickCheckResponse: ModelToQuickCheckResponse(outcome),
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "engine_version": surge.Version})
}
