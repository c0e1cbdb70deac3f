package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/hospital_surge_system/internal/analysis"
	"github.com/shenikar/hospital_surge_system/internal/config"
	"github.com/shenikar/hospital_surge_system/internal/models"
	"github.com/shenikar/hospital_surge_system/internal/service"
	"github.com/shenikar/hospital_surge_system/internal/service/mocks"
	"github.com/shenikar/hospital_surge_system/internal/surge"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testAPIKey    = "test-api-key"
	testJWTSecret = "test-jwt-secret"
)

var (
	apiKeyHeader = map[string]string{"X-API-Key": testAPIKey}
	fixedNow     = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockSnapshotService, *mocks.MockHospitalService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	snapshotMock := mocks.NewMockSnapshotService(ctrl)
	hospitalMock := mocks.NewMockHospitalService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:   []string{testAPIKey},
		JWTSecret: testJWTSecret,
	}

	handler := NewHandler(snapshotMock, hospitalMock, nil, logger, cfg)
	handler.now = func() time.Time { return fixedNow }

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return snapshotMock, hospitalMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// bearer подписывает JWT с указанной ролью и сроком жизни
func bearer(t *testing.T, role string, ttl time.Duration) map[string]string {
	t.Helper()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "operator-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + signed}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func intPtr(v int) *int { return &v }

func criticalRequest() SnapshotRequest {
	return SnapshotRequest{
		HospitalID:          "HOSP-A",
		BedsTotal:           intPtr(100),
		BedsFree:            intPtr(8),
		DoctorsOnShift:      intPtr(3),
		NursesOnShift:       intPtr(5),
		OxygenCylinders:     intPtr(5),
		Ventilators:         intPtr(1),
		IncomingEmergencies: intPtr(6),
		AQI:                 250,
		Festival:            "Diwali",
		NewsSummary:         "Highway mass casualty accident reported",
	}
}

func TestHealthCheck_NoAuth(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), surge.Version)
}

func TestAuth_Rejections(t *testing.T) {
	_, _, router := newTestHandler(t)

	testCases := []struct {
		name    string
		headers map[string]string
	}{
		{name: "no credentials", headers: map[string]string{}},
		{name: "invalid api key", headers: map[string]string{"X-API-Key": "wrong"}},
		{name: "garbage token", headers: map[string]string{"Authorization": "Bearer not-a-jwt"}},
		{name: "expired token", headers: bearer(t, RoleOperator, -time.Hour)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := makeRequest(router, "GET", "/api/v1/hospitals", nil, tc.headers)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuth_BearerTokenAccepted(t *testing.T) {
	_, hospitalMock, router := newTestHandler(t)

	hospitalMock.EXPECT().ListHospitals(gomock.Any()).Return([]*models.Hospital{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospitals", nil, bearer(t, RoleOperator, time.Hour))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateHospital_Success(t *testing.T) {
	_, hospitalMock, router := newTestHandler(t)
	id := uuid.New()

	hospitalMock.EXPECT().
		CreateHospital(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *models.Hospital) error {
			assert.Equal(t, "HOSP-A", h.HospitalID)
			h.ID = id
			return nil
		}).Times(1)

	req := CreateHospitalRequest{HospitalID: "HOSP-A", Name: "City General", CapacityTotal: 100}
	w := makeRequest(router, "POST", "/api/v1/hospitals", jsonBody(t, req), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp HospitalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "City General", resp.Name)
}

func TestCreateHospital_Duplicate(t *testing.T) {
	_, hospitalMock, router := newTestHandler(t)

	hospitalMock.EXPECT().CreateHospital(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not create hospital: %w", service.ErrAlreadyExists)).Times(1)

	req := CreateHospitalRequest{HospitalID: "HOSP-A", Name: "City General"}
	w := makeRequest(router, "POST", "/api/v1/hospitals", jsonBody(t, req), apiKeyHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateHospital_ValidationError(t *testing.T) {
	_, hospitalMock, router := newTestHandler(t)

	hospitalMock.EXPECT().CreateHospital(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	req := CreateHospitalRequest{HospitalID: "HOSP-A"} // Отсутствует Name
	w := makeRequest(router, "POST", "/api/v1/hospitals", jsonBody(t, req), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareHospitals_Success(t *testing.T) {
	_, hospitalMock, router := newTestHandler(t)

	hospitalMock.EXPECT().Compare(gomock.Any()).Return([]*models.HospitalComparison{
		{Hospital: &models.Hospital{HospitalID: "HOSP-A", Name: "Alpha"}},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospitals/comparison", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []HospitalComparisonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "HOSP-A", resp[0].Hospital.HospitalID)
	assert.Nil(t, resp[0].LatestSnapshot)
	assert.Nil(t, resp[0].LatestAnalysis)
}

func TestGetHospital(t *testing.T) {
	_, hospitalMock, router := newTestHandler(t)

	hospitalMock.EXPECT().GetHospital(gomock.Any(), "HOSP-A").
		Return(&models.Hospital{HospitalID: "HOSP-A", Name: "Alpha"}, nil).Times(1)
	hospitalMock.EXPECT().GetHospital(gomock.Any(), "HOSP-X").
		Return(nil, fmt.Errorf("hospital HOSP-X: %w", service.ErrNotFound)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospitals/HOSP-A", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp HospitalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alpha", resp.Name)

	w = makeRequest(router, "GET", "/api/v1/hospitals/HOSP-X", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "hospital not found")
}

func TestSubmitSnapshot_Success(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)
	req := criticalRequest()

	snapshotMock.EXPECT().
		SubmitSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Snapshot) (*models.HistoryEntry, error) {
			assert.Equal(t, fixedNow, s.Timestamp)
			assert.Equal(t, "HOSP-A", s.HospitalID)
			s.ID = 42
			record := models.NewAnalysis(surge.FullAnalysis(s.Snapshot, nil), analysis.SourceRules)
			record.ID = 7
			return &models.HistoryEntry{Snapshot: s, Analysis: record}, nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/snapshots", jsonBody(t, req), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SubmitSnapshotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.SnapshotID)
	assert.Equal(t, int64(7), resp.AnalysisID)
	require.NotNil(t, resp.Analysis)
	assert.Equal(t, surge.TierHigh, resp.Analysis.Risk)
	assert.NotEmpty(t, resp.Analysis.RecommendedActions)
}

func TestSubmitSnapshot_ValidationError(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	snapshotMock.EXPECT().SubmitSnapshot(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	testCases := []struct {
		name   string
		mutate func(*SnapshotRequest)
	}{
		{name: "missing hospital", mutate: func(r *SnapshotRequest) { r.HospitalID = "" }},
		{name: "free above total", mutate: func(r *SnapshotRequest) { r.BedsFree = intPtr(*r.BedsTotal + 1) }},
		{name: "negative oxygen", mutate: func(r *SnapshotRequest) { r.OxygenCylinders = intPtr(-1) }},
		{name: "missing beds total", mutate: func(r *SnapshotRequest) { r.BedsTotal = nil }},
		{name: "missing beds free", mutate: func(r *SnapshotRequest) { r.BedsFree = nil }},
		{name: "missing oxygen", mutate: func(r *SnapshotRequest) { r.OxygenCylinders = nil }},
		{name: "missing incoming emergencies", mutate: func(r *SnapshotRequest) { r.IncomingEmergencies = nil }},
		{name: "negative medicine", mutate: func(r *SnapshotRequest) { r.Medicines = map[string]int{"paracetamol": -5} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := criticalRequest()
			tc.mutate(&req)
			w := makeRequest(router, "POST", "/api/v1/snapshots", jsonBody(t, req), apiKeyHeader)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitSnapshot_InvalidJSON(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/snapshots", bytes.NewBufferString(`{"hospital_id": "x"`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSubmitSnapshot_ServiceError(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	snapshotMock.EXPECT().SubmitSnapshot(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/snapshots", jsonBody(t, criticalRequest()), apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSnapshot(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	stored := &models.Snapshot{ID: 5, Timestamp: fixedNow}
	stored.HospitalID = "HOSP-A"
	stored.BedsTotal = 10
	stored.BedsFree = 5

	snapshotMock.EXPECT().GetSnapshot(gomock.Any(), int64(5)).Return(&models.HistoryEntry{Snapshot: stored}, nil).Times(1)
	snapshotMock.EXPECT().GetSnapshot(gomock.Any(), int64(6)).Return(nil, service.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/snapshots/5", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp HistoryEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 50.0, resp.Snapshot.OccupancyRate)
	assert.Nil(t, resp.Analysis)

	w = makeRequest(router, "GET", "/api/v1/snapshots/6", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = makeRequest(router, "GET", "/api/v1/snapshots/abc", nil, apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSnapshot_Authorization(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	// Оператору удаление запрещено
	snapshotMock.EXPECT().DeleteSnapshot(gomock.Any(), gomock.Any()).Times(0)
	w := makeRequest(router, "DELETE", "/api/v1/snapshots/5", nil, bearer(t, RoleOperator, time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteSnapshot_Admin(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	snapshotMock.EXPECT().DeleteSnapshot(gomock.Any(), int64(5)).Return(nil).Times(2)

	w := makeRequest(router, "DELETE", "/api/v1/snapshots/5", nil, bearer(t, RoleAdmin, time.Hour))
	assert.Equal(t, http.StatusNoContent, w.Code)

	// API-ключ считается административным
	w = makeRequest(router, "DELETE", "/api/v1/snapshots/5", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteSnapshot_NotFound(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	snapshotMock.EXPECT().DeleteSnapshot(gomock.Any(), int64(9)).
		Return(fmt.Errorf("service: snapshot with id 9 not found for delete: %w", service.ErrNotFound)).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/snapshots/9", nil, apiKeyHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListHistory(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	snapshotMock.EXPECT().
		ListHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.HistoryFilter) ([]*models.HistoryEntry, error) {
			assert.Equal(t, "HOSP-A", filter.HospitalID)
			require.NotNil(t, filter.From)
			assert.True(t, filter.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
			assert.Nil(t, filter.To)
			return []*models.HistoryEntry{}, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/snapshots?hospital_id=HOSP-A&from=2026-03-01T00:00:00Z", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "GET", "/api/v1/snapshots", nil, apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "GET", "/api/v1/snapshots?hospital_id=HOSP-A&to=yesterday", nil, apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListHistory_InvalidPeriod(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	snapshotMock.EXPECT().ListHistory(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: from is after to", service.ErrInvalidPeriod)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/snapshots?hospital_id=HOSP-A&from=2026-03-02T00:00:00Z&to=2026-03-01T00:00:00Z", nil, apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTrends(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	snapshotMock.EXPECT().Trends(gomock.Any(), "HOSP-A", 0).
		Return(&models.TrendReport{HospitalID: "HOSP-A", PeriodDays: 7}, nil).Times(1)
	snapshotMock.EXPECT().Trends(gomock.Any(), "HOSP-A", 14).
		Return(&models.TrendReport{HospitalID: "HOSP-A", PeriodDays: 14}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospitals/HOSP-A/trends", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"period_days":7`)

	w = makeRequest(router, "GET", "/api/v1/hospitals/HOSP-A/trends?days=14", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, bad := range []string{"0", "-3", "week"} {
		w = makeRequest(router, "GET", "/api/v1/hospitals/HOSP-A/trends?days="+bad, nil, apiKeyHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestGetLatestAnalysis_NotFound(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	snapshotMock.EXPECT().LatestAnalysis(gomock.Any(), "HOSP-X").
		Return(nil, fmt.Errorf("service: could not get latest analysis: %w", service.ErrNotFound)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospitals/HOSP-X/latest", nil, apiKeyHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuickCheck_Success(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)
	req := criticalRequest()
	snap := DTOToSurgeSnapshot(req)
	quick, result := surge.Escalate(snap)

	snapshotMock.EXPECT().QuickCheck(gomock.Any(), snap).
		Return(&models.QuickCheckOutcome{Quick: quick, Result: result, Escalated: true}, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/analysis/quick-check", jsonBody(t, req), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp QuickCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Escalated)
	assert.Equal(t, surge.TierHigh, resp.QuickCheck.Risk)
	assert.Equal(t, result.RecommendedActions, resp.Result.RecommendedActions)
}

func TestQuickCheck_MissingCounts(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	snapshotMock.EXPECT().QuickCheck(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/analysis/quick-check", bytes.NewBufferString(`{"hospital_id":"H1"}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BedsTotal")
}

func TestQuickCheck_ZeroCountsAccepted(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)
	body := `{"hospital_id":"H1","beds_total":0,"beds_free":0,"doctors_on_shift":0,"nurses_on_shift":0,` +
		`"oxygen_cylinders":0,"ventilators":0,"incoming_emergencies":0}`

	snapshotMock.EXPECT().QuickCheck(gomock.Any(), surge.Snapshot{HospitalID: "H1"}).
		Return(&models.QuickCheckOutcome{}, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/analysis/quick-check", bytes.NewBufferString(body), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFullAnalysis_MissingSnapshotCounts(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	snapshotMock.EXPECT().FullAnalysis(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/analysis/full", bytes.NewBufferString(`{"snapshot":{"hospital_id":"H1","aqi":120}}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFullAnalysis_WithPrior(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)
	req := FullAnalysisRequest{
		Snapshot:   criticalRequest(),
		QuickCheck: &PriorQuickCheck{Risk: "High", CapacityRatio: 8, PredictedNeedEstimate: 28, TriggerScore: 7},
	}

	snapshotMock.EXPECT().
		FullAnalysis(gomock.Any(), DTOToSurgeSnapshot(req.Snapshot), gomock.Any()).
		DoAndReturn(func(_ context.Context, s surge.Snapshot, prior *surge.QuickCheckResult) (*analysis.Report, error) {
			require.NotNil(t, prior)
			assert.Equal(t, surge.TierHigh, prior.Risk)
			return &analysis.Report{Result: surge.FullAnalysis(s, prior), Source: analysis.SourceRules}, nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/analysis/full", jsonBody(t, req), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp FullAnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, analysis.SourceRules, resp.Source)
	assert.Contains(t, resp.Result.Reasoning, "Escalated from quick check")
}

func TestFullAnalysis_InvalidPriorRisk(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)

	snapshotMock.EXPECT().FullAnalysis(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req := FullAnalysisRequest{
		Snapshot:   criticalRequest(),
		QuickCheck: &PriorQuickCheck{Risk: "Severe"},
	}
	w := makeRequest(router, "POST", "/api/v1/analysis/full", jsonBody(t, req), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDemoSnapshot(t *testing.T) {
	snapshotMock, _, router := newTestHandler(t)
	snap := DTOToSurgeSnapshot(criticalRequest())
	quick, result := surge.Escalate(snap)

	snapshotMock.EXPECT().DemoAnalysis(gomock.Any(), "").
		Return(snap, &models.QuickCheckOutcome{Quick: quick, Result: result, Escalated: true}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/demo/snapshot", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DemoSnapshotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "HOSP-A", resp.Snapshot.HospitalID)
	assert.Equal(t, surge.TierHigh, resp.Result.Risk)
}
