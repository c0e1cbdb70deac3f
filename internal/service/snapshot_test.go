package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/hospital_surge_system/internal/analysis"
	analysis_mocks "github.com/shenikar/hospital_surge_system/internal/analysis/mocks"
	"github.com/shenikar/hospital_surge_system/internal/config"
	"github.com/shenikar/hospital_surge_system/internal/demo"
	"github.com/shenikar/hospital_surge_system/internal/models"
	"github.com/shenikar/hospital_surge_system/internal/service/mocks"
	"github.com/shenikar/hospital_surge_system/internal/surge"
	"github.com/shenikar/hospital_surge_system/internal/webhook"
	webhook_mocks "github.com/shenikar/hospital_surge_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// newTestSnapshotService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestSnapshotService(t *testing.T, analyzer analysis.Analyzer) (*snapshotService, *mocks.MockSnapshotRepository, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSnapshotRepository(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		HistoryMaxDays: 30,
		WebhookTimeout: time.Second,
	}

	if analyzer == nil {
		analyzer = analysis.RuleAnalyzer{}
	}

	service := NewSnapshotService(repoMock, analyzer, webhookMock, demo.NewDataGenerator(7), logger, cfg).(*snapshotService)
	service.now = func() time.Time { return fixedNow }
	return service, repoMock, webhookMock
}

func criticalSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Timestamp: fixedNow,
		Snapshot: surge.Snapshot{
			HospitalID:          "HOSP-A",
			BedsTotal:           100,
			BedsFree:            8,
			DoctorsOnShift:      3,
			NursesOnShift:       5,
			OxygenCylinders:     5,
			Ventilators:         1,
			IncomingEmergencies: 6,
			AQI:                 250,
			Festival:            "Diwali",
			NewsSummary:         "Highway mass casualty accident reported",
		},
	}
}

func routineSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Timestamp: fixedNow,
		Snapshot: surge.Snapshot{
			HospitalID:          "HOSP-B",
			BedsTotal:           200,
			BedsFree:            120,
			DoctorsOnShift:      20,
			NursesOnShift:       40,
			OxygenCylinders:     150,
			Ventilators:         20,
			IncomingEmergencies: 1,
			AQI:                 40,
			NewsSummary:         "Routine day",
		},
	}
}

func TestSubmitSnapshot_HighRiskPublishesAlert(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestSnapshotService(t, nil)
	ctx := context.Background()
	snapshot := criticalSnapshot()

	// Ожидания
	// 1. Сохранение снимка с анализом в одной транзакции
	repoMock.EXPECT().
		CreateWithAnalysis(ctx, snapshot, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Snapshot, a *models.Analysis) error {
			s.ID = 42
			a.ID = 7
			a.SnapshotID = s.ID
			return nil
		}).
		Times(1)

	// 2. Сброс кэша последнего анализа
	repoMock.EXPECT().
		InvalidateLatestCache(ctx, "HOSP-A").
		Return(nil).
		Times(1)

	// 3. Публикация оповещения
	webhookMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.SurgeAlertEvent) error {
			assert.Equal(t, "HOSP-A", event.HospitalID)
			assert.Equal(t, int64(42), event.SnapshotID)
			assert.Equal(t, int64(7), event.AnalysisID)
			assert.Equal(t, surge.TierHigh, event.Risk)
			return nil
		}).
		Times(1)

	// Действие
	entry, err := service.SubmitSnapshot(ctx, snapshot)
	service.notifications.Wait()

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, surge.TierHigh, entry.Analysis.Risk)
	assert.Equal(t, analysis.SourceRules, entry.Analysis.Strategy)
	assert.Equal(t, surge.Version, entry.Analysis.EngineVersion)
	assert.Equal(t, surge.FullAnalysis(snapshot.Snapshot, nil).RecommendedActions, entry.Analysis.RecommendedActions)
}

func TestSubmitSnapshot_PublishFailureDoesNotFailRequest(t *testing.T) {
	service, repoMock, webhookMock := newTestSnapshotService(t, nil)
	ctx := context.Background()
	snapshot := criticalSnapshot()

	repoMock.EXPECT().CreateWithAnalysis(ctx, snapshot, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateLatestCache(ctx, "HOSP-A").Return(errors.New("redis down")).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	entry, err := service.SubmitSnapshot(ctx, snapshot)
	service.notifications.Wait()

	require.NoError(t, err)
	assert.Equal(t, surge.TierHigh, entry.Analysis.Risk)
}

func TestSubmitSnapshot_StalledPublishDoesNotBlockResponse(t *testing.T) {
	service, repoMock, webhookMock := newTestSnapshotService(t, nil)
	ctx := context.Background()
	snapshot := criticalSnapshot()
	release := make(chan struct{})

	repoMock.EXPECT().CreateWithAnalysis(ctx, snapshot, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateLatestCache(ctx, "HOSP-A").Return(nil).Times(1)
	// Redis завис: публикация ждет, пока тест ее не отпустит
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(publishCtx context.Context, _ webhook.SurgeAlertEvent) error {
			select {
			case <-release:
				return nil
			case <-publishCtx.Done():
				return publishCtx.Err()
			}
		}).Times(1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		entry, err := service.SubmitSnapshot(ctx, snapshot)
		assert.NoError(t, err)
		assert.Equal(t, surge.TierHigh, entry.Analysis.Risk)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("SubmitSnapshot waited for the alert publish")
	}

	close(release)
	service.notifications.Wait()
}

func TestSubmitSnapshot_LowRiskSkipsAlert(t *testing.T) {
	service, repoMock, webhookMock := newTestSnapshotService(t, nil)
	ctx := context.Background()
	snapshot := routineSnapshot()

	repoMock.EXPECT().CreateWithAnalysis(ctx, snapshot, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateLatestCache(ctx, "HOSP-B").Return(nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	entry, err := service.SubmitSnapshot(ctx, snapshot)

	require.NoError(t, err)
	assert.Equal(t, surge.TierLow, entry.Analysis.Risk)
}

func TestSubmitSnapshot_InvalidSnapshot(t *testing.T) {
	service, repoMock, _ := newTestSnapshotService(t, nil)
	snapshot := routineSnapshot()
	snapshot.BedsFree = snapshot.BedsTotal + 1

	// Репозиторий не должен вызываться
	repoMock.EXPECT().CreateWithAnalysis(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.SubmitSnapshot(context.Background(), snapshot)

	require.Error(t, err)
	assert.ErrorIs(t, err, surge.ErrInvalidSnapshot)
}

func TestSubmitSnapshot_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestSnapshotService(t, nil)
	ctx := context.Background()
	dbError := fmt.Errorf("connection refused")

	repoMock.EXPECT().CreateWithAnalysis(ctx, gomock.Any(), gomock.Any()).Return(dbError).Times(1)

	_, err := service.SubmitSnapshot(ctx, routineSnapshot())

	require.Error(t, err)
	assert.ErrorIs(t, err, dbError)
}

func TestSubmitSnapshot_RecordsAnalyzerSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzerMock := analysis_mocks.NewMockAnalyzer(ctrl)
	service, repoMock, _ := newTestSnapshotService(t, analyzerMock)
	ctx := context.Background()
	snapshot := routineSnapshot()

	analyzerMock.EXPECT().
		Analyze(ctx, snapshot.Snapshot, nil).
		Return(&analysis.Report{Result: surge.FullAnalysis(snapshot.Snapshot, nil), Source: analysis.SourceRulesFallback}, nil).
		Times(1)
	repoMock.EXPECT().CreateWithAnalysis(ctx, snapshot, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateLatestCache(ctx, "HOSP-B").Return(nil).Times(1)

	entry, err := service.SubmitSnapshot(ctx, snapshot)

	require.NoError(t, err)
	assert.Equal(t, analysis.SourceRulesFallback, entry.Analysis.Strategy)
}

func TestDeleteSnapshot_Success(t *testing.T) {
	service, repoMock, _ := newTestSnapshotService(t, nil)
	ctx := context.Background()
	existing := &models.HistoryEntry{Snapshot: routineSnapshot()}

	repoMock.EXPECT().GetByID(ctx, int64(5)).Return(existing, nil).Times(1)
	repoMock.EXPECT().Delete(ctx, int64(5)).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateLatestCache(ctx, "HOSP-B").Return(nil).Times(1)

	require.NoError(t, service.DeleteSnapshot(ctx, 5))
}

func TestDeleteSnapshot_NotFound(t *testing.T) {
	service, repoMock, _ := newTestSnapshotService(t, nil)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, int64(5)).Return(nil, ErrNotFound).Times(1)
	// Удаление не должно вызываться
	repoMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	err := service.DeleteSnapshot(ctx, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListHistory_InvalidPeriod(t *testing.T) {
	service, _, _ := newTestSnapshotService(t, nil)
	from := fixedNow
	to := fixedNow.Add(-time.Hour)

	_, err := service.ListHistory(context.Background(), models.HistoryFilter{HospitalID: "HOSP-A", From: &from, To: &to})

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestTrends_PeriodHandling(t *testing.T) {
	testCases := []struct {
		name     string
		days     int
		wantDays int
	}{
		{name: "default period", days: 0, wantDays: defaultTrendDays},
		{name: "explicit period", days: 3, wantDays: 3},
		{name: "clamped to max", days: 365, wantDays: 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, repoMock, _ := newTestSnapshotService(t, nil)
			ctx := context.Background()

			repoMock.EXPECT().
				ListHistory(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, filter models.HistoryFilter) ([]*models.HistoryEntry, error) {
					require.NotNil(t, filter.From)
					assert.Equal(t, fixedNow.AddDate(0, 0, -tc.wantDays), *filter.From)
					assert.True(t, filter.Ascending)
					assert.Equal(t, "HOSP-A", filter.HospitalID)
					return nil, nil
				}).
				Times(1)

			report, err := service.Trends(ctx, "HOSP-A", tc.days)

			require.NoError(t, err)
			assert.Equal(t, tc.wantDays, report.PeriodDays)
			assert.Empty(t, report.DataPoints)
		})
	}
}

func TestTrends_NegativeDays(t *testing.T) {
	service, _, _ := newTestSnapshotService(t, nil)

	_, err := service.Trends(context.Background(), "HOSP-A", -1)

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestTrends_DataPoints(t *testing.T) {
	service, repoMock, _ := newTestSnapshotService(t, nil)
	ctx := context.Background()

	analysed := criticalSnapshot()
	analysed.ID = 1
	record := models.NewAnalysis(surge.FullAnalysis(analysed.Snapshot, nil), analysis.SourceRules)
	record.ID = 10
	bare := routineSnapshot()
	bare.ID = 2

	repoMock.EXPECT().
		ListHistory(ctx, gomock.Any()).
		Return([]*models.HistoryEntry{
			{Snapshot: analysed, Analysis: record},
			{Snapshot: bare},
		}, nil).
		Times(1)

	report, err := service.Trends(ctx, "HOSP-A", 7)

	require.NoError(t, err)
	require.Len(t, report.DataPoints, 2)

	first := report.DataPoints[0]
	assert.Equal(t, 92.0, first.OccupancyRate)
	assert.Equal(t, 8, first.StaffOnShift)
	require.NotNil(t, first.Risk)
	assert.Equal(t, surge.TierHigh, *first.Risk)
	assert.Equal(t, int64(10), *first.AnalysisID)

	second := report.DataPoints[1]
	assert.Equal(t, 40.0, second.OccupancyRate)
	assert.Nil(t, second.Risk)
	assert.Nil(t, second.AnalysisID)
}

func TestLatestAnalysis_FromCache(t *testing.T) {
	service, repoMock, _ := newTestSnapshotService(t, nil)
	ctx := context.Background()
	cached := &models.HistoryEntry{Snapshot: routineSnapshot()}

	repoMock.EXPECT().GetLatestFromCache(ctx, "HOSP-B").Return(cached, nil).Times(1)
	repoMock.EXPECT().Latest(gomock.Any(), gomock.Any()).Times(0)

	entry, err := service.LatestAnalysis(ctx, "HOSP-B")

	require.NoError(t, err)
	assert.Equal(t, cached, entry)
}

func TestLatestAnalysis_FromDB(t *testing.T) {
	service, repoMock, _ := newTestSnapshotService(t, nil)
	ctx := context.Background()
	stored := &models.HistoryEntry{Snapshot: routineSnapshot()}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().GetLatestFromCache(ctx, "HOSP-B").Return(nil, nil).Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().Latest(ctx, "HOSP-B").Return(stored, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetLatestCache(ctx, stored).Return(nil).Times(1)

	entry, err := service.LatestAnalysis(ctx, "HOSP-B")

	require.NoError(t, err)
	assert.Equal(t, stored, entry)
}

func TestLatestAnalysis_NotFound(t *testing.T) {
	service, repoMock, _ := newTestSnapshotService(t, nil)
	ctx := context.Background()

	repoMock.EXPECT().GetLatestFromCache(ctx, "HOSP-X").Return(nil, nil).Times(1)
	repoMock.EXPECT().Latest(ctx, "HOSP-X").Return(nil, ErrNotFound).Times(1)
	repoMock.EXPECT().SetLatestCache(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.LatestAnalysis(ctx, "HOSP-X")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuickCheck_Escalation(t *testing.T) {
	service, _, _ := newTestSnapshotService(t, nil)

	high, err := service.QuickCheck(context.Background(), criticalSnapshot().Snapshot)
	require.NoError(t, err)
	assert.True(t, high.Escalated)
	assert.Equal(t, surge.TierHigh, high.Result.Risk)
	assert.NotEmpty(t, high.Result.RecommendedActions)

	low, err := service.QuickCheck(context.Background(), routineSnapshot().Snapshot)
	require.NoError(t, err)
	assert.False(t, low.Escalated)
	assert.Equal(t, surge.TierLow, low.Result.Risk)
	assert.Contains(t, low.Result.Reasoning, "full analysis not required")
}

func TestQuickCheck_InvalidSnapshot(t *testing.T) {
	service, _, _ := newTestSnapshotService(t, nil)

	_, err := service.QuickCheck(context.Background(), surge.Snapshot{BedsTotal: 10})

	assert.ErrorIs(t, err, surge.ErrInvalidSnapshot)
}

func TestFullAnalysis_PassesPrior(t *testing.T) {
	service, _, _ := newTestSnapshotService(t, nil)
	snap := criticalSnapshot().Snapshot
	prior := surge.QuickCheck(snap)

	report, err := service.FullAnalysis(context.Background(), snap, &prior)

	require.NoError(t, err)
	assert.Equal(t, analysis.SourceRules, report.Source)
	assert.Equal(t, surge.FullAnalysis(snap, &prior), report.Result)
}

func TestDemoAnalysis_IsValidAndConsistent(t *testing.T) {
	service, _, _ := newTestSnapshotService(t, nil)

	for i := 0; i < 20; i++ {
		snap, outcome := service.DemoAnalysis(context.Background(), "")
		require.NoError(t, surge.Validate(snap))
		assert.Equal(t, "HOSP-DEMO", snap.HospitalID)
		assert.Equal(t, surge.QuickCheck(snap), outcome.Quick)
		assert.Equal(t, outcome.Quick.NeedsEscalation(), outcome.Escalated)
	}
}
