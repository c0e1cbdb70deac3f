package service

//go:generate mockgen -source=snapshot.go -destination=mocks/snapshot_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/hospital_surge_system/internal/analysis"
	"github.com/shenikar/hospital_surge_system/internal/config"
	"github.com/shenikar/hospital_surge_system/internal/demo"
	"github.com/shenikar/hospital_surge_system/internal/models"
	"github.com/shenikar/hospital_surge_system/internal/surge"
	"github.com/shenikar/hospital_surge_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound возвращается репозиториями, если запись отсутствует
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists возвращается при нарушении уникальности
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidPeriod - некорректный период выборки
	ErrInvalidPeriod = errors.New("invalid period")
)

const defaultTrendDays = 7

// SnapshotRepository определяет контракт для работы с бд снимков
type SnapshotRepository interface {
	CreateWithAnalysis(ctx context.Context, snapshot *models.Snapshot, analysis *models.Analysis) error
	GetByID(ctx context.Context, id int64) (*models.HistoryEntry, error)
	Delete(ctx context.Context, id int64) error
	ListHistory(ctx context.Context, filter models.HistoryFilter) ([]*models.HistoryEntry, error)
	Latest(ctx context.Context, hospitalID string) (*models.HistoryEntry, error)
	GetLatestFromCache(ctx context.Context, hospitalID string) (*models.HistoryEntry, error)
	SetLatestCache(ctx context.Context, entry *models.HistoryEntry) error
	InvalidateLatestCache(ctx context.Context, hospitalID string) error
}

// SnapshotService определяет контракт бизнес-логики снимков и анализа
type SnapshotService interface {
	SubmitSnapshot(ctx context.Context, snapshot *models.Snapshot) (*models.HistoryEntry, error)
	GetSnapshot(ctx context.Context, id int64) (*models.HistoryEntry, error)
	DeleteSnapshot(ctx context.Context, id int64) error
	ListHistory(ctx context.Context, filter models.HistoryFilter) ([]*models.HistoryEntry, error)
	Trends(ctx context.Context, hospitalID string, days int) (*models.TrendReport, error)
	LatestAnalysis(ctx context.Context, hospitalID string) (*models.HistoryEntry, error)
	QuickCheck(ctx context.Context, snapshot surge.Snapshot) (*models.QuickCheckOutcome, error)
	FullAnalysis(ctx context.Context, snapshot surge.Snapshot, prior *surge.QuickCheckResult) (*analysis.Report, error)
	DemoAnalysis(ctx context.Context, hospitalID string) (surge.Snapshot, *models.QuickCheckOutcome)
}

type snapshotService struct {
	repo      SnapshotRepository
	analyzer  analysis.Analyzer
	publisher webhook.WebhookPublisher
	demo      *demo.DataGenerator
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
	// notifications отслеживает фоновые публикации оповещений
	notifications sync.WaitGroup
}

func NewSnapshotService(
	repo SnapshotRepository,
	analyzer analysis.Analyzer,
	publisher webhook.WebhookPublisher,
	generator *demo.DataGenerator,
	logger *logrus.Logger,
	cfg *config.Config,
) SnapshotService {
	return &snapshotService{
		repo:      repo,
		analyzer:  analyzer,
		publisher: publisher,
		demo:      generator,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// SubmitSnapshot валидирует снимок, анализирует его, сохраняет и оповещает при высоком риске
func (s *snapshotService) SubmitSnapshot(ctx context.Context, snapshot *models.Snapshot) (*models.HistoryEntry, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "snapshot",
		"method":      "SubmitSnapshot",
		"hospital_id": snapshot.HospitalID,
	})
	log.Info("Attempting to submit a new snapshot")

	if err := surge.Validate(snapshot.Snapshot); err != nil {
		log.WithError(err).Warn("Snapshot rejected by validation")
		return nil, err
	}

	report, err := s.analyzer.Analyze(ctx, snapshot.Snapshot, nil)
	if err != nil {
		log.WithError(err).Error("Failed to analyze snapshot")
		return nil, fmt.Errorf("service: could not analyze snapshot: %w", err)
	}

	record := models.NewAnalysis(report.Result, report.Source)
	if err := s.repo.CreateWithAnalysis(ctx, snapshot, record); err != nil {
		log.WithError(err).Error("Failed to store snapshot in repository")
		return nil, fmt.Errorf("service: could not store snapshot: %w", err)
	}

	if err := s.repo.InvalidateLatestCache(ctx, snapshot.HospitalID); err != nil {
		log.WithError(err).Warn("Failed to invalidate latest analysis cache")
	}

	log = log.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"risk":        record.Risk,
		"strategy":    record.Strategy,
	})
	if record.Risk == surge.TierHigh {
		s.notify(ctx, log, snapshot, record)
	}

	log.Info("Snapshot submitted successfully")
	return &models.HistoryEntry{Snapshot: snapshot, Analysis: record}, nil
}

// notify ставит событие в очередь вебхуков в фоне; ответ на запрос не ждет публикации
func (s *snapshotService) notify(ctx context.Context, log *logrus.Entry, snapshot *models.Snapshot, record *models.Analysis) {
	if s.publisher == nil {
		return
	}
	event := webhook.NewSurgeAlertEvent(snapshot, record)
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.WebhookTimeout)

	s.notifications.Add(1)
	go func() {
		defer s.notifications.Done()
		defer cancel()

		if err := s.publisher.Publish(publishCtx, event); err != nil {
			log.WithError(err).Warn("Failed to publish surge alert")
			return
		}
		log.Info("Surge alert queued")
	}()
}

// GetSnapshot получает снимок с анализом по ID
func (s *snapshotService) GetSnapshot(ctx context.Context, id int64) (*models.HistoryEntry, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "snapshot",
		"method":      "GetSnapshot",
		"snapshot_id": id,
	})
	log.Info("Fetching snapshot by ID")

	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get snapshot from repository")
		return nil, fmt.Errorf("service: could not get snapshot: %w", err)
	}
	return entry, nil
}

// DeleteSnapshot удаляет снимок вместе с анализом
func (s *snapshotService) DeleteSnapshot(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "snapshot",
		"method":      "DeleteSnapshot",
		"snapshot_id": id,
	})
	log.Info("Attempting to delete snapshot")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent snapshot")
		return fmt.Errorf("service: snapshot with id %d not found for delete: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete snapshot in repository")
		return fmt.Errorf("service: could not delete snapshot: %w", err)
	}

	if err := s.repo.InvalidateLatestCache(ctx, existing.Snapshot.HospitalID); err != nil {
		log.WithError(err).Warn("Failed to invalidate latest analysis cache")
	}

	log.Info("Snapshot deleted successfully")
	return nil
}

// ListHistory возвращает историю снимков стационара
func (s *snapshotService) ListHistory(ctx context.Context, filter models.HistoryFilter) ([]*models.HistoryEntry, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "snapshot",
		"method":      "ListHistory",
		"hospital_id": filter.HospitalID,
	})
	log.Info("Listing snapshot history")

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidPeriod)
	}

	entries, err := s.repo.ListHistory(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list history from repository")
		return nil, fmt.Errorf("service: could not list history: %w", err)
	}

	log.WithField("count", len(entries)).Info("History listed successfully")
	return entries, nil
}

// Trends строит точки графика за последние days дней (по умолчанию 7, не более HistoryMaxDays)
func (s *snapshotService) Trends(ctx context.Context, hospitalID string, days int) (*models.TrendReport, error) {
	if days == 0 {
		days = defaultTrendDays
	}
	if days < 0 {
		return nil, fmt.Errorf("%w: days must be a positive number", ErrInvalidPeriod)
	}
	days = min(days, s.cfg.HistoryMaxDays)

	log := s.logger.WithFields(logrus.Fields{
		"service":     "snapshot",
		"method":      "Trends",
		"hospital_id": hospitalID,
		"days":        days,
	})
	log.Info("Building historical trends")

	from := s.now().AddDate(0, 0, -days)
	entries, err := s.repo.ListHistory(ctx, models.HistoryFilter{
		HospitalID: hospitalID,
		From:       &from,
		Ascending:  true,
	})
	if err != nil {
		log.WithError(err).Error("Failed to list history for trends")
		return nil, fmt.Errorf("service: could not build trends: %w", err)
	}

	points := make([]*models.TrendPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, trendPoint(entry))
	}

	return &models.TrendReport{
		HospitalID: hospitalID,
		PeriodDays: days,
		DataPoints: points,
	}, nil
}

func trendPoint(entry *models.HistoryEntry) *models.TrendPoint {
	snap := entry.Snapshot
	point := &models.TrendPoint{
		Timestamp:           snap.Timestamp,
		SnapshotID:          snap.ID,
		OccupancyRate:       snap.OccupancyRate(),
		StaffOnShift:        snap.StaffTotal(),
		BedsTotal:           snap.BedsTotal,
		BedsFree:            snap.BedsFree,
		OxygenCylinders:     snap.OxygenCylinders,
		Ventilators:         snap.Ventilators,
		IncomingEmergencies: snap.IncomingEmergencies,
		AQI:                 snap.AQI,
		Festival:            snap.Festival,
	}
	if a := entry.Analysis; a != nil {
		point.AnalysisID = &a.ID
		point.Risk = &a.Risk
		point.PredictedAdditionalPatients6h = &a.PredictedAdditionalPatients6h
		point.Confidence = &a.Confidence
	}
	return point
}

// LatestAnalysis возвращает последний снимок стационара, сначала пробуя кэш
func (s *snapshotService) LatestAnalysis(ctx context.Context, hospitalID string) (*models.HistoryEntry, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "snapshot",
		"method":      "LatestAnalysis",
		"hospital_id": hospitalID,
	})

	cached, err := s.repo.GetLatestFromCache(ctx, hospitalID)
	if err != nil {
		log.WithError(err).Warn("Failed to read latest analysis from cache")
	}
	if cached != nil {
		log.Debug("Latest analysis served from cache")
		return cached, nil
	}

	entry, err := s.repo.Latest(ctx, hospitalID)
	if err != nil {
		log.WithError(err).Warn("Failed to get latest snapshot from repository")
		return nil, fmt.Errorf("service: could not get latest analysis: %w", err)
	}

	if err := s.repo.SetLatestCache(ctx, entry); err != nil {
		log.WithError(err).Warn("Failed to cache latest analysis")
	}
	return entry, nil
}

// QuickCheck выполняет быструю проверку с эскалацией; ничего не сохраняет
func (s *snapshotService) QuickCheck(ctx context.Context, snapshot surge.Snapshot) (*models.QuickCheckOutcome, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "snapshot",
		"method":      "QuickCheck",
		"hospital_id": snapshot.HospitalID,
	})

	if err := surge.Validate(snapshot); err != nil {
		log.WithError(err).Warn("Snapshot rejected by validation")
		return nil, err
	}

	quick, result := surge.Escalate(snapshot)
	log.WithFields(logrus.Fields{
		"risk":          quick.Risk,
		"trigger_score": quick.TriggerScore,
		"escalated":     quick.NeedsEscalation(),
	}).Info("Quick check completed")

	return &models.QuickCheckOutcome{
		Quick:     quick,
		Result:    result,
		Escalated: quick.NeedsEscalation(),
	}, nil
}

// FullAnalysis анализирует снимок выбранной стратегией без сохранения
func (s *snapshotService) FullAnalysis(ctx context.Context, snapshot surge.Snapshot, prior *surge.QuickCheckResult) (*analysis.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "snapshot",
		"method":      "FullAnalysis",
		"hospital_id": snapshot.HospitalID,
	})

	if err := surge.Validate(snapshot); err != nil {
		log.WithError(err).Warn("Snapshot rejected by validation")
		return nil, err
	}

	report, err := s.analyzer.Analyze(ctx, snapshot, prior)
	if err != nil {
		log.WithError(err).Error("Failed to analyze snapshot")
		return nil, fmt.Errorf("service: could not analyze snapshot: %w", err)
	}

	log.WithFields(logrus.Fields{
		"risk":   report.Result.Risk,
		"source": report.Source,
	}).Info("Full analysis completed")
	return report, nil
}

// DemoAnalysis генерирует демо-снимок и прогоняет его через быструю проверку с эскалацией
func (s *snapshotService) DemoAnalysis(_ context.Context, hospitalID string) (surge.Snapshot, *models.QuickCheckOutcome) {
	if hospitalID == "" {
		hospitalID = "HOSP-DEMO"
	}
	snapshot := s.demo.Snapshot(hospitalID)
	quick, result := surge.Escalate(snapshot)
	return snapshot, &models.QuickCheckOutcome{
		Quick:     quick,
		Result:    result,
		Escalated: quick.NeedsEscalation(),
	}
}
