package service

//go:generate mockgen -source=hospital.go -destination=mocks/hospital_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/hospital_surge_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// comparisonConcurrency ограничивает число параллельных запросов к бд при сравнении
const comparisonConcurrency = 8

// HospitalRepository определяет контракт для работы с бд стационаров
type HospitalRepository interface {
	Create(ctx context.Context, hospital *models.Hospital) error
	List(ctx context.Context) ([]*models.Hospital, error)
	GetByHospitalID(ctx context.Context, hospitalID string) (*models.Hospital, error)
}

// HospitalService определяет контракт бизнес-логики стационаров
type HospitalService interface {
	CreateHospital(ctx context.Context, hospital *models.Hospital) error
	ListHospitals(ctx context.Context) ([]*models.Hospital, error)
	GetHospital(ctx context.Context, hospitalID string) (*models.Hospital, error)
	Compare(ctx context.Context) ([]*models.HospitalComparison, error)
}

type hospitalService struct {
	repo      HospitalRepository
	snapshots SnapshotRepository
	logger    *logrus.Logger
}

func NewHospitalService(repo HospitalRepository, snapshots SnapshotRepository, logger *logrus.Logger) HospitalService {
	return &hospitalService{
		repo:      repo,
		snapshots: snapshots,
		logger:    logger,
	}
}

// CreateHospital регистрирует стационар
func (s *hospitalService) CreateHospital(ctx context.Context, hospital *models.Hospital) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "hospital",
		"method":      "CreateHospital",
		"hospital_id": hospital.HospitalID,
	})
	log.Info("Attempting to register a hospital")

	if err := s.repo.Create(ctx, hospital); err != nil {
		log.WithError(err).Error("Failed to create hospital in repository")
		return fmt.Errorf("service: could not create hospital: %w", err)
	}

	log.Info("Hospital registered successfully")
	return nil
}

// ListHospitals возвращает все стационары
func (s *hospitalService) ListHospitals(ctx context.Context) ([]*models.Hospital, error) {
	hospitals, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithField("method", "ListHospitals").WithError(err).Error("Failed to list hospitals from repository")
		return nil, fmt.Errorf("service: could not list hospitals: %w", err)
	}
	return hospitals, nil
}

// GetHospital возвращает стационар по внешнему идентификатору
func (s *hospitalService) GetHospital(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	hospital, err := s.repo.GetByHospitalID(ctx, hospitalID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"method":      "GetHospital",
			"hospital_id": hospitalID,
		}).WithError(err).Warn("Failed to get hospital from repository")
		return nil, fmt.Errorf("service: could not get hospital: %w", err)
	}
	return hospital, nil
}

// Compare собирает последний снимок и прогноз каждого стационара.
// Ошибка по одному стационару не прерывает сравнение: его снимок и прогноз остаются пустыми.
func (s *hospitalService) Compare(ctx context.Context) ([]*models.HospitalComparison, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hospital",
		"method":  "Compare",
	})

	hospitals, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list hospitals from repository")
		return nil, fmt.Errorf("service: could not compare hospitals: %w", err)
	}

	comparison := make([]*models.HospitalComparison, len(hospitals))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(comparisonConcurrency)

	for i, hospital := range hospitals {
		i, hospital := i, hospital
		g.Go(func() error {
			item := &models.HospitalComparison{Hospital: hospital}
			comparison[i] = item

			entry, err := s.snapshots.Latest(gctx, hospital.HospitalID)
			if err != nil {
				if !errors.Is(err, ErrNotFound) {
					log.WithError(err).WithField("hospital_id", hospital.HospitalID).Warn("Failed to load latest snapshot")
				}
				return nil
			}

			item.LatestSnapshot = entry.Snapshot
			item.LatestAnalysis = entry.Analysis
			item.OccupancyRate = entry.Snapshot.OccupancyRate()
			item.StaffTotal = entry.Snapshot.StaffTotal()
			return nil
		})
	}
	_ = g.Wait()

	log.WithField("count", len(comparison)).Info("Hospital comparison built")
	return comparison, nil
}
