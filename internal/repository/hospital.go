package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/hospital_surge_system/internal/models"
	"github.com/shenikar/hospital_surge_system/internal/service"
)

type HospitalRepository struct {
	db *pgxpool.Pool
}

func NewHospitalRepository(db *pgxpool.Pool) service.HospitalRepository {
	return &HospitalRepository{db: db}
}

// Create регистрирует стационар
func (r *HospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	query := `
		INSERT INTO hospitals (hospital_id, name, location, capacity_total)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		hospital.HospitalID,
		hospital.Name,
		hospital.Location,
		hospital.CapacityTotal,
	).Scan(&hospital.ID, &hospital.CreatedAt, &hospital.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("hospital %s: %w", hospital.HospitalID, service.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create hospital: %w", err)
	}
	return nil
}

// List возвращает все стационары, упорядоченные по названию
func (r *HospitalRepository) List(ctx context.Context) ([]*models.Hospital, error) {
	query := `
		SELECT id, hospital_id, name, location, capacity_total, created_at, updated_at
		FROM hospitals
		ORDER BY name ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	defer rows.Close()

	hospitals := make([]*models.Hospital, 0)
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w", err)
		}
		hospitals = append(hospitals, hospital)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return hospitals, nil
}

// GetByHospitalID возвращает стационар по внешнему идентификатору
func (r *HospitalRepository) GetByHospitalID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	query := `
		SELECT id, hospital_id, name, location, capacity_total, created_at, updated_at
		FROM hospitals
		WHERE hospital_id = $1;
	`
	hospital, err := scanHospital(r.db.QueryRow(ctx, query, hospitalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("hospital %s: %w", hospitalID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get hospital: %w", err)
	}
	return hospital, nil
}

func scanHospital(row pgx.Row) (*models.Hospital, error) {
	hospital := &models.Hospital{}
	err := row.Scan(
		&hospital.ID,
		&hospital.HospitalID,
		&hospital.Name,
		&hospital.Location,
		&hospital.CapacityTotal,
		&hospital.CreatedAt,
		&hospital.UpdatedAt,
	)
	return hospital, err
}
