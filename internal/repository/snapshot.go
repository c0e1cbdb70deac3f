package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hospital_surge_system/internal/models"
	"github.com/shenikar/hospital_surge_system/internal/service"
	"github.com/shenikar/hospital_surge_system/internal/surge"
)

const historyColumns = `
	s.id,
	s.hospital_id,
	s.timestamp,
	s.beds_total,
	s.beds_free,
	s.doctors_on_shift,
	s.nurses_on_shift,
	s.oxygen_cylinders,
	s.ventilators,
	s.incoming_emergencies,
	s.aqi,
	s.festival,
	s.news_summary,
	s.medicines,
	a.id,
	a.risk,
	a.predicted_additional_patients_6h,
	a.recommended_actions,
	a.alert_message,
	a.confidence_score,
	a.capacity_ratio,
	a.trigger_score,
	a.reasoning,
	a.simulated_outcomes,
	a.strategy,
	a.engine_version,
	a.created_at
`

type SnapshotRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewSnapshotRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.SnapshotRepository {
	return &SnapshotRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// CreateWithAnalysis сохраняет снимок и результат анализа в одной транзакции
func (r *SnapshotRepository) CreateWithAnalysis(ctx context.Context, snapshot *models.Snapshot, analysis *models.Analysis) error {
	medicines, err := json.Marshal(snapshot.Medicines)
	if err != nil {
		return fmt.Errorf("failed to marshal medicines: %w", err)
	}
	actions, err := json.Marshal(analysis.RecommendedActions)
	if err != nil {
		return fmt.Errorf("failed to marshal recommended actions: %w", err)
	}
	outcomes, err := json.Marshal(analysis.SimulatedOutcomes)
	if err != nil {
		return fmt.Errorf("failed to marshal simulated outcomes: %w", err)
	}

	if snapshot.Timestamp.IsZero() {
		snapshot.Timestamp = time.Now().UTC()
	}

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		snapshotQuery := `
			INSERT INTO hospital_snapshots (
				hospital_id, timestamp, beds_total, beds_free, doctors_on_shift, nurses_on_shift,
				oxygen_cylinders, ventilators, incoming_emergencies, aqi, festival, news_summary, medicines
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id, timestamp;
		`
		if err := tx.QueryRow(ctx, snapshotQuery,
			snapshot.HospitalID,
			snapshot.Timestamp,
			snapshot.BedsTotal,
			snapshot.BedsFree,
			snapshot.DoctorsOnShift,
			snapshot.NursesOnShift,
			snapshot.OxygenCylinders,
			snapshot.Ventilators,
			snapshot.IncomingEmergencies,
			snapshot.AQI,
			snapshot.Festival,
			snapshot.NewsSummary,
			medicines,
		).Scan(&snapshot.ID, &snapshot.Timestamp); err != nil {
			return fmt.Errorf("failed to insert snapshot: %w", err)
		}

		analysisQuery := `
			INSERT INTO ai_analyses (
				snapshot_id, risk, predicted_additional_patients_6h, recommended_actions, alert_message,
				confidence_score, capacity_ratio, trigger_score, reasoning, simulated_outcomes, strategy, engine_version
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id, created_at;
		`
		analysis.SnapshotID = snapshot.ID
		if err := tx.QueryRow(ctx, analysisQuery,
			analysis.SnapshotID,
			string(analysis.Risk),
			analysis.PredictedAdditionalPatients6h,
			actions,
			analysis.AlertMessage,
			analysis.Confidence,
			analysis.CapacityRatio,
			analysis.TriggerScore,
			analysis.Reasoning,
			outcomes,
			analysis.Strategy,
			analysis.EngineVersion,
		).Scan(&analysis.ID, &analysis.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert analysis: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	return nil
}

// GetByID возвращает снимок вместе с анализом
func (r *SnapshotRepository) GetByID(ctx context.Context, id int64) (*models.HistoryEntry, error) {
	query := `SELECT` + historyColumns + `
		FROM hospital_snapshots s
		LEFT JOIN ai_analyses a ON a.snapshot_id = s.id
		WHERE s.id = $1;
	`
	entry, err := scanHistoryEntry(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("snapshot with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get snapshot by id: %w", err)
	}
	return entry, nil
}

// Delete удаляет снимок; анализ удаляется в той же транзакции
func (r *SnapshotRepository) Delete(ctx context.Context, id int64) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM ai_analyses WHERE snapshot_id = $1;`, id); err != nil {
			return fmt.Errorf("failed to delete analysis: %w", err)
		}
		cmdTag, err := tx.Exec(ctx, `DELETE FROM hospital_snapshots WHERE id = $1;`, id)
		if err != nil {
			return fmt.Errorf("failed to delete snapshot: %w", err)
		}
		// RowsAffected() == 0 значит снимка с таким id не существует
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("snapshot with id %d not found for delete: %w", id, service.ErrNotFound)
		}
		return nil
	})
}

// ListHistory возвращает снимки стационара с анализами в заданном интервале
func (r *SnapshotRepository) ListHistory(ctx context.Context, filter models.HistoryFilter) ([]*models.HistoryEntry, error) {
	conditions := []string{"s.hospital_id = $1"}
	args := []any{filter.HospitalID}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("s.timestamp >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("s.timestamp <= $%d", len(args)))
	}
	order := "DESC"
	if filter.Ascending {
		order = "ASC"
	}

	query := `SELECT` + historyColumns + `
		FROM hospital_snapshots s
		LEFT JOIN ai_analyses a ON a.snapshot_id = s.id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY s.timestamp ` + order + `;
	`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot history: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.HistoryEntry, 0)
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return entries, nil
}

// Latest возвращает самый свежий снимок стационара
func (r *SnapshotRepository) Latest(ctx context.Context, hospitalID string) (*models.HistoryEntry, error) {
	query := `SELECT` + historyColumns + `
		FROM hospital_snapshots s
		LEFT JOIN ai_analyses a ON a.snapshot_id = s.id
		WHERE s.hospital_id = $1
		ORDER BY s.timestamp DESC
		LIMIT 1;
	`
	entry, err := scanHistoryEntry(r.db.QueryRow(ctx, query, hospitalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no snapshots for hospital %s: %w", hospitalID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return entry, nil
}

func latestCacheKey(hospitalID string) string {
	return fmt.Sprintf("hospital:%s:latest", hospitalID)
}

// GetLatestFromCache пытается получить последний анализ из Redis
func (r *SnapshotRepository) GetLatestFromCache(ctx context.Context, hospitalID string) (*models.HistoryEntry, error) {
	val, err := r.redisClient.Get(ctx, latestCacheKey(hospitalID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest analysis from cache: %w", err)
	}

	entry := &models.HistoryEntry{}
	if err := json.Unmarshal(val, entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal latest analysis from cache: %w", err)
	}
	return entry, nil
}

// SetLatestCache сохраняет последний анализ в Redis
func (r *SnapshotRepository) SetLatestCache(ctx context.Context, entry *models.HistoryEntry) error {
	val, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal latest analysis for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, latestCacheKey(entry.Snapshot.HospitalID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set latest analysis in cache: %w", err)
	}
	return nil
}

// InvalidateLatestCache удаляет последний анализ стационара из кэша
func (r *SnapshotRepository) InvalidateLatestCache(ctx context.Context, hospitalID string) error {
	if err := r.redisClient.Del(ctx, latestCacheKey(hospitalID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate latest analysis cache: %w", err)
	}
	return nil
}

// scanHistoryEntry разбирает строку LEFT JOIN; колонки анализа могут быть NULL
func scanHistoryEntry(row pgx.Row) (*models.HistoryEntry, error) {
	var (
		snapshot  models.Snapshot
		medicines []byte

		analysisID     *int64
		risk           *string
		predicted      *int
		actions        []byte
		alertMessage   *string
		confidence     *float64
		capacityRatio  *float64
		triggerScore   *int
		reasoning      *string
		outcomes       []byte
		strategy       *string
		engineVersion  *string
		analysisCreate *time.Time
	)

	if err := row.Scan(
		&snapshot.ID,
		&snapshot.HospitalID,
		&snapshot.Timestamp,
		&snapshot.BedsTotal,
		&snapshot.BedsFree,
		&snapshot.DoctorsOnShift,
		&snapshot.NursesOnShift,
		&snapshot.OxygenCylinders,
		&snapshot.Ventilators,
		&snapshot.IncomingEmergencies,
		&snapshot.AQI,
		&snapshot.Festival,
		&snapshot.NewsSummary,
		&medicines,
		&analysisID,
		&risk,
		&predicted,
		&actions,
		&alertMessage,
		&confidence,
		&capacityRatio,
		&triggerScore,
		&reasoning,
		&outcomes,
		&strategy,
		&engineVersion,
		&analysisCreate,
	); err != nil {
		return nil, err
	}

	if len(medicines) > 0 {
		if err := json.Unmarshal(medicines, &snapshot.Medicines); err != nil {
			return nil, fmt.Errorf("failed to unmarshal medicines: %w", err)
		}
	}

	entry := &models.HistoryEntry{Snapshot: &snapshot}
	if analysisID == nil {
		return entry, nil
	}

	analysis := &models.Analysis{
		ID:                            *analysisID,
		SnapshotID:                    snapshot.ID,
		Risk:                          surge.Tier(*risk),
		PredictedAdditionalPatients6h: *predicted,
		AlertMessage:                  *alertMessage,
		Confidence:                    *confidence,
		CapacityRatio:                 *capacityRatio,
		TriggerScore:                  *triggerScore,
		Reasoning:                     *reasoning,
		Strategy:                      *strategy,
		EngineVersion:                 *engineVersion,
		CreatedAt:                     *analysisCreate,
	}
	if err := json.Unmarshal(actions, &analysis.RecommendedActions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommended actions: %w", err)
	}
	if err := json.Unmarshal(outcomes, &analysis.SimulatedOutcomes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal simulated outcomes: %w", err)
	}
	entry.Analysis = analysis
	return entry, nil
}
