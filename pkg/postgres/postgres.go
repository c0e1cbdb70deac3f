package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/hospital_surge_system/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	pingAttempts = 5
	pingDelay    = 2 * time.Second
)

// NewPostgresDB создает новый пул соединений PostgreSQL.
// Ping повторяется несколько раз: при старте через docker compose база может подниматься дольше приложения.
func NewPostgresDB(ctx context.Context, appCfg *config.Config, log *logrus.Logger) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	cfgPool.MaxConns = int32(appCfg.DBMaxConns)
	cfgPool.MaxConnIdleTime = 5 * time.Minute
	cfgPool.HealthCheckPeriod = time.Minute

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	// Проверяем соединение с базой данных
	for attempt := 1; ; attempt++ {
		err = dbpool.Ping(ctx)
		if err == nil {
			return dbpool, nil
		}
		if attempt == pingAttempts {
			break
		}
		log.WithError(err).WithField("attempt", attempt).Warn("PostgreSQL is not ready, retrying")

		select {
		case <-ctx.Done():
			dbpool.Close()
			return nil, ctx.Err()
		case <-time.After(pingDelay):
		}
	}

	dbpool.Close()
	return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
}
