package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hospital_surge_system/internal/models"
	"github.com/shenikar/hospital_surge_system/internal/surge"
)

const (
	webhookQueueKey = "surge_alert_events"
	// alertChannel - канал pub/sub для потоковой трансляции тревог
	alertChannel = "surge_alerts"
)

// SurgeAlertEvent - структура для данных вебхука о высоком риске
type SurgeAlertEvent struct {
	EventID                       uuid.UUID      `json:"event_id"`
	HospitalID                    string         `json:"hospital_id"`
	SnapshotID                    int64          `json:"snapshot_id"`
	AnalysisID                    int64          `json:"analysis_id"`
	Risk                          surge.Tier     `json:"risk"`
	PredictedAdditionalPatients6h int            `json:"predicted_additional_patients_6h"`
	AlertMessage                  string         `json:"alert_message"`
	RecommendedActions            []surge.Action `json:"recommended_actions,omitempty"`
	Timestamp                     time.Time      `json:"timestamp"`
}

// NewSurgeAlertEvent собирает событие из сохраненного снимка и анализа
func NewSurgeAlertEvent(snapshot *models.Snapshot, analysis *models.Analysis) SurgeAlertEvent {
	return SurgeAlertEvent{
		EventID:                       uuid.New(),
		HospitalID:                    snapshot.HospitalID,
		SnapshotID:                    snapshot.ID,
		AnalysisID:                    analysis.ID,
		Risk:                          analysis.Risk,
		PredictedAdditionalPatients6h: analysis.PredictedAdditionalPatients6h,
		AlertMessage:                  analysis.AlertMessage,
		RecommendedActions:            analysis.RecommendedActions,
		Timestamp:                     snapshot.Timestamp,
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event SurgeAlertEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event SurgeAlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в очередь воркера и PUBLISH подписчикам потока в одной транзакции
	_, err = p.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, webhookQueueKey, payload)
		pipe.Publish(ctx, alertChannel, payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// AlertFeed - подписка на тревоги высокого риска в реальном времени
type AlertFeed interface {
	Subscribe(ctx context.Context) (<-chan string, func() error, error)
}

// RedisAlertFeed читает тревоги из канала Redis pub/sub
type RedisAlertFeed struct {
	redisClient *redis.Client
}

func NewRedisAlertFeed(client *redis.Client) *RedisAlertFeed {
	return &RedisAlertFeed{redisClient: client}
}

// Subscribe возвращает канал с JSON тревог и функцию закрытия подписки.
// Канал закрывается после закрытия подписки или отмены ctx.
func (f *RedisAlertFeed) Subscribe(ctx context.Context) (<-chan string, func() error, error) {
	sub := f.redisClient.Subscribe(ctx, alertChannel)
	// Receive дожидается подтверждения подписки, иначе ранние сообщения теряются
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to alert channel: %w", err)
	}

	out := make(chan string)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			select {
			case out <- msg.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, sub.Close, nil
}
