package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hospital_surge_system/internal/config"
	"github.com/sirupsen/logrus"
)

// eventSource - источник сырых событий очереди
type eventSource interface {
	Pop(ctx context.Context) (string, error)
}

type redisQueue struct {
	client *redis.Client
}

// Pop - блокирующее извлечение из правой части списка (очереди); 0 означает бесконечное ожидание
func (q redisQueue) Pop(ctx context.Context) (string, error) {
	result, err := q.client.BRPop(ctx, 0, webhookQueueKey).Result()
	if err != nil {
		return "", err
	}
	// result[0] - ключ, result[1] - значение
	return result[1], nil
}

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	source     eventSource
	logger     *logrus.Logger
	cfg        *config.Config
	httpClient *http.Client
	sleep      func(ctx context.Context, d time.Duration)
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return newWorker(redisQueue{client: redisClient}, logger, cfg)
}

func newWorker(source eventSource, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		source: source,
		logger: logger,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: sleepContext,
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping webhook worker.")
				return
			default:
				payload, err := w.source.Pop(ctx)
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
					w.sleep(ctx, w.cfg.WebhookTimeout) // Ждем перед повторной попыткой
					continue
				}

				var event SurgeAlertEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
					continue
				}

				w.processWebhookEvent(ctx, event, payload)
			}
		}
	}()
}

// processWebhookEvent доставляет событие с экспоненциальной задержкой; возвращает true при успехе
func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event SurgeAlertEvent, rawPayload string) bool {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":    event.EventID,
		"hospital_id": event.HospitalID,
		"snapshot_id": event.SnapshotID,
		"risk":        event.Risk,
	})
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.deliver(ctx, event, rawPayload)
		if err == nil {
			log.Info("Webhook delivered successfully.")
			return true
		}
		if ctx.Err() != nil {
			log.WithError(err).Warn("Webhook delivery interrupted by shutdown")
			return false
		}

		log.WithError(err).Warnf("Webhook delivery failed. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		if i < maxRetries-1 {
			w.sleep(ctx, delay)
			delay *= 2 // Экспоненциальная задержка
		}
	}

	log.Errorf("Failed to deliver webhook for event after %d retries.", maxRetries)
	return false
}

// deliver отправляет одну попытку; X-Event-ID одинаков для всех повторов, получатель может по нему дедуплицировать
func (w *WebhookWorker) deliver(ctx context.Context, event SurgeAlertEvent, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-ID", event.EventID.String())
	req.Header.Set("X-Surge-Risk", string(event.Risk))

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint responded with status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
