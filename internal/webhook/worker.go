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

	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

const signatureHeader = "X-Webhook-Signature"

// Worker - структура для доставки событий во внешний вебхук и Slack
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Enabled сообщает, настроен ли хотя бы один получатель
func (w *Worker) Enabled() bool {
	return receiversConfigured(w.cfg)
}

// Start запускает горутину для обработки очереди событий
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting incident event worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping incident event worker.")
				return
			default:
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, eventQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop incident event from Redis")
					sleepCtx(ctx, w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event IncidentEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal incident event from Redis")
					continue
				}

				w.processEvent(ctx, event, payload)
			}
		}
	}()
}

func (w *Worker) processEvent(ctx context.Context, event IncidentEvent, rawPayload string) {
	log := w.logger.WithField("event_type", event.Type).WithField("department_id", event.DepartmentID)
	log.Debug("Processing incident event...")

	if !w.Enabled() {
		log.Debug("No webhook receivers configured. Skipping delivery.")
		return
	}

	if w.cfg.WebhookURL != "" {
		w.deliverWebhook(ctx, log, rawPayload)
	}
	if w.cfg.SlackWebhookURL != "" {
		if err := slack.PostWebhookCustomHTTPContext(ctx, w.cfg.SlackWebhookURL, w.httpClient, slackMessage(event)); err != nil {
			log.WithError(err).Error("Failed to post incident event to Slack")
		} else {
			log.Info("Incident event posted to Slack.")
		}
	}
}

func (w *Worker) deliverWebhook(ctx context.Context, log *logrus.Entry, rawPayload string) {
	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		retriesLeft := maxRetries - 1 - i

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create webhook request. Retries left: %d", retriesLeft)
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		// HMAC-подпись, если WEBHOOK_SECRET задан
		if w.cfg.WebhookSecret != "" {
			req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retrying in %v. Retries left: %d", delay, retriesLeft)
		} else {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				log.Info("Webhook delivered successfully.")
				return
			}
			log.Warnf("Webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, delay, retriesLeft)
		}

		if retriesLeft > 0 {
			if !sleepCtx(ctx, delay) {
				return
			}
			delay *= 2 // Экспоненциальная задержка
		}
	}

	log.Errorf("Failed to deliver webhook after %d attempts.", maxRetries)
}

// slackMessage форматирует событие для incoming webhook Slack
func slackMessage(event IncidentEvent) *slack.WebhookMessage {
	reporter := event.UserEmail
	if reporter == "" {
		reporter = "unknown"
	}
	return &slack.WebhookMessage{
		Text: fmt.Sprintf("New %s incident reported", event.Category.Label()),
		Attachments: []slack.Attachment{
			{
				Color: "#2563eb",
				Text:  event.Description,
				Fields: []slack.AttachmentField{
					{Title: "Department", Value: event.DepartmentID, Short: true},
					{Title: "Reporter", Value: reporter, Short: true},
					{Title: "Location", Value: fmt.Sprintf("%g,%g", event.Latitude, event.Longitude), Short: true},
					{Title: "Submitted", Value: event.SubmittedAt.Format(time.RFC3339), Short: true},
				},
			},
		},
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// sleepCtx ждет d или отмены контекста; false, если контекст отменен
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
