package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	eventQueueKey = "incident_events"

	EventIncidentSubmitted = "incident.submitted"
)

// IncidentEvent - событие об успешно отправленном инциденте
type IncidentEvent struct {
	Type         string          `json:"type"`
	UserID       string          `json:"user_id,omitempty"`
	UserEmail    string          `json:"user_email,omitempty"`
	DepartmentID string          `json:"department_id"`
	Category     models.Category `json:"category"`
	Description  string          `json:"description"`
	Latitude     float64         `json:"latitude"`
	Longitude    float64         `json:"longitude"`
	SubmittedAt  time.Time       `json:"submitted_at"`
}

// NewIncidentSubmittedEvent собирает событие из сессии и отправленного черновика
func NewIncidentSubmittedEvent(session *models.Session, draft *models.IncidentDraft, at time.Time) IncidentEvent {
	event := IncidentEvent{
		Type:         EventIncidentSubmitted,
		UserEmail:    session.Email(),
		DepartmentID: draft.DepartmentID,
		Category:     draft.Category,
		Description:  draft.Description,
		SubmittedAt:  at,
	}
	if session.User != nil {
		event.UserID = session.User.ID
	}
	if coords, err := models.ParseLocation(draft.Location); err == nil {
		event.Latitude = coords.Latitude
		event.Longitude = coords.Longitude
	}
	return event
}

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
}

// NewPublisher возвращает очередь Redis, только если событие будет кому доставить.
// Без получателей воркер не запускается, и очередь никто бы не читал.
func NewPublisher(client *redis.Client, cfg *config.Config) Publisher {
	if !receiversConfigured(cfg) {
		return NopPublisher{}
	}
	return NewRedisPublisher(client)
}

func receiversConfigured(cfg *config.Config) bool {
	return cfg.WebhookURL != "" || cfg.SlackWebhookURL != ""
}

// NopPublisher отбрасывает события
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, IncidentEvent) error {
	return nil
}

// RedisPublisher - реализация Publisher, использующая список Redis как очередь
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в левую часть очереди; воркер забирает справа
func (p *RedisPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}
