package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	if cfg.WebhookTimeout == 0 {
		cfg.WebhookTimeout = time.Second
	}
	return NewWorker(nil, logger, cfg)
}

func testEvent() IncidentEvent {
	session := &models.Session{ID: uuid.New(), User: &models.User{ID: "u1", Email: "asha@example.org"}, Token: "tok"}
	draft := &models.IncidentDraft{
		Location:     "12.5, 77.25",
		DepartmentID: "d1",
		Category:     models.CategoryFlood,
		Description:  "Street under water",
	}
	return NewIncidentSubmittedEvent(session, draft, time.Date(2024, 10, 1, 10, 0, 0, 0, time.UTC))
}

func TestNewIncidentSubmittedEvent(t *testing.T) {
	event := testEvent()

	assert.Equal(t, EventIncidentSubmitted, event.Type)
	assert.Equal(t, "u1", event.UserID)
	assert.Equal(t, "asha@example.org", event.UserEmail)
	assert.Equal(t, 12.5, event.Latitude)
	assert.Equal(t, 77.25, event.Longitude)
}

func TestProcessEvent_SignedWebhook(t *testing.T) {
	event := testEvent()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var received atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, string(payload), string(body))
		assert.Equal(t, generateHMACSHA256(string(body), "s3cret"), r.Header.Get(signatureHeader))
		received.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookSecret: "s3cret", WebhookMaxRetries: 3})
	worker.processEvent(context.Background(), event, string(payload))

	assert.Equal(t, int32(1), received.Load())
}

func TestProcessEvent_RetriesOnServerError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookMaxRetries: 3, WebhookBaseDelay: time.Millisecond})
	worker.processEvent(context.Background(), testEvent(), `{}`)

	assert.Equal(t, int32(3), attempts.Load())
}

func TestProcessEvent_GivesUpAfterMaxRetries(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookMaxRetries: 2, WebhookBaseDelay: time.Millisecond})
	worker.processEvent(context.Background(), testEvent(), `{}`)

	assert.Equal(t, int32(2), attempts.Load())
}

func TestProcessEvent_Slack(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{SlackWebhookURL: srv.URL})
	worker.processEvent(context.Background(), testEvent(), `{}`)

	require.NotNil(t, got)
	assert.Equal(t, "New Flood incident reported", got["text"])
}

func TestProcessEvent_NoReceivers(t *testing.T) {
	worker := newTestWorker(&config.Config{})
	assert.False(t, worker.Enabled())
	worker.processEvent(context.Background(), testEvent(), `{}`) // не должно паниковать без получателей
}

func TestGenerateHMACSHA256(t *testing.T) {
	sig := generateHMACSHA256("payload", "key")
	assert.Len(t, sig, 64)
	assert.Equal(t, sig, generateHMACSHA256("payload", "key"))
	assert.NotEqual(t, sig, generateHMACSHA256("payload", "other"))
}
