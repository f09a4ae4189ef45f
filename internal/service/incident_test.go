package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/jaldristi/jaldristi_web/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestLogger возвращает логгер без вывода
func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newTestConfig() *config.Config {
	return &config.Config{
		SessionTTL:          time.Hour,
		DraftTTL:            time.Hour,
		DepartmentsCacheTTL: 5 * time.Minute,
		SubmitLockTTL:       30 * time.Second,
		MapCenterLat:        20.5937,
		MapCenterLng:        78.9629,
		MapZoom:             5,
	}
}

func TestListMyIncidents_Success(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	service := NewIncidentService(api, newTestLogger())
	ctx := context.Background()

	expected := []models.Incident{
		{ID: "i1", Description: "Leak", Status: "pending", Category: models.CategoryLeakage},
		{ID: "i2", Description: "Flood", Status: "resolved", Category: models.CategoryFlood},
	}

	// Ожидания
	api.EXPECT().ListUserIncidents(ctx, "tok").Return(expected, nil).Times(1)

	// Действие
	incidents, err := service.ListMyIncidents(ctx, "tok")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestListMyIncidents_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	service := NewIncidentService(api, newTestLogger())
	ctx := context.Background()

	api.EXPECT().ListUserIncidents(ctx, "tok").Return([]models.Incident{}, nil).Times(1)

	incidents, err := service.ListMyIncidents(ctx, "tok")
	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestListMyIncidents_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	service := NewIncidentService(api, newTestLogger())
	ctx := context.Background()

	api.EXPECT().ListUserIncidents(ctx, "tok").Return(nil, errors.New("connection refused")).Times(1)

	incidents, err := service.ListMyIncidents(ctx, "tok")
	require.Error(t, err)
	assert.Nil(t, incidents)
	assert.ErrorContains(t, err, "could not list incidents")
}
