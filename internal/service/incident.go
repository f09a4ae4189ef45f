package service

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentService - список инцидентов текущего пользователя
type IncidentService interface {
	ListMyIncidents(ctx context.Context, token string) ([]models.Incident, error)
}

type incidentService struct {
	api    APIClient
	logger *logrus.Logger
}

func NewIncidentService(api APIClient, logger *logrus.Logger) IncidentService {
	return &incidentService{
		api:    api,
		logger: logger,
	}
}

// ListMyIncidents возвращает инциденты, отправленные владельцем токена
func (s *incidentService) ListMyIncidents(ctx context.Context, token string) ([]models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListMyIncidents",
	})
	log.Info("Listing user incidents")

	incidents, err := s.api.ListUserIncidents(ctx, token)
	if err != nil {
		log.WithError(err).Error("Error fetching incidents")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}
