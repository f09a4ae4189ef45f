package service

//go:generate mockgen -source=department.go -destination=mocks/mock_department.go -package=mocks

import (
	"context"
	"time"

	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/sirupsen/logrus"
)

// DepartmentService - выбор подразделения для формы.
// Ошибки только логируются: вызывающий получает пустой список.
type DepartmentService interface {
	ListDepartments(ctx context.Context, token string) []models.Department
}

type departmentService struct {
	api      APIClient
	cache    DepartmentCache
	logger   *logrus.Logger
	cacheTTL time.Duration
}

func NewDepartmentService(api APIClient, cache DepartmentCache, logger *logrus.Logger, cfg *config.Config) DepartmentService {
	return &departmentService{
		api:      api,
		cache:    cache,
		logger:   logger,
		cacheTTL: cfg.DepartmentsCacheTTL,
	}
}

func (s *departmentService) ListDepartments(ctx context.Context, token string) []models.Department {
	log := s.logger.WithFields(logrus.Fields{
		"service": "department",
		"method":  "ListDepartments",
	})

	cached, err := s.cache.GetDepartmentsFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read departments from cache")
	}
	if len(cached) > 0 {
		log.WithField("count", len(cached)).Debug("Departments served from cache")
		return cached
	}

	departments, err := s.api.ListDepartments(ctx, token)
	if err != nil {
		log.WithError(err).Error("Error fetching departments")
		return []models.Department{}
	}

	if len(departments) > 0 {
		if err := s.cache.SetDepartmentsCache(ctx, departments, s.cacheTTL); err != nil {
			log.WithError(err).Warn("Failed to cache departments")
		}
	}

	log.WithField("count", len(departments)).Info("Departments fetched")
	return departments
}
