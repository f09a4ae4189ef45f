package service

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jaldristi/jaldristi_web/internal/models"
)

// APIClient определяет контракт клиента внешнего JalDristi API
type APIClient interface {
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	ListDepartments(ctx context.Context, token string) ([]models.Department, error)
	CreateIncident(ctx context.Context, token string, draft *models.IncidentDraft) error
	ListUserIncidents(ctx context.Context, token string) ([]models.Incident, error)
}

// SessionRepository хранит сессии; отсутствующая сессия возвращается как (nil, nil)
type SessionRepository interface {
	SaveSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

// DraftRepository хранит черновики формы; отсутствующий черновик возвращается как (nil, nil)
type DraftRepository interface {
	SaveDraft(ctx context.Context, sessionID uuid.UUID, draft *models.IncidentDraft, ttl time.Duration) error
	GetDraft(ctx context.Context, sessionID uuid.UUID) (*models.IncidentDraft, error)
	DeleteDraft(ctx context.Context, sessionID uuid.UUID) error
}

// DepartmentCache кеширует список подразделений; промах кеша возвращается как (nil, nil)
type DepartmentCache interface {
	GetDepartmentsFromCache(ctx context.Context) ([]models.Department, error)
	SetDepartmentsCache(ctx context.Context, departments []models.Department, ttl time.Duration) error
}

// SubmissionLock не дает отправить два инцидента одной сессии одновременно
type SubmissionLock interface {
	AcquireSubmitLock(ctx context.Context, sessionID uuid.UUID, ttl time.Duration) (bool, error)
	ReleaseSubmitLock(ctx context.Context, sessionID uuid.UUID) error
}

// Services собирает сервисы, которые нужны обработчикам
type Services struct {
	Sessions    SessionService
	Departments DepartmentService
	Incidents   IncidentService
	Locations   LocationService
	Submissions SubmissionService
}
