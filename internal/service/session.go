package service

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionService - хранилище сессии: текущий пользователь и токен backend.
// Создается при входе, уничтожается при выходе.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	GetSession(ctx context.Context, id string) (*models.Session, error)
	Logout(ctx context.Context, id uuid.UUID) error
}

type sessionService struct {
	api    APIClient
	repo   SessionRepository
	drafts DraftRepository
	logger *logrus.Logger
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionService(api APIClient, repo SessionRepository, drafts DraftRepository, logger *logrus.Logger, cfg *config.Config) SessionService {
	return &sessionService{
		api:    api,
		repo:   repo,
		drafts: drafts,
		logger: logger,
		ttl:    cfg.SessionTTL,
		now:    time.Now,
	}
}

// Login аутентифицирует пользователя в backend и сохраняет новую сессию
func (s *sessionService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "session",
		"method":  "Login",
	})

	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		log.WithError(err).Warn("Backend rejected login")
		return nil, fmt.Errorf("service: could not log in: %w", err)
	}

	session := &models.Session{
		ID:        uuid.New(),
		User:      result.User,
		Token:     result.Token,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.SaveSession(ctx, session, s.ttl); err != nil {
		log.WithError(err).Error("Failed to save session")
		return nil, fmt.Errorf("service: could not save session: %w", err)
	}

	log.WithField("session_id", session.ID).Info("Session created")
	return session, nil
}

// GetSession загружает сессию; некорректный или неизвестный id -> ErrSessionNotFound
func (s *sessionService) GetSession(ctx context.Context, id string) (*models.Session, error) {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Logout уничтожает сессию вместе с черновиком формы
func (s *sessionService) Logout(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "Logout",
		"session_id": id,
	})

	if err := s.drafts.DeleteDraft(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete draft on logout")
	}
	if err := s.repo.DeleteSession(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete session")
		return fmt.Errorf("service: could not delete session: %w", err)
	}

	log.Info("Session destroyed")
	return nil
}
