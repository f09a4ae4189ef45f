package service

//go:generate mockgen -source=submission.go -destination=mocks/mock_submission.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/jaldristi/jaldristi_web/internal/webhook"
	"github.com/sirupsen/logrus"
)

var (
	// ErrIncompleteForm - единая ошибка валидации; не сообщает, какое поле не заполнено
	ErrIncompleteForm       = errors.New("please fill out all fields before submitting")
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
	ErrSubmissionFailed     = errors.New("failed to submit the report")
	ErrIllegalTransition    = errors.New("illegal submission state transition")
)

// submissionTransitions: Idle -> Validating -> Submitting -> {Succeeded, Failed}.
// Неудачная валидация возвращает в Idle.
var submissionTransitions = map[models.SubmissionState][]models.SubmissionState{
	models.SubmissionIdle:       {models.SubmissionValidating},
	models.SubmissionValidating: {models.SubmissionIdle, models.SubmissionSubmitting},
	models.SubmissionSubmitting: {models.SubmissionSucceeded, models.SubmissionFailed},
}

type submissionFlow struct {
	state models.SubmissionState
}

func (f *submissionFlow) transition(to models.SubmissionState) error {
	for _, allowed := range submissionTransitions[f.state] {
		if allowed == to {
			f.state = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, f.state, to)
}

// SubmissionService - черновик формы и его однократная отправка в backend
type SubmissionService interface {
	GetDraft(ctx context.Context, sessionID uuid.UUID) (*models.IncidentDraft, error)
	SaveDraft(ctx context.Context, sessionID uuid.UUID, draft *models.IncidentDraft) error
	Submit(ctx context.Context, session *models.Session, draft *models.IncidentDraft) (models.SubmissionState, error)
}

type submissionService struct {
	api       APIClient
	drafts    DraftRepository
	lock      SubmissionLock
	publisher webhook.Publisher
	logger    *logrus.Logger
	validate  *validator.Validate
	draftTTL  time.Duration
	lockTTL   time.Duration
	now       func() time.Time
}

func NewSubmissionService(
	api APIClient,
	drafts DraftRepository,
	lock SubmissionLock,
	publisher webhook.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) SubmissionService {
	return &submissionService{
		api:       api,
		drafts:    drafts,
		lock:      lock,
		publisher: publisher,
		logger:    logger,
		validate:  NewDraftValidator(),
		draftTTL:  cfg.DraftTTL,
		lockTTL:   cfg.SubmitLockTTL,
		now:       time.Now,
	}
}

// NewDraftValidator создает validator с правилом latlng для строки "lat,lng"
func NewDraftValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("latlng", func(fl validator.FieldLevel) bool {
		_, err := models.ParseLocation(fl.Field().String())
		return err == nil
	})
	return v
}

// GetDraft возвращает черновик сессии или пустой черновик
func (s *submissionService) GetDraft(ctx context.Context, sessionID uuid.UUID) (*models.IncidentDraft, error) {
	draft, err := s.drafts.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load draft: %w", err)
	}
	if draft == nil {
		return &models.IncidentDraft{}, nil
	}
	return draft, nil
}

func (s *submissionService) SaveDraft(ctx context.Context, sessionID uuid.UUID, draft *models.IncidentDraft) error {
	draft.UpdatedAt = s.now().UTC()
	if err := s.drafts.SaveDraft(ctx, sessionID, draft, s.draftTTL); err != nil {
		return fmt.Errorf("service: could not save draft: %w", err)
	}
	return nil
}

// Submit проверяет черновик и отправляет его один раз. Повторов нет:
// при ошибке черновик остается нетронутым для ручной повторной отправки.
func (s *submissionService) Submit(ctx context.Context, session *models.Session, draft *models.IncidentDraft) (models.SubmissionState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "submission",
		"method":     "Submit",
		"session_id": session.ID,
	})
	flow := &submissionFlow{state: models.SubmissionIdle}

	if err := flow.transition(models.SubmissionValidating); err != nil {
		return flow.state, err
	}
	trimmed := draft.Trimmed()
	if err := s.validate.Struct(&trimmed); err != nil {
		log.WithError(err).Info("Incomplete incident form")
		if err := flow.transition(models.SubmissionIdle); err != nil {
			return flow.state, err
		}
		return flow.state, ErrIncompleteForm
	}

	if err := flow.transition(models.SubmissionSubmitting); err != nil {
		return flow.state, err
	}
	acquired, err := s.lock.AcquireSubmitLock(ctx, session.ID, s.lockTTL)
	if err != nil {
		log.WithError(err).Error("Failed to acquire submit lock")
		_ = flow.transition(models.SubmissionFailed)
		return flow.state, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	if !acquired {
		log.Warn("Submission already in flight for this session")
		return flow.state, ErrSubmissionInProgress
	}
	defer func() {
		// отдельный контекст: снять блокировку нужно даже при отмене запроса
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := s.lock.ReleaseSubmitLock(releaseCtx, session.ID); err != nil {
			log.WithError(err).Warn("Failed to release submit lock")
		}
	}()

	if err := s.api.CreateIncident(ctx, session.Token, &trimmed); err != nil {
		log.WithError(err).Error("Error submitting the report")
		_ = flow.transition(models.SubmissionFailed)
		return flow.state, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	if err := flow.transition(models.SubmissionSucceeded); err != nil {
		return flow.state, err
	}

	if err := s.drafts.DeleteDraft(ctx, session.ID); err != nil {
		log.WithError(err).Warn("Failed to delete submitted draft")
	}
	event := webhook.NewIncidentSubmittedEvent(session, &trimmed, s.now().UTC())
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish incident event")
	}

	log.WithField("department", trimmed.DepartmentID).Info("Incident submitted successfully")
	return flow.state, nil
}
