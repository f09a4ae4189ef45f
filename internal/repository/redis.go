package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/jaldristi/jaldristi_web/internal/service"
	"github.com/redis/go-redis/v9"
)

const departmentsCacheKey = "departments"

func sessionKey(id uuid.UUID) string    { return fmt.Sprintf("session:%s", id.String()) }
func draftKey(id uuid.UUID) string      { return fmt.Sprintf("draft:%s", id.String()) }
func submitLockKey(id uuid.UUID) string { return fmt.Sprintf("submit_lock:%s", id.String()) }

// RedisRepository хранит сессии, черновики, кеш подразделений и блокировки отправки
type RedisRepository struct {
	redisClient *redis.Client
}

func NewRedisRepository(redisClient *redis.Client) *RedisRepository {
	return &RedisRepository{
		redisClient: redisClient,
	}
}

// SaveSession сохраняет сессию с TTL
func (r *RedisRepository) SaveSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	if err := r.setJSON(ctx, sessionKey(session.ID), session, ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession возвращает (nil, nil), если сессии нет
func (r *RedisRepository) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	session := &models.Session{}
	found, err := r.getJSON(ctx, sessionKey(id), session)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if !found {
		return nil, nil
	}
	return session, nil
}

func (r *RedisRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// SaveDraft сохраняет черновик формы вместе с фото
func (r *RedisRepository) SaveDraft(ctx context.Context, sessionID uuid.UUID, draft *models.IncidentDraft, ttl time.Duration) error {
	if err := r.setJSON(ctx, draftKey(sessionID), draft, ttl); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// GetDraft возвращает (nil, nil), если черновика нет
func (r *RedisRepository) GetDraft(ctx context.Context, sessionID uuid.UUID) (*models.IncidentDraft, error) {
	draft := &models.IncidentDraft{}
	found, err := r.getJSON(ctx, draftKey(sessionID), draft)
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	if !found {
		return nil, nil
	}
	return draft, nil
}

func (r *RedisRepository) DeleteDraft(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.redisClient.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// GetDepartmentsFromCache пытается получить список подразделений из Redis
func (r *RedisRepository) GetDepartmentsFromCache(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	found, err := r.getJSON(ctx, departmentsCacheKey, &departments)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments from cache: %w", err)
	}
	if !found {
		return nil, nil
	}
	return departments, nil
}

// SetDepartmentsCache сохраняет список подразделений в Redis
func (r *RedisRepository) SetDepartmentsCache(ctx context.Context, departments []models.Department, ttl time.Duration) error {
	if err := r.setJSON(ctx, departmentsCacheKey, departments, ttl); err != nil {
		return fmt.Errorf("failed to set departments cache: %w", err)
	}
	return nil
}

// AcquireSubmitLock ставит блокировку SETNX; false, если отправка уже идет
func (r *RedisRepository) AcquireSubmitLock(ctx context.Context, sessionID uuid.UUID, ttl time.Duration) (bool, error) {
	ok, err := r.redisClient.SetNX(ctx, submitLockKey(sessionID), time.Now().UTC().Format(time.RFC3339Nano), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	return ok, nil
}

func (r *RedisRepository) ReleaseSubmitLock(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.redisClient.Del(ctx, submitLockKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to release submit lock: %w", err)
	}
	return nil
}

func (r *RedisRepository) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.redisClient.Set(ctx, key, payload, ttl).Err()
}

// getJSON возвращает false без ошибки при отсутствии ключа
func (r *RedisRepository) getJSON(ctx context.Context, key string, out any) (bool, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(val, out); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

var (
	_ service.SessionRepository = (*RedisRepository)(nil)
	_ service.DraftRepository   = (*RedisRepository)(nil)
	_ service.DepartmentCache   = (*RedisRepository)(nil)
	_ service.SubmissionLock    = (*RedisRepository)(nil)
)
