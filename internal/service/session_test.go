package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/jaldristi/jaldristi_web/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionService(t *testing.T) (SessionService, *mocks.MockAPIClient, *mocks.MockSessionRepository, *mocks.MockDraftRepository) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)
	repo := mocks.NewMockSessionRepository(ctrl)
	drafts := mocks.NewMockDraftRepository(ctrl)
	return NewSessionService(api, repo, drafts, newTestLogger(), newTestConfig()), api, repo, drafts
}

func TestLogin_CreatesSession(t *testing.T) {
	service, api, repo, _ := newTestSessionService(t)
	ctx := context.Background()
	user := &models.User{ID: "u1", Email: "asha@example.org"}

	api.EXPECT().Login(ctx, "asha@example.org", "pw").Return(&models.LoginResult{User: user, Token: "tok"}, nil).Times(1)
	repo.EXPECT().
		SaveSession(ctx, gomock.Any(), newTestConfig().SessionTTL).
		DoAndReturn(func(_ context.Context, s *models.Session, _ any) error {
			assert.NotEqual(t, uuid.Nil, s.ID)
			assert.Equal(t, "tok", s.Token)
			return nil
		}).Times(1)

	session, err := service.Login(ctx, "asha@example.org", "pw")
	require.NoError(t, err)
	assert.Equal(t, user, session.User)
	assert.Equal(t, "asha@example.org", session.Email())
}

func TestLogin_BackendRejects(t *testing.T) {
	service, api, repo, _ := newTestSessionService(t)
	ctx := context.Background()
	backendErr := errors.New("Invalid email or password")

	api.EXPECT().Login(ctx, "a@b.c", "bad").Return(nil, backendErr).Times(1)
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // сессия не создается

	session, err := service.Login(ctx, "a@b.c", "bad")
	require.ErrorIs(t, err, backendErr)
	assert.Nil(t, session)
}

func TestLogin_SaveFails(t *testing.T) {
	service, api, repo, _ := newTestSessionService(t)
	ctx := context.Background()

	api.EXPECT().Login(ctx, "a@b.c", "pw").Return(&models.LoginResult{Token: "tok"}, nil).Times(1)
	repo.EXPECT().SaveSession(ctx, gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	_, err := service.Login(ctx, "a@b.c", "pw")
	assert.ErrorContains(t, err, "could not save session")
}

func TestGetSession_Found(t *testing.T) {
	service, _, repo, _ := newTestSessionService(t)
	ctx := context.Background()
	id := uuid.New()
	stored := &models.Session{ID: id, Token: "tok"}

	repo.EXPECT().GetSession(ctx, id).Return(stored, nil).Times(1)

	session, err := service.GetSession(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, stored, session)
}

func TestGetSession_Missing(t *testing.T) {
	service, _, repo, _ := newTestSessionService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().GetSession(ctx, id).Return(nil, nil).Times(1)

	_, err := service.GetSession(ctx, id.String())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetSession_MalformedID(t *testing.T) {
	service, _, repo, _ := newTestSessionService(t)

	repo.EXPECT().GetSession(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.GetSession(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLogout_DeletesSessionAndDraft(t *testing.T) {
	service, _, repo, drafts := newTestSessionService(t)
	ctx := context.Background()
	id := uuid.New()

	drafts.EXPECT().DeleteDraft(ctx, id).Return(nil).Times(1)
	repo.EXPECT().DeleteSession(ctx, id).Return(nil).Times(1)

	require.NoError(t, service.Logout(ctx, id))
}

func TestLogout_DraftErrorIsNotFatal(t *testing.T) {
	service, _, repo, drafts := newTestSessionService(t)
	ctx := context.Background()
	id := uuid.New()

	drafts.EXPECT().DeleteDraft(ctx, id).Return(errors.New("redis timeout")).Times(1)
	repo.EXPECT().DeleteSession(ctx, id).Return(nil).Times(1)

	require.NoError(t, service.Logout(ctx, id))
}
