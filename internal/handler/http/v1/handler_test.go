package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jaldristi/jaldristi_web/internal/backend"
	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/jaldristi/jaldristi_web/internal/service"
	"github.com/jaldristi/jaldristi_web/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	sessions    *mocks.MockSessionService
	departments *mocks.MockDepartmentService
	incidents   *mocks.MockIncidentService
	submissions *mocks.MockSubmissionService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		sessions:    mocks.NewMockSessionService(ctrl),
		departments: mocks.NewMockDepartmentService(ctrl),
		incidents:   mocks.NewMockIncidentService(ctrl),
		submissions: mocks.NewMockSubmissionService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		MaxUploadMB:  1,
		MapCenterLat: 20.5937,
		MapCenterLng: 78.9629,
		MapZoom:      5,
	}

	services := service.Services{
		Sessions:    m.sessions,
		Departments: m.departments,
		Incidents:   m.incidents,
		Locations:   service.NewLocationService(logger, cfg),
		Submissions: m.submissions,
	}
	handler := NewHandler(services, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// expectSession настраивает мок на успешную загрузку сессии и возвращает заголовок авторизации
func expectSession(m testMocks) (*models.Session, map[string]string) {
	session := &models.Session{
		ID:    uuid.New(),
		User:  &models.User{ID: "u1", Email: "asha@example.org"},
		Token: "backend-token",
	}
	m.sessions.EXPECT().GetSession(gomock.Any(), session.ID.String()).Return(session, nil).Times(1)
	return session, map[string]string{"Authorization": "Bearer " + session.ID.String()}
}

func multipartBody(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withImage {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="leak.png"`)
		header.Set("Content-Type", "image/png")
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\nfake"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestLogin_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	session := &models.Session{ID: uuid.New(), User: &models.User{ID: "u1", Email: "asha@example.org"}, Token: "tok"}

	m.sessions.EXPECT().Login(gomock.Any(), "asha@example.org", "secret").Return(session, nil).Times(1)

	bodyBytes, _ := json.Marshal(LoginRequest{Email: " asha@example.org ", Password: "secret"})
	w := makeRequest(router, "POST", "/api/v1/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, session.ID.String(), resp.SessionID)
	assert.Equal(t, "asha@example.org", resp.User.Email)
}

func TestLogin_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.sessions.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/login", bytes.NewBufferString(`{"email": "x"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestLogin_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.sessions.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(LoginRequest{Email: "asha@example.org"})
	w := makeRequest(router, "POST", "/api/v1/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Password' failed on the 'required' tag")
}

func TestLogin_BackendRejects(t *testing.T) {
	_, m, router := newTestHandler(t)
	apiErr := &backend.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"}

	m.sessions.EXPECT().Login(gomock.Any(), "asha@example.org", "bad").
		Return(nil, fmt.Errorf("service: could not log in: %w", apiErr)).Times(1)

	bodyBytes, _ := json.Marshal(LoginRequest{Email: "asha@example.org", Password: "bad"})
	w := makeRequest(router, "POST", "/api/v1/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid email or password"}`, w.Body.String())
}

func TestLogin_BackendUnavailable(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.sessions.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: connection refused")).Times(1)

	bodyBytes, _ := json.Marshal(LoginRequest{Email: "asha@example.org", Password: "pw"})
	w := makeRequest(router, "POST", "/api/v1/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Login failed. Please try again.")
}

func TestAuthMiddleware(t *testing.T) {
	_, m, router := newTestHandler(t)

	t.Run("No session", func(t *testing.T) {
		w := makeRequest(router, "GET", "/api/v1/incidents", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "session required")
	})

	t.Run("Unknown session", func(t *testing.T) {
		m.sessions.EXPECT().GetSession(gomock.Any(), "stale").Return(nil, service.ErrSessionNotFound).Times(1)

		w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"X-Session-ID": "stale"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid session")
	})

	t.Run("Session store error", func(t *testing.T) {
		m.sessions.EXPECT().GetSession(gomock.Any(), "abc").Return(nil, errors.New("redis down")).Times(1)

		w := makeRequest(router, "GET", "/api/v1/departments", nil, map[string]string{"Authorization": "Bearer abc"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLogout(t *testing.T) {
	_, m, router := newTestHandler(t)
	session, auth := expectSession(m)

	m.sessions.EXPECT().Logout(gomock.Any(), session.ID).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/logout", nil, auth)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListDepartments(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, auth := expectSession(m)

	m.departments.EXPECT().ListDepartments(gomock.Any(), "backend-token").
		Return([]models.Department{{ID: "d1", Name: "Water"}}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/departments", nil, auth)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id": "d1", "name": "Water"}]`, w.Body.String())
}

func TestListIncidents_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, auth := expectSession(m)
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	m.incidents.EXPECT().ListMyIncidents(gomock.Any(), "backend-token").Return([]models.Incident{
		{ID: "i1", Description: "Leak", Status: "In Progress", Category: models.CategoryLeakage,
			Department: &models.Department{ID: "d1", Name: "Water"}, CreatedAt: createdAt},
		{ID: "i2", Description: "Dry taps", Status: "closed", Category: models.CategoryScarcity, CreatedAt: createdAt},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, auth)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "badge-blue", resp[0].StatusColor)
	assert.Equal(t, "Water Leakage", resp[0].CategoryLabel)
	assert.Equal(t, "Water", resp[0].Department)
	assert.Equal(t, "badge-gray", resp[1].StatusColor)
	assert.Equal(t, "-", resp[1].Department)
}

func TestListIncidents_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, auth := expectSession(m)

	m.incidents.EXPECT().ListMyIncidents(gomock.Any(), gomock.Any()).Return(nil, errors.New("backend down")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, auth)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCreateIncident_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	session, auth := expectSession(m)

	m.submissions.EXPECT().
		Submit(gomock.Any(), session, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Session, draft *models.IncidentDraft) (models.SubmissionState, error) {
			assert.Equal(t, "d1", draft.DepartmentID)
			assert.Equal(t, models.CategoryFlood, draft.Category)
			assert.Equal(t, "19.076,72.8777", draft.Location)
			require.NotNil(t, draft.Image)
			assert.Equal(t, "leak.png", draft.Image.Filename)
			assert.Equal(t, "image/png", draft.Image.ContentType)
			return models.SubmissionSucceeded, nil
		}).Times(1)

	body, contentType := multipartBody(t, map[string]string{
		"department":  "d1",
		"category":    "flood",
		"description": "Street under water",
		"latitude":    "19.076",
		"longitude":   "72.8777",
	}, true)
	auth["Content-Type"] = contentType
	w := makeRequest(router, "POST", "/api/v1/incidents", body, auth)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"state": "succeeded"}`, w.Body.String())
}

func TestCreateIncident_Errors(t *testing.T) {
	tests := []struct {
		name       string
		state      models.SubmissionState
		err        error
		wantStatus int
	}{
		{name: "incomplete form", state: models.SubmissionIdle, err: service.ErrIncompleteForm, wantStatus: http.StatusBadRequest},
		{name: "in progress", state: models.SubmissionSubmitting, err: service.ErrSubmissionInProgress, wantStatus: http.StatusConflict},
		{name: "backend rejected", state: models.SubmissionFailed,
			err:        fmt.Errorf("%w: %w", service.ErrSubmissionFailed, &backend.APIError{StatusCode: 500}),
			wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			session, auth := expectSession(m)

			m.submissions.EXPECT().Submit(gomock.Any(), session, gomock.Any()).Return(tt.state, tt.err).Times(1)

			body, contentType := multipartBody(t, map[string]string{"location": "12.9,77.5"}, false)
			auth["Content-Type"] = contentType
			w := makeRequest(router, "POST", "/api/v1/incidents", body, auth)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreateIncident_RejectsNonImage(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, auth := expectSession(m)

	m.submissions.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("image", "notes.txt")
	require.NoError(t, err)
	_, _ = part.Write([]byte("just some text"))
	require.NoError(t, mw.Close())

	auth["Content-Type"] = mw.FormDataContentType()
	w := makeRequest(router, "POST", "/api/v1/incidents", body, auth)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not an image")
}

func TestCreateIncident_RejectsSVG(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, auth := expectSession(m)

	m.submissions.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="leak.svg"`)
	header.Set("Content-Type", "image/svg+xml")
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, _ = part.Write([]byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`))
	require.NoError(t, mw.Close())

	auth["Content-Type"] = mw.FormDataContentType()
	w := makeRequest(router, "POST", "/api/v1/incidents", body, auth)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not an image")
}

func TestCreateIncident_BodyTooLarge(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, auth := expectSession(m)

	m.submissions.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("description", "new text"))
	part, err := mw.CreateFormFile("image", "huge.png")
	require.NoError(t, err)
	_, err = part.Write(append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 3<<20)...))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	// MaxUploadMB = 1: тело в 3 МБ превышает лимит фото вместе с запасом на поля
	auth["Content-Type"] = mw.FormDataContentType()
	w := makeRequest(router, "POST", "/api/v1/incidents", body, auth)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "image is too large")
}

func TestResolveLocation(t *testing.T) {
	t.Run("Coordinates", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, auth := expectSession(m)

		w := makeRequest(router, "POST", "/api/v1/location/resolve",
			bytes.NewBufferString(`{"supported": true, "latitude": 12.9716, "longitude": 77.5946}`), auth)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"location": "12.9716,77.5946", "fallback_to_map": false}`, w.Body.String())
	})

	t.Run("Denied", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, auth := expectSession(m)

		w := makeRequest(router, "POST", "/api/v1/location/resolve",
			bytes.NewBufferString(`{"supported": true, "error": "denied"}`), auth)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp LocationResolveResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.FallbackToMap)
		assert.Equal(t, "Location access failed", resp.NoticeTitle)
	})

	t.Run("Unknown error code", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, auth := expectSession(m)

		w := makeRequest(router, "POST", "/api/v1/location/resolve",
			bytes.NewBufferString(`{"supported": true, "error": "boom"}`), auth)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPickLocation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, auth := expectSession(m)

		w := makeRequest(router, "POST", "/api/v1/location/pick",
			bytes.NewBufferString(`{"latitude": 0, "longitude": 72.5}`), auth)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"location": "0,72.5"}`, w.Body.String())
	})

	t.Run("Out of range", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, auth := expectSession(m)

		w := makeRequest(router, "POST", "/api/v1/location/pick",
			bytes.NewBufferString(`{"latitude": 91, "longitude": 72.5}`), auth)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing longitude", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, auth := expectSession(m)

		w := makeRequest(router, "POST", "/api/v1/location/pick",
			bytes.NewBufferString(`{"latitude": 10}`), auth)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "'Longitude' failed on the 'required' tag")
	})
}
