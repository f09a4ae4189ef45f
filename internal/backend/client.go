package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultLoginError = "Login failed. Please try again."

// maxErrorBody ограничивает чтение тела ответа с ошибкой
const maxErrorBody = 64 << 10

// APIError - ответ backend с неожиданным статусом
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

// Client - HTTP-клиент внешнего JalDristi API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBackendURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.APITimeout,
		},
		logger: logger,
	}
}

// Login выполняет POST /login и возвращает пользователя и токен
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readAPIError(resp, defaultLoginError)
	}

	var result models.LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if result.Token == "" {
		// ответ без токена - сбой backend, а не отказ во входе
		return nil, errors.New("login response has no token")
	}
	return &result, nil
}

// ListDepartments выполняет GET /departments
func (c *Client) ListDepartments(ctx context.Context, token string) ([]models.Department, error) {
	departments := make([]models.Department, 0)
	if err := c.getJSON(ctx, token, "/departments", &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// ListUserIncidents выполняет GET /user/incidents
func (c *Client) ListUserIncidents(ctx context.Context, token string) ([]models.Incident, error) {
	incidents := make([]models.Incident, 0)
	if err := c.getJSON(ctx, token, "/user/incidents", &incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

// CreateIncident отправляет черновик multipart-запросом POST /user/incidents.
// Успехом считается только 201.
func (c *Client) CreateIncident(ctx context.Context, token string, draft *models.IncidentDraft) error {
	if draft.Image == nil {
		return errors.New("incident draft has no image")
	}
	coords, err := models.ParseLocation(draft.Location)
	if err != nil {
		return err
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, draft.Image.Filename))
	contentType := draft.Image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create image part: %w", err)
	}
	if _, err := part.Write(draft.Image.Data); err != nil {
		return fmt.Errorf("failed to write image part: %w", err)
	}

	fields := []struct{ name, value string }{
		{"department", draft.DepartmentID},
		{"category", string(draft.Category)},
		{"description", draft.Description},
		{"latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64)},
		{"longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64)},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", f.name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/incidents", body)
	if err != nil {
		return fmt.Errorf("failed to create incident request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	setBearer(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("incident request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return readAPIError(resp, "Failed to submit the report.")
	}
	c.logger.WithField("department", draft.DepartmentID).Debug("Incident accepted by backend")
	return nil
}

func (c *Client) getJSON(ctx context.Context, token, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	setBearer(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readAPIError(resp, http.StatusText(resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func setBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// readAPIError извлекает поле message из тела ошибки backend
func readAPIError(resp *http.Response, fallback string) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: fallback}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		apiErr.Message = body.Message
	}
	return apiErr
}
