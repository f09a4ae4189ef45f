package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jaldristi/jaldristi_web/internal/backend"
	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/jaldristi/jaldristi_web/internal/handler"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/jaldristi/jaldristi_web/internal/service"
	"github.com/sirupsen/logrus"
)

const loginFailedMessage = "Login failed. Please try again."

type Handler struct {
	services service.Services
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services service.Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// @Summary Log in
// @Description Authenticate against the JalDristi backend and open a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Rejected by backend"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	input.Email = strings.TrimSpace(input.Email)

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.services.Sessions.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apiErr.Message})
			return
		}
		log.WithError(err).Error("Login failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": loginFailedMessage})
		return
	}

	c.JSON(http.StatusOK, ModelToLoginResponse(session))
}

// @Summary Log out
// @Description Destroy the current session and its draft.
// @Tags Auth
// @Produce json
// @Security SessionAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /logout [post]
func (h *Handler) logout(c *gin.Context) {
	session := currentSession(c)
	log := h.logger.WithField("method", "logout").WithField("session_id", session.ID)

	if err := h.services.Sessions.Logout(c.Request.Context(), session.ID); err != nil {
		log.WithError(err).Error("Failed to destroy session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List departments
// @Description Departments an incident can be addressed to. Backend errors yield an empty list.
// @Tags Departments
// @Produce json
// @Security SessionAuth
// @Success 200 {array} DepartmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /departments [get]
func (h *Handler) listDepartments(c *gin.Context) {
	session := currentSession(c)
	departments := h.services.Departments.ListDepartments(c.Request.Context(), session.Token)
	c.JSON(http.StatusOK, ModelsToDepartmentResponses(departments))
}

// @Summary List my incidents
// @Description Incidents submitted by the current user.
// @Tags Incidents
// @Produce json
// @Security SessionAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	session := currentSession(c)
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.services.Incidents.ListMyIncidents(c.Request.Context(), session.Token)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch incidents"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Submit an incident
// @Description Validate and post a new incident to the backend once. Location is either "lat,lng" or separate latitude/longitude fields.
// @Tags Incidents
// @Accept multipart/form-data
// @Produce json
// @Security SessionAuth
// @Param image formData file true "Photo of the incident"
// @Param department formData string true "Department ID"
// @Param category formData string true "Category" Enums(flood, leakage, quality, scarcity, other)
// @Param description formData string true "Description"
// @Param location formData string false "Location as lat,lng"
// @Param latitude formData number false "Latitude"
// @Param longitude formData number false "Longitude"
// @Success 201 {object} SubmissionResponse
// @Failure 400 {object} map[string]string "Incomplete form"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Submission already in progress"
// @Failure 413 {object} map[string]string "Image too large"
// @Failure 502 {object} map[string]string "Backend rejected the report"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	session := currentSession(c)
	log := h.logger.WithField("method", "createIncident").WithField("session_id", session.ID)

	if err := handler.ParseUploadForm(c.Writer, c.Request, h.cfg.MaxUploadBytes()); err != nil {
		if errors.Is(err, handler.ErrImageTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Warn("Failed to parse form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft := &models.IncidentDraft{
		DepartmentID: c.PostForm("department"),
		Category:     models.Category(c.PostForm("category")),
		Description:  c.PostForm("description"),
		Location:     formLocation(c),
	}

	if fh, err := c.FormFile("image"); err == nil {
		image, err := handler.ReadImage(fh, h.cfg.MaxUploadBytes())
		switch {
		case errors.Is(err, handler.ErrImageTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		case err != nil:
			log.WithError(err).Warn("Rejected upload")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		draft.Image = image
	}

	state, err := h.services.Submissions.Submit(c.Request.Context(), session, draft)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, SubmissionResponse{State: string(state)})
	case errors.Is(err, service.ErrIncompleteForm):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSubmissionInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Failed to submit incident")
		c.JSON(http.StatusBadGateway, gin.H{"error": service.ErrSubmissionFailed.Error()})
	}
}

// formLocation берет "location" или собирает его из latitude/longitude
func formLocation(c *gin.Context) string {
	if location := strings.TrimSpace(c.PostForm("location")); location != "" {
		return location
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(c.PostForm("latitude")), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(c.PostForm("longitude")), 64)
	if errLat != nil || errLng != nil {
		return ""
	}
	return models.Coordinates{Latitude: lat, Longitude: lng}.String()
}

// @Summary Resolve device location
// @Description Turn a device geolocation report into "lat,lng" or ask the client to fall back to the map picker.
// @Tags Location
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param report body LocationResolveRequest true "Device location report"
// @Success 200 {object} LocationResolveResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location/resolve [post]
func (h *Handler) resolveLocation(c *gin.Context) {
	var input LocationResolveRequest
	log := h.logger.WithField("method", "resolveLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.services.Locations.Resolve(DTOToDeviceLocation(input))
	c.JSON(http.StatusOK, ModelToLocationResolveResponse(res))
}

// @Summary Pick location on map
// @Description Encode a single map click as "lat,lng".
// @Tags Location
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param point body LocationPickRequest true "Clicked point"
// @Success 200 {object} LocationPickResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location/pick [post]
func (h *Handler) pickLocation(c *gin.Context) {
	var input LocationPickRequest
	log := h.logger.WithField("method", "pickLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.services.Locations.PickOnMap(*input.Latitude, *input.Longitude)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, LocationPickResponse{Location: location})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
