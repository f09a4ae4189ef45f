package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jaldristi/jaldristi_web/internal/handler"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/jaldristi/jaldristi_web/internal/service"
	"github.com/sirupsen/logrus"
)

const createPath = "/create"

var (
	toastIncomplete = Toast{Kind: toastError, Title: "Incomplete form", Text: "Please fill out all fields before submitting."}
	toastSubmitted  = Toast{Kind: toastSuccess, Title: "Report submitted", Text: "Your incident has been reported successfully."}
	toastFailed     = Toast{Kind: toastError, Title: "Submission failed", Text: "Error submitting the report. Please try again."}
	toastInFlight   = Toast{Kind: toastInfo, Title: "Submitting", Text: "Your report is already being submitted."}
	toastDraftLost  = Toast{Kind: toastError, Title: "Something went wrong", Text: "Your changes could not be saved. Please try again."}
)

func (h *Handler) createPage(c *gin.Context) {
	session := currentSession(c)
	draft, err := h.services.Submissions.GetDraft(c.Request.Context(), session.ID)
	if err != nil {
		h.logger.WithError(err).WithField("method", "createPage").Error("Failed to load draft")
		draft = &models.IncidentDraft{}
	}

	c.HTML(http.StatusOK, "create.html", h.page(c, "Report an Incident", gin.H{
		"Draft":      draft,
		"Categories": models.Categories,
		"ShowMap":    c.Query("map") == "1",
		"Map":        h.services.Locations.MapSettings(),
	}))
}

// departmentOptions отдает фрагмент <option> для выпадающего списка подразделений
func (h *Handler) departmentOptions(c *gin.Context) {
	session := currentSession(c)
	departments := h.services.Departments.ListDepartments(c.Request.Context(), session.Token)

	selected := ""
	if draft, err := h.services.Submissions.GetDraft(c.Request.Context(), session.ID); err == nil {
		selected = draft.DepartmentID
	}

	c.HTML(http.StatusOK, "department_options.html", gin.H{
		"Departments": departments,
		"Selected":    selected,
	})
}

func (h *Handler) draftImage(c *gin.Context) {
	session := currentSession(c)
	draft, err := h.services.Submissions.GetDraft(c.Request.Context(), session.ID)
	if err != nil || draft.Image == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Data(http.StatusOK, draft.Image.ContentType, draft.Image.Data)
}

// createSubmit сохраняет форму в черновик и отправляет его. При любой ошибке
// черновик остается в хранилище, форма показывается заново.
func (h *Handler) createSubmit(c *gin.Context) {
	session := currentSession(c)
	log := h.logger.WithFields(logrus.Fields{"method": "createSubmit", "session_id": session.ID})

	draft, ok := h.updateDraft(c, log)
	if !ok {
		return
	}

	_, err := h.services.Submissions.Submit(c.Request.Context(), session, draft)
	switch {
	case err == nil:
		h.redirectWithToast(c, "/incidents", toastSubmitted)
	case errors.Is(err, service.ErrIncompleteForm):
		h.redirectWithToast(c, createPath, toastIncomplete)
	case errors.Is(err, service.ErrSubmissionInProgress):
		h.redirectWithToast(c, createPath, toastInFlight)
	default:
		log.WithError(err).Error("Error submitting the report")
		h.redirectWithToast(c, createPath, toastFailed)
	}
}

func (h *Handler) removeImage(c *gin.Context) {
	log := h.logger.WithField("method", "removeImage")

	draft, ok := h.mergeForm(c, log)
	if !ok {
		return
	}
	draft.Image = nil
	if !h.saveDraft(c, log, draft) {
		return
	}
	c.Redirect(http.StatusSeeOther, createPath)
}

// resolveLocation принимает отчет navigator.geolocation; при неудаче включает карту
func (h *Handler) resolveLocation(c *gin.Context) {
	log := h.logger.WithField("method", "resolveLocation")

	draft, ok := h.mergeForm(c, log)
	if !ok {
		return
	}

	res := h.services.Locations.Resolve(deviceLocationFromForm(c))
	if res.FallbackToMap {
		if !h.saveDraft(c, log, draft) {
			return
		}
		h.redirectWithToast(c, createPath+"?map=1", Toast{Kind: toastInfo, Title: res.NoticeTitle, Text: res.NoticeText})
		return
	}

	draft.Location = res.Location
	if !h.saveDraft(c, log, draft) {
		return
	}
	c.Redirect(http.StatusSeeOther, createPath)
}

// pickLocation сохраняет точку, выбранную одним кликом на карте
func (h *Handler) pickLocation(c *gin.Context) {
	log := h.logger.WithField("method", "pickLocation")

	draft, ok := h.mergeForm(c, log)
	if !ok {
		return
	}

	lat, errLat := strconv.ParseFloat(strings.TrimSpace(c.PostForm("pick_lat")), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(c.PostForm("pick_lng")), 64)
	location := ""
	err := errors.Join(errLat, errLng)
	if err == nil {
		location, err = h.services.Locations.PickOnMap(lat, lng)
	}
	if err != nil {
		log.WithError(err).Info("Invalid map pick")
		if h.saveDraft(c, log, draft) {
			h.redirectWithToast(c, createPath+"?map=1", Toast{Kind: toastError, Title: "Invalid location", Text: "Please choose a location on the map."})
		}
		return
	}

	draft.Location = location
	if !h.saveDraft(c, log, draft) {
		return
	}
	c.Redirect(http.StatusSeeOther, createPath)
}

// updateDraft объединяет форму с черновиком и сохраняет результат
func (h *Handler) updateDraft(c *gin.Context, log *logrus.Entry) (*models.IncidentDraft, bool) {
	draft, ok := h.mergeForm(c, log)
	if !ok {
		return nil, false
	}
	if !h.saveDraft(c, log, draft) {
		return nil, false
	}
	return draft, true
}

// mergeForm переносит присланные поля формы в сохраненный черновик.
// Отсутствующие поля не затирают черновик; новое фото заменяет старое.
func (h *Handler) mergeForm(c *gin.Context, log *logrus.Entry) (*models.IncidentDraft, bool) {
	session := currentSession(c)

	// Форма разбирается до чтения полей: иначе обрезанное тело выглядит как пустая форма
	if err := handler.ParseUploadForm(c.Writer, c.Request, h.cfg.MaxUploadBytes()); err != nil {
		if errors.Is(err, handler.ErrImageTooLarge) {
			log.WithError(err).Info("Request body too large")
			h.redirectWithToast(c, createPath, h.imageTooLargeToast())
			return nil, false
		}
		log.WithError(err).Warn("Failed to parse form")
		h.redirectWithToast(c, createPath, toastDraftLost)
		return nil, false
	}

	draft, err := h.services.Submissions.GetDraft(c.Request.Context(), session.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load draft")
		h.redirectWithToast(c, createPath, toastDraftLost)
		return nil, false
	}

	if v, ok := c.GetPostForm("department"); ok {
		draft.DepartmentID = v
	}
	if v, ok := c.GetPostForm("category"); ok {
		draft.Category = models.Category(v)
	}
	if v, ok := c.GetPostForm("description"); ok {
		draft.Description = v
	}
	if v, ok := c.GetPostForm("location"); ok {
		draft.Location = strings.TrimSpace(v)
	}

	if fh, err := c.FormFile("image"); err == nil && fh.Size > 0 {
		image, err := handler.ReadImage(fh, h.cfg.MaxUploadBytes())
		if err != nil {
			log.WithError(err).Info("Rejected upload")
			toast := Toast{Kind: toastError, Title: "Invalid image", Text: "Please upload an image file."}
			if errors.Is(err, handler.ErrImageTooLarge) {
				toast = h.imageTooLargeToast()
			}
			if h.saveDraft(c, log, draft) {
				h.redirectWithToast(c, createPath, toast)
			}
			return nil, false
		}
		draft.Image = image
	}
	return draft, true
}

func (h *Handler) imageTooLargeToast() Toast {
	return Toast{Kind: toastError, Title: "Invalid image", Text: "Image must be at most " + strconv.Itoa(h.cfg.MaxUploadMB) + " MB."}
}

func (h *Handler) saveDraft(c *gin.Context, log *logrus.Entry, draft *models.IncidentDraft) bool {
	session := currentSession(c)
	if err := h.services.Submissions.SaveDraft(c.Request.Context(), session.ID, draft); err != nil {
		log.WithError(err).Error("Failed to save draft")
		h.redirectWithToast(c, createPath, toastDraftLost)
		return false
	}
	return true
}

func deviceLocationFromForm(c *gin.Context) models.DeviceLocation {
	report := models.DeviceLocation{
		Supported: c.PostForm("supported") == "true",
		Error:     strings.TrimSpace(c.PostForm("error")),
	}
	if lat, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("latitude")), 64); err == nil {
		report.Latitude = &lat
	}
	if lng, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("longitude")), 64); err == nil {
		report.Longitude = &lng
	}
	return report
}
