package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jaldristi/jaldristi_web/internal/backend"
)

const (
	loginFailedMessage  = "Login failed. Please try again."
	loginMissingMessage = "Please enter your email and password."
)

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

func (h *Handler) loginPage(c *gin.Context) {
	if session := h.lookupSession(c); session != nil {
		c.Redirect(http.StatusSeeOther, defaultLanding)
		return
	}

	splash := FirstVisit(c.Writer, c.Request, h.cfg.CookieSecure)
	c.HTML(http.StatusOK, "login.html", h.page(c, "Login", gin.H{
		"Next":       sanitizeNext(c.Query("next")),
		"Email":      "",
		"ShowSplash": splash,
		"SignUpURL":  h.cfg.APIBackendURL + "/signup",
	}))
}

func (h *Handler) loginSubmit(c *gin.Context) {
	log := h.logger.WithField("method", "loginSubmit")

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		log.WithError(err).Warn("Failed to bind login form")
	}
	form.Email = strings.TrimSpace(form.Email)
	next := sanitizeNext(form.Next)

	if err := h.validate.Struct(form); err != nil {
		log.WithError(err).Info("Incomplete login form")
		h.renderLoginError(c, http.StatusBadRequest, form.Email, next, loginMissingMessage)
		return
	}

	session, err := h.services.Sessions.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			h.renderLoginError(c, http.StatusUnauthorized, form.Email, next, apiErr.Message)
			return
		}
		log.WithError(err).Error("Login failed")
		h.renderLoginError(c, http.StatusBadGateway, form.Email, next, loginFailedMessage)
		return
	}

	welcome := Toast{Kind: toastSuccess, Title: "Login Successful", Text: "Welcome back, " + session.Email()}
	if err := h.cookies.Bind(c.Writer, c.Request, session.ID.String(), welcome); err != nil {
		log.WithError(err).Error("Failed to write session cookie")
		h.renderLoginError(c, http.StatusInternalServerError, form.Email, next, loginFailedMessage)
		return
	}
	c.Redirect(http.StatusSeeOther, next)
}

func (h *Handler) renderLoginError(c *gin.Context, status int, email, next, message string) {
	c.HTML(status, "login.html", h.page(c, "Login", gin.H{
		"Next":         next,
		"Email":        email,
		"ErrorMessage": message,
		"SignUpURL":    h.cfg.APIBackendURL + "/signup",
	}))
}

func (h *Handler) logoutSubmit(c *gin.Context) {
	log := h.logger.WithField("method", "logoutSubmit")

	if id, err := uuid.Parse(h.cookies.SessionID(c.Request)); err == nil {
		if err := h.services.Sessions.Logout(c.Request.Context(), id); err != nil {
			log.WithError(err).Error("Failed to destroy session")
		}
	}

	if err := h.cookies.Clear(c.Writer, c.Request); err != nil {
		log.WithError(err).Warn("Failed to clear session cookie")
	}
	c.Redirect(http.StatusSeeOther, "/")
}
