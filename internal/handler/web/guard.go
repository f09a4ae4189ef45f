package web

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/jaldristi/jaldristi_web/internal/service"
)

const (
	sessionContextKey = "session"
	defaultLanding    = "/create"
)

// requireSession загружает сессию один раз на запрос; без нее - 303 на страницу входа
func (h *Handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session := h.lookupSession(c); session != nil {
			c.Set(sessionContextKey, session)
			c.Next()
			return
		}

		target := "/?next=" + url.QueryEscape(landingFor(c.Request.URL.Path))
		c.Redirect(http.StatusSeeOther, target)
		c.Abort()
	}
}

// lookupSession возвращает сессию из cookie или nil
func (h *Handler) lookupSession(c *gin.Context) *models.Session {
	id := h.cookies.SessionID(c.Request)
	if id == "" {
		return nil
	}
	session, err := h.services.Sessions.GetSession(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, service.ErrSessionNotFound) {
			h.logger.WithError(err).WithField("method", "lookupSession").Error("Failed to load session")
		}
		return nil
	}
	return session
}

func currentSession(c *gin.Context) *models.Session {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	session, _ := value.(*models.Session)
	return session
}

// landingFor сводит фрагменты и POST-маршруты к странице, которую они обслуживают
func landingFor(path string) string {
	if strings.HasPrefix(path, "/incidents") {
		return "/incidents"
	}
	return defaultLanding
}

// sanitizeNext пропускает только локальные пути приложения
func sanitizeNext(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return defaultLanding
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return defaultLanding
	}
	if parsed.IsAbs() || parsed.Host != "" || parsed.User != nil {
		return defaultLanding
	}
	if !strings.HasPrefix(parsed.Path, "/") || strings.HasPrefix(parsed.Path, "//") || strings.Contains(parsed.Path, "\\") {
		return defaultLanding
	}
	if parsed.Path == "/" || parsed.Path == "/login" || parsed.Path == "/logout" {
		return defaultLanding
	}

	target := parsed.Path
	if parsed.RawQuery != "" {
		target += "?" + parsed.RawQuery
	}
	return target
}
