package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/jaldristi/jaldristi_web/internal/service"
	"github.com/sirupsen/logrus"
)

const sessionContextKey = "session"

// SessionAuthMiddleware - middleware для аутентификации по идентификатору сессии
func SessionAuthMiddleware(sessions service.SessionService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				sessionID = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if sessionID == "" {
			log.Warn("Session id missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session required"})
			return
		}

		session, err := sessions.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			if !errors.Is(err, service.ErrSessionNotFound) {
				log.WithError(err).Error("Failed to load session")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

func currentSession(c *gin.Context) *models.Session {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	session, _ := value.(*models.Session)
	return session
}
