package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/login", h.login)

	// Маршруты, требующие сессии
	authorized := api.Group("", SessionAuthMiddleware(h.services.Sessions, h.logger))
	{
		authorized.POST("/logout", h.logout)
		authorized.GET("/departments", h.listDepartments)

		incidents := authorized.Group("/incidents")
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)

		location := authorized.Group("/location")
		location.POST("/resolve", h.resolveLocation)
		location.POST("/pick", h.pickLocation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
