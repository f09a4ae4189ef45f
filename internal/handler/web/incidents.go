package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaldristi/jaldristi_web/internal/models"
)

func (h *Handler) incidentsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "incidents.html", h.page(c, "My Incidents", nil))
}

// incidentsList отдает фрагмент со списком; ошибка backend выглядит как пустой список
func (h *Handler) incidentsList(c *gin.Context) {
	session := currentSession(c)
	incidents, err := h.services.Incidents.ListMyIncidents(c.Request.Context(), session.Token)
	if err != nil {
		h.logger.WithError(err).WithField("method", "incidentsList").Error("Error fetching incidents")
		incidents = []models.Incident{}
	}
	c.HTML(http.StatusOK, "incidents_list.html", gin.H{"Incidents": incidents})
}
