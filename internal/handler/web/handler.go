package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jaldristi/jaldristi_web/internal/config"
	"github.com/jaldristi/jaldristi_web/internal/models"
	"github.com/jaldristi/jaldristi_web/internal/service"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

const (
	toastSuccess = "success"
	toastError   = "error"
	toastInfo    = "info"
)

// Handler обслуживает HTML-страницы и фрагменты веб-клиента
type Handler struct {
	services  service.Services
	cookies   *CookieJar
	templates *template.Template
	validate  *validator.Validate
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewHandler(services service.Services, cookies *CookieJar, logger *logrus.Logger, cfg *config.Config) (*Handler, error) {
	templates, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{
		services:  services,
		cookies:   cookies,
		templates: templates,
		validate:  validator.New(),
		logger:    logger,
		cfg:       cfg,
	}, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"statusColor": models.StatusColor,
		"categoryLabel": func(c models.Category) string {
			return c.Label()
		},
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("02 Jan 2006")
		},
	}
}

// RegisterRoutes регистрирует страницы, фрагменты и статику
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(h.templates)

	static, _ := fs.Sub(staticFS, "static")
	router.StaticFS("/static", http.FS(static))

	router.GET("/", h.loginPage)
	router.POST("/login", h.loginSubmit)
	router.POST("/logout", h.logoutSubmit)

	guarded := router.Group("")
	guarded.Use(h.requireSession())
	{
		create := guarded.Group("/create")
		create.GET("", h.createPage)
		create.POST("", h.createSubmit)
		create.GET("/departments", h.departmentOptions)
		create.GET("/image", h.draftImage)
		create.POST("/image/remove", h.removeImage)
		create.POST("/location", h.resolveLocation)
		create.POST("/location/pick", h.pickLocation)

		guarded.GET("/incidents", h.incidentsPage)
		guarded.GET("/incidents/list", h.incidentsList)
	}
}

// page собирает общие для всех страниц данные; flash-уведомления забираются здесь
func (h *Handler) page(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Session"] = currentSession(c)
	data["Toasts"] = h.cookies.Flashes(c.Writer, c.Request)
	return data
}

func (h *Handler) redirectWithToast(c *gin.Context, target string, toast Toast) {
	if err := h.cookies.AddFlash(c.Writer, c.Request, toast); err != nil {
		h.logger.WithError(err).Warn("Failed to store toast")
	}
	c.Redirect(http.StatusSeeOther, target)
}
