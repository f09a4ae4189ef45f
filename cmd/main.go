package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jaldristi/jaldristi_web/internal/backend"
	"github.com/jaldristi/jaldristi_web/internal/config"
	v1 "github.com/jaldristi/jaldristi_web/internal/handler/http/v1"
	"github.com/jaldristi/jaldristi_web/internal/handler/web"
	"github.com/jaldristi/jaldristi_web/internal/repository"
	"github.com/jaldristi/jaldristi_web/internal/service"
	"github.com/jaldristi/jaldristi_web/internal/webhook"
	"github.com/jaldristi/jaldristi_web/pkg/logger"
	redisclient "github.com/jaldristi/jaldristi_web/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/jaldristi/jaldristi_web/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title JalDristi Web API
// @version 1.0
// @description JSON API of the JalDristi citizen incident reporting frontend.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey SessionAuth
// @in header
// @name Authorization
// @description Session id from POST /login, sent as "Bearer <session_id>".
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Клиент внешнего backend API
	apiClient := backend.NewClient(cfg, log)

	// Инициализация издателя событий
	publisher := webhook.NewPublisher(redisClient, cfg)

	// Инициализация и запуск воркера уведомлений
	worker := webhook.NewWorker(redisClient, log, cfg)
	if worker.Enabled() {
		worker.Start(ctx)
	} else {
		log.Info("No webhook or Slack receiver configured, notification worker disabled")
	}

	// Инициализация репозиториев
	repo := repository.NewRedisRepository(redisClient)

	// Инициализация сервисов
	services := service.Services{
		Sessions:    service.NewSessionService(apiClient, repo, repo, log, cfg),
		Departments: service.NewDepartmentService(apiClient, repo, log, cfg),
		Incidents:   service.NewIncidentService(apiClient, log),
		Locations:   service.NewLocationService(log, cfg),
		Submissions: service.NewSubmissionService(apiClient, repo, repo, publisher, log, cfg),
	}

	// Инициализация хэндлеров
	cookies, err := web.NewCookieJar(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize session cookies: %v", err)
	}
	webHandler, err := web.NewHandler(services, cookies, log, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize web handler: %v", err)
	}
	apiHandler := v1.NewHandler(services, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()
	webHandler.RegisterRoutes(router)
	api := router.Group("/api/v1")
	apiHandler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер уведомлений
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
