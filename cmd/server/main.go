package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"sentinel/internal/config"
	"sentinel/internal/db"
	"sentinel/internal/handler"
	"sentinel/internal/repository"
	"sentinel/internal/router"
	"sentinel/internal/service"
)

// @title Sentinel Admin API
// @version 1.0
// @description Administrative read/reporting gateway over MongoDB: schema
// @description introspection, user management, task analytics, earnings, and
// @description payment records behind a shared-secret API key.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	store := db.NewStore(cfg.MongoURI, config.DatabaseName(cfg.MongoURI), logger)

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Connect(connectCtx); err != nil {
		logger.Fatal("mongodb connect", zap.Error(err))
	}
	defer func() {
		_ = store.Close(context.Background())
	}()

	database, err := store.Database()
	if err != nil {
		logger.Fatal("mongodb handle", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	inspectionRepo := repository.NewInspectionRepository(database)

	// Initialize services
	userService := service.NewUserService(userRepo)
	analyticsService := service.NewAnalyticsService(userRepo, taskRepo)
	productService := service.NewProductService(taskRepo, userRepo)
	paymentService := service.NewPaymentService(paymentRepo, userRepo)
	inspectionService := service.NewInspectionService(inspectionRepo)

	// Initialize handlers
	inspectionHandler := handler.NewInspectionHandler(inspectionService)
	userHandler := handler.NewUserHandler(userService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	productHandler := handler.NewProductHandler(productService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	router.Register(
		e,
		cfg,
		inspectionHandler,
		userHandler,
		analyticsHandler,
		productHandler,
		paymentHandler,
	)

	addr := ":" + cfg.ServerPort
	logger.Info("admin api listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}
