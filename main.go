package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotel-reservation/config"
	"hotel-reservation/controllers"
	"hotel-reservation/routes"
	"hotel-reservation/services"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Debug(".env not loaded, using process environment", zap.Error(envErr))
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}

	demoService := services.NewDemoService(db, logger)
	if cfg.SeedDemoData {
		if err := demoService.Seed(context.Background()); err != nil {
			logger.Fatal("seeding demo data failed", zap.Error(err))
		}
	}

	var sessions services.SessionStore
	switch cfg.SessionStore {
	case "redis":
		client, err := config.ConnectRedis(context.Background(), cfg.Redis)
		if err != nil {
			logger.Fatal("session store unavailable", zap.Error(err))
		}
		defer client.Close()
		sessions = services.NewRedisSessionStore(client)
	default:
		sessions = services.NewMemorySessionStore()
	}
	logger.Info("session store ready", zap.String("store", cfg.SessionStore), zap.Duration("ttl", cfg.SessionTTL))

	// Initialize services
	authService := services.NewAuthService(sessions, cfg.SessionTTL, logger)
	roomService := services.NewRoomService(db, logger)
	reservationService := services.NewReservationService(db, logger)
	userService := services.NewUserService(db, logger)
	settingsService := services.NewSettingsService(db)
	exportService := services.NewExportService(roomService, reservationService, userService)

	// Initialize controllers
	ctrls := routes.Controllers{
		Auth:      controllers.NewAuthController(authService),
		Guest:     controllers.NewGuestController(roomService, reservationService),
		Reception: controllers.NewReceptionController(roomService, reservationService),
		Rooms:     controllers.NewRoomController(roomService),
		Users:     controllers.NewUserController(userService),
		Admin:     controllers.NewAdminController(services.NewReportService(), settingsService, exportService, demoService),
	}

	router := routes.SetupRouter(ctrls, authService, cfg.CORSOrigins, logger)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("server stopped gracefully")
}
