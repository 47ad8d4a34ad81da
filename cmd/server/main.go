package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/yukikurage/backoffice-api/internal/config"
	"github.com/yukikurage/backoffice-api/internal/database"
	"github.com/yukikurage/backoffice-api/internal/handlers"
	"github.com/yukikurage/backoffice-api/internal/logs"
	"github.com/yukikurage/backoffice-api/internal/metrics"
	"github.com/yukikurage/backoffice-api/internal/repository"
	"github.com/yukikurage/backoffice-api/internal/router"
	"github.com/yukikurage/backoffice-api/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logs.Logger.Fatalf("Failed to load configuration: %v", err)
	}
	logs.Init(logs.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Connect to database
	db, err := database.Open(cfg)
	if err != nil {
		logs.Logger.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logs.Logger.Fatalf("Failed to access connection pool: %v", err)
	}
	defer sqlDB.Close()

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logs.Logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services and handlers
	repos := repository.New(db)
	h := router.Handlers{
		Organizations: handlers.NewOrganizationHandler(services.NewOrganizationService(repos)),
		Users:         handlers.NewUserHandler(services.NewUserService(repos)),
		Lms:           handlers.NewLmsHandler(services.NewLmsService(repos)),
		Blog:          handlers.NewBlogHandler(services.NewBlogService(repos)),
		Taxonomy:      handlers.NewTaxonomyHandler(services.NewTaxonomyService(repos)),
		Notes:         handlers.NewNotesHandler(services.NewNotesService(repos)),
		Health:        handlers.NewHealthHandler(sqlDB),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	engine := router.New(h, metrics.New(reg))

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router.WithCORS(engine, cfg.Server.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	go func() {
		logs.Logger.Infof("Server starting on %s", cfg.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logs.Logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logs.Logger.Errorf("HTTP shutdown: %v", err)
	}
}
