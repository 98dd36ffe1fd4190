package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"trekadmin/adapters/postgres"
	"trekadmin/adapters/postgres/migrations"
	"trekadmin/app"
	"trekadmin/internal"
	"trekadmin/internal/config"
	"trekadmin/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migrations.NewMigrator(db.DB).Up(ctx); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	trekRepo := postgres.NewTrekRepository(db)
	batchRepo := postgres.NewBatchRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)

	server := ui.NewServer(ui.Config{
		TrekService:      app.NewTrekService(trekRepo, batchRepo, logger),
		DashboardService: app.NewDashboardService(trekRepo, bookingRepo, userRepo),
		AnalyticsService: app.NewAnalyticsService(bookingRepo),
		BatchRepo:        batchRepo,
		BookingRepo:      bookingRepo,
		UserRepo:         userRepo,
		PostRepo:         postRepo,
		Logger:           logger,
		MaxUploadBytes:   cfg.Upload.MaxFileBytes,
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("admin API listening on :%s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed: %v", err)
	}
}
