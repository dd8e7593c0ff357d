package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evandrarf/linguaflow-be/database"
	"github.com/evandrarf/linguaflow-be/internal/config"
	"github.com/evandrarf/linguaflow-be/internal/pkg/validate"
	"github.com/evandrarf/linguaflow-be/internal/scheduler"
)

func main() {
	viperConfig := config.NewViper()

	log := config.NewLogger(viperConfig)
	db := database.New(viperConfig)
	validator := validate.NewValidator()
	api := config.NewAPI(viperConfig, log)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Migrations completed successfully")

	// Demo vocabulary for a fresh account
	if viperConfig.GetBool("database.seed_demo") {
		userID := viperConfig.GetString("database.seed_user")
		n, err := database.SeedDemoVocabulary(db, userID)
		if err != nil {
			log.Fatalf("Failed to seed demo vocabulary: %v", err)
		}
		log.WithField("user_id", userID).WithField("words", n).Info("Seeders completed successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	defer stop()

	usecases, cleanup, err := config.Bootstrap(ctx, &config.BootstrapConfig{
		Config:    viperConfig,
		Log:       log,
		Api:       api,
		Validator: validator,
		DB:        db,
	})
	if err != nil {
		log.Fatalf("Failed to bootstrap: %v", err)
	}
	defer cleanup()

	if viperConfig.GetBool("scheduler.enabled") {
		schedulerConfig, err := scheduler.ConfigFromViper(viperConfig)
		if err != nil {
			log.Fatalf("Invalid scheduler config: %v", err)
		}
		jobs, err := scheduler.New(schedulerConfig, usecases.Reminder, log)
		if err != nil {
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		jobs.Start()
		defer jobs.Stop()
	}

	listenAddr := fmt.Sprintf(":%d", viperConfig.GetInt("api.port"))

	go func() {
		if err := api.Listen(listenAddr); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := api.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("API shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
