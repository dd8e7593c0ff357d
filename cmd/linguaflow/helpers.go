package main

import (
	"context"
	"fmt"

	"github.com/evandrarf/linguaflow-be/database"
	"github.com/evandrarf/linguaflow-be/internal/config"
	"github.com/evandrarf/linguaflow-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type app struct {
	config   *viper.Viper
	log      *logrus.Logger
	db       *gorm.DB
	usecases *config.Usecases
}

func loadConfig() (*viper.Viper, *logrus.Logger, error) {
	v, err := config.LoadViper(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if debugMode {
		v.Set("log.level", "debug")
	}
	return v, config.NewLogger(v), nil
}

// newApp opens the database and builds the usecases used by the commands.
func newApp(ctx context.Context) (*app, error) {
	v, log, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(v)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	usecases, err := config.NewUsecases(ctx, &config.UsecaseConfig{
		Config:    v,
		DB:        db,
		Log:       log,
		Validator: validate.NewValidator(),
	})
	if err != nil {
		return nil, err
	}

	return &app{config: v, log: log, db: db, usecases: usecases}, nil
}

func (a *app) Close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
