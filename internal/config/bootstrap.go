package config

import (
	"context"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/handler"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/middleware"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/route"
	"github.com/evandrarf/linguaflow-be/internal/pkg/ratelimit"
	"github.com/evandrarf/linguaflow-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

// Bootstrap wires the HTTP API and returns the usecases plus a cleanup func
// for the connections it opened.
func Bootstrap(ctx context.Context, config *BootstrapConfig) (*Usecases, func(), error) {
	usecases, err := NewUsecases(ctx, &UsecaseConfig{
		Config:    config.Config,
		DB:        config.DB,
		Log:       config.Log,
		Validator: config.Validator,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	var chatLimiter ratelimit.Limiter = ratelimit.Unlimited{}
	if redisURL := config.Config.GetString("redis.url"); redisURL != "" {
		counter, err := ratelimit.NewRedisCounter(redisURL)
		if err != nil {
			config.Log.WithError(err).Warn("redis unavailable, chat rate limiting disabled")
		} else {
			chatLimiter = ratelimit.NewFixedWindow(counter, config.Config.GetInt("ratelimit.chat_per_minute"), time.Minute)
			cleanup = func() {
				if err := counter.Close(); err != nil {
					config.Log.WithError(err).Warn("failed to close redis")
				}
			}
		}
	}

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:         config.Log,
		Config:      config.Config,
		ChatLimiter: chatLimiter,
	})

	route.Setup(&route.RouteConfig{
		Api:               config.Api,
		Middleware:        mid,
		WordHandler:       handler.NewWordHandler(config.Validator, config.Log, usecases.Word),
		RevisionHandler:   handler.NewRevisionHandler(config.Validator, config.Log, usecases.Revision),
		ChatbotHandler:    handler.NewChatbotHandler(config.Validator, config.Log, usecases.Chatbot),
		StatisticsHandler: handler.NewStatisticsHandler(config.Validator, config.Log, usecases.Statistics),
		SettingsHandler:   handler.NewSettingsHandler(config.Validator, config.Log, usecases.Goal, usecases.Preference),
	})

	return usecases, cleanup, nil
}
