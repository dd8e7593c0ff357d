package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "LINGUAFLOW"

func NewViper() *viper.Viper {
	config, err := LoadViper(".")
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
	return config
}

// LoadViper reads config.yaml (config.prod.yaml when ENV=production) from dir.
// A .env file is loaded first and LINGUAFLOW_* variables override file values.
func LoadViper(dir string) (*viper.Viper, error) {
	_ = godotenv.Load()

	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(dir)

	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	setDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return config, nil
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "LinguaFlow")
	config.SetDefault("api.port", 8080)
	config.SetDefault("log.level", "info")
	config.SetDefault("database.driver", "postgres")
	config.SetDefault("llm.provider", "openai")
	config.SetDefault("llm.timeout", "60s")
	config.SetDefault("llm.retry_attempts", 2)
	config.SetDefault("ratelimit.chat_per_minute", 20)
	config.SetDefault("stats.timezone", "UTC")
	config.SetDefault("quiz.size", 10)
	config.SetDefault("scheduler.enabled", false)
	config.SetDefault("scheduler.daily_reminder_at", "18:00")
	config.SetDefault("scheduler.weekly_report_at", "09:00")
	config.SetDefault("email.region", "us-east-1")
	config.SetDefault("email.from_name", "LinguaFlow")
}
