package middleware

import (
	"github.com/evandrarf/linguaflow-be/internal/pkg/ratelimit"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type MiddlewareConfig struct {
	Log         *logrus.Logger
	Config      *viper.Viper
	ChatLimiter ratelimit.Limiter
}

type Middleware struct {
	Log         *logrus.Logger
	Config      *viper.Viper
	ChatLimiter ratelimit.Limiter
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	if c == nil {
		return &Middleware{ChatLimiter: ratelimit.Unlimited{}}
	}

	limiter := c.ChatLimiter
	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}

	return &Middleware{
		Log:         c.Log,
		Config:      c.Config,
		ChatLimiter: limiter,
	}
}
