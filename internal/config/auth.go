package config

import (
	"errors"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

const devJWTSecret = "dev-secret-change-me"

var ErrMissingJWTSecret = errors.New("AUTH_JWT_SECRET must be set in production")

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

var (
	authConfig *AuthConfig
	authErr    error
	authOnce   sync.Once
)

func LoadAuthConfig(appConfig *AppConfig) (*AuthConfig, error) {
	authOnce.Do(func() {
		authConfig, authErr = NewAuthConfig(appConfig)
	})
	return authConfig, authErr
}

// NewAuthConfig reads the auth settings from the environment. The development
// secret is only used outside production.
func NewAuthConfig(appConfig *AppConfig) (*AuthConfig, error) {
	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		if appConfig.IsProduction() {
			return nil, ErrMissingJWTSecret
		}
		secret = devJWTSecret
		zap.L().Warn("AUTH_JWT_SECRET not set, using development secret")
	}
	ttl, err := time.ParseDuration(getEnv("AUTH_TOKEN_TTL", "24h"))
	if err != nil || ttl <= 0 {
		zap.L().Warn("invalid AUTH_TOKEN_TTL, falling back to 24h", zap.Error(err))
		ttl = 24 * time.Hour
	}
	return &AuthConfig{
		JWTSecret: secret,
		TokenTTL:  ttl,
	}, nil
}
