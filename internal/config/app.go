package config

import (
	"log"
	"os"
	"sync"
)

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = NewAppConfig()
	})
	return appConfig
}

// NewAppConfig reads the app settings from the environment. It runs before the
// zap logger exists, so it reports through the standard logger.
func NewAppConfig() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
		log.Printf("APP_ENV not set, using %q", env)
	}
	return &AppConfig{
		Name:    getEnv("APP_NAME", "job-tracker"),
		Env:     env,
		Port:    getEnv("APP_PORT", ":8080"),
		BaseURL: os.Getenv("APP_URL"),
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
