package config

import (
	"fmt"

	"go.uber.org/zap"
)

func InitLogger(appConfig *AppConfig) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if appConfig.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
