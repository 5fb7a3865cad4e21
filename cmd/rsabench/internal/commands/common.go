package commands

import (
	"fmt"

	"github.com/lelegard/rsabench/internal/pkg/config"
	"github.com/lelegard/rsabench/internal/pkg/logger"
)

// setupLogger initializes the singleton logger from settings and returns it.
func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
