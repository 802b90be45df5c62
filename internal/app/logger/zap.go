package logger

import (
	"fmt"

	"github.com/avGenie/flexihire/internal/app/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "flexihire"

func Initialize(config config.Config) error {
	log, err := Build(config)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(log)

	return nil
}

// Build creates a JSON logger, or a console one when LOG_FORMAT=console.
func Build(config config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error while setting atomic level to zap logger: %w", err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = level
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.InitialFields = map[string]interface{}{"service": serviceName}

	switch config.LogFormat {
	case "", "json":
	case "console":
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("unknown log format %q", config.LogFormat)
	}

	log, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("error while building zap logger: %w", err)
	}

	return log, nil
}
