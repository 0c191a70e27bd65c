package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger = zap.NewNop()

func Init(mode string) error {
	var (
		logger *zap.Logger
		err    error
	)

	switch mode {
	case "dev":
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = cfg.Build()
	case "prod":
		logger, err = zap.NewProduction()
	default:
		return fmt.Errorf("unknown log mode: %q (allowed: dev, prod)", mode)
	}
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	log = logger
	return nil
}

// InitTestLogger installs a no-op logger for use in tests.
func InitTestLogger() {
	log = zap.NewNop()
}

func Sync() {
	_ = log.Sync()
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	log.Error(msg, fields...)
}
