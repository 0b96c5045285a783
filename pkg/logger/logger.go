package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until Init is called.
var Log = zap.NewNop()

// Init builds the logger for the given level and environment and installs it
// as Log. "prod" gets JSON output; anything else gets the console encoder.
// An unknown level falls back to info and is reported through the new logger.
func Init(level, env string, opts ...zap.Option) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "prod" {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	badLevel := false
	if err := cfg.Level.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		badLevel = true
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build(opts...)
	if err != nil {
		return nil, err
	}
	if badLevel {
		l.Warn("invalid log level, defaulting to info",
			zap.String("level", level),
			zap.Strings("valid", []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}),
		)
	}
	Log = l
	return l, nil
}
