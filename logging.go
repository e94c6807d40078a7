package spellkit

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConsoleLogger builds a zap logger that writes human-readable lines to
// stderr, suitable for the cmd/spellcli front-end. It mirrors the console
// sink the gofulmen logging package builds for CLI tools, trimmed to the
// one sink spellkit actually needs.
func NewConsoleLogger(level zapcore.Level) (*zap.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return cfg.Build()
}

// FileSinkConfig configures a rotating on-disk log sink via
// gopkg.in/natefinch/lumberjack.v2, for hosts that want durable logs rather
// than (or in addition to) console output.
type FileSinkConfig struct {
	Path       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
	Compress   bool
}

// NewFileLogger builds a zap logger backed by a rotating lumberjack sink,
// logging structured JSON, the format the retrieved fulmenhq/gofulmen
// logging package uses for its own file sinks.
func NewFileLogger(level zapcore.Level, fsc FileSinkConfig) *zap.Logger {
	lumber := &lumberjack.Logger{
		Filename:   fsc.Path,
		MaxSize:    fsc.MaxSizeMB,
		MaxAge:     fsc.MaxAgeDays,
		MaxBackups: fsc.MaxBackups,
		Compress:   fsc.Compress,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(lumber),
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core)
}
