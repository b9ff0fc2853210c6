package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects encoder, level and sinks
type Config struct {
	Level    string   `yaml:"level"`    // debug, info, warn, error
	Encoding string   `yaml:"encoding"` // json or console
	Outputs  []string `yaml:"outputs"`  // file paths, "stderr" or "stdout"
}

// DefaultConfig logs info and above as json to a file next to the binary
// The terminal belongs to the renderer, so stdout and stderr are avoided
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		Encoding: "json",
		Outputs:  []string{"voxel-fighter.log"},
	}
}

// Validate checks level and encoding names
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch c.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("log encoding %q: want json or console", c.Encoding)
	}
	if len(c.Outputs) == 0 {
		return fmt.Errorf("log outputs: at least one required")
	}
	return nil
}

// New builds a zap logger; runID, when non-empty, is attached to every entry
func New(cfg Config, runID string) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := zapcore.ParseLevel(cfg.Level)

	encoder := zap.NewProductionEncoderConfig()
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Encoding == "console" {
		encoder.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zc := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         cfg.Encoding,
		EncoderConfig:    encoder,
		OutputPaths:      cfg.Outputs,
		ErrorOutputPaths: cfg.Outputs,
		DisableCaller:    true,
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	if runID != "" {
		logger = logger.With(zap.String("run_id", runID))
	}
	return logger, nil
}
