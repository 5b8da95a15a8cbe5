// Package logger builds the zap logger used by the pkoffee command.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FormatConsole writes human-readable lines.
	FormatConsole = "console"
	// FormatJSON writes one JSON object per line.
	FormatJSON = "json"

	encodeTimeFormat = "2006-01-02 15:04:05.000"
)

// Config controls logger construction.
type Config struct {
	// Verbose enables debug level; the default level is info.
	Verbose bool
	// Format is FormatConsole (default) or FormatJSON.
	Format string
	// Output receives log entries; nil means stderr.
	Output io.Writer
}

// New creates a logger from cfg.
//
// Returns:
//   - *zap.Logger: The logger
//   - zap.AtomicLevel: Level handle, adjustable after construction
//   - error: Unknown format
func New(cfg Config) (*zap.Logger, zap.AtomicLevel, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(encodeTimeFormat)

	var encoder zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, zap.AtomicLevel{}, fmt.Errorf("unknown log format %q (supported: %s, %s)", cfg.Format, FormatConsole, FormatJSON)
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	var out io.Writer = os.Stderr
	if cfg.Output != nil {
		out = cfg.Output
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), level)

	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)), level, nil
}
