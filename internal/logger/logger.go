// Package logger holds the global structured logger of the strsearch
// command. Library packages never log; only the driver does.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger. It discards everything until Initialize
	// is called.
	Logger *zap.SugaredLogger
	// JSONOutput reports whether Initialize selected JSON output.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. JSON output is meant for machine
// consumption; otherwise a compact console encoder writes to stderr so that
// search results on stdout stay clean. verbose lowers the level to debug.
func Initialize(jsonOutput, verbose bool) error {
	return InitializeTo(os.Stderr, jsonOutput, verbose)
}

// InitializeTo is like Initialize but writes to w.
func InitializeTo(w io.Writer, jsonOutput, verbose bool) error {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var encoder zapcore.Encoder
	if jsonOutput {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	Logger = zap.New(core).Sugar()
	JSONOutput = jsonOutput
	return nil
}

// Cleanup flushes any buffered log entries.
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Named returns a child of the global logger.
func Named(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
