// Package logging builds the zap logger shared by the CLI and the editor.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger writing to file at level, and a cleanup that
// flushes the logger and closes the file. With no file the logger discards
// everything: the terminal belongs to the TUI.
func New(file, level string) (*zap.Logger, func(), error) {
	if file == "" {
		return zap.NewNop(), func() {}, nil
	}

	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", level, err)
		}
	}

	sink, closeSink, err := zap.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), sink, zap.NewAtomicLevelAt(lvl))
	logger := zap.New(core, zap.ErrorOutput(sink), zap.AddCaller()).Named("relist")

	cleanup := func() {
		_ = logger.Sync()
		closeSink()
	}
	return logger, cleanup, nil
}
