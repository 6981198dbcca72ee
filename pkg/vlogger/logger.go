// Package vlogger exposes a simple zap logger, with log levels
package vlogger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelInfo sets the log level to info
	LogLevelInfo = "info"

	// LogLevelDebug sets the log level to debug
	LogLevelDebug = "debug"

	// LogLevelWarn sets the log level to warn
	LogLevelWarn = "warn"

	// LogLevelNone sets logger to no logging
	LogLevelNone = "none"
)

// GetLogger returns a zap logger with the specified level.
//
// Output goes to stderr: hook processes share stdout with git
// and anything printed there ends up in the user's terminal
// in the middle of a commit.
func GetLogger(logLevel string) (*zap.Logger, error) {
	if logLevel == LogLevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	err := lvl.UnmarshalText([]byte(logLevel))
	if err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Encoding = "console"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zapConfig.DisableStacktrace = true
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// MustGetLogger returns a zap logger with the specified level or panics
func MustGetLogger(logLevel string) *zap.Logger {
	l, err := GetLogger(logLevel)
	if err != nil {
		panic(err)
	}
	return l
}
