package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns the CLI logger. Debug output goes to stderr when
// verbose is set; otherwise only errors are logged.
func newLogger(verbose, color bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}
