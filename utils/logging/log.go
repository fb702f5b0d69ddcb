// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*log)(nil)

// Logger keeps a record of all events that happen to the program.
type Logger interface {
	// Fatal logs the message and then the program should likely exit
	Fatal(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)

	// Stop flushes any buffered entries
	Stop()
}

type log struct {
	internalLogger *zap.Logger
}

func newConsoleCore(w io.Writer, level Level) zapcore.Core {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zapcore.Level(level),
	)
}

// NewLogger returns a logger named [prefix] writing to stdout at [level].
func NewLogger(prefix string, level Level) Logger {
	if level == Off {
		return NewNoOpLogger()
	}

	internal := zap.New(newConsoleCore(os.Stdout, level), zap.AddCaller())
	if prefix != "" {
		internal = internal.Named(prefix)
	}
	return &log{internalLogger: internal}
}

func (l *log) Fatal(msg string, fields ...zap.Field) {
	l.internalLogger.Fatal(msg, fields...)
}

func (l *log) Error(msg string, fields ...zap.Field) {
	l.internalLogger.Error(msg, fields...)
}

func (l *log) Warn(msg string, fields ...zap.Field) {
	l.internalLogger.Warn(msg, fields...)
}

func (l *log) Info(msg string, fields ...zap.Field) {
	l.internalLogger.Info(msg, fields...)
}

func (l *log) Debug(msg string, fields ...zap.Field) {
	l.internalLogger.Debug(msg, fields...)
}

func (l *log) Stop() {
	_ = l.internalLogger.Sync()
}
