// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "go.uber.org/zap"

var _ Logger = noOpLogger{}

type noOpLogger struct{}

// NewNoOpLogger returns a logger that drops everything.
func NewNoOpLogger() Logger {
	return noOpLogger{}
}

func (noOpLogger) Fatal(string, ...zap.Field) {}
func (noOpLogger) Error(string, ...zap.Field) {}
func (noOpLogger) Warn(string, ...zap.Field)  {}
func (noOpLogger) Info(string, ...zap.Field)  {}
func (noOpLogger) Debug(string, ...zap.Field) {}
func (noOpLogger) Stop()                      {}
