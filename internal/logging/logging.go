// Copyright 2025 The bindata Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging is a thin wrapper of the zap logging library.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var root = func() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zap.DebugLevel,
	)
	return zap.New(core)
}()

// New creates a named logger. The log level is configured via the BINDATA_LOG
// environment variable and defaults to info.
func New(pkg string) *zap.Logger {
	return root.Named(pkg).WithOptions(zap.IncreaseLevel(level()))
}

func level() zapcore.LevelEnabler {
	if s, ok := os.LookupEnv("BINDATA_LOG"); ok {
		if l, err := zapcore.ParseLevel(s); err == nil {
			return l
		}
	}
	return zapcore.InfoLevel
}
