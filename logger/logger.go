// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package logger

import (
	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// Set replaces the global logger
func Set(l *zap.SugaredLogger) {
	logger = l
}

// I returns the global logger
func I() *zap.SugaredLogger {
	return logger
}
