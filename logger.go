package opentrackio

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerMu sync.RWMutex
	logger   = zerolog.Nop()
)

// SetLogger replaces the package logger. The library logs nothing until a
// logger is installed.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// Logger returns the package logger.
func Logger() zerolog.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	return l
}
