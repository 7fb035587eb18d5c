// Package log holds the process-wide zap logger used for debug tracing of
// widget lifecycles. It is a no-op logger until SetLogger is called.
package log

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// SetLogger replaces the process-wide logger. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// L returns the process-wide logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Named returns a child of the process-wide logger for a subsystem.
func Named(name string) *zap.Logger {
	return L().Named(name)
}
