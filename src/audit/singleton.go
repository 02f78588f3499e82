package audit

import (
	"rollbook/src/settings"
	"sync"
)

// Private instance and mutex for thread safety
var (
	instance Sink
	mu       sync.RWMutex
)

// Get returns the process-wide audit sink. If Init was never called it
// lazily creates a file sink at the configured audit log path.
func Get() Sink {
	mu.RLock()
	if instance != nil {
		defer mu.RUnlock()
		return instance
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		args := settings.GetSettings()
		instance = NewFileAuditLog(args.AuditLogFile, nil)
	}
	return instance
}

// Init installs the given sink as the process-wide audit log.
func Init(sink Sink) Sink {
	mu.Lock()
	defer mu.Unlock()
	instance = sink
	return instance
}

// Reset is useful for testing - it drops the installed sink.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}
