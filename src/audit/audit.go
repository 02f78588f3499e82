package audit

// This file contains the audit trail for the record manager. Every
// login, logout, and successful mutation is appended here as one
// human-readable line. The format is free text, not machine-parseable.

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sink receives audit actions. Log must never fail the calling
// operation; sinks report their own write problems.
type Sink interface {
	Log(action string)
	Close() error
}

// FileAuditLog appends timestamped lines to a single file, opened
// lazily in append mode on the first Log call and held for the rest of
// the process.
type FileAuditLog struct {
	filePath string
	file     *os.File
	logger   *zap.SugaredLogger
	mu       sync.Mutex
}

func NewFileAuditLog(filePath string, logger *zap.SugaredLogger) *FileAuditLog {
	return &FileAuditLog{
		filePath: filePath,
		logger:   logger,
	}
}

// ensureFileOpen opens the audit file on first use.
func (f *FileAuditLog) ensureFileOpen() error {
	if f.file != nil {
		return nil
	}

	dir := filepath.Dir(f.filePath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create audit log directory: %w", err)
		}
	}

	file, err := os.OpenFile(f.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log file %s: %w", f.filePath, err)
	}

	f.file = file
	return nil
}

// Log appends one `[timestamp] action` line. Write failures are
// reported to the operational logger and otherwise swallowed, so a bad
// audit disk never aborts a record operation.
func (f *FileAuditLog) Log(action string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ensureFileOpen(); err != nil {
		if f.logger != nil {
			f.logger.Errorf("Audit log unavailable: %v", err)
		}
		return
	}

	line := fmt.Sprintf("[%s] %s\n", time.Now().Format(time.ANSIC), action)
	if _, err := f.file.WriteString(line); err != nil {
		if f.logger != nil {
			f.logger.Errorf("Failed to write audit entry: %v", err)
		}
	}
}

// Close closes the audit file.
func (f *FileAuditLog) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file != nil {
		if err := f.file.Close(); err != nil {
			return fmt.Errorf("failed to close audit log file: %w", err)
		}
		f.file = nil
	}
	return nil
}

// MemoryAuditLog collects actions in memory. Tests substitute it for
// the file sink.
type MemoryAuditLog struct {
	mu      sync.Mutex
	entries []string
}

func NewMemoryAuditLog() *MemoryAuditLog {
	return &MemoryAuditLog{}
}

func (m *MemoryAuditLog) Log(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, action)
}

func (m *MemoryAuditLog) Close() error { return nil }

// Entries returns a copy of everything logged so far.
func (m *MemoryAuditLog) Entries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}
