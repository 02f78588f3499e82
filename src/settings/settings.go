package settings

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type Arguments struct {
	// The directory holding the three collection files
	DataDir string `yaml:"dataDir"`

	// Path of the append-only audit log file
	AuditLogFile string `yaml:"auditLog"`

	ConfigFile string `yaml:"-"`

	// Strongly verbose logging
	Verbose bool `yaml:"verbose"`

	Debug bool `yaml:"debug"`
}

var (
	instance *Arguments
	once     sync.Once
	mu       sync.RWMutex
)

// GetSettings returns the process-wide settings instance, creating it
// with defaults on first use.
func GetSettings() *Arguments {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		instance = defaults()
	})
	return instance
}

// ResetSettings is useful for testing - it resets the singleton
func ResetSettings() {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	instance = defaults()
}

func defaults() *Arguments {
	return &Arguments{
		DataDir:      "./datafiles",
		AuditLogFile: "log.txt",
		Verbose:      false,
		Debug:        false,
	}
}

// ApplyConfigFile merges a YAML config file into the settings. Fields
// absent from the file keep their current values.
func (a *Arguments) ApplyConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, a); err != nil {
		return fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	return nil
}

// ApplyEnv merges ROLLBOOK_* environment variables into the settings.
func (a *Arguments) ApplyEnv() {
	if v, ok := os.LookupEnv("ROLLBOOK_DATA_DIR"); ok && strings.TrimSpace(v) != "" {
		a.DataDir = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("ROLLBOOK_AUDIT_LOG"); ok && strings.TrimSpace(v) != "" {
		a.AuditLogFile = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("ROLLBOOK_DEBUG"); ok {
		a.Debug = envBool(v, a.Debug)
	}
	if v, ok := os.LookupEnv("ROLLBOOK_VERBOSE"); ok {
		a.Verbose = envBool(v, a.Verbose)
	}
}

func envBool(v string, fallback bool) bool {
	switch strings.TrimSpace(strings.ToLower(v)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return fallback
}
