package config

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/contre95/namer/src/names"
	"gopkg.in/yaml.v3"
)

// Manager holds the application configuration and provides thread-safe access to it.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	rules  *names.Rules
}

// NewManager creates a new Manager. cfg is expected to have passed Validate;
// rules that fail to build fall back to names.DefaultRules.
func NewManager(cfg *Config) *Manager {
	m := &Manager{config: cfg}
	m.rules = m.buildRules(cfg)
	return m
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Rules returns the rule set built from the current configuration.
func (m *Manager) Rules() *names.Rules {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rules
}

// Update validates and swaps in a new configuration.
func (m *Manager) Update(cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	rules := m.buildRules(cfg)

	m.mu.Lock()
	defer m.mu.Unlock()
	old := m.config
	m.config = cfg
	m.rules = rules

	if old != nil {
		slog.Debug("Configuration updated",
			"rules_changed", old.Rules != cfg.Rules,
			"logger_changed", old.Logger != cfg.Logger,
			"metrics_changed", old.Metrics != cfg.Metrics,
		)
	}
	return nil
}

func (m *Manager) buildRules(cfg *Config) *names.Rules {
	r, err := cfg.Rules.Build()
	if err != nil {
		slog.Warn("Invalid naming rules, using defaults", "error", err)
		return names.DefaultRules
	}
	return r
}

// Save writes the current configuration to the specified file path.
func (m *Manager) Save(path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(m.config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	slog.Info("Configuration saved", "path", path)
	return nil
}

// GetYAML returns the current configuration as a YAML string.
func (m *Manager) GetYAML() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	yamlBytes, err := yaml.Marshal(m.config)
	if err != nil {
		slog.Error("failed to marshal config to YAML", "error", err)
		return err.Error()
	}
	return string(yamlBytes)
}
