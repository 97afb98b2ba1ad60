package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/symcheck/internal/triage"
)

// Config holds all symcheck configuration.
type Config struct {
	// Policy selects the evaluation policy: "early-exit" or "exhaustive".
	Policy string `yaml:"policy"`

	Actions ActionsConfig `yaml:"actions"`
	Logging LoggingConfig `yaml:"logging"`
}

// ActionsConfig configures the follow-up actions offered on a result.
type ActionsConfig struct {
	EmergencyNumber string `yaml:"emergency_number"`
	ClinicQuery     string `yaml:"clinic_query"`
	MapsURL         string `yaml:"maps_url"`
	OpenTimeout     string `yaml:"open_timeout"`
}

// LoggingConfig configures logging. The TUI owns the terminal, so logs
// only go to a file; an empty File disables logging.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Policy: string(triage.DefaultPolicy),
		Actions: ActionsConfig{
			EmergencyNumber: "911",
			ClinicQuery:     "campus health clinic near me",
			MapsURL:         "https://maps.google.com/",
			OpenTimeout:     "5s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// Defaults only.
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies SYMCHECK_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SYMCHECK_POLICY"); v != "" {
		c.Policy = v
	}
	if v := os.Getenv("SYMCHECK_EMERGENCY_NUMBER"); v != "" {
		c.Actions.EmergencyNumber = v
	}
	if v := os.Getenv("SYMCHECK_CLINIC_QUERY"); v != "" {
		c.Actions.ClinicQuery = v
	}
	if v := os.Getenv("SYMCHECK_MAPS_URL"); v != "" {
		c.Actions.MapsURL = v
	}
	if v := os.Getenv("SYMCHECK_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("SYMCHECK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// GetOpenTimeout returns the action timeout, falling back to 5s when unset
// or unparseable.
func (c *Config) GetOpenTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Actions.OpenTimeout); err == nil && d > 0 {
		return d
	}
	return 5 * time.Second
}

// EvaluationPolicy resolves the configured policy.
func (c *Config) EvaluationPolicy() (triage.Policy, error) {
	return triage.PolicyByName(c.Policy)
}

// Validate checks all fields and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if _, err := triage.PolicyByName(c.Policy); err != nil {
		errs = append(errs, err)
	}

	if strings.TrimSpace(c.Actions.EmergencyNumber) == "" {
		errs = append(errs, errors.New("actions.emergency_number must not be empty"))
	}

	if u, err := url.Parse(c.Actions.MapsURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid actions.maps_url %q", c.Actions.MapsURL))
	}

	if c.Actions.OpenTimeout != "" {
		if d, err := time.ParseDuration(c.Actions.OpenTimeout); err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("invalid actions.open_timeout %q (must be a positive duration)", c.Actions.OpenTimeout))
		}
	}

	if c.Logging.Level != "" {
		if _, err := zap.ParseAtomicLevel(c.Logging.Level); err != nil {
			errs = append(errs, fmt.Errorf("invalid logging.level %q", c.Logging.Level))
		}
	}

	return errors.Join(errs...)
}

// DefaultPath resolves the config file path in priority order:
// 1. SYMCHECK_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/symcheck/config.yaml
// 3. ~/.config/symcheck/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("SYMCHECK_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "symcheck", "config.yaml"), nil
}
