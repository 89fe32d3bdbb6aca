// Package config provides centralized configuration for the smoke suite.
// Values come from environment variables, optionally seeded from a .env file,
// with defaults that point the suite at the production marketing site.
//
// CREAI_BASE_URL selects the origin under test; everything else tunes the
// browser session (headless mode, timeouts, viewport matrix, screenshots).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cmblandon/creai/internal/browser"
	"github.com/cmblandon/creai/internal/obs"
)

const defaultBaseURL = "https://creai.mx"

// Config holds all suite configuration.
type Config struct {
	// Target site
	BaseURL string // CREAI_BASE_URL, origin all page paths resolve against

	// Browser session
	Headless      bool          // CREAI_HEADLESS
	SlowMo        time.Duration // CREAI_SLOWMO, delay between driver operations
	NavTimeout    time.Duration // CREAI_NAV_TIMEOUT
	ActionTimeout time.Duration // CREAI_ACTION_TIMEOUT, also bounds menu-item visibility waits

	// Artifacts
	ScreenshotDir string // CREAI_SCREENSHOT_DIR, empty disables capture

	// Viewport matrix; replaced wholesale by CREAI_VIEWPORTS_FILE when set
	Viewports []browser.Viewport
}

// ValidationError represents a configuration validation error with multiple issues.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	// Best-effort .env for local runs. Missing file is normal in CI.
	if err := godotenv.Load(); err != nil {
		obs.Pkg("config").Debug("no .env file loaded", "error", err)
	}

	cfg := &Config{}

	cfg.BaseURL = strings.TrimRight(getEnvOrDefault("CREAI_BASE_URL", defaultBaseURL), "/")
	cfg.Headless = parseBoolOrDefault("CREAI_HEADLESS", true)
	cfg.SlowMo = parseDurationOrDefault("CREAI_SLOWMO", 0)
	cfg.NavTimeout = parseDurationOrDefault("CREAI_NAV_TIMEOUT", 10*time.Second)
	cfg.ActionTimeout = parseDurationOrDefault("CREAI_ACTION_TIMEOUT", 5*time.Second)
	cfg.ScreenshotDir = getEnvOrDefault("CREAI_SCREENSHOT_DIR", "")

	cfg.Viewports = browser.DefaultViewports()
	if path := getEnvOrDefault("CREAI_VIEWPORTS_FILE", ""); path != "" {
		viewports, err := LoadViewportsFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load viewports file: %w", err)
		}
		cfg.Viewports = viewports
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all configuration is present and usable.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.BaseURL) == "" {
		errs = append(errs, "CREAI_BASE_URL must not be empty")
	} else if u, err := url.Parse(c.BaseURL); err != nil || u.Host == "" {
		errs = append(errs, fmt.Sprintf("CREAI_BASE_URL must be an absolute URL, got %q", c.BaseURL))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Sprintf("CREAI_BASE_URL must use http or https, got %q", u.Scheme))
	}

	if c.NavTimeout <= 0 {
		errs = append(errs, "CREAI_NAV_TIMEOUT must be positive")
	}
	if c.ActionTimeout <= 0 {
		errs = append(errs, "CREAI_ACTION_TIMEOUT must be positive")
	}
	if c.SlowMo < 0 {
		errs = append(errs, "CREAI_SLOWMO must not be negative")
	}

	if len(c.Viewports) == 0 {
		errs = append(errs, "at least one viewport is required")
	}
	seen := make(map[string]bool, len(c.Viewports))
	for _, v := range c.Viewports {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			errs = append(errs, "viewport names must not be empty")
		} else if seen[name] {
			errs = append(errs, fmt.Sprintf("duplicate viewport name %q", name))
		}
		seen[name] = true
		if v.Width <= 0 || v.Height <= 0 {
			errs = append(errs, fmt.Sprintf("viewport %q must have positive dimensions", v.Name))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}

// LaunchOptions converts the config into browser launch options.
func (c *Config) LaunchOptions() browser.LaunchOptions {
	return browser.LaunchOptions{
		Headless:      c.Headless,
		SlowMo:        c.SlowMo,
		NavTimeout:    c.NavTimeout,
		ActionTimeout: c.ActionTimeout,
	}
}

// viewportsFile is the on-disk shape of a viewport profile file:
//
//	viewports:
//	  - name: desktop
//	    width: 1280
//	    height: 720
type viewportsFile struct {
	Viewports []browser.Viewport `yaml:"viewports"`
}

// LoadViewportsFile reads a YAML viewport profile file.
func LoadViewportsFile(path string) ([]browser.Viewport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read viewports file: %w", err)
	}

	var parsed viewportsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse viewports file: %w", err)
	}
	if len(parsed.Viewports) == 0 {
		return nil, fmt.Errorf("viewports file %s defines no viewports", path)
	}

	return parsed.Viewports, nil
}

// Helper functions for parsing environment variables

func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// MustLoad loads configuration and panics if validation fails.
// Use when the caller wants to fail fast on bad config.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			panic(fmt.Sprintf("Configuration validation failed:\n  - %s", strings.Join(validationErr.Errors, "\n  - ")))
		}
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}
	return cfg
}
