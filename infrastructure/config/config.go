// Package config loads suite settings. Layers, later wins: built-in
// defaults, config/<env>.toml, a .env file, then E2E_* process variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"practice_automation/domain/entities"
	"practice_automation/infrastructure/browser"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

const defaultEnv = "dev"

// Config holds everything a run needs
type Config struct {
	// Env selects the config file, from E2E_ENV
	Env string `toml:"-"`

	Sites       SitesConfig       `toml:"sites"`
	Browser     BrowserConfig     `toml:"browser"`
	Timeouts    TimeoutsConfig    `toml:"timeouts"`
	Credentials CredentialsConfig `toml:"credentials"`
	Artifacts   ArtifactsConfig   `toml:"artifacts"`
	Logging     LoggingConfig     `toml:"logging"`
	Fixtures    FixturesConfig    `toml:"fixtures"`

	issues []string
}

type SitesConfig struct {
	BaseURL   string `toml:"base_url"`
	AlertURL  string `toml:"alert_url"`
	IframeURL string `toml:"iframe_url"`
}

type BrowserConfig struct {
	Name     string `toml:"name"` // chromium, firefox or webkit
	Headless bool   `toml:"headless"`
	SlowMoMS int    `toml:"slow_mo_ms"`
	// Install downloads the driver and browser on start
	Install bool `toml:"install"`
	// SeedState is a storage state file, such as the state.json of an earlier
	// run, that every new context starts from
	SeedState string `toml:"seed_state"`
}

// TimeoutsConfig values are milliseconds
type TimeoutsConfig struct {
	DefaultMS      int `toml:"default_ms"`
	VisibilityMS   int `toml:"visibility_ms"`
	DialogMS       int `toml:"dialog_ms"`
	DialogSettleMS int `toml:"dialog_settle_ms"`
}

// CredentialsConfig overrides the login fixture when set
type CredentialsConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

type ArtifactsConfig struct {
	Dir string `toml:"dir"`
	// SaveState dumps cookies and local storage at the end of a run
	SaveState bool `toml:"save_state"`
}

// FixturesConfig points at a YAML test data file overlaying the built-in data
type FixturesConfig struct {
	File string `toml:"file"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

// ValidationError collects every problem found in a config
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Env: defaultEnv,
		Sites: SitesConfig{
			BaseURL:   entities.DefaultBaseURL,
			AlertURL:  entities.DefaultAlertURL,
			IframeURL: entities.DefaultIframeURL,
		},
		Browser: BrowserConfig{
			Name:     "chromium",
			Headless: true,
		},
		Timeouts: TimeoutsConfig{
			DefaultMS:      30000,
			VisibilityMS:   5000,
			DialogMS:       5000,
			DialogSettleMS: 500,
		},
		Artifacts: ArtifactsConfig{
			Dir:       "artifacts",
			SaveState: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the config from dir/<env>.toml and the environment. envFiles
// are dotenv files to read, ".env" when none are given; missing ones are
// skipped.
func Load(dir string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := Default()
	cfg.Env = getEnvOrDefault("E2E_ENV", defaultEnv)

	path := filepath.Join(dir, cfg.Env+".toml")
	if err := cfg.MergeFile(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MergeFile overlays the TOML file at path onto c
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.Sites.BaseURL, "E2E_BASE_URL")
	setString(&c.Sites.AlertURL, "E2E_ALERT_URL")
	setString(&c.Sites.IframeURL, "E2E_IFRAME_URL")
	setString(&c.Credentials.Username, "E2E_USERNAME")
	setString(&c.Credentials.Password, "E2E_PASSWORD")
	setString(&c.Browser.Name, "E2E_BROWSER")
	setString(&c.Artifacts.Dir, "E2E_ARTIFACTS_DIR")
	setString(&c.Logging.Level, "E2E_LOG_LEVEL")
	setString(&c.Fixtures.File, "E2E_DATA_FILE")
	setString(&c.Browser.SeedState, "E2E_SEED_STATE")

	c.setBool(&c.Browser.Headless, "E2E_HEADLESS")
	c.setBool(&c.Browser.Install, "E2E_INSTALL")
	c.setInt(&c.Browser.SlowMoMS, "E2E_SLOWMO_MS")
	c.setInt(&c.Timeouts.DefaultMS, "E2E_TIMEOUT_MS")
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	errs := append([]string(nil), c.issues...)

	for name, raw := range map[string]string{
		"sites.base_url":   c.Sites.BaseURL,
		"sites.alert_url":  c.Sites.AlertURL,
		"sites.iframe_url": c.Sites.IframeURL,
	} {
		if err := checkURL(raw); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, err))
		}
	}

	switch strings.ToLower(c.Browser.Name) {
	case "chromium", "chrome", "firefox", "webkit", "safari":
	default:
		errs = append(errs, fmt.Sprintf("browser.name %q is not chromium, firefox or webkit", c.Browser.Name))
	}
	if c.Browser.SlowMoMS < 0 {
		errs = append(errs, "browser.slow_mo_ms must not be negative")
	}

	if c.Timeouts.DefaultMS <= 0 {
		errs = append(errs, "timeouts.default_ms must be positive")
	}
	if c.Timeouts.VisibilityMS <= 0 {
		errs = append(errs, "timeouts.visibility_ms must be positive")
	}
	if c.Timeouts.DialogMS <= 0 {
		errs = append(errs, "timeouts.dialog_ms must be positive")
	}
	if c.Timeouts.DialogSettleMS < 0 {
		errs = append(errs, "timeouts.dialog_settle_ms must not be negative")
	}

	if strings.TrimSpace(c.Artifacts.Dir) == "" {
		errs = append(errs, "artifacts.dir is required")
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Sprintf("logging.level: %v", err))
	}

	if len(errs) > 0 {
		slices.Sort(errs)
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Settings returns what page objects need
func (c *Config) Settings() entities.Settings {
	return entities.Settings{
		BaseURL:           c.Sites.BaseURL,
		AlertURL:          c.Sites.AlertURL,
		IframeURL:         c.Sites.IframeURL,
		DefaultTimeout:    ms(c.Timeouts.DefaultMS),
		VisibilityTimeout: ms(c.Timeouts.VisibilityMS),
		DialogTimeout:     ms(c.Timeouts.DialogMS),
		DialogSettle:      ms(c.Timeouts.DialogSettleMS),
	}
}

// BrowserOptions returns the launch options for the browser driver
func (c *Config) BrowserOptions() browser.Options {
	return browser.Options{
		Browser:        strings.ToLower(c.Browser.Name),
		Headless:       c.Browser.Headless,
		SlowMo:         ms(c.Browser.SlowMoMS),
		DefaultTimeout: ms(c.Timeouts.DefaultMS),
		Install:        c.Browser.Install,
		StatePath:      c.Browser.SeedState,
	}
}

// LogLevel returns the parsed log level, info when it does not parse
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Logging.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// ApplyCredentials overrides the fixture user with configured credentials
func (c *Config) ApplyCredentials(user entities.LoginUser) entities.LoginUser {
	if c.Credentials.Username != "" {
		user.Username = c.Credentials.Username
	}
	if c.Credentials.Password != "" {
		user.Password = c.Credentials.Password
	}
	return user
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q must be an http(s) URL", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c *Config) setBool(dst *bool, key string) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.issues = append(c.issues, fmt.Sprintf("%s: %q is not a boolean", key, v))
		return
	}
	*dst = b
}

func (c *Config) setInt(dst *int, key string) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		c.issues = append(c.issues, fmt.Sprintf("%s: %q is not an integer", key, v))
		return
	}
	*dst = n
}
