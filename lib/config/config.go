// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable [Load] reads the config file
// path from.
const EnvVar = "DESIGNDOC_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the master configuration for designdoc.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment" json:"environment"`

	// Source locates the documentation tree.
	Source SourceConfig `yaml:"source" json:"source"`

	// GitHub configures the GitHub API client.
	GitHub GitHubConfig `yaml:"github" json:"github"`

	// Resolution configures component resolution.
	Resolution ResolutionConfig `yaml:"resolution" json:"resolution"`

	// Logging configures the process logger.
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty" json:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty" json:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty" json:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Source     *SourceConfig     `yaml:"source,omitempty" json:"source,omitempty"`
	GitHub     *GitHubConfig     `yaml:"github,omitempty" json:"github,omitempty"`
	Resolution *ResolutionConfig `yaml:"resolution,omitempty" json:"resolution,omitempty"`
	Logging    *LoggingConfig    `yaml:"logging,omitempty" json:"logging,omitempty"`
}

// SourceConfig locates the documentation tree.
type SourceConfig struct {
	// Owner is the GitHub account owning the documentation repository.
	Owner string `yaml:"owner" json:"owner"`

	// Repo is the documentation repository name.
	Repo string `yaml:"repo" json:"repo"`

	// Branch is the ref artifacts are read from.
	// Default: master
	Branch string `yaml:"branch" json:"branch"`

	// DocsRoot is the repository-relative directory holding the
	// "components" and "layouts" directories.
	// Default: mui-design-system-docs/docs
	DocsRoot string `yaml:"docs_root" json:"docs_root"`

	// LocalPath, when set, is a local checkout of the repository.
	// Artifacts are read from disk and the GitHub API is not used.
	LocalPath string `yaml:"local_path" json:"local_path"`
}

// GitHubConfig configures the GitHub API client.
type GitHubConfig struct {
	// BaseURL is the API root. Must be HTTPS.
	// Default: https://api.github.com
	BaseURL string `yaml:"base_url" json:"base_url"`

	// TokenFile is a file holding a GitHub token. Optional: without a
	// token, requests are anonymous and subject to the lower
	// unauthenticated rate limit.
	TokenFile string `yaml:"token_file" json:"token_file"`

	// Timeout bounds each HTTP request, as a Go duration string.
	// Default: 30s
	Timeout string `yaml:"timeout" json:"timeout"`

	// UserAgent is sent with every request.
	// Default: designdoc
	UserAgent string `yaml:"user_agent" json:"user_agent"`
}

// ResolutionConfig configures component resolution.
type ResolutionConfig struct {
	// Concurrency bounds parallel artifact retrievals per resolution.
	// Default: 6
	Concurrency int `yaml:"concurrency" json:"concurrency"`

	// Strategy selects prop extraction: "auto", "table", or
	// "declaration".
	// Default: auto
	Strategy string `yaml:"strategy" json:"strategy"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	// Level is the minimum level logged: debug, info, warn, or error.
	// Default: info
	Level string `yaml:"level" json:"level"`
}

// strategies lists the valid ResolutionConfig.Strategy values.
var strategies = []string{"auto", "table", "declaration"}

// Default returns the default configuration: the public design system
// documentation repository, read anonymously through api.github.com.
func Default() *Config {
	return &Config{
		Environment: Development,
		Source: SourceConfig{
			Owner:    "jaikrishnaverma-dev",
			Repo:     "mcp-context-server",
			Branch:   "master",
			DocsRoot: "mui-design-system-docs/docs",
		},
		GitHub: GitHubConfig{
			BaseURL:   "https://api.github.com",
			Timeout:   "30s",
			UserAgent: "designdoc",
		},
		Resolution: ResolutionConfig{
			Concurrency: 6,
			Strategy:    "auto",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the file named by DESIGNDOC_CONFIG.
// When the variable is unset, Load returns [Default].
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		cfg := Default()
		cfg.applyEnvironmentOverrides()
		cfg.expandVariables()
		return cfg, nil
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment variables do not
// override config values. The only expansion performed is ${HOME} and similar
// path variables for portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	// Apply environment-specific overrides (development/staging/production sections in the file).
	cfg.applyEnvironmentOverrides()

	// Expand ${HOME} and similar variables in paths for portability.
	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production defaults: quieter logging.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Logging: &LoggingConfig{Level: "warn"},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Source != nil {
		overrideString(&c.Source.Owner, overrides.Source.Owner)
		overrideString(&c.Source.Repo, overrides.Source.Repo)
		overrideString(&c.Source.Branch, overrides.Source.Branch)
		overrideString(&c.Source.DocsRoot, overrides.Source.DocsRoot)
		overrideString(&c.Source.LocalPath, overrides.Source.LocalPath)
	}

	if overrides.GitHub != nil {
		overrideString(&c.GitHub.BaseURL, overrides.GitHub.BaseURL)
		overrideString(&c.GitHub.TokenFile, overrides.GitHub.TokenFile)
		overrideString(&c.GitHub.Timeout, overrides.GitHub.Timeout)
		overrideString(&c.GitHub.UserAgent, overrides.GitHub.UserAgent)
	}

	if overrides.Resolution != nil {
		if overrides.Resolution.Concurrency != 0 {
			c.Resolution.Concurrency = overrides.Resolution.Concurrency
		}
		overrideString(&c.Resolution.Strategy, overrides.Resolution.Strategy)
	}

	if overrides.Logging != nil {
		overrideString(&c.Logging.Level, overrides.Logging.Level)
	}
}

// overrideString replaces *target with value when value is set.
func overrideString(target *string, value string) {
	if value != "" {
		*target = value
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Source.LocalPath = expandVars(c.Source.LocalPath, vars)
	c.GitHub.TokenFile = expandVars(c.GitHub.TokenFile, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. Every problem found is
// reported, joined with errors.Join.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Source.LocalPath == "" {
		if c.Source.Owner == "" {
			errs = append(errs, fmt.Errorf("source.owner is required"))
		}
		if c.Source.Repo == "" {
			errs = append(errs, fmt.Errorf("source.repo is required"))
		}
		if !strings.HasPrefix(c.GitHub.BaseURL, "https://") {
			errs = append(errs, fmt.Errorf("github.base_url must use https: %q", c.GitHub.BaseURL))
		}
	}

	if _, err := c.RequestTimeout(); err != nil {
		errs = append(errs, err)
	}

	if c.Resolution.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("resolution.concurrency must be at least 1, got %d", c.Resolution.Concurrency))
	}
	if !contains(strategies, c.Resolution.Strategy) {
		errs = append(errs, fmt.Errorf("resolution.strategy must be one of: %v", strategies))
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// RequestTimeout parses GitHub.Timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	timeout, err := time.ParseDuration(c.GitHub.Timeout)
	if err != nil {
		return 0, fmt.Errorf("github.timeout: %w", err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("github.timeout must be positive, got %s", c.GitHub.Timeout)
	}
	return timeout, nil
}

// LogLevel parses Logging.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}

// Token returns the GitHub token from GitHub.TokenFile, with
// surrounding whitespace removed. It returns "" without error when no
// token file is configured.
func (c *Config) Token() (string, error) {
	if c.GitHub.TokenFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.GitHub.TokenFile)
	if err != nil {
		return "", fmt.Errorf("reading github.token_file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("github.token_file %s is empty", c.GitHub.TokenFile)
	}
	return token, nil
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
