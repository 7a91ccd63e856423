// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment != Development {
		t.Errorf("expected environment=development, got %s", cfg.Environment)
	}

	if cfg.Source.Owner != "jaikrishnaverma-dev" || cfg.Source.Repo != "mcp-context-server" {
		t.Errorf("expected the public docs repository, got %s/%s", cfg.Source.Owner, cfg.Source.Repo)
	}

	if cfg.Source.Branch != "master" {
		t.Errorf("expected branch=master, got %s", cfg.Source.Branch)
	}

	if cfg.Source.DocsRoot != "mui-design-system-docs/docs" {
		t.Errorf("expected docs_root=mui-design-system-docs/docs, got %s", cfg.Source.DocsRoot)
	}

	if cfg.Resolution.Concurrency != 6 {
		t.Errorf("expected concurrency=6, got %d", cfg.Resolution.Concurrency)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoad_WithoutDesigndocConfig(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Source.Repo != Default().Source.Repo {
		t.Errorf("expected default source, got %+v", cfg.Source)
	}
}

func TestLoad_WithDesigndocConfig(t *testing.T) {
	configPath := writeConfig(t, "designdoc.yaml", `
environment: staging
source:
  owner: acme
  repo: docs
`)
	t.Setenv(EnvVar, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Environment != Staging {
		t.Errorf("expected environment=staging, got %s", cfg.Environment)
	}

	if cfg.Source.Owner != "acme" || cfg.Source.Repo != "docs" {
		t.Errorf("expected source acme/docs, got %s/%s", cfg.Source.Owner, cfg.Source.Repo)
	}

	// Unset fields keep their defaults.
	if cfg.Source.Branch != "master" {
		t.Errorf("expected default branch=master, got %s", cfg.Source.Branch)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, "designdoc.yaml", `
environment: staging

source:
  owner: acme
  repo: design-system
  branch: main
  docs_root: docs

github:
  base_url: https://github.example.com/api/v3
  timeout: 5s
  user_agent: docs-bot

resolution:
  concurrency: 2
  strategy: declaration

logging:
  level: debug
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Source.Branch != "main" {
		t.Errorf("expected branch=main, got %s", cfg.Source.Branch)
	}

	if cfg.Source.DocsRoot != "docs" {
		t.Errorf("expected docs_root=docs, got %s", cfg.Source.DocsRoot)
	}

	if cfg.GitHub.BaseURL != "https://github.example.com/api/v3" {
		t.Errorf("expected enterprise base_url, got %s", cfg.GitHub.BaseURL)
	}

	if timeout, err := cfg.RequestTimeout(); err != nil || timeout != 5*time.Second {
		t.Errorf("expected timeout=5s, got %v (%v)", timeout, err)
	}

	if cfg.GitHub.UserAgent != "docs-bot" {
		t.Errorf("expected user_agent=docs-bot, got %s", cfg.GitHub.UserAgent)
	}

	if cfg.Resolution.Concurrency != 2 || cfg.Resolution.Strategy != "declaration" {
		t.Errorf("expected resolution 2/declaration, got %+v", cfg.Resolution)
	}

	if level, err := cfg.LogLevel(); err != nil || level != slog.LevelDebug {
		t.Errorf("expected level=debug, got %v (%v)", level, err)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	configPath := writeConfig(t, "designdoc.jsonc", `{
  // Read from a local checkout.
  "source": {
    "local_path": "/srv/docs",
    "branch": "release", /* ignored for local reads */
  },
  "resolution": {"strategy": "table",},
}`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Source.LocalPath != "/srv/docs" {
		t.Errorf("expected local_path=/srv/docs, got %s", cfg.Source.LocalPath)
	}

	if cfg.Source.Branch != "release" {
		t.Errorf("expected branch=release, got %s", cfg.Source.Branch)
	}

	if cfg.Resolution.Strategy != "table" {
		t.Errorf("expected strategy=table, got %s", cfg.Resolution.Strategy)
	}

	// Fields absent from the file keep their defaults.
	if cfg.Resolution.Concurrency != 6 {
		t.Errorf("expected default concurrency=6, got %d", cfg.Resolution.Concurrency)
	}
}

func TestLoadFile_ParseError(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "designdoc.yaml", "source: [unclosed"},
		{"json", "designdoc.json", `{"source": }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("expected parse error, got nil")
			}
			if !strings.Contains(err.Error(), tt.file) {
				t.Errorf("expected error to name %s, got %v", tt.file, err)
			}
		})
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	configPath := writeConfig(t, "designdoc.yaml", `
environment: production

source:
  branch: develop

resolution:
  concurrency: 6

production:
  source:
    branch: master
  resolution:
    concurrency: 3
  logging:
    level: error
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	// Production overrides should be applied.
	if cfg.Source.Branch != "master" {
		t.Errorf("expected branch=master, got %s", cfg.Source.Branch)
	}

	if cfg.Resolution.Concurrency != 3 {
		t.Errorf("expected concurrency=3, got %d", cfg.Resolution.Concurrency)
	}

	if cfg.Logging.Level != "error" {
		t.Errorf("expected level=error, got %s", cfg.Logging.Level)
	}
}

func TestEnvironmentOverrides_ProductionDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "designdoc.yaml", "environment: production\n"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("expected production default level=warn, got %s", cfg.Logging.Level)
	}
}

func TestEnvironmentOverrides_OtherEnvironmentIgnored(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "designdoc.yaml", `
environment: development
staging:
  source:
    branch: staging
`))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Source.Branch != "master" {
		t.Errorf("expected staging section to be ignored, got branch=%s", cfg.Source.Branch)
	}
}

func TestEnvVarsDoNotOverride(t *testing.T) {
	// Set env vars that should be ignored.
	t.Setenv("DESIGNDOC_BRANCH", "env-branch")
	t.Setenv("DESIGNDOC_ENVIRONMENT", "staging")

	cfg, err := LoadFile(writeConfig(t, "designdoc.yaml", `
environment: development
source:
  branch: file-branch
`))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	// File values should be used, NOT env vars.
	if cfg.Environment != Development {
		t.Errorf("expected environment=development from file, got %s (env vars should not override)", cfg.Environment)
	}

	if cfg.Source.Branch != "file-branch" {
		t.Errorf("expected branch=file-branch from file, got %s (env vars should not override)", cfg.Source.Branch)
	}
}

func TestExpandVariables(t *testing.T) {
	t.Setenv("HOME", "/home/user")

	cfg, err := LoadFile(writeConfig(t, "designdoc.yaml", `
source:
  local_path: ${HOME}/src/docs
github:
  token_file: ${DESIGNDOC_TEST_UNSET:-/etc/designdoc/token}
`))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Source.LocalPath != "/home/user/src/docs" {
		t.Errorf("expected expanded local_path, got %s", cfg.Source.LocalPath)
	}

	if cfg.GitHub.TokenFile != "/etc/designdoc/token" {
		t.Errorf("expected default token_file, got %s", cfg.GitHub.TokenFile)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/designdoc",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/designdoc",
		},
		{
			input:    "${MISSING:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name: "invalid environment",
			modify: func(c *Config) {
				c.Environment = "invalid"
			},
			wantErr: "invalid environment",
		},
		{
			name: "missing owner",
			modify: func(c *Config) {
				c.Source.Owner = ""
			},
			wantErr: "source.owner is required",
		},
		{
			name: "local checkout needs no repository",
			modify: func(c *Config) {
				c.Source.Owner = ""
				c.Source.Repo = ""
				c.Source.LocalPath = "/srv/docs"
			},
		},
		{
			name: "plain http",
			modify: func(c *Config) {
				c.GitHub.BaseURL = "http://api.github.com"
			},
			wantErr: "github.base_url must use https",
		},
		{
			name: "bad timeout",
			modify: func(c *Config) {
				c.GitHub.Timeout = "soon"
			},
			wantErr: "github.timeout",
		},
		{
			name: "negative timeout",
			modify: func(c *Config) {
				c.GitHub.Timeout = "-1s"
			},
			wantErr: "github.timeout must be positive",
		},
		{
			name: "zero concurrency",
			modify: func(c *Config) {
				c.Resolution.Concurrency = 0
			},
			wantErr: "resolution.concurrency",
		},
		{
			name: "unknown strategy",
			modify: func(c *Config) {
				c.Resolution.Strategy = "regex"
			},
			wantErr: "resolution.strategy",
		},
		{
			name: "unknown log level",
			modify: func(c *Config) {
				c.Logging.Level = "verbose"
			},
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Source.Owner = ""
	cfg.Resolution.Strategy = "regex"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"source.owner", "resolution.strategy"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got %v", want, err)
		}
	}
}

func TestToken(t *testing.T) {
	cfg := Default()
	if token, err := cfg.Token(); err != nil || token != "" {
		t.Errorf("Token() without token_file = %q, %v; want empty", token, err)
	}

	cfg.GitHub.TokenFile = writeConfig(t, "token", "  ghp_example\n")
	if token, err := cfg.Token(); err != nil || token != "ghp_example" {
		t.Errorf("Token() = %q, %v; want ghp_example", token, err)
	}

	cfg.GitHub.TokenFile = writeConfig(t, "empty", "\n")
	if _, err := cfg.Token(); err == nil {
		t.Error("expected error for empty token file")
	}

	cfg.GitHub.TokenFile = filepath.Join(t.TempDir(), "missing")
	if _, err := cfg.Token(); err == nil {
		t.Error("expected error for missing token file")
	}
}
