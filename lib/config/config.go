// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads Odoo connection settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. a config file: the path given with --config, or the first existing
//     file among ./.odoo-ninja.env, ~/.config/odoo-ninja/config.env, ./.env
//  2. ODOO_* environment variables
//  3. connection flags on the command line (applied by the caller)
//
// Files ending in .yaml or .yml are parsed as YAML; everything else is
// parsed as dotenv (KEY=value lines) using the same ODOO_* key names as
// the environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names recognized in layer 2, and key names in
// dotenv config files.
const (
	EnvURL                    = "ODOO_URL"
	EnvDatabase               = "ODOO_DATABASE"
	EnvUsername               = "ODOO_USERNAME"
	EnvPassword               = "ODOO_PASSWORD"
	EnvDefaultUserID          = "ODOO_DEFAULT_USER_ID"
	EnvAllowHarmfulOperations = "ODOO_ALLOW_HARMFUL_OPERATIONS"
)

// Config holds the settings needed to talk to an Odoo server.
type Config struct {
	// URL is the base URL of the Odoo server, without the /xmlrpc suffix.
	URL string `yaml:"url"`

	// Database is the Odoo database name.
	Database string `yaml:"database"`

	// Username is the login of the API user.
	Username string `yaml:"username"`

	// Password is the API user's password or API key.
	Password string `yaml:"password"`

	// DefaultUserID is the res.users id used as the author of posted
	// messages when no --as-user override is given.
	DefaultUserID int64 `yaml:"default_user_id"`

	// AllowHarmfulOperations permits operations that are visible to
	// customers, such as posting public comments on tickets. Internal
	// notes never require it.
	AllowHarmfulOperations bool `yaml:"allow_harmful_operations"`
}

// Load builds a Config from the file and environment layers.
//
// If explicitPath is non-empty that file must exist; otherwise the first
// existing candidate file is used, and having no config file at all is
// fine (the environment or flags may carry everything).
func Load(explicitPath string) (*Config, error) {
	cfg := &Config{}

	path, err := resolvePath(explicitPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvironment(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolvePath picks the config file to read, or "" for none.
func resolvePath(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicitPath, err)
		}
		return explicitPath, nil
	}

	for _, candidate := range candidatePaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

func candidatePaths() []string {
	candidates := []string{".odoo-ninja.env"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "odoo-ninja", "config.env"))
	}
	return append(candidates, ".env")
}

// loadFile merges one config file into the config.
func (c *Config) loadFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, c)
	default:
		values, err := godotenv.Read(path)
		if err != nil {
			return err
		}
		return c.applyValues(values)
	}
}

// applyEnvironment overlays ODOO_* variables from the process environment.
// Variables set to the empty string are treated as unset.
func (c *Config) applyEnvironment() error {
	values := map[string]string{}
	for _, key := range []string{
		EnvURL, EnvDatabase, EnvUsername, EnvPassword,
		EnvDefaultUserID, EnvAllowHarmfulOperations,
	} {
		if value := os.Getenv(key); value != "" {
			values[key] = value
		}
	}
	return c.applyValues(values)
}

// applyValues merges ODOO_* keyed values into the config. Keys match
// case-insensitively; unknown keys are ignored so shared .env files can
// carry unrelated settings.
func (c *Config) applyValues(values map[string]string) error {
	for key, value := range values {
		switch strings.ToUpper(key) {
		case EnvURL:
			c.URL = value
		case EnvDatabase:
			c.Database = value
		case EnvUsername:
			c.Username = value
		case EnvPassword:
			c.Password = value
		case EnvDefaultUserID:
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("%s: %q is not an integer", key, value)
			}
			c.DefaultUserID = id
		case EnvAllowHarmfulOperations:
			enabled, err := parseBool(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			c.AllowHarmfulOperations = enabled
		}
	}
	return nil
}

// parseBool accepts the spellings people actually put in .env files.
func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off", "":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", value)
}

// Validate checks that the connection settings are complete.
func (c *Config) Validate() error {
	var errs []error

	if c.URL == "" {
		errs = append(errs, fmt.Errorf("server URL is required (%s or --url)", EnvURL))
	} else if !strings.HasPrefix(c.URL, "http://") && !strings.HasPrefix(c.URL, "https://") {
		errs = append(errs, fmt.Errorf("server URL %q must start with http:// or https://", c.URL))
	}
	if c.Database == "" {
		errs = append(errs, fmt.Errorf("database name is required (%s or --database)", EnvDatabase))
	}
	if c.Username == "" {
		errs = append(errs, fmt.Errorf("username is required (%s or --username)", EnvUsername))
	}
	if c.Password == "" {
		errs = append(errs, fmt.Errorf("password is required (%s or --password)", EnvPassword))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
