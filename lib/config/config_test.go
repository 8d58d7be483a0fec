// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv blanks every ODOO_* variable so the host environment cannot
// leak into a test. Empty values are treated as unset by Load.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvURL, EnvDatabase, EnvUsername, EnvPassword,
		EnvDefaultUserID, EnvAllowHarmfulOperations,
	} {
		t.Setenv(key, "")
	}
}

// chdir switches the working directory for the test and restores the
// original directory on cleanup, mirroring t.Chdir from newer Go releases.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "odoo.env", `
ODOO_URL=https://example.odoo.com
ODOO_DATABASE=production
ODOO_USERNAME=api@example.com
ODOO_PASSWORD=secret
ODOO_DEFAULT_USER_ID=7
ODOO_ALLOW_HARMFUL_OPERATIONS=true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.URL != "https://example.odoo.com" || cfg.Database != "production" {
		t.Errorf("connection = %q / %q", cfg.URL, cfg.Database)
	}
	if cfg.DefaultUserID != 7 {
		t.Errorf("DefaultUserID = %d", cfg.DefaultUserID)
	}
	if !cfg.AllowHarmfulOperations {
		t.Error("AllowHarmfulOperations not parsed")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadDotenvMixedCaseKeys(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "odoo.env", `
odoo_url=https://lower.odoo.com
ODOO_Database=production
Odoo_Default_User_Id=7
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.URL != "https://lower.odoo.com" {
		t.Errorf("URL = %q, want the lowercase-keyed value applied", cfg.URL)
	}
	if cfg.Database != "production" {
		t.Errorf("Database = %q, want the mixed-case key applied", cfg.Database)
	}
	if cfg.DefaultUserID != 7 {
		t.Errorf("DefaultUserID = %d, want 7", cfg.DefaultUserID)
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "odoo.yaml", `
url: https://example.odoo.com
database: production
username: api@example.com
password: secret
default_user_id: 7
allow_harmful_operations: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.URL != "https://example.odoo.com" || cfg.DefaultUserID != 7 || !cfg.AllowHarmfulOperations {
		t.Errorf("config = %+v", cfg)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "odoo.env", `
ODOO_URL=https://file.odoo.com
ODOO_DATABASE=filedb
`)
	t.Setenv(EnvURL, "https://env.odoo.com")
	t.Setenv(EnvAllowHarmfulOperations, "1")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.URL != "https://env.odoo.com" {
		t.Errorf("URL = %q, want the environment value", cfg.URL)
	}
	if cfg.Database != "filedb" {
		t.Errorf("Database = %q, want the file value to survive", cfg.Database)
	}
	if !cfg.AllowHarmfulOperations {
		t.Error("AllowHarmfulOperations=1 not applied from environment")
	}
}

func TestCandidateDiscovery(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", filepath.Join(dir, "home"))

	writeFile(t, dir, ".env", "ODOO_DATABASE=fallback\n")
	writeFile(t, dir, ".odoo-ninja.env", "ODOO_DATABASE=preferred\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database != "preferred" {
		t.Errorf("Database = %q, want .odoo-ninja.env to win over .env", cfg.Database)
	}
}

func TestNoConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Setenv(EnvURL, "https://env.odoo.com")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load without any file: %v", err)
	}
	if cfg.URL != "https://env.odoo.com" {
		t.Errorf("URL = %q", cfg.URL)
	}
}

func TestExplicitPathMustExist(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

func TestBadValues(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	t.Run("non-integer user id", func(t *testing.T) {
		path := writeFile(t, dir, "baduser.env", "ODOO_DEFAULT_USER_ID=alice\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("non-boolean gate", func(t *testing.T) {
		path := writeFile(t, dir, "badgate.env", "ODOO_ALLOW_HARMFUL_OPERATIONS=maybe\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestParseBool(t *testing.T) {
	for _, value := range []string{"1", "true", "TRUE", "yes", "on"} {
		got, err := parseBool(value)
		if err != nil || !got {
			t.Errorf("parseBool(%q) = %v, %v", value, got, err)
		}
	}
	for _, value := range []string{"0", "false", "no", "off", ""} {
		got, err := parseBool(value)
		if err != nil || got {
			t.Errorf("parseBool(%q) = %v, %v", value, got, err)
		}
	}
	if _, err := parseBool("maybe"); err == nil {
		t.Error("parseBool(maybe) did not error")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors for an empty config")
	}
	for _, want := range []string{EnvURL, EnvDatabase, EnvUsername, EnvPassword} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("validation error does not mention %s: %v", want, err)
		}
	}

	cfg = &Config{URL: "example.odoo.com", Database: "db", Username: "u", Password: "p"}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "http") {
		t.Errorf("schemeless URL not rejected: %v", err)
	}
}
