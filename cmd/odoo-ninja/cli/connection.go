// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/spf13/pflag"

	"github.com/odoo-ninja/odoo-ninja/lib/config"
	"github.com/odoo-ninja/odoo-ninja/lib/odoo"
)

// Connection manages the Odoo connection parameters shared by every
// command that talks to a server. Embed it in a command's params struct
// to register the --config flag and the connection override flags.
//
// Connect layers the three configuration sources: config file, ODOO_*
// environment variables, then these flags.
type Connection struct {
	ConfigPath string
	URL        string
	Database   string
	Username   string
	Password   string
}

// AddFlags registers the connection flags, satisfying [FlagBinder].
func (c *Connection) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.ConfigPath, "config", "", "path to a config file (default: search .odoo-ninja.env, ~/.config/odoo-ninja/config.env, .env)")
	flagSet.StringVar(&c.URL, "url", "", "Odoo server URL")
	flagSet.StringVar(&c.Database, "database", "", "Odoo database name")
	flagSet.StringVar(&c.Username, "username", "", "Odoo login")
	flagSet.StringVar(&c.Password, "password", "", "Odoo password or API key")
}

// Connect builds a validated client from the layered configuration.
func (c *Connection) Connect() (*odoo.Client, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, Validation("%v", err)
	}

	// Flags override both the file and the environment.
	if c.URL != "" {
		cfg.URL = c.URL
	}
	if c.Database != "" {
		cfg.Database = c.Database
	}
	if c.Username != "" {
		cfg.Username = c.Username
	}
	if c.Password != "" {
		cfg.Password = c.Password
	}

	if err := cfg.Validate(); err != nil {
		return nil, Validation("incomplete connection settings:\n%v", err)
	}

	client, err := odoo.NewClient(odoo.ClientConfig{
		URL:                 cfg.URL,
		Database:            cfg.Database,
		Username:            cfg.Username,
		Password:            cfg.Password,
		DefaultUserID:       cfg.DefaultUserID,
		AllowPublicMessages: cfg.AllowHarmfulOperations,
		Logger:              NewCommandLogger(),
	})
	if err != nil {
		return nil, Validation("%v", err)
	}
	return client, nil
}
