// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete odoo-ninja CLI command tree.
package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/cli"
	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/helpdesk"
	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/project"
	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/projecttask"
	"github.com/odoo-ninja/odoo-ninja/lib/version"
)

// Root builds and returns the complete odoo-ninja command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "odoo-ninja",
		Description: `odoo-ninja: work with Odoo helpdesk tickets, project tasks, and
projects from the terminal.

Connection settings come from a config file (.odoo-ninja.env,
~/.config/odoo-ninja/config.env, or .env), ODOO_* environment
variables, and flags, in that order of precedence.`,
		Subcommands: []*cli.Command{
			helpdesk.Command(),
			projecttask.Command(),
			project.Command(),
			versionCommand(),
		},
	}
}

func versionCommand() *cli.Command {
	var short bool

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Usage:   "odoo-ninja version [--short]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("version", pflag.ContinueOnError)
			flagSet.BoolVar(&short, "short", false, "print only the version number")
			return flagSet
		},
		Run: func(args []string) error {
			if short {
				fmt.Println(version.Short())
				return nil
			}
			fmt.Printf("odoo-ninja %s\n", version.Full())
			return nil
		},
	}
}
