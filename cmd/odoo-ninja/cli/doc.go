// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the odoo-ninja CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in
// cmd/odoo-ninja/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// [Connection] is the embeddable flag group shared by every command that
// talks to an Odoo server. It registers --config and the connection
// override flags, and its Connect method layers the config file, ODOO_*
// environment variables, and flag values into a validated [odoo.Client].
package cli
