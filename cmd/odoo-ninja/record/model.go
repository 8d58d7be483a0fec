// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"errors"
	"strconv"

	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/cli"
	"github.com/odoo-ninja/odoo-ninja/lib/odoo"
)

// Model describes one record family to the generic subcommand
// constructors.
type Model struct {
	// CommandName is the CLI group name (e.g., "helpdesk").
	CommandName string

	// Name is the Odoo model name (e.g., "helpdesk.ticket").
	Name string

	// Display is the singular noun used in messages (e.g., "ticket").
	Display string

	// TagModel is the Odoo model holding this family's tags (e.g.,
	// "helpdesk.tag"). Empty for families without tags.
	TagModel string

	// ListFields are the fields fetched and rendered by list.
	ListFields []string

	// ListOrder is the default sort order for list.
	ListOrder string

	// Filters are the list command's filter flags. Each matches its
	// Field with a case-insensitive substring (ilike) and filters
	// combine with AND semantics.
	Filters []Filter
}

// Filter is one filter flag on the list command.
type Filter struct {
	// Flag is the flag name (e.g., "stage" for --stage).
	Flag string

	// Desc is the flag's help text.
	Desc string

	// Field is the Odoo field path matched with ilike (e.g.,
	// "stage_id.name").
	Field string
}

// connectionParams is the params struct for commands with no flags of
// their own beyond the shared connection set.
type connectionParams struct {
	cli.Connection
}

// outputParams adds --json to the connection set.
type outputParams struct {
	cli.Connection
	cli.JSONOutput
}

// parseID converts a positional record ID argument.
func parseID(model Model, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, cli.Validation("%q is not a valid %s ID", arg, model.Display)
	}
	return id, nil
}

// commandError maps client errors to categorized command errors so the
// exit code reflects what went wrong.
func commandError(err error) error {
	var gate *odoo.PublicPostingError
	if errors.As(err, &gate) {
		return cli.Forbidden("%v", err)
	}
	if odoo.IsNotFound(err) {
		return cli.NotFound("%v", err)
	}
	var server *odoo.ServerError
	if errors.As(err, &server) {
		if server.IsAccessDenied() {
			return cli.Forbidden("%v", err)
		}
		return cli.Internal("%v", err)
	}
	var tool *cli.ToolError
	if errors.As(err, &tool) {
		return err
	}
	// Anything else is transport-level: connection refused, DNS, TLS.
	return cli.Transient("%v", err)
}
