// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/cli"
)

type chatterParams struct {
	cli.Connection
	cli.JSONOutput
	Limit   int  `flag:"limit" desc:"maximum number of messages (0 for the full history)"`
	RawHTML bool `flag:"html" desc:"print message bodies as raw HTML"`
}

// ChatterCommand shows a record's message history, newest first.
// Message bodies are stored as HTML and rendered to Markdown for the
// terminal.
func ChatterCommand(model Model) *cli.Command {
	var params chatterParams

	return &cli.Command{
		Name:    "chatter",
		Summary: fmt.Sprintf("Show the message history of a %s", model.Display),
		Usage:   fmt.Sprintf("odoo-ninja %s chatter <id> [flags]", model.CommandName),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("chatter", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: %s chatter <id>", model.CommandName)
			}
			id, err := parseID(model, args[0])
			if err != nil {
				return err
			}

			client, err := params.Connect()
			if err != nil {
				return err
			}

			messages, err := client.ListMessages(model.Name, id, params.Limit)
			if err != nil {
				return commandError(err)
			}

			if done, err := params.EmitJSON(messages); done {
				return err
			}

			if len(messages) == 0 {
				fmt.Printf("no messages on %s %d\n", model.Display, id)
				return nil
			}
			return writeMessages(messages, params.RawHTML)
		},
	}
}
