// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

// Package helpdesk is the command group for helpdesk tickets.
package helpdesk

import (
	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/cli"
	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/record"
)

var ticketModel = record.Model{
	CommandName: "helpdesk",
	Name:        "helpdesk.ticket",
	Display:     "ticket",
	TagModel:    "helpdesk.tag",
	ListFields: []string{
		"id", "name", "partner_id", "stage_id", "user_id",
		"priority", "tag_ids", "create_date",
	},
	ListOrder: "create_date desc",
	Filters: []record.Filter{
		{Flag: "stage", Desc: "filter by stage name", Field: "stage_id.name"},
		{Flag: "partner", Desc: "filter by customer name", Field: "partner_id.name"},
		{Flag: "assigned-to", Desc: "filter by assignee name", Field: "user_id.name"},
	},
}

// Command returns the helpdesk command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "helpdesk",
		Summary: "Work with helpdesk tickets",
		Subcommands: []*cli.Command{
			record.ListCommand(ticketModel),
			record.ShowCommand(ticketModel),
			record.ChatterCommand(ticketModel),
			record.NoteCommand(ticketModel),
			record.CommentCommand(ticketModel),
			record.TagsCommand(ticketModel),
			record.TagCommand(ticketModel),
			record.SetCommand(ticketModel),
			record.FieldsCommand(ticketModel),
			record.AttachmentsCommand(ticketModel),
			record.DownloadCommand(ticketModel),
			record.DownloadAllCommand(ticketModel),
			record.AttachCommand(ticketModel),
			record.URLCommand(ticketModel),
		},
	}
}
