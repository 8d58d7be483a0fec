// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

// Package project is the command group for projects. Projects have no
// tag model, so the tags and tag subcommands are absent.
package project

import (
	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/cli"
	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/record"
)

var projectModel = record.Model{
	CommandName: "project",
	Name:        "project.project",
	Display:     "project",
	ListFields: []string{
		"id", "name", "user_id", "partner_id", "task_count", "date_start", "date",
	},
	ListOrder: "name",
	Filters: []record.Filter{
		{Flag: "name", Desc: "filter by project name", Field: "name"},
		{Flag: "user", Desc: "filter by project manager name", Field: "user_id.name"},
		{Flag: "partner", Desc: "filter by customer name", Field: "partner_id.name"},
	},
}

// Command returns the project command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "project",
		Summary: "Work with projects",
		Subcommands: []*cli.Command{
			record.ListCommand(projectModel),
			record.ShowCommand(projectModel),
			record.ChatterCommand(projectModel),
			record.NoteCommand(projectModel),
			record.CommentCommand(projectModel),
			record.SetCommand(projectModel),
			record.FieldsCommand(projectModel),
			record.AttachmentsCommand(projectModel),
			record.AttachCommand(projectModel),
			record.URLCommand(projectModel),
		},
	}
}
