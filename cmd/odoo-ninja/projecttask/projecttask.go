// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

// Package projecttask is the command group for project tasks.
package projecttask

import (
	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/cli"
	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/record"
)

var taskModel = record.Model{
	CommandName: "project-task",
	Name:        "project.task",
	Display:     "task",
	TagModel:    "project.tags",
	ListFields: []string{
		"id", "name", "project_id", "stage_id", "user_ids",
		"priority", "tag_ids", "create_date",
	},
	ListOrder: "create_date desc",
	Filters: []record.Filter{
		{Flag: "project", Desc: "filter by project name", Field: "project_id.name"},
		{Flag: "stage", Desc: "filter by stage name", Field: "stage_id.name"},
		{Flag: "assigned-to", Desc: "filter by assignee name", Field: "user_ids.name"},
	},
}

// Command returns the project-task command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "project-task",
		Summary: "Work with project tasks",
		Subcommands: []*cli.Command{
			record.ListCommand(taskModel),
			record.ShowCommand(taskModel),
			record.ChatterCommand(taskModel),
			record.NoteCommand(taskModel),
			record.CommentCommand(taskModel),
			record.TagsCommand(taskModel),
			record.TagCommand(taskModel),
			record.SetCommand(taskModel),
			record.FieldsCommand(taskModel),
			record.AttachmentsCommand(taskModel),
			record.DownloadCommand(taskModel),
			record.DownloadAllCommand(taskModel),
			record.AttachCommand(taskModel),
			record.URLCommand(taskModel),
		},
	}
}
