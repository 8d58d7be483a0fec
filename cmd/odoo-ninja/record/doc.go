// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

// Package record implements the subcommands shared by every record
// family (helpdesk tickets, project tasks, projects). Each family
// describes itself with a [Model] and assembles its command group from
// the exported constructors (ListCommand, ShowCommand, ...), so the
// list/show/comment/attachment machinery exists exactly once.
package record
