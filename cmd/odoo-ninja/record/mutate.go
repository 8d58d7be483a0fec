// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/cli"
	"github.com/odoo-ninja/odoo-ninja/lib/htmltext"
	"github.com/odoo-ninja/odoo-ninja/lib/odoo"
)

// messageParams are the shared flags of note and comment.
type messageParams struct {
	cli.Connection
	Plain  bool   `flag:"plain" desc:"treat the body as plain text instead of Markdown"`
	AsUser string `flag:"as-user" desc:"post as this user, by res.users ID or login (default: ODOO_DEFAULT_USER_ID)"`
}

// postMessage runs the shared body of note and comment.
func postMessage(model Model, params *messageParams, args []string, visibility odoo.Visibility) error {
	if len(args) < 2 {
		return cli.Validation("usage: %s <id> <body>", model.CommandName)
	}
	id, err := parseID(model, args[0])
	if err != nil {
		return err
	}
	body := strings.Join(args[1:], " ")

	var html string
	if params.Plain {
		html = htmltext.WrapPlainText(body)
	} else {
		html, err = htmltext.MarkdownToHTML(body)
		if err != nil {
			return cli.Validation("%v", err)
		}
	}

	client, err := params.Connect()
	if err != nil {
		return err
	}

	var asUserID int64
	if params.AsUser != "" {
		asUserID, err = strconv.ParseInt(params.AsUser, 10, 64)
		if err != nil {
			// Not a number, treat it as a login.
			asUserID, err = client.UserIDByLogin(params.AsUser)
			if err != nil {
				return commandError(err)
			}
		}
	}

	messageID, err := client.PostMessage(model.Name, id, html, visibility, asUserID)
	if err != nil {
		return commandError(err)
	}

	fmt.Printf("posted message %d on %s %d\n", messageID, model.Display, id)
	return nil
}

// NoteCommand posts an internal note. Notes are only visible to
// internal users, never to the customer, so they need no special
// permission.
func NoteCommand(model Model) *cli.Command {
	var params messageParams

	return &cli.Command{
		Name:    "note",
		Summary: fmt.Sprintf("Post an internal note on a %s", model.Display),
		Usage:   fmt.Sprintf("odoo-ninja %s note <id> <body> [flags]", model.CommandName),
		Examples: []cli.Example{
			{
				Description: "Post a Markdown note",
				Command:     fmt.Sprintf(`odoo-ninja %s note 42 "restarted the **service**, watching it now"`, model.CommandName),
			},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("note", &params) },
		Run: func(args []string) error {
			return postMessage(model, &params, args, odoo.InternalNote)
		},
	}
}

// CommentCommand posts a public comment. Public comments are delivered
// to the customer, so the client refuses them unless
// ODOO_ALLOW_HARMFUL_OPERATIONS is enabled.
func CommentCommand(model Model) *cli.Command {
	var params messageParams

	return &cli.Command{
		Name:    "comment",
		Summary: fmt.Sprintf("Post a public, customer-visible comment on a %s", model.Display),
		Description: fmt.Sprintf(`Post a comment that the customer can see. Refused unless
ODOO_ALLOW_HARMFUL_OPERATIONS=true is set in the configuration; use
'%s note' for internal discussion.`, model.CommandName),
		Usage: fmt.Sprintf("odoo-ninja %s comment <id> <body> [flags]", model.CommandName),
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("comment", &params) },
		Run: func(args []string) error {
			return postMessage(model, &params, args, odoo.PublicComment)
		},
	}
}

// TagsCommand lists the tags available for this record family.
func TagsCommand(model Model) *cli.Command {
	var params outputParams

	return &cli.Command{
		Name:    "tags",
		Summary: fmt.Sprintf("List the tags available for %ss", model.Display),
		Usage:   fmt.Sprintf("odoo-ninja %s tags [flags]", model.CommandName),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("tags", &params)
		},
		Run: func(args []string) error {
			client, err := params.Connect()
			if err != nil {
				return err
			}

			tags, err := client.ListTags(model.TagModel)
			if err != nil {
				return commandError(err)
			}

			if done, err := params.EmitJSON(tags); done {
				return err
			}
			return writeTags(tags)
		},
	}
}

// TagCommand adds an existing tag to a record, by tag ID or by name.
func TagCommand(model Model) *cli.Command {
	var params connectionParams

	return &cli.Command{
		Name:    "tag",
		Summary: fmt.Sprintf("Add a tag to a %s", model.Display),
		Usage:   fmt.Sprintf("odoo-ninja %s tag <id> <tag-name-or-id>", model.CommandName),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("tag", &params)
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return cli.Validation("usage: %s tag <id> <tag-name-or-id>", model.CommandName)
			}
			id, err := parseID(model, args[0])
			if err != nil {
				return err
			}
			tagName := args[1]

			client, err := params.Connect()
			if err != nil {
				return err
			}

			tags, err := client.ListTags(model.TagModel)
			if err != nil {
				return commandError(err)
			}

			var tagID int64
			for _, tag := range tags {
				if strings.EqualFold(tag.Name, tagName) {
					tagID = tag.ID
					tagName = tag.Name
					break
				}
			}
			if tagID == 0 {
				// A numeric argument may be a tag ID instead of a name.
				if numeric, err := strconv.ParseInt(tagName, 10, 64); err == nil {
					for _, tag := range tags {
						if tag.ID == numeric {
							tagID = tag.ID
							tagName = tag.Name
							break
						}
					}
				}
			}
			if tagID == 0 {
				return cli.NotFound("no tag named %q; run '%s tags' to list them", tagName, model.CommandName)
			}

			if err := client.AddTag(model.Name, id, tagID); err != nil {
				return commandError(err)
			}

			fmt.Printf("tagged %s %d with %q\n", model.Display, id, tagName)
			return nil
		},
	}
}

// SetCommand writes field values. Assignments support compound
// operators (+=, -=, *=, /=) that read the current value first.
func SetCommand(model Model) *cli.Command {
	var params connectionParams

	return &cli.Command{
		Name:    "set",
		Summary: fmt.Sprintf("Set fields on a %s", model.Display),
		Description: `Write one or more field values. Values are typed by inspection:
integers, floats, and true/false parse to their natural types, quoted
strings stay strings, and a json: prefix passes raw JSON through for
relational fields. Compound operators (+=, -=, *=, /=) apply
arithmetic to the current value.`,
		Usage: fmt.Sprintf("odoo-ninja %s set <id> <field=value>... [flags]", model.CommandName),
		Examples: []cli.Example{
			{
				Description: "Raise priority and retitle",
				Command:     fmt.Sprintf(`odoo-ninja %s set 42 priority=3 name="Printer on fire"`, model.CommandName),
			},
			{
				Description: "Add an hour to the estimate",
				Command:     fmt.Sprintf("odoo-ninja %s set 42 planned_hours+=1", model.CommandName),
			},
			{
				Description: "Replace the tag list with raw JSON",
				Command:     fmt.Sprintf(`odoo-ninja %s set 42 'tag_ids=json:[[6,0,[1,5]]]'`, model.CommandName),
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("set", &params)
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return cli.Validation("usage: %s set <id> <field=value>...", model.CommandName)
			}
			id, err := parseID(model, args[0])
			if err != nil {
				return err
			}

			assignments := make([]Assignment, 0, len(args)-1)
			var compoundFields []string
			for _, arg := range args[1:] {
				assignment, err := ParseAssignment(arg)
				if err != nil {
					return cli.Validation("%v", err)
				}
				if assignment.Op != "=" {
					compoundFields = append(compoundFields, assignment.Field)
				}
				assignments = append(assignments, assignment)
			}

			client, err := params.Connect()
			if err != nil {
				return err
			}

			// Compound operators need the current values.
			var current odoo.Record
			if len(compoundFields) > 0 {
				current, err = client.GetRecord(model.Name, id, compoundFields)
				if err != nil {
					return commandError(err)
				}
			}

			values := make(map[string]any, len(assignments))
			for _, assignment := range assignments {
				if assignment.Op == "=" {
					values[assignment.Field] = assignment.Value
					continue
				}
				updated, err := ApplyOperator(current[assignment.Field], assignment.Op, assignment.Value)
				if err != nil {
					return cli.Validation("%s: %v", assignment.Field, err)
				}
				values[assignment.Field] = updated
			}

			if err := client.SetFields(model.Name, id, values); err != nil {
				return commandError(err)
			}

			fmt.Printf("updated %s %d (%d field(s))\n", model.Display, id, len(values))
			return nil
		},
	}
}
