// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/cli"
	"github.com/odoo-ninja/odoo-ninja/lib/odoo"
)

// --- list ---

// listParams are the static list flags. The per-model filter flags are
// added on top of the bound set, since they are data, not struct fields.
type listParams struct {
	cli.Connection
	cli.JSONOutput
	Limit  int      `flag:"limit" default:"50" desc:"maximum number of records"`
	Order  string   `flag:"order" desc:"sort order (Odoo ORDER BY syntax; default: the model's)"`
	Fields []string `flag:"field" desc:"column to show instead of the defaults (repeatable)"`
}

// ListCommand lists records with the model's filter flags.
func ListCommand(model Model) *cli.Command {
	var params listParams
	filterValues := make([]string, len(model.Filters))

	return &cli.Command{
		Name:    "list",
		Summary: fmt.Sprintf("List %ss with optional filters", model.Display),
		Description: fmt.Sprintf(`Query %ss with optional filters. All filter flags match
case-insensitive substrings and combine with AND semantics: only
records matching every specified filter are returned.`, model.Display),
		Usage: fmt.Sprintf("odoo-ninja %s list [flags]", model.CommandName),
		Flags: func() *pflag.FlagSet {
			flagSet := cli.FlagsFromParams("list", &params)
			for i, filter := range model.Filters {
				flagSet.StringVar(&filterValues[i], filter.Flag, "", filter.Desc)
			}
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return cli.Validation("list takes no arguments, got %v", args)
			}

			client, err := params.Connect()
			if err != nil {
				return err
			}

			domain := odoo.Domain{}
			for i, filter := range model.Filters {
				domain = domain.Ilike(filter.Field, filterValues[i])
			}

			order := params.Order
			if order == "" {
				order = model.ListOrder
			}
			listFields := model.ListFields
			if len(params.Fields) > 0 {
				listFields = params.Fields
			}

			records, err := client.SearchRead(model.Name, domain, odoo.SearchOptions{
				Fields: listFields,
				Limit:  params.Limit,
				Order:  order,
			})
			if err != nil {
				return commandError(err)
			}

			if done, err := params.EmitJSON(records); done {
				return err
			}

			if len(records) == 0 {
				fmt.Printf("no %ss found\n", model.Display)
				return nil
			}

			if err := writeRecordTable(listFields, records); err != nil {
				return err
			}
			fmt.Printf("\n%d %s(s)\n", len(records), model.Display)
			return nil
		},
	}
}

// --- show ---

type showParams struct {
	cli.Connection
	cli.JSONOutput
	Fields  []string `flag:"field" desc:"only show this field (repeatable)"`
	RawHTML bool     `flag:"html" desc:"print the description as raw HTML"`
}

// ShowCommand displays every stored field of one record, or only the
// fields named with --field.
func ShowCommand(model Model) *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: fmt.Sprintf("Show all fields of a %s", model.Display),
		Usage:   fmt.Sprintf("odoo-ninja %s show <id> [flags]", model.CommandName),
		Examples: []cli.Example{
			{
				Description: fmt.Sprintf("Show %s 42", model.Display),
				Command:     fmt.Sprintf("odoo-ninja %s show 42", model.CommandName),
			},
			{
				Description: "Show as JSON",
				Command:     fmt.Sprintf("odoo-ninja %s show 42 --json", model.CommandName),
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: %s show <id>", model.CommandName)
			}
			id, err := parseID(model, args[0])
			if err != nil {
				return err
			}

			client, err := params.Connect()
			if err != nil {
				return err
			}

			record, err := client.GetRecord(model.Name, id, params.Fields)
			if err != nil {
				return commandError(err)
			}

			if done, err := params.EmitJSON(record); done {
				return err
			}
			return writeDetail(record, params.RawHTML)
		},
	}
}

// --- fields ---

type fieldsParams struct {
	cli.Connection
	cli.JSONOutput
	Name string `flag:"name" desc:"show only this field's definition"`
}

// FieldsCommand lists the model's field definitions, for discovering
// what show and set can work with. With a record ID it dumps that
// record's stored values instead.
func FieldsCommand(model Model) *cli.Command {
	var params fieldsParams

	return &cli.Command{
		Name:    "fields",
		Summary: fmt.Sprintf("List the fields of the %s model", model.Display),
		Description: fmt.Sprintf(`Without arguments, list the field definitions of the %s
model. With a record ID, dump that record's stored values. With --name,
show one field's full definition including its help text.`, model.Display),
		Usage: fmt.Sprintf("odoo-ninja %s fields [id] [flags]", model.CommandName),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("fields", &params)
		},
		Run: func(args []string) error {
			if len(args) > 1 {
				return cli.Validation("usage: %s fields [id]", model.CommandName)
			}

			client, err := params.Connect()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				id, err := parseID(model, args[0])
				if err != nil {
					return err
				}
				record, err := client.GetRecord(model.Name, id, nil)
				if err != nil {
					return commandError(err)
				}
				if done, err := params.EmitJSON(record); done {
					return err
				}
				return writeDetail(record, true)
			}

			definitions, err := client.FieldsGet(model.Name)
			if err != nil {
				return commandError(err)
			}

			if params.Name != "" {
				definition, ok := definitions[params.Name]
				if !ok {
					return cli.NotFound("%s has no field %q", model.Name, params.Name)
				}
				if done, err := params.EmitJSON(definition); done {
					return err
				}
				return writeFieldDefinition(params.Name, definition)
			}

			if done, err := params.EmitJSON(definitions); done {
				return err
			}
			return writeFieldDefinitions(definitions)
		},
	}
}

// --- url ---

// URLCommand prints the web form URL for a record, for pasting into a
// browser or a chat message.
func URLCommand(model Model) *cli.Command {
	var params connectionParams

	return &cli.Command{
		Name:    "url",
		Summary: fmt.Sprintf("Print the web URL of a %s", model.Display),
		Usage:   fmt.Sprintf("odoo-ninja %s url <id>", model.CommandName),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("url", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: %s url <id>", model.CommandName)
			}
			id, err := parseID(model, args[0])
			if err != nil {
				return err
			}

			client, err := params.Connect()
			if err != nil {
				return err
			}

			fmt.Println(client.RecordURL(model.Name, id))
			return nil
		},
	}
}
