// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"reflect"
	"testing"

	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/cli"
)

func TestListParamsBinding(t *testing.T) {
	var params listParams
	flagSet := cli.FlagsFromParams("list", &params)

	err := flagSet.Parse([]string{
		"--limit", "5",
		"--json",
		"--field", "id", "--field", "name",
		"--url", "https://example.odoo.com",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if params.Limit != 5 {
		t.Errorf("Limit = %d, want 5", params.Limit)
	}
	if !params.OutputJSON {
		t.Error("--json did not reach the embedded JSONOutput")
	}
	if want := []string{"id", "name"}; !reflect.DeepEqual(params.Fields, want) {
		t.Errorf("Fields = %v, want %v", params.Fields, want)
	}
	if params.URL != "https://example.odoo.com" {
		t.Error("--url did not reach the embedded Connection")
	}
}

func TestListParamsDefaults(t *testing.T) {
	var params listParams
	flagSet := cli.FlagsFromParams("list", &params)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Limit != 50 {
		t.Errorf("Limit default = %d, want 50", params.Limit)
	}
	if params.Order != "" {
		t.Errorf("Order default = %q, want empty (the model's order applies)", params.Order)
	}
}

func TestListCommandFilterFlags(t *testing.T) {
	command := ListCommand(Model{
		CommandName: "helpdesk",
		Name:        "helpdesk.ticket",
		Display:     "ticket",
		Filters: []Filter{
			{Flag: "stage", Desc: "filter by stage name", Field: "stage_id.name"},
		},
	})

	flagSet := command.Flags()
	for _, name := range []string{"stage", "limit", "order", "field", "json", "config", "url"} {
		if flagSet.Lookup(name) == nil {
			t.Errorf("list flag set is missing --%s", name)
		}
	}
}

func TestMessageParamsBinding(t *testing.T) {
	var params messageParams
	flagSet := cli.FlagsFromParams("note", &params)

	err := flagSet.Parse([]string{"--plain", "--as-user", "helpdesk-bot", "--database", "production"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !params.Plain {
		t.Error("--plain was not bound")
	}
	if params.AsUser != "helpdesk-bot" {
		t.Errorf("AsUser = %q", params.AsUser)
	}
	if params.Database != "production" {
		t.Error("--database did not reach the embedded Connection")
	}
}

func TestChatterParamsDefaultsToFullHistory(t *testing.T) {
	var params chatterParams
	flagSet := cli.FlagsFromParams("chatter", &params)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Limit != 0 {
		t.Errorf("Limit default = %d, want 0 (full history)", params.Limit)
	}
}

func TestDownloadParamsBinding(t *testing.T) {
	var params downloadAllParams
	flagSet := cli.FlagsFromParams("download-all", &params)

	if err := flagSet.Parse([]string{"-d", "out", "--ext", "pdf"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Dir != "out" {
		t.Errorf("Dir = %q, want the -d shorthand applied", params.Dir)
	}
	if params.Ext != "pdf" {
		t.Errorf("Ext = %q", params.Ext)
	}

	params = downloadAllParams{}
	flagSet = cli.FlagsFromParams("download-all", &params)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Dir != "." {
		t.Errorf(`Dir default = %q, want "."`, params.Dir)
	}
}
