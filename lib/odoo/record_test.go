// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package odoo

import (
	"reflect"
	"testing"
)

func TestRecordAccessors(t *testing.T) {
	record := Record{
		"id":         int64(42),
		"name":       "Printer on fire",
		"priority":   "2",
		"active":     true,
		"closed":     false,
		"count":      float64(3),
		"partner_id": []any{int64(3), "ACME Corp"},
		"user_id":    false, // Odoo encodes null relations as boolean false
		"tag_ids":    []any{int64(1), int64(5)},
	}

	if record.ID() != 42 {
		t.Errorf("ID = %d", record.ID())
	}
	if record.Str("name") != "Printer on fire" {
		t.Errorf("Str(name) = %q", record.Str("name"))
	}
	if record.Str("missing") != "" {
		t.Errorf("Str(missing) = %q", record.Str("missing"))
	}
	if record.Int("count") != 3 {
		t.Errorf("Int(count) = %d", record.Int("count"))
	}
	if !record.Bool("active") || record.Bool("closed") {
		t.Error("Bool accessors disagree")
	}

	partner, ok := record.Many2One("partner_id")
	if !ok || partner.ID != 3 || partner.Name != "ACME Corp" {
		t.Errorf("Many2One(partner_id) = %+v, %v", partner, ok)
	}
	if partner.String() != "ACME Corp" {
		t.Errorf("Relation.String = %q", partner.String())
	}
	if _, ok := record.Many2One("user_id"); ok {
		t.Error("Many2One returned a relation for boolean false")
	}
	if _, ok := record.Many2One("missing"); ok {
		t.Error("Many2One returned a relation for a missing field")
	}

	if ids := record.IDList("tag_ids"); !reflect.DeepEqual(ids, []int64{1, 5}) {
		t.Errorf("IDList = %v", ids)
	}
	if ids := record.IDList("user_id"); len(ids) != 0 {
		t.Errorf("IDList on false = %v", ids)
	}
}

func TestRecordFields(t *testing.T) {
	record := Record{"name": "x", "id": int64(1), "active": true}
	want := []string{"active", "id", "name"}
	if got := record.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields = %v, want %v", got, want)
	}
}

func TestToRecords(t *testing.T) {
	result := []any{
		map[string]any{"id": int64(1)},
		map[string]any{"id": int64(2)},
	}
	records, err := toRecords(result)
	if err != nil {
		t.Fatalf("toRecords: %v", err)
	}
	if len(records) != 2 || records[1].ID() != 2 {
		t.Errorf("records = %v", records)
	}

	if _, err := toRecords("nonsense"); err == nil {
		t.Error("expected error for non-array result")
	}
	if _, err := toRecords([]any{"nonsense"}); err == nil {
		t.Error("expected error for non-struct element")
	}
}

func TestToIDs(t *testing.T) {
	ids, err := toIDs([]any{int64(3), int64(9)})
	if err != nil {
		t.Fatalf("toIDs: %v", err)
	}
	if !reflect.DeepEqual(ids, []int64{3, 9}) {
		t.Errorf("ids = %v", ids)
	}
	if _, err := toIDs(map[string]any{}); err == nil {
		t.Error("expected error for non-array result")
	}
}

func TestDomain(t *testing.T) {
	domain := Domain{}.Eq("res_id", int64(42)).Ilike("name", "fire").Ilike("stage", "")
	terms := domain.terms()
	// The empty ilike value must not add a term.
	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2", len(terms))
	}

	var nilDomain Domain
	if got := nilDomain.terms(); got == nil || len(got) != 0 {
		t.Errorf("nil domain terms = %#v, want empty non-nil slice", got)
	}
}
