// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package odoo

import (
	"fmt"
	"sort"
)

// Record is a single Odoo record as returned by read/search_read: a
// map from field name to decoded XML-RPC value. Odoo's value
// conventions differ from plain XML-RPC in two ways the accessors
// absorb: null scalars arrive as boolean false, and many2one fields
// arrive as a two-element [id, name] array.
type Record map[string]any

// Relation is a many2one reference: the related record's ID and its
// display name.
type Relation struct {
	ID   int64
	Name string
}

func (r Relation) String() string { return r.Name }

// ID returns the record's own ID, or zero if absent.
func (r Record) ID() int64 {
	id, _ := r["id"].(int64)
	return id
}

// Str returns a string field. Missing fields and false-nulls return "".
func (r Record) Str(field string) string {
	value, _ := r[field].(string)
	return value
}

// Int returns an integer field. Missing fields and false-nulls return 0.
func (r Record) Int(field string) int64 {
	switch value := r[field].(type) {
	case int64:
		return value
	case float64:
		return int64(value)
	default:
		return 0
	}
}

// Bool returns a boolean field. A false-null is indistinguishable from
// an actual false, which is how Odoo itself treats the distinction.
func (r Record) Bool(field string) bool {
	value, _ := r[field].(bool)
	return value
}

// Many2One returns a relation field. ok is false when the field is
// absent, null, or not a [id, name] pair.
func (r Record) Many2One(field string) (Relation, bool) {
	pair, isPair := r[field].([]any)
	if !isPair || len(pair) != 2 {
		return Relation{}, false
	}
	id, idOK := pair[0].(int64)
	name, nameOK := pair[1].(string)
	if !idOK || !nameOK {
		return Relation{}, false
	}
	return Relation{ID: id, Name: name}, true
}

// IDList returns a relation-list field (many2many or one2many) as IDs.
// Missing and null fields return nil.
func (r Record) IDList(field string) []int64 {
	values, isList := r[field].([]any)
	if !isList {
		return nil
	}
	ids := make([]int64, 0, len(values))
	for _, value := range values {
		if id, ok := value.(int64); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Fields returns the record's field names in sorted order.
func (r Record) Fields() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// toRecords converts a decoded execute_kw result into records.
func toRecords(result any) ([]Record, error) {
	items, ok := result.([]any)
	if !ok {
		return nil, fmt.Errorf("odoo: expected record list, got %T", result)
	}
	records := make([]Record, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("odoo: expected record struct, got %T", item)
		}
		records = append(records, Record(fields))
	}
	return records, nil
}

// toIDs converts a decoded search result into IDs.
func toIDs(result any) ([]int64, error) {
	items, ok := result.([]any)
	if !ok {
		return nil, fmt.Errorf("odoo: expected ID list, got %T", result)
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		id, ok := item.(int64)
		if !ok {
			return nil, fmt.Errorf("odoo: expected integer ID, got %T", item)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
