// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Assignment is one parsed field assignment from the set command, such
// as "priority=2" or "planned_hours+=1.5".
type Assignment struct {
	// Field is the Odoo field name.
	Field string

	// Op is "=", "+=", "-=", "*=" or "/=".
	Op string

	// Value is the parsed right-hand side: int64, float64, bool,
	// string, or any JSON value when the "json:" prefix is used.
	Value any
}

// assignmentOps is ordered so that compound operators are found before
// the bare "=" they contain.
var assignmentOps = []string{"+=", "-=", "*=", "/=", "="}

// ParseAssignment splits a "field=value" argument into its parts and
// parses the value.
//
// Values are typed by inspection: integers, floats, and the literals
// true/false parse to their Go types; single- or double-quoted strings
// keep their content verbatim (so "42" stays a string); a "json:"
// prefix parses the rest as JSON for relational commands like
// [[6,0,[1,2]]]; anything else is a plain string.
func ParseAssignment(arg string) (Assignment, error) {
	for _, op := range assignmentOps {
		index := strings.Index(arg, op)
		if index <= 0 {
			continue
		}
		field := strings.TrimSpace(arg[:index])
		raw := strings.TrimSpace(arg[index+len(op):])

		value, err := parseValue(raw)
		if err != nil {
			return Assignment{}, fmt.Errorf("%s: %w", field, err)
		}

		if op != "=" {
			if _, isNumber := toFloat(value); !isNumber {
				return Assignment{}, fmt.Errorf("%s: operator %s needs a numeric value, got %q", field, op, raw)
			}
		}

		return Assignment{Field: field, Op: op, Value: value}, nil
	}
	return Assignment{}, fmt.Errorf("%q is not a field assignment (expected field=value)", arg)
}

// parseValue types a raw assignment value.
func parseValue(raw string) (any, error) {
	if rest, ok := strings.CutPrefix(raw, "json:"); ok {
		var value any
		if err := json.Unmarshal([]byte(rest), &value); err != nil {
			return nil, fmt.Errorf("invalid JSON value: %w", err)
		}
		return value, nil
	}

	if len(raw) >= 2 {
		if (raw[0] == '"' && raw[len(raw)-1] == '"') || (raw[0] == '\'' && raw[len(raw)-1] == '\'') {
			return raw[1 : len(raw)-1], nil
		}
	}

	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	if integer, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return integer, nil
	}
	if float, err := strconv.ParseFloat(raw, 64); err == nil {
		return float, nil
	}

	return raw, nil
}

// ApplyOperator computes the new value for a compound assignment from
// the record's current value. Integer arithmetic stays integral except
// for division, which always produces a float.
func ApplyOperator(current any, op string, operand any) (any, error) {
	left, ok := toFloat(current)
	if !ok {
		return nil, fmt.Errorf("current value %v is not numeric", current)
	}
	right, ok := toFloat(operand)
	if !ok {
		return nil, fmt.Errorf("operand %v is not numeric", operand)
	}

	var result float64
	switch op {
	case "+=":
		result = left + right
	case "-=":
		result = left - right
	case "*=":
		result = left * right
	case "/=":
		if right == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return left / right, nil
	default:
		return nil, fmt.Errorf("unknown operator %q", op)
	}

	if isInt(current) && isInt(operand) {
		return int64(result), nil
	}
	return result, nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func isInt(value any) bool {
	_, ok := value.(int64)
	return ok
}
