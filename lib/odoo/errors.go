// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package odoo

import (
	"errors"
	"fmt"
	"net/rpc"
	"strconv"
	"strings"

	"github.com/kolo/xmlrpc"
)

// ServerError is a fault returned by the Odoo server. The message is
// the server's faultString, which for Odoo includes the exception
// class name (AccessError, AccessDenied, UserError, ...).
type ServerError struct {
	// Method is the model.method (or endpoint method) that failed.
	Method string
	// Code is the XML-RPC fault code.
	Code int
	// Message is the server's fault string.
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("odoo: %s: %s", e.Method, firstLine(e.Message))
}

// IsAccessDenied reports whether the fault is an authentication or
// permission failure. Odoo raises AccessDenied for bad credentials and
// AccessError for missing model/record permissions.
func (e *ServerError) IsAccessDenied() bool {
	return strings.Contains(e.Message, "AccessDenied") ||
		strings.Contains(e.Message, "AccessError") ||
		strings.Contains(e.Message, "authentication failed")
}

// NotFoundError reports a record that does not exist on the server.
type NotFoundError struct {
	Model string
	ID    int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("odoo: %s record %d not found", e.Model, e.ID)
}

// IsNotFound reports whether err (or anything it wraps) is a
// NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// wrapCallError converts transport and fault errors from the XML-RPC
// layer into this package's error types. Server faults become
// *ServerError; network errors pass through wrapped with the method
// name. Faults arrive either as xmlrpc.FaultError or, because the
// library rides on net/rpc which only carries string errors, as
// rpc.ServerError text of the form "Fault(code): message".
func wrapCallError(method string, err error) error {
	var fault xmlrpc.FaultError
	if errors.As(err, &fault) {
		return &ServerError{Method: method, Code: fault.Code, Message: fault.String}
	}

	var remote rpc.ServerError
	if errors.As(err, &remote) {
		code, message := parseFaultText(string(remote))
		return &ServerError{Method: method, Code: code, Message: message}
	}

	return fmt.Errorf("odoo: %s: %w", method, err)
}

// parseFaultText splits "Fault(2): something broke" into its code and
// message. Text in any other shape is kept whole with code zero.
func parseFaultText(text string) (int, string) {
	rest, ok := strings.CutPrefix(text, "Fault(")
	if !ok {
		return 0, text
	}
	codeText, message, ok := strings.Cut(rest, "): ")
	if !ok {
		return 0, text
	}
	code, err := strconv.Atoi(codeText)
	if err != nil {
		return 0, text
	}
	return code, message
}

// firstLine trims an Odoo fault string to its first non-empty line.
// Odoo fault strings often carry a full Python traceback; the leading
// line is the useful part for a CLI user.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if index := strings.IndexByte(s, '\n'); index >= 0 {
		return strings.TrimSpace(s[:index])
	}
	return s
}
