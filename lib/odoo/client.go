// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package odoo

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/kolo/xmlrpc"
)

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// URL is the base URL of the Odoo instance (e.g., "https://odoo.example.com").
	URL string
	// Database is the Odoo database name.
	Database string
	// Username is the login of the API user.
	Username string
	// Password is the user's password or API key.
	Password string
	// DefaultUserID is the user to attribute posted messages to when a
	// command does not specify one. Zero means unset.
	DefaultUserID int64
	// AllowPublicMessages permits posting customer-visible comments.
	// Internal notes are always permitted.
	AllowPublicMessages bool
	// Transport is used for all requests. If nil, the default HTTP
	// transport is used.
	Transport http.RoundTripper
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client is an authenticated session against one Odoo server. It is
// not safe for concurrent use; the CLI issues one call at a time.
type Client struct {
	baseURL             string
	database            string
	username            string
	password            string
	defaultUserID       int64
	allowPublicMessages bool
	logger              *slog.Logger

	common *xmlrpc.Client
	object *xmlrpc.Client

	// uid is the authenticated user ID, zero until the first call.
	uid int64
}

// NewClient creates a client for the given server. No network traffic
// happens here; authentication is deferred to the first call.
func NewClient(config ClientConfig) (*Client, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("odoo: URL is required")
	}
	if _, err := url.Parse(config.URL); err != nil {
		return nil, fmt.Errorf("odoo: invalid URL %q: %w", config.URL, err)
	}
	if config.Database == "" {
		return nil, fmt.Errorf("odoo: database is required")
	}
	if config.Username == "" {
		return nil, fmt.Errorf("odoo: username is required")
	}
	if config.Password == "" {
		return nil, fmt.Errorf("odoo: password is required")
	}

	baseURL := strings.TrimRight(config.URL, "/")

	common, err := xmlrpc.NewClient(baseURL+"/xmlrpc/2/common", config.Transport)
	if err != nil {
		return nil, fmt.Errorf("odoo: creating common endpoint client: %w", err)
	}
	object, err := xmlrpc.NewClient(baseURL+"/xmlrpc/2/object", config.Transport)
	if err != nil {
		return nil, fmt.Errorf("odoo: creating object endpoint client: %w", err)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:             baseURL,
		database:            config.Database,
		username:            config.Username,
		password:            config.Password,
		defaultUserID:       config.DefaultUserID,
		allowPublicMessages: config.AllowPublicMessages,
		logger:              logger,
		common:              common,
		object:              object,
	}, nil
}

// BaseURL returns the server URL with any trailing slash stripped.
func (c *Client) BaseURL() string { return c.baseURL }

// Username returns the configured login.
func (c *Client) Username() string { return c.username }

// UID returns the authenticated user ID, performing the authenticate
// call on first use. Odoo returns boolean false instead of an integer
// when the credentials are rejected.
func (c *Client) UID() (int64, error) {
	if c.uid != 0 {
		return c.uid, nil
	}

	var result any
	err := c.common.Call("authenticate", []any{
		c.database, c.username, c.password, map[string]any{},
	}, &result)
	if err != nil {
		return 0, wrapCallError("authenticate", err)
	}

	uid, ok := result.(int64)
	if !ok || uid <= 0 {
		return 0, &ServerError{
			Method:  "authenticate",
			Message: fmt.Sprintf("authentication failed for %q on database %q", c.username, c.database),
		}
	}

	c.uid = uid
	c.logger.Debug("authenticated", "uid", uid, "database", c.database)
	return uid, nil
}

// ExecuteKw invokes method on model via execute_kw. args are the
// positional arguments; kwargs may be nil. The decoded result is
// returned as-is: int64/bool/string scalars, []any arrays, and
// map[string]any structs, per the XML-RPC value mapping.
func (c *Client) ExecuteKw(model, method string, args []any, kwargs map[string]any) (any, error) {
	uid, err := c.UID()
	if err != nil {
		return nil, err
	}

	if args == nil {
		args = []any{}
	}
	if kwargs == nil {
		kwargs = map[string]any{}
	}

	var result any
	call := []any{c.database, uid, c.password, model, method, args, kwargs}
	if err := c.object.Call("execute_kw", call, &result); err != nil {
		return nil, wrapCallError(model+"."+method, err)
	}
	return result, nil
}

// SearchOptions narrows a Search or SearchRead call. The zero value
// applies no narrowing.
type SearchOptions struct {
	// Fields limits which fields are fetched. Nil fetches all fields.
	Fields []string
	// Limit caps the number of records. Zero means no limit.
	Limit int
	// Offset skips the first records of the result.
	Offset int
	// Order is an Odoo order clause such as "create_date desc".
	Order string
}

func (o SearchOptions) kwargs(includeFields bool) map[string]any {
	kwargs := map[string]any{}
	if includeFields && o.Fields != nil {
		kwargs["fields"] = o.Fields
	}
	if o.Limit > 0 {
		kwargs["limit"] = o.Limit
	}
	if o.Offset > 0 {
		kwargs["offset"] = o.Offset
	}
	if o.Order != "" {
		kwargs["order"] = o.Order
	}
	return kwargs
}

// Search returns the IDs of records matching domain.
func (c *Client) Search(model string, domain Domain, options SearchOptions) ([]int64, error) {
	result, err := c.ExecuteKw(model, "search", []any{domain.terms()}, options.kwargs(false))
	if err != nil {
		return nil, err
	}
	return toIDs(result)
}

// Read fetches records by ID. fields may be nil to fetch every field.
func (c *Client) Read(model string, ids []int64, fields []string) ([]Record, error) {
	args := []any{ids}
	if fields != nil {
		args = append(args, fields)
	}
	result, err := c.ExecuteKw(model, "read", args, nil)
	if err != nil {
		return nil, err
	}
	return toRecords(result)
}

// SearchRead combines search and read in a single round trip.
func (c *Client) SearchRead(model string, domain Domain, options SearchOptions) ([]Record, error) {
	result, err := c.ExecuteKw(model, "search_read", []any{domain.terms()}, options.kwargs(true))
	if err != nil {
		return nil, err
	}
	return toRecords(result)
}

// Create inserts a new record and returns its ID.
func (c *Client) Create(model string, values map[string]any) (int64, error) {
	result, err := c.ExecuteKw(model, "create", []any{values}, nil)
	if err != nil {
		return 0, err
	}
	id, ok := result.(int64)
	if !ok {
		return 0, fmt.Errorf("odoo: create on %s returned %T, want record ID", model, result)
	}
	return id, nil
}

// Write updates fields on the given records.
func (c *Client) Write(model string, ids []int64, values map[string]any) error {
	result, err := c.ExecuteKw(model, "write", []any{ids, values}, nil)
	if err != nil {
		return err
	}
	if ok, isBool := result.(bool); isBool && !ok {
		return fmt.Errorf("odoo: write on %s %v returned false", model, ids)
	}
	return nil
}

// Domain is an Odoo search domain: a list of (field, operator, value)
// terms combined with AND semantics. The zero value matches everything.
type Domain []any

// Eq appends an equality term.
func (d Domain) Eq(field string, value any) Domain {
	return append(d, []any{field, "=", value})
}

// Ilike appends a case-insensitive substring term. An empty value is a
// no-op, so optional filter flags can be applied unconditionally.
func (d Domain) Ilike(field, value string) Domain {
	if value == "" {
		return d
	}
	return append(d, []any{field, "ilike", value})
}

// terms returns the wire form of the domain. A nil domain encodes as
// the empty list Odoo expects.
func (d Domain) terms() []any {
	if d == nil {
		return []any{}
	}
	return d
}
