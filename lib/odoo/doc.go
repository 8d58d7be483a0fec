// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

// Package odoo is a client for the external XML-RPC API of an Odoo
// server.
//
// The central type is [Client], which wraps the two RPC endpoints every
// Odoo instance exposes: /xmlrpc/2/common for authentication and
// /xmlrpc/2/object for model method dispatch via execute_kw. The client
// authenticates lazily on first use and caches the resulting user ID
// for the lifetime of the process.
//
// On top of the raw [Client.ExecuteKw] primitive the package provides
// the generic record operations shared by every model the CLI exposes:
// search/read queries returning [Record] maps, chatter message listing
// and posting, tag management, and ir.attachment upload/download.
//
// Posting a customer-visible comment is refused unless the client was
// configured with AllowPublicMessages. This is the one piece of policy
// the package owns; internal notes never consult it. See [Client.PostMessage].
//
// Server faults are surfaced as [*ServerError]. Reads of a missing
// record return [*NotFoundError].
package odoo
