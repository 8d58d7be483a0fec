// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package odoo

import (
	"errors"
	"strings"
	"testing"
)

func TestPostMessageGate(t *testing.T) {
	fake := newFakeServer(t)
	client := testClient(t, fake) // AllowPublicMessages defaults to false

	_, err := client.PostMessage("helpdesk.ticket", 42, "<p>hi</p>", PublicComment, 7)
	if err == nil {
		t.Fatal("expected public comment to be refused")
	}
	var gateError *PublicPostingError
	if !errors.As(err, &gateError) {
		t.Fatalf("error type %T, want *PublicPostingError", err)
	}
	if !strings.Contains(err.Error(), "internal note") {
		t.Errorf("error does not suggest the alternative: %v", err)
	}

	// The gate must refuse before anything touches the server.
	if fake.authCalls != 0 || len(fake.calls) != 0 {
		t.Errorf("server contacted despite gate: auth=%d object=%d", fake.authCalls, len(fake.calls))
	}
}

func TestPostMessageNote(t *testing.T) {
	fake := newFakeServer(t)
	// res.users read for the author's partner.
	fake.queue(`<array><data><value><struct>
		<member><name>id</name><value><int>7</int></value></member>
		<member><name>partner_id</name><value><array><data>
			<value><int>5</int></value><value><string>Bob Support</string></value>
		</data></array></value></member>
	</struct></value></data></array>`)
	// mail.message.subtype lookup for "Note".
	fake.queue(`<array><data><value><int>9</int></value></data></array>`)
	// mail.message create.
	fake.queue(`<int>123</int>`)
	client := testClient(t, fake)

	id, err := client.PostMessage("helpdesk.ticket", 42, "<p>internal only</p>", InternalNote, 7)
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	if id != 123 {
		t.Errorf("message id = %d, want 123", id)
	}

	create := fake.calls[2]
	for _, want := range []string{"mail.message", "helpdesk.ticket", "internal only", "comment"} {
		if !strings.Contains(create, want) {
			t.Errorf("create call missing %q: %s", want, create)
		}
	}
}

func TestPostMessagePublicAllowed(t *testing.T) {
	fake := newFakeServer(t)
	fake.queue(`<array><data><value><struct>
		<member><name>id</name><value><int>7</int></value></member>
		<member><name>partner_id</name><value><array><data>
			<value><int>5</int></value><value><string>Bob Support</string></value>
		</data></array></value></member>
	</struct></value></data></array>`)
	fake.queue(`<array><data><value><int>11</int></value></data></array>`)
	fake.queue(`<int>124</int>`)
	client := testClient(t, fake, func(config *ClientConfig) {
		config.AllowPublicMessages = true
	})

	id, err := client.PostMessage("helpdesk.ticket", 42, "<p>customer visible</p>", PublicComment, 7)
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	if id != 124 {
		t.Errorf("message id = %d, want 124", id)
	}
}

func TestPostMessageNoUser(t *testing.T) {
	fake := newFakeServer(t)
	client := testClient(t, fake)

	_, err := client.PostMessage("helpdesk.ticket", 42, "<p>hi</p>", InternalNote, 0)
	if err == nil {
		t.Fatal("expected error when no author user is configured")
	}
	if !strings.Contains(err.Error(), "ODOO_DEFAULT_USER_ID") {
		t.Errorf("error does not name the missing setting: %v", err)
	}
}

func TestListMessages(t *testing.T) {
	fake := newFakeServer(t)
	fake.queue(`<array><data>
		<value><struct>
			<member><name>id</name><value><int>200</int></value></member>
			<member><name>date</name><value><string>2026-02-03 10:00:00</string></value></member>
			<member><name>author_id</name><value><array><data>
				<value><int>5</int></value><value><string>Bob Support</string></value>
			</data></array></value></member>
			<member><name>body</name><value><string>&lt;p&gt;done&lt;/p&gt;</string></value></member>
			<member><name>message_type</name><value><string>comment</string></value></member>
		</struct></value>
		<value><struct>
			<member><name>id</name><value><int>199</int></value></member>
			<member><name>date</name><value><string>2026-02-03 09:00:00</string></value></member>
			<member><name>author_id</name><value><boolean>0</boolean></value></member>
			<member><name>email_from</name><value><string>customer@example.com</string></value></member>
			<member><name>body</name><value><string>&lt;p&gt;help&lt;/p&gt;</string></value></member>
			<member><name>message_type</name><value><string>email</string></value></member>
		</struct></value>
	</data></array>`)
	client := testClient(t, fake)

	messages, err := client.ListMessages("helpdesk.ticket", 42, 20)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if messages[0].Author != "Bob Support" {
		t.Errorf("author = %q", messages[0].Author)
	}
	if messages[1].Author != "customer@example.com" {
		t.Errorf("fallback author = %q, want email_from", messages[1].Author)
	}
	if messages[0].Body != "<p>done</p>" {
		t.Errorf("body = %q", messages[0].Body)
	}
}

func TestListMessagesZeroLimitFetchesAll(t *testing.T) {
	fake := newFakeServer(t)
	fake.queue(`<array><data></data></array>`)
	client := testClient(t, fake)

	if _, err := client.ListMessages("helpdesk.ticket", 42, 0); err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if strings.Contains(fake.calls[0], "limit") {
		t.Error("limit 0 should omit the limit kwarg so the full history is returned")
	}
}
