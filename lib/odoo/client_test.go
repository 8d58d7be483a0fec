// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package odoo

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// fakeServer is an httptest server speaking just enough XML-RPC for the
// client under test. Authentication on /xmlrpc/2/common always succeeds
// with authUID. Calls to /xmlrpc/2/object pop canned responses from the
// queue in order; running out of queued responses fails the test.
type fakeServer struct {
	*httptest.Server
	authUID   string // raw XML value for the authenticate response
	responses []string
	calls     []string // request bodies seen on the object endpoint
	authCalls int
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	fake := &fakeServer{authUID: "<int>7</int>"}
	fake.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, err := io.ReadAll(request.Body)
		if err != nil {
			t.Fatalf("reading request body: %v", err)
		}

		writer.Header().Set("Content-Type", "text/xml")
		switch request.URL.Path {
		case "/xmlrpc/2/common":
			fake.authCalls++
			fmt.Fprintf(writer, responseXML, fake.authUID)
		case "/xmlrpc/2/object":
			if len(fake.responses) == 0 {
				t.Errorf("unexpected object call: %s", body)
				writer.WriteHeader(http.StatusInternalServerError)
				return
			}
			fake.calls = append(fake.calls, string(body))
			next := fake.responses[0]
			fake.responses = fake.responses[1:]
			io.WriteString(writer, next)
		default:
			t.Errorf("unexpected path: %s", request.URL.Path)
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(fake.Close)
	return fake
}

func (f *fakeServer) queue(valueXML string) {
	f.responses = append(f.responses, fmt.Sprintf(responseXML, valueXML))
}

func (f *fakeServer) queueFault(code int, message string) {
	f.responses = append(f.responses, fmt.Sprintf(faultXML, code, message))
}

const responseXML = `<?xml version="1.0"?>
<methodResponse><params><param><value>%s</value></param></params></methodResponse>`

const faultXML = `<?xml version="1.0"?>
<methodResponse><fault><value><struct>
<member><name>faultCode</name><value><int>%d</int></value></member>
<member><name>faultString</name><value><string>%s</string></value></member>
</struct></value></fault></methodResponse>`

func testClient(t *testing.T, fake *fakeServer, mutate ...func(*ClientConfig)) *Client {
	t.Helper()
	config := ClientConfig{
		URL:      fake.URL,
		Database: "production",
		Username: "api@example.com",
		Password: "secret",
	}
	for _, m := range mutate {
		m(&config)
	}
	client, err := NewClient(config)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("missing URL", func(t *testing.T) {
		_, err := NewClient(ClientConfig{Database: "db", Username: "u", Password: "p"})
		if err == nil {
			t.Fatal("expected error for missing URL")
		}
	})

	t.Run("missing database", func(t *testing.T) {
		_, err := NewClient(ClientConfig{URL: "http://localhost", Username: "u", Password: "p"})
		if err == nil {
			t.Fatal("expected error for missing database")
		}
	})

	t.Run("trailing slash stripped", func(t *testing.T) {
		client, err := NewClient(ClientConfig{URL: "http://localhost:8069/", Database: "db", Username: "u", Password: "p"})
		if err != nil {
			t.Fatalf("NewClient: %v", err)
		}
		if client.BaseURL() != "http://localhost:8069" {
			t.Errorf("BaseURL = %q", client.BaseURL())
		}
	})
}

func TestUID(t *testing.T) {
	t.Run("success and caching", func(t *testing.T) {
		fake := newFakeServer(t)
		client := testClient(t, fake)

		uid, err := client.UID()
		if err != nil {
			t.Fatalf("UID: %v", err)
		}
		if uid != 7 {
			t.Errorf("uid = %d, want 7", uid)
		}

		// Second call must come from the cache.
		if _, err := client.UID(); err != nil {
			t.Fatalf("second UID: %v", err)
		}
		if fake.authCalls != 1 {
			t.Errorf("authenticate called %d times, want 1", fake.authCalls)
		}
	})

	t.Run("rejected credentials return boolean false", func(t *testing.T) {
		fake := newFakeServer(t)
		fake.authUID = "<boolean>0</boolean>"
		client := testClient(t, fake)

		_, err := client.UID()
		if err == nil {
			t.Fatal("expected error for rejected credentials")
		}
		var serverError *ServerError
		if !errors.As(err, &serverError) {
			t.Fatalf("error type %T, want *ServerError", err)
		}
		if !serverError.IsAccessDenied() {
			t.Errorf("IsAccessDenied = false for %v", err)
		}
	})
}

func TestSearchRead(t *testing.T) {
	fake := newFakeServer(t)
	fake.queue(`<array><data>
		<value><struct>
			<member><name>id</name><value><int>42</int></value></member>
			<member><name>name</name><value><string>Printer on fire</string></value></member>
			<member><name>partner_id</name><value><array><data>
				<value><int>3</int></value><value><string>ACME Corp</string></value>
			</data></array></value></member>
			<member><name>user_id</name><value><boolean>0</boolean></value></member>
			<member><name>tag_ids</name><value><array><data>
				<value><int>1</int></value><value><int>5</int></value>
			</data></array></value></member>
		</struct></value>
	</data></array>`)
	client := testClient(t, fake)

	records, err := client.SearchRead("helpdesk.ticket", Domain{}.Ilike("stage_id.name", "new"), SearchOptions{
		Fields: []string{"id", "name", "partner_id", "user_id", "tag_ids"},
		Limit:  50,
		Order:  "create_date desc",
	})
	if err != nil {
		t.Fatalf("SearchRead: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	record := records[0]
	if record.ID() != 42 {
		t.Errorf("ID = %d, want 42", record.ID())
	}
	if record.Str("name") != "Printer on fire" {
		t.Errorf("name = %q", record.Str("name"))
	}
	partner, ok := record.Many2One("partner_id")
	if !ok || partner.ID != 3 || partner.Name != "ACME Corp" {
		t.Errorf("partner = %+v, ok=%v", partner, ok)
	}
	if _, ok := record.Many2One("user_id"); ok {
		t.Error("null many2one decoded as present")
	}
	ids := record.IDList("tag_ids")
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 5 {
		t.Errorf("tag_ids = %v", ids)
	}

	if !strings.Contains(fake.calls[0], "search_read") {
		t.Errorf("request did not call search_read: %s", fake.calls[0])
	}
	if !strings.Contains(fake.calls[0], "ilike") {
		t.Errorf("request did not carry the domain: %s", fake.calls[0])
	}
}

func TestServerFault(t *testing.T) {
	fake := newFakeServer(t)
	fake.queueFault(2, "Traceback (most recent call last): odoo.exceptions.AccessError: no access")
	client := testClient(t, fake)

	_, err := client.Read("helpdesk.ticket", []int64{1}, nil)
	if err == nil {
		t.Fatal("expected fault error")
	}
	var serverError *ServerError
	if !errors.As(err, &serverError) {
		t.Fatalf("error type %T, want *ServerError", err)
	}
	if !serverError.IsAccessDenied() {
		t.Errorf("IsAccessDenied = false for %v", err)
	}
}

func TestGetRecordNotFound(t *testing.T) {
	fake := newFakeServer(t)
	fake.queue(`<array><data></data></array>`)
	client := testClient(t, fake)

	_, err := client.GetRecord("helpdesk.ticket", 999, nil)
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestCreateAndWrite(t *testing.T) {
	fake := newFakeServer(t)
	fake.queue(`<int>101</int>`)
	fake.queue(`<boolean>1</boolean>`)
	client := testClient(t, fake)

	id, err := client.Create("helpdesk.ticket", map[string]any{"name": "New ticket"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 101 {
		t.Errorf("id = %d, want 101", id)
	}

	if err := client.Write("helpdesk.ticket", []int64{101}, map[string]any{"priority": "2"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
}

func TestAddTag(t *testing.T) {
	t.Run("appends missing tag", func(t *testing.T) {
		fake := newFakeServer(t)
		fake.queue(`<array><data><value><struct>
			<member><name>id</name><value><int>42</int></value></member>
			<member><name>tag_ids</name><value><array><data>
				<value><int>1</int></value>
			</data></array></value></member>
		</struct></value></data></array>`)
		fake.queue(`<boolean>1</boolean>`)
		client := testClient(t, fake)

		if err := client.AddTag("helpdesk.ticket", 42, 5); err != nil {
			t.Fatalf("AddTag: %v", err)
		}
		if len(fake.calls) != 2 {
			t.Fatalf("got %d object calls, want read+write", len(fake.calls))
		}
	})

	t.Run("existing tag is a no-op", func(t *testing.T) {
		fake := newFakeServer(t)
		fake.queue(`<array><data><value><struct>
			<member><name>id</name><value><int>42</int></value></member>
			<member><name>tag_ids</name><value><array><data>
				<value><int>5</int></value>
			</data></array></value></member>
		</struct></value></data></array>`)
		client := testClient(t, fake)

		if err := client.AddTag("helpdesk.ticket", 42, 5); err != nil {
			t.Fatalf("AddTag: %v", err)
		}
		if len(fake.calls) != 1 {
			t.Fatalf("got %d object calls, want read only", len(fake.calls))
		}
	})
}

func TestParseFaultText(t *testing.T) {
	tests := []struct {
		text    string
		code    int
		message string
	}{
		{"Fault(2): something broke", 2, "something broke"},
		{"Fault(1): odoo.exceptions.UserError: bad value", 1, "odoo.exceptions.UserError: bad value"},
		{"connection refused", 0, "connection refused"},
		{"Fault(x): garbled", 0, "Fault(x): garbled"},
	}
	for _, test := range tests {
		code, message := parseFaultText(test.text)
		if code != test.code || message != test.message {
			t.Errorf("parseFaultText(%q) = (%d, %q), want (%d, %q)",
				test.text, code, message, test.code, test.message)
		}
	}
}
