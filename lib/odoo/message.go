// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package odoo

import (
	"fmt"
)

// Visibility selects who can see a posted message.
type Visibility int

const (
	// InternalNote is staff-only chatter, invisible to the customer.
	InternalNote Visibility = iota
	// PublicComment is visible to the external customer. Posting one
	// requires AllowPublicMessages on the client configuration.
	PublicComment
)

// subtypeName returns the mail.message.subtype display name Odoo uses
// for each visibility.
func (v Visibility) subtypeName() string {
	if v == InternalNote {
		return "Note"
	}
	return "Discussions"
}

// PublicPostingError is returned when a customer-visible comment is
// attempted without AllowPublicMessages. It is a local refusal: no
// remote call is made.
type PublicPostingError struct{}

func (e *PublicPostingError) Error() string {
	return "posting public comments is disabled (they are visible to customers); " +
		"set ODOO_ALLOW_HARMFUL_OPERATIONS=true to enable, or post an internal note instead"
}

// Message is one chatter entry on a record.
type Message struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Author    string `json:"author"`
	EmailFrom string `json:"email_from,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Type      string `json:"type"`
	Subtype   string `json:"subtype,omitempty"`
	Body      string `json:"body"`
}

// ListMessages returns a record's chatter, newest first. limit of zero
// returns the full history.
func (c *Client) ListMessages(model string, recordID int64, limit int) ([]Message, error) {
	domain := Domain{}.Eq("model", model).Eq("res_id", recordID)
	records, err := c.SearchRead("mail.message", domain, SearchOptions{
		Fields: []string{"id", "date", "author_id", "body", "subject", "message_type", "subtype_id", "email_from"},
		Limit:  limit,
		Order:  "date desc",
	})
	if err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(records))
	for _, record := range records {
		message := Message{
			ID:        record.ID(),
			Date:      record.Str("date"),
			EmailFrom: record.Str("email_from"),
			Subject:   record.Str("subject"),
			Type:      record.Str("message_type"),
			Body:      record.Str("body"),
		}
		if author, ok := record.Many2One("author_id"); ok {
			message.Author = author.Name
		} else {
			message.Author = message.EmailFrom
		}
		if subtype, ok := record.Many2One("subtype_id"); ok {
			message.Subtype = subtype.Name
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// PostMessage posts an HTML message body to a record's chatter as
// asUserID (or the configured default user when asUserID is zero).
//
// The message row is created directly in mail.message rather than via
// the model's message_post method, which does not marshal cleanly over
// XML-RPC. mail.message.author_id references res.partner, so the
// posting user is resolved to their partner first.
//
// A PublicComment is refused with *PublicPostingError unless the client
// allows public messages. The check happens before any remote call.
func (c *Client) PostMessage(model string, recordID int64, htmlBody string, visibility Visibility, asUserID int64) (int64, error) {
	if visibility == PublicComment && !c.allowPublicMessages {
		return 0, &PublicPostingError{}
	}

	userID := asUserID
	if userID == 0 {
		userID = c.defaultUserID
	}
	if userID == 0 {
		return 0, fmt.Errorf("odoo: no user to post as: pass a user ID or configure ODOO_DEFAULT_USER_ID")
	}

	partnerID, err := c.partnerForUser(userID)
	if err != nil {
		return 0, err
	}

	subtypeID, err := c.messageSubtypeID(visibility.subtypeName())
	if err != nil {
		return 0, err
	}

	values := map[string]any{
		"model":        model,
		"res_id":       recordID,
		"body":         htmlBody,
		"message_type": "comment",
		"author_id":    partnerID,
	}
	if subtypeID != 0 {
		values["subtype_id"] = subtypeID
	}

	messageID, err := c.Create("mail.message", values)
	if err != nil {
		return 0, err
	}
	c.logger.Debug("posted message",
		"model", model, "record", recordID, "message", messageID,
		"internal", visibility == InternalNote)
	return messageID, nil
}

// partnerForUser resolves a res.users ID to its res.partner ID.
func (c *Client) partnerForUser(userID int64) (int64, error) {
	user, err := c.GetRecord("res.users", userID, []string{"partner_id"})
	if err != nil {
		return 0, err
	}
	partner, ok := user.Many2One("partner_id")
	if !ok {
		return 0, fmt.Errorf("odoo: user %d has no associated partner", userID)
	}
	return partner.ID, nil
}

// messageSubtypeID finds the subtype with the given display name.
// Returns zero (post without a subtype) when the server has none.
func (c *Client) messageSubtypeID(name string) (int64, error) {
	ids, err := c.Search("mail.message.subtype", Domain{}.Eq("name", name), SearchOptions{Limit: 1})
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return ids[0], nil
}

// UserIDByLogin looks up a res.users ID by login name.
func (c *Client) UserIDByLogin(login string) (int64, error) {
	ids, err := c.Search("res.users", Domain{}.Eq("login", login), SearchOptions{Limit: 1})
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("odoo: user %q not found", login)
	}
	return ids[0], nil
}
