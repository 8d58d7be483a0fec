// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package odoo

import (
	"encoding/base64"
	"fmt"
)

// GetRecord reads a single record by ID. fields may be nil to fetch
// every field. Returns *NotFoundError when the server has no such
// record.
func (c *Client) GetRecord(model string, id int64, fields []string) (Record, error) {
	records, err := c.Read(model, []int64{id}, fields)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Model: model, ID: id}
	}
	return records[0], nil
}

// SetFields updates field values on a single record.
func (c *Client) SetFields(model string, id int64, values map[string]any) error {
	return c.Write(model, []int64{id}, values)
}

// FieldDefinition describes one field from fields_get.
type FieldDefinition struct {
	Type     string
	Label    string
	Required bool
	Readonly bool
	Help     string
}

// FieldsGet returns the model's field definitions keyed by field name.
func (c *Client) FieldsGet(model string) (map[string]FieldDefinition, error) {
	result, err := c.ExecuteKw(model, "fields_get", nil, nil)
	if err != nil {
		return nil, err
	}
	raw, ok := result.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("odoo: fields_get on %s returned %T, want struct", model, result)
	}

	definitions := make(map[string]FieldDefinition, len(raw))
	for name, value := range raw {
		attributes, ok := value.(map[string]any)
		if !ok {
			continue
		}
		definition := Record(attributes)
		definitions[name] = FieldDefinition{
			Type:     definition.Str("type"),
			Label:    definition.Str("string"),
			Required: definition.Bool("required"),
			Readonly: definition.Bool("readonly"),
			Help:     definition.Str("help"),
		}
	}
	return definitions, nil
}

// Tag is an entry in a model's tag table (helpdesk.tag, project.tags).
type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color int64  `json:"color"`
}

// ListTags returns every tag in tagModel, sorted by name.
func (c *Client) ListTags(tagModel string) ([]Tag, error) {
	records, err := c.SearchRead(tagModel, nil, SearchOptions{
		Fields: []string{"id", "name", "color"},
		Order:  "name",
	})
	if err != nil {
		return nil, err
	}

	tags := make([]Tag, 0, len(records))
	for _, record := range records {
		tags = append(tags, Tag{
			ID:    record.ID(),
			Name:  record.Str("name"),
			Color: record.Int("color"),
		})
	}
	return tags, nil
}

// AddTag adds a tag to a record's tag_ids, leaving existing tags in
// place. Adding a tag the record already has is a no-op.
func (c *Client) AddTag(model string, recordID, tagID int64) error {
	record, err := c.GetRecord(model, recordID, []string{"tag_ids"})
	if err != nil {
		return err
	}

	current := record.IDList("tag_ids")
	for _, id := range current {
		if id == tagID {
			return nil
		}
	}

	updated := append(current, tagID)
	return c.Write(model, []int64{recordID}, map[string]any{
		"tag_ids": []any{[]any{6, 0, updated}},
	})
}

// Attachment is an ir.attachment row without its payload.
type Attachment struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	FileSize   int64  `json:"file_size"`
	Mimetype   string `json:"mimetype"`
	CreateDate string `json:"create_date"`
}

// ListAttachments returns the attachments bound to a record.
func (c *Client) ListAttachments(model string, recordID int64) ([]Attachment, error) {
	domain := Domain{}.Eq("res_model", model).Eq("res_id", recordID)
	records, err := c.SearchRead("ir.attachment", domain, SearchOptions{
		Fields: []string{"id", "name", "file_size", "mimetype", "create_date"},
	})
	if err != nil {
		return nil, err
	}

	attachments := make([]Attachment, 0, len(records))
	for _, record := range records {
		attachments = append(attachments, Attachment{
			ID:         record.ID(),
			Name:       record.Str("name"),
			FileSize:   record.Int("file_size"),
			Mimetype:   record.Str("mimetype"),
			CreateDate: record.Str("create_date"),
		})
	}
	return attachments, nil
}

// DownloadAttachment fetches an attachment's name and decoded payload.
func (c *Client) DownloadAttachment(attachmentID int64) (string, []byte, error) {
	records, err := c.Read("ir.attachment", []int64{attachmentID}, []string{"name", "datas"})
	if err != nil {
		return "", nil, err
	}
	if len(records) == 0 {
		return "", nil, &NotFoundError{Model: "ir.attachment", ID: attachmentID}
	}

	record := records[0]
	name := record.Str("name")
	if name == "" {
		name = fmt.Sprintf("attachment_%d", attachmentID)
	}

	encoded := record.Str("datas")
	if encoded == "" {
		return "", nil, fmt.Errorf("odoo: attachment %d has no data", attachmentID)
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("odoo: attachment %d: decoding payload: %w", attachmentID, err)
	}
	return name, data, nil
}

// CreateAttachment uploads data as an attachment on a record and
// returns the new attachment's ID.
func (c *Client) CreateAttachment(model string, recordID int64, name string, data []byte) (int64, error) {
	return c.Create("ir.attachment", map[string]any{
		"name":      name,
		"datas":     base64.StdEncoding.EncodeToString(data),
		"res_model": model,
		"res_id":    recordID,
	})
}

// RecordURL returns the web form URL for a record.
func (c *Client) RecordURL(model string, recordID int64) string {
	return fmt.Sprintf("%s/web#id=%d&model=%s&view_type=form", c.baseURL, recordID, model)
}
