// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/odoo-ninja/odoo-ninja/lib/htmltext"
	"github.com/odoo-ninja/odoo-ninja/lib/odoo"
)

// writeRecordTable writes a compact table with one column per listed
// field.
func writeRecordTable(fields []string, records []odoo.Record) error {
	writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)

	headers := make([]string, len(fields))
	for i, field := range fields {
		header := strings.TrimSuffix(strings.TrimSuffix(field, "_ids"), "_id")
		headers[i] = strings.ToUpper(header)
	}
	fmt.Fprintln(writer, strings.Join(headers, "\t"))

	for _, record := range records {
		cells := make([]string, len(fields))
		for i, field := range fields {
			cells[i] = truncate(formatCell(record[field]), 40)
		}
		fmt.Fprintln(writer, strings.Join(cells, "\t"))
	}
	return writer.Flush()
}

// formatCell renders one field value for table or detail output.
// Odoo's wire format needs three special cases: many2one values arrive
// as [id, "name"] pairs, x2many values as ID lists, and null as the
// boolean false.
func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		if !v {
			return ""
		}
		return "true"
	case string:
		return strings.ReplaceAll(v, "\n", " ")
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case []any:
		if len(v) == 2 {
			if _, idOK := v[0].(int64); idOK {
				if name, nameOK := v[1].(string); nameOK {
					return name
				}
			}
		}
		parts := make([]string, len(v))
		for i, element := range v {
			parts[i] = formatCell(element)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeDetail writes every field of a record as an aligned key/value
// listing, fields sorted by name. The description field holds HTML and
// is printed after the listing as an indented block, converted to
// Markdown unless rawHTML is set.
func writeDetail(record odoo.Record, rawHTML bool) error {
	description, hasDescription := record["description"].(string)

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, field := range record.Fields() {
		if field == "description" && hasDescription {
			continue
		}
		fmt.Fprintf(writer, "%s:\t%s\n", field, formatCell(record[field]))
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	if hasDescription && description != "" {
		body := description
		if !rawHTML {
			if converted, err := htmltext.HTMLToMarkdown(description); err == nil {
				body = converted
			}
		}
		fmt.Println("description:")
		for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
			fmt.Printf("  %s\n", line)
		}
	}
	return nil
}

// writeFieldDefinitions writes the fields command's table, sorted by
// field name.
func writeFieldDefinitions(definitions map[string]odoo.FieldDefinition) error {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)

	writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "NAME\tTYPE\tLABEL\tFLAGS\n")
	for _, name := range names {
		definition := definitions[name]
		var flags []string
		if definition.Required {
			flags = append(flags, "required")
		}
		if definition.Readonly {
			flags = append(flags, "readonly")
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			name, definition.Type, definition.Label, strings.Join(flags, ","))
	}
	return writer.Flush()
}

// writeFieldDefinition writes one field's full definition, including
// the help text the table view omits.
func writeFieldDefinition(name string, definition odoo.FieldDefinition) error {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "name:\t%s\n", name)
	fmt.Fprintf(writer, "type:\t%s\n", definition.Type)
	fmt.Fprintf(writer, "label:\t%s\n", definition.Label)
	fmt.Fprintf(writer, "required:\t%t\n", definition.Required)
	fmt.Fprintf(writer, "readonly:\t%t\n", definition.Readonly)
	if definition.Help != "" {
		fmt.Fprintf(writer, "help:\t%s\n", strings.ReplaceAll(definition.Help, "\n", " "))
	}
	return writer.Flush()
}

// writeTags writes the tags command's table.
func writeTags(tags []odoo.Tag) error {
	writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "ID\tNAME\tCOLOR\n")
	for _, tag := range tags {
		fmt.Fprintf(writer, "%d\t%s\t%d\n", tag.ID, tag.Name, tag.Color)
	}
	return writer.Flush()
}

// writeAttachments writes the attachments command's table.
func writeAttachments(attachments []odoo.Attachment) error {
	writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "ID\tNAME\tSIZE\tTYPE\tCREATED\n")
	for _, attachment := range attachments {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n",
			attachment.ID,
			attachment.Name,
			humanize.Bytes(uint64(attachment.FileSize)),
			attachment.Mimetype,
			attachment.CreateDate,
		)
	}
	return writer.Flush()
}

// writeMessages writes the chatter history. Bodies arrive as HTML and
// are rendered to Markdown unless rawHTML is set; a body that fails to
// convert is shown raw rather than dropped.
func writeMessages(messages []odoo.Message, rawHTML bool) error {
	for i, message := range messages {
		if i > 0 {
			fmt.Println()
		}

		label := message.Subtype
		if label == "" {
			label = message.Type
		}
		fmt.Printf("[%s] %s (%s)\n", message.Date, message.Author, label)

		body := message.Body
		if !rawHTML {
			if converted, err := htmltext.HTMLToMarkdown(message.Body); err == nil {
				body = converted
			}
		}
		for _, line := range strings.Split(body, "\n") {
			fmt.Printf("  %s\n", line)
		}
	}
	return nil
}

// truncate shortens a string to maxLength runes, appending "..." if
// truncated. Cell values are user text, so slicing runes rather than
// bytes keeps multi-byte characters intact.
func truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}
