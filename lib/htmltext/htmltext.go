// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

// Package htmltext converts between the HTML that Odoo stores in
// chatter message bodies and the Markdown or plain text that a
// terminal user reads and writes.
package htmltext

import (
	"fmt"
	"html"
	"strings"
	"sync"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// markdownInstance is initialized once and reused. The configuration
// never changes and goldmark.Markdown is safe to share.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				goldmarkhtml.WithHardWraps(),
			),
		)
	})
	return markdownInstance
}

// converterInstance mirrors markdownInstance for the reverse direction.
var (
	converterInstance *md.Converter
	converterOnce     sync.Once
)

func getConverter() *md.Converter {
	converterOnce.Do(func() {
		converterInstance = md.NewConverter("", true, nil)
	})
	return converterInstance
}

// MarkdownToHTML renders Markdown to the HTML Odoo expects in message
// bodies. Single newlines become hard breaks, matching how chat-style
// text is written.
func MarkdownToHTML(markdown string) (string, error) {
	var buffer strings.Builder
	if err := getMarkdown().Convert([]byte(markdown), &buffer); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimSpace(buffer.String()), nil
}

// WrapPlainText escapes text and wraps it in a paragraph, for callers
// that want their input preserved verbatim rather than parsed.
func WrapPlainText(text string) string {
	escaped := html.EscapeString(strings.TrimSpace(text))
	escaped = strings.ReplaceAll(escaped, "\n", "<br/>")
	return "<p>" + escaped + "</p>"
}

// HTMLToMarkdown converts an Odoo message body to Markdown for
// terminal display.
func HTMLToMarkdown(body string) (string, error) {
	markdown, err := getConverter().ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("converting message body: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
