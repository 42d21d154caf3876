// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"github.com/suhasdevmane/talk2me-tui/internal/media"
	"github.com/suhasdevmane/talk2me-tui/internal/model"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter renders the message sequence as a readable transcript.
// Media units become links or fenced blocks so the transcript stands alone.
type MarkdownExporter struct{}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// Export renders the messages as a Markdown transcript.
func (e *MarkdownExporter) Export(messages []model.Message) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("# Chat History\n\n")

	for _, msg := range messages {
		sb.WriteString("**" + msg.Sender.DisplayName() + "**")
		if msg.Timestamp != "" {
			sb.WriteString(" (" + msg.Timestamp + ")")
		}
		sb.WriteString(":\n\n")

		if msg.Text != "" {
			sb.WriteString(msg.Text)
			sb.WriteString("\n\n")
		}

		for _, u := range msg.Units() {
			sb.WriteString(renderUnit(&u))
		}

		sb.WriteString("---\n\n")
	}

	return []byte(sb.String()), nil
}

// renderUnit renders one media unit as Markdown.
func renderUnit(u *media.Unit) string {
	switch u.Strategy() {
	case media.RenderInline:
		return "```\n" + u.Content + "\n```\n\n"
	case media.RenderImage:
		return "![" + u.Filename + "](" + u.URL + ")\n\n"
	case media.RenderUnsupported:
		return "_" + u.PlaceholderText() + "_\n\n"
	default:
		return "[" + u.Filename + "](" + u.URL + ")\n\n"
	}
}

// Filename returns the fixed output filename.
func (e *MarkdownExporter) Filename() string {
	return "chatHistory.md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}
