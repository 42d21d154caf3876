// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/suhasdevmane/talk2me-tui/internal/media"
	"github.com/suhasdevmane/talk2me-tui/internal/model"
)

func TestMessageBubbleUser(t *testing.T) {
	msg := model.NewUserMessage("hello there")
	bubble := NewMessageBubble(&msg, testTheme())
	bubble.SetWidth(80)

	out := bubble.View()
	if !strings.Contains(out, "hello there") {
		t.Errorf("user bubble should contain the text, got %q", out)
	}
	if !strings.Contains(out, "You") {
		t.Errorf("user bubble should show the display name, got %q", out)
	}
}

func TestMessageBubbleBot(t *testing.T) {
	msg := model.NewWelcomeMessage()
	bubble := NewMessageBubble(&msg, testTheme())
	bubble.SetWidth(80)

	out := bubble.View()
	if !strings.Contains(out, "Welcome to our chat!") {
		t.Errorf("bot bubble should contain the welcome text, got %q", out)
	}
	if !strings.Contains(out, "Talk2MeBot") {
		t.Errorf("bot bubble should show the display name, got %q", out)
	}
}

func TestMessageBubbleErrorMessage(t *testing.T) {
	msg := model.NewErrorMessage()
	bubble := NewMessageBubble(&msg, testTheme())

	out := bubble.View()
	if !strings.Contains(out, model.CommunicationErrorText) {
		t.Errorf("error bubble should contain the error text, got %q", out)
	}
}

func TestMessageBubbleWithMedia(t *testing.T) {
	msg := model.NewBotMessage("here is your file")
	msg.Attachment = media.Resolve(media.Descriptor{Type: "pdf", URL: "http://x/report.pdf"})

	bubble := NewMessageBubble(&msg, testTheme())
	bubble.SetWidth(80)

	out := bubble.View()
	if !strings.Contains(out, "here is your file") {
		t.Errorf("bubble should contain the text, got %q", out)
	}
	if !strings.Contains(out, "report.pdf") {
		t.Errorf("bubble should render the attachment card, got %q", out)
	}
}

func TestMessageBubbleMediaOnly(t *testing.T) {
	msg := model.NewBotMessage("")
	msg.Image = "http://x/photo.jpg"

	bubble := NewMessageBubble(&msg, testTheme())

	out := bubble.View()
	if !strings.Contains(out, "photo.jpg") {
		t.Errorf("media-only bubble should render the image card, got %q", out)
	}
}

func TestMessageBubbleNilMessage(t *testing.T) {
	bubble := NewMessageBubble(nil, testTheme())
	if out := bubble.View(); out == "" {
		t.Error("nil message should render a safe default")
	}
}

func TestMessageBubbleNarrowWidth(t *testing.T) {
	msg := model.NewUserMessage(strings.Repeat("word ", 40))
	bubble := NewMessageBubble(&msg, testTheme())
	bubble.SetWidth(10)

	if out := bubble.View(); out == "" {
		t.Error("narrow bubble should still render")
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"short line unchanged", "hello", 20, "hello"},
		{"wraps at boundary", "one two three", 7, "one two\nthree"},
		{"zero width passthrough", "anything", 0, "anything"},
		{"preserves newlines", "a\nb", 10, "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wordWrap(tt.text, tt.width); got != tt.want {
				t.Errorf("wordWrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestCellWidthWideRunes(t *testing.T) {
	// UNICODE: CJK characters are two cells wide.
	if w := cellWidth("你好"); w != 4 {
		t.Errorf("cellWidth(你好) = %d, want 4", w)
	}
	if w := cellWidth("abc"); w != 3 {
		t.Errorf("cellWidth(abc) = %d, want 3", w)
	}
}
