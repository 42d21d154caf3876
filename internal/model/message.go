// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and history.
package model

import (
	"strings"
	"time"

	"github.com/suhasdevmane/talk2me-tui/internal/media"
	"github.com/suhasdevmane/talk2me-tui/internal/rasa"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "Talk2MeBot"
	default:
		return string(s)
	}
}

// =============================================================================
// FIXED TEXTS
// =============================================================================

const (
	// WelcomeText seeds a fresh or cleared history.
	WelcomeText = "Welcome to our chat! How can I help you today?"

	// CommunicationErrorText is the synthetic bot reply substituted for any
	// remote failure.
	CommunicationErrorText = "Error communicating with the server."
)

// TimestampLayout is the display format for message timestamps, matching a
// locale time string ("3:04:05 PM").
const TimestampLayout = "3:04:05 PM"

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single chat message. Once appended to a history it is never
// mutated; the sequence is append-only except for a full clear.
//
// The JSON shape is the persisted record shape: sender, text, timestamp,
// plus the optional media fields exactly as the agent sent them.
type Message struct {
	Sender    Sender `json:"sender"`
	Text      string `json:"text,omitempty"`
	Timestamp string `json:"timestamp"`

	// Image is the agent's bare image URL shorthand.
	Image string `json:"image,omitempty"`

	// Attachment is a single resolved media unit.
	Attachment *media.Unit `json:"attachment,omitempty"`

	// Media is the ordered multi-unit sequence for replies carrying several
	// items.
	Media []media.Unit `json:"media,omitempty"`
}

// NewUserMessage creates a user message stamped with the current time.
func NewUserMessage(text string) Message {
	return Message{
		Sender:    SenderUser,
		Text:      text,
		Timestamp: now(),
	}
}

// NewBotMessage creates a bot message stamped with the current time.
func NewBotMessage(text string) Message {
	return Message{
		Sender:    SenderBot,
		Text:      text,
		Timestamp: now(),
	}
}

// NewWelcomeMessage creates the fixed welcome seed message.
func NewWelcomeMessage() Message {
	return NewBotMessage(WelcomeText)
}

// NewErrorMessage creates the fixed communication-failure message.
func NewErrorMessage() Message {
	return NewBotMessage(CommunicationErrorText)
}

// Units returns the message's resolved media units in presentation order:
// the image shorthand first, then the single attachment, then the ordered
// multi-unit sequence.
func (m *Message) Units() []media.Unit {
	var units []media.Unit

	if m.Image != "" {
		if u := media.Resolve(media.Descriptor{Type: "image", URL: m.Image}); u != nil {
			units = append(units, *u)
		}
	}
	if m.Attachment != nil {
		units = append(units, *m.Attachment)
	}
	units = append(units, m.Media...)

	return units
}

// IsEmpty reports whether the message carries neither text nor media.
func (m *Message) IsEmpty() bool {
	return m.Text == "" && len(m.Units()) == 0
}

// =============================================================================
// NORMALIZATION
// =============================================================================

// NormalizeOutgoing validates user input and produces a user message.
// Returns false when the trimmed text is empty; such input is a no-op and
// must not be sent.
func NormalizeOutgoing(text string) (Message, bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false
	}
	return NewUserMessage(text), true
}

// NormalizeIncoming maps the agent's reply fragments to bot messages, one
// per fragment, preserving order. Remote-supplied fields pass through
// unchanged; the timestamp defaults to the current time since the webhook
// does not supply one. Descriptors that lack a type tag are dropped, exactly
// as the view would drop them.
func NormalizeIncoming(fragments []rasa.ReplyFragment) []Message {
	messages := make([]Message, 0, len(fragments))

	for _, f := range fragments {
		msg := Message{
			Sender:    SenderBot,
			Text:      f.Text,
			Timestamp: now(),
			Image:     f.Image,
		}
		if f.Attachment != nil {
			msg.Attachment = media.Resolve(*f.Attachment)
		}
		for _, d := range f.MediaDescriptors() {
			if u := media.Resolve(d); u != nil {
				msg.Media = append(msg.Media, *u)
			}
		}
		messages = append(messages, msg)
	}

	return messages
}

// now returns the current time as a display-formatted string.
func now() string {
	return time.Now().Format(TimestampLayout)
}
