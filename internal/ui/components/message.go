// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/suhasdevmane/talk2me-tui/internal/model"
	"github.com/suhasdevmane/talk2me-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders a single chat message: header line (sender name and
// timestamp), text bubble, then any media cards below the bubble.
type MessageBubble struct {
	Message       *model.Message
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewMessageBubble creates a bubble for a message.
func NewMessageBubble(msg *model.Message, theme *styles.Theme) *MessageBubble {
	if msg == nil {
		empty := model.Message{Sender: model.SenderBot}
		return &MessageBubble{Message: &empty, Width: 80, theme: theme}
	}
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	if b.Message.Sender == model.SenderUser {
		return b.renderUserBubble()
	}
	return b.renderBotBubble()
}

// ==========================================================================
// USER BUBBLE - Blue tones, right-aligned
// ==========================================================================

func (b *MessageBubble) renderUserBubble() string {
	content := b.Message.Text
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubble := b.theme.UserBubble.Width(contentWidth).Render(wrapped)
	header := b.renderHeader()

	// Right-align with a left margin.
	leftMargin := b.Width - contentWidth - 4
	if leftMargin < 0 {
		leftMargin = 0
	}
	marginStyle := lipgloss.NewStyle().MarginLeft(leftMargin)

	return lipgloss.JoinVertical(lipgloss.Right,
		marginStyle.Render(header),
		marginStyle.Render(bubble),
	)
}

// ==========================================================================
// BOT BUBBLE - Indigo tones, left-aligned, media cards below
// ==========================================================================

func (b *MessageBubble) renderBotBubble() string {
	parts := []string{b.renderHeader()}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}

	if b.Message.Text != "" {
		wrapped := wordWrap(b.Message.Text, maxContentWidth)
		contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

		style := b.theme.BotBubble
		if b.Message.Text == model.CommunicationErrorText {
			style = style.BorderForeground(styles.Rose).Foreground(styles.Rose)
		}
		parts = append(parts, style.Width(contentWidth).Render(wrapped))
	}

	if units := b.Message.Units(); len(units) > 0 {
		cardWidth := minInt(b.Width-8, 60)
		parts = append(parts, RenderUnits(units, b.theme, cardWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (b *MessageBubble) renderHeader() string {
	name := b.theme.SenderName.Render(b.Message.Sender.DisplayName())
	if !b.ShowTimestamp || b.Message.Timestamp == "" {
		return name
	}
	ts := b.theme.Timestamp.Render(b.Message.Timestamp)
	return name + " " + ts
}
