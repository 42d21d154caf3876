// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/suhasdevmane/talk2me-tui/internal/model"
	"github.com/suhasdevmane/talk2me-tui/internal/ui/components"
	"github.com/suhasdevmane/talk2me-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if m.minimized {
		return m.theme.Badge.Render("💬 Talk2Me") + "\n" +
			m.theme.ShortcutDesc.Render("C-b: restore • C-c: quit")
	}

	sections := []string{
		m.renderHeader(),
		m.viewport.View(),
	}

	if m.state == StateAwaiting {
		sections = append(sections, m.renderThinking())
	}

	sections = append(sections,
		m.renderInput(),
		m.renderStatusBar(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("Talk2Me")
	user := m.theme.HeaderSubtitle.Render(m.identity.Username)
	return m.theme.Header.Width(maxInt(m.width, 20)).Render(title + "  " + user)
}

func (m Model) renderThinking() string {
	return m.spinner.View() + " " + m.theme.ThinkingText.Render("Talk2MeBot is typing...")
}

func (m Model) renderInput() string {
	if m.state == StateAwaiting {
		return m.theme.InputContainer.Render(
			m.theme.InputDisabled.Render("Waiting for reply..."))
	}
	return m.theme.InputContainer.Render(m.input.View())
}

func (m Model) renderStatusBar() string {
	// No resize seen yet; assume a standard terminal rather than clipping.
	width := m.width
	if width <= 0 {
		width = 80
	}

	if m.statusMsg != "" {
		msg := util.TruncateRunes(m.statusMsg, maxInt(width-4, 16))
		return m.theme.StatusBar.Width(maxInt(width, 20)).Render(msg)
	}

	var parts []string
	for _, b := range m.keyMap.ShortHelp() {
		h := b.Help()
		parts = append(parts,
			m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}
	return m.theme.StatusBar.Width(maxInt(width, 20)).Render(strings.Join(parts, "  "))
}

// =============================================================================
// VIEWPORT CONTENT
// =============================================================================

// refreshViewport rebuilds the scrollback from the conversation and keeps
// the view pinned to the newest message.
func (m *Model) refreshViewport() {
	if m.showHelp {
		m.viewport.SetContent(m.renderHelp())
		m.viewport.GotoTop()
		return
	}

	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}

	var blocks []string
	for _, msg := range m.conversation.Messages() {
		rendered := msg
		if msg.Sender == model.SenderBot && msg.Text != "" && m.renderer != nil {
			if out, err := m.renderer.Render(msg.Text); err == nil {
				rendered.Text = strings.TrimSpace(out)
			}
		}
		bubble := components.NewMessageBubble(&rendered, m.theme)
		bubble.SetWidth(width)
		blocks = append(blocks, bubble.View(), "")
	}

	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	m.viewport.GotoBottom()
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.HeaderTitle.Render("Commands"))
	b.WriteString("\n\n")
	for _, cmd := range commandTable() {
		b.WriteString(m.theme.ShortcutKey.Render(cmd.name))
		b.WriteString("  ")
		b.WriteString(m.theme.ShortcutDesc.Render(cmd.description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.HeaderTitle.Render("Shortcuts"))
	b.WriteString("\n\n")
	for _, group := range m.keyMap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(m.theme.ShortcutKey.Render(h.Key))
			b.WriteString("  ")
			b.WriteString(m.theme.ShortcutDesc.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.ShortcutDesc.Render("/help again to return to the conversation"))
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
