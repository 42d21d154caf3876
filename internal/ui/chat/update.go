// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/suhasdevmane/talk2me-tui/internal/export"
	"github.com/suhasdevmane/talk2me-tui/internal/media"
	"github.com/suhasdevmane/talk2me-tui/internal/model"
)

// statusDuration is how long a temporary status message stays visible.
const statusDuration = 3 * time.Second

// =============================================================================
// INIT
// =============================================================================

// Init implements tea.Model. It kicks off the history load for the session
// user alongside the input cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loadHistoryCmd(m.loadGen),
	)
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case spinner.TickMsg:
		if m.state != StateAwaiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case historyLoadedMsg:
		return m.handleHistoryLoaded(msg)

	case repliesMsg:
		return m.handleReplies(msg)

	case sendFailedMsg:
		return m.handleSendFailed(msg)

	case persistedMsg:
		if msg.err != nil {
			return m.setStatus("Save failed: " + msg.err.Error())
		}
		return m, nil

	case mediaOpenedMsg:
		if msg.err != nil {
			return m.setStatus("Open failed: " + msg.err.Error())
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			return m.setStatus("Export failed: " + msg.err.Error())
		}
		return m.setStatus("Exported to " + msg.path)

	case clearedMsg:
		return m.handleCleared(msg)

	case statusExpiredMsg:
		m.statusMsg = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	// Header, status bar, and input each take a line plus borders.
	contentHeight := msg.Height - 6
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.viewport.Width = msg.Width
	m.viewport.Height = contentHeight
	m.input.Width = msg.Width - 6

	m.refreshViewport()
	return m
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A minimized view only reacts to restore and quit.
	if m.minimized {
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Minimize):
			m.minimized = false
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Minimize):
		m.minimized = true
		return m, nil

	case key.Matches(msg, m.keyMap.Fullscreen):
		m.fullscreen = !m.fullscreen
		if m.fullscreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen

	case key.Matches(msg, m.keyMap.Export):
		return m, m.exportCmd(export.NewJSONExporter())

	case key.Matches(msg, m.keyMap.Clear):
		return m.clearHistory()

	case key.Matches(msg, m.keyMap.Open):
		return m.openLastMedia()

	case key.Matches(msg, m.keyMap.Up), key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keyMap.Submit):
		return m.submitInput()
	}

	// Input is disabled while a send is in flight.
	if m.state == StateAwaiting {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// INPUT SUBMISSION
// =============================================================================

// submitInput validates and sends the typed message. Empty input is a
// no-op; a send already in flight blocks further sends.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	if m.state == StateAwaiting {
		return m, nil
	}

	content := m.input.Value()
	if strings.HasPrefix(strings.TrimSpace(content), "/") {
		return m.handleCommand(strings.TrimSpace(content))
	}

	msg, ok := model.NormalizeOutgoing(content)
	if !ok {
		return m, nil
	}

	m.input.Reset()
	m.conversation.Append(msg)
	m.state = StateAwaiting
	m.refreshViewport()

	return m, tea.Batch(
		m.persistCmd(),
		m.sendCmd(msg.Text),
		m.spinner.Tick,
	)
}

func (m Model) handleReplies(msg repliesMsg) (tea.Model, tea.Cmd) {
	m.conversation.Append(msg.messages...)
	m.state = StateReady
	m.input.Focus()
	m.refreshViewport()
	return m, m.persistCmd()
}

func (m Model) handleSendFailed(msg sendFailedMsg) (tea.Model, tea.Cmd) {
	// Exactly one synthetic reply regardless of failure mode; the user's
	// message stays in the history.
	m.conversation.Append(model.NewErrorMessage())
	m.state = StateReady
	m.input.Focus()
	m.refreshViewport()

	updated, statusCmd := m.setStatus("Send failed: " + msg.err.Error())
	return updated, tea.Batch(m.persistCmd(), statusCmd)
}

// =============================================================================
// HISTORY
// =============================================================================

func (m Model) handleHistoryLoaded(msg historyLoadedMsg) (tea.Model, tea.Cmd) {
	// Stale load from before a clear; drop it.
	if msg.gen != m.loadGen {
		return m, nil
	}
	if msg.err != nil {
		return m.setStatus("History load failed: " + msg.err.Error())
	}

	m.conversation = model.NewConversationWith(msg.messages)
	m.refreshViewport()
	return m, nil
}

func (m Model) clearHistory() (tea.Model, tea.Cmd) {
	// Invalidate any in-flight load before wiping.
	m.loadGen++
	return m, m.clearCmd()
}

func (m Model) handleCleared(msg clearedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.setStatus("Clear failed: " + msg.err.Error())
	}
	m.conversation = model.NewConversationWith(msg.seed)
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// MEDIA
// =============================================================================

// openLastMedia opens the most recent downloadable media unit externally.
func (m Model) openLastMedia() (tea.Model, tea.Cmd) {
	messages := m.conversation.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		units := messages[i].Units()
		for j := len(units) - 1; j >= 0; j-- {
			if units[j].Downloadable() {
				url := units[j].URL
				return m, func() tea.Msg {
					return mediaOpenedMsg{err: media.OpenExternal(url)}
				}
			}
		}
	}
	return m.setStatus("No media to open")
}

// =============================================================================
// COMMANDS (tea.Cmd constructors)
// =============================================================================

func (m Model) loadHistoryCmd(gen int) tea.Cmd {
	store, username := m.store, m.identity.Username
	return func() tea.Msg {
		messages, err := store.LoadHistory(context.Background(), username)
		return historyLoadedMsg{gen: gen, messages: messages, err: err}
	}
}

func (m Model) sendCmd(text string) tea.Cmd {
	client, sender := m.client, m.identity.SessionID
	return func() tea.Msg {
		fragments, err := client.Send(context.Background(), sender, text)
		if err != nil {
			return sendFailedMsg{err: err}
		}
		return repliesMsg{messages: model.NormalizeIncoming(fragments)}
	}
}

func (m Model) persistCmd() tea.Cmd {
	store, username := m.store, m.identity.Username
	snapshot := m.conversation.Messages()
	return func() tea.Msg {
		err := store.SaveHistory(context.Background(), username, snapshot)
		return persistedMsg{err: err}
	}
}

func (m Model) clearCmd() tea.Cmd {
	store, username := m.store, m.identity.Username
	return func() tea.Msg {
		if err := store.ClearHistory(context.Background(), username); err != nil {
			return clearedMsg{err: err}
		}
		// A cleared history reads back as the welcome seed.
		seed, err := store.LoadHistory(context.Background(), username)
		return clearedMsg{seed: seed, err: err}
	}
}

func (m Model) exportCmd(exporter export.Exporter) tea.Cmd {
	snapshot := m.conversation.Messages()
	opts := &export.Options{OutputDir: m.exportDir}
	return func() tea.Msg {
		path, err := export.ExportToFile(snapshot, exporter, opts)
		return exportDoneMsg{path: path, err: err}
	}
}

// setStatus shows a temporary status message that expires on its own.
func (m Model) setStatus(text string) (Model, tea.Cmd) {
	m.statusMsg = text
	return m, tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}
