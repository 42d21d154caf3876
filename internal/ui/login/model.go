// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login provides the credential entry view for the talk2me TUI.
package login

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/suhasdevmane/talk2me-tui/internal/auth"
	"github.com/suhasdevmane/talk2me-tui/internal/ui/styles"
)

// =============================================================================
// STATES
// =============================================================================

// state tracks which part of the login flow is active.
type state int

const (
	// stateCredentials: username/password entry.
	stateCredentials state = iota
	// stateConsent: unknown user, asking whether to register.
	stateConsent
	// stateDone: identity established, program about to exit.
	stateDone
)

// focus indexes the two credential fields.
const (
	focusUsername = 0
	focusPassword = 1
)

// =============================================================================
// MESSAGES
// =============================================================================

// authResultMsg carries the outcome of a login or register attempt.
type authResultMsg struct {
	identity *auth.Identity
	err      error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the login screen. When the program
// finishes, Identity() returns the established session or nil if the user
// quit without authenticating.
type Model struct {
	gate  *auth.Gate
	theme *styles.Theme

	state      state
	focusIdx   int
	username   textinput.Model
	password   textinput.Model
	errText    string
	submitting bool

	identity *auth.Identity
	width    int
	height   int
}

// New creates the login model.
func New(gate *auth.Gate, theme *styles.Theme) Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return Model{
		gate:     gate,
		theme:    theme,
		state:    stateCredentials,
		username: username,
		password: password,
	}
}

// Identity returns the established session identity, or nil if the user
// quit without logging in.
func (m Model) Identity() *auth.Identity {
	return m.identity
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		return m, nil

	case authResultMsg:
		return m.handleAuthResult(msg)

	case tea.KeyMsg:
		switch m.state {
		case stateCredentials:
			return m.updateCredentials(msg)
		case stateConsent:
			return m.updateConsent(msg)
		}
	}

	return m, nil
}

func (m Model) updateCredentials(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "shift+tab", "up", "down":
		m.focusIdx = 1 - m.focusIdx
		if m.focusIdx == focusUsername {
			m.username.Focus()
			m.password.Blur()
		} else {
			m.password.Focus()
			m.username.Blur()
		}
		return m, nil

	case "enter":
		if m.focusIdx == focusUsername {
			// Advance to the password field instead of submitting.
			m.focusIdx = focusPassword
			m.password.Focus()
			m.username.Blur()
			return m, nil
		}
		return m.submit()
	}

	if m.submitting {
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusIdx == focusUsername {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) updateConsent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.submitting = true
		m.errText = ""
		return m, m.registerCmd(m.username.Value(), m.password.Value())

	case "n", "N", "esc":
		// Declining leaves no trace; back to the form.
		m.state = stateCredentials
		m.errText = ""
		m.password.Reset()
		m.focusIdx = focusPassword
		m.password.Focus()
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.submitting = true
	m.errText = ""
	return m, m.loginCmd(m.username.Value(), m.password.Value())
}

func (m Model) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false

	if msg.err != nil {
		switch {
		case errors.Is(msg.err, auth.ErrUnknownUser):
			m.state = stateConsent
		case errors.Is(msg.err, auth.ErrBadPassword):
			m.errText = "Incorrect password."
			m.password.Reset()
		case errors.Is(msg.err, auth.ErrEmptyCredentials):
			m.errText = "Username and password are required."
		default:
			m.errText = "Login failed: " + msg.err.Error()
		}
		return m, nil
	}

	m.identity = msg.identity
	m.state = stateDone
	return m, tea.Quit
}

// =============================================================================
// COMMANDS
// =============================================================================

func (m Model) loginCmd(username, password string) tea.Cmd {
	gate := m.gate
	return func() tea.Msg {
		identity, err := gate.Login(context.Background(), username, password)
		return authResultMsg{identity: identity, err: err}
	}
}

func (m Model) registerCmd(username, password string) tea.Cmd {
	gate := m.gate
	return func() tea.Msg {
		identity, err := gate.Register(context.Background(), username, password)
		return authResultMsg{identity: identity, err: err}
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if m.state == stateDone {
		return ""
	}

	var body string
	switch m.state {
	case stateConsent:
		body = m.viewConsent()
	default:
		body = m.viewCredentials()
	}

	box := m.theme.LoginBox.Render(body)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m Model) viewCredentials() string {
	title := m.theme.LoginTitle.Render("Talk2Me")

	lines := []string{
		title,
		"",
		m.theme.LoginLabel.Render("Username"),
		m.username.View(),
		"",
		m.theme.LoginLabel.Render("Password"),
		m.password.View(),
	}

	if m.errText != "" {
		lines = append(lines, "", m.theme.LoginError.Render(m.errText))
	}
	if m.submitting {
		lines = append(lines, "", m.theme.HeaderSubtitle.Render("Signing in..."))
	}

	lines = append(lines, "",
		m.theme.ShortcutDesc.Render("tab: switch field • enter: sign in • esc: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewConsent() string {
	title := m.theme.LoginTitle.Render("Talk2Me")
	prompt := m.theme.LoginConsent.Render(
		"No account found for \"" + m.username.Value() + "\". Create one?")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		prompt,
		"",
		m.theme.ShortcutDesc.Render("y: create account • n: back"),
	)
}
