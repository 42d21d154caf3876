// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation view for the talk2me TUI.
package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/suhasdevmane/talk2me-tui/internal/auth"
	"github.com/suhasdevmane/talk2me-tui/internal/model"
	"github.com/suhasdevmane/talk2me-tui/internal/rasa"
	"github.com/suhasdevmane/talk2me-tui/internal/storage"
	"github.com/suhasdevmane/talk2me-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	// StateReady: input enabled, ready to send.
	StateReady State = iota
	// StateAwaiting: a send is in flight. Input is disabled until the
	// reply or failure lands, so sends cannot overlap.
	StateAwaiting
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state State

	// Session identity; scopes every store and webhook call.
	identity *auth.Identity

	// Collaborators
	store     *storage.Store
	client    *rasa.Client
	exportDir string

	// Conversation
	conversation *model.Conversation

	// History load generation guard. A clear bumps the generation so a
	// slow startup load cannot resurrect wiped messages.
	loadGen int

	// Styling
	theme    *styles.Theme
	renderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int

	// Window state
	minimized  bool
	fullscreen bool

	// UI Components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Key bindings
	keyMap KeyMap

	// Temporary status line message
	statusMsg string

	// Help overlay
	showHelp bool

	// Set by /logout so the caller can return to the login screen
	// instead of exiting.
	loggedOut bool
}

// New creates a new chat model for an authenticated session.
func New(identity *auth.Identity, store *storage.Store, client *rasa.Client, exportDir string, theme *styles.Theme) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(70),
	)

	return Model{
		state:        StateReady,
		identity:     identity,
		store:        store,
		client:       client,
		exportDir:    exportDir,
		conversation: model.NewConversation(),
		theme:        theme,
		renderer:     renderer,
		viewport:     vp,
		input:        ti,
		spinner:      sp,
		keyMap:       DefaultKeyMap(),
	}
}

// Conversation exposes the in-memory message sequence.
func (m Model) Conversation() *model.Conversation {
	return m.conversation
}

// Minimized reports whether the view is collapsed to the badge.
func (m Model) Minimized() bool {
	return m.minimized
}

// LoggedOut reports whether the session ended via /logout rather than quit.
func (m Model) LoggedOut() bool {
	return m.loggedOut
}
