// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/suhasdevmane/talk2me-tui/internal/export"
)

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// slashCommand is one entry in the command table.
type slashCommand struct {
	name        string
	description string
	run         func(m Model, args []string) (tea.Model, tea.Cmd)
}

// commandTable lists every slash command in display order.
func commandTable() []slashCommand {
	return []slashCommand{
		{
			name:        "/help",
			description: "Show available commands and shortcuts",
			run: func(m Model, _ []string) (tea.Model, tea.Cmd) {
				m.showHelp = !m.showHelp
				m.refreshViewport()
				return m, nil
			},
		},
		{
			name:        "/export",
			description: "Export history (/export md for Markdown)",
			run: func(m Model, args []string) (tea.Model, tea.Cmd) {
				var exporter export.Exporter = export.NewJSONExporter()
				if len(args) > 0 && (args[0] == "md" || args[0] == "markdown") {
					exporter = export.NewMarkdownExporter()
				}
				return m, m.exportCmd(exporter)
			},
		},
		{
			name:        "/clear",
			description: "Clear chat history",
			run: func(m Model, _ []string) (tea.Model, tea.Cmd) {
				return m.clearHistory()
			},
		},
		{
			name:        "/logout",
			description: "Sign out and return to login",
			run: func(m Model, _ []string) (tea.Model, tea.Cmd) {
				m.loggedOut = true
				return m, tea.Quit
			},
		},
		{
			name:        "/quit",
			description: "Exit the application",
			run: func(m Model, _ []string) (tea.Model, tea.Cmd) {
				return m, tea.Quit
			},
		},
	}
}

// handleCommand dispatches a typed slash command. Unknown commands show a
// status hint instead of being sent to the agent.
func (m Model) handleCommand(content string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return m, nil
	}
	name, args := fields[0], fields[1:]

	for _, cmd := range commandTable() {
		if cmd.name == name {
			m.input.Reset()
			return cmd.run(m, args)
		}
	}

	return m.setStatus("Unknown command: " + name + " (try /help)")
}
