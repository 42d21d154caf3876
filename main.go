// talk2me TUI - A terminal chat client for a Rasa conversational agent.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/suhasdevmane/talk2me-tui/internal/auth"
	"github.com/suhasdevmane/talk2me-tui/internal/config"
	"github.com/suhasdevmane/talk2me-tui/internal/rasa"
	"github.com/suhasdevmane/talk2me-tui/internal/storage"
	"github.com/suhasdevmane/talk2me-tui/internal/ui/chat"
	"github.com/suhasdevmane/talk2me-tui/internal/ui/login"
	"github.com/suhasdevmane/talk2me-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "version", "--version", "-v":
			fmt.Printf("talk2me %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return
		case "help", "--help", "-h":
			printUsage()
			return
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "Unknown flag: %s\n", arg)
				printUsage()
				os.Exit(2)
			}
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dbPath, err = storage.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	gate := auth.NewGate(store)
	client := rasa.NewClient(cfg.Endpoint).WithTimeout(cfg.Timeout())
	theme := styles.NewThemeWithBackground(cfg.Theme == "dark")

	// Login and chat alternate until the user quits. /logout drops back
	// to the login screen; quitting either screen exits.
	for {
		identity, err := runLogin(gate, theme)
		if err != nil {
			return err
		}
		if identity == nil {
			return nil
		}

		loggedOut, err := runChat(identity, store, client, cfg.ExportDir, theme)
		if err != nil {
			return err
		}
		if !loggedOut {
			return nil
		}
	}
}

func runLogin(gate *auth.Gate, theme *styles.Theme) (*auth.Identity, error) {
	program := tea.NewProgram(login.New(gate, theme))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return final.(login.Model).Identity(), nil
}

func runChat(identity *auth.Identity, store *storage.Store, client *rasa.Client, exportDir string, theme *styles.Theme) (bool, error) {
	program := tea.NewProgram(chat.New(identity, store, client, exportDir, theme))
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("chat: %w", err)
	}
	return final.(chat.Model).LoggedOut(), nil
}

func printUsage() {
	fmt.Println(`talk2me - terminal chat client

Usage:
  talk2me            Start the chat interface
  talk2me version    Show version information
  talk2me help       Show this help

Configuration:
  ~/.talk2me/config.toml, overridable with TALK2ME_ENDPOINT,
  TALK2ME_DB, TALK2ME_TIMEOUT_SECONDS, and TALK2ME_THEME.`)
}
