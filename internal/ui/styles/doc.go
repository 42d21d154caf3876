// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the talk2me TUI.
//
// # Key Types
//
//   - Theme: all pre-built lipgloss styles, one instance per program
//   - LayoutMode: responsive layout tier derived from terminal width
//
// Colors are defined as lipgloss.AdaptiveColor pairs so every style
// renders sensibly on both light and dark terminal backgrounds. The
// theme can also be forced to a background via NewThemeWithBackground
// when the config names one explicitly.
package styles
