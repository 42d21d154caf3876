// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the talk2me TUI.
//
// # Key Types
//
//   - MessageBubble: a chat message with sender header, text bubble, and
//     media cards
//   - MediaCard: a single resolved media unit rendered per its strategy
//
// Components are pure view code: they take model data and a theme and
// return strings. They never mutate state or perform I/O.
package components
