// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation view for the talk2me TUI.
//
// # Key Types
//
//   - Model: the Bubble Tea model tying together the conversation,
//     the record store, and the webhook client
//   - State: ready or awaiting-reply; input is disabled while awaiting
//     so sends never overlap
//   - KeyMap: keyboard bindings
//
// The send pipeline is optimistic: the user's message is appended and
// persisted before the webhook call, and the reply (or the single
// synthetic error message) is appended and persisted when it lands.
// History loads carry a generation number so a slow startup load cannot
// overwrite a clear that happened in the meantime.
package chat
