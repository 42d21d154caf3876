// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and history.
//
// This package defines the canonical message shape shared by the view, the
// persistence layer, and the webhook client, plus the normalization rules
// that map raw agent reply fragments and raw user input into messages.
//
// # Key Types
//
//   - Message: sender, text, display timestamp, optional media
//   - Sender: message origin enumeration (user, bot)
//   - Conversation: append-only in-memory message sequence
//
// # Invariants
//
// Messages are immutable once appended. The sequence only grows, in strict
// append order, until an explicit full clear.
package model
