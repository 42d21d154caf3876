// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists user and chat history records for talk2me-tui.
//
// The store is a local SQLite database (pure Go driver, no cgo) with two
// username-keyed tables: users and chat_history. A user's message sequence
// is stored as one JSON document, read once per session mount and rewritten
// in full on every mutation.
//
// # Semantics
//
//   - LoadHistory never fails on a missing record; it returns the welcome
//     seed, the normal first-login state.
//   - SaveHistory is a single atomic upsert by username. Saving after every
//     append cannot create duplicate records.
//   - ClearHistory empties the sequence but keeps the record.
//
// Storage errors are returned to the caller untouched; this package never
// swallows them.
package storage
