// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat history to user-facing files.
//
// Two formats are supported: pretty-printed JSON (chatHistory.json), a
// faithful copy of the persisted record shape, and a Markdown transcript
// (chatHistory.md). Filenames are fixed per format; exports always contain
// the full current in-memory sequence and are written atomically.
package export
