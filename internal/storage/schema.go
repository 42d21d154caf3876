// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists user and chat history records for talk2me-tui.
package storage

const (
	// SchemaVersion tracks the database schema version for migrations
	SchemaVersion = 1
)

// SQLite schema for the local record store. Both tables are keyed by
// username; message sequences are stored as one JSON document per user,
// mirroring the record-store shape the UI works with.
const Schema = `
-- Metadata table for schema version
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
) WITHOUT ROWID;

-- Users table: one record per registered username
CREATE TABLE IF NOT EXISTS users (
    username      TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL,
    created_at    INTEGER NOT NULL  -- Unix timestamp
) WITHOUT ROWID;

-- Chat history table: one ordered message sequence per username
CREATE TABLE IF NOT EXISTS chat_history (
    username   TEXT PRIMARY KEY,
    messages   TEXT NOT NULL DEFAULT '[]',  -- JSON array of messages
    updated_at INTEGER NOT NULL             -- Unix timestamp
) WITHOUT ROWID;
`
