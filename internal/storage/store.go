// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists user and chat history records for talk2me-tui.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/suhasdevmane/talk2me-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUserNotFound is returned when no user record exists for a username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when registering an already-taken username.
	ErrUserExists = errors.New("user already exists")
)

// =============================================================================
// RECORD TYPES
// =============================================================================

// UserRecord is a persisted user. The password is stored as a bcrypt hash,
// never as plaintext.
type UserRecord struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// =============================================================================
// STORE
// =============================================================================

// Store is the local record store backing the session gate and the chat
// history adapter. All operations are scoped by username.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default database location
// (~/.talk2me/talk2me.db).
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".talk2me", "talk2me.db"), nil
}

// Open opens (or creates) the record store at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// USER RECORDS
// =============================================================================

// LookupUser fetches a user record by username. A missing user is reported
// as ErrUserNotFound, a normal state during login.
func (s *Store) LookupUser(ctx context.Context, username string) (*UserRecord, error) {
	var rec UserRecord
	var createdAt int64

	row := s.db.QueryRowContext(ctx,
		`SELECT username, password_hash, created_at FROM users WHERE username = ?`,
		username,
	)
	if err := row.Scan(&rec.Username, &rec.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	rec.CreatedAt = time.Unix(createdAt, 0)
	return &rec, nil
}

// CreateUser registers a user and seeds an empty chat history record in one
// transaction, so a registered user always has a history row to upsert into.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`,
		username, passwordHash, now,
	); err != nil {
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO chat_history (username, messages, updated_at) VALUES (?, '[]', ?)
		 ON CONFLICT(username) DO NOTHING`,
		username, now,
	); err != nil {
		return fmt.Errorf("seed chat history: %w", err)
	}

	return tx.Commit()
}

// =============================================================================
// CHAT HISTORY RECORDS
// =============================================================================

// LoadHistory returns the user's stored message sequence. A missing record
// or an empty stored sequence yields the single-element welcome seed; a
// missing record is a normal first-login state, never an error.
func (s *Store) LoadHistory(ctx context.Context, username string) ([]model.Message, error) {
	var raw string

	row := s.db.QueryRowContext(ctx,
		`SELECT messages FROM chat_history WHERE username = ?`,
		username,
	)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return welcomeSeed(), nil
		}
		return nil, fmt.Errorf("load history: %w", err)
	}

	var messages []model.Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}

	if len(messages) == 0 {
		return welcomeSeed(), nil
	}
	return messages, nil
}

// SaveHistory replaces the user's stored sequence with the given one.
//
// The write is a single atomic upsert keyed by username, so calling it after
// every message append can never accumulate duplicate records for the same
// user, even under concurrent saves.
func (s *Store) SaveHistory(ctx context.Context, username string, messages []model.Message) error {
	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_history (username, messages, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET messages = excluded.messages,
		                                     updated_at = excluded.updated_at`,
		username, string(raw), time.Now().Unix(),
	); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	return nil
}

// ClearHistory empties the user's stored sequence without deleting the
// record. The next load yields the welcome seed, matching fresh-login
// behavior.
func (s *Store) ClearHistory(ctx context.Context, username string) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_history (username, messages, updated_at) VALUES (?, '[]', ?)
		 ON CONFLICT(username) DO UPDATE SET messages = '[]',
		                                     updated_at = excluded.updated_at`,
		username, time.Now().Unix(),
	); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// welcomeSeed builds the fixed single-message seed sequence with a current
// timestamp.
func welcomeSeed() []model.Message {
	return []model.Message{model.NewWelcomeMessage()}
}

// isUniqueViolation reports whether an error is a primary key / unique
// constraint violation. The modernc driver returns these as generic errors,
// so the check is on the message.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
