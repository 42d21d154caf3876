// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth implements the username/password session gate.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/suhasdevmane/talk2me-tui/internal/storage"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUnknownUser is returned when no record exists for the username.
	// The caller prompts for registration consent.
	ErrUnknownUser = errors.New("unknown user")

	// ErrBadPassword is returned on a credential mismatch. No state changes.
	ErrBadPassword = errors.New("incorrect password")

	// ErrEmptyCredentials is returned when username or password is blank.
	ErrEmptyCredentials = errors.New("username and password are required")
)

// =============================================================================
// IDENTITY
// =============================================================================

// Identity is the authenticated session identity. It is created by the gate,
// passed explicitly to everything that scopes work by user, and never
// persisted; it lives exactly as long as the process.
type Identity struct {
	// Username scopes all persistence operations.
	Username string

	// SessionID is the opaque tag sent as the webhook sender field. Fresh
	// per process, so the remote agent tracks conversation state per
	// session rather than per stored user.
	SessionID string

	// StartedAt is when the session was established.
	StartedAt time.Time
}

// newIdentity establishes a session for a username.
func newIdentity(username string) *Identity {
	return &Identity{
		Username:  username,
		SessionID: uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// =============================================================================
// GATE
// =============================================================================

// Gate checks credentials against the user store and establishes session
// identities. It performs no rate limiting and enforces no password policy.
type Gate struct {
	store *storage.Store
}

// NewGate creates a gate over the given record store.
func NewGate(store *storage.Store) *Gate {
	return &Gate{store: store}
}

// Login authenticates a username/password pair.
//
//   - Match: returns the established identity.
//   - Mismatch: ErrBadPassword, nothing changes.
//   - No such user: ErrUnknownUser; the caller decides whether to Register.
func (g *Gate) Login(ctx context.Context, username, password string) (*Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	rec, err := g.store.LookupUser(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadPassword
	}

	return newIdentity(username), nil
}

// Register creates the user record and its empty chat history record, then
// establishes the session identity. Called only after the user consented to
// registration; declining leaves no trace.
func (g *Gate) Register(ctx context.Context, username, password string) (*Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := g.store.CreateUser(ctx, username, string(hash)); err != nil {
		return nil, err
	}

	return newIdentity(username), nil
}
