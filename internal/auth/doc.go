// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth implements the username/password session gate.
//
// The gate owns the login flow: lookup, bcrypt credential comparison, and
// registration-on-miss after explicit consent. A successful login or
// registration yields an Identity value that callers pass explicitly to
// every operation scoped by user - there is no ambient "current user"
// global, which keeps the conversation controller testable without a live
// session.
//
// Deliberately out of scope: rate limiting, lockout, and password strength
// rules.
package auth
