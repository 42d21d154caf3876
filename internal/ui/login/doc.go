// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login provides the credential entry view for the talk2me TUI.
//
// # Key Types
//
//   - Model: the Bubble Tea model for the login screen
//
// The flow has three states: credential entry, registration consent for
// unknown usernames, and done. Declining registration returns to the form
// without creating any records. When the program exits, Identity() reports
// whether a session was established.
package login
