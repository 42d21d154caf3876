// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rasa implements the client for the conversational agent webhook.
//
// The agent speaks the Rasa REST channel protocol: one POST per user turn
// with {sender, message}, answered by an ordered JSON array of reply
// fragments. Each fragment optionally carries text, a bare image URL, an
// attachment descriptor, or a custom payload with multiple media
// descriptors. An empty array is a valid "no reply".
//
// All failure modes are uniform from the caller's perspective: the send
// errors and the conversation substitutes a synthetic error message. The
// client never retries on its own.
package rasa
