// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is the in-memory message sequence for one session. Messages
// are displayed and stored in strict append order; no reordering or
// interleaving is permitted. The only destructive operation is a full clear.
type Conversation struct {
	messages []Message
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{messages: make([]Message, 0)}
}

// NewConversationWith creates a conversation seeded with existing history.
func NewConversationWith(messages []Message) *Conversation {
	c := NewConversation()
	c.messages = append(c.messages, messages...)
	return c
}

// Append adds messages to the end of the sequence.
func (c *Conversation) Append(messages ...Message) {
	c.messages = append(c.messages, messages...)
}

// Messages returns a copy of the sequence. Callers cannot mutate history
// through the returned slice.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Last returns the most recent message, or nil when empty.
func (c *Conversation) Last() *Message {
	if len(c.messages) == 0 {
		return nil
	}
	return &c.messages[len(c.messages)-1]
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// IsEmpty reports whether the conversation has no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.messages) == 0
}

// Clear removes all messages.
func (c *Conversation) Clear() {
	c.messages = make([]Message, 0)
}
