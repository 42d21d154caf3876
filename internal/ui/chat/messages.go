// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/suhasdevmane/talk2me-tui/internal/model"
)

// =============================================================================
// BUBBLE TEA MESSAGES
// =============================================================================

// historyLoadedMsg carries the persisted history read at startup. The
// generation guard drops results from a superseded load.
type historyLoadedMsg struct {
	gen      int
	messages []model.Message
	err      error
}

// repliesMsg carries the normalized bot replies for a completed send.
type repliesMsg struct {
	messages []model.Message
}

// sendFailedMsg signals a failed send. Any failure mode collapses to one
// synthetic error reply; the original error is kept for the status line.
type sendFailedMsg struct {
	err error
}

// mediaOpenedMsg reports the outcome of handing a media URL to the external
// opener. A local opener failure is status-line only; it never becomes a
// conversation message.
type mediaOpenedMsg struct {
	err error
}

// persistedMsg reports the outcome of a background history save.
type persistedMsg struct {
	err error
}

// exportDoneMsg reports the outcome of a history export.
type exportDoneMsg struct {
	path string
	err  error
}

// clearedMsg reports the outcome of a history clear, carrying the fresh
// welcome seed that replaces the wiped sequence.
type clearedMsg struct {
	seed []model.Message
	err  error
}

// statusExpiredMsg clears a temporary status line message.
type statusExpiredMsg struct{}
