// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"

	"github.com/suhasdevmane/talk2me-tui/internal/model"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter pretty-prints the message sequence as JSON. The output is a
// faithful copy of the persisted record shape, suitable for re-import.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export renders the messages as indented JSON.
func (e *JSONExporter) Export(messages []model.Message) ([]byte, error) {
	if messages == nil {
		messages = []model.Message{}
	}
	return json.MarshalIndent(messages, "", "  ")
}

// Filename returns the fixed output filename.
func (e *JSONExporter) Filename() string {
	return "chatHistory.json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
