// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat history to user-facing files.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/suhasdevmane/talk2me-tui/internal/model"
	"github.com/suhasdevmane/talk2me-tui/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter converts a message sequence into a downloadable artifact.
type Exporter interface {
	// Export renders the full message sequence into the target format.
	Export(messages []model.Message) ([]byte, error)

	// Filename returns the fixed output filename for the format.
	Filename() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files are written.
	// Default: current working directory.
	OutputDir string
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{OutputDir: "."}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile writes the full in-memory message sequence to the exporter's
// fixed filename and returns the output path. The write is atomic so a
// crash mid-export cannot leave a truncated artifact.
func ExportToFile(messages []model.Message, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(messages)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(opts.OutputDir, exporter.Filename())
	if err := util.AtomicWriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return outputPath, nil
}
