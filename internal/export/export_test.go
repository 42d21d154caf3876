// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/suhasdevmane/talk2me-tui/internal/media"
	"github.com/suhasdevmane/talk2me-tui/internal/model"
)

// =============================================================================
// JSON EXPORT TESTS
// =============================================================================

func TestJSONExporter_RoundTrip(t *testing.T) {
	messages := []model.Message{
		model.NewWelcomeMessage(),
		model.NewUserMessage("hello"),
	}

	data, err := NewJSONExporter().Export(messages)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded []model.Message
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported JSON does not decode: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Text != "hello" {
		t.Errorf("decoded = %+v", decoded)
	}

	// Pretty-printed: indentation present
	if !strings.Contains(string(data), "\n  ") {
		t.Error("export should be pretty-printed")
	}
}

func TestJSONExporter_EmptySequence(t *testing.T) {
	data, err := NewJSONExporter().Export(nil)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty export = %q, want []", data)
	}
}

func TestJSONExporter_FixedFilename(t *testing.T) {
	if got := NewJSONExporter().Filename(); got != "chatHistory.json" {
		t.Errorf("Filename() = %q, want chatHistory.json", got)
	}
}

// =============================================================================
// MARKDOWN EXPORT TESTS
// =============================================================================

func TestMarkdownExporter_Transcript(t *testing.T) {
	bot := model.NewBotMessage("here is the chart")
	bot.Attachment = &media.Unit{Kind: media.KindChart, URL: "http://x/c.png", Filename: "c.png"}

	data, err := NewMarkdownExporter().Export([]model.Message{
		model.NewUserMessage("show me a chart"),
		bot,
	})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{"**You**", "**Talk2MeBot**", "show me a chart", "![c.png](http://x/c.png)"} {
		if !strings.Contains(out, want) {
			t.Errorf("transcript missing %q:\n%s", want, out)
		}
	}
}

// =============================================================================
// FILE EXPORT TESTS
// =============================================================================

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportToFile(
		[]model.Message{model.NewUserMessage("hi")},
		NewJSONExporter(),
		&Options{OutputDir: dir},
	)
	if err != nil {
		t.Fatalf("ExportToFile() error = %v", err)
	}

	if filepath.Base(path) != "chatHistory.json" {
		t.Errorf("output path = %q, want fixed filename", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hi") {
		t.Errorf("exported file missing message text")
	}
}

func TestExportToFile_OverwritesPrevious(t *testing.T) {
	dir := t.TempDir()
	opts := &Options{OutputDir: dir}

	if _, err := ExportToFile([]model.Message{model.NewUserMessage("first")}, NewJSONExporter(), opts); err != nil {
		t.Fatal(err)
	}
	path, err := ExportToFile([]model.Message{model.NewUserMessage("second")}, NewJSONExporter(), opts)
	if err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "first") {
		t.Error("fixed-filename export should replace the previous artifact")
	}
}
