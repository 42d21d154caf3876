// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package media

import "testing"

// =============================================================================
// RESOLUTION TESTS
// =============================================================================

func TestResolve_MissingTypeReturnsNil(t *testing.T) {
	if u := Resolve(Descriptor{URL: "http://x/file.pdf"}); u != nil {
		t.Errorf("Resolve() without type = %+v, want nil", u)
	}
}

func TestResolve_FilenameDerivation(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
		want string
	}{
		{"explicit filename wins", Descriptor{Type: "pdf", URL: "http://x/a/b.pdf", Filename: "report.pdf"}, "report.pdf"},
		{"derived from url", Descriptor{Type: "pdf", URL: "http://x/docs/manual.pdf"}, "manual.pdf"},
		{"trailing slash falls back", Descriptor{Type: "link", URL: "http://x/docs/"}, "download"},
		{"no url defaults", Descriptor{Type: "text", Content: "hello"}, "download"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := Resolve(tc.desc)
			if u == nil {
				t.Fatal("Resolve() = nil, want unit")
			}
			if u.Filename != tc.want {
				t.Errorf("Filename = %q, want %q", u.Filename, tc.want)
			}
		})
	}
}

// =============================================================================
// EXTENSION AND MIME TESTS
// =============================================================================

func TestUnit_Extension(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
		want string
	}{
		{"upper case folded", Descriptor{Type: "video", URL: "http://x/y/clip.MKV"}, "mkv"},
		{"plain", Descriptor{Type: "audio", URL: "http://x/song.mp3"}, "mp3"},
		{"no dot", Descriptor{Type: "doc", Filename: "README"}, ""},
		{"trailing dot", Descriptor{Type: "doc", Filename: "odd."}, ""},
		{"multiple dots", Descriptor{Type: "zip", Filename: "backup.tar.gz"}, "gz"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := Resolve(tc.desc)
			if got := u.Extension(); got != tc.want {
				t.Errorf("Extension() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUnit_MimeHint(t *testing.T) {
	video := Resolve(Descriptor{Type: "video", URL: "http://x/y/clip.MKV"})
	if got := video.MimeHint(); got != "video/mkv" {
		t.Errorf("video MimeHint() = %q, want %q", got, "video/mkv")
	}

	audio := Resolve(Descriptor{Type: "audio", URL: "http://x/track.FLAC"})
	if got := audio.MimeHint(); got != "audio/flac" {
		t.Errorf("audio MimeHint() = %q, want %q", got, "audio/flac")
	}

	image := Resolve(Descriptor{Type: "image", URL: "http://x/pic.png"})
	if got := image.MimeHint(); got != "" {
		t.Errorf("image MimeHint() = %q, want empty", got)
	}
}

// =============================================================================
// STRATEGY TESTS
// =============================================================================

func TestUnit_Strategy(t *testing.T) {
	tests := []struct {
		typ  string
		want RenderStrategy
	}{
		{"text", RenderInline},
		{"image", RenderImage},
		{"chart", RenderImage},
		{"pdf", RenderDocumentViewer},
		{"video", RenderVideo},
		{"audio", RenderAudio},
		{"link", RenderLink},
		{"doc", RenderFileCard},
		{"docx", RenderFileCard},
		{"xls", RenderFileCard},
		{"xlsx", RenderFileCard},
		{"ppt", RenderFileCard},
		{"pptx", RenderFileCard},
		{"zip", RenderFileCard},
		{"psd", RenderFileCard},
		{"dxf", RenderFileCard},
		{"sql", RenderFileCard},
		{"json", RenderFileCard},
		{"xml", RenderFileCard},
		{"log", RenderFileCard},
		{"txt", RenderFileCard},
		{"csv", RenderFileCard},
		{"html", RenderFileCard},
		{"unknown-xyz", RenderUnsupported},
	}

	for _, tc := range tests {
		t.Run(tc.typ, func(t *testing.T) {
			u := Resolve(Descriptor{Type: tc.typ, URL: "http://x/f"})
			if got := u.Strategy(); got != tc.want {
				t.Errorf("Strategy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUnit_UnsupportedPlaceholderEchoesTag(t *testing.T) {
	u := Resolve(Descriptor{Type: "unknown-xyz", URL: "http://x/f"})
	want := "Unsupported media type: unknown-xyz"
	if got := u.PlaceholderText(); got != want {
		t.Errorf("PlaceholderText() = %q, want %q", got, want)
	}
}

func TestUnit_MalformedDescriptorDegrades(t *testing.T) {
	// A recognized kind with no URL still resolves and renders; it just has
	// nothing to download.
	u := Resolve(Descriptor{Type: "image"})
	if u == nil {
		t.Fatal("Resolve() = nil, want unit")
	}
	if u.Strategy() != RenderImage {
		t.Errorf("Strategy() = %v, want %v", u.Strategy(), RenderImage)
	}
	if u.Downloadable() {
		t.Error("Downloadable() = true for unit without URL")
	}
}

func TestUnit_Downloadable(t *testing.T) {
	inline := Resolve(Descriptor{Type: "text", Content: "snippet"})
	if inline.Downloadable() {
		t.Error("inline text should not be downloadable")
	}

	img := Resolve(Descriptor{Type: "image", URL: "http://x/pic.png"})
	if !img.Downloadable() {
		t.Error("image with URL should be downloadable")
	}
}
