// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package media resolves attachment descriptors into renderable units.
package media

import "strings"

// =============================================================================
// KIND TYPE
// =============================================================================

// Kind identifies the renderable category of a media unit.
//
// The zero value is not valid; units always carry the literal type tag the
// server sent, so unrecognized tags survive round-trips and can be echoed
// back in the unsupported placeholder.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindChart Kind = "chart"
	KindPDF   Kind = "pdf"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
	KindLink  Kind = "link"
)

// String returns the literal type tag.
func (k Kind) String() string {
	return string(k)
}

// docFamily is the set of non-previewable document types that render as a
// generic file card.
var docFamily = map[Kind]bool{
	"doc": true, "docx": true,
	"xls": true, "xlsx": true,
	"ppt": true, "pptx": true,
	"zip": true, "psd": true,
	"dxf": true, "sql": true,
	"json": true, "xml": true,
	"log": true, "txt": true,
	"csv": true, "html": true,
}

// IsDocFamily reports whether the kind renders as a generic file card.
func (k Kind) IsDocFamily() bool {
	return docFamily[k]
}

// =============================================================================
// DESCRIPTOR AND UNIT TYPES
// =============================================================================

// Descriptor is a raw attachment as received from the remote agent or read
// back from persisted history.
type Descriptor struct {
	Type     string `json:"type"`
	URL      string `json:"url,omitempty"`
	Filename string `json:"filename,omitempty"`
	Content  string `json:"content,omitempty"`
}

// Unit is a resolved attachment ready for the view layer.
//
// The JSON shape matches Descriptor so persisted history records keep the
// wire format.
type Unit struct {
	Kind     Kind   `json:"type"`
	URL      string `json:"url,omitempty"`
	Filename string `json:"filename,omitempty"`
	Content  string `json:"content,omitempty"`
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolve maps a descriptor to a renderable unit.
//
// Returns nil when the descriptor lacks a usable type tag; a missing tag
// means there is nothing to render, not an error. The filename is derived
// when absent: the trailing path segment of the URL, defaulting to
// "download". Unrecognized type tags still resolve - they render as the
// unsupported placeholder rather than failing.
func Resolve(d Descriptor) *Unit {
	if d.Type == "" {
		return nil
	}

	return &Unit{
		Kind:     Kind(d.Type),
		URL:      d.URL,
		Filename: deriveFilename(d.Filename, d.URL),
		Content:  d.Content,
	}
}

// deriveFilename picks a display name for a unit.
func deriveFilename(filename, url string) string {
	if filename != "" {
		return filename
	}
	if url != "" {
		segments := strings.Split(url, "/")
		if last := segments[len(segments)-1]; last != "" {
			return last
		}
	}
	return "download"
}

// =============================================================================
// UNIT METHODS
// =============================================================================

// Extension returns the file extension of the resolved filename: the
// substring after the last ".", lower-cased. Empty when no dot is present.
func (u *Unit) Extension() string {
	idx := strings.LastIndex(u.Filename, ".")
	if idx < 0 || idx == len(u.Filename)-1 {
		return ""
	}
	return strings.ToLower(u.Filename[idx+1:])
}

// MimeHint returns the source MIME type for playable units, e.g. "video/mkv"
// or "audio/mp3". Empty for kinds that carry no MIME hint.
func (u *Unit) MimeHint() string {
	switch u.Kind {
	case KindVideo:
		return "video/" + u.Extension()
	case KindAudio:
		return "audio/" + u.Extension()
	default:
		return ""
	}
}
