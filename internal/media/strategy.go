// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package media

// =============================================================================
// RENDER STRATEGY
// =============================================================================

// RenderStrategy describes how the view layer presents a unit. The mapping
// from kind to strategy is pure; adding a kind means adding a strategy case.
type RenderStrategy int

const (
	// RenderInline shows the unit's inline content verbatim.
	RenderInline RenderStrategy = iota
	// RenderImage shows the unit as an image with a download affordance.
	RenderImage
	// RenderDocumentViewer shows the unit in an embedded document viewer.
	RenderDocumentViewer
	// RenderVideo shows the unit as playable video (MIME video/<ext>).
	RenderVideo
	// RenderAudio shows the unit as playable audio (MIME audio/<ext>).
	RenderAudio
	// RenderFileCard shows a generic file card: icon, filename, and a
	// "preview not available" note.
	RenderFileCard
	// RenderLink shows the unit as an external hyperlink.
	RenderLink
	// RenderUnsupported shows an explicit placeholder echoing the literal
	// type tag. The catch-all for server-sent kinds this client predates.
	RenderUnsupported
)

// String returns a short name for the strategy, used in logs and tests.
func (s RenderStrategy) String() string {
	switch s {
	case RenderInline:
		return "inline"
	case RenderImage:
		return "image"
	case RenderDocumentViewer:
		return "document-viewer"
	case RenderVideo:
		return "video"
	case RenderAudio:
		return "audio"
	case RenderFileCard:
		return "file-card"
	case RenderLink:
		return "link"
	default:
		return "unsupported"
	}
}

// Strategy returns the rendering strategy for the unit's kind.
//
// Every kind maps somewhere; unknown tags map to RenderUnsupported so one
// unrecognized attachment never breaks rendering of the rest of a message.
func (u *Unit) Strategy() RenderStrategy {
	switch u.Kind {
	case KindText:
		return RenderInline
	case KindImage, KindChart:
		return RenderImage
	case KindPDF:
		return RenderDocumentViewer
	case KindVideo:
		return RenderVideo
	case KindAudio:
		return RenderAudio
	case KindLink:
		return RenderLink
	default:
		if u.Kind.IsDocFamily() {
			return RenderFileCard
		}
		return RenderUnsupported
	}
}

// PlaceholderText returns the literal placeholder shown for units that
// resolve to RenderUnsupported.
func (u *Unit) PlaceholderText() string {
	return "Unsupported media type: " + u.Kind.String()
}

// Downloadable reports whether the unit carries a download affordance.
// Inline text has nothing to download; every other strategy does.
func (u *Unit) Downloadable() bool {
	return u.Strategy() != RenderInline && u.URL != ""
}
