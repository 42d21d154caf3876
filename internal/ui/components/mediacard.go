// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/suhasdevmane/talk2me-tui/internal/media"
	"github.com/suhasdevmane/talk2me-tui/internal/ui/styles"
)

// =============================================================================
// MEDIA CARD COMPONENT
// =============================================================================

// Glyphs for each media family. Kept ASCII-adjacent so narrow terminals
// without emoji fonts still render something legible.
const (
	glyphImage    = "🖼"
	glyphDocument = "📄"
	glyphVideo    = "🎬"
	glyphAudio    = "🔊"
	glyphFile     = "📎"
	glyphLink     = "🔗"
	glyphChart    = "📊"
)

// MediaCard renders a single media unit as a bordered card.
type MediaCard struct {
	Unit  media.Unit
	Width int
	theme *styles.Theme
}

// NewMediaCard creates a card for a resolved media unit.
func NewMediaCard(unit media.Unit, theme *styles.Theme) *MediaCard {
	return &MediaCard{
		Unit:  unit,
		Width: 60,
		theme: theme,
	}
}

// SetWidth sets the card width.
func (c *MediaCard) SetWidth(width int) {
	c.Width = width
}

// View renders the card according to the unit's render strategy.
func (c *MediaCard) View() string {
	switch c.Unit.Strategy() {
	case media.RenderInline:
		return c.renderInline()
	case media.RenderImage:
		if c.Unit.Kind == media.KindChart {
			return c.renderCard(glyphChart, "Chart", "preview not available, o to open")
		}
		return c.renderCard(glyphImage, "Image", "preview not available, o to open")
	case media.RenderDocumentViewer:
		return c.renderCard(glyphDocument, "Document", "o to open in viewer")
	case media.RenderVideo:
		return c.renderCard(glyphVideo, "Video "+c.mimeSuffix(), "o to play externally")
	case media.RenderAudio:
		return c.renderCard(glyphAudio, "Audio "+c.mimeSuffix(), "o to play externally")
	case media.RenderFileCard:
		return c.renderCard(glyphFile, "File", "o to download")
	case media.RenderLink:
		return c.renderLink()
	default:
		return c.renderUnsupported()
	}
}

// renderInline renders textual content directly inside the card.
func (c *MediaCard) renderInline() string {
	content := strings.TrimRight(c.Unit.Content, "\n")
	if content == "" {
		content = c.Unit.URL
	}
	wrapped := wordWrap(content, c.innerWidth())
	return c.theme.MediaCard.Width(c.cardWidth()).Render(wrapped)
}

// renderCard renders the standard titled card: glyph, kind label,
// filename line and a hint line.
func (c *MediaCard) renderCard(glyph, label, hint string) string {
	title := c.theme.MediaTitle.Render(glyph + " " + label)
	name := truncateCell(c.Unit.Filename, c.innerWidth())
	meta := c.theme.MediaMeta.Render(name)
	hintLine := c.theme.MediaMeta.Render(hint)

	body := lipgloss.JoinVertical(lipgloss.Left, title, meta, hintLine)
	return c.theme.MediaCard.Width(c.cardWidth()).Render(body)
}

// renderLink renders a bare hyperlink without the card border.
func (c *MediaCard) renderLink() string {
	target := c.Unit.URL
	if target == "" {
		target = c.Unit.Content
	}
	return c.theme.MediaLink.Render(glyphLink + " " + truncateCell(target, c.innerWidth()))
}

// renderUnsupported echoes the unknown type tag so server-side additions
// degrade visibly instead of vanishing.
func (c *MediaCard) renderUnsupported() string {
	return c.theme.MediaPlaceholder.Render(c.Unit.PlaceholderText())
}

func (c *MediaCard) mimeSuffix() string {
	if hint := c.Unit.MimeHint(); hint != "" {
		return "(" + hint + ")"
	}
	return ""
}

func (c *MediaCard) cardWidth() int {
	w := c.Width
	if w < 24 {
		w = 24
	}
	return w
}

func (c *MediaCard) innerWidth() int {
	return c.cardWidth() - 4
}

// RenderUnits renders every media unit of a message, stacked vertically.
func RenderUnits(units []media.Unit, theme *styles.Theme, width int) string {
	if len(units) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(units))
	for _, u := range units {
		card := NewMediaCard(u, theme)
		card.SetWidth(width)
		rendered = append(rendered, card.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
