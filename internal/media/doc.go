// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package media resolves attachment descriptors into renderable units.
//
// The remote agent attaches heterogeneous media to its replies: images,
// charts, PDFs, playable video/audio, plain links, inline text snippets, and
// a family of non-previewable document types. This package owns the mapping
// from a raw descriptor to a typed Unit and from a Unit's kind to the
// strategy the view layer uses to present it.
//
// # Key Types
//
//   - Descriptor: raw attachment as received on the wire
//   - Unit: resolved attachment (kind, url, filename, inline content)
//   - RenderStrategy: how the view presents a unit
//
// # Forward Compatibility
//
// Kinds this client does not recognize resolve to RenderUnsupported and show
// an explicit placeholder echoing the server's literal type tag. One bad
// attachment never breaks rendering of the rest of a message.
package media
