// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content holds the static article set for the public site and the
// parser that turns an article body into an ordered list of typed blocks.
package content

import "strings"

// BlockKind distinguishes the two renderable block types.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
)

// Block is one parsed unit of article content. Order is the zero-based
// emission index, contiguous within a single parse result.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Text  string    `json:"text"`
	Order int       `json:"order"`
}

// Body markers. Article bodies are newline-separated segments where a
// segment may be wrapped in a heading or paragraph tag.
const (
	headingOpen    = "<h3>"
	headingClose   = "</h3>"
	paragraphOpen  = "<p>"
	paragraphClose = "</p>"
)

// ParseBlocks converts a raw article body into an ordered block list.
// Segments are trimmed first; empty segments are skipped and do not consume
// an order slot. A segment starting with the heading marker becomes a
// heading, one starting with the paragraph marker becomes a paragraph, and
// anything else degrades to a plain paragraph. Blocks that are empty after
// marker stripping are dropped. The function is pure: identical input
// always yields identical output.
func ParseBlocks(raw string) []Block {
	blocks := []Block{}
	for _, segment := range strings.Split(raw, "\n") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		var kind BlockKind
		var text string
		switch {
		case strings.HasPrefix(segment, headingOpen):
			kind = BlockHeading
			text = stripMarkers(segment, headingOpen, headingClose)
		case strings.HasPrefix(segment, paragraphOpen):
			kind = BlockParagraph
			text = stripMarkers(segment, paragraphOpen, paragraphClose)
		default:
			kind = BlockParagraph
			text = segment
		}

		if text == "" {
			continue
		}
		blocks = append(blocks, Block{Kind: kind, Text: text, Order: len(blocks)})
	}
	return blocks
}

// stripMarkers removes the opening marker prefix and every occurrence of the
// closing marker, then trims the remainder. A missing closer is tolerated.
func stripMarkers(segment, open, closing string) string {
	s := strings.TrimPrefix(segment, open)
	s = strings.ReplaceAll(s, closing, "")
	return strings.TrimSpace(s)
}

// IsBoundaryParagraph reports whether blocks[i] is the last paragraph
// immediately preceding the next heading. Renderers use this to apply a
// closing emphasis to the final paragraph of a section.
func IsBoundaryParagraph(blocks []Block, i int) bool {
	if i < 0 || i >= len(blocks) || blocks[i].Kind != BlockParagraph {
		return false
	}
	return i+1 < len(blocks) && blocks[i+1].Kind == BlockHeading
}
