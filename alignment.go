// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetwriter

// VerticalAlignment of the text in a cell.
type VerticalAlignment string

const (
	VAlignTop         = VerticalAlignment("top")
	VAlignCenter      = VerticalAlignment("center")
	VAlignBottom      = VerticalAlignment("bottom")
	VAlignJustify     = VerticalAlignment("justify")
	VAlignDistributed = VerticalAlignment("distributed")
)

var validVerticalAlignments = map[VerticalAlignment]struct{}{
	VAlignTop: {}, VAlignCenter: {}, VAlignBottom: {}, VAlignJustify: {}, VAlignDistributed: {},
}

// IsValidVerticalAlignment reports whether s is one of the known vertical alignments.
func IsValidVerticalAlignment(s string) bool {
	_, ok := validVerticalAlignments[VerticalAlignment(s)]
	return ok
}

// IsValid reports whether a is a known vertical alignment.
func (a VerticalAlignment) IsValid() bool { return IsValidVerticalAlignment(string(a)) }

// HorizontalAlignment of the text in a cell.
type HorizontalAlignment string

const (
	HAlignLeft    = HorizontalAlignment("left")
	HAlignRight   = HorizontalAlignment("right")
	HAlignCenter  = HorizontalAlignment("center")
	HAlignJustify = HorizontalAlignment("justify")
)

var validHorizontalAlignments = map[HorizontalAlignment]struct{}{
	HAlignLeft: {}, HAlignRight: {}, HAlignCenter: {}, HAlignJustify: {},
}

// IsValidHorizontalAlignment reports whether s is one of the known horizontal alignments.
func IsValidHorizontalAlignment(s string) bool {
	_, ok := validHorizontalAlignments[HorizontalAlignment(s)]
	return ok
}

func (a HorizontalAlignment) IsValid() bool { return IsValidHorizontalAlignment(string(a)) }
