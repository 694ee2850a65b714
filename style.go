// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetwriter

import (
	"fmt"
	"strings"
)

// Style is a style for a column/row/cell.
//
// The zero value means "no styling"; colors are "#RRGGBB".
type Style struct {
	// Format is the number format
	Format string
	// FontName is the font family
	FontName string
	// FontColor is the color of the text
	FontColor string
	// BackgroundColor fills the cell
	BackgroundColor string

	HorizontalAlignment HorizontalAlignment
	VerticalAlignment   VerticalAlignment

	// FontSize is in points, 0 means the default
	FontSize float64

	// FontBold is true if the font is bold
	FontBold          bool
	FontItalic        bool
	FontUnderline     bool
	FontStrikethrough bool
	WrapText          bool
}

// IsZero reports whether the style sets nothing.
func (s Style) IsZero() bool { return s == Style{} }

// Validate checks the alignments and colors of the style.
func (s Style) Validate() error {
	if s.HorizontalAlignment != "" && !s.HorizontalAlignment.IsValid() {
		return fmt.Errorf("%w: horizontal alignment %q", ErrInvalidStyle, s.HorizontalAlignment)
	}
	if s.VerticalAlignment != "" && !s.VerticalAlignment.IsValid() {
		return fmt.Errorf("%w: vertical alignment %q", ErrInvalidStyle, s.VerticalAlignment)
	}
	for _, c := range [...]string{s.FontColor, s.BackgroundColor} {
		if c != "" && !isHexColor(c) {
			return fmt.Errorf("%w: color %q", ErrInvalidStyle, c)
		}
	}
	if s.FontSize < 0 {
		return fmt.Errorf("%w: font size %g", ErrInvalidStyle, s.FontSize)
	}
	return nil
}

// MergeWith returns s with its unset properties taken from base.
func (s Style) MergeWith(base Style) Style {
	if s.Format == "" {
		s.Format = base.Format
	}
	if s.FontName == "" {
		s.FontName = base.FontName
	}
	if s.FontColor == "" {
		s.FontColor = base.FontColor
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = base.BackgroundColor
	}
	if s.HorizontalAlignment == "" {
		s.HorizontalAlignment = base.HorizontalAlignment
	}
	if s.VerticalAlignment == "" {
		s.VerticalAlignment = base.VerticalAlignment
	}
	if s.FontSize == 0 {
		s.FontSize = base.FontSize
	}
	s.FontBold = s.FontBold || base.FontBold
	s.FontItalic = s.FontItalic || base.FontItalic
	s.FontUnderline = s.FontUnderline || base.FontUnderline
	s.FontStrikethrough = s.FontStrikethrough || base.FontStrikethrough
	s.WrapText = s.WrapText || base.WrapText
	return s
}

// InColumn returns the style of the i-th cell of a row with style s:
// the properties s leaves unset are taken from the i-th column.
func (s Style) InColumn(columns []Column, i int) Style {
	if i < 0 || i >= len(columns) {
		return s
	}
	return s.MergeWith(columns[i].Column)
}

// HasColumnStyle reports whether any of the columns has a Column style.
func HasColumnStyle(columns []Column) bool {
	for _, c := range columns {
		if !c.Column.IsZero() {
			return true
		}
	}
	return false
}

// Key returns a string usable as a map key for caching encoded styles.
func (s Style) Key() string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t%g\t%t%t%t%t%t",
		s.Format, s.FontName, strings.ToUpper(s.FontColor), strings.ToUpper(s.BackgroundColor),
		s.HorizontalAlignment, s.VerticalAlignment, s.FontSize,
		s.FontBold, s.FontItalic, s.FontUnderline, s.FontStrikethrough, s.WrapText)
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F') {
			return false
		}
	}
	return true
}
