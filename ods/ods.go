// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package ods encodes workbooks as OpenDocument spreadsheets.
//
// The rows are encoded into memory as they come, and the document
// is assembled by WriteTo.
package ods

//go:generate qtc -file=content.qtpl

import (
	"bytes"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/valyala/quicktemplate"

	"github.com/UNO-SOFT/sheetwriter"
	"github.com/UNO-SOFT/sheetwriter/internal/zipbook"
)

// MaxRowCount is the number of maximum rows of a sheet.
const MaxRowCount = 1_048_576

const (
	mimeType = "application/vnd.oasis.opendocument.spreadsheet"

	xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	nsAll     = `xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"` +
		` xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"` +
		` xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"` +
		` xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"` +
		` xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"` +
		` xmlns:meta="urn:oasis:names:tc:opendocument:xmlns:meta:1.0"`
)

// Generator is written into meta.xml.
var Generator = "github.com/UNO-SOFT/sheetwriter"

var _ = (sheetwriter.Encoder)((*Encoder)(nil))

// NewFactory returns a sheetwriter.Factory producing ODS workbooks.
func NewFactory() sheetwriter.Factory {
	return sheetwriter.EncoderFactory(func(sheetwriter.Options) (sheetwriter.Encoder, error) {
		return NewEncoder(), nil
	})
}

// NewWriter returns an unopened sheetwriter.Writer producing ODS.
func NewWriter() *sheetwriter.Writer { return sheetwriter.NewWriter(NewFactory()) }

type cellStyle struct {
	Name  string
	Style sheetwriter.Style
}

// Encoder is the sheetwriter.Encoder for ODS.
type Encoder struct {
	styleNames map[string]string
	styles     []cellStyle
	sheets     []*Sheet
}

// Sheet holds the encoded rows of one table.
type Sheet struct {
	enc  *Encoder
	Name string
	rows bytes.Buffer
	cols []sheetwriter.Column
	// columnStyles are the default cell style names of the columns, if any has one.
	columnStyles []string
	columns      int
	rowNum       int
}

func NewEncoder() *Encoder { return &Encoder{} }

func (e *Encoder) MaxRows() int { return MaxRowCount }

func (e *Encoder) NewSheet(name string) (sheetwriter.SheetEncoder, error) {
	s := &Sheet{enc: e, Name: name}
	e.sheets = append(e.sheets, s)
	return s, nil
}

func (e *Encoder) RemoveSheet(se sheetwriter.SheetEncoder) error {
	e.sheets = slices.DeleteFunc(e.sheets, func(s *Sheet) bool { return sheetwriter.SheetEncoder(s) == se })
	return nil
}

func (e *Encoder) styleName(style sheetwriter.Style) string {
	if style.IsZero() {
		return ""
	}
	k := style.Key()
	if nm, ok := e.styleNames[k]; ok {
		return nm
	}
	if e.styleNames == nil {
		e.styleNames = make(map[string]string)
	}
	nm := "ce" + strconv.Itoa(len(e.styles)+1)
	e.styleNames[k] = nm
	e.styles = append(e.styles, cellStyle{Name: nm, Style: style})
	return nm
}

// WriteTo writes the document as a zip container into w.
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	zw := zipbook.NewWriter(w)
	// mimetype must be the first, uncompressed entry.
	if err := zw.Store("mimetype", []byte(mimeType)); err != nil {
		return 0, err
	}
	for _, part := range []struct {
		Name   string
		Stream func(*quicktemplate.Writer)
	}{
		{"META-INF/manifest.xml", streammanifestXML},
		{"meta.xml", func(qw *quicktemplate.Writer) { streammetaXML(qw, Generator) }},
		{"styles.xml", streamstylesXML},
		{"content.xml", func(qw *quicktemplate.Writer) { streamcontentXML(qw, e.styles, e.sheets) }},
	} {
		f, err := zw.Create(part.Name)
		if err != nil {
			return 0, err
		}
		qw := quicktemplate.AcquireWriter(f)
		part.Stream(qw)
		quicktemplate.ReleaseWriter(qw)
	}
	return zw.Close()
}

func (s *Sheet) SetName(name string) error { s.Name = name; return nil }

// SetColumns sets the default cell styles of the columns and writes the header row.
func (s *Sheet) SetColumns(columns []sheetwriter.Column) error {
	s.cols = slices.Clone(columns)
	if sheetwriter.HasColumnStyle(columns) {
		s.columnStyles = make([]string, len(columns))
		for i, c := range columns {
			s.columnStyles[i] = s.enc.styleName(c.Column)
		}
	}
	s.columns = max(s.columns, len(columns))
	if !sheetwriter.HasHeader(columns) {
		return nil
	}
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = s.enc.styleName(c.Header)
	}
	return s.appendRow(sheetwriter.HeaderCells(columns), names)
}

func (s *Sheet) AppendRow(cells []sheetwriter.Cell, style sheetwriter.Style) error {
	names := make([]string, len(cells))
	for i := range cells {
		names[i] = s.enc.styleName(style.InColumn(s.cols, i))
	}
	return s.appendRow(cells, names)
}

func (s *Sheet) appendRow(cells []sheetwriter.Cell, styleNames []string) error {
	if s.rowNum >= MaxRowCount {
		return sheetwriter.ErrTooManyRows
	}
	qw := quicktemplate.AcquireWriter(&s.rows)
	streamtableRow(qw, cells, styleNames)
	quicktemplate.ReleaseWriter(qw)
	s.rowNum++
	s.columns = max(s.columns, len(cells))
	return nil
}

// xmlText replaces invalid UTF-8 with U+FFFD and drops the characters XML 1.0 does not allow.
func xmlText(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	if strings.IndexFunc(s, notXMLChar) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if notXMLChar(r) {
			return -1
		}
		return r
	}, s)
}

func notXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return false
	case r < 0x20:
		return true
	case r == 0xFFFE || r == 0xFFFF:
		return true
	}
	return false
}

func verticalAlign(a sheetwriter.VerticalAlignment) string {
	switch a {
	case sheetwriter.VAlignTop:
		return "top"
	case sheetwriter.VAlignBottom:
		return "bottom"
	default:
		return "middle"
	}
}

func textAlign(a sheetwriter.HorizontalAlignment) string {
	switch a {
	case sheetwriter.HAlignLeft:
		return "start"
	case sheetwriter.HAlignRight:
		return "end"
	default:
		return string(a)
	}
}
