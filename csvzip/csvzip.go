// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package csvzip encodes workbooks as a zip archive of CSV files, one per sheet.
package csvzip

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"golang.org/x/text/encoding"

	"github.com/UNO-SOFT/sheetwriter"
	"github.com/UNO-SOFT/sheetwriter/internal/zipbook"
)

var _ = (sheetwriter.Encoder)((*Encoder)(nil))

// Option configures the Encoder.
type Option func(*Encoder)

// WithComma sets the field separator (default ',').
func WithComma(r rune) Option { return func(e *Encoder) { e.comma = r } }

// WithCRLF makes the lines end with \r\n.
func WithCRLF(b bool) Option { return func(e *Encoder) { e.crlf = b } }

// WithCharset sets the charset of the CSV files (default UTF-8).
func WithCharset(name string) Option { return func(e *Encoder) { e.charset = name } }

// NewFactory returns a sheetwriter.Factory producing zipped CSV workbooks.
func NewFactory(options ...Option) sheetwriter.Factory {
	return sheetwriter.EncoderFactory(func(sheetwriter.Options) (sheetwriter.Encoder, error) {
		return NewEncoder(options...)
	})
}

// NewWriter returns an unopened sheetwriter.Writer producing zipped CSV files.
func NewWriter(options ...Option) *sheetwriter.Writer {
	return sheetwriter.NewWriter(NewFactory(options...))
}

// Encoder is the sheetwriter.Encoder for zipped CSV files.
type Encoder struct {
	enc     encoding.Encoding
	charset string
	sheets  []*Sheet
	comma   rune
	crlf    bool
}

// Sheet holds the CSV lines of one sheet.
type Sheet struct {
	buf    bytes.Buffer
	cw     *csv.Writer
	closer io.Closer
	Name   string
	record []string
}

func NewEncoder(options ...Option) (*Encoder, error) {
	e := &Encoder{comma: ','}
	for _, o := range options {
		o(e)
	}
	var err error
	if e.enc, err = sheetwriter.GetEncoding(e.charset); err != nil {
		return nil, err
	}
	return e, nil
}

// MaxRows is 0: a CSV file has no row limit.
func (e *Encoder) MaxRows() int { return 0 }

func (e *Encoder) NewSheet(name string) (sheetwriter.SheetEncoder, error) {
	s := &Sheet{Name: name}
	var w io.Writer = &s.buf
	if e.enc != nil {
		tw := encoding.ReplaceUnsupported(e.enc.NewEncoder()).Writer(w)
		s.closer, _ = tw.(io.Closer)
		w = tw
	}
	s.cw = csv.NewWriter(w)
	s.cw.Comma = e.comma
	s.cw.UseCRLF = e.crlf
	e.sheets = append(e.sheets, s)
	return s, nil
}

func (e *Encoder) RemoveSheet(se sheetwriter.SheetEncoder) error {
	e.sheets = slices.DeleteFunc(e.sheets, func(s *Sheet) bool { return sheetwriter.SheetEncoder(s) == se })
	return nil
}

// WriteTo writes the zip archive with a <sheet name>.csv entry per sheet.
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	zw := zipbook.NewWriter(w)
	for _, s := range e.sheets {
		s.cw.Flush()
		if err := s.cw.Error(); err != nil {
			return 0, fmt.Errorf("%s: %w", s.Name, err)
		}
		if s.closer != nil {
			if err := s.closer.Close(); err != nil {
				return 0, fmt.Errorf("%s: %w", s.Name, err)
			}
			s.closer = nil
		}
		f, err := zw.Create(s.Name + ".csv")
		if err != nil {
			return 0, err
		}
		if _, err := f.Write(s.buf.Bytes()); err != nil {
			return 0, err
		}
	}
	return zw.Close()
}

func (s *Sheet) SetName(name string) error { s.Name = name; return nil }

// SetColumns writes the names of the columns as the first line, if any has a name.
func (s *Sheet) SetColumns(columns []sheetwriter.Column) error {
	if !sheetwriter.HasHeader(columns) {
		return nil
	}
	return s.AppendRow(sheetwriter.HeaderCells(columns), sheetwriter.Style{})
}

// AppendRow writes the textual form of the cells; the style is ignored.
func (s *Sheet) AppendRow(cells []sheetwriter.Cell, _ sheetwriter.Style) error {
	s.record = s.record[:0]
	for _, c := range cells {
		s.record = append(s.record, c.Text())
	}
	return s.cw.Write(s.record)
}
