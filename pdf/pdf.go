// Copyright 2021, 2026 Tamas Gulacsi. All rights reserved.

// Package pdf renders workbooks as PDF tables, one section per sheet.
//
// The first row of each sheet is the table header.
// Row styles are ignored: the header is bold, the content uses a fixed-width font.
package pdf

import (
	"io"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	maroto "github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/UNO-SOFT/sheetwriter"
)

var _ = (sheetwriter.Encoder)((*Encoder)(nil))

// DefaultAlternateColor is the background of every second content row.
var DefaultAlternateColor = color.Color{Red: 230, Green: 230, Blue: 230}

// Option configures the Encoder.
type Option func(*Encoder)

// WithLandscape sets landscape orientation (default: portrait).
func WithLandscape(b bool) Option { return func(e *Encoder) { e.landscape = b } }

// WithFontSize sets the size of the content font (default 8).
func WithFontSize(size float64) Option { return func(e *Encoder) { e.fontSize = size } }

// WithAlternateColor sets the background of every second row.
func WithAlternateColor(c color.Color) Option { return func(e *Encoder) { e.alternateColor = c } }

// WithSheetTitles prints the name of each sheet above its table.
func WithSheetTitles(b bool) Option { return func(e *Encoder) { e.titles = b } }

// NewFactory returns a sheetwriter.Factory producing PDF documents.
func NewFactory(options ...Option) sheetwriter.Factory {
	return sheetwriter.EncoderFactory(func(sheetwriter.Options) (sheetwriter.Encoder, error) {
		return NewEncoder(options...), nil
	})
}

// NewWriter returns an unopened sheetwriter.Writer producing PDF.
func NewWriter(options ...Option) *sheetwriter.Writer {
	return sheetwriter.NewWriter(NewFactory(options...))
}

// Encoder is the sheetwriter.Encoder for PDF.
type Encoder struct {
	sheets         []*Sheet
	alternateColor color.Color
	fontSize       float64
	landscape      bool
	titles         bool
}

// Sheet collects the rows of a sheet.
type Sheet struct {
	Name string
	rows [][]string
}

func NewEncoder(options ...Option) *Encoder {
	e := &Encoder{fontSize: 8, alternateColor: DefaultAlternateColor}
	for _, o := range options {
		o(e)
	}
	return e
}

// MaxRows is 0: the tables flow onto as many pages as needed.
func (e *Encoder) MaxRows() int { return 0 }

func (e *Encoder) NewSheet(name string) (sheetwriter.SheetEncoder, error) {
	s := &Sheet{Name: name}
	e.sheets = append(e.sheets, s)
	return s, nil
}

func (e *Encoder) RemoveSheet(se sheetwriter.SheetEncoder) error {
	e.sheets = slices.DeleteFunc(e.sheets, func(s *Sheet) bool { return sheetwriter.SheetEncoder(s) == se })
	return nil
}

func (s *Sheet) SetName(name string) error { s.Name = name; return nil }

// SetColumns makes the names of the columns the table header; styles are ignored.
func (s *Sheet) SetColumns(columns []sheetwriter.Column) error {
	if !sheetwriter.HasHeader(columns) {
		return nil
	}
	return s.AppendRow(sheetwriter.HeaderCells(columns), sheetwriter.Style{})
}

func (s *Sheet) AppendRow(cells []sheetwriter.Cell, _ sheetwriter.Style) error {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = c.Text()
	}
	s.rows = append(s.rows, row)
	return nil
}

// WriteTo renders the document and writes it into w.
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	orientation := consts.Portrait
	if e.landscape {
		orientation = consts.Landscape
	}
	m := maroto.NewMaroto(orientation, consts.A4)
	for i, s := range e.sheets {
		if i != 0 {
			m.AddPage()
		}
		if e.titles {
			m.Row(e.fontSize*1.5, func() {
				m.Col(12, func() {
					m.Text(s.Name, props.Text{Style: consts.Bold, Size: e.fontSize * 1.5})
				})
			})
		}
		header, contents := s.table()
		if len(header) == 0 {
			continue
		}
		gridSize := GridSizes(header, contents)
		m.TableList(header, contents, props.TableList{
			HeaderProp: props.TableListContent{
				Family:    consts.Arial,
				Style:     consts.Bold,
				Size:      e.fontSize * 1.375,
				GridSizes: gridSize,
			},
			ContentProp: props.TableListContent{
				Family:    consts.Courier,
				Style:     consts.Normal,
				Size:      e.fontSize,
				GridSizes: gridSize,
			},
			Align:                consts.Center,
			AlternatedBackground: &e.alternateColor,
			HeaderContentSpace:   e.fontSize * 1.2,
			Line:                 false,
		})
	}
	buf, err := m.Output()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// table returns the header and the content rows, all padded to the same width.
func (s *Sheet) table() ([]string, [][]string) {
	if len(s.rows) == 0 {
		return nil, nil
	}
	var width int
	for _, row := range s.rows {
		width = max(width, len(row))
	}
	for i, row := range s.rows {
		for len(row) < width {
			row = append(row, "")
		}
		s.rows[i] = row
	}
	return s.rows[0], s.rows[1:]
}

// GridSizes distributes the 12 columns of the page grid among the columns,
// proportionally to the average length of their values.
func GridSizes(header []string, contents [][]string) []uint {
	widths := make([]float64, len(header))
	var total float64
	for i, s := range header {
		widths[i] = float64(utf8.RuneCountInString(s))
	}
	for _, row := range contents {
		for i, s := range row {
			if i < len(widths) {
				widths[i] += float64(utf8.RuneCountInString(s))
			}
		}
	}
	for _, w := range widths {
		total += w
	}
	gridSize := make([]uint, len(widths))
	for i, w := range widths {
		if total != 0 {
			gridSize[i] = uint(math.Round(12 * w / total))
		}
		if gridSize[i] == 0 {
			gridSize[i] = 1
		}
	}
	return gridSize
}
