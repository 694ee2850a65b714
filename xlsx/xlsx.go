// Copyright 2020, 2023, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsx encodes workbooks as Office Open XML spreadsheets.
package xlsx

import (
	"fmt"
	"io"
	"slices"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/sheetwriter"
)

// MaxRowCount is the number of maximum rows.
const MaxRowCount = 1_048_576

const (
	maxColWidth = 255
	dateFormat  = "yyyy-mm-dd"

	defaultSheet = "Sheet1"
)

var _ = (sheetwriter.Encoder)((*Encoder)(nil))

// Option configures the Encoder.
type Option func(*Encoder)

// WithAutoColumnWidth sets the width of the columns to fit their longest value.
func WithAutoColumnWidth(b bool) Option { return func(e *Encoder) { e.autoWidth = b } }

// NewFactory returns a sheetwriter.Factory producing XLSX workbooks.
func NewFactory(options ...Option) sheetwriter.Factory {
	return sheetwriter.EncoderFactory(func(sheetwriter.Options) (sheetwriter.Encoder, error) {
		return NewEncoder(options...), nil
	})
}

// NewWriter returns an unopened sheetwriter.Writer producing XLSX.
//
// This writer collects everything in memory, so big sheets may impose problems.
func NewWriter(options ...Option) *sheetwriter.Writer {
	return sheetwriter.NewWriter(NewFactory(options...))
}

// Encoder is the sheetwriter.Encoder for XLSX.
type Encoder struct {
	xl        *excelize.File
	styles    map[string]int
	sheets    []*Sheet
	autoWidth bool
}

// Sheet encodes the rows of one worksheet.
type Sheet struct {
	enc     *Encoder
	Name    string
	columns []sheetwriter.Column
	widths  []int
	row     int
}

// NewEncoder returns a new XLSX Encoder.
func NewEncoder(options ...Option) *Encoder {
	e := &Encoder{xl: excelize.NewFile()}
	for _, o := range options {
		o(e)
	}
	return e
}

func (e *Encoder) MaxRows() int { return MaxRowCount }

func (e *Encoder) NewSheet(name string) (sheetwriter.SheetEncoder, error) {
	if len(e.sheets) == 0 { // first
		if name != defaultSheet {
			if err := e.xl.SetSheetName(defaultSheet, name); err != nil {
				return nil, err
			}
		}
	} else if _, err := e.xl.NewSheet(name); err != nil {
		return nil, err
	}
	xls := &Sheet{enc: e, Name: name}
	e.sheets = append(e.sheets, xls)
	return xls, nil
}

// RemoveSheet drops the sheet. The only sheet is dropped by starting a new file.
func (e *Encoder) RemoveSheet(se sheetwriter.SheetEncoder) error {
	i := slices.IndexFunc(e.sheets, func(s *Sheet) bool { return sheetwriter.SheetEncoder(s) == se })
	if i < 0 {
		return nil
	}
	name := e.sheets[i].Name
	e.sheets = slices.Delete(e.sheets, i, i+1)
	if len(e.sheets) != 0 {
		return e.xl.DeleteSheet(name)
	}
	err := e.xl.Close()
	e.xl, e.styles = excelize.NewFile(), nil
	return err
}

// WriteTo writes the workbook into w.
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	if e.xl == nil {
		return 0, sheetwriter.ErrClosed
	}
	if e.autoWidth {
		for _, s := range e.sheets {
			if err := s.setColWidths(); err != nil {
				return 0, err
			}
		}
	}
	if len(e.sheets) != 0 {
		if idx, err := e.xl.GetSheetIndex(e.sheets[0].Name); err == nil && idx >= 0 {
			e.xl.SetActiveSheet(idx)
		}
	}
	return e.xl.WriteTo(w)
}

// Close releases the resources of the underlying excelize.File.
func (e *Encoder) Close() error {
	if e == nil || e.xl == nil {
		return nil
	}
	xl := e.xl
	e.xl = nil
	return xl.Close()
}

func (e *Encoder) getStyle(style sheetwriter.Style) (int, error) {
	if style.IsZero() {
		return 0, nil
	}
	k := style.Key()
	if s, ok := e.styles[k]; ok {
		return s, nil
	}
	s, err := e.xl.NewStyle(newExcelizeStyle(style))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", sheetwriter.ErrInvalidStyle, err)
	}
	if e.styles == nil {
		e.styles = make(map[string]int)
	}
	e.styles[k] = s
	return s, nil
}

func newExcelizeStyle(style sheetwriter.Style) *excelize.Style {
	var st excelize.Style
	if style.FontBold || style.FontItalic || style.FontUnderline || style.FontStrikethrough ||
		style.FontName != "" || style.FontColor != "" || style.FontSize != 0 {
		st.Font = &excelize.Font{
			Bold: style.FontBold, Italic: style.FontItalic, Strike: style.FontStrikethrough,
			Family: style.FontName, Size: style.FontSize, Color: style.FontColor,
		}
		if style.FontUnderline {
			st.Font.Underline = "single"
		}
	}
	if style.HorizontalAlignment != "" || style.VerticalAlignment != "" || style.WrapText {
		st.Alignment = &excelize.Alignment{
			Horizontal: string(style.HorizontalAlignment),
			Vertical:   string(style.VerticalAlignment),
			WrapText:   style.WrapText,
		}
	}
	if style.BackgroundColor != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{style.BackgroundColor}}
	}
	if style.Format != "" {
		format := style.Format
		st.CustomNumFmt = &format
	}
	return &st
}

func (xls *Sheet) SetName(name string) error {
	if err := xls.enc.xl.SetSheetName(xls.Name, name); err != nil {
		return err
	}
	xls.Name = name
	return nil
}

// SetColumns sets the style of the columns and writes the header row.
func (xls *Sheet) SetColumns(columns []sheetwriter.Column) error {
	xl := xls.enc.xl
	for i, c := range columns {
		if c.Column.IsZero() {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		s, err := xls.enc.getStyle(c.Column)
		if err != nil {
			return err
		}
		if err = xl.SetColStyle(xls.Name, col, s); err != nil {
			return fmt.Errorf("%s[%s]: %w", xls.Name, col, err)
		}
	}
	xls.columns = slices.Clone(columns)
	if !sheetwriter.HasHeader(columns) {
		return nil
	}
	return xls.appendRow(sheetwriter.HeaderCells(columns), func(i int) sheetwriter.Style {
		return columns[i].Header
	})
}

// AppendRow writes the cells into the next row.
// The unset properties of style are taken from the column styles.
func (xls *Sheet) AppendRow(cells []sheetwriter.Cell, style sheetwriter.Style) error {
	if !sheetwriter.HasColumnStyle(xls.columns) {
		return xls.appendRow(cells, func(int) sheetwriter.Style { return style })
	}
	return xls.appendRow(cells, func(i int) sheetwriter.Style {
		return style.InColumn(xls.columns, i)
	})
}

func (xls *Sheet) appendRow(cells []sheetwriter.Cell, styleOf func(int) sheetwriter.Style) error {
	if xls.row >= MaxRowCount {
		return sheetwriter.ErrTooManyRows
	}
	xl := xls.enc.xl
	row := xls.row + 1
	for i, c := range cells {
		axis, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("%d/%d: %w", i, row, err)
		}
		switch c.Type {
		case sheetwriter.CellString:
			err = xl.SetCellStr(xls.Name, axis, c.String)
		case sheetwriter.CellNumber:
			err = xl.SetCellFloat(xls.Name, axis, c.Number, -1, 64)
		case sheetwriter.CellBool:
			err = xl.SetCellBool(xls.Name, axis, c.Bool)
		case sheetwriter.CellDate:
			err = xl.SetCellValue(xls.Name, axis, c.Time)
		}
		if err != nil {
			return fmt.Errorf("%s[%s]: %w", xls.Name, axis, err)
		}
		if st := styleOf(i); !st.IsZero() {
			s, err := xls.enc.getStyle(st)
			if err != nil {
				return err
			}
			if err = xl.SetCellStyle(xls.Name, axis, axis, s); err != nil {
				return fmt.Errorf("%s[%s]: %w", xls.Name, axis, err)
			}
		}
		if xls.enc.autoWidth && c.Type != sheetwriter.CellEmpty {
			xls.trackWidth(i, c)
		}
	}
	xls.row = row
	return nil
}

func (xls *Sheet) trackWidth(i int, c sheetwriter.Cell) {
	for len(xls.widths) <= i {
		xls.widths = append(xls.widths, 0)
	}
	w := runewidth.StringWidth(c.Text())
	if c.Type == sheetwriter.CellDate {
		w = len(dateFormat)
	}
	if w > xls.widths[i] {
		xls.widths[i] = w
	}
}

func (xls *Sheet) setColWidths() error {
	for i, w := range xls.widths {
		if w == 0 {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := xls.enc.xl.SetColWidth(xls.Name, col, col, float64(min(w+2, maxColWidth))); err != nil {
			return fmt.Errorf("%s[%s]: %w", xls.Name, col, err)
		}
	}
	return nil
}
