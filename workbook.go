// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetwriter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Workbook is the document under construction: its worksheets and the current one.
type Workbook struct {
	current    *Worksheet
	worksheets []*Worksheet
	id         uuid.UUID
}

func (wb *Workbook) ID() uuid.UUID { return wb.id }

// Worksheets in creation order.
func (wb *Workbook) Worksheets() []*Worksheet { return slices.Clone(wb.worksheets) }

func (wb *Workbook) CurrentWorksheet() *Worksheet { return wb.current }

// Worksheet is the WorkbookManager's side of a sheet: the encoder state
// and the number of rows written so far.
type Worksheet struct {
	enc     SheetEncoder
	sheet   Sheet
	columns []Column
	rows    int
}

func NewWorksheet(sheet Sheet, enc SheetEncoder) *Worksheet {
	return &Worksheet{sheet: sheet, enc: enc}
}

// ExternalSheet returns the handle given out to the callers.
func (ws *Worksheet) ExternalSheet() Sheet { return ws.sheet }
func (ws *Worksheet) Name() string         { return ws.sheet.name }
func (ws *Worksheet) RowCount() int        { return ws.rows }

// Columns of the sheet, nil if it has none.
func (ws *Worksheet) Columns() []Column { return slices.Clone(ws.columns) }

// setColumns hands the columns to the encoder; the header row counts as a row.
func (ws *Worksheet) setColumns(columns []Column) error {
	if err := ws.enc.SetColumns(columns); err != nil {
		return err
	}
	ws.columns = slices.Clone(columns)
	if HasHeader(columns) {
		ws.rows++
	}
	return nil
}

// AppendRow encodes the row and advances the row count.
func (ws *Worksheet) AppendRow(cells []Cell, style Style) error {
	if err := ws.enc.AppendRow(cells, style); err != nil {
		return fmt.Errorf("%s[%d]: %w", ws.sheet.name, ws.rows+1, err)
	}
	ws.rows++
	return nil
}

type workbookManager struct {
	enc      Encoder
	logger   *slog.Logger
	workbook *Workbook
	opts     Options
	id       uuid.UUID
	maxRows  int
	closed   bool
}

var _ WorkbookManager = (*workbookManager)(nil)

// NewWorkbookManager returns a WorkbookManager encoding with enc.
//
// The workbook is created with the first sheet. A sheet holds at most
// opts.MaxRowsPerSheet rows, or the format's maximum if that is lower.
func NewWorkbookManager(opts Options, enc Encoder) WorkbookManager {
	opts = opts.clone()
	maxRows := enc.MaxRows()
	if n := opts.MaxRowsPerSheet; n > 0 && (maxRows <= 0 || n < maxRows) {
		maxRows = n
	}
	if opts.SheetNamePrefix == "" {
		opts.SheetNamePrefix = DefaultOptions().SheetNamePrefix
	}
	return &workbookManager{
		enc: enc, opts: opts, maxRows: maxRows,
		id:     uuid.New(),
		logger: opts.logger(),
	}
}

func (m *workbookManager) Workbook() *Workbook { return m.workbook }

func (m *workbookManager) Worksheets() []*Worksheet {
	if m.workbook == nil {
		return nil
	}
	return m.workbook.Worksheets()
}

func (m *workbookManager) CurrentWorksheet() *Worksheet {
	if m.workbook == nil {
		return nil
	}
	return m.workbook.current
}

func (m *workbookManager) AddNewSheetAndMakeItCurrent() (*Worksheet, error) {
	return m.AddNewSheetWithColumns(m.opts.Columns)
}

func (m *workbookManager) AddNewSheetWithColumns(columns []Column) (*Worksheet, error) {
	if m.closed {
		return nil, ErrClosed
	}
	if err := validateColumns(columns); err != nil {
		return nil, err
	}
	var index int
	if m.workbook != nil {
		index = len(m.workbook.worksheets)
	}
	name := m.nextSheetName(index + 1)
	se, err := m.enc.NewSheet(name)
	if err != nil {
		return nil, fmt.Errorf("new sheet %q: %w", name, err)
	}
	ws := NewWorksheet(NewSheet(m.id, index, name), se)
	if len(columns) != 0 {
		if err := ws.setColumns(columns); err != nil {
			if rmErr := m.enc.RemoveSheet(se); rmErr != nil {
				err = errors.Join(err, fmt.Errorf("remove sheet: %w", rmErr))
			}
			return nil, fmt.Errorf("columns of %q: %w", name, err)
		}
	}
	if m.workbook == nil {
		m.workbook = &Workbook{id: m.id}
	}
	m.workbook.worksheets = append(m.workbook.worksheets, ws)
	m.workbook.current = ws
	m.logger.Debug("new sheet", "name", name, "index", index, "header", ws.rows != 0)
	return ws, nil
}

// nextSheetName returns the generated name for the n-th sheet,
// skipping the names taken by renamed sheets.
func (m *workbookManager) nextSheetName(n int) string {
	taken := m.sheetNames(nil)
	for ; ; n++ {
		name := m.opts.SheetNamePrefix + strconv.Itoa(n)
		if !slices.ContainsFunc(taken, func(t string) bool { return strings.EqualFold(t, name) }) {
			return name
		}
	}
}

func (m *workbookManager) sheetNames(except *Worksheet) []string {
	if m.workbook == nil {
		return nil
	}
	names := make([]string, 0, len(m.workbook.worksheets))
	for _, ws := range m.workbook.worksheets {
		if ws != except {
			names = append(names, ws.Name())
		}
	}
	return names
}

func (m *workbookManager) lookup(sheet Sheet) (*Worksheet, error) {
	wb := m.workbook
	if wb == nil || sheet.workbookID != wb.id ||
		sheet.index < 0 || sheet.index >= len(wb.worksheets) {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	return wb.worksheets[sheet.index], nil
}

func (m *workbookManager) SetCurrentSheet(sheet Sheet) error {
	ws, err := m.lookup(sheet)
	if err != nil {
		return err
	}
	m.workbook.current = ws
	return nil
}

func (m *workbookManager) RenameSheet(sheet Sheet, name string) (*Worksheet, error) {
	ws, err := m.lookup(sheet)
	if err != nil {
		return nil, err
	}
	if ws.Name() == name {
		return ws, nil
	}
	if err := ValidateSheetName(name, m.sheetNames(ws)); err != nil {
		return nil, err
	}
	if err := ws.enc.SetName(name); err != nil {
		return nil, fmt.Errorf("rename %q to %q: %w", ws.Name(), name, err)
	}
	m.logger.Debug("rename sheet", "old", ws.Name(), "new", name)
	ws.sheet = NewSheet(m.id, ws.sheet.index, name)
	return ws, nil
}

func (m *workbookManager) isFull(ws *Worksheet) bool {
	return m.maxRows > 0 && ws.rows >= m.maxRows
}

func (m *workbookManager) AddRowToCurrentWorksheet(row Row, style Style) error {
	if m.workbook == nil {
		return ErrNotOpened
	}
	style = style.MergeWith(m.opts.DefaultRowStyle)
	if err := style.Validate(); err != nil {
		return err
	}
	ws := m.workbook.current
	if m.isFull(ws) {
		if !m.opts.ShouldCreateNewSheetsAutomatically {
			return fmt.Errorf("%w: sheet %q has reached %d rows", ErrTooManyRows, ws.Name(), m.maxRows)
		}
		if HasHeader(ws.columns) && m.maxRows <= 1 {
			return fmt.Errorf("%w: the header fills every sheet of %d rows", ErrTooManyRows, m.maxRows)
		}
		full := ws.Name()
		var err error
		if ws, err = m.AddNewSheetWithColumns(ws.columns); err != nil {
			return err
		}
		m.logger.Debug("sheet is full", "sheet", full, "rows", m.maxRows, "continue", ws.Name())
	}
	return ws.AppendRow(NewCells(row), style)
}

func (m *workbookManager) Close(w io.Writer) (err error) {
	if m.closed {
		return nil
	}
	m.closed = true
	if c, ok := m.enc.(io.Closer); ok {
		defer func() {
			if closeErr := c.Close(); closeErr != nil {
				err = errors.Join(err, fmt.Errorf("close encoder: %w", closeErr))
			}
		}()
	}
	if m.workbook == nil {
		return nil
	}
	n, err := m.enc.WriteTo(w)
	if err != nil {
		return &IOError{Op: "write workbook", Err: err}
	}
	m.logger.Debug("workbook written", "sheets", len(m.workbook.worksheets), "bytes", n)
	return nil
}
