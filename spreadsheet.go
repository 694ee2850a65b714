// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package sheetwriter writes multi-sheet spreadsheets.
//
// A Writer is a session: configure it, open it to an output, append rows to
// the current sheet (switching or adding sheets as needed), then Close it to
// persist the workbook. The encoding itself is done by a format package
// (xlsx, ods, csvzip, pdf) through the Encoder interface.
package sheetwriter

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

var (
	ErrNotOpened        = errors.New("writer must be opened before performing this action")
	ErrAlreadyOpened    = errors.New("writer must be configured before opening it")
	ErrClosed           = errors.New("writer is closed")
	ErrSheetNotFound    = errors.New("sheet not found in workbook")
	ErrTooManyRows      = errors.New("too many rows")
	ErrInvalidSheetName = errors.New("invalid sheet name")
	ErrInvalidStyle     = errors.New("invalid style")
)

// IOError is returned when the output sink could not be opened, written or closed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}
func (e *IOError) Unwrap() error { return e.Err }

// Row is the list of cell values of one row.
type Row []any

// Number is a string that contains a number.
type Number string

// Column contains the Name of the column and header's style and column's style.
//
// Header styles the header cell of the column, Column fills in what
// the style of a row leaves unset in the column's cells.
type Column struct {
	Name           string
	Header, Column Style
}

// HasHeader reports whether any of the columns has a Name, thus a header row is written.
func HasHeader(columns []Column) bool {
	for _, c := range columns {
		if c.Name != "" {
			return true
		}
	}
	return false
}

// HeaderCells returns the cells of the header row.
func HeaderCells(columns []Column) []Cell {
	cells := make([]Cell, len(columns))
	for i, c := range columns {
		if c.Name != "" {
			cells[i] = Cell{Type: CellString, String: c.Name}
		}
	}
	return cells
}

func validateColumns(columns []Column) error {
	for i, c := range columns {
		if err := c.Header.Validate(); err != nil {
			return fmt.Errorf("header of column %d: %w", i, err)
		}
		if err := c.Column.Validate(); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	return nil
}

// Sheet is the handle of a worksheet, as seen by the callers.
//
// Handles are compared by the owning workbook and the position of the sheet,
// so a handle stays valid after the sheet is renamed.
type Sheet struct {
	workbookID uuid.UUID
	index      int
	name       string
}

// NewSheet returns the handle for the index-th (0-based) sheet of the given workbook.
func NewSheet(workbookID uuid.UUID, index int, name string) Sheet {
	return Sheet{workbookID: workbookID, index: index, name: name}
}

// Index of the sheet in the workbook, 0-based.
func (s Sheet) Index() int { return s.index }

// Name of the sheet at the time the handle was created.
func (s Sheet) Name() string { return s.name }

// WorkbookID identifies the workbook the sheet belongs to.
func (s Sheet) WorkbookID() uuid.UUID { return s.workbookID }

// SameAs reports whether both handles address the same worksheet.
func (s Sheet) SameAs(other Sheet) bool {
	return s.workbookID == other.workbookID && s.index == other.index
}

func (s Sheet) String() string { return fmt.Sprintf("%s#%d", s.name, s.index+1) }

// WorkbookManager owns the worksheets of one workbook.
//
// The Writer session delegates every sheet and row operation to it,
// after checking that the session is open.
type WorkbookManager interface {
	// AddNewSheetAndMakeItCurrent appends a new worksheet with the configured
	// columns and makes it current.
	AddNewSheetAndMakeItCurrent() (*Worksheet, error)
	// AddNewSheetWithColumns is AddNewSheetAndMakeItCurrent with the given columns.
	// The sheets started automatically after it repeat its columns.
	AddNewSheetWithColumns([]Column) (*Worksheet, error)
	// Worksheets returns the worksheets in creation order.
	Worksheets() []*Worksheet
	CurrentWorksheet() *Worksheet
	// SetCurrentSheet returns ErrSheetNotFound if the sheet is not in this workbook.
	SetCurrentSheet(Sheet) error
	RenameSheet(Sheet, string) (*Worksheet, error)
	// AddRowToCurrentWorksheet writes the row into the current worksheet,
	// starting a new worksheet when the current one is full and the
	// options allow it.
	AddRowToCurrentWorksheet(Row, Style) error
	// Workbook returns nil before the first worksheet is created.
	Workbook() *Workbook
	// Close persists the workbook into w and releases its resources.
	Close(w io.Writer) error
}

// Factory creates the WorkbookManager of a Writer when it is first opened.
type Factory interface {
	NewWorkbookManager(Options) (WorkbookManager, error)
}

// Encoder encodes the sheets of one workbook.
// Nothing is written to the output before WriteTo.
//
// If the Encoder implements io.Closer, it is closed after WriteTo.
type Encoder interface {
	NewSheet(name string) (SheetEncoder, error)
	// RemoveSheet drops a sheet returned by NewSheet which could not be set up.
	RemoveSheet(SheetEncoder) error
	// MaxRows is the maximum number of rows a sheet can hold in this format; 0 means unlimited.
	MaxRows() int
	io.WriterTo
}

// SheetEncoder encodes the rows of one sheet.
type SheetEncoder interface {
	// SetColumns is called at most once, before the first row.
	// It sets the column styles and, if HasHeader(columns), writes the
	// header row with each cell in its column's Header style.
	SetColumns(columns []Column) error
	// AppendRow writes the row; Style.InColumn gives the style of each cell.
	AppendRow(cells []Cell, style Style) error
	SetName(name string) error
}

// EncoderFactory is a Factory which uses the default WorkbookManager over the returned Encoder.
type EncoderFactory func(Options) (Encoder, error)

func (f EncoderFactory) NewWorkbookManager(opts Options) (WorkbookManager, error) {
	enc, err := f(opts)
	if err != nil {
		return nil, err
	}
	return NewWorkbookManager(opts, enc), nil
}
