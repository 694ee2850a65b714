// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetwriter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
)

// Writer is a multi-sheet writing session.
//
// Configure it with the Set* methods, then open it with OpenToFile or
// OpenToWriter. Opening creates the workbook with one sheet, which is the
// current sheet. Rows are appended to the current sheet until it is changed
// with AddNewSheetAndMakeItCurrent or SetCurrentSheet, or until the sheet is
// full and a new one is started automatically. Close persists the workbook.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	factory    Factory
	mgr        WorkbookManager
	sink       io.Writer
	sinkCloser io.Closer
	path       string
	opts       Options
	opened     bool
	closed     bool
}

// NewWriter returns an unopened Writer which creates its WorkbookManager with factory.
func NewWriter(factory Factory) *Writer {
	return &Writer{factory: factory, opts: DefaultOptions()}
}

func (w *Writer) checkConfigurable() error {
	if w.opened || w.closed {
		return ErrAlreadyOpened
	}
	return nil
}

// SetShouldCreateNewSheetsAutomatically sets whether a new sheet is started
// when the current one reaches its maximum number of rows.
// It must be called before opening the Writer.
func (w *Writer) SetShouldCreateNewSheetsAutomatically(b bool) error {
	if err := w.checkConfigurable(); err != nil {
		return err
	}
	w.opts.ShouldCreateNewSheetsAutomatically = b
	return nil
}

// SetMaxRowsPerSheet lowers the maximum number of rows of a sheet; 0 means the format's limit.
func (w *Writer) SetMaxRowsPerSheet(n int) error {
	if err := w.checkConfigurable(); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("max rows per sheet must not be negative: %d", n)
	}
	w.opts.MaxRowsPerSheet = n
	return nil
}

// SetDefaultRowStyle sets the style merged into the style of every row.
func (w *Writer) SetDefaultRowStyle(style Style) error {
	if err := w.checkConfigurable(); err != nil {
		return err
	}
	if err := style.Validate(); err != nil {
		return err
	}
	w.opts.DefaultRowStyle = style
	return nil
}

// SetColumns sets the header row written at the top of each sheet,
// and the styles of the columns.
func (w *Writer) SetColumns(columns []Column) error {
	if err := w.checkConfigurable(); err != nil {
		return err
	}
	if err := validateColumns(columns); err != nil {
		return err
	}
	w.opts.Columns = slices.Clone(columns)
	return nil
}

// SetSheetNamePrefix sets the prefix of the generated sheet names.
func (w *Writer) SetSheetNamePrefix(prefix string) error {
	if err := w.checkConfigurable(); err != nil {
		return err
	}
	if err := ValidateSheetName(prefix+"1", nil); err != nil {
		return err
	}
	w.opts.SheetNamePrefix = prefix
	return nil
}

// SetLogger sets the logger of the workbook. It must be called before opening the Writer.
func (w *Writer) SetLogger(logger *slog.Logger) error {
	if err := w.checkConfigurable(); err != nil {
		return err
	}
	w.opts.Logger = logger
	return nil
}

// Options returns a copy of the current configuration.
func (w *Writer) Options() Options { return w.opts.clone() }

// OpenToFile creates (truncates) the file at path and opens the Writer to it.
// The file is closed by Close.
func (w *Writer) OpenToFile(path string) error {
	if err := w.checkOpenable(); err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	if err := w.open(fh, fh, path); err != nil {
		_ = fh.Close()
		_ = os.Remove(path)
		return err
	}
	return nil
}

// OpenToWriter opens the Writer to dst. dst is not closed by Close.
func (w *Writer) OpenToWriter(dst io.Writer) error {
	if err := w.checkOpenable(); err != nil {
		return err
	}
	return w.open(dst, nil, "")
}

func (w *Writer) checkOpenable() error {
	if w.closed {
		return ErrClosed
	}
	if w.opened {
		return ErrAlreadyOpened
	}
	return nil
}

// open creates the WorkbookManager, at most once, with a first sheet.
func (w *Writer) open(sink io.Writer, closer io.Closer, path string) error {
	if w.mgr == nil {
		mgr, err := w.factory.NewWorkbookManager(w.opts.clone())
		if err != nil {
			return fmt.Errorf("create workbook: %w", err)
		}
		if _, err := mgr.AddNewSheetAndMakeItCurrent(); err != nil {
			_ = mgr.Close(io.Discard)
			return fmt.Errorf("create first sheet: %w", err)
		}
		w.mgr = mgr
	}
	w.sink, w.sinkCloser, w.path = sink, closer, path
	w.opened = true
	w.opts.logger().Debug("opened", "path", path)
	return nil
}

// IsOpen reports whether the Writer accepts sheet and row operations.
func (w *Writer) IsOpen() bool { return w.opened && !w.closed }

func (w *Writer) checkWorkbook() error {
	if w.mgr == nil || w.mgr.Workbook() == nil {
		return ErrNotOpened
	}
	return nil
}

// Sheets returns all the sheets of the workbook, in creation order.
func (w *Writer) Sheets() ([]Sheet, error) {
	if err := w.checkWorkbook(); err != nil {
		return nil, err
	}
	worksheets := w.mgr.Worksheets()
	sheets := make([]Sheet, len(worksheets))
	for i, ws := range worksheets {
		sheets[i] = ws.ExternalSheet()
	}
	return sheets, nil
}

// AddNewSheetAndMakeItCurrent creates a new sheet; the following rows are written into it.
func (w *Writer) AddNewSheetAndMakeItCurrent() (Sheet, error) {
	if err := w.checkWorkbook(); err != nil {
		return Sheet{}, err
	}
	ws, err := w.mgr.AddNewSheetAndMakeItCurrent()
	if err != nil {
		return Sheet{}, err
	}
	return ws.ExternalSheet(), nil
}

// AddNewSheetWithColumns creates a new sheet with its own columns instead of
// the configured ones, and makes it current. The sheets started automatically
// when it is full get the same columns.
func (w *Writer) AddNewSheetWithColumns(columns []Column) (Sheet, error) {
	if err := w.checkWorkbook(); err != nil {
		return Sheet{}, err
	}
	ws, err := w.mgr.AddNewSheetWithColumns(columns)
	if err != nil {
		return Sheet{}, err
	}
	return ws.ExternalSheet(), nil
}

// CurrentSheet returns the sheet the next row goes to.
//
// The current sheet changes when AddRow starts a new sheet automatically.
func (w *Writer) CurrentSheet() (Sheet, error) {
	if err := w.checkWorkbook(); err != nil {
		return Sheet{}, err
	}
	return w.mgr.CurrentWorksheet().ExternalSheet(), nil
}

// SetCurrentSheet makes the given sheet the current one.
// Writing resumes where it stopped in that sheet, nothing is truncated.
func (w *Writer) SetCurrentSheet(sheet Sheet) error {
	if err := w.checkWorkbook(); err != nil {
		return err
	}
	return w.mgr.SetCurrentSheet(sheet)
}

// SetSheetName renames the sheet and returns its new handle.
func (w *Writer) SetSheetName(sheet Sheet, name string) (Sheet, error) {
	if err := w.checkWorkbook(); err != nil {
		return Sheet{}, err
	}
	ws, err := w.mgr.RenameSheet(sheet, name)
	if err != nil {
		return Sheet{}, err
	}
	return ws.ExternalSheet(), nil
}

// AddRow appends a row with the default style to the current sheet.
//
// Example: w.AddRow("data1", 1234, nil, "", true)
func (w *Writer) AddRow(values ...any) error {
	return w.AddRowWithStyle(Style{}, values...)
}

// AddRowWithStyle appends a row to the current sheet.
// The unset properties of style are taken from the default row style.
func (w *Writer) AddRowWithStyle(style Style, values ...any) error {
	if err := w.checkWorkbook(); err != nil {
		return err
	}
	return w.mgr.AddRowToCurrentWorksheet(Row(values), style)
}

// AddRows appends the rows, stopping at the first error.
func (w *Writer) AddRows(rows [][]any) error {
	if err := w.checkWorkbook(); err != nil {
		return err
	}
	for i, row := range rows {
		if err := w.mgr.AddRowToCurrentWorksheet(Row(row), Style{}); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

// Close persists the workbook into the output and closes the file opened by OpenToFile.
//
// Closing a never opened Writer does nothing, and Close can be called more than once.
func (w *Writer) Close() error {
	if w == nil || w.closed {
		return nil
	}
	w.closed = true
	mgr, sink, closer, path := w.mgr, w.sink, w.sinkCloser, w.path
	w.mgr, w.sink, w.sinkCloser = nil, nil, nil
	if mgr == nil {
		return nil
	}
	err := mgr.Close(sink)
	if closer != nil {
		if closeErr := closer.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: closeErr}
		}
	}
	w.opts.logger().Debug("closed", "path", path, "error", err)
	return err
}
