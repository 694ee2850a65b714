// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetwriter_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/sheetwriter"
)

// --- in-memory encoder ---

type memSheet struct {
	enc     *memEncoder
	name    string
	columns []sheetwriter.Column
	rows    []string
	styles  []sheetwriter.Style
}

func (s *memSheet) SetName(name string) error { s.name = name; return nil }
func (s *memSheet) SetColumns(columns []sheetwriter.Column) error {
	if s.enc.columnsErr != nil {
		return s.enc.columnsErr
	}
	s.columns = columns
	if sheetwriter.HasHeader(columns) {
		names := make([]string, len(columns))
		for i, c := range columns {
			names[i] = c.Name
		}
		s.rows = append(s.rows, strings.Join(names, "|"))
	}
	return nil
}
func (s *memSheet) AppendRow(cells []sheetwriter.Cell, style sheetwriter.Style) error {
	texts := make([]string, len(cells))
	for i, c := range cells {
		texts[i] = c.Text()
	}
	s.rows = append(s.rows, strings.Join(texts, "|"))
	s.styles = append(s.styles, style)
	return nil
}

type memEncoder struct {
	sheets     []*memSheet
	maxRows    int
	writes     int
	closed     bool
	writeErr   error
	columnsErr error
}

func (e *memEncoder) MaxRows() int { return e.maxRows }
func (e *memEncoder) NewSheet(name string) (sheetwriter.SheetEncoder, error) {
	s := &memSheet{enc: e, name: name}
	e.sheets = append(e.sheets, s)
	return s, nil
}
func (e *memEncoder) RemoveSheet(se sheetwriter.SheetEncoder) error {
	e.sheets = slices.DeleteFunc(e.sheets, func(s *memSheet) bool { return sheetwriter.SheetEncoder(s) == se })
	return nil
}
func (e *memEncoder) WriteTo(w io.Writer) (int64, error) {
	e.writes++
	if e.writeErr != nil {
		return 0, e.writeErr
	}
	var buf bytes.Buffer
	for _, s := range e.sheets {
		fmt.Fprintf(&buf, "# %s\n", s.name)
		for _, r := range s.rows {
			buf.WriteString(r + "\n")
		}
	}
	return buf.WriteTo(w)
}
func (e *memEncoder) Close() error { e.closed = true; return nil }

func (e *memEncoder) rows(i int) []string { return e.sheets[i].rows }

type recordingFactory struct {
	enc  *memEncoder
	opts []sheetwriter.Options
}

func (f *recordingFactory) NewWorkbookManager(opts sheetwriter.Options) (sheetwriter.WorkbookManager, error) {
	f.opts = append(f.opts, opts)
	return sheetwriter.NewWorkbookManager(opts, f.enc), nil
}

func newTestWriter(t *testing.T) (*sheetwriter.Writer, *recordingFactory) {
	t.Helper()
	f := &recordingFactory{enc: &memEncoder{}}
	return sheetwriter.NewWriter(f), f
}

func openTestWriter(t *testing.T) (*sheetwriter.Writer, *recordingFactory, *bytes.Buffer) {
	t.Helper()
	w, f := newTestWriter(t)
	var buf bytes.Buffer
	require.NoError(t, w.OpenToWriter(&buf))
	return w, f, &buf
}

// --- lifecycle ---

func sheetOperations(w *sheetwriter.Writer, sheet sheetwriter.Sheet) map[string]func() error {
	return map[string]func() error{
		"Sheets": func() error { _, err := w.Sheets(); return err },
		"AddNewSheetAndMakeItCurrent": func() error {
			_, err := w.AddNewSheetAndMakeItCurrent()
			return err
		},
		"AddNewSheetWithColumns": func() error {
			_, err := w.AddNewSheetWithColumns([]sheetwriter.Column{{Name: "a"}})
			return err
		},
		"CurrentSheet":    func() error { _, err := w.CurrentSheet(); return err },
		"SetCurrentSheet": func() error { return w.SetCurrentSheet(sheet) },
		"SetSheetName":    func() error { _, err := w.SetSheetName(sheet, "x"); return err },
		"AddRow":          func() error { return w.AddRow("a") },
		"AddRowWithStyle": func() error { return w.AddRowWithStyle(sheetwriter.Style{FontBold: true}, "a") },
		"AddRows":         func() error { return w.AddRows([][]any{{"a"}}) },
	}
}

func TestWriter_NotOpened(t *testing.T) {
	w, f := newTestWriter(t)
	for name, op := range sheetOperations(w, sheetwriter.Sheet{}) {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, op(), sheetwriter.ErrNotOpened)
		})
	}
	assert.Empty(t, f.opts, "the workbook must not be created")
	assert.False(t, w.IsOpen())
}

func TestWriter_AfterClose(t *testing.T) {
	w, _, _ := openTestWriter(t)
	sheet, err := w.CurrentSheet()
	require.NoError(t, err)
	require.NoError(t, w.Close())

	for name, op := range sheetOperations(w, sheet) {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, op(), sheetwriter.ErrNotOpened)
		})
	}
	require.ErrorIs(t, w.OpenToWriter(io.Discard), sheetwriter.ErrClosed)
	require.ErrorIs(t, w.SetShouldCreateNewSheetsAutomatically(false), sheetwriter.ErrAlreadyOpened)
}

func TestWriter_OpenCreatesOneCurrentSheet(t *testing.T) {
	w, f, _ := openTestWriter(t)
	assert.True(t, w.IsOpen())

	sheets, err := w.Sheets()
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, "Sheet1", sheets[0].Name())

	current, err := w.CurrentSheet()
	require.NoError(t, err)
	assert.True(t, current.SameAs(sheets[0]))

	require.ErrorIs(t, w.OpenToWriter(io.Discard), sheetwriter.ErrAlreadyOpened)
	assert.Len(t, f.opts, 1, "the workbook is created once")
	assert.Len(t, f.enc.sheets, 1)
}

func TestWriter_AddNewSheetAndMakeItCurrent(t *testing.T) {
	for n := 0; n < 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			w, _, _ := openTestWriter(t)
			var last sheetwriter.Sheet
			for i := 0; i < n; i++ {
				var err error
				last, err = w.AddNewSheetAndMakeItCurrent()
				require.NoError(t, err)
			}
			sheets, err := w.Sheets()
			require.NoError(t, err)
			require.Len(t, sheets, n+1)
			for i, s := range sheets {
				assert.Equal(t, i, s.Index())
				assert.Equal(t, fmt.Sprintf("Sheet%d", i+1), s.Name())
			}
			current, err := w.CurrentSheet()
			require.NoError(t, err)
			if n == 0 {
				last = sheets[0]
			}
			assert.Equal(t, last, current)
		})
	}
}

func TestWriter_SetCurrentSheetResumesWriting(t *testing.T) {
	w, f, _ := openTestWriter(t)
	first, err := w.CurrentSheet()
	require.NoError(t, err)
	require.NoError(t, w.AddRow("a1"))

	second, err := w.AddNewSheetAndMakeItCurrent()
	require.NoError(t, err)
	require.NoError(t, w.AddRow("b1"))

	require.NoError(t, w.SetCurrentSheet(first))
	require.NoError(t, w.AddRow("a2"))
	assert.Equal(t, []string{"a1", "a2"}, f.enc.rows(0))
	assert.Equal(t, []string{"b1"}, f.enc.rows(1), "other sheets are untouched")

	require.NoError(t, w.SetCurrentSheet(second))
	require.NoError(t, w.AddRow("b2"))
	assert.Equal(t, []string{"b1", "b2"}, f.enc.rows(1))
	assert.Equal(t, []string{"a1", "a2"}, f.enc.rows(0))
}

func TestWriter_SetCurrentSheetNotFound(t *testing.T) {
	w, _, _ := openTestWriter(t)
	other, _, _ := openTestWriter(t)
	foreign, err := other.CurrentSheet()
	require.NoError(t, err)

	before, err := w.CurrentSheet()
	require.NoError(t, err)

	for name, sheet := range map[string]sheetwriter.Sheet{
		"foreign":  foreign,
		"zero":     {},
		"overflow": sheetwriter.NewSheet(before.WorkbookID(), 1, "Sheet2"),
		"negative": sheetwriter.NewSheet(before.WorkbookID(), -1, "Sheet0"),
	} {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, w.SetCurrentSheet(sheet), sheetwriter.ErrSheetNotFound)
			after, err := w.CurrentSheet()
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestWriter_ConfigurationFrozenAfterOpen(t *testing.T) {
	w, f := newTestWriter(t)
	require.NoError(t, w.SetShouldCreateNewSheetsAutomatically(false))
	require.NoError(t, w.SetMaxRowsPerSheet(10))
	require.NoError(t, w.SetSheetNamePrefix("Page"))
	require.NoError(t, w.OpenToWriter(io.Discard))

	require.Len(t, f.opts, 1)
	assert.False(t, f.opts[0].ShouldCreateNewSheetsAutomatically)
	assert.Equal(t, 10, f.opts[0].MaxRowsPerSheet)

	require.ErrorIs(t, w.SetShouldCreateNewSheetsAutomatically(true), sheetwriter.ErrAlreadyOpened)
	require.ErrorIs(t, w.SetMaxRowsPerSheet(1), sheetwriter.ErrAlreadyOpened)
	require.ErrorIs(t, w.SetDefaultRowStyle(sheetwriter.Style{}), sheetwriter.ErrAlreadyOpened)
	require.ErrorIs(t, w.SetColumns(nil), sheetwriter.ErrAlreadyOpened)
	require.ErrorIs(t, w.SetSheetNamePrefix("x"), sheetwriter.ErrAlreadyOpened)
	require.ErrorIs(t, w.SetLogger(nil), sheetwriter.ErrAlreadyOpened)
	assert.False(t, w.Options().ShouldCreateNewSheetsAutomatically, "rejected setters change nothing")

	sheets, err := w.Sheets()
	require.NoError(t, err)
	assert.Equal(t, "Page1", sheets[0].Name())
}

func TestWriter_InvalidConfiguration(t *testing.T) {
	w, _ := newTestWriter(t)
	require.Error(t, w.SetMaxRowsPerSheet(-1))
	require.ErrorIs(t, w.SetSheetNamePrefix("a/b"), sheetwriter.ErrInvalidSheetName)
	require.ErrorIs(t, w.SetDefaultRowStyle(sheetwriter.Style{VerticalAlignment: "middle"}), sheetwriter.ErrInvalidStyle)
	require.ErrorIs(t, w.SetColumns([]sheetwriter.Column{{Name: "a", Header: sheetwriter.Style{FontSize: -1}}}), sheetwriter.ErrInvalidStyle)
	assert.Equal(t, sheetwriter.DefaultOptions(), w.Options())
}

func TestWriter_CloseEmptyWorkbook(t *testing.T) {
	w, f, buf := openTestWriter(t)
	require.NoError(t, w.Close())
	assert.Equal(t, "# Sheet1\n", buf.String())
	assert.True(t, f.enc.closed)
}

func TestWriter_CloseNeverOpened(t *testing.T) {
	w, f := newTestWriter(t)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Empty(t, f.opts)
	assert.Zero(t, f.enc.writes)
}

func TestWriter_CloseIsIdempotent(t *testing.T) {
	w, f, buf := openTestWriter(t)
	require.NoError(t, w.AddRow("a", 1, true, nil))
	require.NoError(t, w.Close())
	once := buf.String()
	require.NoError(t, w.Close())
	assert.Equal(t, once, buf.String())
	assert.Equal(t, 1, f.enc.writes)
	assert.Equal(t, "# Sheet1\na|1|true|\n", once)
}

func TestWriter_CloseWriteError(t *testing.T) {
	w, f, _ := openTestWriter(t)
	f.enc.writeErr = errors.New("disk full")
	err := w.Close()
	var ioErr *sheetwriter.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorContains(t, err, "disk full")
	assert.True(t, f.enc.closed, "the encoder is released even on error")
	require.NoError(t, w.Close())
}

func TestWriter_OpenToFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.txt")
	w, _ := newTestWriter(t)
	require.NoError(t, w.OpenToFile(fn))
	require.NoError(t, w.AddRow("x"))
	require.NoError(t, w.Close())

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "# Sheet1\nx\n", string(b))
}

func TestWriter_OpenToFileError(t *testing.T) {
	w, f := newTestWriter(t)
	err := w.OpenToFile(filepath.Join(t.TempDir(), "missing", "out.txt"))
	var ioErr *sheetwriter.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "create", ioErr.Op)
	assert.False(t, w.IsOpen())
	assert.Empty(t, f.opts)
	_, err = w.Sheets()
	require.ErrorIs(t, err, sheetwriter.ErrNotOpened)
}

func TestWriter_AutoPagination(t *testing.T) {
	w, f := newTestWriter(t)
	require.NoError(t, w.SetShouldCreateNewSheetsAutomatically(true))
	require.NoError(t, w.SetMaxRowsPerSheet(2))
	require.NoError(t, w.OpenToWriter(io.Discard))

	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, w.AddRow(s))
	}
	sheets, err := w.Sheets()
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, []string{"a", "b"}, f.enc.rows(0))
	assert.Equal(t, []string{"c"}, f.enc.rows(1))

	current, err := w.CurrentSheet()
	require.NoError(t, err)
	assert.Equal(t, sheets[1], current)
}

func TestWriter_TooManyRows(t *testing.T) {
	w, f := newTestWriter(t)
	require.NoError(t, w.SetShouldCreateNewSheetsAutomatically(false))
	require.NoError(t, w.SetMaxRowsPerSheet(2))
	require.NoError(t, w.OpenToWriter(io.Discard))

	require.NoError(t, w.AddRows([][]any{{"a"}, {"b"}}))
	require.ErrorIs(t, w.AddRow("c"), sheetwriter.ErrTooManyRows)

	sheets, err := w.Sheets()
	require.NoError(t, err)
	assert.Len(t, sheets, 1)
	assert.Equal(t, []string{"a", "b"}, f.enc.rows(0))
}

func TestWriter_HeaderOnEverySheet(t *testing.T) {
	w, f := newTestWriter(t)
	require.NoError(t, w.SetColumns([]sheetwriter.Column{
		{Name: "ID", Header: sheetwriter.Style{FontBold: true}},
		{Name: "Name"},
	}))
	require.NoError(t, w.SetMaxRowsPerSheet(3))
	require.NoError(t, w.OpenToWriter(io.Discard))

	require.NoError(t, w.AddRows([][]any{{1, "a"}, {2, "b"}, {3, "c"}}))
	require.Len(t, f.enc.sheets, 2)
	assert.Equal(t, []string{"ID|Name", "1|a", "2|b"}, f.enc.rows(0))
	assert.Equal(t, []string{"ID|Name", "3|c"}, f.enc.rows(1))
	require.Len(t, f.enc.sheets[1].columns, 2)
	assert.True(t, f.enc.sheets[1].columns[0].Header.FontBold)
	assert.False(t, f.enc.sheets[1].columns[1].Header.FontBold)
	assert.False(t, f.enc.sheets[1].styles[0].FontBold)
}

func TestWriter_HeaderFillsSheet(t *testing.T) {
	w, f := newTestWriter(t)
	require.NoError(t, w.SetColumns([]sheetwriter.Column{{Name: "ID"}}))
	require.NoError(t, w.SetMaxRowsPerSheet(1))
	require.NoError(t, w.OpenToWriter(io.Discard))
	first, err := w.CurrentSheet()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.ErrorIs(t, w.AddRow(i), sheetwriter.ErrTooManyRows)
		sheets, err := w.Sheets()
		require.NoError(t, err)
		assert.Len(t, sheets, 1, "a rejected row must not add sheets")
		current, err := w.CurrentSheet()
		require.NoError(t, err)
		assert.Equal(t, first, current)
	}
	assert.Len(t, f.enc.sheets, 1)
	assert.Equal(t, []string{"ID"}, f.enc.rows(0))
}

func TestWriter_AddNewSheetWithColumns(t *testing.T) {
	w, f := newTestWriter(t)
	require.NoError(t, w.SetColumns([]sheetwriter.Column{{Name: "id"}, {Name: "name"}}))
	require.NoError(t, w.SetMaxRowsPerSheet(2))
	require.NoError(t, w.OpenToWriter(io.Discard))
	require.NoError(t, w.AddRow(1, "x"))

	sheet, err := w.AddNewSheetWithColumns([]sheetwriter.Column{{Name: "city"}, {Name: "zip"}, {Name: "country"}})
	require.NoError(t, err)
	assert.Equal(t, 1, sheet.Index())
	require.NoError(t, w.AddRows([][]any{{"Budapest", 1011, "HU"}, {"Szeged", 6720, "HU"}}))

	_, err = w.AddNewSheetAndMakeItCurrent()
	require.NoError(t, err)

	require.Len(t, f.enc.sheets, 4)
	assert.Equal(t, []string{"id|name", "1|x"}, f.enc.rows(0))
	assert.Equal(t, []string{"city|zip|country", "Budapest|1011|HU"}, f.enc.rows(1))
	assert.Equal(t, []string{"city|zip|country", "Szeged|6720|HU"}, f.enc.rows(2), "overflow repeats the header of its sheet")
	assert.Equal(t, []string{"id|name"}, f.enc.rows(3), "new sheets get the configured columns")

	_, err = w.AddNewSheetWithColumns([]sheetwriter.Column{{Name: "bad", Column: sheetwriter.Style{FontColor: "red"}}})
	require.ErrorIs(t, err, sheetwriter.ErrInvalidStyle)
	assert.Len(t, f.enc.sheets, 4)
}

func TestWriter_ColumnsFailure(t *testing.T) {
	w, f, _ := openTestWriter(t)
	first, err := w.CurrentSheet()
	require.NoError(t, err)

	f.enc.columnsErr = errors.New("header failed")
	_, err = w.AddNewSheetWithColumns([]sheetwriter.Column{{Name: "a"}})
	require.ErrorIs(t, err, f.enc.columnsErr)

	sheets, err := w.Sheets()
	require.NoError(t, err)
	assert.Len(t, sheets, 1)
	current, err := w.CurrentSheet()
	require.NoError(t, err)
	assert.Equal(t, first, current)
	assert.Len(t, f.enc.sheets, 1, "the half-made sheet is removed")

	f.enc.columnsErr = nil
	second, err := w.AddNewSheetWithColumns([]sheetwriter.Column{{Name: "a"}})
	require.NoError(t, err)
	assert.Equal(t, "Sheet2", second.Name())
}

func TestWriter_DefaultRowStyle(t *testing.T) {
	w, f := newTestWriter(t)
	require.NoError(t, w.SetDefaultRowStyle(sheetwriter.Style{FontName: "Arial", FontSize: 10}))
	require.NoError(t, w.OpenToWriter(io.Discard))

	require.NoError(t, w.AddRow("plain"))
	require.NoError(t, w.AddRowWithStyle(sheetwriter.Style{FontSize: 12, FontBold: true}, "styled"))
	require.ErrorIs(t, w.AddRowWithStyle(sheetwriter.Style{VerticalAlignment: "middle"}, "bad"), sheetwriter.ErrInvalidStyle)

	styles := f.enc.sheets[0].styles
	require.Len(t, styles, 2, "a rejected row is not written")
	assert.Equal(t, sheetwriter.Style{FontName: "Arial", FontSize: 10}, styles[0])
	assert.Equal(t, sheetwriter.Style{FontName: "Arial", FontSize: 12, FontBold: true}, styles[1])
}

func TestWriter_SetSheetName(t *testing.T) {
	w, f, _ := openTestWriter(t)
	first, err := w.CurrentSheet()
	require.NoError(t, err)

	renamed, err := w.SetSheetName(first, "Sheet2")
	require.NoError(t, err)
	assert.Equal(t, "Sheet2", renamed.Name())
	assert.True(t, renamed.SameAs(first))
	assert.Equal(t, "Sheet2", f.enc.sheets[0].name)

	second, err := w.AddNewSheetAndMakeItCurrent()
	require.NoError(t, err)
	assert.Equal(t, "Sheet3", second.Name(), "taken names are skipped")

	_, err = w.SetSheetName(second, "sheet2")
	require.ErrorIs(t, err, sheetwriter.ErrInvalidSheetName)

	require.NoError(t, w.SetCurrentSheet(first), "old handles stay valid")
	current, err := w.CurrentSheet()
	require.NoError(t, err)
	assert.Equal(t, renamed, current)
}
