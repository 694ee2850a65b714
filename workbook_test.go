// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetwriter_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/sheetwriter"
)

func TestWorkbookManager_Lazy(t *testing.T) {
	enc := &memEncoder{}
	m := sheetwriter.NewWorkbookManager(sheetwriter.DefaultOptions(), enc)
	assert.Nil(t, m.Workbook())
	assert.Nil(t, m.CurrentWorksheet())
	assert.Empty(t, m.Worksheets())
	require.ErrorIs(t, m.AddRowToCurrentWorksheet(sheetwriter.Row{"a"}, sheetwriter.Style{}), sheetwriter.ErrNotOpened)

	var buf bytes.Buffer
	require.NoError(t, m.Close(&buf))
	assert.Zero(t, enc.writes, "nothing to write")
	assert.True(t, enc.closed)
}

func TestWorkbookManager_EncoderLimit(t *testing.T) {
	enc := &memEncoder{maxRows: 2}
	opts := sheetwriter.DefaultOptions()
	opts.MaxRowsPerSheet = 5
	m := sheetwriter.NewWorkbookManager(opts, enc)
	_, err := m.AddNewSheetAndMakeItCurrent()
	require.NoError(t, err)
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, m.AddRowToCurrentWorksheet(sheetwriter.Row{s}, sheetwriter.Style{}))
	}
	ws := m.Worksheets()
	require.Len(t, ws, 2)
	assert.Equal(t, 2, ws[0].RowCount())
	assert.Equal(t, 1, ws[1].RowCount())
	assert.Same(t, ws[1], m.CurrentWorksheet())
	assert.Equal(t, []string{"c"}, enc.rows(1))
}

func TestWorkbookManager_ForeignSheet(t *testing.T) {
	m := sheetwriter.NewWorkbookManager(sheetwriter.DefaultOptions(), &memEncoder{})
	ws, err := m.AddNewSheetAndMakeItCurrent()
	require.NoError(t, err)
	assert.Equal(t, m.Workbook().ID(), ws.ExternalSheet().WorkbookID())

	foreign := sheetwriter.NewSheet(uuid.New(), 0, ws.Name())
	require.ErrorIs(t, m.SetCurrentSheet(foreign), sheetwriter.ErrSheetNotFound)
	_, err = m.RenameSheet(foreign, "x")
	require.ErrorIs(t, err, sheetwriter.ErrSheetNotFound)

	beyond := sheetwriter.NewSheet(m.Workbook().ID(), 1, "Sheet2")
	require.ErrorIs(t, m.SetCurrentSheet(beyond), sheetwriter.ErrSheetNotFound)
	assert.Same(t, ws, m.CurrentWorksheet())
}

func TestWorkbookManager_CloseOnce(t *testing.T) {
	enc := &memEncoder{}
	m := sheetwriter.NewWorkbookManager(sheetwriter.DefaultOptions(), enc)
	_, err := m.AddNewSheetAndMakeItCurrent()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, m.Close(&buf))
	require.NoError(t, m.Close(&buf))
	assert.Equal(t, 1, enc.writes)
	assert.Equal(t, "# Sheet1\n", buf.String())

	_, err = m.AddNewSheetAndMakeItCurrent()
	require.ErrorIs(t, err, sheetwriter.ErrClosed)
}
