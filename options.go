// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetwriter

import (
	"io"
	"log/slog"
	"slices"
)

// Options of a Writer, handed over to the Factory when the Writer is opened.
type Options struct {
	// Logger receives debug messages about the lifecycle of the workbook.
	Logger *slog.Logger
	// DefaultRowStyle is merged into the style of every row.
	DefaultRowStyle Style
	// SheetNamePrefix is the prefix of the generated sheet names ("Sheet" gives Sheet1, Sheet2...).
	SheetNamePrefix string
	// Columns, if any has a Name, are written as a header row at the top of each sheet;
	// their Column styles apply to the cells below.
	Columns []Column
	// MaxRowsPerSheet limits the rows of a sheet below the limit of the format. 0 means the format's limit.
	MaxRowsPerSheet int
	// ShouldCreateNewSheetsAutomatically makes a full sheet overflow into a new one.
	ShouldCreateNewSheetsAutomatically bool
}

// DefaultOptions returns the options a new Writer starts with.
func DefaultOptions() Options {
	return Options{
		SheetNamePrefix:                    "Sheet",
		ShouldCreateNewSheetsAutomatically: true,
	}
}

// HasHeader reports whether a header row is written at the top of each sheet.
func (o Options) HasHeader() bool { return HasHeader(o.Columns) }

func (o Options) clone() Options {
	o.Columns = slices.Clone(o.Columns)
	return o
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
