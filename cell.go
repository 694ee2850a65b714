// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetwriter

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CellType is the kind of value a Cell holds.
type CellType uint8

const (
	CellEmpty CellType = iota
	CellString
	CellNumber
	CellBool
	CellDate
)

// Cell is a normalized cell value, ready for the encoders.
type Cell struct {
	Time time.Time
	// String is the text of a CellString, or the original text of a Number.
	String string
	Number float64
	Type   CellType
	Bool   bool
}

// NewCells normalizes the values of a row.
func NewCells(values []any) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = NewCell(v)
	}
	return cells
}

// NewCell normalizes v.
//
// driver.Valuer (thus the sql.Null* types) are resolved first;
// nil, invalid sql.Null* and zero time.Time values are empty cells.
func NewCell(v any) Cell {
	if vr, ok := v.(driver.Valuer); ok {
		if vv, err := vr.Value(); err == nil {
			v = vv
		}
	}
	switch x := v.(type) {
	case nil:
		return Cell{}
	case string:
		return Cell{Type: CellString, String: x}
	case []byte:
		return Cell{Type: CellString, String: string(x)}
	case Number:
		s := strings.TrimSpace(string(x))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Cell{Type: CellNumber, Number: f, String: s}
		}
		return Cell{Type: CellString, String: string(x)}
	case bool:
		return Cell{Type: CellBool, Bool: x}
	case time.Time:
		if x.IsZero() {
			return Cell{}
		}
		return Cell{Type: CellDate, Time: x}
	case *time.Time:
		if x == nil {
			return Cell{}
		}
		return NewCell(*x)
	case int:
		return Cell{Type: CellNumber, Number: float64(x)}
	case int8:
		return Cell{Type: CellNumber, Number: float64(x)}
	case int16:
		return Cell{Type: CellNumber, Number: float64(x)}
	case int32:
		return Cell{Type: CellNumber, Number: float64(x)}
	case int64:
		return Cell{Type: CellNumber, Number: float64(x)}
	case uint:
		return Cell{Type: CellNumber, Number: float64(x)}
	case uint8:
		return Cell{Type: CellNumber, Number: float64(x)}
	case uint16:
		return Cell{Type: CellNumber, Number: float64(x)}
	case uint32:
		return Cell{Type: CellNumber, Number: float64(x)}
	case uint64:
		return Cell{Type: CellNumber, Number: float64(x)}
	case float32:
		return Cell{Type: CellNumber, Number: float64(x)}
	case float64:
		return Cell{Type: CellNumber, Number: x}
	case fmt.Stringer:
		return Cell{Type: CellString, String: x.String()}
	default:
		return Cell{Type: CellString, String: fmt.Sprint(v)}
	}
}

// Text returns the textual form of the cell, as written into text-only formats.
func (c Cell) Text() string {
	switch c.Type {
	case CellString:
		return c.String
	case CellNumber:
		if c.String != "" {
			return c.String
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellBool:
		return strconv.FormatBool(c.Bool)
	case CellDate:
		if h, m, s := c.Time.Clock(); h == 0 && m == 0 && s == 0 && c.Time.Nanosecond() == 0 {
			return c.Time.Format("2006-01-02")
		}
		return c.Time.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}
