// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Command csv2sheets converts CSV files into the sheets of a spreadsheet.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/peterbourgon/ff/v3/ffyaml"

	"github.com/UNO-SOFT/sheetwriter"
	"github.com/UNO-SOFT/sheetwriter/csvzip"
	"github.com/UNO-SOFT/sheetwriter/ods"
	"github.com/UNO-SOFT/sheetwriter/pdf"
	"github.com/UNO-SOFT/sheetwriter/xlsx"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		logger.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

type config struct {
	Charset, Format, Comma string
	MaxRows                int
	AutoNewSheets, Header  bool
	Numbers, AutoWidth     bool
}

func Main() error {
	var cfg config
	fs := flag.NewFlagSet("csv2sheets", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	fs.StringVar(&cfg.Charset, "charset", sheetwriter.EncName, "csv charset name")
	fs.StringVar(&cfg.Format, "format", "", "output format: xlsx, ods, zip or pdf (default: by the output's extension)")
	fs.StringVar(&cfg.Comma, "comma", ",", "field separator of the zipped CSV output")
	fs.IntVar(&cfg.MaxRows, "max-rows", 0, "maximum number of rows per sheet (0: the format's limit)")
	fs.BoolVar(&cfg.AutoNewSheets, "auto-new-sheets", true, "continue on a new sheet when a sheet is full")
	fs.BoolVar(&cfg.Header, "header", true, "the first line of each CSV is a header, repeated on every sheet")
	fs.BoolVar(&cfg.Numbers, "numbers", false, "write numeric looking fields as numbers")
	fs.BoolVar(&cfg.AutoWidth, "auto-width", false, "fit the column widths (xlsx only)")
	_ = fs.String("config", "", "config file (YAML)")

	app := ffcli.Command{Name: "csv2sheets", FlagSet: fs,
		ShortUsage: "csv2sheets [flags] <output.{xlsx,ods,zip,pdf}|-> [[sheet:]input.csv ...]",
		Options: []ff.Option{
			ff.WithEnvVarPrefix("SHEETWRITER"),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
			ff.WithAllowMissingConfigFile(true),
		},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return flag.ErrHelp
			}
			inputs := args[1:]
			if len(inputs) == 0 {
				inputs = []string{"-"}
			}
			return convert(ctx, cfg, args[0], inputs)
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.ParseAndRun(ctx, os.Args[1:])
}

func newWriter(cfg config, out string) (*sheetwriter.Writer, error) {
	format := cfg.Format
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
	}
	switch format {
	case "xlsx":
		return xlsx.NewWriter(xlsx.WithAutoColumnWidth(cfg.AutoWidth)), nil
	case "ods", "":
		return ods.NewWriter(), nil
	case "zip", "csv":
		comma, _ := utf8.DecodeRuneInString(cfg.Comma)
		if comma == utf8.RuneError {
			comma = ','
		}
		return csvzip.NewWriter(csvzip.WithComma(comma), csvzip.WithCharset(cfg.Charset)), nil
	case "pdf":
		return pdf.NewWriter(pdf.WithSheetTitles(true)), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func convert(ctx context.Context, cfg config, out string, inputs []string) error {
	w, err := newWriter(cfg, out)
	if err != nil {
		return err
	}
	defer w.Close()
	if err = w.SetLogger(logger); err != nil {
		return err
	}
	if err = w.SetMaxRowsPerSheet(cfg.MaxRows); err != nil {
		return err
	}
	if err = w.SetShouldCreateNewSheetsAutomatically(cfg.AutoNewSheets); err != nil {
		return err
	}

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		sheetName, fn := splitSheetName(input)
		cr, err := sheetwriter.OpenCsv(fn, cfg.Charset)
		if err != nil {
			return err
		}
		err = copyFile(w, cfg, out, sheetName, cr)
		cr.Close()
		if err != nil {
			return fmt.Errorf("%q: %w", fn, err)
		}
	}

	if err := w.Close(); err != nil {
		return err
	}
	logger.Info("written", "output", out, "inputs", len(inputs))
	return nil
}

func splitSheetName(input string) (string, string) {
	if j := strings.IndexByte(input, ':'); j >= 0 {
		return input[:j], input[j+1:]
	}
	if input == "" || input == "-" {
		return "", input
	}
	return strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)), input
}

func copyFile(w *sheetwriter.Writer, cfg config, out string, sheetName string, cr sheetwriter.CSVReader) error {
	row, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	var cols []sheetwriter.Column
	if cfg.Header {
		cols = make([]sheetwriter.Column, len(row))
		for j, r := range row {
			cols[j].Name = r
			cols[j].Header.FontBold = true
		}
	}
	if !w.IsOpen() {
		if err = w.SetColumns(cols); err != nil {
			return err
		}
		if out == "-" {
			err = w.OpenToWriter(os.Stdout)
		} else {
			err = w.OpenToFile(out)
		}
		if err != nil {
			return err
		}
	} else if _, err = w.AddNewSheetWithColumns(cols); err != nil {
		return err
	}
	if sheetName != "" {
		sheet, err := w.CurrentSheet()
		if err != nil {
			return err
		}
		if _, err = w.SetSheetName(sheet, sheetName); err != nil {
			logger.Warn("keep generated sheet name", "sheet", sheet.Name(), "error", err)
		}
	}

	values := make([]any, 0, len(row))
	if cfg.Header {
		row = nil
	}
	for {
		if row != nil {
			values = values[:0]
			for _, s := range row {
				values = append(values, cellValue(s, cfg.Numbers))
			}
			if err = w.AddRow(values...); err != nil {
				return err
			}
		}
		if row, err = cr.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
	}
	sheets, err := w.Sheets()
	logger.Debug("copied", "sheet", sheetName, "sheets", len(sheets))
	return err
}

func cellValue(s string, numbers bool) any {
	if numbers {
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return sheetwriter.Number(s)
		}
	}
	return s
}
