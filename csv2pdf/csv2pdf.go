// Copyright 2021, 2026 Tamas Gulacsi. All rights reserved.

// Command csv2pdf prints a CSV file as a PDF table.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/UNO-SOFT/sheetwriter"
	"github.com/UNO-SOFT/sheetwriter/pdf"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		logger.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	alternateColor := Color{Color: pdf.DefaultAlternateColor}

	fs := flag.NewFlagSet("csv2pdf", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagEnc := fs.String("charset", sheetwriter.EncName, "csv charset name")
	flagOut := fs.String("o", "", "output file name (default input file + .pdf)")
	flagColor := fs.String("alternate-color", alternateColor.String(), "alternate color")
	flagLandscape := fs.Bool("L", false, "landscape orientation (default: portrait)")
	flagFontSize := fs.Float64("f", 8, "font size")
	flagMaxRows := fs.Int("max-rows", 0, "start a new section after this many rows (0: never)")

	app := ffcli.Command{Name: "csv2pdf", FlagSet: fs,
		ShortUsage: "csv2pdf [flags] <input.csv|->",
		Options:    []ff.Option{ff.WithEnvVarPrefix("CSV2PDF")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				args = append(args, "-")
			}
			if err := alternateColor.Parse(*flagColor); err != nil {
				return err
			}
			cr, err := sheetwriter.OpenCsv(args[0], *flagEnc)
			if err != nil {
				return err
			}
			defer cr.Close()

			headers, err := cr.Read()
			if err != nil {
				return err
			}
			cols := make([]sheetwriter.Column, len(headers))
			for i, s := range headers {
				cols[i].Name = s
			}
			logger.Debug("headers", "headers", headers)

			w := pdf.NewWriter(
				pdf.WithLandscape(*flagLandscape),
				pdf.WithFontSize(*flagFontSize),
				pdf.WithAlternateColor(alternateColor.Color),
			)
			defer w.Close()
			if err := w.SetLogger(logger); err != nil {
				return err
			}
			if err := w.SetColumns(cols); err != nil {
				return err
			}
			if err := w.SetMaxRowsPerSheet(*flagMaxRows); err != nil {
				return err
			}

			out := *flagOut
			if out == "" && args[0] != "" && args[0] != "-" {
				out = args[0] + ".pdf"
			}
			if out == "" || out == "-" {
				err = w.OpenToWriter(os.Stdout)
			} else {
				err = w.OpenToFile(out)
			}
			if err != nil {
				return err
			}

			values := make([]any, 0, len(headers))
			for {
				row, err := cr.Read()
				if err != nil {
					if errors.Is(err, io.EOF) {
						break
					}
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				values = values[:0]
				for _, s := range row {
					values = append(values, s)
				}
				if err := w.AddRow(values...); err != nil {
					return err
				}
			}
			return w.Close()
		},
	}

	args := make([]string, 0, len(os.Args))
	for _, a := range os.Args[1:] {
		if strings.HasPrefix(a, "-f") && len(a) > 2 && '0' <= a[2] && a[2] <= '9' {
			args = append(args, "-f", a[2:])
		} else {
			args = append(args, a)
		}
	}
	logger.Debug("args", "original", os.Args[1:], "fixed", args)
	if err := app.Parse(args); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

// Color is a flag-friendly color.Color, in RRGGBB hex form.
type Color struct {
	color.Color
}

func (c *Color) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.Red, c.Green, c.Blue)
}
func (c *Color) Parse(s string) error {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil {
		return err
	}
	if len(b) != 3 {
		return fmt.Errorf("color %q: want 3 bytes, got %d", s, len(b))
	}
	c.Red, c.Green, c.Blue = int(b[0]), int(b[1]), int(b[2])
	return nil
}
