// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package zipbook writes the zip containers of the ODS and zipped CSV workbooks.
package zipbook

import (
	"io"

	"github.com/klauspost/compress/zip"
)

// Writer is a zip.Writer which counts the bytes written to the underlying writer.
type Writer struct {
	zw *zip.Writer
	cw *countingWriter
}

// NewWriter returns a Writer writing into w.
func NewWriter(w io.Writer) *Writer {
	cw := &countingWriter{w: w}
	return &Writer{zw: zip.NewWriter(cw), cw: cw}
}

// Store adds the entry uncompressed. The entries have no modification time,
// so the same content always gives the same archive.
func (w *Writer) Store(name string, data []byte) error {
	f, err := w.zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}

// Create adds a compressed entry and returns its writer, valid until the next call.
func (w *Writer) Create(name string) (io.Writer, error) {
	return w.zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
}

// Close finishes the archive and returns the number of bytes written.
//
// The first error of the underlying writer is returned even if the
// entry writers swallowed it.
func (w *Writer) Close() (int64, error) {
	err := w.zw.Close()
	if w.cw.err != nil {
		err = w.cw.err
	}
	return w.cw.n, err
}

type countingWriter struct {
	w   io.Writer
	err error
	n   int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}
