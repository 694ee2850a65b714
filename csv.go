package sheetwriter

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// EncName is the default charset of the CSV files, taken from $LANG.
var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	} else {
		EncName = ""
	}
	if EncName == "" {
		EncName = "utf-8"
	}
}

// GetEncoding returns the encoding for the name, nil for UTF-8.
func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

// CSVReader reads records of a CSV file, and closes the underlying file.
type CSVReader struct {
	*csv.Reader
	io.Closer
}

// OpenCsv opens the file (stdin for "" or "-"), decodes it from the encName charset,
// and guesses the field separator from the first line.
func OpenCsv(fn, encName string) (CSVReader, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return CSVReader{}, err
		}
	}
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return CSVReader{}, &IOError{Op: "open", Path: fn, Err: err}
		}
	}
	cr, err := NewCSVReader(fh, enc)
	if err != nil {
		fh.Close()
		return CSVReader{}, err
	}
	return CSVReader{Reader: cr, Closer: fh}, nil
}

// NewCSVReader returns a csv.Reader over r, decoded with enc (if not nil),
// with the separator guessed from the first bytes.
func NewCSVReader(r io.Reader, enc encoding.Encoding) (*csv.Reader, error) {
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	}
	br := bufio.NewReaderSize(r, 1<<20)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		return nil, err
	}
	cr := csv.NewReader(br)
	cr.ReuseRecord = true
	cr.Comma = DetectSeparator(b)
	return cr, nil
}

// DetectSeparator returns the first rune of b which cannot be part of a field name,
// or ',' if there is none.
func DetectSeparator(b []byte) rune {
	for _, r := range string(b) {
		if r == '"' || r == '_' || r == ' ' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		if r == '\n' || r == '\r' {
			break
		}
		return r
	}
	return ','
}
