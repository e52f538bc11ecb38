// Package codelist reads code-point list files for batch processing.
// It supports plain text files plus .xz and .gz compressed variants.
//
// The format is line-oriented: one code point per line, written as
// U+XXXX, 0x-prefixed hex, or decimal. Blank lines and lines starting
// with # are skipped; a # after the value starts a trailing comment.
package codelist

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/RuneCast/core/errors"
)

// Entry is one parsed line of a code-point list.
type Entry struct {
	Line  int    // 1-based line number in the input
	Value int64  // Parsed integer; scalar validation is the caller's job
	Text  string // Original token as written
}

// Reader reads entries from a code-point list with automatic
// decompression handling.
type Reader struct {
	scanner      *bufio.Scanner
	file         *os.File
	decompressor io.Closer
	path         string
	line         int
}

// Open creates a Reader for the given path. It detects .xz and .gz
// inputs by suffix and decompresses them transparently.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open code list: %w", err)
	}

	var reader io.Reader = f
	var decompressor io.Closer

	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		reader = xzr
		decompressor = nil // xz reader doesn't need closing
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		reader = gzr
		decompressor = gzr
	}

	r := New(reader, path)
	r.file = f
	r.decompressor = decompressor
	return r, nil
}

// New creates a Reader over an arbitrary stream. The path is used only
// for error messages and may be empty.
func New(r io.Reader, path string) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
		path:    path,
	}
}

// Close closes the underlying file and any decompressor.
func (r *Reader) Close() error {
	var errs []error
	if r.decompressor != nil {
		if err := r.decompressor.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if r.file != nil {
		if err := r.file.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Next returns the next entry. It returns io.EOF at end of input and a
// *errors.ParseError for lines that are not a code point.
func (r *Reader) Next() (Entry, error) {
	for r.scanner.Scan() {
		r.line++
		text := r.scanner.Text()
		if idx := strings.Index(text, "#"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if strings.ContainsAny(text, " \t") {
			return Entry{}, errors.NewParse(r.path, r.line, fmt.Sprintf("expected one code point per line, got %q", text))
		}

		v, err := ParsePoint(text)
		if err != nil {
			return Entry{}, &errors.ParseError{
				Path:    r.path,
				Line:    r.line,
				Message: fmt.Sprintf("not a code point: %s", text),
				Err:     err,
			}
		}
		return Entry{Line: r.line, Value: v, Text: text}, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Entry{}, fmt.Errorf("read code list: %w", err)
	}
	return Entry{}, io.EOF
}

// ParsePoint parses a single code-point token: U+XXXX, 0x-prefixed hex,
// or decimal. Range and surrogate validation is left to the scalar
// constructors so that out-of-range values fail with the right kind.
func ParsePoint(tok string) (int64, error) {
	switch {
	case strings.HasPrefix(tok, "U+"), strings.HasPrefix(tok, "u+"):
		return strconv.ParseInt(tok[2:], 16, 64)
	case strings.HasPrefix(tok, "0x"), strings.HasPrefix(tok, "0X"):
		return strconv.ParseInt(tok[2:], 16, 64)
	default:
		return strconv.ParseInt(tok, 10, 64)
	}
}
