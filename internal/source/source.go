// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/norm"
)

// DefaultMaxLines is the line limit used when none is configured.
const DefaultMaxLines = 2000

// maxLineBytes bounds a single line.
const maxLineBytes = 16 << 20

// Stdin is the path that selects standard input.
const Stdin = "-"

// Options controls how an input is read.
type Options struct {
	// MaxLines refuses inputs with more lines. Zero or negative is unbounded.
	MaxLines int

	// Normalize rewrites every line to Unicode NFC, so that composed and
	// decomposed forms of the same text compare equal.
	Normalize bool
}

// TooLargeError reports an input with more lines than allowed.
type TooLargeError struct {
	Name  string
	Limit int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("%s: more than %d lines", e.Name, e.Limit)
}

// OpenError reports an input that could not be opened.
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open file %s: %v", e.Name, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ReadFile reads the named file. Callers route Stdin to Read themselves.
func ReadFile(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Name: path, Err: err}
	}
	defer f.Close()
	return Read(f, path, opts)
}

// Read reads r to EOF. name is used in errors.
func Read(r io.Reader, name string, opts Options) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	sc.Split(scanLines)

	var lines []string
	for sc.Scan() {
		if opts.MaxLines > 0 && len(lines) >= opts.MaxLines {
			return nil, &TooLargeError{Name: name, Limit: opts.MaxLines}
		}
		line := sc.Text()
		if opts.Normalize {
			line = norm.NFC.String(line)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return lines, nil
}

// scanLines is bufio.ScanLines without the carriage return stripping, so a
// CRLF line and an LF line with the same text still differ.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
