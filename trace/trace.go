// Package trace reads address trace files, one logical address per line.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A Scanner produces the logical addresses of a trace, in file order. The
// stream is lazy, finite, and cannot be restarted.
//
// Use it like a bufio.Scanner: call Scan until it returns false, then check
// Err.
type Scanner struct {
	file    *os.File
	scanner *bufio.Scanner
	line    int
	addr    uint64
	err     error
}

// Open opens a trace file for scanning.
func Open(path string) (*Scanner, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input unavailable: %w", err)
	}

	s := NewScanner(file)
	s.file = file

	return s, nil
}

// NewScanner scans a trace from an io.Reader.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		scanner: bufio.NewScanner(r),
	}
}

// Scan advances to the next address in the trace. It returns false when the
// trace is exhausted or a line cannot be parsed.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.scanner.Scan() {
		s.line++

		text := strings.TrimSpace(s.scanner.Text())
		if text == "" {
			continue
		}

		addr, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			s.err = fmt.Errorf("line %d: bad address %q", s.line, text)
			return false
		}

		s.addr = addr

		return true
	}

	s.err = s.scanner.Err()

	return false
}

// Address returns the address produced by the last successful Scan.
func (s *Scanner) Address() uint64 {
	return s.addr
}

// Err returns the first error hit while scanning, or nil on clean
// exhaustion.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying file, if the scanner owns one.
func (s *Scanner) Close() error {
	if s.file == nil {
		return nil
	}

	return s.file.Close()
}
