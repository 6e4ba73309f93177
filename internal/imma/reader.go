package imma

import (
	"bufio"
	"fmt"
	"io"
)

const maxLineSize = 1 << 20

// Reader decodes IMMA records from a line-oriented stream.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Reader{scanner: sc}
}

// Read decodes the next line. It returns io.EOF when the input is exhausted.
// A decode error applies to the current line only; callers may log it and
// call Read again. Empty lines are skipped.
func (r *Reader) Read() (*Record, error) {
	for r.scanner.Scan() {
		r.line++
		text := r.scanner.Text()
		if text == "" {
			continue
		}
		rec, err := Decode(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return nil, io.EOF
}

// Line returns the number of the line most recently read.
func (r *Reader) Line() int {
	return r.line
}

// Text returns the raw text of the line most recently read.
func (r *Reader) Text() string {
	return r.scanner.Text()
}
