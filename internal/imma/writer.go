package imma

import (
	"fmt"
	"io"
)

// Writer encodes records as IMMA lines.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes rec and writes it followed by a newline.
func (w *Writer) Write(rec *Record) error {
	line, err := rec.Encode()
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if _, err := io.WriteString(w.w, line); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
