package imma

import (
	"errors"
	"fmt"
)

var (
	// ErrBadFormat marks lines whose attachment chain cannot be followed.
	ErrBadFormat = errors.New("bad IMMA string")

	// ErrNoData is returned when there is nothing to decode.
	ErrNoData = fmt.Errorf("%w: no data to decode", ErrBadFormat)

	// ErrValueKind is returned when a value cannot be encoded with its field's encoding.
	ErrValueKind = errors.New("value kind does not match field encoding")

	// ErrFieldWidth is returned when a value renders wider than its fixed-width field.
	ErrFieldWidth = errors.New("value does not fit field width")
)

// UnsupportedAttachmentError reports an attachment ID missing from the registry.
type UnsupportedAttachmentError struct {
	ID int
}

func (e *UnsupportedAttachmentError) Error() string {
	return fmt.Sprintf("%s: unsupported attachment ID %d", ErrBadFormat, e.ID)
}

func (e *UnsupportedAttachmentError) Is(target error) bool {
	return target == ErrBadFormat
}
