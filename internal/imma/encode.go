package imma

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Encode renders the record as one IMMA line terminated by "\n". Attachments
// are written in the order they appear in r.Attachments; parameters missing
// from r.Values are written as blanks.
func (r *Record) Encode() (string, error) {
	if len(r.Attachments) == 0 || r.Attachments[0] != CoreID {
		return "", fmt.Errorf("%w: record must start with the core segment", ErrBadFormat)
	}
	if i := slices.Index(r.Attachments, SupplementalID); i >= 0 && i != len(r.Attachments)-1 {
		return "", fmt.Errorf("%w: supplemental attachment must be last", ErrBadFormat)
	}

	var b strings.Builder
	for i, id := range r.Attachments {
		a, ok := registry[id]
		if !ok {
			return "", &UnsupportedAttachmentError{ID: id}
		}
		payload, err := a.encode(r.Values)
		if err != nil {
			return "", fmt.Errorf("encode attachment %d: %w", id, err)
		}

		switch {
		case i == 0:
			b.WriteString(payload)
		case id == CoreID:
			return "", fmt.Errorf("%w: core segment repeated", ErrBadFormat)
		case id == SupplementalID:
			fmt.Fprintf(&b, "%2d 0%s", id, payload)
		default:
			fmt.Fprintf(&b, "%2d%2d%s", id, len(payload)+headerWidth, payload)
		}
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace) + "\n", nil
}

func (a *Attachment) encode(values map[string]Value) (string, error) {
	var b strings.Builder
	for _, name := range a.params {
		s, err := EncodeField(values[name], a.fields[name])
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
