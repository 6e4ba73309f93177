package imma

import (
	"fmt"
	"strconv"
	"strings"
)

// Decode parses one IMMA line. The core segment is read first; each following
// segment announces its own attachment ID and length in a 4-character header.
// A blank or zero length marks a variable-length segment that runs to the end
// of the line and ends the chain. Short segments are padded with blanks, so an
// attachment whose trailing fields were trimmed still decodes.
func Decode(line string) (*Record, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, ErrNoData
	}

	rec := NewRecord()
	id, length := CoreID, CoreWidth
	for {
		a := registry[id]
		if length > 0 && len(line) < length {
			line += strings.Repeat(" ", length-len(line))
		}

		segment := line
		if length > 0 {
			segment = line[:length]
		}
		a.decodeInto(segment, rec.Values)
		rec.Attachments = append(rec.Attachments, id)

		if length == 0 {
			break
		}
		line = line[length:]
		if strings.TrimSpace(line) == "" {
			break
		}

		var err error
		id, length, err = readHeader(line)
		if err != nil {
			return nil, err
		}
		line = line[min(headerWidth, len(line)):]
	}
	return rec, nil
}

// readHeader parses the ID(2) + length(2) prefix of a chained attachment and
// returns the payload length, zero for variable-length segments.
func readHeader(line string) (id, length int, err error) {
	if len(line) < headerWidth {
		line += strings.Repeat(" ", headerWidth-len(line))
	}

	idText := strings.TrimSpace(line[0:2])
	id, err = strconv.Atoi(idText)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: attachment ID %q is not numeric", ErrBadFormat, line[0:2])
	}
	if _, ok := registry[id]; !ok {
		return 0, 0, &UnsupportedAttachmentError{ID: id}
	}
	if id == CoreID {
		return 0, 0, fmt.Errorf("%w: core segment repeated", ErrBadFormat)
	}

	lengthText := strings.TrimSpace(line[2:4])
	if lengthText == "" {
		return id, 0, nil
	}
	total, err := strconv.Atoi(lengthText)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: attachment %d length %q is not numeric", ErrBadFormat, id, line[2:4])
	}
	switch {
	case total == 0:
		return id, 0, nil
	case total <= headerWidth:
		return 0, 0, fmt.Errorf("%w: attachment %d declares length %d", ErrBadFormat, id, total)
	}
	return id, total - headerWidth, nil
}

// decodeInto reads every parameter of a from segment, left to right.
func (a *Attachment) decodeInto(segment string, values map[string]Value) {
	pos := 0
	for _, name := range a.params {
		f := a.fields[name]
		var raw string
		if f.Width > 0 {
			raw = substr(segment, pos, pos+f.Width)
			pos += f.Width
		} else {
			raw = substr(segment, pos, len(segment))
			pos = len(segment)
		}
		values[name] = DecodeField(raw, f)
	}
}

func substr(s string, from, to int) string {
	from = min(from, len(s))
	to = min(to, len(s))
	return s[from:to]
}
