package imma

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DecodeBase36 returns the position of s in the base-36 alphabet, or -1 when
// s is not a member of it.
func DecodeBase36(s string) int {
	return strings.Index(base36Alphabet, s)
}

// EncodeBase36 returns the alphabet character for n, or "" when n is outside 0-35.
func EncodeBase36(n int) string {
	if n < 0 || n >= len(base36Alphabet) {
		return ""
	}
	return base36Alphabet[n : n+1]
}

// DecodeField converts the raw text of one field into a Value. Decoding is
// lenient: blank text, a lone sign, embedded spaces and unparseable integers
// all produce Undefined rather than an error.
func DecodeField(raw string, f Field) Value {
	if strings.TrimSpace(raw) == "" {
		return Undefined
	}

	var v Value
	switch f.Encoding {
	case Base36:
		v = IntValue(DecodeBase36(raw))
	case Integer:
		s := strings.TrimSpace(raw)
		if s == "-" || strings.Contains(s, " ") {
			return Undefined
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return Undefined
		}
		v = IntValue(n)
	default:
		return TextValue(strings.TrimRight(raw, "\n"))
	}

	if f.HasScale() && f.Scale != 1 {
		return RealValue(float64(v.i) * f.Scale)
	}
	return v
}

// EncodeField renders v as the fixed-width text of f. Undefined values become
// blanks of the field width. Values too wide for the field fail with
// ErrFieldWidth.
func EncodeField(v Value, f Field) (string, error) {
	if !v.IsDefined() {
		if f.Width > 0 {
			return strings.Repeat(" ", f.Width), nil
		}
		return " ", nil
	}

	switch f.Encoding {
	case Base36:
		n, err := scaledInt(v, f)
		if err != nil {
			return "", err
		}
		return padRight(EncodeBase36(n), f.Width), nil
	case Integer:
		n, err := scaledInt(v, f)
		if err != nil {
			return "", err
		}
		if f.Width > 0 {
			return fitWidth(fmt.Sprintf("%*d", f.Width, n), f)
		}
		return strconv.Itoa(n), nil
	default:
		return fitWidth(padRight(v.String(), f.Width), f)
	}
}

// fitWidth rejects text that would spill into the next field.
func fitWidth(s string, f Field) (string, error) {
	if f.Width > 0 && len(s) > f.Width {
		return "", fmt.Errorf("%w: %s needs %d characters, field is %d", ErrFieldWidth, f.Name, len(s), f.Width)
	}
	return s, nil
}

// scaledInt converts a numeric value to the integer units stored on disc,
// rounding half away from zero.
func scaledInt(v Value, f Field) (int, error) {
	x, ok := v.AsFloat()
	if !ok {
		return 0, fmt.Errorf("%w: %s value for %s field %s", ErrValueKind, v.Kind(), f.Encoding, f.Name)
	}
	if !f.HasScale() {
		n, _ := v.AsInt()
		return n, nil
	}
	return int(math.Round(x / f.Scale)), nil
}

func padRight(s string, width int) string {
	if width <= 0 || len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
