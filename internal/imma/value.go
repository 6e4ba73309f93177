package imma

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the type tag of a Value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindInt
	KindReal
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value holds one decoded parameter. The zero Value is undefined. Values are
// comparable with ==.
type Value struct {
	kind Kind
	i    int
	f    float64
	s    string
}

// Undefined is the value of a blank or unparseable field.
var Undefined = Value{}

// IntValue returns an integer Value.
func IntValue(n int) Value { return Value{kind: KindInt, i: n} }

// RealValue returns a scaled numeric Value.
func RealValue(f float64) Value { return Value{kind: KindReal, f: f} }

// TextValue returns a character Value. s is kept verbatim, padding included.
func TextValue(s string) Value { return Value{kind: KindText, s: s} }

// Kind returns the type tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsDefined reports whether v holds a value.
func (v Value) IsDefined() bool { return v.kind != KindUndefined }

// AsInt returns the value as an integer. Real values are truncated.
func (v Value) AsInt() (int, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindReal:
		return int(v.f), true
	default:
		return 0, false
	}
}

// AsFloat returns the numeric value of an Int or Real.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindReal:
		return v.f, true
	default:
		return 0, false
	}
}

// AsText returns the text of a Text value.
func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindReal:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	default:
		return ""
	}
}

// MarshalJSON writes null, a number or a string depending on the kind of v.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return strconv.AppendInt(nil, int64(v.i), 10), nil
	case KindReal:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil, fmt.Errorf("imma: cannot marshal %v", v.f)
		}
		return json.Marshal(v.f)
	case KindText:
		return json.Marshal(v.s)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts null, a number or a string. Numbers written without a
// fraction or exponent become Int, others Real.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Undefined
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("imma: value must be null, a number or a string: %w", err)
	}
	if !strings.ContainsAny(n.String(), ".eE") {
		i, err := n.Int64()
		if err == nil {
			*v = IntValue(int(i))
			return nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("imma: parse number %s: %w", n, err)
	}
	*v = RealValue(f)
	return nil
}

// coerce adjusts the numeric kind of v to what decoding f would produce, so
// values built by hand compare equal to decoded ones.
func coerce(v Value, f Field) Value {
	if f.Encoding == Character {
		return v
	}
	switch {
	case f.HasScale() && f.Scale != 1 && v.kind == KindInt:
		return RealValue(float64(v.i))
	case (!f.HasScale() || f.Scale == 1) && v.kind == KindReal && v.f == math.Trunc(v.f):
		return IntValue(int(v.f))
	}
	return v
}
