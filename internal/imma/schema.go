package imma

import (
	"fmt"
	"slices"
)

// Encoding identifies how a field is represented on disc. The numeric codes
// match the ones used by the published IMMA field tables.
type Encoding uint8

const (
	Integer   Encoding = 1
	Base36    Encoding = 2
	Character Encoding = 3
)

func (e Encoding) String() string {
	switch e {
	case Integer:
		return "integer"
	case Base36:
		return "base36"
	case Character:
		return "character"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// Well-known attachment IDs.
const (
	CoreID         = 0
	SupplementalID = 99

	// CoreWidth is the fixed width of the core segment. Unlike every other
	// attachment the core carries no ID/length header.
	CoreWidth = 108

	// headerWidth is the ID(2) + length(2) prefix of non-core attachments.
	headerWidth = 4
)

// Range is an informational value range. It is not enforced when decoding.
type Range struct {
	Min float64
	Max float64
}

// Field describes how one parameter is laid out on disc.
type Field struct {
	Name string
	// Width in bytes. Zero means the field consumes the rest of the segment.
	Width int
	// Range and AltRange are nil when the table leaves them undefined.
	Range    *Range
	AltRange *Range
	// Scale is zero when undefined.
	Scale    float64
	Encoding Encoding
}

// HasScale reports whether the definition carries a units scale.
func (f Field) HasScale() bool { return f.Scale != 0 }

// Attachment is a read-only view of one registry entry.
type Attachment struct {
	id     int
	name   string
	params []string
	fields map[string]Field
}

func (a Attachment) ID() int      { return a.id }
func (a Attachment) Name() string { return a.name }

// Params returns the parameter names in on-disc order.
func (a Attachment) Params() []string { return slices.Clone(a.params) }

// Field returns the definition of name. Definitions may exist for names that
// are not in Params (06 FBSRC).
func (a Attachment) Field(name string) (Field, bool) {
	f, ok := a.fields[name]
	return f, ok
}

// Width returns the payload width of the attachment excluding its header, or
// zero when the attachment has a variable-length trailing field.
func (a Attachment) Width() int {
	total := 0
	for _, p := range a.params {
		w := a.fields[p].Width
		if w == 0 {
			return 0
		}
		total += w
	}
	return total
}

// Lookup returns the registry entry for id.
func Lookup(id int) (Attachment, bool) {
	a, ok := registry[id]
	if !ok {
		return Attachment{}, false
	}
	return *a, true
}

// IDs returns the known attachment IDs in ascending order.
func IDs() []int {
	ids := make([]int, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// fieldOf finds the definition of a parameter across the given attachments.
func fieldOf(name string, attachments []int) (Field, bool) {
	for _, id := range attachments {
		a, ok := registry[id]
		if !ok || !slices.Contains(a.params, name) {
			continue
		}
		return a.fields[name], true
	}
	return Field{}, false
}

var registry = map[int]*Attachment{}

func register(id int, name string, params []string, fields ...Field) {
	a := &Attachment{id: id, name: name, params: params, fields: make(map[string]Field, len(fields))}
	for _, f := range fields {
		a.fields[f.Name] = f
	}
	for _, p := range params {
		if _, ok := a.fields[p]; !ok {
			panic(fmt.Sprintf("imma: attachment %02d parameter %s has no field definition", id, p))
		}
	}
	registry[id] = a
}

func rng(lo, hi float64) *Range { return &Range{Min: lo, Max: hi} }

func def(name string, width int, r, alt *Range, scale float64, enc Encoding) Field {
	return Field{Name: name, Width: width, Range: r, AltRange: alt, Scale: scale, Encoding: enc}
}
