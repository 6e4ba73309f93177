package imma

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Record is one IMMA observation: the attachments present, in line order,
// and the values of their parameters keyed by parameter name.
type Record struct {
	Attachments []int
	Values      map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{Values: make(map[string]Value)}
}

// Get returns the value of name, Undefined when absent.
func (r *Record) Get(name string) Value {
	return r.Values[name]
}

// Set stores v under name.
func (r *Record) Set(name string, v Value) {
	if r.Values == nil {
		r.Values = make(map[string]Value)
	}
	r.Values[name] = v
}

// HasAttachment reports whether the record carries attachment id.
func (r *Record) HasAttachment(id int) bool {
	return slices.Contains(r.Attachments, id)
}

// AddAttachment appends id to the record and sets every parameter it owns
// to Undefined.
func (r *Record) AddAttachment(id int) error {
	a, ok := registry[id]
	if !ok {
		return &UnsupportedAttachmentError{ID: id}
	}
	if r.HasAttachment(id) {
		return fmt.Errorf("attachment %d already present", id)
	}
	r.Attachments = append(r.Attachments, id)
	for _, p := range a.params {
		r.Set(p, Undefined)
	}
	return nil
}

type recordJSON struct {
	Attachments []int            `json:"attachments"`
	Values      map[string]Value `json:"values"`
}

// MarshalJSON writes the record as {"attachments": [...], "values": {...}}.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{Attachments: r.Attachments, Values: r.Values})
}

// UnmarshalJSON reads the form written by MarshalJSON. Numbers are coerced to
// the kind decoding would produce for their field.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, id := range raw.Attachments {
		if _, ok := registry[id]; !ok {
			return &UnsupportedAttachmentError{ID: id}
		}
	}
	values := make(map[string]Value, len(raw.Values))
	for name, v := range raw.Values {
		if f, ok := fieldOf(name, raw.Attachments); ok {
			v = coerce(v, f)
		}
		values[name] = v
	}
	r.Attachments = raw.Attachments
	r.Values = values
	return nil
}
