package domain

import (
	"context"
	"time"

	"github.com/couchcryptid/imma-etl/internal/imma"
)

// RawEvent represents an unprocessed message from the source topic. Value
// holds one IMMA line.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Geo represents a WGS-84 latitude/longitude coordinate pair. Longitude is
// normalised to -180..180.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Source identifies where an observation came from in the ICOADS archive.
// It is only set when the record carries the 01 attachment.
type Source struct {
	Deck         int `json:"deck,omitempty"`
	SourceID     int `json:"source_id,omitempty"`
	PlatformType int `json:"platform_type,omitempty"`
}

// Observation is the domain representation of one decoded IMMA record.
type Observation struct {
	ID          string       `json:"id"`
	PlatformID  string       `json:"platform_id,omitempty"`
	Attachments []string     `json:"attachments"`
	ObservedAt  time.Time    `json:"observed_at,omitzero"`
	TimeBucket  time.Time    `json:"time_bucket,omitzero"`
	Geo         *Geo         `json:"geo,omitempty"`
	Source      *Source      `json:"source,omitempty"`
	Record      *imma.Record `json:"record"`

	// Line is the re-encoded form of the record without its trailing newline.
	// Canonical reports whether the input line was already in that form.
	Line      string `json:"line"`
	Canonical bool   `json:"canonical"`

	RawPayload  []byte    `json:"-"`
	ProcessedAt time.Time `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
