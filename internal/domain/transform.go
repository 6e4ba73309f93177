package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/imma-etl/internal/imma"
)

// ParseRawEvent decodes the IMMA line carried by a RawEvent into an
// Observation. The record is re-encoded immediately so the canonical line and
// the ID are available to every later stage.
func ParseRawEvent(raw RawEvent) (Observation, error) {
	rec, err := imma.Decode(string(raw.Value))
	if err != nil {
		return Observation{}, fmt.Errorf("parse raw event: %w", err)
	}

	encoded, err := rec.Encode()
	if err != nil {
		return Observation{}, fmt.Errorf("re-encode record: %w", err)
	}
	line := strings.TrimSuffix(encoded, "\n")

	return Observation{
		ID:          generateID(line),
		Attachments: attachmentNames(rec.Attachments),
		Record:      rec,
		Line:        line,
		Canonical:   strings.TrimRight(string(raw.Value), "\r\n") == line,
		RawPayload:  raw.Value,
	}, nil
}

// generateID produces a deterministic ID from the canonical line, so replaying
// the same observation yields the same key downstream.
func generateID(line string) string {
	hash := sha256.Sum256([]byte(line))
	return hex.EncodeToString(hash[:12])
}

func attachmentNames(ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		a, ok := imma.Lookup(id)
		if !ok {
			continue
		}
		names = append(names, a.Name())
	}
	return names
}

// EnrichObservation derives the observation time, position, platform and
// source from the decoded values and stamps the processing time.
func EnrichObservation(obs Observation) Observation {
	if obs.Record == nil {
		obs.ProcessedAt = processingTime()
		return obs
	}
	rec := obs.Record

	obs.PlatformID = derivePlatformID(rec)
	obs.ObservedAt = deriveObservedAt(rec)
	obs.TimeBucket = deriveTimeBucket(obs.ObservedAt)
	obs.Geo = derivePosition(rec)
	obs.Source = deriveSource(rec)
	obs.ProcessedAt = processingTime()
	return obs
}

func derivePlatformID(rec *imma.Record) string {
	id, _ := rec.Get("ID").AsText()
	return strings.TrimSpace(id)
}

// deriveObservedAt combines YR, MO, DY and the decimal hour HR into a UTC
// time. HR is optional; a missing or invalid date yields the zero time.
func deriveObservedAt(rec *imma.Record) time.Time {
	yr, okY := intOf(rec, "YR")
	mo, okM := intOf(rec, "MO")
	dy, okD := intOf(rec, "DY")
	if !okY || !okM || !okD || mo < 1 || mo > 12 || dy < 1 {
		return time.Time{}
	}

	day := time.Date(yr, time.Month(mo), dy, 0, 0, 0, 0, time.UTC)
	if day.Day() != dy {
		return time.Time{}
	}

	hr, ok := rec.Get("HR").AsFloat()
	if !ok || hr < 0 || hr >= 24 {
		return day
	}
	return day.Add(time.Duration(math.Round(hr*60)) * time.Minute)
}

// deriveTimeBucket truncates the observation time to the hour in UTC.
// Returns zero time if the input is zero.
func deriveTimeBucket(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return t.UTC().Truncate(time.Hour)
}

// derivePosition returns nil unless both LAT and LON are defined and in range.
func derivePosition(rec *imma.Record) *Geo {
	lat, okLat := rec.Get("LAT").AsFloat()
	lon, okLon := rec.Get("LON").AsFloat()
	if !okLat || !okLon || lat < -90 || lat > 90 {
		return nil
	}
	return &Geo{Lat: lat, Lon: normalizeLongitude(lon)}
}

// normalizeLongitude maps IMMA longitudes (0..359.99 east, or negative west)
// onto -180..180.
func normalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon, 360)
	switch {
	case lon > 180:
		lon -= 360
	case lon < -180:
		lon += 360
	}
	return math.Round(lon*100) / 100
}

func deriveSource(rec *imma.Record) *Source {
	if !rec.HasAttachment(1) {
		return nil
	}
	deck, _ := intOf(rec, "DCK")
	sid, _ := intOf(rec, "SID")
	pt, _ := intOf(rec, "PT")
	return &Source{Deck: deck, SourceID: sid, PlatformType: pt}
}

// intOf returns a whole-number value of name.
func intOf(rec *imma.Record, name string) (int, bool) {
	f, ok := rec.Get(name).AsFloat()
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// SerializeObservation marshals an Observation into an OutputEvent keyed by
// its ID.
func SerializeObservation(obs Observation) (OutputEvent, error) {
	data, err := json.Marshal(obs)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize observation: %w", err)
	}

	headers := map[string]string{
		"attachments":  strings.Join(obs.Attachments, ","),
		"canonical":    strconv.FormatBool(obs.Canonical),
		"processed_at": obs.ProcessedAt.Format(time.RFC3339),
	}
	if obs.PlatformID != "" {
		headers["platform_id"] = obs.PlatformID
	}
	if !obs.TimeBucket.IsZero() {
		headers["time_bucket"] = obs.TimeBucket.Format(time.RFC3339)
	}

	return OutputEvent{
		Key:     []byte(obs.ID),
		Value:   data,
		Headers: headers,
	}, nil
}
