// Package domain models marine surface observations carried as IMMA records.
//
// # Data Source
//
// Observations originate from the International Comprehensive Ocean-Atmosphere
// Data Set (ICOADS), distributed as IMMA text files with one record per line.
// An upstream loader publishes each line unchanged as the value of a Kafka
// message on the source topic. Decoding is delegated to package imma.
//
// # IMMA Conventions
//
// Time:
//
//	YR, MO, DY   calendar date in UTC
//	HR           decimal hour, 0.00-23.99 (1830 on disc is 18.30 = 18:18)
//	A record without a complete valid date has no observation time.
//
// Position:
//
//	LAT   -90.00..90.00, north positive
//	LON   0.00..359.99 east, or -179.99..180.00; normalised here to -180..180
//	Both must be present for a position to be derived.
//
// Platform:
//
//	ID is a 9-character call sign or buoy number, left-justified. Trailing
//	blanks are removed. The 01 (icoads) attachment supplies the deck (DCK),
//	source (SID) and platform type (PT).
//
// # Canonical Lines
//
// Every record is re-encoded after decoding. The re-encoded line is the
// canonical form: blanks are normalised, trailing blanks removed and
// zero-padded integers right-justified. An observation is canonical when its
// input line already matched.
//
// # ID Generation
//
// Observation IDs are a truncated SHA-256 of the canonical line, so replays and
// duplicate deliveries produce the same message key. See [generateID].
package domain
