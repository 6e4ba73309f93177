// Package imma decodes and encodes IMMA (International Maritime Meteorological
// Archive) records.
//
// # Record Layout
//
// A record is one line of text: a mandatory 108-character core segment
// followed by zero or more attachments. Every attachment after the core starts
// with a 4-character header:
//
//	[ID(2)][LENGTH(2)][payload]
//
// LENGTH counts the header itself, so the payload is LENGTH-4 characters. The
// supplemental attachment (99) is written with a length of " 0" and consumes
// the remainder of the line; a blank or zero length always ends the chain.
//
// Known attachments:
//
//	00 core          108 characters, no header
//	01 icoads        ICOADS identification and quality control
//	02 immt2         IMMT-2 ship and observing practice fields
//	03 mqc           model quality control (legacy layout)
//	04 metadata      WMO Publication 47 ship metadata
//	05 historical    historical, pre-1950 field conventions
//	06 mqc           model quality control
//	99 supplemental  free-form trailer
//
// # Field Encoding
//
// Each parameter has a fixed width and one of three encodings:
//
//	Integer    right-justified decimal, optionally scaled (LAT " -900" is -9.00)
//	Base36     one character of 0-9A-Z standing for 0-35
//	Character  left-justified text, kept verbatim
//
// A field made only of blanks is undefined. Integer fields holding a lone "-",
// embedded blanks or unparseable text are also undefined; decoding never fails
// because of field contents. Decode errors come only from the attachment
// chain: an empty line, a malformed header, or an ID missing from the registry.
//
// # Usage
//
//	rec, err := imma.Decode(line)
//	if err != nil {
//	    return err
//	}
//	lat, _ := rec.Get("LAT").AsFloat()
//
//	out, err := rec.Encode() // "...\n"
//
// # Thread Safety
//
// The schema registry is built at init and never modified, so Decode and
// Encode may be called from any number of goroutines. A Record is owned by its
// caller and must not be shared without synchronisation.
package imma
