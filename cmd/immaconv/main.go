// Command immaconv converts IMMA marine observation files to and from JSON
// lines and checks that every record survives a byte-exact round trip.
//
// Usage:
//
//	immaconv decode ICOADS_R3_199807.imma > records.jsonl
//	immaconv encode records.jsonl -o rebuilt.imma
//	immaconv check ICOADS_R3_199807.imma
//	immaconv observe --processed-at 2026-03-01T00:00:00Z ICOADS_R3_199807.imma
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
