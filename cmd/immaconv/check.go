package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/imma-etl/internal/imma"
	"github.com/spf13/cobra"
)

// maxReported caps how many problem lines are listed in the report.
const maxReported = 20

// checkReport tracks records that did not re-encode to their input.
type checkReport struct {
	stats
	nonCanonical int
	problems     []string
}

func (r *checkReport) problemf(format string, args ...any) {
	if len(r.problems) < maxReported {
		r.problems = append(r.problems, fmt.Sprintf(format, args...))
	}
}

func (r *checkReport) passed(strict bool) bool {
	return r.failed == 0 && (!strict || r.nonCanonical == 0)
}

func (r *checkReport) write(w io.Writer) {
	fmt.Fprintf(w, "records:       %d\n", r.ok+r.failed)
	fmt.Fprintf(w, "canonical:     %d\n", r.ok-r.nonCanonical)
	fmt.Fprintf(w, "non-canonical: %d\n", r.nonCanonical)
	fmt.Fprintf(w, "failed:        %d\n", r.failed)
	for _, p := range r.problems {
		fmt.Fprintf(w, "  %s\n", p)
	}
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [input.imma]",
		Short: "Verify that every record re-encodes to its input line",
		Long: `Decode and re-encode every record and compare the result with the input
line. Lines that differ are reported as non-canonical; lines that cannot be
decoded are reported as failed.

The command fails when any line failed, or with --strict when any line is
non-canonical.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			out, err := opts.openOutput(cmd)
			if err != nil {
				return err
			}
			defer out.Close()

			report, err := runCheck(in)
			if err != nil {
				return err
			}
			report.write(out)
			if !report.passed(opts.strict) {
				return fmt.Errorf("check failed: %d failed, %d non-canonical", report.failed, report.nonCanonical)
			}
			return nil
		},
	}
}

func runCheck(in io.Reader) (*checkReport, error) {
	report := &checkReport{}
	r := imma.NewReader(in)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return report, nil
		}
		if err != nil {
			if !isFormatError(err) {
				return nil, err
			}
			report.failed++
			report.problemf("%v", err)
			continue
		}

		encoded, err := rec.Encode()
		if err != nil {
			report.failed++
			report.problemf("line %d: %v", r.Line(), err)
			continue
		}
		report.ok++

		input := strings.TrimRight(r.Text(), "\r\n")
		if got := strings.TrimSuffix(encoded, "\n"); got != input {
			report.nonCanonical++
			report.problemf("line %d: non-canonical at column %d", r.Line(), firstDifference(input, got)+1)
		}
	}
}

// firstDifference returns the index of the first byte at which a and b differ.
func firstDifference(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
