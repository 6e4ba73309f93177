package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/couchcryptid/imma-etl/internal/imma"
	"github.com/spf13/cobra"
)

const maxJSONLine = 4 << 20

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [input.jsonl]",
		Short: "Encode JSON lines back to IMMA records",
		Long: `Encode JSON lines in the form written by decode back into IMMA records.

Attachments are written in the order listed. Parameters that are missing or
null are written as blanks. Reads stdin when no input file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)

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

			w := imma.NewWriter(out)
			sc := bufio.NewScanner(in)
			sc.Buffer(make([]byte, 0, 64*1024), maxJSONLine)

			var s stats
			line := 0
			for sc.Scan() {
				line++
				text := strings.TrimSpace(sc.Text())
				if text == "" {
					continue
				}

				err := encodeLine(w, text)
				if err == nil {
					s.ok++
					continue
				}
				if !isFormatError(err) {
					return fmt.Errorf("line %d: %w", line, err)
				}
				s.failed++
				if opts.strict {
					return fmt.Errorf("line %d: %w", line, err)
				}
				logger.Warn("skipping record", "line", line, "error", err)
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			logger.Info("encode finished", "records", s.ok, "failed", s.failed)
			return nil
		},
	}
}

// errBadJSON marks input lines that are not a record in the form written by
// decode.
var errBadJSON = errors.New("bad JSON record")

func encodeLine(w *imma.Writer, text string) error {
	var rec imma.Record
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return fmt.Errorf("%w: %w", errBadJSON, err)
	}
	return w.Write(&rec)
}
