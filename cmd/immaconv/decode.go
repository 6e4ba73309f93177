package main

import (
	"encoding/json"
	"fmt"

	"github.com/couchcryptid/imma-etl/internal/imma"
	"github.com/spf13/cobra"
)

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [input.imma]",
		Short: "Decode IMMA records to JSON lines",
		Long: `Decode every IMMA record and write one JSON object per line:

  {"attachments":[0,1,99],"values":{"YR":1998,"LAT":45.12,"ID":"WDC6920  ",...}}

Undefined parameters are written as null. Reads stdin when no input file is given.`,
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

			enc := json.NewEncoder(out)
			s, err := eachRecord(in, opts.strict, logger, func(_ int, _ string, rec *imma.Record) error {
				if err := enc.Encode(rec); err != nil {
					return fmt.Errorf("write record: %w", err)
				}
				return nil
			})
			logger.Info("decode finished", "records", s.ok, "failed", s.failed)
			return err
		},
	}
}
