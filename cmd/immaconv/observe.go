package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/couchcryptid/imma-etl/internal/domain"
	"github.com/couchcryptid/imma-etl/internal/imma"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

func newObserveCmd(opts *rootOptions) *cobra.Command {
	var processedAt string

	cmd := &cobra.Command{
		Use:   "observe [input.imma]",
		Short: "Write the enriched observations the ETL service would publish",
		Long: `Run every record through the same parse and enrich steps as the ETL service
and write one observation per line as JSON.

Set --processed-at to stamp a fixed processing time, which makes the output
reproducible for test fixtures.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)

			if processedAt != "" {
				at, err := time.Parse(time.RFC3339, processedAt)
				if err != nil {
					return fmt.Errorf("invalid --processed-at: %w", err)
				}
				domain.SetClock(clockwork.NewFakeClockAt(at.UTC()))
				defer domain.SetClock(nil)
			}

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
			s, err := eachRecord(in, opts.strict, logger, func(line int, text string, _ *imma.Record) error {
				obs, err := domain.ParseRawEvent(domain.RawEvent{
					Key:   []byte(fmt.Sprintf("line-%d", line)),
					Value: []byte(text),
				})
				if err != nil {
					return err
				}
				if err := enc.Encode(domain.EnrichObservation(obs)); err != nil {
					return fmt.Errorf("write observation: %w", err)
				}
				return nil
			})
			logger.Info("observe finished", "observations", s.ok, "failed", s.failed)
			return err
		},
	}

	cmd.Flags().StringVar(&processedAt, "processed-at", "", "fixed RFC3339 processing time")
	return cmd
}
