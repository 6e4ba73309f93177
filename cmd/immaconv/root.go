package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/imma-etl/internal/imma"
	"github.com/couchcryptid/imma-etl/internal/observability"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootOptions struct {
	logLevel  string
	logFormat string
	strict    bool
	output    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "immaconv",
		Short: "Convert and check IMMA marine observation records",
		Long: `immaconv reads IMMA files, one record per line, and converts them to JSON
lines or back again.

Records that cannot be decoded are logged to stderr and skipped. With
--strict the first failure stops the command with a non-zero exit status.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format: text, json")
	pf.BoolVar(&opts.strict, "strict", false, "stop at the first record that fails")
	pf.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	cmd.AddCommand(
		newDecodeCmd(opts),
		newEncodeCmd(opts),
		newCheckCmd(opts),
		newObserveCmd(opts),
	)
	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	return observability.NewLoggerTo(cmd.ErrOrStderr(), o.logLevel, o.logFormat)
}

// openInput returns the file named by args, or the command's stdin.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	return f, nil
}

// openOutput returns the -o file, or the command's stdout.
func (o *rootOptions) openOutput(cmd *cobra.Command) (io.WriteCloser, error) {
	if o.output == "" || o.output == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(o.output)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// stats counts the outcome of a streaming command.
type stats struct {
	ok     int
	failed int
}

// eachRecord decodes every line of in and calls fn with the record and its
// raw text. Decode failures are logged and skipped unless strict is set.
func eachRecord(in io.Reader, strict bool, logger *slog.Logger, fn func(line int, text string, rec *imma.Record) error) (stats, error) {
	var s stats
	r := imma.NewReader(in)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err == nil {
			err = fn(r.Line(), r.Text(), rec)
		}
		if err != nil {
			if !isFormatError(err) {
				return s, err
			}
			s.failed++
			if strict {
				return s, err
			}
			logger.Warn("skipping record", "line", r.Line(), "error", err)
			continue
		}
		s.ok++
	}
}

// isFormatError reports whether err describes a bad record rather than a
// failure of the input or output stream.
func isFormatError(err error) bool {
	return errors.Is(err, imma.ErrBadFormat) ||
		errors.Is(err, imma.ErrValueKind) ||
		errors.Is(err, imma.ErrFieldWidth) ||
		errors.Is(err, errBadJSON)
}
