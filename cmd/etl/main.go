// Command etl consumes raw IMMA lines from Kafka, decodes and enriches them,
// and publishes marine observations as JSON to the sink topic.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/imma-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/imma-etl/internal/adapter/kafka"
	"github.com/couchcryptid/imma-etl/internal/config"
	"github.com/couchcryptid/imma-etl/internal/observability"
	"github.com/couchcryptid/imma-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, observability.NewLogger(cfg)); err != nil {
		os.Exit(1)
	}
}

// run starts the pipeline and the HTTP server and blocks until ctx is done.
// The pipeline is drained before the Kafka clients are closed so that no
// batch is committed against a closed reader.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pipelineCtx, stopPipeline := context.WithCancel(ctx)
	defer stopPipeline()

	metrics := observability.NewMetrics()

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(logger, metrics, cfg.RejectNonCanonical)
	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)
	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	srvErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
	}()

	pipelineDone := make(chan struct{})
	go func() {
		defer close(pipelineDone)
		if err := p.Run(pipelineCtx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	logger.Info("imma-etl started",
		"source_topic", cfg.KafkaSourceTopic,
		"sink_topic", cfg.KafkaSinkTopic,
		"reject_non_canonical", cfg.RejectNonCanonical,
		"compression", cfg.KafkaCompression,
	)

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down", "reason", context.Cause(ctx))
	case runErr = <-srvErr:
		logger.Error("http server error", "error", runErr)
	}
	stopPipeline()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	select {
	case <-pipelineDone:
	case <-shutdownCtx.Done():
		logger.Warn("pipeline did not stop before the shutdown timeout")
	}

	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
	return runErr
}
