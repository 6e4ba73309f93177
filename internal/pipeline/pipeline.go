package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/imma-etl/internal/domain"
	"github.com/couchcryptid/imma-etl/internal/observability"
)

const commitTimeout = 5 * time.Second

// BatchExtractor reads up to batchSize raw IMMA lines from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer turns one raw IMMA line into a publishable observation.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error)
}

// BatchLoader publishes observations to the sink.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.OutputEvent) error
}

// Pipeline moves IMMA lines from the extractor through the transformer to
// the loader, one batch at a time.
//
// Offsets of a batch are committed only after its observations are loaded,
// in the order they were read. Lines that fail to transform are committed
// with the rest of the batch so one bad record cannot stall a partition.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	batchSize   int
	ready       atomic.Bool
}

// New creates a Pipeline. A batchSize below one is treated as one.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   max(batchSize, 1),
	}
}

// CheckReadiness returns nil once the pipeline has published at least one
// observation.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not published any observations yet")
	}
	return nil
}

// Ready reports whether at least one observation has been published.
func (p *Pipeline) Ready() bool {
	return p.ready.Load()
}

// Run processes batches until ctx is cancelled. Extract and load failures
// are retried with backoff, so Run only returns once it is told to stop.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	retry := newBackoff()
	for ctx.Err() == nil {
		batch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			p.logger.Error("extract batch failed", "error", err, "retry_in", retry.next)
			if !retry.wait(ctx) {
				break
			}
			continue
		}
		retry.reset()

		if len(batch) == 0 {
			continue
		}
		if !p.handleBatch(ctx, batch, retry) {
			break
		}
	}

	p.logger.Info("pipeline stopping", "reason", context.Cause(ctx))
	return nil
}

// handleBatch transforms, loads and commits one batch. It returns false if
// ctx was cancelled before the batch was loaded.
func (p *Pipeline) handleBatch(ctx context.Context, batch []domain.RawEvent, retry *backoff) bool {
	start := time.Now()
	p.metrics.MessagesConsumed.Add(float64(len(batch)))
	p.metrics.BatchSize.Observe(float64(len(batch)))

	observations := p.transformBatch(ctx, batch)
	if len(observations) > 0 {
		if !p.loadWithRetry(ctx, observations, retry) {
			return false
		}
		p.metrics.MessagesProduced.Add(float64(len(observations)))
		p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
		p.ready.Store(true)
	}

	p.commitBatch(ctx, batch)
	p.logger.Debug("batch processed",
		"consumed", len(batch),
		"published", len(observations),
		"skipped", len(batch)-len(observations),
	)
	return true
}

func (p *Pipeline) transformBatch(ctx context.Context, batch []domain.RawEvent) []domain.OutputEvent {
	observations := make([]domain.OutputEvent, 0, len(batch))
	for _, raw := range batch {
		out, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			p.logger.Warn("skipping record",
				"error", err,
				"topic", raw.Topic,
				"partition", raw.Partition,
				"offset", raw.Offset,
			)
			p.metrics.TransformErrors.Inc()
			continue
		}
		observations = append(observations, out)
	}
	return observations
}

// loadWithRetry publishes observations, retrying with backoff until the
// loader succeeds or ctx is cancelled.
func (p *Pipeline) loadWithRetry(ctx context.Context, observations []domain.OutputEvent, retry *backoff) bool {
	for {
		err := p.loader.LoadBatch(ctx, observations)
		if err == nil {
			retry.reset()
			return true
		}
		if ctx.Err() != nil {
			return false
		}
		p.metrics.LoadRetries.Inc()
		p.logger.Error("load batch failed",
			"error", err,
			"batch_size", len(observations),
			"retry_in", retry.next,
		)
		if !retry.wait(ctx) {
			return false
		}
	}
}

// commitBatch commits the offsets of a loaded batch. It survives cancellation
// of ctx so a batch that was published during shutdown is still committed.
func (p *Pipeline) commitBatch(ctx context.Context, batch []domain.RawEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commitTimeout)
	defer cancel()

	for _, raw := range batch {
		if raw.Commit == nil {
			continue
		}
		if err := raw.Commit(ctx); err != nil {
			p.logger.Warn("commit offset failed", "error", err,
				"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
		}
	}
}
