package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/imma-etl/internal/domain"
	"github.com/couchcryptid/imma-etl/internal/imma"
	"github.com/couchcryptid/imma-etl/internal/observability"
)

// ErrNonCanonical is returned for records whose input line differs from its
// re-encoding when the transformer runs in strict mode.
var ErrNonCanonical = errors.New("record is not in canonical form")

// ObservationTransformer implements Transformer using the domain transform
// functions and records per-record metrics.
type ObservationTransformer struct {
	logger             *slog.Logger
	metrics            *observability.Metrics
	rejectNonCanonical bool
}

// NewTransformer creates an ObservationTransformer. When rejectNonCanonical
// is set, records that do not survive a byte-exact round trip are failed.
func NewTransformer(logger *slog.Logger, metrics *observability.Metrics, rejectNonCanonical bool) *ObservationTransformer {
	return &ObservationTransformer{
		logger:             logger,
		metrics:            metrics,
		rejectNonCanonical: rejectNonCanonical,
	}
}

// Transform decodes, enriches and serializes one IMMA line.
func (t *ObservationTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	obs, err := domain.ParseRawEvent(raw)
	if err != nil {
		t.metrics.DecodeErrors.WithLabelValues(decodeFailureReason(err)).Inc()
		return domain.OutputEvent{}, err
	}

	for _, name := range obs.Attachments {
		t.metrics.AttachmentsDecoded.WithLabelValues(name).Inc()
	}

	if !obs.Canonical {
		t.metrics.NonCanonicalRecords.Inc()
		if t.rejectNonCanonical {
			return domain.OutputEvent{}, fmt.Errorf("observation %s: %w", obs.ID, ErrNonCanonical)
		}
		t.logger.Debug("record re-encodes differently",
			"id", obs.ID,
			"offset", raw.Offset,
		)
	}

	obs = domain.EnrichObservation(obs)
	return domain.SerializeObservation(obs)
}

// decodeFailureReason maps a decode error to a DecodeErrors label.
func decodeFailureReason(err error) string {
	var unsupported *imma.UnsupportedAttachmentError
	switch {
	case errors.Is(err, imma.ErrNoData):
		return observability.ReasonNoData
	case errors.As(err, &unsupported):
		return observability.ReasonUnsupportedAttachment
	case errors.Is(err, imma.ErrBadFormat):
		return observability.ReasonBadFormat
	default:
		return observability.ReasonEncode
	}
}
