package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/couchcryptid/imma-etl/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

const maxDecodeBody = 1 << 20

// decodeHandler runs one posted IMMA line through the same parse and enrich
// steps as the pipeline and responds with the observation.
func decodeHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDecodeBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "record exceeds 1 MiB")
				return
			}
			writeError(w, http.StatusBadRequest, "read request body")
			return
		}

		obs, err := domain.ParseRawEvent(domain.RawEvent{Value: body})
		if err != nil {
			logger.Debug("decode request rejected", "error", err)
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		sharedobs.WriteJSON(w, http.StatusOK, domain.EnrichObservation(obs))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	sharedobs.WriteJSON(w, status, map[string]string{"error": msg})
}
