package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

type stateLookup interface {
	Lookup(ctx context.Context, variant, id string) (*entity.StateRecord, error)
	Summary(ctx context.Context, variant string) (*entity.Summary, error)
}

type handlers struct {
	logger *slog.Logger
	lookup stateLookup
}

type errorResponse struct {
	Error string `json:"error"`
}

// getState - GET /states/{variant}/{id}
func (that *handlers) getState(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "getState")

	variant, id := r.PathValue("variant"), r.PathValue("id")

	record, err := that.lookup.Lookup(r.Context(), variant, id)
	if err != nil {
		status := statusOf(err)
		if status == http.StatusInternalServerError {
			log.Error("failed to look up state", "variant", variant, "id", id, "error", err)
		}

		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// getSummary - GET /summaries/{variant}
func (that *handlers) getSummary(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "getSummary")

	variant := r.PathValue("variant")

	summary, err := that.lookup.Summary(r.Context(), variant)
	if err != nil {
		status := statusOf(err)
		if status == http.StatusInternalServerError {
			log.Error("failed to get summary", "variant", variant, "error", err)
		}

		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidVariant), errors.Is(err, apperror.ErrInvalidBoard):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrStateNotFound), errors.Is(err, apperror.ErrSummaryNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
