package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kozaktomas/mrzname/internal/database"
)

// RunsHandler serves stored extraction runs
type RunsHandler struct {
	logger *zap.SugaredLogger
}

// NewRunsHandler creates a new runs handler
func NewRunsHandler(logger *zap.SugaredLogger) *RunsHandler {
	return &RunsHandler{logger: logger}
}

// RunResponse represents a stored run in API responses
type RunResponse struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	Entities     int       `json:"entities"`
	Records      int       `json:"records"`
	MissingLatin int       `json:"missing_latin"`
	CreatedAt    time.Time `json:"created_at"`
}

func runToResponse(run database.StoredRun) RunResponse {
	return RunResponse{
		ID:           run.ID.String(),
		Source:       run.Source,
		Entities:     run.Entities,
		Records:      run.Records,
		MissingLatin: run.MissingLatin,
		CreatedAt:    run.CreatedAt,
	}
}

// List handles GET /api/v1/runs
func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	reader, err := database.GetRunReader(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "storage is not configured")
		return
	}

	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(n, 500)
	}

	runs, err := reader.ListRuns(r.Context(), limit)
	if err != nil {
		h.logger.Errorw("failed to list runs", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}

	result := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		result = append(result, runToResponse(run))
	}
	respondJSON(w, http.StatusOK, result)
}

// Get handles GET /api/v1/runs/{id}
func (h *RunsHandler) Get(w http.ResponseWriter, r *http.Request) {
	reader, id, ok := h.resolve(w, r)
	if !ok {
		return
	}

	run, err := reader.GetRun(r.Context(), id)
	if err != nil {
		h.logger.Errorw("failed to get run", "run_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get run")
		return
	}
	if run == nil {
		respondError(w, http.StatusNotFound, "run not found")
		return
	}
	respondJSON(w, http.StatusOK, runToResponse(*run))
}

// Records handles GET /api/v1/runs/{id}/records
func (h *RunsHandler) Records(w http.ResponseWriter, r *http.Request) {
	reader, id, ok := h.resolve(w, r)
	if !ok {
		return
	}

	run, err := reader.GetRun(r.Context(), id)
	if err != nil {
		h.logger.Errorw("failed to get run", "run_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get run")
		return
	}
	if run == nil {
		respondError(w, http.StatusNotFound, "run not found")
		return
	}

	records, err := reader.GetRecords(r.Context(), id)
	if err != nil {
		h.logger.Errorw("failed to get records", "run_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get records")
		return
	}
	missing, err := reader.GetMissingLatin(r.Context(), id)
	if err != nil {
		h.logger.Errorw("failed to get diagnostics", "run_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get records")
		return
	}

	respondJSON(w, http.StatusOK, ExtractResponse{
		RunID:        id.String(),
		Records:      records,
		MissingLatin: missing,
		Count:        len(records),
		Stored:       true,
	})
}

// resolve returns the run reader and the run id from the URL.
func (h *RunsHandler) resolve(w http.ResponseWriter, r *http.Request) (database.RunReader, uuid.UUID, bool) {
	reader, err := database.GetRunReader(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "storage is not configured")
		return nil, uuid.Nil, false
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid run id")
		return nil, uuid.Nil, false
	}
	return reader, id, true
}
