package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/kozaktomas/mrzname/internal/database"
	"github.com/kozaktomas/mrzname/internal/extract"
	"github.com/kozaktomas/mrzname/internal/ftm"
	"github.com/kozaktomas/mrzname/internal/metrics"
	"github.com/kozaktomas/mrzname/internal/pipeline"
)

// ExtractHandler turns posted FTM entities into person records
type ExtractHandler struct {
	extractor *extract.Extractor
	workers   int
	logger    *zap.SugaredLogger
	metrics   *metrics.Metrics
}

// NewExtractHandler creates a new extract handler
func NewExtractHandler(x *extract.Extractor, workers int, logger *zap.SugaredLogger, m *metrics.Metrics) *ExtractHandler {
	return &ExtractHandler{
		extractor: x,
		workers:   workers,
		logger:    logger,
		metrics:   m,
	}
}

// ExtractResponse is the body returned by Extract
type ExtractResponse struct {
	RunID        string                     `json:"run_id"`
	Records      []extract.PersonRecord     `json:"records"`
	MissingLatin []extract.MissingLatinName `json:"missing_latin"`
	Count        int                        `json:"count"`
	Stored       bool                       `json:"stored"`
}

// Extract handles POST /api/v1/extract. The body holds one entity, an array
// of entities, an {"entities": [...]} wrapper or NDJSON. Query parameters:
// filter_passports=true keeps only persons with a passport, store=true
// persists the run when a database is configured.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	entities, err := ftm.Parse(body)
	if err != nil || (len(entities) == 0 && !json.Valid(body)) {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	filter, _ := strconv.ParseBool(r.URL.Query().Get("filter_passports"))
	store, _ := strconv.ParseBool(r.URL.Query().Get("store"))
	if store && !database.IsInitialized() {
		respondError(w, http.StatusServiceUnavailable, "storage is not configured")
		return
	}

	out, err := pipeline.Run(r.Context(), h.extractor, entities, pipeline.Options{
		Workers:         h.workers,
		FilterPassports: filter,
		Logger:          h.logger,
		Metrics:         h.metrics,
	})
	if err != nil {
		h.logger.Warnw("extraction aborted", "error", sanitizeForLog(err.Error()))
		respondError(w, http.StatusServiceUnavailable, "extraction aborted")
		return
	}

	resp := ExtractResponse{
		RunID:        out.RunID.String(),
		Records:      orEmptyRecords(out.Records),
		MissingLatin: orEmptyMissing(out.MissingLatin),
		Count:        len(out.Records),
	}

	if store {
		writer, err := database.GetRunWriter(r.Context())
		if err != nil {
			respondError(w, http.StatusServiceUnavailable, "storage is not configured")
			return
		}
		run := database.StoredRun{ID: out.RunID, Source: runSource(r, "api"), Entities: out.Entities}
		if err := writer.SaveRun(r.Context(), run, out.Records, out.MissingLatin); err != nil {
			h.logger.Errorw("failed to store run", "run_id", out.RunID, "error", err)
			respondError(w, http.StatusInternalServerError, "failed to store run")
			return
		}
		resp.Stored = true
	}

	respondJSON(w, http.StatusOK, resp)
}
