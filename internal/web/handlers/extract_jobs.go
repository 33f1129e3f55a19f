package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kozaktomas/mrzname/internal/database"
	"github.com/kozaktomas/mrzname/internal/extract"
	"github.com/kozaktomas/mrzname/internal/ftm"
	"github.com/kozaktomas/mrzname/internal/metrics"
	"github.com/kozaktomas/mrzname/internal/pipeline"
)

// JobsHandler runs extractions in the background for inputs too large to
// answer within one request.
type JobsHandler struct {
	extractor  *extract.Extractor
	workers    int
	logger     *zap.SugaredLogger
	metrics    *metrics.Metrics
	jobManager *JobManager
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(x *extract.Extractor, workers int, logger *zap.SugaredLogger, m *metrics.Metrics, jm *JobManager) *JobsHandler {
	return &JobsHandler{
		extractor:  x,
		workers:    workers,
		logger:     logger,
		metrics:    m,
		jobManager: jm,
	}
}

// Start handles POST /api/v1/jobs. The body is parsed like Extract's; the
// extraction continues after the response.
func (h *JobsHandler) Start(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	body = bytes.TrimSpace(body)

	entities, err := ftm.Parse(body)
	if err != nil || len(body) == 0 || (len(entities) == 0 && !json.Valid(body)) {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	filter, _ := strconv.ParseBool(r.URL.Query().Get("filter_passports"))
	store, _ := strconv.ParseBool(r.URL.Query().Get("store"))
	if store && !database.IsInitialized() {
		respondError(w, http.StatusServiceUnavailable, "storage is not configured")
		return
	}

	job := h.jobManager.CreateJob(uuid.New().String(), len(entities), filter, store)
	job.Source = runSource(r, "api-job")
	go h.runJob(job, entities)

	respondJSON(w, http.StatusAccepted, job.View())
}

// List handles GET /api/v1/jobs, newest first.
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs := h.jobManager.ListJobs()
	views := make([]JobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, job.View())
	}
	slices.SortFunc(views, func(a, b JobView) int {
		return b.StartedAt.Compare(a.StartedAt)
	})
	respondJSON(w, http.StatusOK, views)
}

// Status handles GET /api/v1/jobs/{jobId}
func (h *JobsHandler) Status(w http.ResponseWriter, r *http.Request) {
	job := h.lookup(w, r)
	if job == nil {
		return
	}
	respondJSON(w, http.StatusOK, job.View())
}

// Result handles GET /api/v1/jobs/{jobId}/result
func (h *JobsHandler) Result(w http.ResponseWriter, r *http.Request) {
	job := h.lookup(w, r)
	if job == nil {
		return
	}
	result := job.GetResult()
	if result == nil {
		respondError(w, http.StatusConflict, "job has not completed")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Events streams job events via SSE
func (h *JobsHandler) Events(w http.ResponseWriter, r *http.Request) {
	streamSSEEvents(w, r,
		func(id string) SSEJob {
			job := h.jobManager.GetJob(id)
			if job == nil {
				return nil
			}
			return job
		},
		func(job SSEJob) any {
			return job.(*ExtractJob).View()
		},
	)
}

// Cancel handles DELETE /api/v1/jobs/{jobId}. A running job is cancelled, a
// finished one is forgotten.
func (h *JobsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	job := h.lookup(w, r)
	if job == nil {
		return
	}

	if isJobTerminal(job.GetStatus()) {
		h.jobManager.DeleteJob(job.ID)
		respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
		return
	}
	job.Cancel()
	respondJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}

func (h *JobsHandler) lookup(w http.ResponseWriter, r *http.Request) *ExtractJob {
	jobID := chi.URLParam(r, "jobId")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "missing job ID")
		return nil
	}
	job := h.jobManager.GetJob(jobID)
	if job == nil {
		respondError(w, http.StatusNotFound, "job not found")
		return nil
	}
	return job
}

// runJob runs the extraction in the background
func (h *JobsHandler) runJob(job *ExtractJob, entities []ftm.Entity) {
	ctx, cancel := context.WithCancel(context.Background())
	job.setCancel(cancel)
	defer cancel()

	job.mu.Lock()
	if job.Status == JobStatusCancelled {
		job.mu.Unlock()
		return
	}
	job.Status = JobStatusRunning
	job.mu.Unlock()
	job.SendEvent(JobEvent{Type: "started", Message: "Extraction started"})

	out, err := pipeline.Run(ctx, h.extractor, entities, pipeline.Options{
		Workers:         h.workers,
		FilterPassports: job.FilterPassports,
		Progress:        job,
		Logger:          h.logger,
		Metrics:         h.metrics,
	})
	if errors.Is(err, context.Canceled) {
		return
	}
	if err != nil {
		h.failJob(job, err.Error())
		return
	}

	result := &ExtractResponse{
		RunID:        out.RunID.String(),
		Records:      orEmptyRecords(out.Records),
		MissingLatin: orEmptyMissing(out.MissingLatin),
		Count:        len(out.Records),
	}

	if job.Store {
		writer, err := database.GetRunWriter(ctx)
		if err != nil {
			h.failJob(job, err.Error())
			return
		}
		run := database.StoredRun{ID: out.RunID, Source: job.Source, Entities: out.Entities}
		if err := writer.SaveRun(ctx, run, out.Records, out.MissingLatin); err != nil {
			h.logger.Errorw("failed to store run", "job_id", job.ID, "run_id", out.RunID, "error", err)
			h.failJob(job, "failed to store run")
			return
		}
		result.Stored = true
	}

	now := time.Now()
	job.mu.Lock()
	if job.Status == JobStatusCancelled {
		job.mu.Unlock()
		return
	}
	job.Status = JobStatusCompleted
	job.Result = result
	job.CompletedAt = &now
	job.mu.Unlock()

	job.SendEvent(JobEvent{Type: "completed", Data: job.View()})
}

func (h *JobsHandler) failJob(job *ExtractJob, message string) {
	now := time.Now()
	job.mu.Lock()
	job.Status = JobStatusFailed
	job.Error = message
	job.CompletedAt = &now
	job.mu.Unlock()
	job.SendEvent(JobEvent{Type: "job_error", Message: message})
}

func orEmptyRecords(records []extract.PersonRecord) []extract.PersonRecord {
	if records == nil {
		return []extract.PersonRecord{}
	}
	return records
}

func orEmptyMissing(missing []extract.MissingLatinName) []extract.MissingLatinName {
	if missing == nil {
		return []extract.MissingLatinName{}
	}
	return missing
}
