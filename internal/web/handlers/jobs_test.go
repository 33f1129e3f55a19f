package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kozaktomas/mrzname/internal/extract"
	"github.com/kozaktomas/mrzname/internal/ftm"
	"github.com/kozaktomas/mrzname/internal/logging"
	"github.com/kozaktomas/mrzname/internal/metrics"
	"github.com/kozaktomas/mrzname/internal/names"
)

func newTestJobsHandler() *JobsHandler {
	x := extract.New(names.Synthesizer{MaxCombinations: names.DefaultMaxCombinations})
	return NewJobsHandler(x, 2, logging.Nop(), metrics.New(), NewJobManager())
}

func parseEntities(t *testing.T, body string) []ftm.Entity {
	t.Helper()
	entities, err := ftm.Parse([]byte(body))
	if err != nil {
		t.Fatalf("ftm.Parse() error = %v", err)
	}
	return entities
}

func waitForTerminal(t *testing.T, job *ExtractJob) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !isJobTerminal(job.GetStatus()) {
		if time.Now().After(deadline) {
			t.Fatalf("job %s did not finish, status %s", job.ID, job.GetStatus())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestJobs_StartAndResult(t *testing.T) {
	withoutStore(t)
	h := newTestJobsHandler()
	recorder := httptest.NewRecorder()

	h.Start(recorder, jsonRequest(http.MethodPost, "/api/v1/jobs", twoPersons))

	assertStatusCode(t, recorder, http.StatusAccepted)
	var view JobView
	parseJSONResponse(t, recorder, &view)
	if view.ID == "" || view.TotalEntities != 3 {
		t.Fatalf("unexpected job view %+v", view)
	}

	job := h.jobManager.GetJob(view.ID)
	if job == nil {
		t.Fatal("job not registered")
	}
	waitForTerminal(t, job)

	recorder = httptest.NewRecorder()
	h.Result(recorder, requestWithChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+view.ID+"/result", nil), map[string]string{"jobId": view.ID}))

	assertStatusCode(t, recorder, http.StatusOK)
	var resp ExtractResponse
	parseJSONResponse(t, recorder, &resp)
	if resp.Count != 2 || len(resp.MissingLatin) != 1 {
		t.Errorf("unexpected result %+v", resp)
	}

	recorder = httptest.NewRecorder()
	h.Status(recorder, requestWithChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+view.ID, nil), map[string]string{"jobId": view.ID}))
	parseJSONResponse(t, recorder, &view)
	if view.Status != JobStatusCompleted || view.Progress != 100 {
		t.Errorf("status = %s, progress = %d", view.Status, view.Progress)
	}
	if view.Records == nil || *view.Records != 2 {
		t.Errorf("records = %v, want 2", view.Records)
	}
}

func TestJobs_StartInvalidBody(t *testing.T) {
	h := newTestJobsHandler()

	for _, body := range []string{"", "not json"} {
		recorder := httptest.NewRecorder()
		h.Start(recorder, jsonRequest(http.MethodPost, "/api/v1/jobs", body))
		assertStatusCode(t, recorder, http.StatusBadRequest)
		assertJSONError(t, recorder, errInvalidRequestBody)
	}
	if jobs := h.jobManager.ListJobs(); len(jobs) != 0 {
		t.Errorf("expected no jobs, got %d", len(jobs))
	}
}

func TestJobs_StoreWithoutDatabase(t *testing.T) {
	withoutStore(t)
	h := newTestJobsHandler()
	recorder := httptest.NewRecorder()

	h.Start(recorder, jsonRequest(http.MethodPost, "/api/v1/jobs?store=true", twoPersons))

	assertStatusCode(t, recorder, http.StatusServiceUnavailable)
}

func TestJobs_RunStoresResult(t *testing.T) {
	store := withMockStore(t)
	h := newTestJobsHandler()
	job := h.jobManager.CreateJob("job-1", 3, true, true)
	job.Source = "api-job"

	h.runJob(job, parseEntities(t, twoPersons))

	if job.GetStatus() != JobStatusCompleted {
		t.Fatalf("status = %s, error = %q", job.GetStatus(), job.Error)
	}
	result := job.GetResult()
	if !result.Stored || result.Count != 1 {
		t.Errorf("unexpected result %+v", result)
	}
	runs, _ := store.ListRuns(context.Background(), 0)
	if len(runs) != 1 || runs[0].Source != "api-job" || runs[0].Records != 1 {
		t.Errorf("unexpected stored runs %+v", runs)
	}
}

func TestJobs_RunStoreFailure(t *testing.T) {
	store := withMockStore(t)
	store.SaveError = errors.New("disk full")
	h := newTestJobsHandler()
	job := h.jobManager.CreateJob("job-2", 3, false, true)

	h.runJob(job, parseEntities(t, twoPersons))

	view := job.View()
	if view.Status != JobStatusFailed || view.Error != "failed to store run" {
		t.Errorf("unexpected view %+v", view)
	}
	if job.GetResult() != nil {
		t.Error("failed job should have no result")
	}
}

func TestJobs_ResultNotReady(t *testing.T) {
	h := newTestJobsHandler()
	h.jobManager.CreateJob("pending", 1, false, false)
	recorder := httptest.NewRecorder()

	h.Result(recorder, requestWithChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/jobs/pending/result", nil), map[string]string{"jobId": "pending"}))

	assertStatusCode(t, recorder, http.StatusConflict)
	assertJSONError(t, recorder, "job has not completed")
}

func TestJobs_NotFound(t *testing.T) {
	h := newTestJobsHandler()
	handlers := map[string]http.HandlerFunc{
		"status": h.Status,
		"result": h.Result,
		"cancel": h.Cancel,
		"events": h.Events,
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handler(recorder, requestWithChiParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"jobId": "missing"}))
			assertStatusCode(t, recorder, http.StatusNotFound)
			assertJSONError(t, recorder, "job not found")
		})
	}
}

func TestJobs_CancelThenDelete(t *testing.T) {
	h := newTestJobsHandler()
	job := h.jobManager.CreateJob("job-3", 3, false, false)
	req := func() *http.Request {
		return requestWithChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/jobs/job-3", nil), map[string]string{"jobId": "job-3"})
	}

	recorder := httptest.NewRecorder()
	h.Cancel(recorder, req())
	assertStatusCode(t, recorder, http.StatusOK)
	var body map[string]bool
	parseJSONResponse(t, recorder, &body)
	if !body["cancelled"] {
		t.Errorf("unexpected body %v", body)
	}

	h.runJob(job, parseEntities(t, twoPersons))
	if job.GetStatus() != JobStatusCancelled || job.GetResult() != nil {
		t.Errorf("cancelled job ran: status %s", job.GetStatus())
	}

	recorder = httptest.NewRecorder()
	h.Cancel(recorder, req())
	body = nil
	parseJSONResponse(t, recorder, &body)
	if !body["deleted"] {
		t.Errorf("unexpected body %v", body)
	}
	if h.jobManager.GetJob("job-3") != nil {
		t.Error("expected job to be deleted")
	}
}

func TestJobs_List(t *testing.T) {
	h := newTestJobsHandler()
	older := h.jobManager.CreateJob("older", 1, false, false)
	older.StartedAt = time.Now().Add(-time.Minute)
	h.jobManager.CreateJob("newer", 1, false, false)
	recorder := httptest.NewRecorder()

	h.List(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))

	assertStatusCode(t, recorder, http.StatusOK)
	var views []JobView
	parseJSONResponse(t, recorder, &views)
	if len(views) != 2 || views[0].ID != "newer" || views[1].ID != "older" {
		t.Errorf("unexpected order %+v", views)
	}
}

func TestJobs_EventsForFinishedJob(t *testing.T) {
	h := newTestJobsHandler()
	job := h.jobManager.CreateJob("job-4", 3, false, false)
	h.runJob(job, parseEntities(t, twoPersons))
	recorder := httptest.NewRecorder()

	h.Events(recorder, requestWithChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/jobs/job-4/events", nil), map[string]string{"jobId": "job-4"}))

	assertStatusCode(t, recorder, http.StatusOK)
	if ct := recorder.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q", ct)
	}
	out := recorder.Body.String()
	if !strings.HasPrefix(out, "event: status\ndata: ") || !strings.Contains(out, `"status":"completed"`) {
		t.Errorf("unexpected stream %q", out)
	}
}

func TestExtractJob_ProgressEvents(t *testing.T) {
	job := NewJobManager().CreateJob("job-5", 10, false, false)
	ch := job.AddListener()
	defer job.RemoveListener(ch)

	if err := job.Add(4); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	event := <-ch
	data, ok := event.Data.(map[string]int)
	if event.Type != "progress" || !ok || data["processed"] != 4 || data["total"] != 10 {
		t.Errorf("unexpected event %+v", event)
	}
	if view := job.View(); view.Progress != 40 {
		t.Errorf("Progress = %d, want 40", view.Progress)
	}
}
