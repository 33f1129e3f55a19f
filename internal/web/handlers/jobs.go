package handlers

import (
	"context"
	"sync"
	"time"
)

// eventChannelBuffer is the buffer size for job event listeners.
const eventChannelBuffer = 100

// JobStatus represents the status of an async job.
type JobStatus string

// JobStatus constants define the lifecycle states of an async job.
const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// ExtractJob is an extraction running in the background. It reports progress
// through the pipeline and keeps the full result once completed.
type ExtractJob struct {
	EventBroadcaster

	ID                string
	Status            JobStatus
	FilterPassports   bool
	Store             bool
	Source            string
	TotalEntities     int
	ProcessedEntities int
	Error             string
	StartedAt         time.Time
	CompletedAt       *time.Time
	Result            *ExtractResponse
}

// JobView is the JSON representation of an ExtractJob.
type JobView struct {
	ID                string     `json:"id"`
	Status            JobStatus  `json:"status"`
	Progress          int        `json:"progress"`
	TotalEntities     int        `json:"total_entities"`
	ProcessedEntities int        `json:"processed_entities"`
	FilterPassports   bool       `json:"filter_passports"`
	Store             bool       `json:"store"`
	Error             string     `json:"error,omitempty"`
	StartedAt         time.Time  `json:"started_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	Records           *int       `json:"records,omitempty"`
	MissingLatin      *int       `json:"missing_latin,omitempty"`
}

// View returns a consistent snapshot of the job.
func (j *ExtractJob) View() JobView {
	j.mu.RLock()
	defer j.mu.RUnlock()

	v := JobView{
		ID:                j.ID,
		Status:            j.Status,
		TotalEntities:     j.TotalEntities,
		ProcessedEntities: j.ProcessedEntities,
		FilterPassports:   j.FilterPassports,
		Store:             j.Store,
		Error:             j.Error,
		StartedAt:         j.StartedAt,
		CompletedAt:       j.CompletedAt,
	}
	if j.TotalEntities > 0 {
		v.Progress = j.ProcessedEntities * 100 / j.TotalEntities
	}
	if j.Result != nil {
		records, missing := j.Result.Count, len(j.Result.MissingLatin)
		v.Records, v.MissingLatin = &records, &missing
	}
	return v
}

// GetStatus returns the current job status (implements SSEJob).
func (j *ExtractJob) GetStatus() JobStatus {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.Status
}

// GetResult returns the result of a completed job, nil otherwise.
func (j *ExtractJob) GetResult() *ExtractResponse {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.Result
}

// Add records n processed entities and broadcasts the progress. It lets the
// job act as the pipeline's progress sink.
func (j *ExtractJob) Add(n int) error {
	j.mu.Lock()
	j.ProcessedEntities += n
	processed, total := j.ProcessedEntities, j.TotalEntities
	j.mu.Unlock()

	j.SendEvent(JobEvent{Type: "progress", Data: map[string]int{
		"processed": processed,
		"total":     total,
	}})
	return nil
}

// Cancel cancels the job.
func (j *ExtractJob) Cancel() {
	j.EventBroadcaster.Cancel()
	j.mu.Lock()
	j.Status = JobStatusCancelled
	j.mu.Unlock()
}

// JobEvent represents an event from a job.
type JobEvent struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// EventBroadcaster provides listener management and event broadcasting for async jobs.
// Embed this in job structs to get AddListener, RemoveListener, and SendEvent methods.
type EventBroadcaster struct {
	cancel    context.CancelFunc
	listeners []chan JobEvent
	mu        sync.RWMutex
}

// AddListener adds an event listener.
func (b *EventBroadcaster) AddListener() chan JobEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan JobEvent, eventChannelBuffer)
	b.listeners = append(b.listeners, ch)
	return ch
}

// RemoveListener removes an event listener.
func (b *EventBroadcaster) RemoveListener(ch chan JobEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, listener := range b.listeners {
		if listener == ch {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			close(ch)
			return
		}
	}
}

// SendEvent sends an event to all listeners.
func (b *EventBroadcaster) SendEvent(event JobEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, listener := range b.listeners {
		select {
		case listener <- event:
		default:
			// Listener buffer full, skip.
		}
	}
}

// Cancel cancels the job via context and sends a cancelled event.
func (b *EventBroadcaster) Cancel() {
	b.mu.RLock()
	cancel := b.cancel
	b.mu.RUnlock()
	if cancel != nil {
		cancel()
	}
	b.SendEvent(JobEvent{Type: "cancelled", Message: "Job cancelled by user"})
}

func (b *EventBroadcaster) setCancel(cancel context.CancelFunc) {
	b.mu.Lock()
	b.cancel = cancel
	b.mu.Unlock()
}

// SSEJob is the interface required by streamSSEEvents to stream job events via SSE.
type SSEJob interface {
	AddListener() chan JobEvent
	RemoveListener(ch chan JobEvent)
	GetStatus() JobStatus
}

// JobManager manages async jobs.
type JobManager struct {
	jobs map[string]*ExtractJob
	mu   sync.RWMutex
}

// NewJobManager creates a new job manager.
func NewJobManager() *JobManager {
	return &JobManager{
		jobs: make(map[string]*ExtractJob),
	}
}

// CreateJob creates a new pending extraction job.
func (m *JobManager) CreateJob(id string, total int, filterPassports, store bool) *ExtractJob {
	job := &ExtractJob{
		ID:              id,
		Status:          JobStatusPending,
		FilterPassports: filterPassports,
		Store:           store,
		TotalEntities:   total,
		StartedAt:       time.Now(),
	}

	m.mu.Lock()
	m.jobs[id] = job
	m.mu.Unlock()

	return job
}

// GetJob retrieves a job by ID.
func (m *JobManager) GetJob(id string) *ExtractJob {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.jobs[id]
}

// DeleteJob removes a job.
func (m *JobManager) DeleteJob(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.jobs, id)
}

// ListJobs returns all jobs.
func (m *JobManager) ListJobs() []*ExtractJob {
	m.mu.RLock()
	defer m.mu.RUnlock()
	jobs := make([]*ExtractJob, 0, len(m.jobs))
	for _, job := range m.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}
