package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/mrzname/internal/web/handlers"
	"github.com/kozaktomas/mrzname/internal/web/middleware"
)

func (s *Server) setupRoutes() {
	extractHandler := handlers.NewExtractHandler(s.extractor, s.config.Extraction.Workers, s.logger, s.metrics)
	normalizeHandler := handlers.NewNormalizeHandler(s.cleaner)
	runsHandler := handlers.NewRunsHandler(s.logger)
	jobsHandler := handlers.NewJobsHandler(s.extractor, s.config.Extraction.Workers, s.logger, s.metrics, s.jobManager)

	s.router.Get("/api/v1/health", handlers.HealthCheck)
	s.router.Handle("/metrics", s.metrics.Handler())

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireAPIKey(s.config.Web.APIKey))

		r.Post("/extract", extractHandler.Extract)
		r.Post("/normalize", normalizeHandler.Normalize)

		// Background extraction jobs
		r.Post("/jobs", jobsHandler.Start)
		r.Get("/jobs", jobsHandler.List)
		r.Get("/jobs/{jobId}", jobsHandler.Status)
		r.Get("/jobs/{jobId}/events", jobsHandler.Events)
		r.Get("/jobs/{jobId}/result", jobsHandler.Result)
		r.Delete("/jobs/{jobId}", jobsHandler.Cancel)

		// Stored runs (require DATABASE_URL)
		r.Get("/runs", runsHandler.List)
		r.Get("/runs/{id}", runsHandler.Get)
		r.Get("/runs/{id}/records", runsHandler.Records)
	})

	s.router.Get("/", serveIndex)
}

// serveIndex serves a short description of the API
func serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>mrzname</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 3rem auto; background: #1a1a2e; color: #eee; }
        h1 { color: #00d9ff; }
        a { color: #00d9ff; }
        code { background: #2a2a3e; padding: 2px 8px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>mrzname</h1>
    <p>Extracts MRZ-ready person names from FollowTheMoney entities.</p>
    <ul>
        <li><code>POST /api/v1/extract</code> entities in, person records out</li>
        <li><code>POST /api/v1/normalize</code> <code>{"names": [...]}</code></li>
        <li><code>POST /api/v1/jobs</code> background extraction with progress events</li>
        <li><code>GET /api/v1/runs</code> stored runs</li>
        <li><a href="/api/v1/health">/api/v1/health</a>, <a href="/metrics">/metrics</a></li>
    </ul>
</body>
</html>`))
}
