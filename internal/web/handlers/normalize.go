package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kozaktomas/mrzname/internal/mrz"
)

// maxNormalizeNames caps the names accepted in one normalize request.
const maxNormalizeNames = 10000

// NormalizeHandler shows how names are transliterated and cleaned
type NormalizeHandler struct {
	cleaner mrz.Cleaner
}

// NewNormalizeHandler creates a new normalize handler
func NewNormalizeHandler(c mrz.Cleaner) *NormalizeHandler {
	return &NormalizeHandler{cleaner: c}
}

// NormalizeRequest is the body accepted by Normalize
type NormalizeRequest struct {
	Names []string `json:"names"`
}

// Normalize handles POST /api/v1/normalize.
func (h *NormalizeHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if len(req.Names) == 0 {
		respondError(w, http.StatusBadRequest, "names are required")
		return
	}
	if len(req.Names) > maxNormalizeNames {
		respondError(w, http.StatusBadRequest, "too many names")
		return
	}

	results := make([]mrz.Inspection, 0, len(req.Names))
	for _, name := range req.Names {
		results = append(results, h.cleaner.Inspect(name))
	}
	respondJSON(w, http.StatusOK, results)
}
