package controller

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"hubwiki/internal/render"
	"hubwiki/internal/sanitize"
	"hubwiki/internal/web/viewmodels"
)

// Preview renders unsaved markdown to sanitized HTML so editors can see
// the result before submitting to the backend. Nothing is stored.
type Preview struct {
	Renderer  *render.Renderer
	Sanitizer *sanitize.Sanitizer
	Logger    *zap.Logger
}

// Register registers the preview route.
func (c *Preview) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /preview", c.preview)
}

type previewRequest struct {
	Markdown string `json:"markdown"`
}

func (c *Preview) preview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rendered, err := c.Renderer.Markdown(req.Markdown)
	if err != nil {
		c.Logger.Warn("markdown rendering failed", zap.Error(err))
		respondError(w, http.StatusUnprocessableEntity, "could not render markdown")
		return
	}

	sanitized := c.Sanitizer.Sanitize(rendered)
	respondJSON(w, http.StatusOK, viewmodels.Preview{
		ContentHTML: render.Highlight(sanitized),
	})
}
