package controller

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"hubwiki/internal/cache"
	"hubwiki/internal/history"
	"hubwiki/internal/models"
	"hubwiki/internal/remote"
	"hubwiki/internal/revdiff"
	"hubwiki/internal/web/viewmodels"
)

// Diff serves the two-column comparison of two revisions of a page.
type Diff struct {
	Client   *remote.Client
	Compares *cache.Cache[*models.RevisionPair]
	Logger   *zap.Logger
}

// Register registers the diff routes.
func (c *Diff) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{hub}/diff/{pagePath...}", c.compare)
}

func (c *Diff) compare(w http.ResponseWriter, r *http.Request) {
	hub := r.PathValue("hub")
	pagePath := r.PathValue("pagePath")
	query := r.URL.Query()

	selection := history.Compare{From: query.Get("from"), To: query.Get("to")}
	if err := selection.Validate(); err != nil {
		handleError(w, c.Logger, err)
		return
	}

	key := cache.Key{Hub: hub, Path: pagePath, Token: selection.From + ".." + selection.To}
	pair, err := c.Compares.Get(r.Context(), key, func(ctx context.Context) (*models.RevisionPair, error) {
		return c.Client.CompareRevisions(ctx, hub, pagePath, selection.From, selection.To)
	})
	if err != nil {
		handleError(w, c.Logger, err)
		return
	}

	respondJSON(w, http.StatusOK, viewmodels.DiffView{
		From: selection.From,
		To:   selection.To,
		Rows: revdiff.Rows(pair.From.ContentMD, pair.To.ContentMD),
	})
}
