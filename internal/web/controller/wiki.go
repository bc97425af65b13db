package controller

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"hubwiki/internal/cache"
	"hubwiki/internal/models"
	"hubwiki/internal/remote"
	"hubwiki/internal/render"
	"hubwiki/internal/sanitize"
	"hubwiki/internal/toc"
	"hubwiki/internal/web/viewmodels"
)

// Wiki serves rendered wiki pages.
type Wiki struct {
	Client    *remote.Client
	Pages     *cache.Cache[*models.WikiPage]
	Sanitizer *sanitize.Sanitizer
	Logger    *zap.Logger
}

// Register registers the wiki routes.
func (c *Wiki) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{hub}/wiki/{pagePath...}", c.view)
}

func (c *Wiki) view(w http.ResponseWriter, r *http.Request) {
	hub := r.PathValue("hub")
	pagePath := r.PathValue("pagePath")
	rev := r.URL.Query().Get("rev")

	key := cache.Key{Hub: hub, Path: pagePath, Token: rev}
	page, err := c.Pages.Get(r.Context(), key, func(ctx context.Context) (*models.WikiPage, error) {
		return c.Client.GetWikiPage(ctx, hub, pagePath, rev)
	})
	if err != nil {
		handleError(w, c.Logger, err)
		return
	}

	// Sanitize before anything touches the markup, then inject heading
	// anchors and highlight code blocks in the cleaned tree.
	sanitized := c.Sanitizer.Sanitize(page.ContentHTML)
	outline := toc.Extract(sanitized)

	respondJSON(w, http.StatusOK, viewmodels.WikiPage{
		ContentHTML:  render.Highlight(outline.HTML),
		Toc:          outline.Entries,
		RevisionDate: page.RevisionDate,
	})
}
