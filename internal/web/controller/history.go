package controller

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hubwiki/internal/cache"
	"hubwiki/internal/history"
	"hubwiki/internal/models"
	"hubwiki/internal/remote"
	"hubwiki/internal/web/viewmodels"
)

// History serves the paginated revision listing of a wiki page. The
// client echoes the opaque stack value back with op=older or op=newer
// to move through the listing; omitting both yields the newest page.
type History struct {
	Client    *remote.Client
	Revisions *cache.Cache[*models.RevisionList]
	Logger    *zap.Logger
}

// Register registers the history routes.
func (c *History) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{hub}/history/{pagePath...}", c.list)
}

func (c *History) list(w http.ResponseWriter, r *http.Request) {
	hub := r.PathValue("hub")
	pagePath := r.PathValue("pagePath")
	query := r.URL.Query()

	pager := history.DecodeStack(query.Get("stack"))
	switch query.Get("op") {
	case "older":
		after := query.Get("after")
		if after == "" {
			respondError(w, http.StatusBadRequest, "op=older needs an after cursor")
			return
		}
		pager.Older(after)
	case "newer":
		pager.Newer()
	case "":
	default:
		respondError(w, http.StatusBadRequest, "op must be older or newer")
		return
	}

	cursor := pager.Current()
	key := cache.Key{Hub: hub, Path: pagePath, Token: "revisions:" + cursor}
	list, err := c.Revisions.Get(r.Context(), key, func(ctx context.Context) (*models.RevisionList, error) {
		return c.Client.GetWikiRevisions(ctx, hub, pagePath, cursor)
	})
	if err != nil {
		handleError(w, c.Logger, err)
		return
	}

	now := time.Now()
	revisions := make([]viewmodels.Revision, 0, len(list.Revisions))
	for _, rev := range list.Revisions {
		revisions = append(revisions, viewmodels.NewRevision(rev, now))
	}

	respondJSON(w, http.StatusOK, viewmodels.HistoryPage{
		Revisions: revisions,
		After:     list.After,
		Stack:     history.EncodeStack(pager),
		Depth:     pager.Depth(),
	})
}
