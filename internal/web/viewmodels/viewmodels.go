// Package viewmodels holds the JSON shapes served to the front-end.
package viewmodels

import (
	"fmt"
	"time"

	"hubwiki/internal/models"
	"hubwiki/internal/revdiff"
	"hubwiki/internal/toc"
)

// WikiPage is the payload for the wiki view endpoint: sanitized HTML
// with heading anchors injected, the outline, and the revision date.
type WikiPage struct {
	ContentHTML  string      `json:"content_html"`
	Toc          []toc.Entry `json:"toc"`
	RevisionDate int64       `json:"revision_date"`
}

// Revision combines revision metadata with a display label.
type Revision struct {
	ID        string `json:"id"`
	Author    string `json:"author,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
	When      string `json:"when,omitempty"`
}

// NewRevision flattens optional metadata fields and attaches a relative
// time label.
func NewRevision(m models.Revision, now time.Time) Revision {
	v := Revision{ID: m.ID}
	if m.Author != nil {
		v.Author = *m.Author
	}
	if m.Reason != nil {
		v.Reason = *m.Reason
	}
	if m.Timestamp != nil {
		v.Timestamp = *m.Timestamp
		v.When = RelativeTime(time.Unix(*m.Timestamp, 0), now)
	}
	return v
}

// HistoryPage is one page of the revision listing plus the pagination
// state the client echoes back to navigate Older/Newer.
type HistoryPage struct {
	Revisions []Revision `json:"revisions"`
	After     *string    `json:"after"`
	Stack     string     `json:"stack,omitempty"`
	Depth     int        `json:"depth"`
}

// DiffView is the two-column comparison of two revisions.
type DiffView struct {
	From string        `json:"from"`
	To   string        `json:"to"`
	Rows []revdiff.Row `json:"rows"`
}

// Preview is rendered, sanitized HTML for unsaved markdown.
type Preview struct {
	ContentHTML string `json:"content_html"`
}

// RelativeTime formats how long ago t was relative to now. Future
// timestamps produce "just now"; precision is deliberately coarse.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d < 365*24*time.Hour:
		return plural(int(d.Hours()/(24*30)), "month")
	default:
		return plural(int(d.Hours()/(24*365)), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
