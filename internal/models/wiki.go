package models

// WikiPage is a single rendered wiki page as returned by the backend.
type WikiPage struct {
	ContentHTML  string `json:"content_html"`
	RevisionDate int64  `json:"revision_date"`
}

// Revision describes one historical snapshot of a wiki page. All fields
// except ID are optional in backend payloads.
type Revision struct {
	ID        string  `json:"id"`
	Author    *string `json:"author"`
	Timestamp *int64  `json:"timestamp"`
	Reason    *string `json:"reason"`
	Page      string  `json:"page"`
}

// RevisionList is one page of a reverse-chronological revision listing.
// After is the opaque continuation token for the next (older) page, or
// nil on the last page.
type RevisionList struct {
	Revisions []Revision `json:"revisions"`
	After     *string    `json:"after"`
}

// RevisionBody is one side of a revision comparison payload.
type RevisionBody struct {
	ID        string `json:"id"`
	ContentMD string `json:"content_md"`
}

// RevisionPair holds the two fetched bodies of a revision comparison.
type RevisionPair struct {
	From RevisionBody `json:"from"`
	To   RevisionBody `json:"to"`
}
