// Package history models navigation through a reverse-chronological,
// cursor-paginated revision listing. The Pager is an explicit state
// machine over an opaque-cursor stack; URL round-tripping lives in a
// separate adapter (query.go) so the core never sees encoding concerns.
package history

import "errors"

// Root is the cursor of the first (newest) page: no cursor parameter.
const Root = ""

// Pager tracks the cursor of the page currently in view plus the stack
// of cursors that led there. The stack length always equals the number
// of Older transitions minus Newer transitions since the last Reset.
type Pager struct {
	stack   []string
	current string
}

// Current returns the cursor for the page in view, Root for the first page.
func (p *Pager) Current() string {
	return p.current
}

// Depth returns the number of pages between the current page and Root.
func (p *Pager) Depth() int {
	return len(p.stack)
}

// Older advances to the next (older) page using the server-provided
// "after" token, remembering the current cursor for backward navigation.
func (p *Pager) Older(after string) {
	p.stack = append(p.stack, p.current)
	p.current = after
}

// Newer steps back to the previous (newer) page and returns its cursor.
// At Root it is a no-op.
func (p *Pager) Newer() string {
	if len(p.stack) == 0 {
		p.current = Root
		return Root
	}
	p.current = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return p.current
}

// Reset returns the pager to Root. Callers reset on hub or page change.
func (p *Pager) Reset() {
	p.stack = nil
	p.current = Root
}

// Compare is a selection of two revision identifiers to diff. It is
// orthogonal to pagination: entering and exiting a comparison leaves the
// pager untouched.
type Compare struct {
	From string
	To   string
}

// ErrIncompleteSelection is returned when a comparison is confirmed
// before both revisions are chosen.
var ErrIncompleteSelection = errors.New("comparison needs both a from and a to revision")

// Validate confirms the selection is usable.
func (c Compare) Validate() error {
	if c.From == "" || c.To == "" {
		return ErrIncompleteSelection
	}
	return nil
}
