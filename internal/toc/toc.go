// Package toc assigns stable anchor ids to the headings of sanitized
// HTML and produces a navigable outline in document order.
package toc

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Entry is one heading in the outline. Level is the heading rank (1-6);
// callers compute indentation relative to the minimum level present.
type Entry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Result pairs the HTML with injected heading ids and the outline.
type Result struct {
	HTML    string
	Entries []Entry
}

// tocClassMarker identifies table-of-contents blocks already embedded in
// the source; those are removed to avoid duplicate navigation.
const tocClassMarker = "toc"

// Extract walks sanitized HTML, strips embedded TOC blocks, assigns a
// unique anchor id to every h1-h6 heading, and returns the rewritten
// HTML with the ordered outline. Malformed input degrades to an
// empty result rather than an error.
func Extract(sanitized string) Result {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(sanitized), ctx)
	if err != nil {
		return Result{}
	}

	kept := nodes[:0]
	for _, n := range nodes {
		if !isTocBlock(n) {
			removeTocBlocks(n)
			kept = append(kept, n)
		}
	}

	var entries []Entry
	seen := make(map[string]int)
	ordinal := 0
	for _, n := range kept {
		walkHeadings(n, func(h *html.Node, level int) {
			ordinal++
			text := strings.TrimSpace(textContent(h))
			id := uniqueSlug(slugify(text), ordinal, seen)
			setAttr(h, "id", id)
			entries = append(entries, Entry{ID: id, Text: text, Level: level})
		})
	}

	var buf bytes.Buffer
	for _, n := range kept {
		if err := html.Render(&buf, n); err != nil {
			return Result{}
		}
	}
	return Result{HTML: buf.String(), Entries: entries}
}

var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

func walkHeadings(n *html.Node, fn func(h *html.Node, level int)) {
	if n.Type == html.ElementNode {
		if level, ok := headingLevels[strings.ToLower(n.Data)]; ok {
			fn(n, level)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHeadings(c, fn)
	}
}

func isTocBlock(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(a.Val) {
			if class == tocClassMarker {
				return true
			}
		}
	}
	return false
}

func removeTocBlocks(n *html.Node) {
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling
		if isTocBlock(c) {
			n.RemoveChild(c)
		} else {
			removeTocBlocks(c)
		}
		c = next
	}
}

var (
	slugDropPattern  = regexp.MustCompile(`[^a-z0-9 \-]+`)
	slugSpacePattern = regexp.MustCompile(`\s+`)
)

// slugify lowercases text, drops everything but alphanumerics, spaces,
// and hyphens, collapses whitespace runs to single hyphens, and trims
// leading and trailing hyphens. An empty result means the caller must
// fall back to a positional anchor.
func slugify(text string) string {
	s := strings.ToLower(text)
	s = slugDropPattern.ReplaceAllString(s, "")
	s = slugSpacePattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// uniqueSlug disambiguates duplicate slugs with an incrementing per-slug
// counter starting at 1. Anchors are unique within one extraction pass
// only; they are not stable across edits that reorder headings.
func uniqueSlug(base string, ordinal int, seen map[string]int) string {
	if base == "" {
		base = fmt.Sprintf("section-%d", ordinal)
	}
	id := base
	for {
		if _, used := seen[id]; !used {
			seen[id] = 0
			return id
		}
		seen[base]++
		id = fmt.Sprintf("%s-%d", base, seen[base])
	}
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
