// Package sanitize strips unsafe markup from externally-sourced HTML so
// the result can be injected into a page without further escaping. It is
// an allow-list sanitizer: only enumerated tags, attributes, and URL
// schemes survive; everything else is rejected by default. Disallowed
// elements are replaced by their readable text content rather than
// removed outright, so user-visible text is never lost.
package sanitize

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parser turns an HTML fragment into a parse tree. It is injectable so
// the sanitizer can run against any parser the hosting environment
// provides; FragmentParser is the standard implementation.
type Parser interface {
	Parse(fragment string) ([]*html.Node, error)
}

// FragmentParser parses fragments in a body context using the
// golang.org/x/net/html tokenizer.
type FragmentParser struct{}

func (FragmentParser) Parse(fragment string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	return html.ParseFragment(strings.NewReader(fragment), ctx)
}

// Sanitizer cleans raw HTML according to a Policy. The zero value is not
// usable; construct with New.
type Sanitizer struct {
	policy Policy
	parser Parser
	origin *url.URL
}

// New builds a Sanitizer with the standard fragment parser. origin is the
// base URL that relative href/src values resolve against; a nil origin
// rejects every relative URL.
func New(policy Policy, origin *url.URL) *Sanitizer {
	return &Sanitizer{policy: policy, parser: FragmentParser{}, origin: origin}
}

// NewWithParser builds a Sanitizer around a caller-provided parser. A nil
// parser puts the sanitizer in reduced-trust mode: Sanitize returns the
// entity-decoded input unmodified. Callers must only use that mode where
// the result is never injected into a document.
func NewWithParser(policy Policy, origin *url.URL, parser Parser) *Sanitizer {
	return &Sanitizer{policy: policy, parser: parser, origin: origin}
}

var commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

// Sanitize cleans raw and returns markup containing only allow-listed
// tags, attributes, and URL schemes. It never fails: malformed input
// degrades to a partially or fully stripped result, never an error.
func (s *Sanitizer) Sanitize(raw string) string {
	// Decode entities before parsing so double-encoded markup cannot
	// smuggle tags or schemes past the allow-list.
	decoded := html.UnescapeString(raw)
	decoded = commentPattern.ReplaceAllString(decoded, "")

	if s.parser == nil {
		return decoded
	}

	nodes, err := s.parser.Parse(decoded)
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		s.writeNode(&buf, n)
	}
	return buf.String()
}

func (s *Sanitizer) writeNode(buf *bytes.Buffer, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		buf.WriteString(html.EscapeString(n.Data))

	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if !s.policy.allowsTag(tag) {
			// Keep the readable text, drop the markup.
			buf.WriteString(html.EscapeString(textContent(n)))
			return
		}

		attrs := s.filterAttrs(tag, n.Attr)
		if tag == "a" {
			attrs = s.hardenLink(attrs)
		}

		buf.WriteByte('<')
		buf.WriteString(tag)
		for _, a := range attrs {
			buf.WriteByte(' ')
			buf.WriteString(a.Key)
			buf.WriteString(`="`)
			buf.WriteString(html.EscapeString(a.Val))
			buf.WriteByte('"')
		}
		buf.WriteByte('>')
		if voidElements[tag] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			s.writeNode(buf, c)
		}
		buf.WriteString("</")
		buf.WriteString(tag)
		buf.WriteByte('>')

	case html.CommentNode, html.DoctypeNode:
		// dropped

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			s.writeNode(buf, c)
		}
	}
}

func (s *Sanitizer) filterAttrs(tag string, attrs []html.Attribute) []html.Attribute {
	var out []html.Attribute
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if a.Namespace != "" || !s.policy.allowsAttr(tag, key) {
			continue
		}
		if key == "href" || key == "src" {
			if !s.safeURL(a.Val) {
				continue
			}
		}
		out = append(out, html.Attribute{Key: key, Val: a.Val})
	}
	return out
}

// safeURL reports whether val resolves to an absolute http or https URL.
// Relative values resolve against the configured origin, so they pass
// only when an origin is set. Malformed values are unsafe.
func (s *Sanitizer) safeURL(val string) bool {
	u, err := url.Parse(strings.TrimSpace(val))
	if err != nil {
		return false
	}
	if !u.IsAbs() {
		if s.origin == nil {
			return false
		}
		u = s.origin.ResolveReference(u)
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// hardenLink forces target=_blank and rel=noopener noreferrer on links
// leaving the site. Links under a recognized internal prefix stay plain
// relative links so the client router can claim them.
func (s *Sanitizer) hardenLink(attrs []html.Attribute) []html.Attribute {
	href := ""
	for _, a := range attrs {
		if a.Key == "href" {
			href = a.Val
		}
	}
	if href == "" || s.internalLink(href) {
		return attrs
	}
	return append(attrs,
		html.Attribute{Key: "target", Val: "_blank"},
		html.Attribute{Key: "rel", Val: "noopener noreferrer"},
	)
}

func (s *Sanitizer) internalLink(href string) bool {
	for _, prefix := range s.policy.InternalPrefixes {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}

// textContent collects the concatenated text of a subtree.
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

var voidElements = map[string]bool{
	"br":  true,
	"hr":  true,
	"img": true,
}
