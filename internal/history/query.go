package history

import (
	"net/url"
	"strings"
)

// The stack round-trips through a single query parameter as a
// pipe-separated list of escaped tokens, with the current cursor last.
// This is a boundary adapter only; the Pager itself is encoding-free.

const stackSeparator = "|"

// EncodeStack serializes a pager for embedding in a URL query value.
// A pager at Root with no history encodes to the empty string.
func EncodeStack(p *Pager) string {
	if p.Depth() == 0 && p.Current() == Root {
		return ""
	}
	parts := make([]string, 0, len(p.stack)+1)
	for _, token := range p.stack {
		parts = append(parts, url.QueryEscape(token))
	}
	parts = append(parts, url.QueryEscape(p.current))
	return strings.Join(parts, stackSeparator)
}

// DecodeStack rebuilds a pager from an encoded stack value. Malformed
// tokens are treated as absent, yielding a pager at Root, so a corrupted
// query parameter degrades to the first page instead of an error.
func DecodeStack(encoded string) *Pager {
	p := &Pager{}
	if encoded == "" {
		return p
	}
	parts := strings.Split(encoded, stackSeparator)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token, err := url.QueryUnescape(part)
		if err != nil {
			return &Pager{}
		}
		tokens = append(tokens, token)
	}
	p.stack = tokens[:len(tokens)-1]
	p.current = tokens[len(tokens)-1]
	return p
}
