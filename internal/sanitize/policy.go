package sanitize

// Policy defines what HTML survives sanitization: the tag allow-list,
// the per-tag attribute allow-list, and the set of path prefixes that
// mark a link as internal to the site (external links get hardened with
// target=_blank and rel=noopener noreferrer).
type Policy struct {
	AllowedTags  map[string]bool
	AllowedAttrs map[string][]string

	// InternalPrefixes are href prefixes left untouched for client-side
	// routing. Anything else on an <a> is treated as external.
	InternalPrefixes []string
}

// Default returns the policy used for wiki content.
func Default() Policy {
	return Policy{
		AllowedTags: tagSet(
			"a", "p", "strong", "em", "ul", "ol", "li", "span", "div",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"table", "thead", "tbody", "tr", "td", "th",
			"img", "blockquote", "code", "pre", "hr", "br",
		),
		AllowedAttrs: map[string][]string{
			"a":    {"href", "title"},
			"img":  {"src", "alt", "title", "width", "height"},
			"span": {"class"},
			"div":  {"class"},
			// language-* hints drive code block highlighting downstream.
			"code": {"class"},
			"td":   {"colspan", "rowspan"},
			"th":   {"colspan", "rowspan"},
		},
		InternalPrefixes: []string{"/r/", "/u/", "/user/", "/wiki/"},
	}
}

func (p Policy) allowsTag(tag string) bool {
	return p.AllowedTags[tag]
}

func (p Policy) allowsAttr(tag, attr string) bool {
	for _, a := range p.AllowedAttrs[tag] {
		if a == attr {
			return true
		}
	}
	return false
}

func tagSet(tags ...string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return m
}
