// Package render converts markdown revision bodies to HTML and applies
// syntax highlighting to fenced code blocks. Output is not trusted: it
// always flows through the sanitizer before it is served.
package render

import (
	"bytes"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Renderer turns markdown into HTML.
type Renderer struct {
	md goldmark.Markdown
}

// New builds a renderer with GitHub-flavored markdown extensions.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Markdown renders src to HTML.
func (r *Renderer) Markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Highlight rewrites <pre><code class="language-x"> blocks in input with
// chroma-highlighted markup using CSS classes. Input that cannot be
// parsed, and code blocks that cannot be tokenized, are left as they are.
func Highlight(input string) string {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(input), ctx)
	if err != nil {
		return input
	}

	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	highlightTree(root)

	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return input
		}
	}
	return buf.String()
}

func highlightTree(n *html.Node) {
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling
		if code := codeBlock(c); code != nil {
			replaceWithHighlighted(n, c, code)
		} else {
			highlightTree(c)
		}
		c = next
	}
}

// codeBlock returns the <code> child if n is a <pre> wrapping a single
// code element, nil otherwise.
func codeBlock(n *html.Node) *html.Node {
	if n.Type != html.ElementNode || n.Data != "pre" {
		return nil
	}
	child := n.FirstChild
	if child == nil || child.Type != html.ElementNode || child.Data != "code" || child.NextSibling != nil {
		return nil
	}
	return child
}

func replaceWithHighlighted(parent, pre, code *html.Node) {
	source := textContent(code)
	highlighted := highlightCodeBlock(source, language(code))
	if highlighted == "" {
		return
	}

	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	frag, err := html.ParseFragment(strings.NewReader(highlighted), ctx)
	if err != nil {
		return
	}
	for _, n := range frag {
		parent.InsertBefore(n, pre)
	}
	parent.RemoveChild(pre)
}

// highlightCodeBlock tokenizes source with the lexer for lang and
// formats it with CSS classes. Returns "" when highlighting fails so the
// caller keeps the original block.
func highlightCodeBlock(source, lang string) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.Format(&buf, styles.Get("friendly"), iterator); err != nil {
		return ""
	}
	return buf.String()
}

func language(code *html.Node) string {
	for _, a := range code.Attr {
		if a.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(a.Val) {
			if lang, ok := strings.CutPrefix(class, "language-"); ok {
				return lang
			}
		}
	}
	return ""
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
