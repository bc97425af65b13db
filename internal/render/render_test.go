package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownBasics(t *testing.T) {
	r := New()

	out, err := r.Markdown("# Title\n\nSome *emphasis* here.")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>")
	assert.Contains(t, out, "<em>emphasis</em>")
}

func TestMarkdownGFMTable(t *testing.T) {
	r := New()

	out, err := r.Markdown("| a | b |\n| - | - |\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestMarkdownRawHTMLIsNotPassedThrough(t *testing.T) {
	r := New()

	out, err := r.Markdown("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestHighlightCodeBlock(t *testing.T) {
	out := Highlight(`<pre><code class="language-go">package main</code></pre>`)

	assert.Contains(t, out, `class="chroma"`)
	assert.Contains(t, out, "package")
}

func TestHighlightUnknownLanguageFallsBack(t *testing.T) {
	out := Highlight(`<pre><code class="language-nosuchlang">keep me</code></pre>`)

	assert.Contains(t, out, "keep me")
}

func TestHighlightLeavesOtherMarkupAlone(t *testing.T) {
	assert.Equal(t, "<p>x</p>", Highlight("<p>x</p>"))
	assert.Equal(t, "<pre>no code child</pre>", Highlight("<pre>no code child</pre>"))
}

func TestHighlightMalformedInput(t *testing.T) {
	assert.NotPanics(t, func() {
		Highlight("<pre><code>unclosed")
		Highlight("")
	})
}
