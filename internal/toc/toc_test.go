package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAssignsAnchors(t *testing.T) {
	res := Extract("<h1>Getting Started</h1><p>text</p><h2>First Steps</h2>")

	require.Len(t, res.Entries, 2)
	assert.Equal(t, Entry{ID: "getting-started", Text: "Getting Started", Level: 1}, res.Entries[0])
	assert.Equal(t, Entry{ID: "first-steps", Text: "First Steps", Level: 2}, res.Entries[1])
	assert.Contains(t, res.HTML, `<h1 id="getting-started">Getting Started</h1>`)
	assert.Contains(t, res.HTML, `<h2 id="first-steps">First Steps</h2>`)
}

func TestExtractDuplicateHeadings(t *testing.T) {
	res := Extract("<h2>Intro</h2><h2>Intro</h2><h2>Intro</h2>")

	require.Len(t, res.Entries, 3)
	assert.Equal(t, "intro", res.Entries[0].ID)
	assert.Equal(t, "intro-1", res.Entries[1].ID)
	assert.Equal(t, "intro-2", res.Entries[2].ID)
}

func TestExtractCollidingNaturalSuffix(t *testing.T) {
	res := Extract("<h2>Intro 1</h2><h2>Intro</h2><h2>Intro</h2>")

	require.Len(t, res.Entries, 3)
	assert.Equal(t, "intro-1", res.Entries[0].ID)
	assert.Equal(t, "intro", res.Entries[1].ID)
	// "intro-1" is taken, so the counter keeps advancing.
	assert.Equal(t, "intro-2", res.Entries[2].ID)
}

func TestExtractEmptySlugFallsBackToOrdinal(t *testing.T) {
	res := Extract("<h1></h1><h2>!!!</h2><h3>Real</h3>")

	require.Len(t, res.Entries, 3)
	assert.Equal(t, "section-1", res.Entries[0].ID)
	assert.Equal(t, "section-2", res.Entries[1].ID)
	assert.Equal(t, "real", res.Entries[2].ID)
}

func TestExtractRemovesEmbeddedTocBlocks(t *testing.T) {
	res := Extract(`<div class="toc"><ul><li>stale nav</li></ul></div><h1>A</h1>`)

	assert.NotContains(t, res.HTML, "stale nav")
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "a", res.Entries[0].ID)
}

func TestExtractNestedTocBlock(t *testing.T) {
	res := Extract(`<div><div class="toc wiki-nav">old</div><h2>Keep</h2></div>`)

	assert.NotContains(t, res.HTML, "old")
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "keep", res.Entries[0].ID)
}

func TestExtractNoHeadings(t *testing.T) {
	res := Extract("<p>just text</p>")

	assert.Empty(t, res.Entries)
	assert.Equal(t, "<p>just text</p>", res.HTML)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello,  World!", "hello-world"},
		{"  padded  ", "padded"},
		{"MiXeD CaSe", "mixed-case"},
		{"already-hyphenated words", "already-hyphenated-words"},
		{"100% coverage", "100-coverage"},
		{"---", ""},
		{"日本語", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), "slugify(%q)", tt.in)
	}
}
