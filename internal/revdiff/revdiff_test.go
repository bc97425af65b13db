package revdiff

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsSingleLineChange(t *testing.T) {
	rows := Rows("a\nb\nc", "a\nx\nc")

	require.Len(t, rows, 4)

	assert.Equal(t, Equal, rows[0].Kind)
	assert.Equal(t, "a", *rows[0].LeftLine)
	assert.Equal(t, "a", *rows[0].RightLine)
	assert.Equal(t, 1, rows[0].LeftNum)
	assert.Equal(t, 1, rows[0].RightNum)

	assert.Equal(t, Removed, rows[1].Kind)
	assert.Equal(t, "b", *rows[1].LeftLine)
	assert.Equal(t, 2, rows[1].LeftNum)
	assert.Nil(t, rows[1].RightLine)
	assert.Zero(t, rows[1].RightNum)

	assert.Equal(t, Added, rows[2].Kind)
	assert.Equal(t, "x", *rows[2].RightLine)
	assert.Equal(t, 2, rows[2].RightNum)
	assert.Nil(t, rows[2].LeftLine)
	assert.Zero(t, rows[2].LeftNum)

	assert.Equal(t, Equal, rows[3].Kind)
	assert.Equal(t, "c", *rows[3].LeftLine)
	assert.Equal(t, 3, rows[3].LeftNum)
	assert.Equal(t, 3, rows[3].RightNum)
}

func TestRowsBothEmpty(t *testing.T) {
	assert.Empty(t, Rows("", ""))
}

func TestRowsIdenticalInputs(t *testing.T) {
	text := "first\nsecond\nthird"
	rows := Rows(text, text)

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, Equal, row.Kind)
		require.NotNil(t, row.LeftLine)
		require.NotNil(t, row.RightLine)
		assert.Equal(t, *row.LeftLine, *row.RightLine)
		assert.Equal(t, i+1, row.LeftNum)
		assert.Equal(t, i+1, row.RightNum)
	}
}

func TestRowsAllAdded(t *testing.T) {
	rows := Rows("", "a\nb")

	require.Len(t, rows, 2)
	for i, row := range rows {
		assert.Equal(t, Added, row.Kind)
		assert.Equal(t, i+1, row.RightNum)
		assert.Nil(t, row.LeftLine)
	}
}

func TestRowsTrailingNewline(t *testing.T) {
	// A terminating newline must not produce a spurious blank row.
	rows := Rows("a\n", "a\n")

	require.Len(t, rows, 1)
	assert.Equal(t, Equal, rows[0].Kind)
	assert.Equal(t, "a", *rows[0].LeftLine)
}

func TestRowsEmptyInteriorLine(t *testing.T) {
	rows := Rows("a\n\nb", "a\n\nb")

	require.Len(t, rows, 3)
	assert.Equal(t, "", *rows[1].LeftLine)
	assert.Equal(t, 2, rows[1].LeftNum)
}

func TestRowsDeterministic(t *testing.T) {
	oldText, newText := "one\ntwo\nthree\nfour", "one\n2\nthree\n4\nfive"
	first := Rows(oldText, newText)
	for range 5 {
		assert.Equal(t, first, Rows(oldText, newText))
	}
}

// lineTexts mirrors the splitting the engine applies to its inputs.
func lineTexts(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func genText() gopter.Gen {
	return gen.SliceOf(gen.OneConstOf("alpha", "bravo", "charlie", "delta", "")).
		Map(func(lines []string) string {
			return strings.Join(lines, "\n")
		})
}

func TestRowsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("line counters are strictly increasing per side", prop.ForAll(
		func(oldText, newText string) bool {
			prevLeft, prevRight := 0, 0
			for _, row := range Rows(oldText, newText) {
				if row.LeftNum != 0 {
					if row.LeftNum <= prevLeft {
						return false
					}
					prevLeft = row.LeftNum
				}
				if row.RightNum != 0 {
					if row.RightNum <= prevRight {
						return false
					}
					prevRight = row.RightNum
				}
			}
			return true
		},
		genText(), genText(),
	))

	properties.Property("each row satisfies the presence invariant", prop.ForAll(
		func(oldText, newText string) bool {
			for _, row := range Rows(oldText, newText) {
				switch row.Kind {
				case Equal:
					if row.LeftLine == nil || row.RightLine == nil || *row.LeftLine != *row.RightLine {
						return false
					}
				case Removed:
					if row.LeftLine == nil || row.RightLine != nil {
						return false
					}
				case Added:
					if row.LeftLine != nil || row.RightLine == nil {
						return false
					}
				default:
					return false
				}
			}
			return true
		},
		genText(), genText(),
	))

	properties.Property("both inputs are reconstructible from the rows", prop.ForAll(
		func(oldText, newText string) bool {
			var left, right []string
			for _, row := range Rows(oldText, newText) {
				if row.LeftLine != nil {
					left = append(left, *row.LeftLine)
				}
				if row.RightLine != nil {
					right = append(right, *row.RightLine)
				}
			}
			wantLeft := lineTexts(oldText)
			wantRight := lineTexts(newText)
			return strings.Join(left, "\n") == strings.Join(wantLeft, "\n") &&
				strings.Join(right, "\n") == strings.Join(wantRight, "\n")
		},
		genText(), genText(),
	))

	properties.Property("identical inputs produce only equal rows", prop.ForAll(
		func(text string) bool {
			rows := Rows(text, text)
			if len(rows) != len(lineTexts(text)) {
				return false
			}
			for _, row := range rows {
				if row.Kind != Equal {
					return false
				}
			}
			return true
		},
		genText(),
	))

	properties.TestingRun(t)
}
