// Package revdiff computes line-level diffs between two revisions of a
// wiki page and lays them out as a synchronized two-column row sequence
// with independent line numbering. The functions are pure: identical
// inputs always produce an identical, order-stable result.
package revdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Kind classifies a diff row.
type Kind string

const (
	Equal   Kind = "equal"
	Added   Kind = "added"
	Removed Kind = "removed"
)

// Row is one row of the two-column diff rendering. Exactly one of the
// following holds, consistent with Kind: the left side is present
// (removed), the right side is present (added), or both sides are
// present and equal. A zero line number means that side is absent.
type Row struct {
	Kind      Kind    `json:"kind"`
	LeftLine  *string `json:"left_line,omitempty"`
	LeftNum   int     `json:"left_num,omitempty"`
	RightLine *string `json:"right_line,omitempty"`
	RightNum  int     `json:"right_num,omitempty"`
}

// Rows diffs oldText against newText at line granularity and expands the
// result into display rows. Both inputs empty yields an empty sequence.
// Byte-identical inputs yield only equal rows, one per line.
func Rows(oldText, newText string) []Row {
	rows := []Row{}
	if oldText == "" && newText == "" {
		return rows
	}

	// Line-mode Myers diff: map each line to a rune, diff the rune
	// strings, then rehydrate the line text.
	dmp := diffmatchpatch.New()
	oldRunes, newRunes, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(oldRunes, newRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	leftNum, rightNum := 0, 0
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			text := line
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				leftNum++
				rightNum++
				rows = append(rows, Row{
					Kind:      Equal,
					LeftLine:  &text,
					LeftNum:   leftNum,
					RightLine: &text,
					RightNum:  rightNum,
				})
			case diffmatchpatch.DiffDelete:
				leftNum++
				rows = append(rows, Row{Kind: Removed, LeftLine: &text, LeftNum: leftNum})
			case diffmatchpatch.DiffInsert:
				rightNum++
				rows = append(rows, Row{Kind: Added, RightLine: &text, RightNum: rightNum})
			}
		}
	}
	return rows
}

// splitLines splits chunk text on newlines, dropping the single trailing
// empty string a terminating newline produces so it does not become a
// spurious blank row.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
