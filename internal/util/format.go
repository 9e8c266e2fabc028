// Package util provides formatting helpers shared by the report and the CLI.
package util

import (
	"strconv"
	"strings"

	"github.com/umwelt-studio/countstat/internal/counter"
)

// FormatCounts renders the enabled parts of counts, for example:
//
//   - words and chars -> "13 words 53 characters"
//   - words only      -> "13 words"
//   - neither         -> ""
//
// Counts are printed as plain integers regardless of size.
func FormatCounts(counts counter.Counts, words, chars bool) string {
	parts := make([]string, 0, 2)
	if words {
		parts = append(parts, strconv.Itoa(counts.Words)+" words")
	}
	if chars {
		parts = append(parts, strconv.Itoa(counts.Chars)+" characters")
	}
	return strings.Join(parts, " ")
}

// Annotate appends formatted counts to label as "label : counts". The label
// is returned unchanged when there is nothing to show.
func Annotate(label, formatted string) string {
	if formatted == "" {
		return label
	}
	return label + " : " + formatted
}
