// Package merge combines the native-layer text and the OCR text of a page
// into a single cleaned block.
//
// Deduplication is deliberately line-level and exact: two lines that differ
// only by case or inner whitespace are both kept.
package merge

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	lineBreaks  = regexp.MustCompile(`\r\n?`)
	inlineSpace = regexp.MustCompile(`[^\S\n]+`)
	blankLines  = regexp.MustCompile(`\n\s*\n`)
)

// Placeholder is the text a page carries when nothing could be extracted.
func Placeholder(page int) string {
	return fmt.Sprintf("[No text could be extracted from page %d]", page)
}

// ErrorPlaceholder is the text a page carries when its content could not be
// read at all.
func ErrorPlaceholder(page int) string {
	return fmt.Sprintf("[Error extracting text from page %d]", page)
}

// Texts merges the given sources in order. Empty sources are skipped, inline
// whitespace runs become one space, blank lines are collapsed, the result is
// trimmed and exact duplicate lines are dropped after their first occurrence.
// The result may be empty.
func Texts(sources ...string) string {
	var kept []string
	for _, s := range sources {
		if s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return ""
	}

	text := strings.Join(kept, "\n")
	text = lineBreaks.ReplaceAllString(text, "\n")
	text = inlineSpace.ReplaceAllString(text, " ")
	// A replacement can expose a new blank line pair, so repeat until stable
	for blankLines.MatchString(text) {
		text = blankLines.ReplaceAllString(text, "\n")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(dedupLines(strings.Split(text, "\n")), "\n")
}

// Page merges a page's sources like Texts but never returns an empty string:
// when nothing survives, the page placeholder is returned instead.
func Page(page int, sources ...string) string {
	if text := Texts(sources...); text != "" {
		return text
	}
	return Placeholder(page)
}

// dedupLines removes exact duplicates, keeping first occurrences in order.
func dedupLines(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	unique := make([]string, 0, len(lines))
	for _, l := range lines {
		if seen[l] {
			continue
		}
		seen[l] = true
		unique = append(unique, l)
	}
	return unique
}
