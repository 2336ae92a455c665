package ocr

import "strings"

// DefaultWordThreshold is the number of whitespace-separated tokens below
// which a page's native text is considered incomplete and OCR is attempted.
// Sparse pages that are mostly figures also fall under it; that is accepted.
const DefaultWordThreshold = 50

// WordCount returns the number of whitespace-separated tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// NeedsOCR reports whether native text has fewer than threshold tokens.
func NeedsOCR(native string, threshold int) bool {
	return WordCount(native) < threshold
}
