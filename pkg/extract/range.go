package extract

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned for page ranges outside the document.
var ErrInvalidRange = errors.New("invalid page range")

// ValidateRange checks 1 <= start <= end <= pageCount.
func ValidateRange(start, end, pageCount int) error {
	switch {
	case pageCount < 1:
		return fmt.Errorf("%w: document has no pages", ErrInvalidRange)
	case start < 1:
		return fmt.Errorf("%w: start page %d is before the first page", ErrInvalidRange, start)
	case end < start:
		return fmt.Errorf("%w: end page %d is before start page %d", ErrInvalidRange, end, start)
	case end > pageCount:
		return fmt.Errorf("%w: end page %d is beyond the last page %d", ErrInvalidRange, end, pageCount)
	}
	return nil
}

// ParseRange parses "N" or "N-M" into a start and end page. It does not know
// the page count; use ValidateRange for that.
func ParseRange(s string) (start, end int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("%w: empty range", ErrInvalidRange)
	}

	first, last, found := strings.Cut(s, "-")
	start, err = parsePage(first)
	if err != nil {
		return 0, 0, err
	}
	if !found {
		return start, start, nil
	}
	end, err = parsePage(last)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, fmt.Errorf("%w: %q ends before it starts", ErrInvalidRange, s)
	}
	return start, end, nil
}

func parsePage(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a page number", ErrInvalidRange, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: page numbers start at 1, got %d", ErrInvalidRange, n)
	}
	return n, nil
}
