package merge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTexts(t *testing.T) {
	tests := []struct {
		name    string
		sources []string
		want    string
	}{
		{"no sources", nil, ""},
		{"only empty sources", []string{"", ""}, ""},
		{"whitespace only", []string{" \t ", "\n\n"}, ""},
		{"single source passes through", []string{"alpha\nbeta"}, "alpha\nbeta"},
		{"empty source skipped", []string{"", "ocr line"}, "ocr line"},
		{"sources joined by newline", []string{"native", "ocr"}, "native\nocr"},
		{"inline whitespace collapsed", []string{"a \t  b\t\tc"}, "a b c"},
		{"blank lines collapsed", []string{"a\n\n\n\nb\n \n\t\nc"}, "a\nb\nc"},
		{"carriage returns normalised", []string{"a\r\nb\rc"}, "a\nb\nc"},
		{"trimmed", []string{"\n\n  body  \n\n"}, "body"},
		{"duplicate lines removed", []string{"x\ny\nx\nz\ny"}, "x\ny\nz"},
		{"dedup across sources", []string{"Title\nnative body", "Title\nocr body"}, "Title\nnative body\nocr body"},
		{"dedup is case sensitive", []string{"Word\nword"}, "Word\nword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Texts(tt.sources...))
		})
	}
}

func TestDedupKeepsFirstOccurrence(t *testing.T) {
	input := "intro\nL\nmiddle\nL\nL\nend\nL"

	got := Texts(input)

	assert.Equal(t, 1, strings.Count("\n"+got+"\n", "\nL\n"))
	assert.Equal(t, []string{"intro", "L", "middle", "end"}, strings.Split(got, "\n"))
}

func TestPageNeverEmpty(t *testing.T) {
	inputs := [][]string{
		nil,
		{""},
		{"", ""},
		{"   ", "\n\t\n"},
		{"text"},
		{"native", "ocr"},
	}
	for _, in := range inputs {
		got := Page(7, in...)
		assert.NotEmpty(t, got, "sources %q", in)
	}
	assert.Equal(t, Placeholder(7), Page(7, "", " "))
	assert.Equal(t, "[No text could be extracted from page 7]", Placeholder(7))
	assert.Equal(t, "[Error extracting text from page 7]", ErrorPlaceholder(7))
}

