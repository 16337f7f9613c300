package stringx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/byte4ever/byteutils/stringx"
)

func TestToArray_trims_and_drops_empty(t *testing.T) {
	t.Parallel()

	got := stringx.ToArray("hello, world, , rust  ")

	assert.Equal(t, []string{"hello", "world", "rust"}, got)
}

func TestToArray_empty_input(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stringx.ToArray(""))
	assert.Empty(t, stringx.ToArray(" , ,"))
}

func TestContainsWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    string
		word string
		want bool
	}{
		{name: "whole word", s: "the quick fox", word: "quick", want: true},
		{name: "at start", s: "quick fox", word: "quick", want: true},
		{name: "at end", s: "the fox", word: "fox", want: true},
		{name: "punctuation bound", s: "(fox).", word: "fox", want: true},
		{name: "substring only", s: "foxes", word: "fox", want: false},
		{name: "inside word", s: "outfox", word: "fox", want: false},
		{name: "underscore joins", s: "fox_1", word: "fox", want: false},
		{name: "later match", s: "foxes and fox", word: "fox", want: true},
		{name: "unicode neighbour", s: "éfox", word: "fox", want: false},
		{name: "empty word", s: "fox", word: "", want: false},
		{name: "empty input", s: "", word: "fox", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(
				t,
				tt.want,
				stringx.ContainsWord(tt.s, tt.word),
			)
		})
	}
}

func TestEscapeSQL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "O''Brien", stringx.EscapeSQL("O'Brien"))
	assert.Equal(t, `a\\b`, stringx.EscapeSQL(`a\b`))
	assert.Equal(t, `line\nnext\r`, stringx.EscapeSQL("line\nnext\r"))
	assert.Equal(t, `\0\Z`, stringx.EscapeSQL("\x00\x1a"))
	assert.Equal(t, "plain", stringx.EscapeSQL("plain"))
}

func TestQuoteSQL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "'it''s'", stringx.QuoteSQL("it's"))
	assert.Equal(t, "''", stringx.QuoteSQL(""))
}
