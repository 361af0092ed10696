// Package wordparser provides the default lineedit.Parser: simple
// shell-style word splitting on whitespace, honoring single and double
// quotes and backslash escapes. It plays the same role as
// kungfusheep-browse/omnibox.Parser (tokenizing one line of input into a
// structured Result) but reworked around word boundaries and quote
// tracking instead of URL-prefix detection.
package wordparser

import (
	"unicode"

	"github.com/kungfusheep/lineedit"
)

// Parser is the default lineedit.Parser.
type Parser struct{}

// New returns a Parser.
func New() *Parser { return &Parser{} }

// Parse splits line into words, honoring quotes, and reports the word
// under cursor. An unterminated quote yields an EOFError so the dispatcher
// can show a continuation prompt instead of accepting the line (§4.5,
// §6).
func (Parser) Parse(line string, cursor int) (lineedit.ParsedLine, error) {
	runes := []rune(line)
	var words []string
	var starts []int
	var cur []rune
	wordStart := -1
	inQuote := rune(0)
	escaped := false

	flush := func(end int) {
		if wordStart >= 0 {
			words = append(words, string(cur))
			starts = append(starts, wordStart)
			cur = cur[:0]
			wordStart = -1
		}
	}

	for i, r := range runes {
		switch {
		case escaped:
			cur = append(cur, r)
			if wordStart < 0 {
				wordStart = i - 1
			}
			escaped = false
		case r == '\\' && inQuote != '\'':
			escaped = true
		case inQuote != 0:
			if r == inQuote {
				inQuote = 0
			} else {
				cur = append(cur, r)
			}
		case r == '\'' || r == '"':
			inQuote = r
			if wordStart < 0 {
				wordStart = i
			}
		case unicode.IsSpace(r):
			flush(i)
		default:
			if wordStart < 0 {
				wordStart = i
			}
			cur = append(cur, r)
		}
	}

	if inQuote != 0 {
		return lineedit.ParsedLine{}, &lineedit.EOFError{MissingCloser: string(inQuote)}
	}
	if escaped {
		return lineedit.ParsedLine{}, &lineedit.EOFError{MissingCloser: "\\"}
	}
	flush(len(runes))

	pl := lineedit.ParsedLine{Line: line, Cursor: cursor, Words: words}
	for i, start := range starts {
		end := start + len([]rune(words[i]))
		if cursor >= start && cursor <= end {
			pl.Word = words[i]
			pl.WordCursor = cursor - start
			return pl, nil
		}
	}
	// Cursor sits in inter-word whitespace or past the last word: the
	// word under the cursor is empty, anchored at the cursor itself.
	pl.Word = ""
	pl.WordCursor = 0
	return pl, nil
}
