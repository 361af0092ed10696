// Package width provides the default terminal-cell width function for
// lineedit.Reader. The character-width table is an external collaborator
// of the core (spec §1); this is the one the core uses unless the
// embedding application supplies its own via lineedit.WithWidthFunc.
package width

import "github.com/mattn/go-runewidth"

// Default returns the display width, in terminal cells, of r: 0 for
// control characters and combining marks, 1 for most characters, 2 for
// wide East Asian characters.
func Default(r rune) int {
	if r == '\t' {
		return 1
	}
	return runewidth.RuneWidth(r)
}
