// Package simplecompleter provides a default lineedit.Completer that
// completes filesystem paths under the word at the cursor.
package simplecompleter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kungfusheep/lineedit"
)

// Completer lists directory entries matching the word under the cursor.
type Completer struct{}

// New returns a filesystem-path Completer.
func New() *Completer { return &Completer{} }

// Complete implements lineedit.Completer (§4.4, §6).
func (Completer) Complete(_ *lineedit.Reader, pl lineedit.ParsedLine) []lineedit.Candidate {
	word := pl.Word
	dir, prefix := filepath.Split(word)
	lookDir := dir
	if lookDir == "" {
		lookDir = "."
	}
	entries, err := os.ReadDir(lookDir)
	if err != nil {
		return nil
	}
	var out []lineedit.Candidate
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		if strings.HasPrefix(e.Name(), ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		value := dir + e.Name()
		complete := true
		if e.IsDir() {
			value += "/"
			complete = false
		}
		out = append(out, lineedit.Candidate{
			Value:    value,
			Displ:    e.Name(),
			Complete: complete,
		})
	}
	return out
}
