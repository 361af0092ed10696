package lineedit

import "unicode"

// BindingReader resolves keystroke sequences against a primary and
// secondary KeyMap, including ambiguous ESC-initiated multi-byte
// sequences, by longest-match with an ambiguity timeout (§3, §4.1 — the
// core's hardest subsystem). It owns a pushback queue so macros can
// re-enter the matcher as if their keys had been typed.
type BindingReader struct {
	term       Terminal
	pushback   []rune
	lastBinding []rune
	ambiguousMs int
}

// NewBindingReader creates a reader pulling raw input from term.
func NewBindingReader(term Terminal, ambiguousMs int) *BindingReader {
	if ambiguousMs <= 0 {
		ambiguousMs = 1000
	}
	return &BindingReader{term: term, ambiguousMs: ambiguousMs}
}

// RunMacro pushes s back onto the input so the next ReadBinding calls
// re-enter the matcher against its contents before any new terminal input
// (§4.1).
func (r *BindingReader) RunMacro(s []rune) {
	r.pushback = append(append([]rune{}, s...), r.pushback...)
}

// LastBinding returns the keys consumed to produce the most recently
// committed binding (§4.1 step 5, exposed to widgets via
// Reader.LastBinding).
func (r *BindingReader) LastBinding() []rune { return r.lastBinding }

func (r *BindingReader) nextRune() (rune, error) {
	if len(r.pushback) > 0 {
		c := r.pushback[0]
		r.pushback = r.pushback[1:]
		return c, nil
	}
	return r.term.ReadChar()
}

func (r *BindingReader) peekRune(timeoutMs int) (rune, error) {
	if len(r.pushback) > 0 {
		return r.pushback[0], nil
	}
	return r.term.PeekChar(timeoutMs)
}

// matchResult is what a trie walk across both maps yields for a pending
// prefix.
type matchResult struct {
	binding     *Binding
	fromPrimary bool
	hasChildren bool
	anyNode     bool
}

func lookup(primary, secondary *KeyMap, pending []rune) matchResult {
	var res matchResult
	if n := primary.walk(pending); n != nil {
		res.anyNode = true
		res.hasChildren = res.hasChildren || n.hasChildren()
		if n.binding != nil {
			res.binding = n.binding
			res.fromPrimary = true
		}
	}
	if secondary != nil {
		if n := secondary.walk(pending); n != nil {
			res.anyNode = true
			res.hasChildren = res.hasChildren || n.hasChildren()
			if res.binding == nil && n.binding != nil {
				res.binding = n.binding
			}
		}
	}
	return res
}

// ReadBinding implements the algorithm of §4.1: read code points one at a
// time, track the longest matching binding seen so far, resolve ambiguity
// (a binding that is also a trie prefix of something longer) by waiting up
// to the ambiguous-binding timeout for more input, and fall back to the
// primary map's configured default binding for unrecognized printable
// input.
func (r *BindingReader) ReadBinding(primary, secondary *KeyMap) (*Binding, []rune, error) {
	var pending []rune
	var lastMatch *Binding
	var lastMatchLen int

	for {
		c, err := r.nextRune()
		if err != nil {
			return nil, nil, err
		}
		pending = append(pending, c)

		res := lookup(primary, secondary, pending)

		if res.binding != nil {
			lastMatch = res.binding
			lastMatchLen = len(pending)
		}

		switch {
		case !res.anyNode:
			// Nothing in either trie matches this prefix at all.
			if lastMatch == nil {
				if len(pending) == 1 && isPrintable(pending[0]) {
					r.lastBinding = append([]rune{}, pending...)
					if primary.Default != nil {
						return primary.Default, r.lastBinding, nil
					}
					b := WidgetBinding(nil)
					return &b, r.lastBinding, nil
				}
				// Resync: drop the oldest unresolved char and keep trying
				// with the remainder plus whatever comes next.
				pending = pending[1:]
				continue
			}
			return r.commit(lastMatch, pending[:lastMatchLen])

		case res.binding != nil && res.hasChildren:
			// Ambiguous: this prefix is itself bound but has deeper
			// children. Wait for more input before committing.
			next, err := r.peekRune(r.ambiguousMs)
			if err != nil {
				return nil, nil, err
			}
			if next == -1 {
				return r.commit(lastMatch, pending)
			}
			continue

		default:
			// Prefix matches trie structure but no terminal binding yet,
			// or matches and has no children: keep reading if there might
			// be more, otherwise commit.
			if res.binding != nil && !res.hasChildren {
				return r.commit(lastMatch, pending)
			}
			continue
		}
	}
}

func (r *BindingReader) commit(b *Binding, keys []rune) (*Binding, []rune, error) {
	r.lastBinding = append([]rune{}, keys...)
	return b, r.lastBinding, nil
}

func isPrintable(c rune) bool {
	return unicode.IsGraphic(c) && c != 0x7f
}
