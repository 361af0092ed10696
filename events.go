package lineedit

import (
	"fmt"
	"strconv"
	"strings"
)

// expandEvents implements the `!`-history and `^old^new` quick-substitution
// grammars run once at accept-line unless DisableEventExpansion is set
// (§4.6, §9). Two quirks are preserved deliberately rather than "fixed":
// quick substitution only fires when the `^` starts the buffer at position
// 0 (anywhere else it is left untouched rather than reported as an error),
// and `!#` expands to the output accumulated so far on this line, not the
// fully-expanded line, so a second `!#` later in the same line sees the
// first `!#`'s expansion but not its own.
func (r *Reader) expandEvents(line string) (string, error) {
	if strings.HasPrefix(line, "^") {
		if expanded, ok := r.expandQuickSubstitution(line); ok {
			return expanded, nil
		}
	}

	var out strings.Builder
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case c == '\\' && i+1 < len(runes):
			out.WriteRune(runes[i+1])
			i += 2
		case c == '!':
			text, consumed, err := r.expandBang(runes[i+1:], out.String())
			if err != nil {
				return "", err
			}
			if consumed == 0 {
				out.WriteRune(c)
				i++
				continue
			}
			out.WriteString(text)
			i += 1 + consumed
		default:
			out.WriteRune(c)
			i++
		}
	}
	return out.String(), nil
}

func (r *Reader) expandBang(rest []rune, accumulator string) (text string, consumed int, err error) {
	if len(rest) == 0 {
		return "", 0, nil
	}
	switch {
	case rest[0] == '!':
		e, ok := r.Hist.Last()
		if !ok {
			return "", 0, fmt.Errorf("lineedit: event not found: !!")
		}
		return e.Text, 1, nil

	case rest[0] == '#':
		return accumulator, 1, nil

	case rest[0] == '$':
		e, ok := r.Hist.Last()
		if !ok {
			return "", 0, fmt.Errorf("lineedit: event not found: !$")
		}
		words := strings.Fields(e.Text)
		if len(words) == 0 {
			return "", 0, fmt.Errorf("lineedit: event not found: !$")
		}
		return words[len(words)-1], 1, nil

	case rest[0] == '-' && len(rest) > 1 && isASCIIDigit(rest[1]):
		n, nd := scanDigits(rest[1:])
		idx := r.Hist.CursorIndex() - 1 - n
		e, ok := r.Hist.EntryAt(idx)
		if !ok {
			return "", 0, fmt.Errorf("lineedit: event not found: !-%d", n)
		}
		return e.Text, 1 + nd, nil

	case isASCIIDigit(rest[0]):
		n, nd := scanDigits(rest)
		e, ok := r.Hist.EntryAt(n)
		if !ok {
			return "", 0, fmt.Errorf("lineedit: event not found: !%d", n)
		}
		return e.Text, nd, nil

	case rest[0] == '?':
		end := -1
		for i := 1; i < len(rest); i++ {
			if rest[i] == '?' {
				end = i
				break
			}
		}
		var needle string
		var consumedLen int
		if end < 0 {
			needle = string(rest[1:])
			consumedLen = len(rest)
		} else {
			needle = string(rest[1:end])
			consumedLen = end + 1
		}
		e, ok := r.Hist.FindContaining(needle, r.Hist.CursorIndex())
		if !ok {
			return "", 0, fmt.Errorf("lineedit: event not found: !?%s?", needle)
		}
		return e.Text, consumedLen, nil

	default:
		n := 0
		for n < len(rest) && isEventWordChar(rest[n]) {
			n++
		}
		if n == 0 {
			return "", 0, nil
		}
		needle := string(rest[:n])
		e, ok := r.Hist.FindStartingWith(needle, r.Hist.CursorIndex())
		if !ok {
			return "", 0, fmt.Errorf("lineedit: event not found: !%s", needle)
		}
		return e.Text, n, nil
	}
}

// expandQuickSubstitution handles `^old^new` and `^old^new^`, replacing the
// first occurrence of old in the last history entry with new (§4.6, §9).
// ok is false if line doesn't match the grammar at all, in which case the
// caller leaves it untouched.
func (r *Reader) expandQuickSubstitution(line string) (string, bool) {
	rest := line[1:]
	mid := strings.IndexByte(rest, '^')
	if mid < 0 {
		return "", false
	}
	old := rest[:mid]
	rem := rest[mid+1:]
	newStr := rem
	if end := strings.IndexByte(rem, '^'); end >= 0 {
		newStr = rem[:end]
	}
	last, ok := r.Hist.Last()
	if !ok || old == "" {
		return "", false
	}
	idx := strings.Index(last.Text, old)
	if idx < 0 {
		return "", false
	}
	return last.Text[:idx] + newStr + last.Text[idx+len(old):], true
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isEventWordChar(r rune) bool {
	return !isASCIISpace(r) && r != ':' && r != ';' && r != '|' && r != '&'
}

func isASCIISpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }

func scanDigits(rest []rune) (n int, consumed int) {
	for consumed < len(rest) && isASCIIDigit(rest[consumed]) {
		consumed++
	}
	v, _ := strconv.Atoi(string(rest[:consumed]))
	return v, consumed
}
