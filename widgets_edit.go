package lineedit

import "strings"

func init() {
	registerWidget("self-insert", wSelfInsert)
	registerWidget("backward-delete-char", wBackwardDeleteChar)
	registerWidget("delete-char", wDeleteChar)
	registerWidget("delete-char-or-list", wDeleteChar)
	registerWidget("kill-word", wKillWord)
	registerWidget("backward-kill-word", wBackwardKillWord)
	registerWidget("kill-line", wKillLine)
	registerWidget("backward-kill-line", wBackwardKillLine)
	registerWidget("kill-whole-line", wKillWholeLine)
	registerWidget("transpose-chars", wTransposeChars)
	registerWidget("capitalize-word", wCapitalizeWord)
	registerWidget("up-case-word", wUpcaseWord)
	registerWidget("down-case-word", wDowncaseWord)
	registerWidget("undo", wUndo)
	registerWidget("redo", wRedo)
	registerWidget("yank", wYank)
	registerWidget("yank-pop", wYankPop)
	registerWidget("accept-line", wAcceptLine)
	registerWidget("send-break", wSendBreak)
	registerWidget("end-of-file", wEndOfFile)
	registerWidget("kill-region", wKillRegion)
	registerWidget("copy-region-as-kill", wCopyRegionAsKill)
	registerWidget("set-mark-command", wSetMark)
	registerWidget("exchange-point-and-mark", wExchangePointAndMark)
}

func wSetMark(r *Reader) bool {
	r.SetMark(r.Buf.Cursor())
	return true
}

func wExchangePointAndMark(r *Reader) bool {
	if r.Mark() < 0 {
		return false
	}
	cur := r.Buf.Cursor()
	r.Buf.SetCursor(r.Mark())
	r.SetMark(cur)
	return true
}

func wSelfInsert(r *Reader) bool {
	keys := r.LastBinding()
	if len(keys) == 0 {
		return false
	}
	ok := r.Repeat(func() bool {
		r.Buf.Write(string(keys), r.overtype)
		return true
	})
	if ok && len(keys) == 1 && r.Config.BlinkMatchingParenMs > 0 {
		r.blinkMatchingParen(keys[0])
	}
	return ok
}

func wBackwardDeleteChar(r *Reader) bool {
	n, _ := r.Count()
	if n < 0 {
		n = -n
	}
	return r.Buf.Backspace(n) > 0
}

func wDeleteChar(r *Reader) bool {
	n, _ := r.Count()
	if n < 0 {
		n = -n
	}
	return r.Buf.Delete(n) > 0
}

func wKillWord(r *Reader) bool {
	n, _ := r.Count()
	if n < 1 {
		n = 1
	}
	end := r.Buf.Cursor()
	for i := 0; i < n; i++ {
		end = nextWordStart(r.Buf, r.Config, end)
	}
	if end == r.Buf.Cursor() {
		return false
	}
	killed := r.Buf.Substring(r.Buf.Cursor(), end)
	r.Buf.DeleteRange(r.Buf.Cursor(), end)
	r.Kill.Add(killed)
	return true
}

func wBackwardKillWord(r *Reader) bool {
	n, _ := r.Count()
	if n < 1 {
		n = 1
	}
	start := r.Buf.Cursor()
	for i := 0; i < n; i++ {
		start = prevWordStart(r.Buf, r.Config, start)
	}
	if start == r.Buf.Cursor() {
		return false
	}
	killed := r.Buf.Substring(start, r.Buf.Cursor())
	r.Buf.DeleteRange(start, r.Buf.Cursor())
	r.Kill.AddBackwards(killed)
	return true
}

func wKillLine(r *Reader) bool {
	end := lineEndOf(r.Buf, r.Buf.Cursor())
	if end == r.Buf.Cursor() {
		return false
	}
	killed := r.Buf.Substring(r.Buf.Cursor(), end)
	r.Buf.DeleteRange(r.Buf.Cursor(), end)
	r.Kill.Add(killed)
	return true
}

func wBackwardKillLine(r *Reader) bool {
	start := lineStartOf(r.Buf, r.Buf.Cursor())
	if start == r.Buf.Cursor() {
		return false
	}
	killed := r.Buf.Substring(start, r.Buf.Cursor())
	r.Buf.DeleteRange(start, r.Buf.Cursor())
	r.Kill.AddBackwards(killed)
	return true
}

func wKillWholeLine(r *Reader) bool {
	start := lineStartOf(r.Buf, r.Buf.Cursor())
	end := lineEndOf(r.Buf, r.Buf.Cursor())
	killed := r.Buf.Substring(start, end)
	r.Buf.DeleteRange(start, end)
	r.Kill.Add(killed)
	return true
}

func wKillRegion(r *Reader) bool {
	if r.mark < 0 {
		return false
	}
	a, b := r.mark, r.Buf.Cursor()
	if a > b {
		a, b = b, a
	}
	killed := r.Buf.Substring(a, b)
	r.Buf.DeleteRange(a, b)
	r.Kill.Add(killed)
	r.mark = -1
	return true
}

func wCopyRegionAsKill(r *Reader) bool {
	if r.mark < 0 {
		return false
	}
	a, b := r.mark, r.Buf.Cursor()
	if a > b {
		a, b = b, a
	}
	r.Kill.Add(r.Buf.Substring(a, b))
	return true
}

func wTransposeChars(r *Reader) bool {
	c := r.Buf.Cursor()
	if c == 0 || c == r.Buf.Len() {
		return false
	}
	prev, cur := r.Buf.AtChar(c-1), r.Buf.AtChar(c)
	r.Buf.DeleteRange(c-1, c+1)
	r.Buf.SetCursor(c - 1)
	r.Buf.Write(string([]rune{cur, prev}), false)
	return true
}

func wCapitalizeWord(r *Reader) bool { return caseWord(r, capitalize) }
func wUpcaseWord(r *Reader) bool     { return caseWord(r, strings.ToUpper) }
func wDowncaseWord(r *Reader) bool   { return caseWord(r, strings.ToLower) }

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}

func caseWord(r *Reader, f func(string) string) bool {
	start := r.Buf.Cursor()
	end := wordEnd(r.Buf, r.Config, start)
	if end == start {
		return false
	}
	s := f(r.Buf.Substring(start, end))
	r.Buf.DeleteRange(start, end)
	r.Buf.SetCursor(start)
	r.Buf.Write(s, false)
	return true
}

func wUndo(r *Reader) bool {
	s, ok := r.Undo.Undo()
	if !ok {
		return false
	}
	r.Buf.Load(s)
	return true
}

func wRedo(r *Reader) bool {
	s, ok := r.Undo.Redo()
	if !ok {
		return false
	}
	r.Buf.Load(s)
	return true
}

func wYank(r *Reader) bool {
	s := r.Kill.Yank()
	if s == "" {
		return false
	}
	r.Buf.Write(s, false)
	return true
}

func wYankPop(r *Reader) bool {
	if !r.LastWidgetIsYank() {
		return false
	}
	s := r.Kill.YankPop()
	if s == "" {
		return false
	}
	r.Buf.Write(s, false)
	return true
}

func wAcceptLine(r *Reader) bool {
	r.state = StateDone
	return true
}

// sendBreak deliberately does not set Interrupt state (§9): it only beeps,
// unless the host's SIGINT path has already flagged the reader
// interrupted, in which case there is nothing further for the widget to
// do.
func wSendBreak(r *Reader) bool {
	return false
}

func wEndOfFile(r *Reader) bool {
	if r.Buf.Len() != 0 {
		return false
	}
	r.state = StateEOF
	return true
}
