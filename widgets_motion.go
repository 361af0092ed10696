package lineedit

// Cursor-motion widgets (§4.3). Each honors the pending numeric argument
// via Reader.Repeat.

func init() {
	registerWidget("forward-char", wForwardChar)
	registerWidget("backward-char", wBackwardChar)
	registerWidget("forward-word", wForwardWord)
	registerWidget("backward-word", wBackwardWord)
	registerWidget("forward-word-end", wForwardWordEnd)
	registerWidget("beginning-of-line", wBeginningOfLine)
	registerWidget("end-of-line", wEndOfLine)
	registerWidget("vi-goto-column", wGotoColumn)
	registerWidget("up-line", wUpLine)
	registerWidget("down-line", wDownLine)
	registerWidget("vi-first-non-blank", wFirstNonBlank)
}

func wForwardChar(r *Reader) bool {
	return r.Repeat(func() bool { return r.Buf.Move(1) != 0 || r.Buf.Cursor() == r.Buf.Len() })
}

func wBackwardChar(r *Reader) bool {
	return r.Repeat(func() bool { return r.Buf.Move(-1) != 0 || r.Buf.Cursor() == 0 })
}

func wForwardWord(r *Reader) bool {
	return r.Repeat(func() bool {
		pos := nextWordStart(r.Buf, r.Config, r.Buf.Cursor())
		if pos == r.Buf.Cursor() {
			return false
		}
		r.Buf.SetCursor(pos)
		return true
	})
}

func wBackwardWord(r *Reader) bool {
	return r.Repeat(func() bool {
		pos := prevWordStart(r.Buf, r.Config, r.Buf.Cursor())
		if pos == r.Buf.Cursor() {
			return false
		}
		r.Buf.SetCursor(pos)
		return true
	})
}

func wForwardWordEnd(r *Reader) bool {
	return r.Repeat(func() bool {
		pos := wordEnd(r.Buf, r.Config, r.Buf.Cursor())
		if pos == r.Buf.Cursor() {
			return false
		}
		r.Buf.SetCursor(pos)
		return true
	})
}

func wBeginningOfLine(r *Reader) bool {
	r.Buf.SetCursor(lineStartOf(r.Buf, r.Buf.Cursor()))
	return true
}

func wEndOfLine(r *Reader) bool {
	r.Buf.SetCursor(lineEndOf(r.Buf, r.Buf.Cursor()))
	return true
}

func wFirstNonBlank(r *Reader) bool {
	start := lineStartOf(r.Buf, r.Buf.Cursor())
	end := lineEndOf(r.Buf, r.Buf.Cursor())
	for i := start; i < end; i++ {
		if r.Buf.AtChar(i) != ' ' && r.Buf.AtChar(i) != '\t' {
			r.Buf.SetCursor(i)
			return true
		}
	}
	r.Buf.SetCursor(start)
	return true
}

func wGotoColumn(r *Reader) bool {
	n, explicit := r.Count()
	if !explicit {
		return false
	}
	start := lineStartOf(r.Buf, r.Buf.Cursor())
	r.Buf.SetCursor(start + n - 1)
	return true
}

func wUpLine(r *Reader) bool {
	return r.Repeat(func() bool { return r.Buf.Up() })
}

func wDownLine(r *Reader) bool {
	return r.Repeat(func() bool { return r.Buf.Down() })
}

// --- word-boundary helpers shared by motion and kill widgets, generalized
// from kungfusheep-browse/lineedit/editor.go's byte-oriented
// wordBoundaryLeft/Right to runes and an injected Config.IsWordChar.

func lineStartOf(b *Buffer, pos int) int {
	for i := pos - 1; i >= 0; i-- {
		if b.AtChar(i) == '\n' {
			return i + 1
		}
	}
	return 0
}

func lineEndOf(b *Buffer, pos int) int {
	for i := pos; i < b.Len(); i++ {
		if b.AtChar(i) == '\n' {
			return i
		}
	}
	return b.Len()
}

func nextWordStart(b *Buffer, cfg Config, pos int) int {
	n := b.Len()
	i := pos
	if i < n && cfg.IsWordChar(b.AtChar(i)) {
		for i < n && cfg.IsWordChar(b.AtChar(i)) {
			i++
		}
	}
	for i < n && !cfg.IsWordChar(b.AtChar(i)) {
		i++
	}
	return i
}

func prevWordStart(b *Buffer, cfg Config, pos int) int {
	i := pos
	for i > 0 && !cfg.IsWordChar(b.AtChar(i-1)) {
		i--
	}
	for i > 0 && cfg.IsWordChar(b.AtChar(i-1)) {
		i--
	}
	return i
}

func wordEnd(b *Buffer, cfg Config, pos int) int {
	n := b.Len()
	i := pos
	for i < n && !cfg.IsWordChar(b.AtChar(i)) {
		i++
	}
	for i < n && cfg.IsWordChar(b.AtChar(i)) {
		i++
	}
	return i
}
