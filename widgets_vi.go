package lineedit

// Vi modal editing (§4.3, §4.6 "Sub-interface polymorphism"). Normal mode
// lives in the "vicmd" keymap, insert mode in "viins", and an operator
// (d/c/y) temporarily switches the primary map to "viopp" while it waits
// for the motion that defines its extent. Text-object recognition
// (quotes, words, sentences) is adapted from
// kungfusheep-browse/lineedit/vim.go's findWordObject/findSentenceObject/
// findQuoteObject family, reworked from byte/string scanning onto Buffer's
// rune-indexed API.

func init() {
	registerWidget("vi-insert", wViInsert)
	registerWidget("vi-insert-bol", wViInsertBOL)
	registerWidget("vi-append", wViAppend)
	registerWidget("vi-append-eol", wViAppendEOL)
	registerWidget("vi-cmd-mode", wViCmdMode)
	registerWidget("vi-open-line-above", wViOpenAbove)
	registerWidget("vi-open-line-below", wViOpenBelow)
	registerWidget("vi-substitute", wViSubstitute)
	registerWidget("vi-change-eol", wViChangeEOL)
	registerWidget("vi-delete", wViBeginDelete)
	registerWidget("vi-change", wViBeginChange)
	registerWidget("vi-yank", wViBeginYank)
	registerWidget("vi-delete-char", wDeleteChar)
	registerWidget("vi-put-after", wViPutAfter)
	registerWidget("vi-put-before", wViPutBefore)
	registerWidget("vi-find-next-char", viFind(true, false))
	registerWidget("vi-find-prev-char", viFind(false, false))
	registerWidget("vi-find-next-char-skip", viFind(true, true))
	registerWidget("vi-find-prev-char-skip", viFind(false, true))
	registerWidget("vi-repeat-find", wViRepeatFind)
	registerWidget("vi-repeat-find-opposite", wViRepeatFindOpposite)

	registerWidget("vi-forward-word", wViForwardWord)
	registerWidget("vi-backward-word", wViBackwardWord)
	registerWidget("vi-forward-word-end", wViForwardWordEnd)
	registerWidget("vi-forward-blank-word", wViForwardBlankWord)
	registerWidget("vi-backward-blank-word", wViBackwardBlankWord)
	registerWidget("vi-forward-blank-word-end", wViForwardBlankWordEnd)
	registerWidget("vi-match-bracket", wViMatchBracket)

	registerWidget("vi-op-forward-word", viOpForwardWord)
	registerWidget("vi-op-backward-word", viOpBackwardWord)
	registerWidget("vi-op-forward-word-end", viOpForwardWordEnd)
	registerWidget("vi-op-forward-blank-word", viOpForwardBlankWord)
	registerWidget("vi-op-backward-blank-word", viOpBackwardBlankWord)
	registerWidget("vi-op-forward-blank-word-end", viOpForwardBlankWordEnd)
	registerWidget("vi-op-match-bracket", viOpMatchBracket)
	registerWidget("vi-op-end-of-line", viOpLineEnd)
	registerWidget("vi-op-line", viOpWholeLine)
	registerWidget("vi-op-find-char", viOpFindChar)
	registerWidget("vi-op-inner-word", viOpTextObject(true, findWordObject))
	registerWidget("vi-op-a-word", viOpTextObject(false, findWordObject))
	registerWidget("vi-op-inner-quote", viOpQuoteObject(true))
	registerWidget("vi-op-a-quote", viOpQuoteObject(false))
}

func wViInsert(r *Reader) bool    { r.SetPrimaryMap("viins"); return true }
func wViInsertBOL(r *Reader) bool { r.Buf.SetCursor(lineStartOf(r.Buf, r.Buf.Cursor())); r.SetPrimaryMap("viins"); return true }
func wViAppend(r *Reader) bool {
	r.Buf.Move(1)
	r.SetPrimaryMap("viins")
	return true
}
func wViAppendEOL(r *Reader) bool {
	r.Buf.SetCursor(lineEndOf(r.Buf, r.Buf.Cursor()))
	r.SetPrimaryMap("viins")
	return true
}

func wViCmdMode(r *Reader) bool {
	r.Buf.Move(-1)
	r.SetPrimaryMap("vicmd")
	return true
}

func wViOpenAbove(r *Reader) bool {
	r.Buf.SetCursor(lineStartOf(r.Buf, r.Buf.Cursor()))
	r.Buf.Write("\n", false)
	r.Buf.Move(-1)
	r.SetPrimaryMap("viins")
	return true
}

func wViOpenBelow(r *Reader) bool {
	r.Buf.SetCursor(lineEndOf(r.Buf, r.Buf.Cursor()))
	r.Buf.Write("\n", false)
	r.SetPrimaryMap("viins")
	return true
}

func wViSubstitute(r *Reader) bool {
	n, _ := r.Count()
	if n < 1 {
		n = 1
	}
	r.Buf.Delete(n)
	r.SetPrimaryMap("viins")
	return true
}

func wViChangeEOL(r *Reader) bool {
	end := lineEndOf(r.Buf, r.Buf.Cursor())
	killed := r.Buf.Substring(r.Buf.Cursor(), end)
	r.Buf.DeleteRange(r.Buf.Cursor(), end)
	r.Kill.Add(killed)
	r.SetPrimaryMap("viins")
	return true
}

func wViBeginDelete(r *Reader) bool { r.beginOperator("delete"); return true }
func wViBeginChange(r *Reader) bool { r.beginOperator("change"); return true }
func wViBeginYank(r *Reader) bool   { r.beginOperator("yank"); return true }

func (r *Reader) beginOperator(op string) {
	r.pendingOp = op
	r.pendingOpStart = r.Buf.Cursor()
	r.SetPrimaryMap("viopp")
}

// finishOperator applies the pending operator over [start, end) and
// returns the primary map to vicmd (or viins for "change").
func (r *Reader) finishOperator(target int) bool {
	start, end := r.pendingOpStart, target
	if start > end {
		start, end = end, start
	}
	op := r.pendingOp
	r.pendingOp = ""
	text := r.Buf.Substring(start, end)
	switch op {
	case "delete":
		r.Buf.DeleteRange(start, end)
		r.Kill.Add(text)
		if start > 0 && start == r.Buf.Len() {
			r.Buf.SetCursor(start - 1)
		}
		r.SetPrimaryMap("vicmd")
	case "change":
		r.Buf.DeleteRange(start, end)
		r.Kill.Add(text)
		r.SetPrimaryMap("viins")
	case "yank":
		r.Kill.Add(text)
		r.Buf.SetCursor(start)
		r.SetPrimaryMap("vicmd")
	default:
		return false
	}
	r.opKilled = true
	return true
}

func viOpMotion(f func(*Buffer, Config, int) int) WidgetFn {
	return func(r *Reader) bool {
		return r.finishOperator(f(r.Buf, r.Config, r.Buf.Cursor()))
	}
}

// viOpMotionInclusive behaves like viOpMotion but includes the landing
// character itself (word-end motions are inclusive in vi, unlike
// word-start motions).
func viOpMotionInclusive(f func(*Buffer, Config, int) int) WidgetFn {
	return func(r *Reader) bool {
		target := f(r.Buf, r.Config, r.Buf.Cursor())
		return r.finishOperator(min(target+1, r.Buf.Len()))
	}
}

func viOpLineEnd(r *Reader) bool {
	return r.finishOperator(lineEndOf(r.Buf, r.Buf.Cursor()))
}

func viOpWholeLine(r *Reader) bool {
	start := lineStartOf(r.Buf, r.pendingOpStart)
	end := lineEndOf(r.Buf, r.pendingOpStart)
	r.pendingOpStart = start
	return r.finishOperator(end)
}

// viOpFindChar is bound in the viopp map to f/F/t/T: it reads one more raw
// key (the target character) before computing the operator's extent.
func viOpFindChar(r *Reader) bool {
	keys := r.LastBinding()
	if len(keys) == 0 {
		return false
	}
	forward := keys[0] == 'f' || keys[0] == 't'
	till := keys[0] == 't' || keys[0] == 'T'
	c, err := r.Term.ReadChar()
	if err != nil {
		return false
	}
	pos := findCharPos(r.Buf, r.Buf.Cursor(), c, forward, till)
	if pos < 0 {
		r.pendingOp = ""
		r.SetPrimaryMap("vicmd")
		return false
	}
	if forward {
		pos++
	}
	return r.finishOperator(pos)
}

func viOpTextObject(inner bool, find func(*Buffer, Config, int, bool) (int, int, bool)) WidgetFn {
	return func(r *Reader) bool {
		start, end, ok := find(r.Buf, r.Config, r.pendingOpStart, inner)
		if !ok {
			r.pendingOp = ""
			r.SetPrimaryMap("vicmd")
			return false
		}
		r.pendingOpStart = start
		return r.finishOperator(end)
	}
}

func viOpQuoteObject(inner bool) WidgetFn {
	return func(r *Reader) bool {
		keys := r.LastBinding()
		if len(keys) == 0 {
			return false
		}
		quote := keys[len(keys)-1]
		start, end, ok := findQuoteObject(r.Buf, r.pendingOpStart, quote, inner)
		if !ok {
			r.pendingOp = ""
			r.SetPrimaryMap("vicmd")
			return false
		}
		r.pendingOpStart = start
		return r.finishOperator(end)
	}
}

func wViPutAfter(r *Reader) bool {
	s := r.Kill.Yank()
	if s == "" {
		return false
	}
	r.Buf.Move(1)
	r.Buf.Write(s, false)
	return true
}

func wViPutBefore(r *Reader) bool {
	s := r.Kill.Yank()
	if s == "" {
		return false
	}
	r.Buf.Write(s, false)
	return true
}

func viFind(forward, till bool) WidgetFn {
	return func(r *Reader) bool {
		c, err := r.Term.ReadChar()
		if err != nil {
			return false
		}
		pos := findCharPos(r.Buf, r.Buf.Cursor(), c, forward, till)
		if pos < 0 {
			return false
		}
		r.find = findCharState{active: true, forward: forward, till: till, target: c}
		r.Buf.SetCursor(pos)
		return true
	}
}

func wViRepeatFind(r *Reader) bool {
	if !r.find.active {
		return false
	}
	pos := findCharPos(r.Buf, r.Buf.Cursor(), r.find.target, r.find.forward, r.find.till)
	if pos < 0 {
		return false
	}
	r.Buf.SetCursor(pos)
	return true
}

func wViRepeatFindOpposite(r *Reader) bool {
	if !r.find.active {
		return false
	}
	pos := findCharPos(r.Buf, r.Buf.Cursor(), r.find.target, !r.find.forward, r.find.till)
	if pos < 0 {
		return false
	}
	r.Buf.SetCursor(pos)
	return true
}

// --- vi word motions (w/b/e, W/B/E). Unlike the emacs word widgets in
// widgets_motion.go, which split on a single Config.WordChars-defined
// word/non-word boundary, vi distinguishes three character classes --
// alphanumeric-plus-underscore, punctuation, and whitespace -- so "a.b"
// is three words under w/b/e but one WORD under W/B/E. Ported from
// ConsoleReaderImpl.java's viForwardWord/viBackwardWord/viForwardWordEnd
// and their blank-word counterparts.

func viIsAlphaNum(r rune) bool { return isAlnum(r) || r == '_' }

func isViBlank(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }

func viIsDelimiter(r rune) bool { return !viIsAlphaNum(r) && !isViBlank(r) }

// viWordForward advances pos past the current alphanumeric or punctuation
// run, then past the whitespace following it. skipTrailingBlank is false
// only for the last count iteration of a pending "change" operator --
// vi's "cw behaves like ce" exception, which leaves trailing whitespace
// for the change to land on instead of consuming it.
func viWordForward(b *Buffer, pos int, skipTrailingBlank bool) int {
	n := b.Len()
	if pos >= n {
		return pos
	}
	switch {
	case viIsAlphaNum(b.AtChar(pos)):
		for pos < n && viIsAlphaNum(b.AtChar(pos)) {
			pos++
		}
	case viIsDelimiter(b.AtChar(pos)):
		for pos < n && viIsDelimiter(b.AtChar(pos)) {
			pos++
		}
	}
	if !skipTrailingBlank {
		return pos
	}
	crossedNewline := false
	for pos < n && isViBlank(b.AtChar(pos)) {
		if b.AtChar(pos) == '\n' {
			if crossedNewline {
				break
			}
			crossedNewline = true
		}
		pos++
	}
	return pos
}

func viWordBackward(b *Buffer, pos int) int {
	for pos > 0 && isViBlank(b.AtChar(pos-1)) {
		pos--
	}
	if pos == 0 {
		return pos
	}
	switch {
	case viIsAlphaNum(b.AtChar(pos - 1)):
		for pos > 0 && viIsAlphaNum(b.AtChar(pos-1)) {
			pos--
		}
	case viIsDelimiter(b.AtChar(pos - 1)):
		for pos > 0 && viIsDelimiter(b.AtChar(pos-1)) {
			pos--
		}
	}
	return pos
}

// viWordEndForward lands on the last rune of the next alnum or punctuation
// run -- e moves at least one character even when already sitting on the
// end of a word, so it steps off the current position before scanning.
func viWordEndForward(b *Buffer, pos int) int {
	n := b.Len()
	if n == 0 {
		return 0
	}
	if pos < n {
		pos++
	}
	for pos < n && isViBlank(b.AtChar(pos)) {
		pos++
	}
	if pos >= n {
		return n - 1
	}
	switch {
	case viIsAlphaNum(b.AtChar(pos)):
		for pos < n && viIsAlphaNum(b.AtChar(pos)) {
			pos++
		}
	case viIsDelimiter(b.AtChar(pos)):
		for pos < n && viIsDelimiter(b.AtChar(pos)) {
			pos++
		}
	}
	return pos - 1
}

// viBlankWordForward is W: it treats any run of non-whitespace, regardless
// of alnum/punctuation class, as one WORD.
func viBlankWordForward(b *Buffer, pos int, skipTrailingBlank bool) int {
	n := b.Len()
	for pos < n && !isViBlank(b.AtChar(pos)) {
		pos++
	}
	if !skipTrailingBlank {
		return pos
	}
	crossedNewline := false
	for pos < n && isViBlank(b.AtChar(pos)) {
		if b.AtChar(pos) == '\n' {
			if crossedNewline {
				break
			}
			crossedNewline = true
		}
		pos++
	}
	return pos
}

func viBlankWordBackward(b *Buffer, pos int) int {
	for pos > 0 && isViBlank(b.AtChar(pos-1)) {
		pos--
	}
	for pos > 0 && !isViBlank(b.AtChar(pos-1)) {
		pos--
	}
	return pos
}

func viBlankWordEndForward(b *Buffer, pos int) int {
	n := b.Len()
	if n == 0 {
		return 0
	}
	if pos < n {
		pos++
	}
	for pos < n && isViBlank(b.AtChar(pos)) {
		pos++
	}
	for pos < n && !isViBlank(b.AtChar(pos)) {
		pos++
	}
	if pos > 0 {
		pos--
	}
	return pos
}

func wViForwardWord(r *Reader) bool {
	return r.Repeat(func() bool {
		pos := viWordForward(r.Buf, r.Buf.Cursor(), true)
		if pos == r.Buf.Cursor() {
			return false
		}
		r.Buf.SetCursor(pos)
		return true
	})
}

func wViBackwardWord(r *Reader) bool {
	return r.Repeat(func() bool {
		pos := viWordBackward(r.Buf, r.Buf.Cursor())
		if pos == r.Buf.Cursor() {
			return false
		}
		r.Buf.SetCursor(pos)
		return true
	})
}

func wViForwardWordEnd(r *Reader) bool {
	return r.Repeat(func() bool {
		pos := viWordEndForward(r.Buf, r.Buf.Cursor())
		if pos == r.Buf.Cursor() {
			return false
		}
		r.Buf.SetCursor(pos)
		return true
	})
}

func wViForwardBlankWord(r *Reader) bool {
	return r.Repeat(func() bool {
		pos := viBlankWordForward(r.Buf, r.Buf.Cursor(), true)
		if pos == r.Buf.Cursor() {
			return false
		}
		r.Buf.SetCursor(pos)
		return true
	})
}

func wViBackwardBlankWord(r *Reader) bool {
	return r.Repeat(func() bool {
		pos := viBlankWordBackward(r.Buf, r.Buf.Cursor())
		if pos == r.Buf.Cursor() {
			return false
		}
		r.Buf.SetCursor(pos)
		return true
	})
}

func wViForwardBlankWordEnd(r *Reader) bool {
	return r.Repeat(func() bool {
		pos := viBlankWordEndForward(r.Buf, r.Buf.Cursor())
		if pos == r.Buf.Cursor() {
			return false
		}
		r.Buf.SetCursor(pos)
		return true
	})
}

// viOpForwardWord, unlike wViForwardWord, can't just call r.Repeat over a
// fixed motion: the last iteration needs to know it's last, to apply the
// cw-is-ce exception when the pending operator is "change".
func viOpForwardWord(r *Reader) bool {
	n, _ := r.Count()
	if n < 1 {
		n = 1
	}
	pos := r.Buf.Cursor()
	for i := 0; i < n; i++ {
		skipBlank := !(i == n-1 && r.pendingOp == "change")
		next := viWordForward(r.Buf, pos, skipBlank)
		if next == pos {
			break
		}
		pos = next
	}
	return r.finishOperator(pos)
}

func viOpBackwardWord(r *Reader) bool {
	n, _ := r.Count()
	if n < 1 {
		n = 1
	}
	pos := r.Buf.Cursor()
	for i := 0; i < n; i++ {
		next := viWordBackward(r.Buf, pos)
		if next == pos {
			break
		}
		pos = next
	}
	return r.finishOperator(pos)
}

func viOpForwardWordEnd(r *Reader) bool {
	n, _ := r.Count()
	if n < 1 {
		n = 1
	}
	pos := r.Buf.Cursor()
	for i := 0; i < n; i++ {
		next := viWordEndForward(r.Buf, pos)
		if next == pos {
			break
		}
		pos = next
	}
	return r.finishOperator(min(pos+1, r.Buf.Len()))
}

func viOpForwardBlankWord(r *Reader) bool {
	n, _ := r.Count()
	if n < 1 {
		n = 1
	}
	pos := r.Buf.Cursor()
	for i := 0; i < n; i++ {
		skipBlank := !(i == n-1 && r.pendingOp == "change")
		next := viBlankWordForward(r.Buf, pos, skipBlank)
		if next == pos {
			break
		}
		pos = next
	}
	return r.finishOperator(pos)
}

func viOpBackwardBlankWord(r *Reader) bool {
	n, _ := r.Count()
	if n < 1 {
		n = 1
	}
	pos := r.Buf.Cursor()
	for i := 0; i < n; i++ {
		next := viBlankWordBackward(r.Buf, pos)
		if next == pos {
			break
		}
		pos = next
	}
	return r.finishOperator(pos)
}

func viOpForwardBlankWordEnd(r *Reader) bool {
	n, _ := r.Count()
	if n < 1 {
		n = 1
	}
	pos := r.Buf.Cursor()
	for i := 0; i < n; i++ {
		next := viBlankWordEndForward(r.Buf, pos)
		if next == pos {
			break
		}
		pos = next
	}
	return r.finishOperator(min(pos+1, r.Buf.Len()))
}

// --- vi bracket matching (%), ported from ConsoleReaderImpl.java's
// getBracketType/doViMatchBracket/insertClose.

// bracketType encodes []{}()- as signed magnitudes per §8: an opening
// bracket and its closer share a magnitude and differ in sign, which is
// what lets matchBracket walk either direction with one loop.
func bracketType(r rune) int {
	switch r {
	case '[':
		return 1
	case ']':
		return -1
	case '{':
		return 2
	case '}':
		return -2
	case '(':
		return 3
	case ')':
		return -3
	default:
		return 0
	}
}

// matchBracket finds the bracket matching the one at pos, walking in the
// direction its sign implies (openers forward, closers backward) and
// counting same-type nesting so an inner pair doesn't satisfy an outer
// one.
func matchBracket(b *Buffer, pos int) (int, bool) {
	if pos < 0 || pos >= b.Len() {
		return 0, false
	}
	bt := bracketType(b.AtChar(pos))
	if bt == 0 {
		return 0, false
	}
	sign := 1
	if bt < 0 {
		sign = -1
	}
	depth := 0
	for i := pos + sign; i >= 0 && i < b.Len(); i += sign {
		switch bracketType(b.AtChar(i)) {
		case bt:
			depth++
		case -bt:
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return 0, false
}

// findBracketForward scans from pos to the end of the current line for the
// nearest bracket, the way % behaves when the cursor isn't sitting on one.
func findBracketForward(b *Buffer, pos int) int {
	end := lineEndOf(b, pos)
	for i := pos; i < end; i++ {
		if bracketType(b.AtChar(i)) != 0 {
			return i
		}
	}
	return -1
}

func wViMatchBracket(r *Reader) bool {
	pos := findBracketForward(r.Buf, r.Buf.Cursor())
	if pos < 0 {
		return false
	}
	match, ok := matchBracket(r.Buf, pos)
	if !ok {
		return false
	}
	r.Buf.SetCursor(match)
	return true
}

// viOpMatchBracket makes % inclusive of whichever bracket ends up furthest
// right, the way d%/y% take the whole balanced span rather than stopping
// one short of the closer.
func viOpMatchBracket(r *Reader) bool {
	pos := findBracketForward(r.Buf, r.pendingOpStart)
	if pos < 0 {
		r.pendingOp = ""
		r.SetPrimaryMap("vicmd")
		return false
	}
	match, ok := matchBracket(r.Buf, pos)
	if !ok {
		r.pendingOp = ""
		r.SetPrimaryMap("vicmd")
		return false
	}
	r.pendingOpStart = pos
	if match >= pos {
		return r.finishOperator(match + 1)
	}
	return r.finishOperator(match)
}

// blinkMatchingParen implements insertClose (§6 BlinkMatchingParen,
// §8 scenario 5): after self-insert commits a closing bracket, briefly
// move the cursor back onto it, find its match, redisplay there, and wait
// up to BlinkMatchingParenMs for the next key before putting the cursor
// back where typing left it.
func (r *Reader) blinkMatchingParen(ch rune) {
	bt := bracketType(ch)
	if bt >= 0 {
		return // not a closing bracket
	}
	closePos := r.Buf.Cursor() - 1
	match, ok := matchBracket(r.Buf, closePos)
	if !ok {
		return
	}
	restore := r.Buf.Cursor()
	r.Buf.SetCursor(match)
	r.render()
	r.Term.PeekChar(r.Config.BlinkMatchingParenMs)
	r.Buf.SetCursor(restore)
	r.render()
}

// findCharPos implements vi f/F/t/T: search for target from pos in the
// given direction, landing one cell short if till is set.
func findCharPos(b *Buffer, pos int, target rune, forward, till bool) int {
	if forward {
		for i := pos + 1; i < b.Len(); i++ {
			if b.AtChar(i) == target {
				if till {
					return i - 1
				}
				return i
			}
		}
		return -1
	}
	for i := pos - 1; i >= 0; i-- {
		if b.AtChar(i) == target {
			if till {
				return i + 1
			}
			return i
		}
	}
	return -1
}
