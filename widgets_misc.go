package lineedit

func init() {
	registerWidget("digit-argument", wDigitArgument)
	registerWidget("neg-argument", wNegArgument)
	registerWidget("universal-argument", wUniversalArgument)
	registerWidget("clear-screen", wClearScreen)
	registerWidget("quoted-insert", wQuotedInsert)
	registerWidget("redisplay", wRedisplay)
	registerWidget("overwrite-mode", wOverwriteMode)
}

// digit-argument appends the digit just typed to the numeric accumulator
// being built one keystroke at a time (§3 SUPPLEMENTED FEATURES).
func wDigitArgument(r *Reader) bool {
	keys := r.LastBinding()
	if len(keys) == 0 {
		return false
	}
	d := keys[len(keys)-1]
	if d < '0' || d > '9' {
		return false
	}
	r.count = r.count*10 + int(d-'0')
	r.haveCount = true
	return true
}

func wNegArgument(r *Reader) bool {
	r.negative = !r.negative
	r.haveCount = true
	return true
}

// universal-argument with no following digits multiplies by 4 each time
// it's invoked, matching the classic Emacs C-u behavior; once digits
// follow, those take over via digit-argument (§3).
func wUniversalArgument(r *Reader) bool {
	if !r.haveCount {
		r.count = 4
	} else {
		r.count *= 4
	}
	r.haveCount = true
	return true
}

// clear-screen sets the full-repaint flag Display consults instead of
// diffing against the prior frame (§3 SUPPLEMENTED FEATURES).
func wClearScreen(r *Reader) bool {
	r.RequestFullRepaint()
	return true
}

func wRedisplay(r *Reader) bool {
	r.RequestFullRepaint()
	return true
}

// quoted-insert reads one raw key, bypassing keymap matching entirely, and
// inserts it literally even if it would otherwise be a control character
// bound to a widget (§3 SUPPLEMENTED FEATURES).
func wQuotedInsert(r *Reader) bool {
	c, err := r.Term.ReadChar()
	if err != nil {
		return false
	}
	r.Buf.Write(string(c), r.overtype)
	return true
}

func wOverwriteMode(r *Reader) bool {
	r.overtype = !r.overtype
	return true
}
