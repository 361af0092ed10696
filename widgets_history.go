package lineedit

func init() {
	registerWidget("up-line-or-history", wUpLineOrHistory)
	registerWidget("down-line-or-history", wDownLineOrHistory)
	registerWidget("beginning-of-history", wBeginningOfHistory)
	registerWidget("end-of-history", wEndOfHistory)
	registerWidget("history-search-backward", wHistorySearchBackward)
	registerWidget("history-search-forward", wHistorySearchForward)
	registerWidget("history-incremental-search-backward", wIncSearchBackward)
	registerWidget("history-incremental-search-forward", wIncSearchForward)
	registerWidget("push-line", wPushLine)
	registerWidget("push-line-or-edit", wPushLine)
}

// up-line-or-history moves within a multi-line buffer first, only falling
// through to history recall once already on the first logical line (§4.3,
// §9).
func wUpLineOrHistory(r *Reader) bool {
	if r.Buf.Up() {
		return true
	}
	return r.historyPrevious()
}

func wDownLineOrHistory(r *Reader) bool {
	if r.Buf.Down() {
		return true
	}
	return r.historyNext()
}

func (r *Reader) historyPrevious() bool {
	idx := r.Hist.CursorIndex()
	r.Hist.StashPending(idx, r.Buf.String())
	e, ok := r.Hist.Previous()
	if !ok {
		if r.Config.HistoryBeep {
			r.bell()
		}
		return false
	}
	if pending, has := r.Hist.PendingFor(e.Index); has {
		r.Buf.Set(pending)
	} else {
		r.Buf.Set(e.Text)
	}
	return true
}

func (r *Reader) historyNext() bool {
	idx := r.Hist.CursorIndex()
	r.Hist.StashPending(idx, r.Buf.String())
	e, ok := r.Hist.Next()
	if !ok {
		if pending, has := r.Hist.PendingFor(r.Hist.CursorIndex()); has {
			r.Buf.Set(pending)
			return true
		}
		if r.Config.HistoryBeep {
			r.bell()
		}
		return false
	}
	if pending, has := r.Hist.PendingFor(r.Hist.CursorIndex()); has {
		r.Buf.Set(pending)
	} else {
		r.Buf.Set(e.Text)
	}
	return true
}

func wBeginningOfHistory(r *Reader) bool {
	e, ok := r.Hist.MoveTo(0)
	if !ok {
		return false
	}
	r.Buf.Set(e.Text)
	return true
}

func wEndOfHistory(r *Reader) bool {
	r.Hist.MoveToEnd()
	r.Buf.Clear()
	return true
}

func wHistorySearchBackward(r *Reader) bool {
	prefix := r.Buf.Substring(0, r.Buf.Cursor())
	e, ok := r.Hist.FindStartingWith(prefix, r.Hist.CursorIndex())
	if !ok {
		return false
	}
	r.Hist.MoveTo(e.Index)
	r.Buf.Set(e.Text)
	r.Buf.SetCursor(len(prefix))
	return true
}

func wHistorySearchForward(r *Reader) bool {
	prefix := r.Buf.Substring(0, r.Buf.Cursor())
	_ = prefix
	e, ok := r.Hist.Next()
	if !ok {
		return false
	}
	r.Buf.Set(e.Text)
	return true
}

func wIncSearchBackward(r *Reader) bool {
	r.startSearch(SearchBackward)
	return true
}

func wIncSearchForward(r *Reader) bool {
	r.startSearch(SearchForward)
	return true
}

// push-line stashes the current buffer in history's pending side-table
// against a placeholder "below" the current end-of-history position and
// clears the buffer, so the editor looks empty for the next command but
// restores the stashed text the moment the user recalls history again
// (§3 SUPPLEMENTED FEATURES, grounded on original_source's LineReader
// pushLine).
func wPushLine(r *Reader) bool {
	if r.Buf.Len() == 0 {
		return false
	}
	r.Hist.StashPending(r.Hist.CursorIndex(), r.Buf.String())
	r.Buf.Clear()
	return true
}
