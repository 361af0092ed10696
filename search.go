package lineedit

// searchState is the incremental-history-search widget's scratch space
// (§4.3 "history-incremental-search-backward/forward").
type searchState struct {
	dir       SearchDirection
	needle    []rune
	fromIndex int
	failed    bool
}

func (r *Reader) startSearch(dir SearchDirection) {
	r.search = &searchState{dir: dir, fromIndex: r.Hist.CursorIndex()}
}

func (r *Reader) searchAppend(c rune) bool {
	if r.search == nil {
		return false
	}
	r.search.needle = append(r.search.needle, c)
	return r.searchStep()
}

// searchAgain continues the search past the current match in dir, e.g.
// pressing ^R again to jump to the next older match (§4.3).
func (r *Reader) searchAgain(dir SearchDirection) bool {
	if r.search == nil {
		return false
	}
	r.search.dir = dir
	r.search.fromIndex = r.Hist.CursorIndex()
	return r.searchStep()
}

func (r *Reader) searchBackspace() bool {
	if r.search == nil || len(r.search.needle) == 0 {
		return false
	}
	r.search.needle = r.search.needle[:len(r.search.needle)-1]
	return r.searchStep()
}

func (r *Reader) searchStep() bool {
	s := r.search
	needle := string(s.needle)
	e, ok := r.Hist.Search(needle, s.fromIndex, s.dir)
	s.failed = !ok
	if ok {
		r.Buf.Set(e.Text)
		r.Hist.MoveTo(e.Index)
	}
	return ok
}

func (r *Reader) endSearch(accept bool) {
	if !accept && r.search != nil {
		r.Hist.MoveToEnd()
		r.Buf.Clear()
	}
	r.search = nil
}
