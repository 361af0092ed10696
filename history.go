package lineedit

// HistoryEntry is a single recorded line with its (dense, monotonic) index
// (§3).
type HistoryEntry struct {
	Index int
	Text  string
}

// History is an in-memory ordered log with a cursor and search support
// (§3, §4.3 "History motions"). Persisting history to disk is a Non-goal
// (§1); this is the full in-process log the teacher's Editor undo stack has
// no equivalent of — kungfusheep-browse keeps no cross-submission history at
// all, so History is new code grounded directly on spec.md §3/§4.3 rather
// than adapted from teacher source.
type History struct {
	entries []HistoryEntry
	base    int // Index of entries[0]
	cursor  int // Index into entries, or len(entries) when "at the end"

	// pending holds buffer text stashed before navigating off an entry, so
	// that navigating back restores in-progress edits rather than the
	// pristine recorded text (§4.3 up-line-or-history).
	pending map[int]string
}

// NewHistory creates an empty history log.
func NewHistory() *History {
	return &History{pending: make(map[int]string)}
}

// Add appends text as a new entry and returns its index.
func (h *History) Add(text string) int {
	idx := h.base + len(h.entries)
	h.entries = append(h.entries, HistoryEntry{Index: idx, Text: text})
	h.cursor = len(h.entries)
	return idx
}

// Size returns the number of entries.
func (h *History) Size() int { return len(h.entries) }

// entryAt returns the entry for absolute index idx, if any.
func (h *History) entryAt(idx int) (HistoryEntry, bool) {
	pos := idx - h.base
	if pos < 0 || pos >= len(h.entries) {
		return HistoryEntry{}, false
	}
	return h.entries[pos], true
}

// EntryAt returns the entry for absolute index idx, used by event
// expansion's `!n` / `!-n` forms (§4.6, §9).
func (h *History) EntryAt(idx int) (HistoryEntry, bool) { return h.entryAt(idx) }

// Last returns the most recently added entry, used by `!!` (§4.6).
func (h *History) Last() (HistoryEntry, bool) {
	return h.entryAt(h.base + len(h.entries) - 1)
}

// Current returns the entry the cursor currently points at, or false if the
// cursor is past the last entry (the "new line" position).
func (h *History) Current() (HistoryEntry, bool) {
	if h.cursor < 0 || h.cursor >= len(h.entries) {
		return HistoryEntry{}, false
	}
	return h.entries[h.cursor], true
}

// AtEnd reports whether the cursor is at the past-the-end position.
func (h *History) AtEnd() bool { return h.cursor >= len(h.entries) }

// Previous moves the cursor back one entry and returns it. ok is false if
// already at the oldest entry.
func (h *History) Previous() (HistoryEntry, bool) {
	if h.cursor <= 0 {
		return HistoryEntry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves the cursor forward one entry. Moving past the last entry
// lands on the (entry-less) end position; ok is false only if already
// there.
func (h *History) Next() (HistoryEntry, bool) {
	if h.cursor >= len(h.entries) {
		return HistoryEntry{}, false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		return HistoryEntry{}, true
	}
	return h.entries[h.cursor], true
}

// MoveTo sets the cursor to the entry with absolute index idx, clamping
// into range, and returns the entry landed on (ok false at the end
// position).
func (h *History) MoveTo(idx int) (HistoryEntry, bool) {
	pos := clamp(idx-h.base, 0, len(h.entries))
	h.cursor = pos
	if pos >= len(h.entries) {
		return HistoryEntry{}, false
	}
	return h.entries[pos], true
}

// MoveToEnd positions the cursor past the last entry.
func (h *History) MoveToEnd() { h.cursor = len(h.entries) }

// CursorIndex returns the absolute index the cursor is at (may be
// base+len(entries), the end position).
func (h *History) CursorIndex() int { return h.base + h.cursor }

// StashPending records buf as the in-progress text for history index idx,
// so that navigating back to idx later restores it instead of the
// recorded text.
func (h *History) StashPending(idx int, buf string) {
	h.pending[idx] = buf
}

// PendingFor returns the stashed in-progress text for idx, if any.
func (h *History) PendingFor(idx int) (string, bool) {
	s, ok := h.pending[idx]
	return s, ok
}

// ClearPending drops any stashed in-progress text for idx.
func (h *History) ClearPending(idx int) { delete(h.pending, idx) }

// SearchDirection controls incremental search direction (§3).
type SearchDirection int

const (
	SearchBackward SearchDirection = iota
	SearchForward
)

// Search performs an incremental substring search for needle starting just
// before/after fromIdx (exclusive) in the given direction, returning the
// first matching entry. ok is false if nothing matched.
func (h *History) Search(needle string, fromIdx int, dir SearchDirection) (HistoryEntry, bool) {
	if needle == "" {
		return HistoryEntry{}, false
	}
	if dir == SearchBackward {
		for pos := fromIdx - h.base - 1; pos >= 0; pos-- {
			if containsSubstring(h.entries[pos].Text, needle) {
				return h.entries[pos], true
			}
		}
		return HistoryEntry{}, false
	}
	for pos := fromIdx - h.base + 1; pos < len(h.entries); pos++ {
		if containsSubstring(h.entries[pos].Text, needle) {
			return h.entries[pos], true
		}
	}
	return HistoryEntry{}, false
}

// FindStartingWith returns the most recent entry before fromIdx whose text
// starts with prefix.
func (h *History) FindStartingWith(prefix string, fromIdx int) (HistoryEntry, bool) {
	for pos := fromIdx - h.base - 1; pos >= 0; pos-- {
		if hasPrefix(h.entries[pos].Text, prefix) {
			return h.entries[pos], true
		}
	}
	return HistoryEntry{}, false
}

// FindContaining returns the most recent entry before fromIdx whose text
// contains needle (used by the `!?str?` event expansion).
func (h *History) FindContaining(needle string, fromIdx int) (HistoryEntry, bool) {
	for pos := fromIdx - h.base - 1; pos >= 0; pos-- {
		if containsSubstring(h.entries[pos].Text, needle) {
			return h.entries[pos], true
		}
	}
	return HistoryEntry{}, false
}

func containsSubstring(haystack, needle string) bool {
	return indexOf(haystack, needle) >= 0
}

func hasPrefix(s, prefix string) bool {
	if len(prefix) > len(s) {
		return false
	}
	return s[:len(prefix)] == prefix
}

func indexOf(haystack, needle string) int {
	n, m := len(haystack), len(needle)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if haystack[i:i+m] == needle {
			return i
		}
	}
	return -1
}
