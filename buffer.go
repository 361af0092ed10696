package lineedit

// Snapshot is an immutable (text, cursor) pair (§3), used by UndoTree,
// history recall and the completion preview path.
type Snapshot struct {
	Text   string
	Cursor int
}

// Buffer is the single-owner mutable text store: an ordered sequence of
// Unicode code points with a cursor in [0, length] (§3, §4.2). It is
// generalized from the teacher's byte-oriented Editor in
// kungfusheep-browse/lineedit/editor.go to operate on runes, as required by
// a terminal line editor that must not split multi-byte characters.
type Buffer struct {
	text   []rune
	cursor int
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer { return &Buffer{} }

// Len returns the number of code points in the buffer.
func (b *Buffer) Len() int { return len(b.text) }

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor clamps pos into [0, length] and sets the cursor.
func (b *Buffer) SetCursor(pos int) {
	b.cursor = clamp(pos, 0, len(b.text))
}

// String returns the full buffer text.
func (b *Buffer) String() string { return string(b.text) }

// Clear empties the buffer and resets the cursor.
func (b *Buffer) Clear() {
	b.text = b.text[:0]
	b.cursor = 0
}

// Load replaces the buffer text, clamping the cursor into range rather than
// forcing it to the end — distinct from Set, which always moves to the end.
func (b *Buffer) Load(s Snapshot) {
	b.text = []rune(s.Text)
	b.cursor = clamp(s.Cursor, 0, len(b.text))
}

// Set replaces the text and moves the cursor to the end.
func (b *Buffer) Set(s string) {
	b.text = []rune(s)
	b.cursor = len(b.text)
}

// Copy returns an immutable snapshot of the current state.
func (b *Buffer) Copy() Snapshot {
	return Snapshot{Text: string(b.text), Cursor: b.cursor}
}

// AtChar returns the code point at absolute index i, or 0 if i is out of
// range — it never panics (§3, §4.2 invariant).
func (b *Buffer) AtChar(i int) rune {
	if i < 0 || i >= len(b.text) {
		return 0
	}
	return b.text[i]
}

// CurrChar returns the code point at the cursor (0 past end).
func (b *Buffer) CurrChar() rune { return b.AtChar(b.cursor) }

// PrevChar returns the code point before the cursor (0 at start).
func (b *Buffer) PrevChar() rune { return b.AtChar(b.cursor - 1) }

// NextChar returns the code point after the cursor (0 past end-1).
func (b *Buffer) NextChar() rune { return b.AtChar(b.cursor + 1) }

// Substring returns the code points in [a, b), clamped to bounds.
func (b *Buffer) Substring(a, end int) string {
	a = clamp(a, 0, len(b.text))
	end = clamp(end, 0, len(b.text))
	if a > end {
		a, end = end, a
	}
	return string(b.text[a:end])
}

// Write inserts s at the cursor. If overtype is true, it overwrites
// existing characters instead of shifting them right (§4.2).
func (b *Buffer) Write(s string, overtype bool) {
	if s == "" {
		return
	}
	runes := []rune(s)
	if overtype {
		end := clamp(b.cursor+len(runes), 0, len(b.text))
		copy(b.text[b.cursor:end], runes[:end-b.cursor])
		if remainder := len(runes) - (end - b.cursor); remainder > 0 {
			b.text = append(b.text, runes[len(runes)-remainder:]...)
		}
		b.cursor += len(runes)
		return
	}
	b.text = append(b.text[:b.cursor], append(append([]rune{}, runes...), b.text[b.cursor:]...)...)
	b.cursor += len(runes)
}

// Backspace deletes up to n characters before the cursor. Returns the
// number actually deleted.
func (b *Buffer) Backspace(n int) int {
	if n <= 0 {
		return 0
	}
	n = min(n, b.cursor)
	b.text = append(b.text[:b.cursor-n], b.text[b.cursor:]...)
	b.cursor -= n
	return n
}

// Delete deletes up to n characters starting at the cursor (forward
// delete). Returns the number actually deleted.
func (b *Buffer) Delete(n int) int {
	if n <= 0 {
		return 0
	}
	n = min(n, len(b.text)-b.cursor)
	if n <= 0 {
		return 0
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+n:]...)
	return n
}

// DeleteRange removes [a, end) and positions the cursor at a.
func (b *Buffer) DeleteRange(a, end int) {
	a = clamp(a, 0, len(b.text))
	end = clamp(end, 0, len(b.text))
	if a > end {
		a, end = end, a
	}
	b.text = append(b.text[:a], b.text[end:]...)
	b.cursor = a
}

// Move shifts the cursor by delta, clamped to [0, length], and returns the
// actual signed delta applied.
func (b *Buffer) Move(delta int) int {
	start := b.cursor
	b.SetCursor(b.cursor + delta)
	return b.cursor - start
}

// Up moves the cursor to the same column on the previous logical line
// (one delimited by '\n'). Returns false if already on the first line.
func (b *Buffer) Up() bool {
	lineStart := b.lineStart(b.cursor)
	if lineStart == 0 {
		return false
	}
	col := b.cursor - lineStart
	prevEnd := lineStart - 1 // the '\n'
	prevStart := b.lineStart(prevEnd)
	prevLen := prevEnd - prevStart
	b.cursor = prevStart + min(col, prevLen)
	return true
}

// Down moves the cursor to the same column on the next logical line.
// Returns false if already on the last line.
func (b *Buffer) Down() bool {
	lineStart := b.lineStart(b.cursor)
	lineEnd := b.lineEnd(b.cursor)
	if lineEnd == len(b.text) {
		return false
	}
	col := b.cursor - lineStart
	nextStart := lineEnd + 1
	nextEnd := b.lineEnd(nextStart)
	nextLen := nextEnd - nextStart
	b.cursor = nextStart + min(col, nextLen)
	return true
}

func (b *Buffer) lineStart(pos int) int {
	for i := pos - 1; i >= 0; i-- {
		if b.text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

func (b *Buffer) lineEnd(pos int) int {
	for i := pos; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			return i
		}
	}
	return len(b.text)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
