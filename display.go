package lineedit

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Frame is everything Display needs to redraw one prompt/line pair (§4.5).
type Frame struct {
	Prompt      string
	RightPrompt string
	Text        string // highlighted buffer text; may differ in length from RawLen if the Highlighter adds escapes
	RawLen      int    // rune length of the unhighlighted buffer, for cursor placement
	Cursor      int    // rune offset into the unhighlighted buffer
	Mask        rune   // 0 = echo normally, else show this char per input rune
	Full        bool   // force a full repaint (clear-screen)
	Post        string // extra lines appended below the edit line (completion list/menu grid); "\n"-separated

	// ContPrompts holds the secondary prompt to draw after each embedded
	// "\n" in Text, in order; a missing entry for a given newline falls
	// back to "> " (§4.5).
	ContPrompts []string
}

// Display renders Frames incrementally: it wraps the prompt+text to the
// terminal width with the injected WidthFunc, then diffs the new wrapped
// lines against the previous frame's so only the screen lines actually
// touched by an edit get rewritten (§4.5). The diff joins each frame's
// wrapped lines with a private delimiter and runs a Myers diff over the
// joined strings, so a line that merely shifted up or down because an
// earlier line grew or shrank is still recognized as unchanged.
type Display struct {
	term       Terminal
	widthFn    WidthFunc
	padPrompts bool

	priorLines []string
	priorRow   int // cursor row within priorLines, 0-based
	priorCol   int

	dmp *diffmatchpatch.DiffMatchPatch
}

// NewDisplay creates a Display writing to term.
func NewDisplay(term Terminal, widthFn WidthFunc, padPrompts bool) *Display {
	return &Display{
		term:       term,
		widthFn:    widthFn,
		padPrompts: padPrompts,
		dmp:        diffmatchpatch.New(),
	}
}

// Render draws f, reusing as much of the terminal's existing content as
// possible.
func (d *Display) Render(f Frame) {
	size, err := d.term.Size()
	if err != nil || size.Cols <= 0 {
		size = Size{Cols: 80, Rows: 24}
	}

	masked := f.Text
	if f.Mask != 0 {
		masked = strings.Repeat(string(f.Mask), f.RawLen)
	}

	lines, cursorRow, cursorCol := d.wrap(f.Prompt, masked, f.Cursor, size.Cols, f.ContPrompts)
	if f.Post != "" {
		// Post lines are pre-formatted (column layout already applied by the
		// caller) and never contribute to cursor placement, so they're
		// appended after wrap() has already located the cursor.
		lines = append(lines, strings.Split(f.Post, "\n")...)
	}

	if f.Full || len(d.priorLines) == 0 {
		d.term.Put(CapClearScreen)
		for i, ln := range lines {
			if i > 0 {
				d.term.WriteString("\r\n")
			}
			d.term.WriteString(ln)
		}
	} else {
		d.renderDiff(lines)
	}

	// The right prompt is drawn while the cursor still sits at the bottom
	// of the frame (where the repaint above left it) and restores that
	// position itself, so the final move below can assume a stable start.
	if f.RightPrompt != "" {
		d.drawRightPrompt(f.RightPrompt, size.Cols, lines)
	}
	d.moveCursorTo(len(lines)-1, cursorRow, cursorCol, lines[cursorRow])
	d.term.Flush()

	d.priorLines = lines
	d.priorRow, d.priorCol = cursorRow, cursorCol
}

// wrap soft-wraps prompt+text to width columns using widthFn, returning the
// wrapped screen lines and the (row, col) the cursor lands on. Each
// embedded "\n" in text starts its screen line with the corresponding
// entry of contPrompts (or "> " if contPrompts doesn't cover it), the
// secondary prompt of §4.5.
func (d *Display) wrap(prompt, text string, cursor int, width int, contPrompts []string) (lines []string, cursorRow, cursorCol int) {
	if width <= 0 {
		width = 80
	}
	var cur strings.Builder
	col := 0
	emit := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		col = 0
	}
	for _, r := range prompt {
		cur.WriteRune(r)
		col += d.widthFn(r)
	}
	runes := []rune(text)
	contIdx := 0
	for i, r := range runes {
		if i == cursor {
			cursorRow = len(lines)
			cursorCol = col
		}
		w := d.widthFn(r)
		if col+w > width && col > 0 {
			emit()
		}
		if r == '\n' {
			emit()
			sp := "> "
			if contIdx < len(contPrompts) {
				sp = contPrompts[contIdx]
			}
			contIdx++
			for _, pr := range sp {
				cur.WriteRune(pr)
				col += d.widthFn(pr)
			}
			continue
		}
		cur.WriteRune(r)
		col += w
	}
	if cursor >= len(runes) {
		cursorRow = len(lines)
		cursorCol = col
	}
	lines = append(lines, cur.String())
	return lines, cursorRow, cursorCol
}

// renderDiff rewrites only the screen lines that actually changed between
// d.priorLines and lines. diffLineRange turns dmp's character-level diff
// over the sep-joined frames into a line range, which is what lets a line
// that only moved (because an earlier line was inserted or removed) stay
// unrewritten instead of being treated as changed just because its index
// shifted.
func (d *Display) renderDiff(lines []string) {
	const sep = "\x00"
	a := strings.Join(d.priorLines, sep)
	b := strings.Join(lines, sep)
	diffs := d.dmp.DiffMain(a, b, false)

	first, _, last := diffLineRange(diffs)
	if first < 0 {
		// The two frames wrap to identical lines; nothing to repaint, only
		// bring the cursor down to the bottom row Render expects.
		d.moveCursorTo(d.priorRow, len(lines)-1, 0, "")
		return
	}
	if first > len(lines) {
		first = len(lines)
	}
	if last >= len(lines) {
		last = len(lines) - 1
	}

	d.moveCursorTo(d.priorRow, first, 0, "")
	for i := first; i <= last; i++ {
		if i > first {
			d.term.WriteString("\r\n")
		}
		d.term.WriteString(lines[i])
		d.term.Put(CapClearToEOL)
	}
	for i := last + 1; i < len(lines); i++ {
		d.term.WriteString("\r\n")
	}
	for i := len(lines); i < len(d.priorLines); i++ {
		d.term.WriteString("\r\n")
		d.term.Put(CapClearToEOL)
	}
	for i := len(lines); i < len(d.priorLines); i++ {
		d.term.Put(CapCursorUp)
	}
}

// diffLineRange walks diffs -- computed over "\x00"-joined screen lines --
// and returns the first line touched by a change and the last line touched
// in each frame. Counting separator occurrences per diff chunk rather than
// comparing lines pairwise by index is what lets a block of lines that
// merely shifted (an earlier insert or delete) stay out of the range.
// Returns first == -1 when the two frames are identical.
func diffLineRange(diffs []diffmatchpatch.Diff) (first, lastOld, lastNew int) {
	first = -1
	var oldLine, newLine int
	for _, dl := range diffs {
		n := strings.Count(dl.Text, "\x00")
		switch dl.Type {
		case diffmatchpatch.DiffEqual:
			oldLine += n
			newLine += n
		case diffmatchpatch.DiffDelete:
			if first == -1 {
				first = newLine
			}
			oldLine += n
			lastOld, lastNew = oldLine, newLine
		case diffmatchpatch.DiffInsert:
			if first == -1 {
				first = newLine
			}
			newLine += n
			lastOld, lastNew = oldLine, newLine
		}
	}
	return first, lastOld, lastNew
}

// moveCursorTo repositions the terminal cursor from row fromRow to
// (toRow, toCol). Terminal exposes no absolute-column primitive and no
// cursor-up-preserving-column guarantee worth relying on, so every move
// re-homes to column 0 with a carriage return and reaches toCol by writing
// destLine's own prefix back out -- the same trick used for a rewritten
// line elsewhere in this file, just bounded to the cursor's column.
func (d *Display) moveCursorTo(fromRow, toRow, toCol int, destLine string) {
	for i := 0; i < fromRow-toRow; i++ {
		d.term.Put(CapCursorUp)
	}
	if toRow > fromRow {
		for i := 0; i < toRow-fromRow; i++ {
			d.term.WriteString("\r\n")
		}
	}
	d.term.Put(CapCarriageReturn)
	runes := []rune(destLine)
	if toCol > len(runes) {
		toCol = len(runes)
	}
	if toCol > 0 {
		d.term.WriteString(string(runes[:toCol]))
	}
}

// drawRightPrompt right-aligns s on the first screen row (§4.5), leaving the
// cursor back on the bottom row -- at column 0 when the frame has more than
// one row, just after s when it has only one. moveCursorTo starts with a
// carriage return, so the caller's subsequent cursor placement doesn't need
// to know it ran.
func (d *Display) drawRightPrompt(s string, width int, lines []string) {
	if len(lines) == 0 {
		return
	}
	w := 0
	for _, r := range s {
		w += d.widthFn(r)
	}
	top := lines[0]
	topW := 0
	for _, r := range top {
		topW += d.widthFn(r)
	}
	if topW+w >= width {
		return // no room left of the edit line to fit it without overlap
	}

	bottom := len(lines) - 1
	for i := 0; i < bottom; i++ {
		d.term.Put(CapCursorUp)
	}
	d.term.Put(CapCarriageReturn)
	d.term.WriteString(top)
	d.term.WriteString(strings.Repeat(" ", width-topW-w))
	d.term.WriteString(s)
	for i := 0; i < bottom; i++ {
		d.term.WriteString("\r\n")
	}
}
