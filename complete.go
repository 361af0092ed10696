package lineedit

import (
	"fmt"
	"sort"
	"strings"
)

func init() {
	registerWidget("complete-word", wCompleteWord)
	registerWidget("list-choices", wListChoices)
	registerWidget("menu-complete", wMenuComplete)
	registerWidget("reverse-menu-complete", wReverseMenuComplete)
	registerWidget("menu-left", wMenuLeft)
	registerWidget("menu-right", wMenuRight)
	registerWidget("menu-up", wMenuUp)
	registerWidget("menu-down", wMenuDown)
	registerWidget("menu-commit", wMenuCommit)
	registerWidget("menu-accept", wMenuAccept)
	registerWidget("visual-mode", wVisualMode)
}

// completionState holds the candidate list an interactive menu is cycling
// through; index is the position of the candidate currently written into
// the buffer (§4.4 Menu). groups is the same candidates laid out the way
// they're rendered (grouped and sorted), computed once at entry so that
// cardinal movement and the grid footer agree with what's on screen.
type completionState struct {
	groups     []candidateGroup
	candidates []Candidate // flattened groups, in render order
	index      int
	wordStart  int
	wordEnd    int
	prevMap    string
}

func flattenGroups(groups []candidateGroup) []Candidate {
	var flat []Candidate
	for _, g := range groups {
		flat = append(flat, g.cands...)
	}
	return flat
}

// wCompleteWord runs the three-stage match cascade -- prefix, then
// substring, then typo-tolerant -- bucketing and merging candidates that
// share a Key, and either accepts a single exact match outright, extends
// the common prefix, lists ambiguous matches, or enters the interactive
// menu, per the do-complete algorithm (§4.4). Step 1, history expansion,
// runs first via tryHistoryExpand; if it rewrites the buffer the widget
// returns without completing.
func wCompleteWord(r *Reader) bool {
	if r.tryHistoryExpand() {
		return true
	}
	if r.Completer == nil {
		return false
	}
	pl, err := r.Parser.Parse(r.Buf.String(), r.Buf.Cursor())
	if err != nil {
		return false
	}
	raw := r.Completer.Complete(r, pl)
	cands := mergeByKey(raw)
	if len(cands) == 0 {
		return false
	}

	wordStart := r.Buf.Cursor() - pl.WordCursor
	wordEnd := wordStart + len([]rune(pl.Word))

	matches := matchCascade(cands, pl.Word, r.Config.CaseInsensitiveComplete, r.Config.Errors)
	if len(matches) == 0 {
		r.bell()
		return false
	}

	if len(matches) == 1 {
		return acceptCompletion(r, matches[0], wordStart, wordEnd)
	}

	if r.Config.RecognizeExact {
		for _, c := range matches {
			if c.Complete && equalFold(c.Value, pl.Word, r.Config.CaseInsensitiveComplete) {
				return acceptCompletion(r, c, wordStart, wordEnd)
			}
		}
	}

	if r.Config.MenuComplete {
		r.enterMenu(matches, wordStart, wordEnd)
		return true
	}

	prefix := commonPrefix(matches)
	extended := false
	if len([]rune(prefix)) > len([]rune(pl.Word)) {
		r.Buf.DeleteRange(wordStart, wordEnd)
		r.Buf.SetCursor(wordStart)
		r.Buf.Write(prefix, false)
		wordEnd = wordStart + len([]rune(prefix))
		extended = true
	}

	switch {
	case r.Config.AutoList:
		r.showList(matches)
		if r.Config.AutoMenu {
			r.enterMenu(matches, wordStart, wordEnd)
		}
		return true
	case r.Config.ListAmbiguous:
		r.showList(matches)
		return true
	case extended:
		return true
	default:
		r.bell()
		return false
	}
}

// wListChoices is do-complete with kind=List (§4.4 step 6): it never edits
// the buffer, it only shows what's possible.
func wListChoices(r *Reader) bool {
	if r.tryHistoryExpand() {
		return true
	}
	if r.Completer == nil {
		return false
	}
	pl, err := r.Parser.Parse(r.Buf.String(), r.Buf.Cursor())
	if err != nil {
		return false
	}
	cands := mergeByKey(r.Completer.Complete(r, pl))
	matches := matchCascade(cands, pl.Word, r.Config.CaseInsensitiveComplete, r.Config.Errors)
	if len(matches) == 0 {
		r.bell()
		return false
	}
	r.showList(matches)
	return true
}

// tryHistoryExpand is do-complete step 1 (§4.4): before any matching
// happens, give history expansion a chance to rewrite the whole buffer --
// doExpandHist in the original -- and if it changed anything, the widget
// is done; there's nothing left to complete against.
func (r *Reader) tryHistoryExpand() bool {
	if r.Config.DisableEventExpansion {
		return false
	}
	line := r.Buf.String()
	expanded, err := r.expandEvents(line)
	if err != nil || expanded == line {
		return false
	}
	r.Buf.Set(expanded)
	return true
}

func acceptCompletion(r *Reader, c Candidate, wordStart, wordEnd int) bool {
	insertCandidate(r, c, wordStart, wordEnd)
	handleSuffix(r, c)
	return true
}

// handleSuffix implements do-complete step 7's suffix stripping: once a
// candidate with a removable Suffix has been inserted, the very next
// binding decides whether to strip it -- a self-insert of a
// RemoveSuffixChars rune, or accept-line, strips the suffix (replacing it
// with a space unless the triggering rune already was one) -- and the
// binding is then pushed back so it still runs normally.
func handleSuffix(r *Reader, c Candidate) {
	if c.Suffix == "" {
		return
	}
	r.render()
	b, keys, err := r.binding.ReadBinding(r.maps[r.primaryName], r.maps["main"])
	if err != nil || len(keys) == 0 {
		return
	}
	name := bindingWidgetName(b)
	removeChar := name == "self-insert" && len(keys) == 1 && strings.ContainsRune(r.Config.RemoveSuffixChars, keys[0])
	if removeChar || name == "accept-line" {
		stripSuffix(r, c.Suffix)
		if !(removeChar && keys[0] == ' ') {
			r.Buf.Write(" ", false)
		}
	}
	r.binding.RunMacro(keys)
}

func stripSuffix(r *Reader, suffix string) {
	n := len([]rune(suffix))
	end := r.Buf.Cursor()
	start := end - n
	if start < 0 {
		start = 0
	}
	r.Buf.DeleteRange(start, end)
	r.Buf.SetCursor(start)
}

// bindingWidgetName names the widget a binding would dispatch to, the same
// way Reader.dispatch resolves it, without actually invoking it.
func bindingWidgetName(b *Binding) string {
	switch b.Kind {
	case BindReference:
		return b.Name
	case BindMacro:
		return ""
	default:
		if b.Name != "" {
			return b.Name
		}
		return "self-insert"
	}
}

// enterMenu switches into the menu keymap and writes the first candidate,
// so the grid appears with a selection highlighted as soon as menu mode
// starts (§4.4 step 8, Menu).
func (r *Reader) enterMenu(matches []Candidate, wordStart, wordEnd int) {
	groups := layoutGroups(matches, r.Config.Group)
	r.comp = &completionState{
		groups:     groups,
		candidates: flattenGroups(groups),
		wordStart:  wordStart,
		wordEnd:    wordEnd,
		prevMap:    r.primaryName,
	}
	r.SetPrimaryMap("menu")
	applyMenuCandidate(r)
}

func applyMenuCandidate(r *Reader) {
	c := r.comp.candidates[r.comp.index]
	r.Buf.DeleteRange(r.comp.wordStart, r.comp.wordEnd)
	r.Buf.SetCursor(r.comp.wordStart)
	r.Buf.Write(c.Value, false)
	r.comp.wordEnd = r.comp.wordStart + len([]rune(c.Value))
}

func wMenuComplete(r *Reader) bool {
	if r.comp == nil || len(r.comp.candidates) == 0 {
		return false
	}
	r.comp.index = (r.comp.index + 1) % len(r.comp.candidates)
	applyMenuCandidate(r)
	return true
}

func wReverseMenuComplete(r *Reader) bool {
	if r.comp == nil || len(r.comp.candidates) == 0 {
		return false
	}
	n := len(r.comp.candidates)
	r.comp.index = (r.comp.index - 1 + n) % n
	applyMenuCandidate(r)
	return true
}

// menuGroupOffset locates which group holds r.comp.index and the
// candidate's offset within that group, for cardinal movement.
func menuGroupOffset(r *Reader) (group candidateGroup, base, offset int, ok bool) {
	idx := r.comp.index
	for _, g := range r.comp.groups {
		if idx < len(g.cands) {
			return g, r.comp.index - idx, idx, true
		}
		idx -= len(g.cands)
	}
	return candidateGroup{}, 0, 0, false
}

// findCell locates the (row, col) that cellIndex maps to offset, within a
// columns x rows grid.
func findCell(rowsFirst bool, offset, columns, rows int) (row, col int, ok bool) {
	for i := 0; i < rows; i++ {
		for j := 0; j < columns; j++ {
			if cellIndex(rowsFirst, i, j, columns, rows) == offset {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// moveMenuCardinal moves the selection by (dRow, dCol) cells within the
// group containing the current selection, clamping at the group's edges
// rather than wrapping or crossing into another group (§4.4 Menu, "arrow
// keys move cardinally").
func moveMenuCardinal(r *Reader, dRow, dCol int) bool {
	if r.comp == nil || len(r.comp.candidates) == 0 {
		return false
	}
	g, base, offset, ok := menuGroupOffset(r)
	if !ok {
		return false
	}
	size := r.termSize()
	columns, _ := gridLayout(r.WidthFn, r.comp.groups, size.Cols)
	rows := (len(g.cands) + columns - 1) / columns
	row, col, ok := findCell(r.Config.ListRowsFirst, offset, columns, rows)
	if !ok {
		return false
	}
	row += dRow
	col += dCol
	if row < 0 || row >= rows || col < 0 || col >= columns {
		return false
	}
	newOffset := cellIndex(r.Config.ListRowsFirst, row, col, columns, rows)
	if newOffset < 0 || newOffset >= len(g.cands) {
		return false
	}
	r.comp.index = base + newOffset
	applyMenuCandidate(r)
	return true
}

func wMenuLeft(r *Reader) bool  { return moveMenuCardinal(r, 0, -1) }
func wMenuRight(r *Reader) bool { return moveMenuCardinal(r, 0, 1) }
func wMenuUp(r *Reader) bool    { return moveMenuCardinal(r, -1, 0) }
func wMenuDown(r *Reader) bool  { return moveMenuCardinal(r, 1, 0) }

// wMenuCommit is the menu keymap's default binding: any key that isn't a
// navigation key commits the current selection and re-dispatches itself
// against the restored keymap (§4.4 Menu, "other keys commit the
// selection and re-dispatch"). Enter is special-cased to run accept-line
// directly rather than rebind through "\r", since the menu map's own "\r"
// binding would otherwise just re-enter this widget; backward-delete-char
// is absorbed into stripping the suffix rather than also deleting the
// character before it.
func wMenuCommit(r *Reader) bool {
	if r.comp == nil || len(r.comp.candidates) == 0 {
		return false
	}
	c := r.comp.candidates[r.comp.index]
	keys := r.LastBinding()
	isAccept := len(keys) == 1 && (keys[0] == '\r' || keys[0] == '\n')
	isBackspace := len(keys) == 1 && (keys[0] == Del || keys[0] == Ctrl('H'))
	removeChar := len(keys) == 1 && strings.ContainsRune(r.Config.RemoveSuffixChars, keys[0])

	if c.Suffix != "" && (removeChar || isAccept || isBackspace) {
		stripSuffix(r, c.Suffix)
	}
	if c.Complete && len(keys) == 1 && keys[0] != ' ' {
		r.Buf.Write(" ", false)
	}

	r.SetPrimaryMap(r.comp.prevMap)
	r.comp = nil

	switch {
	case isAccept:
		if fn, ok := r.Widgets.Get("accept-line"); ok {
			return fn(r)
		}
	case isBackspace:
		// the suffix strip above already consumed this keystroke.
	case removeChar && strings.HasPrefix(c.Suffix, string(keys[0])):
		// the typed separator already matches the suffix just stripped.
	default:
		r.binding.RunMacro(keys)
	}
	return true
}

func wMenuAccept(r *Reader) bool {
	if r.comp != nil {
		r.SetPrimaryMap(r.comp.prevMap)
		r.comp = nil
	}
	return true
}

func wVisualMode(r *Reader) bool {
	r.SetMark(r.Buf.Cursor())
	r.SetPrimaryMap("visual")
	return true
}

// mergeByKey coalesces candidates sharing a non-empty Key into one,
// emitted at the position of that key's first occurrence: sort the group
// by Value, keep the first candidate's metadata, concatenate every Displ
// with single spaces, drop Key on the result (§4.4 Candidate merging).
func mergeByKey(cands []Candidate) []Candidate {
	groups := map[string][]Candidate{}
	for _, c := range cands {
		if c.Key != "" {
			groups[c.Key] = append(groups[c.Key], c)
		}
	}
	out := make([]Candidate, 0, len(cands))
	emitted := map[string]bool{}
	for _, c := range cands {
		if c.Key == "" {
			out = append(out, c)
			continue
		}
		if emitted[c.Key] {
			continue
		}
		emitted[c.Key] = true
		group := append([]Candidate{}, groups[c.Key]...)
		sort.Slice(group, func(i, j int) bool { return group[i].Value < group[j].Value })
		displ := make([]string, len(group))
		for i, gc := range group {
			displ[i] = displOf(gc)
		}
		merged := group[0]
		merged.Displ = strings.Join(displ, " ")
		merged.Key = ""
		out = append(out, merged)
	}
	return out
}

// matchCascade runs the three-stage match: prefix, then substring, then a
// typo-tolerant stage comparing the word against just the candidate's
// leading min(len(candidate), len(word)) runes -- a candidate far longer
// than the typed word shouldn't be penalized for the tail it hasn't
// typed yet (§4.4 step 5, typoMatcher). When more than one candidate
// survives the typo stage, the word itself is added back as a candidate
// labeled "original" so the user can keep what they typed instead of
// picking a guess.
func matchCascade(cands []Candidate, word string, caseInsensitive bool, maxErrors int) []Candidate {
	var prefixed, substr, typo []Candidate
	for _, c := range cands {
		v, w := c.Value, word
		if caseInsensitive {
			v, w = strings.ToLower(v), strings.ToLower(w)
		}
		switch {
		case strings.HasPrefix(v, w):
			prefixed = append(prefixed, c)
		case strings.Contains(v, w):
			substr = append(substr, c)
		default:
			vr := []rune(v)
			n := min(len(vr), len([]rune(w)))
			if levenshtein(w, string(vr[:n])) < maxErrors {
				typo = append(typo, c)
			}
		}
	}
	if len(prefixed) > 0 {
		return prefixed
	}
	if len(substr) > 0 {
		return substr
	}
	if len(typo) > 1 {
		typo = append(typo, Candidate{Value: word, Descr: "original"})
	}
	return typo
}

func equalFold(a, b string, caseInsensitive bool) bool {
	if caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

func commonPrefix(cands []Candidate) string {
	if len(cands) == 0 {
		return ""
	}
	prefix := []rune(cands[0].Value)
	for _, c := range cands[1:] {
		v := []rune(c.Value)
		n := min(len(prefix), len(v))
		i := 0
		for i < n && prefix[i] == v[i] {
			i++
		}
		prefix = prefix[:i]
	}
	return string(prefix)
}

func insertCandidate(r *Reader, c Candidate, wordStart, wordEnd int) bool {
	r.Buf.DeleteRange(wordStart, wordEnd)
	r.Buf.SetCursor(wordStart)
	val := c.Value
	if c.Complete {
		val += " "
	}
	r.Buf.Write(val, false)
	return true
}

// levenshtein computes the standard single-row edit-distance, used by the
// typo-tolerant completion stage. No pack example imports a dedicated
// edit-distance library for application code (sahilm/fuzzy appears only
// transitively), so this is the one deliberately stdlib-only algorithm in
// the package.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			cur[j] = min(del, min(ins, sub))
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// --- List / Menu rendering (§4.4 List, Menu) ---

const (
	marginBetweenColumns        = 3
	marginBetweenDisplayAndDesc = 1
	descPrefix                  = "("
	descSuffix                  = ")"
)

// candidateGroup is one named bucket of candidates for list/menu
// rendering; name is "" when GROUP is off or the candidate has no group.
type candidateGroup struct {
	name  string
	cands []Candidate
}

// layoutGroups buckets cands by Candidate.Group when group is set (empty
// group renamed "others" when it coexists with named groups), sorting
// every bucket's candidates by Value either way (§4.4 List).
func layoutGroups(cands []Candidate, group bool) []candidateGroup {
	if !group {
		sorted := append([]Candidate{}, cands...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })
		return []candidateGroup{{cands: sorted}}
	}
	var order []string
	seen := map[string]bool{}
	byGroup := map[string][]Candidate{}
	named := false
	for _, c := range cands {
		if !seen[c.Group] {
			seen[c.Group] = true
			order = append(order, c.Group)
		}
		byGroup[c.Group] = append(byGroup[c.Group], c)
		if c.Group != "" {
			named = true
		}
	}
	groups := make([]candidateGroup, 0, len(order))
	for _, g := range order {
		list := append([]Candidate{}, byGroup[g]...)
		sort.Slice(list, func(i, j int) bool { return list[i].Value < list[j].Value })
		name := g
		if name == "" && named {
			name = "others"
		}
		groups = append(groups, candidateGroup{name: name, cands: list})
	}
	return groups
}

func displOf(c Candidate) string {
	if c.Displ != "" {
		return c.Displ
	}
	return c.Value
}

func displayWidth(widthFn WidthFunc, s string) int {
	w := 0
	for _, r := range s {
		w += widthFn(r)
	}
	return w
}

func candidateCellWidth(widthFn WidthFunc, c Candidate) int {
	w := displayWidth(widthFn, displOf(c))
	if c.Descr != "" {
		w += marginBetweenDisplayAndDesc + len(descPrefix) + displayWidth(widthFn, c.Descr) + len(descSuffix)
	}
	return w
}

// gridLayout picks the column count as the largest c such that
// c*maxWidth + (c-1)*MARGIN_BETWEEN_COLUMNS < width (§4.4 Menu).
func gridLayout(widthFn WidthFunc, groups []candidateGroup, width int) (columns, maxWidth int) {
	for _, g := range groups {
		for _, c := range g.cands {
			if w := candidateCellWidth(widthFn, c); w > maxWidth {
				maxWidth = w
			}
		}
	}
	if maxWidth == 0 {
		maxWidth = 1
	}
	if maxWidth > width {
		maxWidth = width
	}
	columns = width / maxWidth
	if columns < 1 {
		columns = 1
	}
	for columns > 1 && columns*maxWidth+(columns-1)*marginBetweenColumns >= width {
		columns--
	}
	return columns, maxWidth
}

// cellIndex maps a (row, col) grid position to a candidate index,
// row-major when rowsFirst (LIST_ROWS_FIRST), column-major otherwise.
func cellIndex(rowsFirst bool, i, j, columns, rows int) int {
	if rowsFirst {
		return i*columns + j
	}
	return j*rows + i
}

func sameCandidate(a, b Candidate) bool {
	return a.Value == b.Value && a.Group == b.Group
}

// renderGroupGrid formats one group's candidates into a column grid,
// marking sel with inverse video when it falls in this group.
func renderGroupGrid(widthFn WidthFunc, cands []Candidate, columns, maxWidth int, rowsFirst bool, sel *Candidate) []string {
	if len(cands) == 0 {
		return nil
	}
	rows := (len(cands) + columns - 1) / columns
	lines := make([]string, rows)
	for i := 0; i < rows; i++ {
		var b strings.Builder
		for j := 0; j < columns; j++ {
			idx := cellIndex(rowsFirst, i, j, columns, rows)
			if idx >= len(cands) {
				continue
			}
			c := cands[idx]
			hasRight := j < columns-1 && cellIndex(rowsFirst, i, j+1, columns, rows) < len(cands)
			left := displOf(c)
			lw := displayWidth(widthFn, left)
			right := ""
			rw := 0
			if c.Descr != "" {
				right = descPrefix + c.Descr + descSuffix
				rw = displayWidth(widthFn, right)
			}
			pad := maxWidth - lw - rw
			if pad < 0 {
				pad = 0
			}
			selected := sel != nil && sameCandidate(*sel, c)
			if selected {
				b.WriteString("\x1b[7m")
			}
			b.WriteString(left)
			if right != "" || hasRight {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(right)
			if selected {
				b.WriteString("\x1b[0m")
			}
			if hasRight {
				b.WriteString(strings.Repeat(" ", marginBetweenColumns))
			}
		}
		lines[i] = b.String()
	}
	return lines
}

// buildListing renders groups as group-header-plus-grid text and reports
// the line index holding sel, or -1 if sel is nil or not found.
func buildListing(widthFn WidthFunc, groups []candidateGroup, width int, rowsFirst bool, sel *Candidate) (lines []string, selLine int) {
	selLine = -1
	columns, maxWidth := gridLayout(widthFn, groups, width)
	for _, g := range groups {
		if g.name != "" {
			lines = append(lines, g.name)
		}
		rows := (len(g.cands) + columns - 1) / columns
		base := len(lines)
		grid := renderGroupGrid(widthFn, g.cands, columns, maxWidth, rowsFirst, sel)
		if sel != nil && selLine == -1 {
			for i := 0; i < rows; i++ {
				for j := 0; j < columns; j++ {
					idx := cellIndex(rowsFirst, i, j, columns, rows)
					if idx < len(g.cands) && sameCandidate(g.cands[idx], *sel) {
						selLine = base + i
					}
				}
			}
		}
		lines = append(lines, grid...)
	}
	return lines, selLine
}

func (r *Reader) termSize() Size {
	size, err := r.Term.Size()
	if err != nil || size.Cols <= 0 {
		return Size{Cols: 80, Rows: 24}
	}
	return size
}

// promptRows reports how many screen rows the current prompt+buffer
// occupies, for List's overflow check and Menu's scroll window.
func (r *Reader) promptRows(width int) int {
	wrapped, _, _ := r.disp.wrap(r.prompt, r.Buf.String(), r.Buf.Cursor(), width, r.secondaryPrompts())
	return len(wrapped)
}

// showList renders cands as a one-shot columnar listing below the edit
// line, confirming first if it's too big to fit (§4.4 List).
func (r *Reader) showList(cands []Candidate) {
	groups := layoutGroups(cands, r.Config.Group)
	size := r.termSize()
	lines, _ := buildListing(r.WidthFn, groups, size.Cols, r.Config.ListRowsFirst, nil)
	overflow := len(lines) >= size.Rows-r.promptRows(size.Cols)
	if (r.Config.ListMax > 0 && len(cands) > r.Config.ListMax) || overflow {
		if !r.confirmListAll(len(cands), len(lines)) {
			return
		}
	}
	r.pendingList = strings.Join(lines, "\n")
}

// confirmListAll asks "do you wish to see all N possibilities (L lines)?"
// and reads one character; only y/Y/Tab proceeds (§4.4 List).
func (r *Reader) confirmListAll(n, lines int) bool {
	r.RequestFullRepaint()
	r.render()
	r.Term.WriteString("\r\n")
	r.Term.WriteString(fmt.Sprintf("do you wish to see all %d possibilities (%d lines)? ", n, lines))
	r.Term.Flush()
	c, err := r.Term.ReadChar()
	r.RequestFullRepaint()
	if err != nil {
		return false
	}
	return c == 'y' || c == 'Y' || c == '\t'
}

// menuPostText renders the active menu's grid, scrolled to keep the
// selected candidate visible with a "rows X to Y of Z" footer when the
// full grid doesn't fit (§4.4 Menu).
func (r *Reader) menuPostText() string {
	if r.comp == nil {
		return ""
	}
	size := r.termSize()
	sel := r.comp.candidates[r.comp.index]
	lines, selLine := buildListing(r.WidthFn, r.comp.groups, size.Cols, r.Config.ListRowsFirst, &sel)
	if len(lines) == 0 {
		return ""
	}
	avail := size.Rows - r.promptRows(size.Cols) - 1
	if avail < 1 {
		avail = 1
	}
	if len(lines) <= avail || selLine < 0 {
		return strings.Join(lines, "\n")
	}
	top := selLine - avail/2
	if top < 0 {
		top = 0
	}
	if top+avail > len(lines) {
		top = len(lines) - avail
	}
	bottom := top + avail
	footer := fmt.Sprintf("rows %d to %d of %d", top+1, bottom, len(lines))
	return strings.Join(lines[top:bottom], "\n") + "\n" + footer
}
