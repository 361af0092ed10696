package lineedit

import (
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/kungfusheep/lineedit/internal/width"
)

// State is the dispatch loop's current disposition (§4.6).
type State int

const (
	StateNormal State = iota
	StateDone
	StateEOF
	StateInterrupt
)

// findCharState is the vi f/F/t/T pending-repeat memory consulted by ';'
// and ',' (§4.3).
type findCharState struct {
	active  bool
	forward bool
	till    bool
	target  rune
}

// Reader is the dispatcher: it owns every mutable piece of editing state
// for one logical line editor and drives the read loop described in §4.6.
// One Reader may run many sequential ReadLine calls but never two
// concurrently (§5).
type Reader struct {
	Term        Terminal
	Config      Config
	WidthFn     WidthFunc
	Parser      Parser
	Completer   Completer
	Highlighter Highlighter
	Widgets     *WidgetRegistry
	DebugLog    *log.Logger

	Buf   *Buffer
	Undo  *UndoTree
	Kill  *KillRing
	Hist  *History

	binding *BindingReader
	maps    map[string]*KeyMap

	primaryName   string
	secondaryName string

	// count/mult implement the zsh-style numeric-argument accumulator
	// built by digit-argument / universal-argument / neg-argument (§4.3).
	count     int
	haveCount bool
	negative  bool

	state          State
	lastWidgetName string
	lastKeys       []rune

	prompt      string
	rightPrompt string
	mask        rune

	disp *Display

	reading bool

	viInsertMode bool // which of viins/vicmd is "home" when vi mode is active
	find         findCharState
	search       *searchState

	winch       bool
	interrupted bool

	fullRepaint bool // set by clear-screen (§3 SUPPLEMENTED FEATURES)

	mark int // set-mark-command position for the region widgets; -1 when unset

	overtype bool // toggled by overwrite-mode; consulted by self-insert and quoted-insert

	pendingOp      string // "delete"/"change"/"yank" while primaryName == "viopp"
	pendingOpStart int

	// opKilled is set by finishOperator whenever it just added to the kill
	// ring, for invoke to fold into Kill.LastKill: the vi operator-pending
	// widgets that reach finishOperator (vi-delete, vi-op-forward-word, ...)
	// don't carry "kill" in their own names, so the name-substring check
	// alone would never see consecutive d/c/y operators as a kill family.
	opKilled bool

	comp        *completionState
	pendingList string // one-shot list-choices rendering, consumed by the next render

	// contPrompts holds the secondary prompt recorded for each embedded
	// "\n" in the buffer, in order, frozen at the moment accept-line's
	// incomplete-parse handling inserted it (§4.5, §4.6 step f).
	contPrompts []string

	sessionID string
}

// LastWidgetIsYank reports whether the widget run immediately before the
// one currently executing was a yank/yank-pop, which is what lets
// yank-pop know it is allowed to rotate the kill ring instead of just
// failing (§3).
func (r *Reader) LastWidgetIsYank() bool { return r.Kill.LastYank }

// SetMark records pos as the region's other endpoint for
// kill-region/copy-region-as-kill (§4.3).
func (r *Reader) SetMark(pos int) { r.mark = pos }

// Mark returns the region mark, or -1 if unset.
func (r *Reader) Mark() int { return r.mark }

// ReaderOption configures a new Reader.
type ReaderOption func(*Reader)

// WithVi starts the reader in vi command mode instead of emacs mode.
func WithVi() ReaderOption {
	return func(r *Reader) { r.primaryName = "vicmd" }
}

// WithMask sets the character echoed in place of typed input (password
// entry); 0 disables masking.
func WithMask(mask rune) ReaderOption {
	return func(r *Reader) { r.mask = mask }
}

// WithHighlighter installs a Highlighter; without this option NopHighlighter
// is used.
func WithHighlighter(h Highlighter) ReaderOption {
	return func(r *Reader) { r.Highlighter = h }
}

// WithCompleter installs a Completer.
func WithCompleter(c Completer) ReaderOption {
	return func(r *Reader) { r.Completer = c }
}

// WithParser installs a Parser; without this option a parser that never
// splits words is used, which disables completion and event expansion's
// word-boundary features but still accepts lines.
func WithParser(p Parser) ReaderOption {
	return func(r *Reader) { r.Parser = p }
}

// WithWidthFunc overrides the default rune-width function.
func WithWidthFunc(f WidthFunc) ReaderOption {
	return func(r *Reader) { r.WidthFn = f }
}

// WithDebugLog installs a logger that receives one line per dispatched
// binding, tagged with a per-ReadLine session id. Nil (the default)
// disables logging entirely; the core never writes to stdout/stderr on its
// own (§1).
func WithDebugLog(l *log.Logger) ReaderOption {
	return func(r *Reader) { r.DebugLog = l }
}

// NewReader constructs a Reader over term using cfg, with emacs as the
// default keymap, the built-in widget registry, and NopHighlighter.
func NewReader(term Terminal, cfg Config, opts ...ReaderOption) *Reader {
	r := &Reader{
		Term:        term,
		Config:      cfg,
		WidthFn:     width.Default,
		Parser:      nullParser{},
		Highlighter: NopHighlighter{},
		Widgets:     NewWidgetRegistry(),
		Buf:         NewBuffer(),
		Kill:        NewKillRing(cfg.KillRingSize),
		Hist:        NewHistory(),
		primaryName: "emacs",
		mark:        -1,
	}
	r.Undo = NewUndoTree(r.Buf.Copy())
	r.maps = defaultKeyMaps()
	for _, o := range opts {
		o(r)
	}
	r.binding = NewBindingReader(term, cfg.AmbiguousBindingMs)
	r.disp = NewDisplay(term, r.WidthFn, cfg.PadPrompts)
	return r
}

type nullParser struct{}

func (nullParser) Parse(line string, cursor int) (ParsedLine, error) {
	return ParsedLine{Line: line, Cursor: cursor}, nil
}

// LastBinding returns the raw keys that produced the widget currently
// executing, for widgets like vi-repeat-find that need to know exactly
// what was typed (§4.1 step 5).
func (r *Reader) LastBinding() []rune { return r.lastKeys }

// LastWidgetName returns the name of the previously dispatched widget, for
// widgets that change behavior based on repetition (yank-pop after yank,
// kill-region coalescing).
func (r *Reader) LastWidgetName() string { return r.lastWidgetName }

// Count returns the pending numeric argument and whether one was
// explicitly supplied (digit-argument / universal-argument), and whether
// it should be read as negative (§4.3).
func (r *Reader) Count() (n int, explicit bool) {
	n = r.count
	if n == 0 && !r.haveCount {
		n = 1
	}
	if r.negative {
		n = -n
	}
	return n, r.haveCount
}

// Repeat runs fn Count() times (or once if no count was given), stopping
// early if fn reports failure, and returns whether every run succeeded.
func (r *Reader) Repeat(fn func() bool) bool {
	n, _ := r.Count()
	if n < 0 {
		n = -n
	}
	if n == 0 {
		n = 1
	}
	ok := true
	for i := 0; i < n; i++ {
		if !fn() {
			ok = false
			break
		}
	}
	return ok
}

func (r *Reader) resetCount() {
	r.count = 0
	r.haveCount = false
	r.negative = false
}

// SetPrimaryMap switches the primary keymap (e.g. vi insert <-> command
// mode). name must be a map installed on the Reader.
func (r *Reader) SetPrimaryMap(name string) {
	if _, ok := r.maps[name]; ok {
		r.primaryName = name
	}
}

// PrimaryMapName returns the active primary keymap's name.
func (r *Reader) PrimaryMapName() string { return r.primaryName }

// Map returns the named keymap, or nil.
func (r *Reader) Map(name string) *KeyMap { return r.maps[name] }

// RequestFullRepaint sets the flag clear-screen consults to force Display
// to redraw everything rather than diff against the prior frame (§3).
func (r *Reader) RequestFullRepaint() { r.fullRepaint = true }

// snapshotUndo commits the buffer's current state as a new undo point if
// it differs from the top of the tree.
func (r *Reader) snapshotUndo() {
	cur := r.Undo.Current()
	now := r.Buf.Copy()
	if cur.Text != now.Text {
		r.Undo.NewState(now)
	}
}

// ReadLine runs one interactive read: installs raw mode and signal
// handlers, loads initialBuffer, dispatches keys until a terminal widget
// sets state to Done/EOF/Interrupt, then restores the terminal and returns
// the accepted line (§4.6, §5).
func (r *Reader) ReadLine(prompt, rightPrompt string, initialBuffer string) (string, error) {
	if r.reading {
		return "", ErrReentrant
	}
	r.reading = true
	defer func() { r.reading = false }()

	r.sessionID = uuid.New().String()
	r.prompt, r.rightPrompt = prompt, rightPrompt
	r.state = StateNormal
	r.interrupted = false
	r.winch = false
	r.resetCount()
	r.comp = nil
	r.pendingList = ""
	r.contPrompts = nil
	r.Buf.Set(initialBuffer)
	r.Undo = NewUndoTree(r.Buf.Copy())
	r.Hist.MoveToEnd()

	prior, err := r.Term.EnterRawMode()
	if err != nil {
		return "", err
	}
	restoreInt := r.Term.InstallSignalHandler(SigInterrupt, func(Signal) { r.interrupted = true })
	restoreWinch := r.Term.InstallSignalHandler(SigWinch, func(Signal) { r.winch = true })
	defer func() {
		restoreInt()
		restoreWinch()
		r.Term.SetAttributes(prior)
	}()

	return r.runUntilDone()
}

// runUntilDone drives the dispatch loop to completion and resolves the
// final state. HISTORY_VERIFY re-enters it directly rather than calling the
// public ReadLine, since ReadLine's re-entrancy guard is already held by
// the outer call still on the stack at that point.
func (r *Reader) runUntilDone() (string, error) {
	r.render()
	for r.state == StateNormal {
		if r.winch {
			r.winch = false
			r.fullRepaint = true
		}
		if err := r.step(); err != nil {
			return "", err
		}
		if r.interrupted {
			r.interrupted = false
			return r.Buf.String(), &InterruptError{Partial: r.Buf.String()}
		}
		r.render()
	}

	switch r.state {
	case StateEOF:
		if r.Buf.Len() == 0 {
			return "", ErrEOF
		}
		return r.Buf.String(), nil
	case StateInterrupt:
		return r.Buf.String(), &InterruptError{Partial: r.Buf.String()}
	default:
		return r.finishAcceptLine()
	}
}

// step reads and dispatches exactly one binding.
func (r *Reader) step() error {
	primary := r.maps[r.primaryName]
	if primary == nil {
		primary = r.maps["safe"]
	}
	secondary := r.maps["main"]

	b, keys, err := r.binding.ReadBinding(primary, secondary)
	if err != nil {
		r.state = StateEOF
		return nil
	}
	r.lastKeys = keys
	if r.DebugLog != nil {
		r.DebugLog.Printf("session=%s keys=%q widget=%s", r.sessionID, string(keys), b.Name)
	}
	if r.search != nil {
		return r.dispatchSearch(b, keys)
	}
	return r.dispatch(b)
}

// dispatchSearch intercepts bindings while an incremental history search is
// active (§4.3 history-incremental-search-backward/forward), instead of
// letting them reach the normal self-insert/editing widgets: printable
// keys extend the needle, ^R/^S jump to the next match in the given
// direction, backward-delete-char narrows the needle, and anything else --
// a SearchTerminators key or any other binding -- ends the search keeping
// the current match and is re-dispatched normally, so e.g. accept-line
// still submits the matched line (grounded on doSearchHistory's read loop).
func (r *Reader) dispatchSearch(b *Binding, keys []rune) error {
	name := bindingWidgetName(b)
	switch {
	case name == "history-incremental-search-backward":
		if !r.searchAgain(SearchBackward) {
			r.bell()
		}
		return nil
	case name == "history-incremental-search-forward":
		if !r.searchAgain(SearchForward) {
			r.bell()
		}
		return nil
	case name == "backward-delete-char":
		if !r.searchBackspace() {
			r.bell()
		}
		return nil
	case name == "self-insert" && len(keys) == 1 && isPrintable(keys[0]):
		if !r.searchAppend(keys[0]) {
			r.bell()
		}
		return nil
	case len(keys) == 1 && strings.ContainsRune(r.Config.SearchTerminators, keys[0]):
		r.endSearch(true)
		return r.dispatch(b)
	default:
		r.endSearch(true)
		return r.dispatch(b)
	}
}

func (r *Reader) dispatch(b *Binding) error {
	switch b.Kind {
	case BindMacro:
		r.binding.RunMacro(b.Keys)
		return nil
	case BindReference:
		fn, ok := r.Widgets.Get(b.Name)
		if !ok {
			r.bell()
			return nil
		}
		return r.invoke(b.Name, fn)
	default:
		name := b.Name
		if name == "" {
			name = "self-insert"
		}
		return r.invoke(name, b.Fn)
	}
}

func (r *Reader) invoke(name string, fn WidgetFn) error {
	if fn == nil {
		r.bell()
		return nil
	}
	beforeKill := name
	r.opKilled = false
	ok := func() (ok bool) {
		defer func() {
			if v := recover(); v != nil {
				r.bell()
				ok = false
			}
		}()
		return fn(r)
	}()
	if !ok {
		r.bell()
	}
	if !beginsOperatorPending(beforeKill) {
		r.Kill.LastKill = (isKillWidget(beforeKill) || r.opKilled) && ok
		r.Kill.LastYank = isYankWidget(beforeKill) && ok
	}
	if !isDigitWidget(name) {
		r.resetCount()
	}
	r.lastWidgetName = name
	r.snapshotUndo()
	return nil
}

func isKillWidget(name string) bool { return strings.Contains(name, "kill") }
func isYankWidget(name string) bool { return strings.Contains(name, "yank") }

// beginsOperatorPending reports whether name just entered the viopp keymap
// to await a motion (vi-delete/vi-change/vi-yank) without itself touching
// the kill ring: like digit-argument, it's a prefix key, not a terminal
// action, so it must not overwrite Kill.LastKill/LastYank between the key
// that starts an operator and the key that supplies its motion -- doing so
// would make two consecutive "dw"s never coalesce, since finishOperator
// only runs on the second keystroke of each.
func beginsOperatorPending(name string) bool {
	switch name {
	case "vi-delete", "vi-change", "vi-yank":
		return true
	default:
		return false
	}
}
func isDigitWidget(name string) bool {
	return name == "digit-argument" || name == "universal-argument" || name == "neg-argument"
}

func (r *Reader) bell() {
	if r.Config.BellStyle == "audible" {
		r.Term.Put(CapBell)
	}
}

func (r *Reader) render() {
	highlighted := r.Highlighter.Highlight(r, r.Buf.String())
	r.disp.Render(Frame{
		Prompt:      r.prompt,
		RightPrompt: r.rightPrompt,
		Text:        highlighted,
		RawLen:      len([]rune(r.Buf.String())),
		Cursor:      r.Buf.Cursor(),
		Mask:        r.mask,
		Full:        r.fullRepaint,
		Post:        r.completionPost(),
		ContPrompts: r.secondaryPrompts(),
	})
	r.fullRepaint = false
}

// secondaryPrompts returns the continuation prompt to draw after each
// embedded "\n" currently in the buffer: the missing-closer hint recorded
// when that newline was inserted by an incomplete accept-line, or a plain
// "> " for any other newline (a vi-open-line-below, say). When PadPrompts
// is set they're right-padded to the widest prompt among them so every
// continuation line lines up (§4.5).
func (r *Reader) secondaryPrompts() []string {
	n := strings.Count(r.Buf.String(), "\n")
	if n == 0 {
		return nil
	}
	prompts := make([]string, n)
	for i := range prompts {
		if i < len(r.contPrompts) && r.contPrompts[i] != "" {
			prompts[i] = r.contPrompts[i]
		} else {
			prompts[i] = "> "
		}
	}
	if r.Config.PadPrompts {
		maxW := 0
		for _, p := range prompts {
			if w := displayWidth(r.WidthFn, p); w > maxW {
				maxW = w
			}
		}
		for i, p := range prompts {
			if w := displayWidth(r.WidthFn, p); w < maxW {
				prompts[i] = p + strings.Repeat(" ", maxW-w)
			}
		}
	}
	return prompts
}

// completionPost supplies the logical post() text appended below the edit
// line: a one-shot list rendering if one is pending, else the active
// menu's grid, else nothing (§4.5).
func (r *Reader) completionPost() string {
	if r.pendingList != "" {
		list := r.pendingList
		r.pendingList = ""
		return list
	}
	if r.comp != nil {
		return r.menuPostText()
	}
	return ""
}

// finishAcceptLine finalizes via the Parser, then runs event expansion
// (unless disabled) and records the result in history before returning it
// (§4.6 accept-line step f, §6 Parser contract, §9). An EOFError means the
// line is syntactically incomplete: a newline is inserted at the cursor, a
// secondary prompt is recorded for it, and the dispatch loop continues. A
// SyntaxError means accept-line proceeds without running event expansion
// again; any other result proceeds normally.
func (r *Reader) finishAcceptLine() (string, error) {
	_, perr := r.Parser.Parse(r.Buf.String(), r.Buf.Cursor())
	if eofErr, ok := perr.(*EOFError); ok {
		r.Buf.Write("\n", false)
		r.contPrompts = append(r.contPrompts, secondaryPromptFor(eofErr))
		r.Undo.NewState(r.Buf.Copy())
		r.state = StateNormal
		return r.runUntilDone()
	}
	_, syntaxErr := perr.(*SyntaxError)

	line := r.Buf.String()
	if !syntaxErr && !r.Config.DisableEventExpansion {
		expanded, err := r.expandEvents(line)
		if err != nil {
			// A failed expansion rings the bell, shows the diagnostic on its
			// own line below the edit line, clears the buffer and keeps
			// reading.
			r.bell()
			r.Buf.Clear()
			r.Undo.NewState(r.Buf.Copy())
			r.pendingList = err.Error()
			r.state = StateNormal
			return r.runUntilDone()
		}
		if expanded != line {
			if r.Config.HistoryVerify {
				r.Buf.Set(expanded)
				r.Undo.NewState(r.Buf.Copy())
				r.state = StateNormal
				return r.runUntilDone()
			}
			line = expanded
		}
	}
	if !r.Config.DisableHistory && strings.TrimSpace(line) != "" && !strings.HasPrefix(strings.TrimSpace(line), r.Config.CommentBegin) {
		r.Hist.Add(line)
	}
	return line, nil
}

// secondaryPromptFor builds the continuation prompt for a newline inserted
// because of e: the missing-closer hint plus "> ", or bare "> " if the
// parser didn't name one (§4.5).
func secondaryPromptFor(e *EOFError) string {
	if e.MissingCloser != "" {
		return e.MissingCloser + "> "
	}
	return "> "
}
