package lineedit

import "fmt"

// Size is a terminal size in character cells.
type Size struct {
	Rows, Cols int
}

// Signal identifies an OS signal the Terminal contract can deliver.
type Signal int

const (
	SigInterrupt Signal = iota
	SigWinch
	SigCont
)

// SignalHandler is invoked on the signal-delivery thread. It must be
// async-signal-safe: it may only set flags or call the narrow methods
// documented on the handler's installation point. It must never mutate
// Buffer, History, UndoTree or KillRing directly (§5).
type SignalHandler func(Signal)

// Capability is a terminal capability requested via Terminal.Put.
type Capability int

const (
	CapClearScreen Capability = iota
	CapClearToEOL
	CapBell
	CapCarriageReturn
	CapCursorUp
	CapKeypadApplication
	CapKeypadLocal
)

// Attributes is an opaque terminal attribute set (termios-shaped). The core
// never inspects its fields; it only round-trips whatever Terminal hands it
// back from GetAttributes/SetAttributes.
type Attributes any

// Terminal is the raw-terminal contract the core consumes (§6). A concrete
// implementation lives in internal/termctl; tests use a fake.
type Terminal interface {
	// ReadChar blocks for exactly one code point from the input stream.
	ReadChar() (rune, error)
	// PeekChar waits up to timeoutMs for a code point without consuming the
	// reader position if none arrives; returns -1 on timeout.
	PeekChar(timeoutMs int) (rune, error)

	// Put emits a capability. Returns false if the capability is not
	// available on this terminal (the caller degrades gracefully).
	Put(Capability) bool
	// WriteString writes raw bytes (already-formed escape sequences or
	// plain text) to the output stream.
	WriteString(string) error
	// Flush flushes buffered output.
	Flush() error

	GetAttributes() (Attributes, error)
	SetAttributes(Attributes) error
	// EnterRawMode puts the terminal in raw mode and returns the prior
	// attributes so the caller can restore them.
	EnterRawMode() (Attributes, error)

	Size() (Size, error)

	// InstallSignalHandler registers h for sig and returns a function that
	// restores whatever handler was previously installed.
	InstallSignalHandler(sig Signal, h SignalHandler) (restore func())
}

// WidthFunc returns the display width, in terminal cells, of a rune. The
// character-width table is an external collaborator (§1); the core only
// ever calls through this function. internal/width provides a default.
type WidthFunc func(rune) int

// ParsedLine is produced by Parser from the raw buffer and cursor (§6).
type ParsedLine struct {
	Line       string   // full line text
	Cursor     int      // cursor offset into Line, in runes
	Word       string   // the word under/before the cursor
	WordCursor int      // cursor offset into Word
	Words      []string // all words on the line
}

// EOFError is raised by Parser when the line is syntactically incomplete
// (e.g. an unterminated quote or bracket). MissingCloser, if non-empty, is
// used to build the secondary prompt (§4.5).
type EOFError struct {
	MissingCloser string
}

func (e *EOFError) Error() string {
	if e.MissingCloser != "" {
		return fmt.Sprintf("incomplete line, missing closer %q", e.MissingCloser)
	}
	return "incomplete line"
}

// SyntaxError is raised by Parser when the line is malformed in a way that
// is not resolved by adding more input. accept-line proceeds without
// running event expansion again, but otherwise treats the line as final.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }

// Parser tokenizes a line into words (§6). The default in
// internal/wordparser implements simple shell-style word splitting.
type Parser interface {
	Parse(line string, cursor int) (ParsedLine, error)
}

// Candidate is a single completion entry (§4.4, GLOSSARY).
type Candidate struct {
	Value    string // replacement text
	Displ    string // display text (defaults to Value)
	Group    string // grouping key for §4.4 list grouping
	Descr    string // one-line description shown in list mode
	Suffix   string // removable suffix, e.g. a trailing path separator
	Key      string // candidates sharing a non-empty Key are merged (§4.4)
	Complete bool   // if true, a space is appended: always on direct insertion, only when the committing key isn't a space in menu selection
}

// Completer appends Candidates for the given parsed line (§6).
type Completer interface {
	Complete(r *Reader, pl ParsedLine) []Candidate
}

// Highlighter attributes the raw buffer string; it must preserve
// character-by-character column alignment (§6).
type Highlighter interface {
	Highlight(r *Reader, buffer string) string
}

// NopHighlighter is the identity Highlighter, used when the consumer
// supplies none. It trivially preserves column alignment.
type NopHighlighter struct{}

func (NopHighlighter) Highlight(_ *Reader, buffer string) string { return buffer }
