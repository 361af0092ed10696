package lineedit

// Config holds the tunable configuration variables and boolean options
// that shape dispatch, completion and display (§6). Defaults mirror the
// conservative, emacs-leaning defaults described there.
type Config struct {
	// Configuration variables.
	WordChars            string // characters treated as part of a word for word-motions (§3)
	RemoveSuffixChars    string // typing one of these right after a completion strips the candidate's Suffix
	CommentBegin         string // a line starting with this prefix is returned but not added to History
	SearchTerminators    string // keys that end incremental search mode
	BellStyle            string // "audible", "visual", or "none"
	ListMax              int    // candidates beyond this trigger the "list N more?" prompt (0 = unlimited)
	Errors               int    // max edit distance accepted by the typo-tolerant completion stage (§4.4 step 5, §6)
	AmbiguousBindingMs   int    // timeout, in milliseconds, for resolving an ambiguous key sequence
	BlinkMatchingParenMs int    // if > 0, briefly move the cursor to a matching bracket on insert, for this long

	// Options (§6).
	DisableEventExpansion bool
	HistoryVerify         bool // load an expanded event into the buffer for review instead of executing it
	HistoryBeep           bool // beep when history navigation hits either end
	CompleteInWord        bool // complete from the cursor position, not just at end-of-word
	CaseInsensitiveComplete bool
	AutoList              bool // show the candidate list automatically on an ambiguous completion
	AutoMenu              bool // enter menu-selection automatically after listing
	ListAmbiguous         bool // on ambiguous completion, list instead of just beeping
	ListRowsFirst         bool // lay the candidate grid out row-major instead of column-major
	MenuComplete          bool // Tab cycles candidates in place instead of inserting the common prefix
	RecognizeExact        bool // an exact match among a larger candidate set is accepted immediately
	Group                 bool // group candidates by Candidate.Group in list mode
	PadPrompts            bool // right-pad secondary prompts to the widest secondary prompt's display width
	BindTTYSpecialChars   bool // bind the terminal's own INTR/QUIT/SUSP chars into the keymap
	DisableHistory        bool // don't append accepted lines to History
	KillRingSize          int
}

// DefaultConfig returns the conservative defaults described in the
// external-interfaces contract.
func DefaultConfig() Config {
	return Config{
		WordChars:          "*?_-.[]~=/&;!#$%^(){}<>",
		RemoveSuffixChars:  " \t\n;&|",
		CommentBegin:       "#",
		SearchTerminators:  "\x1b\n", // ESC, newline
		BellStyle:          "audible",
		ListMax:            100,
		Errors:             2,
		AmbiguousBindingMs:   400,
		BlinkMatchingParenMs: 500,

		HistoryBeep:    true,
		AutoList:       true,
		ListAmbiguous:  true,
		RecognizeExact: true,
		PadPrompts:     true,
		KillRingSize:   DefaultKillRingSize,
	}
}

// IsWordChar reports whether r counts as a word character under cfg's
// WordChars. ASCII letters and digits, and every non-ASCII rune, always
// count as word characters, whatever WordChars holds.
func (c Config) IsWordChar(r rune) bool {
	if isAlnum(r) {
		return true
	}
	for _, w := range c.WordChars {
		if w == r {
			return true
		}
	}
	return false
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > unicodeASCIIMax
}

const unicodeASCIIMax = 0x7f
