package lineedit

import (
	"strconv"
	"testing"
)

func newTestReader() *Reader {
	return NewReader(newFakeTerminal(""), DefaultConfig())
}

func TestExpandEventsBangBang(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("echo one")
	r.Hist.Add("echo two")

	got, err := r.expandEvents("!! extra")
	if err != nil {
		t.Fatal(err)
	}
	if got != "echo two extra" {
		t.Errorf("expected 'echo two extra', got %q", got)
	}
}

func TestExpandEventsBangNumber(t *testing.T) {
	r := newTestReader()
	idx := r.Hist.Add("first command")
	r.Hist.Add("second command")

	got, err := r.expandEvents("!" + strconv.Itoa(idx))
	if err != nil {
		t.Fatal(err)
	}
	if got != "first command" {
		t.Errorf("expected 'first command', got %q", got)
	}
}

func TestExpandEventsBangPrefix(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("git commit -m x")
	r.Hist.Add("ls -la")

	got, err := r.expandEvents("!git")
	if err != nil {
		t.Fatal(err)
	}
	if got != "git commit -m x" {
		t.Errorf("expected 'git commit -m x', got %q", got)
	}
}

func TestExpandEventsBangDollarLastWord(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("echo msg")

	got, err := r.expandEvents("rerun !$")
	if err != nil {
		t.Fatal(err)
	}
	if got != "rerun msg" {
		t.Errorf("expected 'rerun msg', got %q", got)
	}
}

func TestExpandEventsBangDollarEmptyHistoryErrors(t *testing.T) {
	r := newTestReader()

	if _, err := r.expandEvents("!$"); err == nil {
		t.Error("expected an error expanding !$ with no history")
	}
}

func TestExpandEventsBangSearch(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("find . -name foo")
	r.Hist.Add("ls -la")

	got, err := r.expandEvents("!?name?")
	if err != nil {
		t.Fatal(err)
	}
	if got != "find . -name foo" {
		t.Errorf("expected 'find . -name foo', got %q", got)
	}
}

func TestExpandEventsNotFoundIsError(t *testing.T) {
	r := newTestReader()
	if _, err := r.expandEvents("!nosuchcommand"); err == nil {
		t.Error("expected an error for an unmatched event")
	}
}

func TestExpandEventsHashAccumulator(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("echo hi")

	// !# expands to what's been built so far on this pass, not the final
	// line: the first !# sees only "a", so it expands to "a"; the second
	// !# then sees "aab" (the output built so far, including the first
	// expansion), so it expands to "aab" rather than repeating itself.
	got, err := r.expandEvents("a!#b!#c")
	if err != nil {
		t.Fatal(err)
	}
	if got != "aabaabc" {
		t.Errorf("expected 'aabaabc' from the left-to-right accumulator quirk, got %q", got)
	}
}

func TestExpandEventsEscapedBangIsLiteral(t *testing.T) {
	r := newTestReader()
	got, err := r.expandEvents(`echo \!not-an-event`)
	if err != nil {
		t.Fatal(err)
	}
	if got != "echo !not-an-event" {
		t.Errorf("expected literal '!', got %q", got)
	}
}

func TestQuickSubstitutionAtPositionZero(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("echo hello world")

	got, err := r.expandEvents("^hello^goodbye")
	if err != nil {
		t.Fatal(err)
	}
	if got != "echo goodbye world" {
		t.Errorf("expected 'echo goodbye world', got %q", got)
	}
}

func TestQuickSubstitutionOnlyFiresAtStart(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("echo hello world")

	// A leading '^' elsewhere than buffer position 0 is left as a literal
	// character rather than triggering substitution or erroring, since the
	// whole input here doesn't start with '^'.
	got, err := r.expandEvents("x ^hello^goodbye")
	if err != nil {
		t.Fatal(err)
	}
	if got != "x ^hello^goodbye" {
		t.Errorf("expected input left untouched, got %q", got)
	}
}

