package lineedit

import "testing"

func TestDigitArgumentAccumulates(t *testing.T) {
	r := newTestReader()
	r.lastKeys = []rune("4")
	wDigitArgument(r)
	r.lastKeys = []rune("2")
	wDigitArgument(r)

	n, explicit := r.Count()
	if !explicit || n != 42 {
		t.Errorf("expected count 42, got %d explicit=%v", n, explicit)
	}
}

func TestNegArgumentTogglesSign(t *testing.T) {
	r := newTestReader()
	r.lastKeys = []rune("5")
	wDigitArgument(r)
	wNegArgument(r)

	n, _ := r.Count()
	if n != -5 {
		t.Errorf("expected -5, got %d", n)
	}
}

func TestUniversalArgumentMultipliesByFour(t *testing.T) {
	r := newTestReader()
	wUniversalArgument(r)
	wUniversalArgument(r)

	n, explicit := r.Count()
	if !explicit || n != 16 {
		t.Errorf("expected 16 after two universal-arguments, got %d", n)
	}
}

func TestOverwriteModeToggle(t *testing.T) {
	r := newTestReader()
	if r.overtype {
		t.Fatal("expected overtype off by default")
	}
	wOverwriteMode(r)
	if !r.overtype {
		t.Error("expected overtype on after toggling")
	}
	wOverwriteMode(r)
	if r.overtype {
		t.Error("expected overtype off after toggling again")
	}
}

func TestQuotedInsertBypassesKeymap(t *testing.T) {
	r := newTestReader()
	r.Term = newFakeTerminal("\x01") // Ctrl-A, normally bound elsewhere
	if !wQuotedInsert(r) {
		t.Fatal("expected quoted-insert to succeed")
	}
	if r.Buf.String() != "\x01" {
		t.Errorf("expected the literal control byte inserted, got %q", r.Buf.String())
	}
}
