package lineedit

import "testing"

func TestIncrementalSearchBackward(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("ls -la")
	r.Hist.Add("cd /tmp")
	r.Hist.Add("ls -l /var")

	r.startSearch(SearchBackward)
	if !r.searchAppend('l') {
		t.Fatal("expected a match for 'l'")
	}
	if !r.searchAppend('s') {
		t.Fatal("expected a match for 'ls'")
	}
	if r.Buf.String() != "ls -l /var" {
		t.Errorf("expected buffer 'ls -l /var', got %q", r.Buf.String())
	}

	if !r.searchAppend(' ') {
		t.Fatal("expected a match for 'ls '")
	}
	if r.Buf.String() != "ls -l /var" {
		t.Errorf("expected search to stay on 'ls -l /var' (still matches), got %q", r.Buf.String())
	}
}

func TestIncrementalSearchBackspaceWidensSearch(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("echo one")
	r.Hist.Add("echo two")

	r.startSearch(SearchBackward)
	r.searchAppend('t')
	r.searchAppend('w')
	r.searchAppend('o')
	if r.Buf.String() != "echo two" {
		t.Fatalf("expected 'echo two', got %q", r.Buf.String())
	}

	// Backspacing to "tw" still matches "echo two"; nothing else changes.
	if !r.searchBackspace() {
		t.Fatal("expected backspace to still match")
	}
	if r.Buf.String() != "echo two" {
		t.Errorf("expected 'echo two' still, got %q", r.Buf.String())
	}
}

func TestEndSearchCancelRestoresState(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("alpha")
	r.Buf.Set("typed but not submitted")

	r.startSearch(SearchBackward)
	r.searchAppend('a')
	r.endSearch(false)

	if r.search != nil {
		t.Error("expected search state cleared")
	}
	if r.Buf.String() != "" {
		t.Errorf("expected buffer cleared on cancel, got %q", r.Buf.String())
	}
	if !r.Hist.AtEnd() {
		t.Error("expected history cursor reset to the end on cancel")
	}
}

func TestEndSearchAcceptKeepsMatch(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("alpha beta")

	r.startSearch(SearchBackward)
	r.searchAppend('a')
	r.endSearch(true)

	if r.search != nil {
		t.Error("expected search state cleared")
	}
	if r.Buf.String() != "alpha beta" {
		t.Errorf("expected the matched entry to remain loaded, got %q", r.Buf.String())
	}
}

func TestSearchNoMatchSetsFailed(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("one")

	r.startSearch(SearchBackward)
	if r.searchAppend('z') {
		t.Error("expected no match for 'z'")
	}
	if !r.search.failed {
		t.Error("expected search.failed to be set")
	}
}
