package lineedit

import "testing"

func TestUpLineOrHistoryFallsThrough(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("previous command")
	r.Buf.Set("current")
	r.Buf.SetCursor(0) // single logical line: Buf.Up() fails immediately

	if !wUpLineOrHistory(r) {
		t.Fatal("expected fallthrough to history recall to succeed")
	}
	if r.Buf.String() != "previous command" {
		t.Errorf("expected 'previous command', got %q", r.Buf.String())
	}
}

func TestHistoryNextRestoresPendingEdit(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("first")
	r.Hist.Add("second")

	r.historyPrevious() // lands on "second"
	r.historyPrevious() // lands on "first"
	r.Buf.Set("first-edited")

	r.historyNext() // back toward "second", stashing the edit to "first" first
	if r.Buf.String() != "second" {
		t.Fatalf("expected 'second', got %q", r.Buf.String())
	}
	r.historyPrevious()
	if r.Buf.String() != "first-edited" {
		t.Errorf("expected the stashed edit 'first-edited' restored, got %q", r.Buf.String())
	}
}

func TestBeginningAndEndOfHistory(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("one")
	r.Hist.Add("two")
	r.Hist.Add("three")

	if !wBeginningOfHistory(r) || r.Buf.String() != "one" {
		t.Errorf("expected 'one', got %q", r.Buf.String())
	}
	wEndOfHistory(r)
	if r.Buf.String() != "" || !r.Hist.AtEnd() {
		t.Error("expected end-of-history to clear the buffer and land past the last entry")
	}
}

func TestHistorySearchBackwardByPrefix(t *testing.T) {
	r := newTestReader()
	r.Hist.Add("git status")
	r.Hist.Add("git commit")
	r.Hist.Add("ls")

	r.Buf.Set("git")
	r.Buf.SetCursor(3)
	if !wHistorySearchBackward(r) {
		t.Fatal("expected a match")
	}
	if r.Buf.String() != "git commit" {
		t.Errorf("expected 'git commit', got %q", r.Buf.String())
	}
	if r.Buf.Cursor() != 3 {
		t.Errorf("expected cursor to stay at the prefix length 3, got %d", r.Buf.Cursor())
	}
}

func TestPushLineStashesAndClears(t *testing.T) {
	r := newTestReader()
	r.Buf.Set("half-typed command")
	if !wPushLine(r) {
		t.Fatal("expected push-line to succeed on a non-empty buffer")
	}
	if r.Buf.String() != "" {
		t.Errorf("expected buffer cleared, got %q", r.Buf.String())
	}
	if wPushLine(r) {
		t.Error("push-line on an empty buffer should fail")
	}
}
