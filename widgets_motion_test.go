package lineedit

import "testing"

func TestWordMotion(t *testing.T) {
	r := newTestReader()
	r.Buf.Set("hello world test")
	r.Buf.SetCursor(0)

	wForwardWord(r)
	if r.Buf.Cursor() != 6 {
		t.Errorf("forward-word: expected cursor at 6, got %d", r.Buf.Cursor())
	}
	wForwardWord(r)
	if r.Buf.Cursor() != 12 {
		t.Errorf("forward-word: expected cursor at 12, got %d", r.Buf.Cursor())
	}
	wBackwardWord(r)
	if r.Buf.Cursor() != 6 {
		t.Errorf("backward-word: expected cursor at 6, got %d", r.Buf.Cursor())
	}
}

func TestWordEndMotion(t *testing.T) {
	r := newTestReader()
	r.Buf.Set("hello world")
	r.Buf.SetCursor(0)
	wForwardWordEnd(r)
	if r.Buf.Cursor() != 5 {
		t.Errorf("forward-word-end: expected cursor at 5, got %d", r.Buf.Cursor())
	}
}

func TestBeginningAndEndOfLine(t *testing.T) {
	r := newTestReader()
	r.Buf.Set("one\ntwo\nthree")
	r.Buf.SetCursor(5) // inside "two"

	wBeginningOfLine(r)
	if r.Buf.Cursor() != 4 {
		t.Errorf("beginning-of-line: expected cursor at 4, got %d", r.Buf.Cursor())
	}
	wEndOfLine(r)
	if r.Buf.Cursor() != 7 {
		t.Errorf("end-of-line: expected cursor at 7, got %d", r.Buf.Cursor())
	}
}

func TestFirstNonBlank(t *testing.T) {
	r := newTestReader()
	r.Buf.Set("   indented")
	r.Buf.SetCursor(0)
	wFirstNonBlank(r)
	if r.Buf.Cursor() != 3 {
		t.Errorf("vi-first-non-blank: expected cursor at 3, got %d", r.Buf.Cursor())
	}
}

func TestForwardCharStopsAtEnd(t *testing.T) {
	r := newTestReader()
	r.Buf.Set("hi")
	r.Buf.SetCursor(2)
	if !wForwardChar(r) {
		t.Error("forward-char at end should still report success per its stop condition")
	}
	if r.Buf.Cursor() != 2 {
		t.Errorf("expected cursor to stay at 2, got %d", r.Buf.Cursor())
	}
}

func TestUpDownLineWidgets(t *testing.T) {
	r := newTestReader()
	r.Buf.Set("one\ntwo")
	r.Buf.SetCursor(1)
	if !wDownLine(r) {
		t.Fatal("down-line should succeed")
	}
	if r.Buf.Cursor() != 5 {
		t.Errorf("expected cursor at 5, got %d", r.Buf.Cursor())
	}
	if !wUpLine(r) {
		t.Fatal("up-line should succeed")
	}
	if r.Buf.Cursor() != 1 {
		t.Errorf("expected cursor back at 1, got %d", r.Buf.Cursor())
	}
}
