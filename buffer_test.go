package lineedit

import "testing"

func TestBufferWrite(t *testing.T) {
	b := NewBuffer()
	b.Write("hi", false)
	if b.String() != "hi" {
		t.Errorf("expected 'hi', got %q", b.String())
	}
	if b.Cursor() != 2 {
		t.Errorf("expected cursor at 2, got %d", b.Cursor())
	}
}

func TestBufferWriteMiddle(t *testing.T) {
	b := NewBuffer()
	b.Set("hllo")
	b.SetCursor(1)
	b.Write("e", false)
	if b.String() != "hello" {
		t.Errorf("expected 'hello', got %q", b.String())
	}
}

func TestBufferOvertype(t *testing.T) {
	b := NewBuffer()
	b.Set("hello")
	b.SetCursor(0)
	b.Write("ax", true)
	if b.String() != "axllo" {
		t.Errorf("expected 'axllo', got %q", b.String())
	}
	b.Set("ab")
	b.SetCursor(2)
	b.Write("cd", true)
	if b.String() != "abcd" {
		t.Errorf("expected 'abcd', got %q", b.String())
	}
}

func TestBufferBackspace(t *testing.T) {
	b := NewBuffer()
	b.Set("hello")
	n := b.Backspace(1)
	if n != 1 || b.String() != "hell" {
		t.Errorf("expected 1 deleted and 'hell', got %d %q", n, b.String())
	}
	b.SetCursor(0)
	if b.Backspace(1) != 0 {
		t.Error("Backspace at start should delete nothing")
	}
}

func TestBufferDelete(t *testing.T) {
	b := NewBuffer()
	b.Set("hello")
	b.SetCursor(0)
	n := b.Delete(1)
	if n != 1 || b.String() != "ello" {
		t.Errorf("expected 1 deleted and 'ello', got %d %q", n, b.String())
	}
	b.SetCursor(b.Len())
	if b.Delete(1) != 0 {
		t.Error("Delete at end should delete nothing")
	}
}

func TestBufferDeleteRange(t *testing.T) {
	b := NewBuffer()
	b.Set("hello world")
	b.DeleteRange(5, 11)
	if b.String() != "hello" {
		t.Errorf("expected 'hello', got %q", b.String())
	}
	if b.Cursor() != 5 {
		t.Errorf("expected cursor at 5, got %d", b.Cursor())
	}
}

func TestBufferMove(t *testing.T) {
	b := NewBuffer()
	b.Set("hello")
	b.SetCursor(0)
	delta := b.Move(10)
	if delta != 5 || b.Cursor() != 5 {
		t.Errorf("Move should clamp to length, got delta=%d cursor=%d", delta, b.Cursor())
	}
	delta = b.Move(-100)
	if delta != -5 || b.Cursor() != 0 {
		t.Errorf("Move should clamp to zero, got delta=%d cursor=%d", delta, b.Cursor())
	}
}

func TestBufferUpDown(t *testing.T) {
	b := NewBuffer()
	b.Set("ab\nc\nde")
	b.SetCursor(1) // after 'a' on line 0
	if b.Up() {
		t.Error("Up on first line should return false")
	}
	b.SetCursor(1)
	if !b.Down() {
		t.Fatal("Down should succeed")
	}
	if b.Cursor() != 4 { // column 1 on "c" clamps to end of that line
		t.Errorf("expected cursor at 4, got %d", b.Cursor())
	}
	if !b.Down() {
		t.Fatal("Down should succeed")
	}
	if b.Cursor() != 6 { // "de" column 1
		t.Errorf("expected cursor at 6, got %d", b.Cursor())
	}
	if b.Down() {
		t.Error("Down on last line should return false")
	}
}

func TestBufferLoadVsSet(t *testing.T) {
	b := NewBuffer()
	b.Load(Snapshot{Text: "hello", Cursor: 2})
	if b.Cursor() != 2 {
		t.Errorf("Load should preserve cursor, got %d", b.Cursor())
	}
	b.Set("goodbye")
	if b.Cursor() != b.Len() {
		t.Errorf("Set should move cursor to end, got %d", b.Cursor())
	}
}

func TestBufferAtCharNeverPanics(t *testing.T) {
	b := NewBuffer()
	b.Set("hi")
	if b.AtChar(-1) != 0 || b.AtChar(100) != 0 {
		t.Error("AtChar out of range should return 0, not panic")
	}
}

func TestBufferCopy(t *testing.T) {
	b := NewBuffer()
	b.Set("hello")
	b.SetCursor(3)
	snap := b.Copy()
	b.Write("x", false)
	if snap.Text != "hello" || snap.Cursor != 3 {
		t.Errorf("Copy should be immutable, got %+v after mutation", snap)
	}
}
