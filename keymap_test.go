package lineedit

import "testing"

func TestKeyMapBindAndWalk(t *testing.T) {
	m := NewKeyMap("test")
	m.BindKey("ab", ReferenceBinding("foo"))

	n := m.walk([]rune("a"))
	if n == nil || n.binding != nil {
		t.Fatal("expected an intermediate node with no binding at 'a'")
	}
	n = m.walk([]rune("ab"))
	if n == nil || n.binding == nil || n.binding.Name != "foo" {
		t.Fatalf("expected binding 'foo' at 'ab', got %+v", n)
	}
}

func TestKeyMapUnbind(t *testing.T) {
	m := NewKeyMap("test")
	m.BindKey("x", ReferenceBinding("foo"))
	m.Unbind([]rune("x"))
	n := m.walk([]rune("x"))
	if n == nil || n.binding != nil {
		t.Error("expected binding removed after Unbind")
	}
}

func TestCtrlAndAlt(t *testing.T) {
	if Ctrl('A') != 0x01 {
		t.Errorf("Ctrl('A') = %#x, want 0x01", Ctrl('A'))
	}
	if got := Alt('f'); len(got) != 2 || got[0] != 0x1b || got[1] != 'f' {
		t.Errorf("Alt('f') = %v, want [0x1b 'f']", got)
	}
}

func TestRange(t *testing.T) {
	got := Range('0', '3')
	want := []rune{'0', '1', '2', '3'}
	if len(got) != len(want) {
		t.Fatalf("expected %d runes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Range[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	got := Translate(`^A\e\t`)
	want := []rune{Ctrl('A'), 0x1b, '\t'}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Translate[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
