package lineedit

import "testing"

func TestHistoryAddAndNavigate(t *testing.T) {
	h := NewHistory()
	h.Add("first")
	h.Add("second")
	h.Add("third")

	if !h.AtEnd() {
		t.Fatal("expected cursor past the end after adds")
	}

	e, ok := h.Previous()
	if !ok || e.Text != "third" {
		t.Fatalf("expected 'third', got %+v", e)
	}
	e, ok = h.Previous()
	if !ok || e.Text != "second" {
		t.Fatalf("expected 'second', got %+v", e)
	}
	e, ok = h.Next()
	if !ok || e.Text != "third" {
		t.Fatalf("expected 'third' on Next, got %+v", e)
	}
	// This call lands on the entry-less end position; ok is still true
	// because the cursor just arrived there.
	if _, ok := h.Next(); !ok {
		t.Error("Next landing on the end position should still report ok=true")
	}
	if !h.AtEnd() {
		t.Error("expected to land back at the end position")
	}
	if _, ok := h.Next(); ok {
		t.Error("Next when already at the end position should report ok=false")
	}
}

func TestHistoryPreviousAtOldest(t *testing.T) {
	h := NewHistory()
	h.Add("only")
	h.Previous()
	if _, ok := h.Previous(); ok {
		t.Error("Previous at the oldest entry should report ok=false")
	}
}

func TestHistoryPendingStash(t *testing.T) {
	h := NewHistory()
	idx := h.Add("one")
	h.StashPending(idx, "one-edited")
	got, ok := h.PendingFor(idx)
	if !ok || got != "one-edited" {
		t.Fatalf("expected stashed 'one-edited', got %q ok=%v", got, ok)
	}
	h.ClearPending(idx)
	if _, ok := h.PendingFor(idx); ok {
		t.Error("expected pending cleared")
	}
}

func TestHistorySearchBackward(t *testing.T) {
	h := NewHistory()
	h.Add("ls -la")
	h.Add("cd /tmp")
	h.Add("ls -l /var")

	e, ok := h.Search("ls", h.CursorIndex(), SearchBackward)
	if !ok || e.Text != "ls -l /var" {
		t.Fatalf("expected most recent match, got %+v", e)
	}
	e, ok = h.Search("ls", e.Index, SearchBackward)
	if !ok || e.Text != "ls -la" {
		t.Fatalf("expected older match, got %+v", e)
	}
	if _, ok := h.Search("ls", e.Index, SearchBackward); ok {
		t.Error("expected no further matches")
	}
}

func TestHistoryFindStartingWith(t *testing.T) {
	h := NewHistory()
	h.Add("echo one")
	h.Add("echo two")
	h.Add("cat file")

	e, ok := h.FindStartingWith("echo", h.CursorIndex())
	if !ok || e.Text != "echo two" {
		t.Fatalf("expected 'echo two', got %+v", e)
	}
}

func TestHistoryLastAndEntryAt(t *testing.T) {
	h := NewHistory()
	idx := h.Add("alpha")
	h.Add("beta")

	e, ok := h.Last()
	if !ok || e.Text != "beta" {
		t.Fatalf("expected 'beta', got %+v", e)
	}
	e, ok = h.EntryAt(idx)
	if !ok || e.Text != "alpha" {
		t.Fatalf("expected 'alpha', got %+v", e)
	}
}

func TestHistoryMoveTo(t *testing.T) {
	h := NewHistory()
	h.Add("a")
	h.Add("b")
	h.Add("c")

	e, ok := h.MoveTo(1)
	if !ok || e.Text != "b" {
		t.Fatalf("expected 'b', got %+v", e)
	}
	h.MoveToEnd()
	if !h.AtEnd() {
		t.Error("expected MoveToEnd to land past the last entry")
	}
}
