package lineedit

import "testing"

func TestFindWordObjectInner(t *testing.T) {
	b := NewBuffer()
	b.Set("hello world")
	start, end, found := findWordObject(b, DefaultConfig(), 2, true)
	if !found || start != 0 || end != 5 {
		t.Errorf("expected inner word [0,5), got [%d,%d) found=%v", start, end, found)
	}
}

func TestFindWordObjectAroundIncludesTrailingSpace(t *testing.T) {
	b := NewBuffer()
	b.Set("hello world")
	start, end, found := findWordObject(b, DefaultConfig(), 2, false)
	if !found || start != 0 || end != 6 {
		t.Errorf("expected around word [0,6) including trailing space, got [%d,%d) found=%v", start, end, found)
	}
}

func TestFindWordObjectOnSpace(t *testing.T) {
	b := NewBuffer()
	b.Set("a   b")
	start, end, found := findWordObject(b, DefaultConfig(), 2, true)
	if !found || start != 1 || end != 4 {
		t.Errorf("expected inner whitespace run [1,4), got [%d,%d) found=%v", start, end, found)
	}
}

func TestFindQuoteObjectInner(t *testing.T) {
	b := NewBuffer()
	b.Set(`say "hello world" now`)
	start, end, found := findQuoteObject(b, 10, '"', true)
	if !found || start != 5 || end != 16 {
		t.Errorf("expected inner quote [5,16), got [%d,%d) found=%v", start, end, found)
	}
	if b.Substring(start, end) != "hello world" {
		t.Errorf("expected 'hello world', got %q", b.Substring(start, end))
	}
}

func TestFindQuoteObjectAroundIncludesQuotes(t *testing.T) {
	b := NewBuffer()
	b.Set(`say "hi" now`)
	start, end, found := findQuoteObject(b, 6, '"', false)
	if !found {
		t.Fatal("expected a match")
	}
	if b.Substring(start, end) != `"hi"` {
		t.Errorf(`expected '"hi"', got %q`, b.Substring(start, end))
	}
}

func TestFindQuoteObjectNoQuotesFails(t *testing.T) {
	b := NewBuffer()
	b.Set("no quotes here")
	_, _, found := findQuoteObject(b, 3, '"', true)
	if found {
		t.Error("expected no match when fewer than two quotes are present")
	}
}

func TestFindQuoteObjectCursorBeforeFirstQuote(t *testing.T) {
	b := NewBuffer()
	b.Set(`x "quoted" y`)
	start, end, found := findQuoteObject(b, 0, '"', true)
	if !found {
		t.Fatal("expected the next quote pair ahead of the cursor to match")
	}
	if b.Substring(start, end) != "quoted" {
		t.Errorf("expected 'quoted', got %q", b.Substring(start, end))
	}
}
