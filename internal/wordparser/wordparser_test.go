package wordparser

import "testing"

func TestParseSimpleWords(t *testing.T) {
	p := New()
	pl, err := p.Parse("foo bar baz", 11)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"foo", "bar", "baz"}
	if len(pl.Words) != len(want) {
		t.Fatalf("expected %v, got %v", want, pl.Words)
	}
	for i := range want {
		if pl.Words[i] != want[i] {
			t.Errorf("word[%d] = %q, want %q", i, pl.Words[i], want[i])
		}
	}
	if pl.Word != "baz" {
		t.Errorf("expected word under cursor 'baz', got %q", pl.Word)
	}
}

func TestParseQuotedWord(t *testing.T) {
	p := New()
	pl, err := p.Parse(`echo "hello world"`, 18)
	if err != nil {
		t.Fatal(err)
	}
	if len(pl.Words) != 2 || pl.Words[1] != "hello world" {
		t.Fatalf("expected the quoted word joined, got %v", pl.Words)
	}
}

func TestParseEscapedSpace(t *testing.T) {
	p := New()
	pl, err := p.Parse(`echo foo\ bar`, 13)
	if err != nil {
		t.Fatal(err)
	}
	if len(pl.Words) != 2 || pl.Words[1] != "foo bar" {
		t.Fatalf("expected escaped space preserved in one word, got %v", pl.Words)
	}
}

func TestParseUnterminatedQuoteIsEOFError(t *testing.T) {
	p := New()
	_, err := p.Parse(`echo "unterminated`, 18)
	if err == nil {
		t.Fatal("expected an EOFError for an unterminated quote")
	}
}

func TestParseWordUnderCursorMidWord(t *testing.T) {
	p := New()
	pl, err := p.Parse("foo bar", 1)
	if err != nil {
		t.Fatal(err)
	}
	if pl.Word != "foo" || pl.WordCursor != 1 {
		t.Errorf("expected word 'foo' with cursor at 1, got %q at %d", pl.Word, pl.WordCursor)
	}
}

func TestParseCursorInWhitespace(t *testing.T) {
	p := New()
	pl, err := p.Parse("foo  bar", 4)
	if err != nil {
		t.Fatal(err)
	}
	if pl.Word != "" {
		t.Errorf("expected empty word under cursor in whitespace, got %q", pl.Word)
	}
}
