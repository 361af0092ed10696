package lineedit

import "testing"

func TestIsWordChar(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'Z', true},
		{'5', true},
		{'_', true},
		{' ', false},
		{'\t', false},
		{'$', true}, // in the default WordChars set
		{'@', false},
	}
	for _, c := range cases {
		if got := cfg.IsWordChar(c.r); got != c.want {
			t.Errorf("IsWordChar(%q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestDefaultConfigConservativeDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DisableEventExpansion || cfg.HistoryVerify || cfg.DisableHistory {
		t.Error("expected event expansion and history enabled by default")
	}
	if !cfg.AutoList || !cfg.ListAmbiguous {
		t.Error("expected ambiguous completions to list by default")
	}
	if cfg.KillRingSize != DefaultKillRingSize {
		t.Errorf("expected default kill ring size %d, got %d", DefaultKillRingSize, cfg.KillRingSize)
	}
	if cfg.BlinkMatchingParenMs != 500 {
		t.Errorf("expected a 500ms default blink timeout, got %d", cfg.BlinkMatchingParenMs)
	}
}
