package config

import (
	"strings"
	"testing"

	"github.com/kungfusheep/lineedit"
)

func TestMergeAppliesNonZeroStringsAndInts(t *testing.T) {
	defaults := Default()
	user := &FileConfig{
		Scheme:             "vi",
		WordChars:          "abc",
		AmbiguousBindingMs: 900,
		KillRingSize:       10,
	}

	result := merge(defaults, user)

	if result.Scheme != "vi" {
		t.Errorf("expected scheme 'vi', got %q", result.Scheme)
	}
	if result.Edit.WordChars != "abc" {
		t.Errorf("expected wordChars 'abc', got %q", result.Edit.WordChars)
	}
	if result.Edit.AmbiguousBindingMs != 900 {
		t.Errorf("expected ambiguousBindingMs 900, got %d", result.Edit.AmbiguousBindingMs)
	}
	if result.Edit.BlinkMatchingParenMs != defaults.Edit.BlinkMatchingParenMs {
		t.Errorf("expected blinkMatchingParenMs untouched at %d, got %d", defaults.Edit.BlinkMatchingParenMs, result.Edit.BlinkMatchingParenMs)
	}
	if result.Edit.KillRingSize != 10 {
		t.Errorf("expected killRingSize 10, got %d", result.Edit.KillRingSize)
	}
}

func TestMergeLeavesUnsetFieldsAtDefault(t *testing.T) {
	defaults := Default()
	user := &FileConfig{Scheme: "vi"}

	result := merge(defaults, user)

	if result.Edit.ListMax != defaults.Edit.ListMax {
		t.Errorf("expected ListMax untouched at %d, got %d", defaults.Edit.ListMax, result.Edit.ListMax)
	}
	if result.Edit.BellStyle != defaults.Edit.BellStyle {
		t.Errorf("expected BellStyle untouched at %q, got %q", defaults.Edit.BellStyle, result.Edit.BellStyle)
	}
}

func TestMergeBoolFieldsOnlyTurnOn(t *testing.T) {
	defaults := Default()
	defaults.Edit.AutoMenu = true

	user := &FileConfig{} // nothing set, including AutoMenu=false
	result := merge(defaults, user)

	// merge can only turn a bool on, never off, since TOML can't
	// distinguish an explicit false from an absent key.
	if !result.Edit.AutoMenu {
		t.Error("expected AutoMenu to remain true since the user config left it unset")
	}

	user2 := &FileConfig{Group: true}
	result2 := merge(Default(), user2)
	if !result2.Edit.Group {
		t.Error("expected Group turned on by the user config")
	}
}

func TestDefaultUsesEmacsScheme(t *testing.T) {
	d := Default()
	if d.Scheme != "emacs" {
		t.Errorf("expected default scheme 'emacs', got %q", d.Scheme)
	}
	if d.Edit != lineedit.DefaultConfig() {
		t.Error("expected the default Edit config to match lineedit.DefaultConfig()")
	}
}

func TestDefaultTOMLMentionsEveryFileConfigKey(t *testing.T) {
	doc := DefaultTOML()
	for _, key := range []string{
		"scheme", "wordChars", "commentBegin", "bellStyle", "listMax",
		"ambiguousBindingMs", "blinkMatchingParenMs", "killRingSize", "disableEventExpansion",
		"historyVerify", "completeInWord", "caseInsensitiveComplete",
		"autoMenu", "listRowsFirst", "menuComplete", "group", "disableHistory",
	} {
		if !strings.Contains(doc, key) {
			t.Errorf("expected the starter TOML to mention %q", key)
		}
	}
}
