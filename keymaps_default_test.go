package lineedit

import "testing"

func bindingAt(m *KeyMap, seq string) *Binding {
	n := m.walk([]rune(seq))
	if n == nil {
		return nil
	}
	return n.binding
}

func TestDefaultKeyMapsBuildsAllNames(t *testing.T) {
	maps := defaultKeyMaps()
	for _, name := range []string{"main", "emacs", "viins", "vicmd", "menu", "visual", "viopp", "safe"} {
		if maps[name] == nil {
			t.Errorf("expected a %q keymap to be built", name)
		}
	}
}

func TestMainMapHoldsSharedBindings(t *testing.T) {
	maps := defaultKeyMaps()
	main := maps["main"]

	b := bindingAt(main, string(Ctrl('C')))
	if b == nil || b.Kind != BindReference || b.Name != "send-break" {
		t.Errorf("expected Ctrl-C bound to send-break, got %+v", b)
	}
	if main.Default == nil || main.Default.Name != "self-insert" {
		t.Error("expected main's default binding to be self-insert")
	}
}

func TestEmacsMapBindsWordMotions(t *testing.T) {
	maps := defaultKeyMaps()
	emacs := maps["emacs"]

	b := bindingAt(emacs, string(Alt('f')))
	if b == nil || b.Name != "forward-word" {
		t.Errorf("expected Alt-f bound to forward-word, got %+v", b)
	}
	b = bindingAt(emacs, string(Ctrl('K')))
	if b == nil || b.Name != "kill-line" {
		t.Errorf("expected Ctrl-K bound to kill-line, got %+v", b)
	}
}

func TestViinsEscapeEntersCommandMode(t *testing.T) {
	maps := defaultKeyMaps()
	viins := maps["viins"]

	b := bindingAt(viins, string(Esc()))
	if b == nil || b.Name != "vi-cmd-mode" {
		t.Errorf("expected ESC in viins bound to vi-cmd-mode, got %+v", b)
	}
	// viins still carries the emacs editing core.
	b = bindingAt(viins, string(Ctrl('A')))
	if b == nil || b.Name != "beginning-of-line" {
		t.Errorf("expected Ctrl-A in viins bound to beginning-of-line, got %+v", b)
	}
}

func TestVicmdMapBindsMotionsAndOperators(t *testing.T) {
	maps := defaultKeyMaps()
	vicmd := maps["vicmd"]

	cases := map[string]string{
		"i": "vi-insert",
		"x": "vi-delete-char",
		"d": "vi-delete",
		"c": "vi-change",
		"y": "vi-yank",
		"w": "vi-forward-word",
		"W": "vi-forward-blank-word",
		"B": "vi-backward-blank-word",
		"E": "vi-forward-blank-word-end",
		"%": "vi-match-bracket",
		"0": "beginning-of-line",
		"$": "end-of-line",
	}
	for seq, want := range cases {
		b := bindingAt(vicmd, seq)
		if b == nil || b.Name != want {
			t.Errorf("expected %q bound to %q, got %+v", seq, want, b)
		}
	}
}

func TestVicmdDigitsDoNotIncludeZero(t *testing.T) {
	maps := defaultKeyMaps()
	vicmd := maps["vicmd"]

	// '0' means beginning-of-line in vi command mode, not digit-argument,
	// since a leading zero can't start a count.
	b := bindingAt(vicmd, "0")
	if b == nil || b.Name == "digit-argument" {
		t.Errorf("expected '0' to not be digit-argument, got %+v", b)
	}
	b = bindingAt(vicmd, "1")
	if b == nil || b.Name != "digit-argument" {
		t.Errorf("expected '1' bound to digit-argument, got %+v", b)
	}
}

func TestViOperatorPendingMapBindsTextObjectsAndDoubledOp(t *testing.T) {
	maps := defaultKeyMaps()
	viopp := maps["viopp"]

	b := bindingAt(viopp, "d")
	if b == nil || b.Name != "vi-op-line" {
		t.Errorf("expected a doubled 'd' in viopp bound to vi-op-line, got %+v", b)
	}
	b = bindingAt(viopp, "iw")
	if b == nil || b.Name != "vi-op-inner-word" {
		t.Errorf(`expected "iw" bound to vi-op-inner-word, got %+v`, b)
	}
	b = bindingAt(viopp, `a"`)
	if b == nil || b.Name != "vi-op-a-quote" {
		t.Errorf(`expected 'a"' bound to vi-op-a-quote, got %+v`, b)
	}
}

func TestArrowKeysBoundInEmacsAndVicmd(t *testing.T) {
	maps := defaultKeyMaps()
	for _, name := range []string{"emacs", "vicmd"} {
		b := bindingAt(maps[name], "\x1b[A")
		if b == nil || b.Name != "up-line-or-history" {
			t.Errorf("expected up-arrow bound in %q, got %+v", name, b)
		}
	}
}
