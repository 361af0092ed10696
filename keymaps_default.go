package lineedit

// defaultKeyMaps builds the standard "main", "emacs", "viins", "vicmd",
// "menu", "visual", "viopp" and "safe" tables (§4.6, §9). Bindings are
// named-widget references so user code can override any entry by
// replacing the widget in the Reader's registry without re-binding keys.

func ref(name string) Binding { return ReferenceBinding(name) }

func defaultKeyMaps() map[string]*KeyMap {
	maps := map[string]*KeyMap{
		"main":   NewKeyMap("main"),
		"emacs":  NewKeyMap("emacs"),
		"viins":  NewKeyMap("viins"),
		"vicmd":  NewKeyMap("vicmd"),
		"menu":   NewKeyMap("menu"),
		"visual": NewKeyMap("visual"),
		"viopp":  NewKeyMap("viopp"),
		"safe":   NewKeyMap("safe"),
	}

	// main holds bindings shared across every mode (Ctrl-C/INT handling,
	// EOF, screen refresh) and is always consulted as the secondary map
	// alongside whichever mode is primary.
	main := maps["main"]
	main.BindKey(string(Ctrl('C')), ref("send-break"))
	main.BindKey(string(Ctrl('D')), ref("end-of-file"))
	main.BindKey(string(Ctrl('L')), ref("clear-screen"))
	main.BindKey(string(Ctrl('R')), ref("history-incremental-search-backward"))
	main.BindKey(string(Ctrl('S')), ref("history-incremental-search-forward"))
	main.BindKey("\r", ref("accept-line"))
	main.BindKey("\n", ref("accept-line"))
	dflt := WidgetBinding(nil)
	dflt.Kind = BindReference
	dflt.Name = "self-insert"
	main.Default = &dflt

	emacs := maps["emacs"]
	bindEmacsCore(emacs)

	viins := maps["viins"]
	bindEmacsCore(viins) // vi insert mode behaves like emacs for editing
	viins.BindKey(string(Esc()), ref("vi-cmd-mode"))

	vicmd := maps["vicmd"]
	bindViCommand(vicmd)

	viopp := maps["viopp"]
	bindViOperatorPending(viopp)

	safe := maps["safe"]
	safe.BindKey(string(Ctrl('C')), ref("send-break"))
	safe.BindKey(string(Ctrl('D')), ref("end-of-file"))
	safe.BindKey("\r", ref("accept-line"))
	safe.BindKey("\n", ref("accept-line"))
	safeDefault := Binding{Kind: BindReference, Name: "self-insert"}
	safe.Default = &safeDefault

	menu := maps["menu"]
	menu.BindKey("\t", ref("menu-complete"))
	menu.BindKey(string(Ctrl('P')), ref("reverse-menu-complete"))
	menu.BindKey("\x1b[Z", ref("reverse-menu-complete")) // shift-tab
	menu.BindKey("\x1b[C", ref("menu-right"))
	menu.BindKey("\x1b[D", ref("menu-left"))
	menu.BindKey("\x1b[A", ref("menu-up"))
	menu.BindKey("\x1b[B", ref("menu-down"))
	menu.BindKey(string(Ctrl('L')), ref("clear-screen"))
	menu.BindKey(string(Esc()), ref("menu-accept"))
	menu.BindKey("\r", ref("menu-commit"))
	menu.BindKey("\n", ref("menu-commit"))
	menuDefault := Binding{Kind: BindReference, Name: "menu-commit"}
	menu.Default = &menuDefault

	visual := maps["visual"]
	visual.BindKey("d", ref("vi-delete"))
	visual.BindKey("y", ref("vi-yank"))
	visual.BindKey("c", ref("vi-change"))
	visual.BindKey(string(Esc()), ref("vi-cmd-mode"))

	return maps
}

func bindEmacsCore(m *KeyMap) {
	selfInsert := Binding{Kind: BindReference, Name: "self-insert"}
	m.Default = &selfInsert
	m.BindKey(string(Ctrl('A')), ref("beginning-of-line"))
	m.BindKey(string(Ctrl('E')), ref("end-of-line"))
	m.BindKey(string(Ctrl('F')), ref("forward-char"))
	m.BindKey(string(Ctrl('B')), ref("backward-char"))
	m.BindKey(string(Ctrl('P')), ref("up-line-or-history"))
	m.BindKey(string(Ctrl('N')), ref("down-line-or-history"))
	m.BindKey(string(Ctrl('H')), ref("backward-delete-char"))
	m.BindKey(string(Del), ref("backward-delete-char"))
	m.BindKey(string(Ctrl('D')), ref("delete-char-or-list"))
	m.BindKey(string(Ctrl('K')), ref("kill-line"))
	m.BindKey(string(Ctrl('U')), ref("backward-kill-line"))
	m.BindKey(string(Ctrl('W')), ref("backward-kill-word"))
	m.BindKey(string(Ctrl('Y')), ref("yank"))
	m.BindKey(string(Ctrl('T')), ref("transpose-chars"))
	m.BindKey(string(Ctrl('_')), ref("undo"))
	m.BindKey(string(Ctrl('G')), ref("set-mark-command"))
	m.BindKey(string(Ctrl('X'))+string(Ctrl('X')), ref("exchange-point-and-mark"))
	m.BindKey(string(Ctrl('V')), ref("quoted-insert"))
	m.BindKey(string(Ctrl('L')), ref("clear-screen"))
	m.BindKey("\t", ref("complete-word"))
	m.Bind(Alt('?'), ref("list-choices"))
	m.Bind(Alt('f'), ref("forward-word"))
	m.Bind(Alt('b'), ref("backward-word"))
	m.Bind(Alt('d'), ref("kill-word"))
	m.Bind(Alt(Del), ref("backward-kill-word"))
	m.Bind(Alt('y'), ref("yank-pop"))
	m.Bind(Alt('c'), ref("capitalize-word"))
	m.Bind(Alt('u'), ref("up-case-word"))
	m.Bind(Alt('l'), ref("down-case-word"))
	m.Bind(Alt('<'), ref("beginning-of-history"))
	m.Bind(Alt('>'), ref("end-of-history"))
	m.Bind(Alt('w'), ref("copy-region-as-kill"))
	bindArrowKeys(m)

	for _, d := range Range('0', '9') {
		m.Bind(Alt(d), ref("digit-argument"))
	}
}

func bindArrowKeys(m *KeyMap) {
	m.BindKey("\x1b[C", ref("forward-char"))
	m.BindKey("\x1b[D", ref("backward-char"))
	m.BindKey("\x1b[A", ref("up-line-or-history"))
	m.BindKey("\x1b[B", ref("down-line-or-history"))
	m.BindKey("\x1b[H", ref("beginning-of-line"))
	m.BindKey("\x1b[F", ref("end-of-line"))
	m.BindKey("\x1b[3~", ref("delete-char"))
}

func bindViCommand(m *KeyMap) {
	m.BindKey("i", ref("vi-insert"))
	m.BindKey("I", ref("vi-insert-bol"))
	m.BindKey("a", ref("vi-append"))
	m.BindKey("A", ref("vi-append-eol"))
	m.BindKey("o", ref("vi-open-line-below"))
	m.BindKey("O", ref("vi-open-line-above"))
	m.BindKey("s", ref("vi-substitute"))
	m.BindKey("C", ref("vi-change-eol"))
	m.BindKey("D", ref("kill-line"))
	m.BindKey("x", ref("vi-delete-char"))
	m.BindKey("p", ref("vi-put-after"))
	m.BindKey("P", ref("vi-put-before"))
	m.BindKey("u", ref("undo"))
	m.BindKey(string(Ctrl('R')), ref("redo"))
	m.BindKey("h", ref("backward-char"))
	m.BindKey("l", ref("forward-char"))
	m.BindKey("j", ref("down-line-or-history"))
	m.BindKey("k", ref("up-line-or-history"))
	m.BindKey("w", ref("vi-forward-word"))
	m.BindKey("b", ref("vi-backward-word"))
	m.BindKey("e", ref("vi-forward-word-end"))
	m.BindKey("W", ref("vi-forward-blank-word"))
	m.BindKey("B", ref("vi-backward-blank-word"))
	m.BindKey("E", ref("vi-forward-blank-word-end"))
	m.BindKey("%", ref("vi-match-bracket"))
	m.BindKey("0", ref("beginning-of-line"))
	m.BindKey("^", ref("vi-first-non-blank"))
	m.BindKey("$", ref("end-of-line"))
	m.BindKey("f", ref("vi-find-next-char"))
	m.BindKey("F", ref("vi-find-prev-char"))
	m.BindKey("t", ref("vi-find-next-char-skip"))
	m.BindKey("T", ref("vi-find-prev-char-skip"))
	m.BindKey(";", ref("vi-repeat-find"))
	m.BindKey(",", ref("vi-repeat-find-opposite"))
	m.BindKey("d", ref("vi-delete"))
	m.BindKey("c", ref("vi-change"))
	m.BindKey("y", ref("vi-yank"))
	m.BindKey("v", ref("visual-mode"))
	m.BindKey("/", ref("history-incremental-search-forward"))
	m.BindKey("?", ref("history-incremental-search-backward"))
	m.BindKey(string(Ctrl('C')), ref("send-break"))
	m.BindKey("\r", ref("accept-line"))
	m.BindKey("\n", ref("accept-line"))

	for _, d := range Range('1', '9') {
		m.Bind([]rune{d}, ref("digit-argument"))
	}
	bindArrowKeys(m)
}

func bindViOperatorPending(m *KeyMap) {
	m.BindKey("w", ref("vi-op-forward-word"))
	m.BindKey("b", ref("vi-op-backward-word"))
	m.BindKey("e", ref("vi-op-forward-word-end"))
	m.BindKey("W", ref("vi-op-forward-blank-word"))
	m.BindKey("B", ref("vi-op-backward-blank-word"))
	m.BindKey("E", ref("vi-op-forward-blank-word-end"))
	m.BindKey("%", ref("vi-op-match-bracket"))
	m.BindKey("$", ref("vi-op-end-of-line"))
	m.BindKey("d", ref("vi-op-line"))
	m.BindKey("c", ref("vi-op-line"))
	m.BindKey("y", ref("vi-op-line"))
	m.BindKey("f", ref("vi-op-find-char"))
	m.BindKey("t", ref("vi-op-find-char"))
	m.BindKey("iw", ref("vi-op-inner-word"))
	m.BindKey("aw", ref("vi-op-a-word"))
	m.BindKey(`i"`, ref("vi-op-inner-quote"))
	m.BindKey(`a"`, ref("vi-op-a-quote"))
	m.BindKey("i'", ref("vi-op-inner-quote"))
	m.BindKey("a'", ref("vi-op-a-quote"))
	m.BindKey(string(Esc()), ref("vi-cmd-mode"))
}
