package lineedit

// BindingKind discriminates the three things a KeyMap leaf can hold (§3
// GLOSSARY: Binding).
type BindingKind int

const (
	BindWidget BindingKind = iota
	BindReference
	BindMacro
)

// Binding is the value stored at a trie leaf: a widget, a reference to a
// named widget (resolved against the Reader's widget registry at dispatch
// time), or a macro that replays keys into the input stream (§3, §4.1).
type Binding struct {
	Kind BindingKind
	Name string    // BindReference: widget name to resolve
	Keys []rune    // BindMacro: keys to replay
	Fn   WidgetFn  // BindWidget: widget invoked directly
}

func WidgetBinding(fn WidgetFn) Binding     { return Binding{Kind: BindWidget, Fn: fn} }
func ReferenceBinding(name string) Binding  { return Binding{Kind: BindReference, Name: name} }
func MacroBinding(keys string) Binding      { return Binding{Kind: BindMacro, Keys: []rune(keys)} }

type keyNode struct {
	children map[rune]*keyNode
	binding  *Binding
}

// KeyMap is a trie of key sequences to Bindings (§3 GLOSSARY).
type KeyMap struct {
	name    string
	root    *keyNode
	Default *Binding // returned for printable chars with no explicit binding
}

// NewKeyMap creates an empty, named key map.
func NewKeyMap(name string) *KeyMap {
	return &KeyMap{name: name, root: &keyNode{children: map[rune]*keyNode{}}}
}

func (m *KeyMap) Name() string { return m.name }

// Bind installs b at the end of the path spelled out by seq, creating
// intermediate trie nodes as needed.
func (m *KeyMap) Bind(seq []rune, b Binding) {
	n := m.root
	for _, r := range seq {
		child, ok := n.children[r]
		if !ok {
			child = &keyNode{children: map[rune]*keyNode{}}
			n.children[r] = child
		}
		n = child
	}
	bc := b
	n.binding = &bc
}

// BindKey is a convenience for string key sequences.
func (m *KeyMap) BindKey(seq string, b Binding) { m.Bind([]rune(seq), b) }

// Unbind removes whatever binding is at seq, if any.
func (m *KeyMap) Unbind(seq []rune) {
	n := m.root
	for _, r := range seq {
		child, ok := n.children[r]
		if !ok {
			return
		}
		n = child
	}
	n.binding = nil
}

// walk returns the node reached by following seq from root, or nil if the
// prefix has no trie path.
func (m *KeyMap) walk(seq []rune) *keyNode {
	n := m.root
	for _, r := range seq {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// hasChildren reports whether n has any deeper trie entries.
func (n *keyNode) hasChildren() bool {
	return n != nil && len(n.children) > 0
}

// --- Key-sequence helpers, named after JLine's org.jline.keymap.KeyMap
// statics referenced from original_source/.../ConsoleReaderImpl.java, which
// is what every default keymap table in keymaps_default.go is built from.

// Ctrl returns the control-key byte for c (e.g. Ctrl('A') == 0x01).
func Ctrl(c rune) rune { return c & 0x1f }

// Alt returns the ESC-prefixed two-rune sequence for Alt/Meta+c.
func Alt(c rune) []rune { return []rune{0x1b, c} }

// Esc returns the single-rune ESC sequence.
func Esc() []rune { return []rune{0x1b} }

// Del is the DEL byte (0x7f), used for backward-delete on most terminals.
const Del rune = 0x7f

// Range returns every rune in [lo, hi], for binding a contiguous block
// (e.g. digit self-insert) in one call.
func Range(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

// Translate expands a small set of caret/backslash escapes
// (^X, \e, \t, \r, \n) into their raw runes, mirroring KeyMap.translate.
func Translate(s string) []rune {
	var out []rune
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		switch {
		case runes[i] == '^' && i+1 < len(runes):
			out = append(out, Ctrl(runes[i+1]))
			i++
		case runes[i] == '\\' && i+1 < len(runes):
			switch runes[i+1] {
			case 'e':
				out = append(out, 0x1b)
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			case 'n':
				out = append(out, '\n')
			default:
				out = append(out, runes[i+1])
			}
			i++
		default:
			out = append(out, runes[i])
		}
	}
	return out
}
