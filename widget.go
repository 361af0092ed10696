package lineedit

// WidgetFn is a zero-argument, side-effecting operation on the Reader that
// reports success (§4.3). "Zero-argument" means no parameters beyond the
// Reader itself: a widget reads whatever count/mult/mode state it needs
// off r.
type WidgetFn func(r *Reader) bool

// WidgetRegistry maps widget names to implementations. Built-ins are
// registered once into a package-level registry and published read-only;
// callers get their own mutable copy via NewWidgetRegistry to add or
// override widgets without touching the shared defaults (§9 "Sub-interface
// polymorphism").
type WidgetRegistry struct {
	widgets map[string]WidgetFn
}

// NewWidgetRegistry returns a registry seeded with a copy of the built-in
// widget table.
func NewWidgetRegistry() *WidgetRegistry {
	w := make(map[string]WidgetFn, len(builtinWidgets))
	for k, v := range builtinWidgets {
		w[k] = v
	}
	return &WidgetRegistry{widgets: w}
}

// Get resolves a widget by name.
func (r *WidgetRegistry) Get(name string) (WidgetFn, bool) {
	fn, ok := r.widgets[name]
	return fn, ok
}

// Set installs or overrides a widget under name, for user-defined widgets
// and rebinding built-ins (§9).
func (r *WidgetRegistry) Set(name string, fn WidgetFn) {
	r.widgets[name] = fn
}

// Names returns every registered widget name.
func (r *WidgetRegistry) Names() []string {
	names := make([]string, 0, len(r.widgets))
	for k := range r.widgets {
		names = append(names, k)
	}
	return names
}

// builtinWidgets is populated by init() in the various widgets_*.go files
// (motion, editing, history, completion, vi) so the registration sites sit
// next to each widget's implementation.
var builtinWidgets = map[string]WidgetFn{}

func registerWidget(name string, fn WidgetFn) {
	if _, dup := builtinWidgets[name]; dup {
		panic("lineedit: duplicate widget registration: " + name)
	}
	builtinWidgets[name] = fn
}
