package lineedit

import (
	"io"
	"strings"
)

// fakeTerminal is a minimal Terminal for tests: ReadChar/PeekChar drain a
// preloaded queue of runes, everything else is a no-op stub. Put and
// WriteString additionally record a plain-text transcript (capabilities as
// "<name>" tags) so display tests can assert on what got emitted without a
// real terminal.
type fakeTerminal struct {
	queue []rune
	out   strings.Builder
}

func newFakeTerminal(s string) *fakeTerminal {
	return &fakeTerminal{queue: []rune(s)}
}

func (f *fakeTerminal) ReadChar() (rune, error) {
	if len(f.queue) == 0 {
		return 0, io.EOF
	}
	c := f.queue[0]
	f.queue = f.queue[1:]
	return c, nil
}

func (f *fakeTerminal) PeekChar(timeoutMs int) (rune, error) {
	if len(f.queue) == 0 {
		return -1, nil
	}
	return f.queue[0], nil
}

func (f *fakeTerminal) Output() string { return f.out.String() }

func (f *fakeTerminal) Put(c Capability) bool {
	names := map[Capability]string{
		CapClearScreen:       "<clear>",
		CapClearToEOL:        "<eol>",
		CapBell:              "<bell>",
		CapCarriageReturn:    "<cr>",
		CapCursorUp:          "<up>",
		CapKeypadApplication: "<keypad-app>",
		CapKeypadLocal:       "<keypad-local>",
	}
	if name, ok := names[c]; ok {
		f.out.WriteString(name)
	} else {
		f.out.WriteString("<cap?>")
	}
	return true
}

func (f *fakeTerminal) WriteString(s string) error {
	f.out.WriteString(s)
	return nil
}

func (f *fakeTerminal) Flush() error { return nil }
func (f *fakeTerminal) GetAttributes() (Attributes, error) { return nil, nil }
func (f *fakeTerminal) SetAttributes(Attributes) error  { return nil }
func (f *fakeTerminal) EnterRawMode() (Attributes, error) { return nil, nil }
func (f *fakeTerminal) Size() (Size, error)             { return Size{Rows: 24, Cols: 80}, nil }
func (f *fakeTerminal) InstallSignalHandler(sig Signal, h SignalHandler) func() {
	return func() {}
}
