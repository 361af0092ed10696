// Package termctl provides the default lineedit.Terminal implementation,
// backed by golang.org/x/sys/unix raw-mode ioctls. It is adapted from
// kungfusheep-browse/render/terminal.go (raw mode enter/restore) and
// canvas.go's TerminalSize, generalized from a one-shot alt-screen
// terminal into the long-lived read/write/signal contract lineedit.Reader
// needs.
package termctl

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"unicode/utf8"

	"golang.org/x/sys/unix"

	"github.com/kungfusheep/lineedit"
)

// Terminal is a raw-mode lineedit.Terminal backed by the given files.
type Terminal struct {
	in  *os.File
	out *os.File
	fd  int

	original unix.Termios

	mu      sync.Mutex
	runes   chan rune
	readErr error
	peeked  rune
	havePeek bool

	outBuf []byte
}

// New wraps in/out as a lineedit.Terminal. in must be a real tty for raw
// mode to take effect.
func New(in, out *os.File) *Terminal {
	t := &Terminal{in: in, out: out, fd: int(in.Fd()), runes: make(chan rune, 64), peeked: -1}
	go t.readLoop()
	return t
}

func (t *Terminal) readLoop() {
	buf := make([]byte, 4)
	for {
		n, err := t.in.Read(buf[:1])
		if err != nil {
			t.mu.Lock()
			t.readErr = err
			t.mu.Unlock()
			close(t.runes)
			return
		}
		if n == 0 {
			continue
		}
		b := buf[0]
		if b < utf8.RuneSelf {
			t.runes <- rune(b)
			continue
		}
		// Multi-byte UTF-8 lead byte: read the remaining continuation
		// bytes before decoding.
		size := utf8ExtraBytes(b)
		full := []byte{b}
		for i := 0; i < size; i++ {
			if _, err := t.in.Read(buf[:1]); err != nil {
				t.mu.Lock()
				t.readErr = err
				t.mu.Unlock()
				close(t.runes)
				return
			}
			full = append(full, buf[0])
		}
		r, _ := utf8.DecodeRune(full)
		t.runes <- r
	}
}

func utf8ExtraBytes(lead byte) int {
	switch {
	case lead&0xe0 == 0xc0:
		return 1
	case lead&0xf0 == 0xe0:
		return 2
	case lead&0xf8 == 0xf0:
		return 3
	default:
		return 0
	}
}

func (t *Terminal) ReadChar() (rune, error) {
	if t.havePeek {
		t.havePeek = false
		return t.peeked, nil
	}
	r, ok := <-t.runes
	if !ok {
		return 0, t.readErr
	}
	return r, nil
}

func (t *Terminal) PeekChar(timeoutMs int) (rune, error) {
	if t.havePeek {
		return t.peeked, nil
	}
	select {
	case r, ok := <-t.runes:
		if !ok {
			return 0, t.readErr
		}
		t.peeked, t.havePeek = r, true
		return r, nil
	case <-time.After(time.Duration(timeoutMs) * time.Millisecond):
		return -1, nil
	}
}

func (t *Terminal) Put(cap lineedit.Capability) bool {
	seq, ok := capabilitySequences[cap]
	if !ok {
		return false
	}
	t.outBuf = append(t.outBuf, seq...)
	return true
}

var capabilitySequences = map[lineedit.Capability]string{
	lineedit.CapClearScreen:       "\x1b[2J\x1b[H",
	lineedit.CapClearToEOL:        "\x1b[K",
	lineedit.CapBell:              "\x07",
	lineedit.CapCarriageReturn:    "\r",
	lineedit.CapCursorUp:          "\x1b[A",
	lineedit.CapKeypadApplication: "\x1b[?1h\x1b=",
	lineedit.CapKeypadLocal:       "\x1b[?1l\x1b>",
}

func (t *Terminal) WriteString(s string) error {
	t.outBuf = append(t.outBuf, s...)
	return nil
}

func (t *Terminal) Flush() error {
	if len(t.outBuf) == 0 {
		return nil
	}
	_, err := t.out.Write(t.outBuf)
	t.outBuf = t.outBuf[:0]
	return err
}

func (t *Terminal) GetAttributes() (lineedit.Attributes, error) {
	termios, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("termctl: get attributes: %w", err)
	}
	return *termios, nil
}

func (t *Terminal) SetAttributes(a lineedit.Attributes) error {
	termios, ok := a.(unix.Termios)
	if !ok {
		return fmt.Errorf("termctl: SetAttributes: wrong attribute type")
	}
	return unix.IoctlSetTermios(t.fd, ioctlSetTermios, &termios)
}

func (t *Terminal) EnterRawMode() (lineedit.Attributes, error) {
	prior, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("termctl: enter raw mode: %w", err)
	}
	raw := *prior
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &raw); err != nil {
		return nil, fmt.Errorf("termctl: enter raw mode: %w", err)
	}
	return *prior, nil
}

func (t *Terminal) Size() (lineedit.Size, error) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return lineedit.Size{}, fmt.Errorf("termctl: size: %w", err)
	}
	return lineedit.Size{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}

// InstallSignalHandler registers h against the os signal corresponding to
// sig. The handler runs on its own goroutine reading from a
// signal.Notify channel, which is as close to async-signal-safe as the Go
// runtime allows user code to get; h itself must still only set flags
// (§5) since it runs concurrently with the dispatch loop.
func (t *Terminal) InstallSignalHandler(sig lineedit.Signal, h lineedit.SignalHandler) func() {
	osSig, ok := signalFor(sig)
	if !ok {
		return func() {}
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, osSig)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
				h(sig)
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}

func signalFor(sig lineedit.Signal) (os.Signal, bool) {
	switch sig {
	case lineedit.SigInterrupt:
		return os.Interrupt, true
	case lineedit.SigWinch:
		return syscall.SIGWINCH, true
	case lineedit.SigCont:
		return syscall.SIGCONT, true
	default:
		return nil, false
	}
}
