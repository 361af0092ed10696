package lineedit

import "fmt"

// ErrEOF is returned by ReadLine when the input stream closed with an
// empty buffer (§7).
var ErrEOF = fmt.Errorf("lineedit: eof")

// ErrReentrant is returned if ReadLine is called while another call is
// already in progress on the same Reader (§5, §7).
var ErrReentrant = fmt.Errorf("lineedit: ReadLine called while already reading")

// InterruptError is returned by ReadLine when the read was interrupted
// (e.g. Ctrl-C), carrying whatever text had been typed so far (§7).
type InterruptError struct {
	Partial string
}

func (e *InterruptError) Error() string { return "lineedit: interrupted" }

// widgetPanic wraps a recovered panic from inside a widget invocation so
// the dispatch loop can treat it as a failed widget (bell) rather than
// crashing the whole read (§7 "internal anomalies").
type widgetPanic struct {
	val any
}

func (w widgetPanic) Error() string { return fmt.Sprintf("lineedit: widget panic: %v", w.val) }
