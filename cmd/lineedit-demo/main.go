// Command lineedit-demo is an interactive REPL that exercises
// lineedit.Reader end to end: history, completion, undo/kill/yank, and
// both emacs and vi keybinding schemes.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kungfusheep/lineedit"
	"github.com/kungfusheep/lineedit/config"
	"github.com/kungfusheep/lineedit/internal/simplecompleter"
	"github.com/kungfusheep/lineedit/internal/termctl"
	"github.com/kungfusheep/lineedit/internal/wordparser"
)

var (
	viMode      bool
	maskInput   bool
	historyFile string
	debugLog    bool
)

var rootCmd = &cobra.Command{
	Use:     "lineedit-demo",
	Short:   "Interactive demo for the lineedit line editor",
	Version: "dev",
	RunE:    run,
}

func init() {
	rootCmd.Flags().BoolVar(&viMode, "vi", false, "start in vi command mode instead of emacs")
	rootCmd.Flags().BoolVar(&maskInput, "mask", false, "mask input as password entry")
	rootCmd.Flags().StringVar(&historyFile, "history", "", "load/save history to this file")
	rootCmd.Flags().BoolVar(&debugLog, "debug", false, "log every dispatched binding to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if viMode {
		cfg.Scheme = "vi"
	}

	term := termctl.New(os.Stdin, os.Stdout)

	opts := []lineedit.ReaderOption{
		lineedit.WithCompleter(simplecompleter.New()),
		lineedit.WithParser(wordparser.New()),
	}
	if cfg.Scheme == "vi" {
		opts = append(opts, lineedit.WithVi())
	}
	if maskInput {
		opts = append(opts, lineedit.WithMask('*'))
	}
	if debugLog {
		opts = append(opts, lineedit.WithDebugLog(log.New(os.Stderr, "", log.Ltime)))
	}

	r := lineedit.NewReader(term, cfg.Edit, opts...)

	if historyFile != "" {
		loadHistory(r, historyFile)
		defer saveHistory(r, historyFile)
	}

	for {
		line, err := r.ReadLine("lineedit> ", "", "")
		if err != nil {
			if err == lineedit.ErrEOF {
				fmt.Println()
				return nil
			}
			if ie, ok := err.(*lineedit.InterruptError); ok {
				fmt.Fprintf(os.Stderr, "\n^C (partial: %q)\n", ie.Partial)
				continue
			}
			return err
		}
		fmt.Printf("\n%s\n", line)
		if line == "exit" || line == "quit" {
			return nil
		}
	}
}

func loadHistory(r *lineedit.Reader, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	for _, line := range splitLines(string(data)) {
		if line != "" {
			r.Hist.Add(line)
		}
	}
}

func saveHistory(r *lineedit.Reader, path string) {
	var out []byte
	for i := 0; i < r.Hist.Size(); i++ {
		e, ok := r.Hist.EntryAt(i)
		if !ok {
			continue
		}
		out = append(out, e.Text...)
		out = append(out, '\n')
	}
	_ = os.WriteFile(path, out, 0o600)
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
