// Package lineedit implements an interactive line editor for character-cell
// terminals: prompts, cursor motion, text editing, history recall and
// search, tab completion, undo/redo, kill/yank, and emacs/vi key bindings.
//
// The package owns none of the terminal itself, the word-tokenizing parser,
// the completer, the highlighter, or history persistence — those are
// supplied by the embedding application through the interfaces in
// interfaces.go. See internal/termctl, internal/wordparser and
// internal/simplecompleter for default implementations suitable for a
// simple consumer.
package lineedit
