// Package config loads lineedit configuration from TOML, layering a user
// config file on top of conservative defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kungfusheep/lineedit"
)

// FileConfig is the on-disk shape of a user config file. Fields mirror
// lineedit.Config; it exists separately so TOML tags don't leak into the
// core package.
type FileConfig struct {
	Scheme string `toml:"scheme"` // "emacs" or "vi"

	WordChars            string `toml:"wordChars"`
	CommentBegin         string `toml:"commentBegin"`
	BellStyle            string `toml:"bellStyle"`
	ListMax              int    `toml:"listMax"`
	AmbiguousBindingMs   int    `toml:"ambiguousBindingMs"`
	BlinkMatchingParenMs int    `toml:"blinkMatchingParenMs"`
	KillRingSize         int    `toml:"killRingSize"`

	DisableEventExpansion bool `toml:"disableEventExpansion"`
	HistoryVerify         bool `toml:"historyVerify"`
	CompleteInWord        bool `toml:"completeInWord"`
	CaseInsensitiveComplete bool `toml:"caseInsensitiveComplete"`
	AutoMenu              bool `toml:"autoMenu"`
	ListRowsFirst         bool `toml:"listRowsFirst"`
	MenuComplete          bool `toml:"menuComplete"`
	Group                 bool `toml:"group"`
	DisableHistory        bool `toml:"disableHistory"`
}

// Config is the loaded configuration: the lineedit.Config plus the
// top-level scheme choice that decides which keymap ReadLine starts in.
type Config struct {
	Scheme string
	Edit   lineedit.Config
}

// Default returns the built-in defaults, emacs scheme.
func Default() *Config {
	return &Config{Scheme: "emacs", Edit: lineedit.DefaultConfig()}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lineedit"), nil
}

// ConfigPath returns the path to the user's config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads configuration, layering the user config file on top of
// defaults. Returns the defaults if no user config exists.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var user FileConfig
	if _, err := toml.DecodeFile(path, &user); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	return merge(cfg, &user), nil
}

// merge layers non-zero-valued fields from user on top of defaults. As in
// the defaults this is layered from, boolean "false" can't be
// distinguished from "unset": a boolean in the file can only turn an
// option on, so an on-by-default option cannot be turned off from the
// file, same limitation the layering it's adapted from carries.
func merge(defaults *Config, user *FileConfig) *Config {
	result := *defaults

	if user.Scheme != "" {
		result.Scheme = user.Scheme
	}
	if user.WordChars != "" {
		result.Edit.WordChars = user.WordChars
	}
	if user.CommentBegin != "" {
		result.Edit.CommentBegin = user.CommentBegin
	}
	if user.BellStyle != "" {
		result.Edit.BellStyle = user.BellStyle
	}
	if user.ListMax != 0 {
		result.Edit.ListMax = user.ListMax
	}
	if user.AmbiguousBindingMs != 0 {
		result.Edit.AmbiguousBindingMs = user.AmbiguousBindingMs
	}
	if user.BlinkMatchingParenMs != 0 {
		result.Edit.BlinkMatchingParenMs = user.BlinkMatchingParenMs
	}
	if user.KillRingSize != 0 {
		result.Edit.KillRingSize = user.KillRingSize
	}

	if user.DisableEventExpansion {
		result.Edit.DisableEventExpansion = true
	}
	if user.HistoryVerify {
		result.Edit.HistoryVerify = true
	}
	if user.CompleteInWord {
		result.Edit.CompleteInWord = true
	}
	if user.CaseInsensitiveComplete {
		result.Edit.CaseInsensitiveComplete = true
	}
	if user.AutoMenu {
		result.Edit.AutoMenu = true
	}
	if user.ListRowsFirst {
		result.Edit.ListRowsFirst = true
	}
	if user.MenuComplete {
		result.Edit.MenuComplete = true
	}
	if user.Group {
		result.Edit.Group = true
	}
	if user.DisableHistory {
		result.Edit.DisableHistory = true
	}

	return &result
}

// DefaultTOML returns a commented starter config file.
func DefaultTOML() string {
	return `# lineedit configuration
# Save to ~/.config/lineedit/config.toml and customize.

scheme = "emacs"              # "emacs" or "vi"

wordChars = "*?_-.[]~=/&;!#$%^(){}<>"
commentBegin = "#"
bellStyle = "audible"         # "audible", "visual", or "none"
listMax = 100
ambiguousBindingMs = 400
blinkMatchingParenMs = 500
killRingSize = 60

disableEventExpansion = false
historyVerify = false
completeInWord = false
caseInsensitiveComplete = false
autoMenu = false
listRowsFirst = false
menuComplete = false
group = false
disableHistory = false
`
}
