package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Preferences holds user-configurable display and behavior settings.
// Persisted to ~/.config/vshell/config.json.
type Preferences struct {
	ShowHints        bool   `json:"show_hints"`
	TabGlyph         string `json:"tab_glyph"`
	HistoryType      string `json:"history_type"`
	DefaultShell     string `json:"default_shell"`
	HighlightHistory bool   `json:"highlight_history"`
	HighlightStyle   string `json:"highlight_style"`
}

// PrefEntry holds a single key-value preference entry for display.
type PrefEntry struct {
	Key   string
	Value string
}

// ConfigKeys lists the keys accepted by Get and Set, in display order.
var ConfigKeys = []string{
	"show_hints",
	"tab_glyph",
	"history_type",
	"default_shell",
	"highlight_history",
	"highlight_style",
}

// DefaultPreferences returns the default set of preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		ShowHints:        true,
		TabGlyph:         "|-->",
		HistoryType:      "command",
		DefaultShell:     "sh",
		HighlightHistory: true,
		HighlightStyle:   "dracula",
	}
}

// LoadPreferences reads preferences from ~/.config/vshell/config.json.
// Missing keys keep their defaults; a malformed file is reported on stderr
// and ignored.
func LoadPreferences() Preferences {
	p := DefaultPreferences()
	path := ConfigFilePath()
	if path == "" {
		return p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		fmt.Fprintf(os.Stderr, "config: parse %s: %v\n", path, err)
		return DefaultPreferences()
	}
	p.normalize()
	return p
}

// SavePreferences writes preferences to ~/.config/vshell/config.json.
func SavePreferences(p Preferences) error {
	dir := ConfigDir()
	if dir == "" {
		return fmt.Errorf("could not determine config directory")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0o600)
}

// normalize replaces values that would break rendering or execution with
// their defaults.
func (p *Preferences) normalize() {
	def := DefaultPreferences()
	if p.HistoryType != "command" && p.HistoryType != "directory" {
		p.HistoryType = def.HistoryType
	}
	if strings.TrimSpace(p.DefaultShell) == "" {
		p.DefaultShell = def.DefaultShell
	}
	if p.HighlightStyle == "" {
		p.HighlightStyle = def.HighlightStyle
	}
}

// All returns every preference as display entries.
func (p Preferences) All() []PrefEntry {
	out := make([]PrefEntry, 0, len(ConfigKeys))
	for _, k := range ConfigKeys {
		out = append(out, PrefEntry{Key: k, Value: p.Get(k)})
	}
	return out
}

// Get returns the display value for key, or "" for an unknown key.
func (p Preferences) Get(key string) string {
	switch key {
	case "show_hints":
		return strconv.FormatBool(p.ShowHints)
	case "tab_glyph":
		return p.TabGlyph
	case "history_type":
		return p.HistoryType
	case "default_shell":
		return p.DefaultShell
	case "highlight_history":
		return strconv.FormatBool(p.HighlightHistory)
	case "highlight_style":
		return p.HighlightStyle
	default:
		return ""
	}
}

// Set updates a single preference key to the given value.
func (p *Preferences) Set(key, value string) error {
	value = SanitizeValue(value)
	switch key {
	case "show_hints":
		b, err := ParseBoolish(value)
		if err != nil {
			return err
		}
		p.ShowHints = b
	case "tab_glyph":
		p.TabGlyph = value
	case "history_type":
		v := strings.ToLower(value)
		if v != "command" && v != "directory" {
			return fmt.Errorf("invalid history_type: %s (use command or directory)", value)
		}
		p.HistoryType = v
	case "default_shell":
		if value == "" {
			return fmt.Errorf("default_shell cannot be empty")
		}
		p.DefaultShell = value
	case "highlight_history":
		b, err := ParseBoolish(value)
		if err != nil {
			return err
		}
		p.HighlightHistory = b
	case "highlight_style":
		p.HighlightStyle = value
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

// SetPair applies a "key=value" assignment.
func (p *Preferences) SetPair(pair string) error {
	key, value, ok := strings.Cut(pair, "=")
	if !ok {
		return fmt.Errorf("expected key=value, got %q", pair)
	}
	return p.Set(strings.TrimSpace(key), value)
}

// SanitizeValue strips null bytes, ASCII control characters (< 32 except
// \t), and DEL (0x7F) from a string value and trims surrounding spaces.
func SanitizeValue(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if (r < 32 && r != '\t') || r == 0x7F {
			return -1
		}
		return r
	}, s))
}

// ParseBoolish parses a boolean-like string value.
func ParseBoolish(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %s (use true/false, on/off, yes/no)", s)
	}
}

// ConfigFilePath returns the absolute path to config.json.
func ConfigFilePath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.json")
}

// FormatPreferences renders preferences as plain text, one key per line.
func FormatPreferences(p Preferences) string {
	var lines []string
	for _, e := range p.All() {
		lines = append(lines, fmt.Sprintf("  %-18s %s", e.Key, e.Value))
	}
	return strings.Join(lines, "\n")
}
