package main

import (
	"path/filepath"
	"testing"

	"github.com/batalabs/vshell/internal/config"
	"github.com/batalabs/vshell/internal/session"
)

func TestSessionConfig(t *testing.T) {
	tests := []struct {
		name string
		edit func(*config.Preferences)
		want session.Config
	}{
		{"defaults", func(*config.Preferences) {}, session.Config{HintState: session.ShowHints, HistoryType: session.CommandHistory}},
		{"hints off", func(p *config.Preferences) { p.ShowHints = false }, session.Config{HintState: session.HideHints, HistoryType: session.CommandHistory}},
		{"directory history", func(p *config.Preferences) { p.HistoryType = "directory" }, session.Config{HintState: session.ShowHints, HistoryType: session.DirectoryHistory}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := config.DefaultPreferences()
			tt.edit(&p)
			if got := sessionConfig(p); got != tt.want {
				t.Errorf("sessionConfig = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLogPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := logPath("/tmp/custom.log"); got != "/tmp/custom.log" {
		t.Errorf("logPath(flag) = %q", got)
	}
	if got, want := logPath(""), filepath.Join(home, ".local", "share", "vshell", "vshell.log"); got != want {
		t.Errorf("logPath(\"\") = %q, want %q", got, want)
	}
}
