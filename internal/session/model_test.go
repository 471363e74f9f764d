package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/batalabs/vshell/internal/domain"
)

func withHistory(inputs ...string) *Model {
	m := New("/start", Config{})
	for _, in := range inputs {
		m.CommandHistory = append(m.CommandHistory, domain.CompletedCommand{Input: in})
	}
	m.ResetHistoryIndex()
	return m
}

func TestSelection(t *testing.T) {
	m := withHistory("oldest", "middle", "newest")
	m.PinnedCommands = []domain.CommandWithoutOutput{
		{CursorPosition: 1, Input: "pin0"},
		{CursorPosition: 2, Input: "pin1"},
	}
	tests := []struct {
		index      int
		wantInput  string
		wantCursor int
		wantOK     bool
	}{
		{0, "pin0", 1, true},
		{1, "pin1", 2, true},
		{2, "newest", 6, true},
		{3, "middle", 6, true},
		{4, "oldest", 6, true},
		{5, "", 0, false},
		{-1, "", 0, false},
	}
	for _, tt := range tests {
		got, ok := m.Selection(tt.index)
		if ok != tt.wantOK || got.Input != tt.wantInput || got.CursorPosition != tt.wantCursor {
			t.Errorf("Selection(%d) = (%+v, %v), want (%q@%d, %v)", tt.index, got, ok, tt.wantInput, tt.wantCursor, tt.wantOK)
		}
	}
}

func TestTogglePin(t *testing.T) {
	m := New("/", Config{})
	if m.TogglePin(domain.CommandWithoutOutput{Input: ""}) {
		t.Error("empty input should not be pinned")
	}
	m.TogglePin(domain.CommandWithoutOutput{Input: "a"})
	m.TogglePin(domain.CommandWithoutOutput{Input: "b"})
	m.TogglePin(domain.CommandWithoutOutput{Input: "c"})
	if pinned := m.TogglePin(domain.CommandWithoutOutput{CursorPosition: 1, Input: "b"}); pinned {
		t.Error("second toggle should unpin")
	}
	if len(m.PinnedCommands) != 2 || m.PinnedCommands[0].Input != "a" || m.PinnedCommands[1].Input != "c" {
		t.Errorf("PinnedCommands = %+v, want [a c]", m.PinnedCommands)
	}
	m.TogglePin(domain.CommandWithoutOutput{Input: "b"})
	if got := m.PinnedCommands[2].Input; got != "b" {
		t.Errorf("re-pinned entry = %q, want appended b", got)
	}
}

func TestPushDirectory(t *testing.T) {
	m := New("/start", Config{})
	m.PushDirectory("/start")
	m.PushDirectory("/tmp")
	m.PushDirectory("/tmp")
	m.PushDirectory("")
	m.PushDirectory("/start")
	want := []string{"/start", "/tmp", "/start"}
	if len(m.DirectoryHistory) != len(want) {
		t.Fatalf("DirectoryHistory = %q, want %q", m.DirectoryHistory, want)
	}
	for i := range want {
		if m.DirectoryHistory[i] != want[i] {
			t.Errorf("DirectoryHistory[%d] = %q, want %q", i, m.DirectoryHistory[i], want[i])
		}
	}
}

func TestApplyCompletion(t *testing.T) {
	m := withHistory("ls")
	m.CommandHistoryIndex = 0
	m.Mode = NewExecuting(nil)
	cc := domain.CompletedCommand{Input: "cd /tmp", Output: domain.Success(domain.Origin{}, "", "")}

	m.ApplyCompletion(cc, "/tmp", nil)

	if len(m.CommandHistory) != 2 || m.CommandHistory[1].Input != "cd /tmp" {
		t.Errorf("CommandHistory = %+v", m.CommandHistory)
	}
	if m.CommandHistoryIndex != 2 {
		t.Errorf("CommandHistoryIndex = %d, want 2", m.CommandHistoryIndex)
	}
	if _, ok := m.Current.(*OutputOnly); !ok {
		t.Errorf("Current = %T, want *OutputOnly", m.Current)
	}
	if _, ok := m.Mode.(*Idle); !ok {
		t.Errorf("Mode = %T, want *Idle", m.Mode)
	}
	if m.LastDirectory() != "/tmp" {
		t.Errorf("LastDirectory() = %q, want /tmp", m.LastDirectory())
	}

	m.ApplyCompletion(cc, "", errors.New("getwd failed"))
	if m.LastDirectory() != "/tmp" || len(m.DirectoryHistory) != 2 {
		t.Errorf("DirectoryHistory = %q after getwd failure", m.DirectoryHistory)
	}
}

func TestReopen(t *testing.T) {
	m := withHistory("echo hi")
	m.CommandHistoryIndex = 0
	m.Current = &Completed{m.CommandHistory[0]}
	e, ok := m.Reopen()
	if !ok || e.Input != "echo hi" || e.CursorPosition != 7 {
		t.Fatalf("Reopen() = %+v, %v", e, ok)
	}
	if m.CommandHistoryIndex != 1 {
		t.Errorf("CommandHistoryIndex = %d, want 1", m.CommandHistoryIndex)
	}
	m.Current = &OutputOnly{}
	if _, ok := m.Reopen(); ok {
		t.Error("Reopen() on output view should fail")
	}
}

func TestViewAccessors(t *testing.T) {
	tests := []struct {
		name       string
		view       View
		wantInput  string
		wantCursor int
		wantOK     bool
	}{
		{"editable", NewEditable("abc", 1), "abc", 1, true},
		{"completed", &Completed{domain.CompletedCommand{Input: "abcd"}}, "abcd", 4, true},
		{"output", &OutputOnly{}, "", 0, false},
	}
	for _, tt := range tests {
		in, ok1 := tt.view.InputText()
		cur, ok2 := tt.view.Cursor()
		if in != tt.wantInput || cur != tt.wantCursor || ok1 != tt.wantOK || ok2 != tt.wantOK {
			t.Errorf("%s: InputText/Cursor = %q,%d (%v,%v)", tt.name, in, cur, ok1, ok2)
		}
	}
}

func TestExecutingStep(t *testing.T) {
	e := NewExecuting(nil)
	var got []uint16
	for i := 0; i < 8; i++ {
		e.Step(4)
		got = append(got, e.BlinkPos)
	}
	want := []uint16{1, 2, 3, 2, 1, 0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("positions = %v, want %v", got, want)
		}
	}
}

func TestSharedDo(t *testing.T) {
	s := NewShared(New("/", Config{}))
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(func(m *Model) error {
				m.PushDirectory("/x")
				m.PushDirectory("/")
				return nil
			})
		}()
	}
	wg.Wait()
	want := errors.New("stop")
	if err := s.Do(func(m *Model) error { return want }); err != want {
		t.Errorf("Do() = %v, want %v", err, want)
	}
	_ = s.Do(func(m *Model) error {
		if len(m.DirectoryHistory) != 101 {
			t.Errorf("len(DirectoryHistory) = %d, want 101", len(m.DirectoryHistory))
		}
		return nil
	})
}
