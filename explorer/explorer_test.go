package explorer

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phanxgames/bubble"
)

func newTestSpace(t *testing.T, animate bool) *bubble.Space {
	t.Helper()
	cfg := bubble.DefaultConfig()
	cfg.AnimationEnabled = animate
	s := bubble.NewSpace(cfg)
	for _, b := range []struct {
		path string
		r    bubble.Rect
	}{
		{"/a", bubble.Rect{Top: -50, Left: -50, Width: 60, Height: 60}},
		{"/a/b", bubble.Rect{Top: -100, Left: -100, Width: 100, Height: 100}},
		{"/d", bubble.Rect{Top: 20, Left: 20, Width: 40, Height: 40}},
	} {
		if _, err := s.AddBubble(b.path, b.r); err != nil {
			t.Fatalf("AddBubble(%q) = %v", b.path, err)
		}
	}
	return s
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+z":
		return tea.KeyMsg{Type: tea.KeyCtrlZ}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func selectPath(t *testing.T, m *Model, path string) {
	t.Helper()
	for i, it := range m.l.Items() {
		if it.(bubbleItem).path == path {
			m.l.Select(i)
			return
		}
	}
	t.Fatalf("%s not in the outline", path)
}

func TestOutline(t *testing.T) {
	m := New(newTestSpace(t, false))
	items := m.l.Items()
	if len(items) != 4 {
		t.Fatalf("items = %d, want 4", len(items))
	}
	if got := items[0].(bubbleItem).path; got != bubble.RootPath {
		t.Errorf("first item = %q, want /", got)
	}
	for _, it := range items {
		b := it.(bubbleItem)
		if b.path == "/a/b" && b.Title() != "  b" {
			t.Errorf("title of /a/b = %q, want indented", b.Title())
		}
	}
}

func TestEnterNavigates(t *testing.T) {
	s := newTestSpace(t, false)
	m := New(s)
	selectPath(t, &m, "/a/b")
	m = send(m, key("enter"))
	if f, _ := s.Navigator().Focus(); f != "/a/b" {
		t.Errorf("focus = %q, want /a/b", f)
	}
	if !strings.Contains(m.status, "/a/b") {
		t.Errorf("status = %q", m.status)
	}

	m = send(m, key("backspace"))
	if f, _ := s.Navigator().Focus(); f != "/a" {
		t.Errorf("focus after backspace = %q, want /a", f)
	}
	m = send(m, key("0"))
	if _, ok := s.Navigator().Focus(); ok {
		t.Error("focus should be cleared at the root")
	}
	m = send(m, key("ctrl+z"))
	if f, _ := s.Navigator().Focus(); f != "" || m.status != "undo" {
		t.Errorf("after undo: focus %q, status %q", f, m.status)
	}
}

func TestTickAdvancesTransition(t *testing.T) {
	s := newTestSpace(t, true)
	m := New(s)
	selectPath(t, &m, "/d")
	m = send(m, key("enter"))
	if !s.Navigator().Animating() {
		t.Fatal("expected a running transition")
	}
	for i := 0; i < 60 && s.Navigator().Animating(); i++ {
		m = send(m, tickMsg(time.Now()))
	}
	if s.Navigator().Animating() {
		t.Error("transition still running after a second of ticks")
	}
}

func TestTickPicksUpNewBubbles(t *testing.T) {
	s := newTestSpace(t, false)
	m := New(s)
	if _, err := s.AddBubble("/e", bubble.Rect{Top: 0, Left: 0, Width: 10, Height: 10}); err != nil {
		t.Fatal(err)
	}
	m = send(m, tickMsg(time.Now()))
	if len(m.l.Items()) != 5 {
		t.Errorf("items = %d, want 5", len(m.l.Items()))
	}
}

func TestTickPicksUpMovedBubbles(t *testing.T) {
	s := newTestSpace(t, false)
	m := New(s)
	if _, err := s.MoveBubble("/d", "/a"); err != nil {
		t.Fatal(err)
	}
	m = send(m, tickMsg(time.Now()))
	selectPath(t, &m, "/a/d")
	for _, it := range m.l.Items() {
		if it.(bubbleItem).path == "/d" {
			t.Error("outline still lists /d after the move")
		}
	}
	m = send(m, key("enter"))
	if f, ok := s.Navigator().Focus(); !ok || f != "/a/d" {
		t.Errorf("Focus = %q, %v; want /a/d", f, ok)
	}
}

func TestCopyView(t *testing.T) {
	m := New(newTestSpace(t, false))
	var copied string
	m.Copy = func(s string) error { copied = s; return nil }
	m = send(m, key("y"))
	if !strings.HasPrefix(copied, "/ ") {
		t.Errorf("copied %q, want the root view", copied)
	}

	m.Copy = func(string) error { return errors.New("no clipboard") }
	m = send(m, key("y"))
	if !strings.Contains(m.status, "no clipboard") {
		t.Errorf("status = %q", m.status)
	}
}

func TestExport(t *testing.T) {
	m := New(newTestSpace(t, false))
	m.ExportDir = t.TempDir()
	m = send(m, key("p"))
	files, _ := filepath.Glob(filepath.Join(m.ExportDir, "*.png"))
	if len(files) != 1 {
		t.Errorf("exported files = %v, want one", files)
	}
}

func TestView(t *testing.T) {
	m := New(newTestSpace(t, false))
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	out := m.View()
	for _, want := range []string{"Camera", "frame  /", "mode   move"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
