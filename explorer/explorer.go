// Package explorer is a terminal outline of a bubble tree. Selecting an
// entry navigates the space's camera to that bubble.
package explorer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/bubble"
)

const (
	frameInterval = time.Second / 60
	sidebarWidth  = 36
)

type bubbleItem struct {
	path  string
	name  string
	depth int
	rect  bubble.Rect
}

func (b bubbleItem) Title() string {
	return strings.Repeat("  ", max(b.depth-1, 0)) + b.name
}

func (b bubbleItem) Description() string {
	if b.path == bubble.RootPath {
		return "global space"
	}
	return fmt.Sprintf("%s  %.0fx%.0f", b.path, b.rect.Width, b.rect.Height)
}

func (b bubbleItem) FilterValue() string { return b.path }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model of the explorer.
type Model struct {
	space *bubble.Space
	l     list.Model

	width  int
	height int
	status string
	gen    uint64

	// ExportDir is where "p" writes PNG snapshots.
	ExportDir string
	// Copy writes text to the system clipboard.
	Copy func(string) error
}

// New creates an explorer over s.
func New(s *bubble.Space) Model {
	l := list.New(nil, list.NewDefaultDelegate(), sidebarWidth, 20)
	l.Title = "Bubbles"
	l.SetShowHelp(false)
	m := Model{
		space:     s,
		l:         l,
		status:    "enter: zoom  backspace: out  0: root  ctrl+z/ctrl+y: undo/redo  y: copy view  p: export",
		ExportDir: ".",
		Copy:      clipboard.WriteAll,
	}
	m.refresh()
	return m
}

// refresh rebuilds the outline from the tree, keeping the selection when
// its bubble still exists.
func (m *Model) refresh() {
	selected := ""
	if it, ok := m.l.SelectedItem().(bubbleItem); ok {
		selected = it.path
	}
	var items []list.Item
	idx := 0
	m.space.Tree().Walk(bubble.RootPath, func(b *bubble.Bubble, depth int) bool {
		if b.Path == selected {
			idx = len(items)
		}
		name := b.Name()
		if b.Path == bubble.RootPath {
			name = bubble.RootPath
		}
		items = append(items, bubbleItem{path: b.Path, name: name, depth: depth, rect: b.Rect})
		return true
	})
	m.l.SetItems(items)
	m.l.Select(idx)
	m.gen = m.space.Tree().Generation()
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.space.Update(float32(frameInterval.Seconds()))
		if m.space.Tree().Generation() != m.gen {
			m.refresh()
		}
		return m, tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.l.SetSize(sidebarWidth-2, max(m.height-4, 1))
		return m, nil
	case tea.KeyMsg:
		if m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if it, ok := m.l.SelectedItem().(bubbleItem); ok {
				m.navigate(it.path)
			}
			return m, nil
		case "backspace":
			m.zoomOut()
			return m, nil
		case "0":
			m.navigate(bubble.RootPath)
			return m, nil
		case "ctrl+z":
			m.setStatus(m.space.Undo(), "undo", "nothing to undo")
			return m, nil
		case "ctrl+y":
			m.setStatus(m.space.Redo(), "redo", "nothing to redo")
			return m, nil
		case "y":
			m.copyView()
			return m, nil
		case "p":
			m.export()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

func (m *Model) navigate(path string) {
	if m.space.Navigator().Navigate(path) {
		m.status = "zoom to " + path
		return
	}
	m.status = "busy: " + path + " dropped"
}

func (m *Model) zoomOut() {
	cur, ok := m.space.Navigator().Focus()
	if !ok {
		cur = m.space.Camera().View().Path
	}
	parent, ok := bubble.ParentPath(cur)
	if !ok {
		m.status = "already at the root"
		return
	}
	m.navigate(parent)
}

func (m *Model) setStatus(ok bool, done, failed string) {
	if ok {
		m.status = done
		return
	}
	m.status = failed
}

func (m *Model) copyView() {
	v := m.space.Camera().View()
	text := fmt.Sprintf("%s %g %g %g %g", v.Path, v.Pos.Top, v.Pos.Left, v.Pos.Width, v.Pos.Height)
	if err := m.Copy(text); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied " + text
}

func (m *Model) export() {
	name := fmt.Sprintf("bubble_%s.png", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.ExportDir, name)
	if err := bubble.SavePNG(path, bubble.BuildFrame(m.space), bubble.DefaultStyle); err != nil {
		m.status = "export failed: " + err.Error()
		return
	}
	m.status = "exported " + path
}

func (m Model) View() string {
	v := m.space.Camera().View()
	nav := m.space.Navigator()
	focus, ok := nav.Focus()
	if !ok {
		focus = "-"
	}
	info := strings.Join([]string{
		titleStyle.Render("Camera"),
		fmt.Sprintf("frame  %s", v.Path),
		fmt.Sprintf("top    %.3f", v.Pos.Top),
		fmt.Sprintf("left   %.3f", v.Pos.Left),
		fmt.Sprintf("size   %.3f x %.3f", v.Pos.Width, v.Pos.Height),
		fmt.Sprintf("mode   %s", nav.Mode()),
		fmt.Sprintf("focus  %s", focus),
		fmt.Sprintf("undo   %d", m.space.History().Len()),
	}, "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(m.l.View()),
		boxStyle.Render(info),
	)
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, dimStyle.Render(m.status)))
}
