package bubble

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Path   string  `json:"path,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays input one tick at a time, for demos and automated visual
// checks. Supported actions:
//
//	click      x, y
//	drag       fromX, fromY, toX, toY, frames
//	wheel      x, y, delta
//	key        label: root, up, move, draw, erase, undo, redo
//	navigate   path
//	wait       frames
//	screenshot label
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	queue     []InputState
	last      Vec2
	done      bool

	// ScreenshotDir is where screenshot steps write their PNG files.
	ScreenshotDir string
}

// LoadScript parses a JSON script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "click", "drag", "wheel", "navigate", "wait", "screenshot":
		case "key":
			if _, ok := keyByName(st.Label); !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown key %q", i, st.Label)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps, ScreenshotDir: "."}, nil
}

// Done reports whether every step has run.
func (r *Script) Done() bool {
	return r.done
}

// Next returns the input for the current tick. Steps that act directly on
// s, like navigate and screenshot, run here and yield an idle tick.
func (r *Script) Next(s *Space) InputState {
	if len(r.queue) > 0 {
		in := r.queue[0]
		r.queue = r.queue[1:]
		r.last = in.Cursor
		r.finishIfDrained()
		return in
	}
	idle := InputState{Cursor: r.last}
	if r.done {
		return idle
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.finishIfDrained()
		return idle
	}

	st := r.steps[r.cursor]
	r.cursor++
	switch st.Action {
	case "click":
		pos := Vec2{X: st.X, Y: st.Y}
		r.queue = append(r.queue, InputState{Cursor: pos, Pressed: true}, InputState{Cursor: pos})
	case "drag":
		r.queueDrag(Vec2{X: st.FromX, Y: st.FromY}, Vec2{X: st.ToX, Y: st.ToY}, st.Frames)
	case "wheel":
		r.queue = append(r.queue, InputState{Cursor: Vec2{X: st.X, Y: st.Y}, Wheel: st.Delta})
	case "key":
		k, _ := keyByName(st.Label)
		r.queue = append(r.queue, InputState{Cursor: r.last, Keys: k})
	case "navigate":
		if !s.Navigator().Navigate(st.Path) {
			Logger().Warn("script navigate dropped", "path", st.Path)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "screenshot":
		path := filepath.Join(r.ScreenshotDir, screenshotName(st.Label)+".png")
		if err := SavePNG(path, BuildFrame(s), DefaultStyle); err != nil {
			Logger().Error("script screenshot failed", "path", path, "err", err)
		}
	}
	if len(r.queue) > 0 {
		return r.Next(s)
	}
	r.finishIfDrained()
	return idle
}

// queueDrag queues a press at from, moves ending at to, and a release over
// frames ticks. The minimum is 3 so at least one move is seen.
func (r *Script) queueDrag(from, to Vec2, frames int) {
	frames = max(frames, 3)
	r.queue = append(r.queue, InputState{Cursor: from, Pressed: true})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.queue = append(r.queue, InputState{
			Cursor:  Vec2{X: from.X + (to.X-from.X)*t, Y: from.Y + (to.Y-from.Y)*t},
			Pressed: true,
		})
	}
	r.queue = append(r.queue, InputState{Cursor: to})
}

func (r *Script) finishIfDrained() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.queue) == 0 {
		r.done = true
	}
}

func keyByName(name string) (Keys, bool) {
	switch name {
	case "root":
		return Keys{Root: true}, true
	case "up":
		return Keys{Up: true}, true
	case "move":
		return Keys{Move: true}, true
	case "draw":
		return Keys{Draw: true}, true
	case "erase":
		return Keys{Erase: true}, true
	case "undo":
		return Keys{Undo: true}, true
	case "redo":
		return Keys{Redo: true}, true
	}
	return Keys{}, false
}

// screenshotName turns a screenshot label into a file name stem. ASCII
// letters, digits, '-' and '.' are kept and anything else becomes '_'. A
// blank label is named "unlabeled".
func screenshotName(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (r == '-' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, label)
}
