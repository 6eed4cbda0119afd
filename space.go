package bubble

import (
	"fmt"
	"math"
)

// Space is the top-level object of a canvas: it owns the bubble tree, the
// curves, the camera, the navigator, and the move history. Construct one at
// startup and pass it to whatever needs it.
type Space struct {
	cfg     Config
	tree    *Tree
	curves  *CurveStore
	camera  *Camera
	nav     *Navigator
	history *History

	stroking bool
}

// NewSpace creates an empty space, showing the root, configured by cfg.
func NewSpace(cfg Config) *Space {
	cfg = cfg.withDefaults()
	tree := NewTree()
	cam := NewCamera(cfg.Viewport)
	nav := NewNavigator(tree, cam, cfg)
	h := &History{}
	nav.SetHistory(h)
	return &Space{
		cfg:     cfg,
		tree:    tree,
		curves:  NewCurveStore(cfg.Sensitivity, cfg.Pen),
		camera:  cam,
		nav:     nav,
		history: h,
	}
}

// Config returns the configuration the space was created with, defaults
// filled in.
func (s *Space) Config() Config { return s.cfg }

// Tree returns the bubble tree.
func (s *Space) Tree() *Tree { return s.tree }

// Curves returns the curve store.
func (s *Space) Curves() *CurveStore { return s.curves }

// Camera returns the camera.
func (s *Space) Camera() *Camera { return s.camera }

// Navigator returns the navigation engine.
func (s *Space) Navigator() *Navigator { return s.nav }

// History returns the move history.
func (s *Space) History() *History { return s.history }

// Update advances time-based state by dt seconds. Call it once per tick.
func (s *Space) Update(dt float32) {
	s.nav.Update(dt)
}

// AddBubble creates a bubble at path with r in its parent's space.
func (s *Space) AddBubble(path string, r Rect) (*Bubble, error) {
	return s.tree.Add(path, r)
}

// RemoveBubble deletes a bubble subtree and every curve drawn inside it. A
// camera looking from inside the subtree is moved to the removed bubble's
// parent first, keeping what it shows on screen. Recorded views inside the
// subtree are re-expressed in the parent the same way.
func (s *Space) RemoveBubble(path string) error {
	if _, ok := s.tree.Find(path); !ok || path == RootPath {
		_, err := s.tree.Remove(path)
		return err
	}
	s.nav.Interrupt()
	parent, _ := ParentPath(path)
	v := s.camera.View()
	reframe := false
	if IsAncestor(path, v.Path) {
		if pos, ok := s.tree.Convert(v.Pos, v.Path, parent); ok {
			v.Pos, v.Path = pos, parent
			reframe = true
		}
	}
	s.history.Reframe(func(rv ViewCoord) (ViewCoord, bool) {
		if !IsAncestor(path, rv.Path) {
			return rv, true
		}
		pos, ok := s.tree.Convert(rv.Pos, rv.Path, parent)
		rv.Pos, rv.Path = pos, parent
		return rv, ok
	})
	if _, err := s.tree.Remove(path); err != nil {
		return err
	}
	s.curves.RemoveCurvesUnder(path)
	if IsAncestor(path, s.curves.DrawingPath()) {
		s.curves.SetDrawingPath(parent)
	}
	if f, ok := s.nav.Focus(); ok && IsAncestor(path, f) {
		s.nav.ClearFocus()
	}
	if reframe {
		s.nav.UpdateView(v, nil)
	}
	Logger().Debug("bubble removed", "path", path)
	return nil
}

// MoveBubble reparents a bubble subtree under newParent, carrying its curves
// along. The camera keeps showing the same thing.
func (s *Space) MoveBubble(oldPath, newParent string) (string, error) {
	s.nav.Interrupt()
	v := s.camera.View()
	global, camOK := s.tree.Convert(v.Pos, v.Path, RootPath)

	newPath, err := s.tree.Move(oldPath, newParent)
	if err != nil {
		return "", err
	}
	s.curves.RenamePath(oldPath, newPath)
	s.history.Reframe(func(rv ViewCoord) (ViewCoord, bool) {
		if IsAncestor(oldPath, rv.Path) {
			rv.Path = newPath + rv.Path[len(oldPath):]
		}
		return rv, true
	})
	if f, ok := s.nav.Focus(); ok && IsAncestor(oldPath, f) {
		s.nav.setFocus(newPath + f[len(oldPath):])
	}
	if camOK {
		s.nav.UpdateView(ViewCoord{Pos: global, Size: v.Size, Path: RootPath}, nil)
	}
	return newPath, nil
}

// Undo returns the camera to the view before the latest recorded move. The
// record only moves to the redo stack once the camera has been restored.
func (s *Space) Undo() bool {
	if s.nav.Animating() {
		return false
	}
	rec, ok := s.history.peekUndo()
	if !ok || !s.nav.Restore(rec.Object) {
		return false
	}
	s.history.Undo()
	return true
}

// Redo re-applies the latest undone move.
func (s *Space) Redo() bool {
	if s.nav.Animating() {
		return false
	}
	rec, ok := s.history.peekRedo()
	if !ok || !s.nav.Restore(rec.NewCameraView) {
		return false
	}
	s.history.Redo()
	return true
}

// DrawAt forwards a pointer position, in viewport pixels, to the stroke in
// progress. The first point of a stroke pins it to the camera's bubble;
// later points are converted into that bubble if the camera has moved on.
// Ignored unless the mode is ModeDraw.
func (s *Space) DrawAt(screen Vec2) bool {
	if s.nav.Mode() != ModeDraw {
		return false
	}
	v := s.camera.View()
	force := false
	if !s.stroking {
		s.stroking = true
		s.curves.SetDrawingPath(v.Path)
		force = true
	}
	p := v.ScreenToLocal(screen)
	if dp := s.curves.DrawingPath(); dp != v.Path {
		// The camera changed bubble mid-stroke.
		m, ok := s.tree.matrix(v.Path, dp)
		if !ok {
			return false
		}
		p = transformPoint(m, p)
	}
	return s.curves.AddControlPoint(p, force)
}

// EndStroke stores the stroke in progress. Its thickness is converted from
// pixels to the bubble's local units so it scales with zoom.
func (s *Space) EndStroke() (Curve, bool) {
	if !s.stroking {
		return Curve{}, false
	}
	s.stroking = false
	v := s.camera.View()
	m, ok := s.tree.matrix(s.curves.DrawingPath(), v.Path)
	if !ok {
		m = identityTransform
	}
	return s.curves.FinishCurve(m[0] * v.Size.X / v.Pos.Width)
}

// EraseAt removes every visible curve passing within radius pixels of a
// viewport position. Ignored unless the mode is ModeErase.
func (s *Space) EraseAt(screen Vec2, radius float64) int {
	if s.nav.Mode() != ModeErase {
		return 0
	}
	v := s.camera.View()
	removed := 0
	for _, c := range s.curves.Curves() {
		if c.ID == 0 || !c.IsVisible {
			continue
		}
		pts, _, ok := s.projectCurve(c, v)
		if !ok {
			continue
		}
		for _, p := range pts {
			if math.Hypot(p.X-screen.X, p.Y-screen.Y) <= radius {
				s.curves.RemoveCurve(c.ID)
				removed++
				break
			}
		}
	}
	return removed
}

// projectCurve maps a curve's points to viewport pixels and returns its
// stroke width in pixels.
func (s *Space) projectCurve(c Curve, v ViewCoord) ([]Vec2, float64, bool) {
	m, ok := s.tree.matrix(c.Path, v.Path)
	if !ok {
		return nil, 0, false
	}
	pts := transformPoints(m, c.Position)
	for i, p := range pts {
		pts[i] = v.LocalToScreen(p)
	}
	width := c.Config.Thickness * m[0] * v.Size.X / v.Pos.Width
	return pts, width, true
}

// String summarizes the space for logs.
func (s *Space) String() string {
	v := s.camera.View()
	return fmt.Sprintf("space{bubbles:%d curves:%d view:%s %+v mode:%s}",
		s.tree.Len(), s.curves.Len(), v.Path, v.Pos, s.nav.Mode())
}
