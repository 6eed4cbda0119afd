package bubble

// FrameBubble is a bubble outline in viewport pixels.
type FrameBubble struct {
	Path    string
	Name    string
	Screen  Rect
	Depth   int // levels below the camera's bubble; 0 is the camera's own
	Focused bool
}

// FrameCurve is a curve polyline in viewport pixels.
type FrameCurve struct {
	ID     int // 0 for the stroke in progress
	Points []Vec2
	Width  float64
	Color  Color
	Alpha  float64
}

// Frame is a renderer-agnostic snapshot of what the camera sees. Bubbles
// are ordered parents before children and curves in drawing order, so
// painting them front to back gives the right stacking.
type Frame struct {
	View    ViewCoord
	Mode    Mode
	Bubbles []FrameBubble
	Curves  []FrameCurve
}

// BuildFrame projects the visible part of s into viewport pixels: the
// camera's bubble and its visible descendants down to MaxRenderDepth, plus
// every visible curve drawn in one of those bubbles or in an ancestor of the
// camera's bubble. Anything entirely off screen is culled.
func BuildFrame(s *Space) Frame {
	v := s.camera.View()
	f := Frame{View: v, Mode: s.nav.Mode()}
	if _, ok := s.tree.Find(v.Path); !ok || v.Pos.Width <= 0 || v.Pos.Height <= 0 {
		return f
	}
	screen := Rect{Width: v.Size.X, Height: v.Size.Y}
	maxDepth := s.cfg.MaxRenderDepth
	focus, _ := s.nav.Focus()
	base := PathDepth(v.Path)

	s.tree.Walk(v.Path, func(b *Bubble, depth int) bool {
		if !b.IsVisible {
			return false
		}
		if b.Path == RootPath {
			return depth < maxDepth
		}
		r, _ := s.tree.Convert(FullExtent, b.Path, v.Path)
		sr := v.RectToScreen(r)
		if !sr.Intersects(screen) {
			return false
		}
		f.Bubbles = append(f.Bubbles, FrameBubble{
			Path:    b.Path,
			Name:    b.Name(),
			Screen:  sr,
			Depth:   depth,
			Focused: b.Path == focus,
		})
		return depth < maxDepth
	})

	for _, c := range s.curves.Curves() {
		if !c.IsVisible || len(c.Position) == 0 {
			continue
		}
		below := IsAncestor(v.Path, c.Path) && PathDepth(c.Path)-base <= maxDepth
		if !below && !IsAncestor(c.Path, v.Path) {
			continue
		}
		if !s.curveShown(c.Path, v.Path) {
			continue
		}
		pts, width, ok := s.projectCurve(c, v)
		if !ok || !polylineBounds(pts, width).Intersects(screen) {
			continue
		}
		f.Curves = append(f.Curves, FrameCurve{
			ID:     c.ID,
			Points: pts,
			Width:  width,
			Color:  c.Config.Color,
			Alpha:  c.Config.Alpha,
		})
	}
	return f
}

// curveShown reports whether every bubble between the camera's bubble and a
// curve's bubble is visible. Curves in ancestors are always shown.
func (s *Space) curveShown(curvePath, viewPath string) bool {
	for p := curvePath; p != viewPath && IsAncestor(viewPath, p); p, _ = ParentPath(p) {
		b, ok := s.tree.Find(p)
		if !ok || !b.IsVisible {
			return false
		}
	}
	return true
}

// polylineBounds returns the bounding rect of pts grown by half the stroke
// width.
func polylineBounds(pts []Vec2, width float64) Rect {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	h := width / 2
	return Rect{Top: minY - h, Left: minX - h, Width: maxX - minX + width, Height: maxY - minY + width}
}
