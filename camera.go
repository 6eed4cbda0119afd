package bubble

// ViewCoord is the camera state: the visible rectangle Pos, expressed in the
// local space of the bubble at Path, and the viewport pixel Size.
type ViewCoord struct {
	Pos  Rect
	Size Vec2
	Path string
}

// RootView returns the view of the full root extent for a viewport: one
// global unit per pixel, centered on the origin.
func RootView(size Vec2) ViewCoord {
	return ViewCoord{
		Pos:  Rect{Top: -size.Y / 2, Left: -size.X / 2, Width: size.X, Height: size.Y},
		Size: size,
		Path: RootPath,
	}
}

// ScreenToLocal converts a viewport pixel position to a point in the local
// space of the view's bubble.
func (v ViewCoord) ScreenToLocal(s Vec2) Point {
	return Point{
		X: v.Pos.Left + s.X*v.Pos.Width/v.Size.X,
		Y: v.Pos.Top + s.Y*v.Pos.Height/v.Size.Y,
	}
}

// LocalToScreen converts a point in the view bubble's local space to viewport
// pixels.
func (v ViewCoord) LocalToScreen(p Point) Vec2 {
	return Vec2{
		X: (p.X - v.Pos.Left) * v.Size.X / v.Pos.Width,
		Y: (p.Y - v.Pos.Top) * v.Size.Y / v.Pos.Height,
	}
}

// RectToScreen converts a rect in the view bubble's local space to a
// viewport-pixel rect.
func (v ViewCoord) RectToScreen(r Rect) Rect {
	sx := v.Size.X / v.Pos.Width
	sy := v.Size.Y / v.Pos.Height
	return Rect{
		Top:    (r.Top - v.Pos.Top) * sy,
		Left:   (r.Left - v.Pos.Left) * sx,
		Width:  r.Width * sx,
		Height: r.Height * sy,
	}
}

// Resized returns v for a viewport of a new pixel size. The number of local
// units per pixel and the top-left corner stay put, so Pos grows with the
// window. The result is not normalized. A non-positive size returns v.
func (v ViewCoord) Resized(size Vec2) ViewCoord {
	if size.X <= 0 || size.Y <= 0 {
		return v
	}
	if v.Size.X > 0 && v.Size.Y > 0 {
		v.Pos.Width *= size.X / v.Size.X
		v.Pos.Height *= size.Y / v.Size.Y
	}
	v.Size = size
	return v
}

// Camera owns the single mutable ViewCoord the system revolves around.
// Writers are the Navigator and its transitions; readers subscribe to be
// told about every published view. Single-threaded: callers serialize access.
type Camera struct {
	view ViewCoord

	subs   map[int]func(ViewCoord)
	nextID int
}

// NewCamera creates a camera showing the root extent for the given viewport.
func NewCamera(size Vec2) *Camera {
	return &Camera{view: RootView(size)}
}

// View returns the current camera state.
func (c *Camera) View() ViewCoord {
	return c.view
}

// SetView overwrites the camera state and notifies subscribers. It performs
// no normalization; use Navigator.UpdateView for that.
func (c *Camera) SetView(v ViewCoord) {
	c.view = v
	c.publish()
}

// SetPos replaces only the visible rectangle, keeping Path and Size.
func (c *Camera) SetPos(pos Rect) {
	c.view.Pos = pos
	c.publish()
}

// Subscribe registers fn to be called with every published view. The
// returned function unregisters it and is safe to call more than once.
func (c *Camera) Subscribe(fn func(ViewCoord)) (cancel func()) {
	if c.subs == nil {
		c.subs = make(map[int]func(ViewCoord))
	}
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

func (c *Camera) publish() {
	for _, fn := range c.subs {
		fn(c.view)
	}
}
