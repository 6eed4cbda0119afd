package bubble

import "testing"

func press(c *Controller, x, y float64) {
	c.Process(InputState{Cursor: Vec2{X: x, Y: y}, Pressed: true})
}

func release(c *Controller, x, y float64) {
	c.Process(InputState{Cursor: Vec2{X: x, Y: y}})
}

func TestClickNavigates(t *testing.T) {
	s := newTestSpace(t)
	c := NewController(s)
	// /d spans global [20, 60] on both axes: pixels (420..460, 320..360).
	press(c, 440, 340)
	release(c, 440, 340)
	if f, ok := s.Navigator().Focus(); !ok || f != "/d" {
		t.Errorf("focus = %q, want /d", f)
	}
	if s.History().Len() != 1 {
		t.Errorf("history len = %d, want 1", s.History().Len())
	}
}

func TestClickEmptySpaceZoomsOut(t *testing.T) {
	s := newTestSpace(t)
	c := NewController(s)
	s.Navigator().Navigate("/a/b/c")
	// The camera frame is /a/b and the top-left pixel lies left of /a/b/c,
	// so nothing is hit and the click steps back out of the focus.
	press(c, 1, 1)
	release(c, 1, 1)
	if f, _ := s.Navigator().Focus(); f != "/a/b" {
		t.Errorf("focus = %q, want /a/b", f)
	}
}

func TestDragPans(t *testing.T) {
	s := newTestSpace(t)
	c := NewController(s)
	before := s.Camera().View()
	press(c, 100, 100)
	press(c, 150, 100)
	release(c, 150, 100)

	after := s.Camera().View()
	assertNear(t, "left", after.Pos.Left, before.Pos.Left-50)
	assertNear(t, "top", after.Pos.Top, before.Pos.Top)
	if _, ok := s.Navigator().Focus(); ok {
		t.Error("a drag should not navigate")
	}
}

func TestSmallMoveStillClicks(t *testing.T) {
	s := newTestSpace(t)
	c := NewController(s)
	press(c, 440, 340)
	press(c, 442, 341)
	release(c, 442, 341)
	if f, _ := s.Navigator().Focus(); f != "/d" {
		t.Errorf("focus = %q, want /d", f)
	}
}

func TestDrawWithPointer(t *testing.T) {
	s := newTestSpace(t)
	c := NewController(s)
	c.Process(InputState{Keys: Keys{Draw: true}})
	if s.Navigator().Mode() != ModeDraw {
		t.Fatalf("mode = %v, want draw", s.Navigator().Mode())
	}
	press(c, 400, 300)
	press(c, 410, 300)
	press(c, 420, 310)
	release(c, 420, 310)

	curves := s.Curves().Curves()
	if len(curves) != 1 {
		t.Fatalf("curves = %d, want 1", len(curves))
	}
	if n := len(curves[0].Position); n != 3 {
		t.Errorf("points = %d, want 3", n)
	}
}

func TestEraseWithPointer(t *testing.T) {
	s := newTestSpace(t)
	s.Curves().AddCurve(Curve{Position: []Point{{X: 0, Y: 0}}, Path: RootPath, Config: DefaultPen, IsVisible: true})
	c := NewController(s)
	c.Process(InputState{Keys: Keys{Erase: true}})
	press(c, 402, 301)
	release(c, 402, 301)
	if s.Curves().Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Curves().Len())
	}
}

func TestWheelZooms(t *testing.T) {
	s := newTestSpace(t)
	c := NewController(s)
	c.Process(InputState{Cursor: Vec2{X: 400, Y: 300}, Wheel: 1})
	v := s.Camera().View()
	assertNear(t, "width", v.Pos.Width, 800/1.1)
	center := v.Pos.Center()
	assertNear(t, "center x", center.X, 0)
	assertNear(t, "center y", center.Y, 0)
}

func TestKeys(t *testing.T) {
	s := newTestSpace(t)
	c := NewController(s)
	root := s.Camera().View()

	s.Navigator().Navigate("/d")
	zoomed := s.Camera().View()

	c.Process(InputState{Keys: Keys{Undo: true}})
	assertRect(t, "after undo", s.Camera().View().Pos, root.Pos, 1e-9)

	c.Process(InputState{Keys: Keys{Redo: true}})
	assertRect(t, "after redo", s.Camera().View().Pos, zoomed.Pos, 1e-9)

	c.Process(InputState{Keys: Keys{Up: true}})
	got := s.Camera().View()
	if got.Path != RootPath {
		t.Errorf("path after up = %q, want /", got.Path)
	}
	assertRect(t, "after up", got.Pos, root.Pos, 1e-9)

	s.Navigator().Navigate("/a/b/c")
	c.Process(InputState{Keys: Keys{Root: true}})
	assertRect(t, "after escape", s.Camera().View().Pos, root.Pos, 1e-9)
	if _, ok := s.Navigator().Focus(); ok {
		t.Error("focus should be cleared at the root")
	}
}
