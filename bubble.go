package bubble

import "image/color"

// Every bubble's own space is the square [LocalMin, LocalMax]², whatever size
// the bubble is drawn at.
const (
	LocalMin    = -100.0
	LocalMax    = 100.0
	LocalExtent = LocalMax - LocalMin
)

// RootPath is the path of the root bubble. Its space is the global space.
const RootPath = "/"

// Vec2 is a 2D vector used for points, sizes, and offsets.
type Vec2 struct {
	X, Y float64
}

// Point is a position inside some bubble's local space.
type Point = Vec2

// Rect is an axis-aligned rectangle expressed in some bubble's local space.
// Top grows downward, Left grows rightward.
type Rect struct {
	Top, Left, Width, Height float64
}

// FullExtent is a bubble's entire local space.
var FullExtent = Rect{Top: LocalMin, Left: LocalMin, Width: LocalExtent, Height: LocalExtent}

// Bottom returns Top + Height.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Right returns Left + Width.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Valid reports whether the rectangle has positive width and height.
func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// InsideExtent reports whether r lies within a bubble's local extent.
// Edges touching the extent count as inside.
func (r Rect) InsideExtent() bool {
	return r.Top >= LocalMin && r.Left >= LocalMin &&
		r.Bottom() <= LocalMax && r.Right() <= LocalMax
}

// StrictlyInside reports whether r lies inside outer without touching any of
// its edges. A rect equal to outer is not strictly inside it.
func (r Rect) StrictlyInside(outer Rect) bool {
	return outer.Top < r.Top && outer.Left < r.Left &&
		r.Bottom() < outer.Bottom() && r.Right() < outer.Right()
}

// Contains reports whether p lies inside the rectangle. Points on the edge
// are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() &&
		p.Y >= r.Top && p.Y <= r.Bottom()
}

// Intersects reports whether r and other overlap. Rectangles sharing only
// an edge are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.Left <= other.Right() && r.Right() >= other.Left &&
		r.Top <= other.Bottom() && r.Bottom() >= other.Top
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Predefined colors. ColorWhite is the default pen color, drawn over the
// dark default background.
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PenConfig describes how a curve is stroked.
type PenConfig struct {
	Color     Color
	Thickness float64
	Alpha     float64
}

// DefaultPen is used when no pen has been configured.
var DefaultPen = PenConfig{Color: ColorWhite, Thickness: 2, Alpha: 1}

// Mode is the current interaction mode.
type Mode uint8

const (
	ModeMove    Mode = iota // pan and navigate (default)
	ModeDraw                // pointer strokes become curves
	ModeErase               // pointer strokes remove curves
	ModeAnimate             // a view transition is running; input is ignored
)

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeDraw:
		return "draw"
	case ModeErase:
		return "erase"
	case ModeAnimate:
		return "animate"
	default:
		return "unknown"
	}
}

// Interactive reports whether pointer tools may act in this mode.
func (m Mode) Interactive() bool {
	return m != ModeAnimate
}
