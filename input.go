package bubble

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	defaultDragDeadZone = 4.0 // pixels
	defaultEraseRadius  = 6.0 // pixels
	wheelZoomStep       = 1.1 // zoom factor per wheel notch
)

// Keys holds the keyboard commands seen during one tick. Each field is true
// on the tick its key was pressed.
type Keys struct {
	Root  bool // back to the root view
	Up    bool // zoom out to the camera bubble's parent
	Move  bool
	Draw  bool
	Erase bool
	Undo  bool
	Redo  bool
}

// InputState is a snapshot of the pointer and keyboard for one tick, in
// viewport pixels.
type InputState struct {
	Cursor  Vec2
	Pressed bool    // primary button held
	Wheel   float64 // vertical wheel delta, positive away from the user
	Keys    Keys
}

// ReadInput samples ebiten's mouse and keyboard.
func ReadInput() InputState {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return InputState{
		Cursor:  Vec2{X: float64(mx), Y: float64(my)},
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Wheel:   wy,
		Keys: Keys{
			Root:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
			Up:    inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
			Move:  inpututil.IsKeyJustPressed(ebiten.KeyM),
			Draw:  inpututil.IsKeyJustPressed(ebiten.KeyD),
			Erase: inpututil.IsKeyJustPressed(ebiten.KeyE),
			Undo:  inpututil.IsKeyJustPressed(ebiten.KeyU),
			Redo:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		},
	}
}

// pointerState tracks the primary pointer between ticks.
type pointerState struct {
	down     bool
	start    Vec2
	last     Vec2
	dragging bool
}

// Controller turns raw input into tool commands on a Space. In move mode a
// click navigates to the bubble under the pointer and a drag pans; in draw
// mode a press draws a stroke; in erase mode it erases curves under the
// pointer. The wheel zooms around the pointer in every interactive mode.
type Controller struct {
	space   *Space
	pointer pointerState

	// DragDeadZone is the distance in pixels the pointer must travel
	// before a press becomes a drag.
	DragDeadZone float64
	// EraseRadius is the erase tool's reach in pixels.
	EraseRadius float64
}

// NewController creates a controller for s.
func NewController(s *Space) *Controller {
	return &Controller{
		space:        s,
		DragDeadZone: defaultDragDeadZone,
		EraseRadius:  defaultEraseRadius,
	}
}

// Process applies one tick of input.
func (c *Controller) Process(in InputState) {
	c.processKeys(in.Keys)
	nav := c.space.Navigator()
	if in.Wheel != 0 && nav.Mode().Interactive() {
		nav.ZoomAt(in.Cursor, math.Pow(wheelZoomStep, in.Wheel))
	}
	c.processPointer(in.Cursor, in.Pressed)
}

func (c *Controller) processKeys(k Keys) {
	nav := c.space.Navigator()
	switch {
	case k.Move:
		nav.SetMode(ModeMove)
	case k.Draw:
		nav.SetMode(ModeDraw)
	case k.Erase:
		nav.SetMode(ModeErase)
	}
	switch {
	case k.Root:
		nav.Navigate(RootPath)
	case k.Up:
		c.zoomOut()
	case k.Undo:
		c.space.Undo()
	case k.Redo:
		c.space.Redo()
	}
}

// processPointer runs the press, drag, release state machine.
func (c *Controller) processPointer(pos Vec2, pressed bool) {
	ps := &c.pointer
	mode := c.space.Navigator().Mode()

	switch {
	case pressed && !ps.down:
		*ps = pointerState{down: true, start: pos, last: pos}
		c.toolDown(mode, pos)
	case !pressed && ps.down:
		if mode == ModeMove && !ps.dragging {
			c.click(pos)
		}
		c.space.EndStroke()
		*ps = pointerState{last: pos}
	case pressed && ps.down:
		if pos == ps.last {
			return
		}
		if !ps.dragging && math.Hypot(pos.X-ps.start.X, pos.Y-ps.start.Y) > c.DragDeadZone {
			ps.dragging = true
		}
		if ps.dragging && mode == ModeMove {
			c.space.Navigator().Pan(pos.X-ps.last.X, pos.Y-ps.last.Y)
		} else {
			c.toolDown(mode, pos)
		}
		ps.last = pos
	default:
		ps.last = pos
	}
}

func (c *Controller) toolDown(mode Mode, pos Vec2) {
	switch mode {
	case ModeDraw:
		c.space.DrawAt(pos)
	case ModeErase:
		c.space.EraseAt(pos, c.EraseRadius)
	}
}

// click navigates to the deepest bubble under pos. Clicking empty space
// zooms out one level.
func (c *Controller) click(pos Vec2) {
	v := c.space.Camera().View()
	if b, ok := c.space.Tree().BubbleAt(v.Path, v.ScreenToLocal(pos)); ok {
		c.space.Navigator().Navigate(b.Path)
		return
	}
	c.zoomOut()
}

// zoomOut navigates to the parent of the focused bubble, or of the camera's
// bubble when nothing is focused.
func (c *Controller) zoomOut() {
	nav := c.space.Navigator()
	cur, ok := nav.Focus()
	if !ok {
		cur = c.space.Camera().View().Path
	}
	if parent, ok := ParentPath(cur); ok {
		nav.Navigate(parent)
	}
}
