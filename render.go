package bubble

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Style controls how a Frame is painted.
type Style struct {
	Background color.Color
	Outline    color.Color
	Focus      color.Color
	// OutlineWidth is the bubble outline width in pixels.
	OutlineWidth float32
	// Labels draws each bubble's name at its top-left corner.
	Labels bool
}

// DefaultStyle is a dark theme with labels. ebitenutil prints light text,
// so the background stays dark.
var DefaultStyle = Style{
	Background:   color.RGBA{R: 0x1e, G: 0x22, B: 0x2a, A: 0xff},
	Outline:      color.RGBA{R: 0xa0, G: 0xaa, B: 0xb8, A: 0xff},
	Focus:        color.RGBA{R: 0xf0, G: 0x8c, B: 0x3a, A: 0xff},
	OutlineWidth: 1.5,
	Labels:       true,
}

// labelMinWidth is the narrowest on-screen bubble that still gets a label.
const labelMinWidth = 24

// DrawFrame paints f onto dst: background, bubble outlines parents first,
// then curves in drawing order.
func DrawFrame(dst *ebiten.Image, f Frame, st Style) {
	if st.Background != nil {
		dst.Fill(st.Background)
	}
	for _, b := range f.Bubbles {
		clr := st.Outline
		width := st.OutlineWidth
		if b.Focused {
			clr = st.Focus
			width *= 2
		}
		r := b.Screen
		vector.StrokeRect(dst, float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height), width, clr, true)
		if st.Labels && r.Width >= labelMinWidth {
			ebitenutil.DebugPrintAt(dst, b.Name, int(r.Left)+3, int(r.Top)+2)
		}
	}
	for _, c := range f.Curves {
		drawPolyline(dst, c)
	}
}

func drawPolyline(dst *ebiten.Image, c FrameCurve) {
	clr := curveColor(c)
	w := float32(max(c.Width, 1))
	if len(c.Points) == 1 {
		p := c.Points[0]
		vector.FillCircle(dst, float32(p.X), float32(p.Y), w/2, clr, true)
		return
	}
	for i := 1; i < len(c.Points); i++ {
		a, b := c.Points[i-1], c.Points[i]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, clr, true)
		if w > 2 {
			// Round joins.
			vector.FillCircle(dst, float32(b.X), float32(b.Y), w/2, clr, true)
		}
	}
}

// curveColor applies the pen alpha on top of the pen color.
func curveColor(c FrameCurve) color.RGBA {
	col := c.Color
	col.A *= c.Alpha
	return col.RGBA()
}
