package bubble

import (
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// labelFontSize is the export label size in points at 72 DPI.
const labelFontSize = 11

var labelFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(gomono.TTF)
})

// RenderImage paints f into a new gg context sized to the frame's viewport.
func RenderImage(f Frame, st Style) (*gg.Context, error) {
	w, h := int(f.View.Size.X), int(f.View.Size.Y)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("bubble: render %dx%d: %w", w, h, ErrDegenerate)
	}
	dc := gg.NewContext(w, h)
	if st.Background != nil {
		dc.SetColor(st.Background)
		dc.Clear()
	}

	if st.Labels {
		ttf, err := labelFont()
		if err != nil {
			return nil, fmt.Errorf("bubble: parse label font: %w", err)
		}
		dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
			Size:    labelFontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		}))
	}

	for _, b := range f.Bubbles {
		clr, width := st.Outline, float64(st.OutlineWidth)
		if b.Focused {
			clr, width = st.Focus, width*2
		}
		r := b.Screen
		dc.SetColor(clr)
		dc.SetLineWidth(width)
		dc.DrawRectangle(r.Left, r.Top, r.Width, r.Height)
		dc.Stroke()
		if st.Labels && r.Width >= labelMinWidth {
			dc.DrawStringAnchored(b.Name, r.Left+3, r.Top+2, 0, 1)
		}
	}

	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	for _, c := range f.Curves {
		strokeCurve(dc, c)
	}
	return dc, nil
}

func strokeCurve(dc *gg.Context, c FrameCurve) {
	dc.SetColor(unpremultiply(curveColor(c)))
	w := max(c.Width, 1)
	if len(c.Points) == 1 {
		p := c.Points[0]
		dc.DrawCircle(p.X, p.Y, w/2)
		dc.Fill()
		return
	}
	dc.SetLineWidth(w)
	dc.MoveTo(c.Points[0].X, c.Points[0].Y)
	for _, p := range c.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()
}

// unpremultiply converts a premultiplied color.RGBA to color.NRGBA, which gg
// expects for translucent strokes.
func unpremultiply(c color.RGBA) color.NRGBA {
	if c.A == 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: uint8(uint16(c.R) * 0xff / uint16(c.A)),
		G: uint8(uint16(c.G) * 0xff / uint16(c.A)),
		B: uint8(uint16(c.B) * 0xff / uint16(c.A)),
		A: c.A,
	}
}

// ExportPNG writes f as a PNG image of the frame's viewport size.
func ExportPNG(w io.Writer, f Frame, st Style) error {
	dc, err := RenderImage(f, st)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("bubble: encode png: %w", err)
	}
	return nil
}

// SavePNG writes f as a PNG file at path.
func SavePNG(path string, f Frame, st Style) error {
	dc, err := RenderImage(f, st)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("bubble: save %s: %w", path, err)
	}
	Logger().Info("frame exported", "path", path, "bubbles", len(f.Bubbles), "curves", len(f.Curves))
	return nil
}
