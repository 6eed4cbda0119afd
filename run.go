package bubble

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Style paints the frame. The zero value means DefaultStyle.
	Style *Style
	// Script, when set, replaces live input until it is done.
	Script *Script
	// ExitWhenDone ends Run once Script has finished.
	ExitWhenDone bool
}

// errScriptDone ends the game loop after a script finishes.
var errScriptDone = errors.New("bubble: script done")

// game adapts a Space to ebiten.Game.
type game struct {
	space  *Space
	ctrl   *Controller
	cfg    RunConfig
	style  Style
	update func(*Space) error
}

// Run opens a window showing s and drives it until the window closes.
// update, when non-nil, is called once per tick before input is applied;
// returning an error stops the loop and Run returns it.
func Run(s *Space, cfg RunConfig, update func(*Space) error) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		v := s.Camera().View()
		cfg.Width, cfg.Height = int(v.Size.X), int(v.Size.Y)
	}
	g := &game{space: s, ctrl: NewController(s), cfg: cfg, style: DefaultStyle, update: update}
	if cfg.Style != nil {
		g.style = *cfg.Style
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	Logger().Info("starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)

	err := ebiten.RunGame(g)
	if errors.Is(err, errScriptDone) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("bubble: run: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	if g.update != nil {
		if err := g.update(g.space); err != nil {
			return err
		}
	}
	var in InputState
	if sc := g.cfg.Script; sc != nil && !sc.Done() {
		in = sc.Next(g.space)
	} else {
		if sc != nil && g.cfg.ExitWhenDone {
			return errScriptDone
		}
		in = ReadInput()
	}
	g.ctrl.Process(in)
	g.space.Update(1 / float32(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	f := BuildFrame(g.space)
	DrawFrame(screen, f, g.style)
	status := fmt.Sprintf("%s  %s", f.Mode, f.View.Path)
	if g.cfg.ShowFPS {
		status += fmt.Sprintf("  FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	ebitenutil.DebugPrintAt(screen, status, 4, int(f.View.Size.Y)-16)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.space.Navigator().Resize(Vec2{X: float64(outsideWidth), Y: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}
