package bubble

import "github.com/tanema/gween/ease"

// Config holds the tunables of a Space. Start from DefaultConfig and
// override fields; zero numeric fields are replaced by their defaults.
type Config struct {
	// Viewport is the pixel size of the rendering surface.
	Viewport Vec2
	// AnimationEnabled makes navigation glide between views instead of
	// jumping.
	AnimationEnabled bool
	// TransitionDuration is the length of a view transition in seconds.
	TransitionDuration float32
	// Ease is the easing function of view transitions.
	Ease ease.TweenFunc
	// Sensitivity is the number of control points dropped between two
	// accepted ones while drawing. 0 keeps every point.
	Sensitivity int
	// Pen is the pen new curves are drawn with.
	Pen PenConfig
	// MaxRenderDepth limits how many levels below the camera's bubble are
	// drawn.
	MaxRenderDepth int
}

const (
	defaultTransitionDuration = 0.5
	defaultMaxRenderDepth     = 4
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Viewport:           Vec2{X: 800, Y: 600},
		AnimationEnabled:   true,
		TransitionDuration: defaultTransitionDuration,
		Ease:               DefaultEase,
		Pen:                DefaultPen,
		MaxRenderDepth:     defaultMaxRenderDepth,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Viewport.X <= 0 || c.Viewport.Y <= 0 {
		c.Viewport = d.Viewport
	}
	if c.TransitionDuration <= 0 {
		c.TransitionDuration = d.TransitionDuration
	}
	if c.Ease == nil {
		c.Ease = d.Ease
	}
	if c.Sensitivity < 0 {
		c.Sensitivity = 0
	}
	if c.Pen == (PenConfig{}) {
		c.Pen = d.Pen
	}
	if c.MaxRenderDepth <= 0 {
		c.MaxRenderDepth = d.MaxRenderDepth
	}
	return c
}
