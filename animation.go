package bubble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultEase is the easing applied to view transitions.
var DefaultEase ease.TweenFunc = ease.InOutCubic

type animState uint8

const (
	animIdle animState = iota
	animRunning
)

// Animator interpolates the camera's visible rectangle between two rects.
// It is Idle until Start, Animating until the duration elapses or the
// transition is cancelled, then Idle again. Only Pos is animated; Path and
// Size stay as they were when the transition started.
//
// There is no background timer: the host calls Update(dt) every tick.
type Animator struct {
	camera *Camera
	ease   ease.TweenFunc

	state    animState
	progress *gween.Tween
	start    Rect
	end      Rect

	// OnFinish, if set, runs once whenever a transition stops, whether it
	// completed, was finished early, or was cancelled.
	OnFinish func()
}

// NewAnimator creates an idle animator writing to camera. A nil fn selects
// DefaultEase.
func NewAnimator(camera *Camera, fn ease.TweenFunc) *Animator {
	if fn == nil {
		fn = DefaultEase
	}
	return &Animator{camera: camera, ease: fn}
}

// Active reports whether a transition is running.
func (a *Animator) Active() bool {
	return a.state == animRunning
}

// Target returns the rect the running transition ends at. Only meaningful
// while Active.
func (a *Animator) Target() Rect {
	return a.end
}

// Start begins a transition from start to end over duration seconds. The
// caller has already published start; the first Update moves away from it.
// A non-positive duration publishes end and stops immediately.
// Starting while Active is not supported; callers gate on Active first.
func (a *Animator) Start(start, end Rect, duration float32) {
	a.start, a.end = start, end
	if duration <= 0 {
		a.camera.SetPos(end)
		a.stop()
		return
	}
	a.progress = gween.New(0, 1, duration, a.ease)
	a.state = animRunning
	Logger().Debug("transition started", "from", start, "to", end, "duration", duration)
}

// Update advances the transition by dt seconds and publishes the
// interpolated rect. It returns true when the transition has finished.
// Calling Update while Idle is a no-op that reports true.
func (a *Animator) Update(dt float32) bool {
	if a.state != animRunning {
		return true
	}
	t, finished := a.progress.Update(dt)
	if finished {
		a.Finish()
		return true
	}
	a.camera.SetPos(lerpRect(a.start, a.end, float64(t)))
	return false
}

// Finish jumps a running transition to its end rect and stops it.
// No-op while Idle.
func (a *Animator) Finish() {
	if a.state != animRunning {
		return
	}
	a.camera.SetPos(a.end)
	a.stop()
	Logger().Debug("transition finished", "pos", a.end)
}

// Cancel stops a running transition where it is. No-op while Idle.
func (a *Animator) Cancel() {
	if a.state != animRunning {
		return
	}
	a.stop()
	Logger().Debug("transition cancelled", "pos", a.camera.View().Pos)
}

func (a *Animator) stop() {
	a.state = animIdle
	a.progress = nil
	if a.OnFinish != nil {
		a.OnFinish()
	}
}

// lerpRect blends every field of a toward b by t (already eased).
func lerpRect(a, b Rect, t float64) Rect {
	return Rect{
		Top:    a.Top + (b.Top-a.Top)*t,
		Left:   a.Left + (b.Left-a.Left)*t,
		Width:  a.Width + (b.Width-a.Width)*t,
		Height: a.Height + (b.Height-a.Height)*t,
	}
}
