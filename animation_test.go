package bubble

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAnimatorLinear(t *testing.T) {
	cam := NewCamera(Vec2{X: 100, Y: 100})
	a := NewAnimator(cam, ease.Linear)
	start := Rect{Top: 0, Left: 0, Width: 100, Height: 100}
	end := Rect{Top: 50, Left: -50, Width: 10, Height: 20}

	a.Start(start, end, 1.0)
	if !a.Active() {
		t.Fatal("animator not active after Start")
	}
	if done := a.Update(0.5); done {
		t.Fatal("finished halfway")
	}
	assertRect(t, "halfway", cam.View().Pos, Rect{Top: 25, Left: -25, Width: 55, Height: 60}, 1e-4)

	if done := a.Update(0.5); !done {
		t.Fatal("not finished at the end")
	}
	if a.Active() {
		t.Error("still active after finishing")
	}
	if cam.View().Pos != end {
		t.Errorf("final pos = %+v, want exactly %+v", cam.View().Pos, end)
	}
}

func TestAnimatorInOutCubicMidpoint(t *testing.T) {
	cam := NewCamera(Vec2{X: 100, Y: 100})
	a := NewAnimator(cam, nil)
	a.Start(Rect{Width: 10, Height: 10}, Rect{Top: 100, Left: 100, Width: 30, Height: 30}, 0.5)

	a.Update(0.125)
	quarter := cam.View().Pos
	// InOutCubic at t=1/4: 4*(1/4)^3 = 1/16.
	assertRect(t, "quarter", quarter, Rect{Top: 6.25, Left: 6.25, Width: 11.25, Height: 11.25}, 1e-4)

	a.Update(0.125)
	assertRect(t, "half", cam.View().Pos, Rect{Top: 50, Left: 50, Width: 20, Height: 20}, 1e-4)
}

func TestAnimatorKeepsPathAndSize(t *testing.T) {
	cam := NewCamera(Vec2{X: 320, Y: 240})
	cam.SetView(ViewCoord{Pos: Rect{Width: 1, Height: 1}, Size: Vec2{X: 320, Y: 240}, Path: "/a"})
	a := NewAnimator(cam, ease.Linear)
	a.Start(Rect{Width: 1, Height: 1}, Rect{Width: 2, Height: 2}, 1)
	a.Update(0.3)
	v := cam.View()
	if v.Path != "/a" || v.Size != (Vec2{X: 320, Y: 240}) {
		t.Errorf("view changed path/size: %+v", v)
	}
}

func TestAnimatorCancelIdempotent(t *testing.T) {
	cam := NewCamera(Vec2{X: 100, Y: 100})
	a := NewAnimator(cam, ease.Linear)
	finished := 0
	a.OnFinish = func() { finished++ }

	a.Cancel()
	if finished != 0 {
		t.Error("Cancel on idle animator ran OnFinish")
	}

	a.Start(Rect{Width: 1, Height: 1}, Rect{Width: 3, Height: 3}, 1)
	a.Update(0.5)
	mid := cam.View().Pos
	a.Cancel()
	a.Cancel()
	if finished != 1 {
		t.Errorf("OnFinish ran %d times, want 1", finished)
	}
	if a.Active() {
		t.Error("active after Cancel")
	}
	if !a.Update(0.5) {
		t.Error("Update on idle animator should report done")
	}
	if cam.View().Pos != mid {
		t.Error("cancelled transition kept moving the camera")
	}
}

func TestAnimatorFinish(t *testing.T) {
	cam := NewCamera(Vec2{X: 100, Y: 100})
	a := NewAnimator(cam, ease.Linear)
	end := Rect{Top: 7, Left: 7, Width: 7, Height: 7}
	a.Start(Rect{Width: 1, Height: 1}, end, 1)
	a.Finish()
	if a.Active() || cam.View().Pos != end {
		t.Errorf("Finish did not jump to end: %+v", cam.View().Pos)
	}
	a.Finish()
}

func TestAnimatorZeroDuration(t *testing.T) {
	cam := NewCamera(Vec2{X: 100, Y: 100})
	a := NewAnimator(cam, ease.Linear)
	end := Rect{Top: 1, Left: 1, Width: 1, Height: 1}
	a.Start(Rect{Width: 5, Height: 5}, end, 0)
	if a.Active() {
		t.Error("zero-duration transition is active")
	}
	if cam.View().Pos != end {
		t.Errorf("pos = %+v, want %+v", cam.View().Pos, end)
	}
}
