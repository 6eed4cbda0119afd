package bubble

import "testing"

func TestAddControlPointThrottle(t *testing.T) {
	s := NewCurveStore(2, DefaultPen)
	accepted := 0
	for i := 0; i < 3; i++ {
		if s.AddControlPoint(Point{X: float64(i)}, false) {
			accepted++
		}
	}
	if accepted != 1 {
		t.Errorf("accepted = %d, want 1", accepted)
	}
	if got := len(s.DrawingCurve()); got != 1 {
		t.Errorf("len(DrawingCurve) = %d, want 1", got)
	}

	// Cool-down has reached the sensitivity, so the next call is kept.
	if !s.AddControlPoint(Point{X: 3}, false) {
		t.Error("fourth point dropped, want kept")
	}
}

func TestAddControlPointForce(t *testing.T) {
	s := NewCurveStore(2, DefaultPen)
	for i := 0; i < 3; i++ {
		if !s.AddControlPoint(Point{X: float64(i)}, true) {
			t.Errorf("forced point %d dropped", i)
		}
	}
	if got := len(s.DrawingCurve()); got != 3 {
		t.Errorf("len(DrawingCurve) = %d, want 3", got)
	}
}

func TestAddControlPointZeroSensitivity(t *testing.T) {
	s := NewCurveStore(0, DefaultPen)
	for i := 0; i < 5; i++ {
		if !s.AddControlPoint(Point{}, false) {
			t.Fatalf("point %d dropped with sensitivity 0", i)
		}
	}
}

func TestFinishCurve(t *testing.T) {
	pen := PenConfig{Color: ColorBlack, Thickness: 4, Alpha: 1}
	s := NewCurveStore(0, pen)
	s.SetDrawingPath("/a")
	s.AddControlPoint(Point{X: 1, Y: 1}, false)
	s.AddControlPoint(Point{X: 2, Y: 2}, false)

	c, ok := s.FinishCurve(2)
	if !ok {
		t.Fatal("FinishCurve stored nothing")
	}
	if c.ID == 0 || c.Path != "/a" || len(c.Position) != 2 || !c.IsVisible {
		t.Errorf("curve = %+v", c)
	}
	assertNear(t, "thickness", c.Config.Thickness, 2)
	if len(s.DrawingCurve()) != 0 {
		t.Error("stroke in progress not reset")
	}
	if _, ok := s.FinishCurve(1); ok {
		t.Error("empty stroke was stored")
	}
}

func TestCurvesIncludesStrokeInProgress(t *testing.T) {
	s := NewCurveStore(0, DefaultPen)
	s.AddCurve(Curve{Path: "/", Position: []Point{{}}})
	s.AddControlPoint(Point{X: 5}, false)

	all := s.Curves()
	if len(all) != 2 {
		t.Fatalf("len(Curves) = %d, want 2", len(all))
	}
	if all[1].ID != 0 || all[1].Position[0].X != 5 {
		t.Errorf("in-progress curve = %+v", all[1])
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestRemoveCurves(t *testing.T) {
	s := NewCurveStore(0, DefaultPen)
	a := s.AddCurve(Curve{Path: "/a"})
	s.AddCurve(Curve{Path: "/a/b"})
	s.AddCurve(Curve{Path: "/ab"})
	s.AddCurve(Curve{Path: "/a"})

	if !s.RemoveCurve(a.ID) {
		t.Error("RemoveCurve returned false")
	}
	if s.RemoveCurve(a.ID) {
		t.Error("second RemoveCurve returned true")
	}
	if got := s.RemoveCurvesWithPath("/a"); got != 1 {
		t.Errorf("RemoveCurvesWithPath = %d, want 1", got)
	}
	if got := s.RemoveCurvesUnder("/a"); got != 1 {
		t.Errorf("RemoveCurvesUnder = %d, want 1", got)
	}
	if got := s.CurvesWithPath("/ab"); len(got) != 1 {
		t.Errorf("CurvesWithPath(/ab) = %v, want one curve", got)
	}
}

func TestAddCurveKeepsIDsUnique(t *testing.T) {
	s := NewCurveStore(0, DefaultPen)
	s.AddCurve(Curve{ID: 10})
	c := s.AddCurve(Curve{})
	if c.ID != 11 {
		t.Errorf("ID = %d, want 11", c.ID)
	}
}

func TestRenamePath(t *testing.T) {
	s := NewCurveStore(0, DefaultPen)
	s.AddCurve(Curve{Path: "/a/b"})
	s.AddCurve(Curve{Path: "/a/bc"})
	s.SetDrawingPath("/a/b/c")
	s.RenamePath("/a/b", "/d/b")

	if len(s.CurvesWithPath("/d/b")) != 1 || len(s.CurvesWithPath("/a/bc")) != 1 {
		t.Errorf("curves after rename = %+v", s.Curves())
	}
	if s.DrawingPath() != "/d/b/c" {
		t.Errorf("DrawingPath = %q, want /d/b/c", s.DrawingPath())
	}
}

func TestClearCurves(t *testing.T) {
	s := NewCurveStore(1, DefaultPen)
	s.AddCurve(Curve{})
	s.AddControlPoint(Point{}, false)
	s.Clear()
	if s.Len() != 0 || len(s.Curves()) != 0 {
		t.Error("Clear left curves behind")
	}
}
