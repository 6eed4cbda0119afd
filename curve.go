package bubble

// Curve is a finished freehand stroke. Position is expressed in the local
// space of the bubble at Path. Curves are never mutated once stored.
type Curve struct {
	ID        int
	Position  []Point
	Path      string
	Config    PenConfig
	IsVisible bool
}

// CurveStore holds finished curves and the stroke being drawn.
type CurveStore struct {
	curves []Curve
	nextID int

	drawing     []Point
	drawingPath string
	pen         PenConfig

	sensitivity int
	coolTime    int
}

// NewCurveStore creates an empty store. sensitivity is the number of control
// points dropped between two accepted ones.
func NewCurveStore(sensitivity int, pen PenConfig) *CurveStore {
	if sensitivity < 0 {
		sensitivity = 0
	}
	return &CurveStore{
		drawingPath: RootPath,
		pen:         pen,
		sensitivity: sensitivity,
		coolTime:    sensitivity,
	}
}

// Pen returns the pen new curves are drawn with.
func (s *CurveStore) Pen() PenConfig {
	return s.pen
}

// DrawingPath returns the bubble the stroke in progress belongs to.
func (s *CurveStore) DrawingPath() string {
	return s.drawingPath
}

// SetDrawingPath sets the bubble new control points are expressed in.
func (s *CurveStore) SetDrawingPath(path string) {
	s.drawingPath = path
}

// AddControlPoint appends p to the stroke in progress. Unless force is set,
// only one point in every sensitivity+1 calls is kept; dropped calls count
// down a cool-down instead. Reports whether the point was kept.
func (s *CurveStore) AddControlPoint(p Point, force bool) bool {
	if force || s.coolTime >= s.sensitivity {
		s.drawing = append(s.drawing, p)
		s.coolTime = 0
		return true
	}
	s.coolTime++
	return false
}

// DrawingCurve returns a copy of the stroke in progress.
func (s *CurveStore) DrawingCurve() []Point {
	return append([]Point(nil), s.drawing...)
}

// FinishCurve stores the stroke in progress as a curve and starts a new one.
// The pen thickness is divided by thicknessRatio so strokes drawn while
// zoomed in keep their on-screen width. An empty stroke stores nothing.
func (s *CurveStore) FinishCurve(thicknessRatio float64) (Curve, bool) {
	pts := s.drawing
	s.drawing = nil
	s.coolTime = s.sensitivity
	if len(pts) == 0 {
		return Curve{}, false
	}
	if thicknessRatio <= 0 {
		thicknessRatio = 1
	}
	pen := s.pen
	pen.Thickness /= thicknessRatio
	return s.AddCurve(Curve{Position: pts, Path: s.drawingPath, Config: pen, IsVisible: true}), true
}

// AddCurve stores c, assigning it an ID when it has none, and returns the
// stored curve.
func (s *CurveStore) AddCurve(c Curve) Curve {
	if c.ID == 0 {
		s.nextID++
		c.ID = s.nextID
	} else if c.ID > s.nextID {
		s.nextID = c.ID
	}
	s.curves = append(s.curves, c)
	return c
}

// RemoveCurve deletes the curve with the given ID.
func (s *CurveStore) RemoveCurve(id int) bool {
	for i := range s.curves {
		if s.curves[i].ID == id {
			s.curves = append(s.curves[:i], s.curves[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveCurvesWithPath deletes every curve drawn directly in path and
// returns how many were removed.
func (s *CurveStore) RemoveCurvesWithPath(path string) int {
	return s.removeIf(func(c *Curve) bool { return c.Path == path })
}

// RemoveCurvesUnder deletes every curve drawn in path or any of its
// descendants.
func (s *CurveStore) RemoveCurvesUnder(path string) int {
	return s.removeIf(func(c *Curve) bool { return IsAncestor(path, c.Path) })
}

// RenamePath moves curves drawn under oldPath to the matching path under
// newPath. Used when a bubble subtree is moved.
func (s *CurveStore) RenamePath(oldPath, newPath string) {
	for i := range s.curves {
		c := &s.curves[i]
		if IsAncestor(oldPath, c.Path) {
			c.Path = newPath + c.Path[len(oldPath):]
		}
	}
	if IsAncestor(oldPath, s.drawingPath) {
		s.drawingPath = newPath + s.drawingPath[len(oldPath):]
	}
}

func (s *CurveStore) removeIf(match func(*Curve) bool) int {
	kept := s.curves[:0]
	for i := range s.curves {
		if !match(&s.curves[i]) {
			kept = append(kept, s.curves[i])
		}
	}
	n := len(s.curves) - len(kept)
	s.curves = kept
	return n
}

// CurvesWithPath returns the curves drawn directly in path.
func (s *CurveStore) CurvesWithPath(path string) []Curve {
	var out []Curve
	for _, c := range s.curves {
		if c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

// Curves returns every stored curve followed by the stroke in progress, if
// any.
func (s *CurveStore) Curves() []Curve {
	out := make([]Curve, len(s.curves), len(s.curves)+1)
	copy(out, s.curves)
	if len(s.drawing) > 0 {
		out = append(out, Curve{
			Position:  s.DrawingCurve(),
			Path:      s.drawingPath,
			Config:    s.pen,
			IsVisible: true,
		})
	}
	return out
}

// Len returns the number of stored curves.
func (s *CurveStore) Len() int {
	return len(s.curves)
}

// Clear removes every curve and the stroke in progress.
func (s *CurveStore) Clear() {
	s.curves = nil
	s.drawing = nil
	s.coolTime = s.sensitivity
}
