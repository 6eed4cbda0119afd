package bubble

// Navigator is the camera navigation engine. It computes zoom-to-bubble
// views, keeps every published view normalized so its Path is the minimal
// bubble containing Pos, and drives view transitions.
//
// The Navigator owns the interaction mode: Mode reports ModeAnimate while a
// transition runs, and every navigation request made meanwhile is dropped.
// Drawing tools read Mode and never write it.
type Navigator struct {
	tree    *Tree
	camera  *Camera
	anim    *Animator
	history HistorySink

	mode             Mode
	animationEnabled bool
	duration         float32

	focus string
}

// NewNavigator creates a navigator over tree writing to camera.
func NewNavigator(tree *Tree, camera *Camera, cfg Config) *Navigator {
	cfg = cfg.withDefaults()
	return &Navigator{
		tree:             tree,
		camera:           camera,
		anim:             NewAnimator(camera, cfg.Ease),
		animationEnabled: cfg.AnimationEnabled,
		duration:         cfg.TransitionDuration,
	}
}

// SetHistory installs the sink that receives a move record after every
// completed Navigate call. nil disables recording.
func (n *Navigator) SetHistory(h HistorySink) {
	n.history = h
}

// Camera returns the camera the navigator writes to.
func (n *Navigator) Camera() *Camera {
	return n.camera
}

// Mode returns the current interaction mode. While a transition runs this is
// ModeAnimate regardless of the tool mode.
func (n *Navigator) Mode() Mode {
	if n.anim.Active() {
		return ModeAnimate
	}
	return n.mode
}

// SetMode selects the tool mode. ModeAnimate cannot be selected. While a
// transition runs the new mode takes effect when it ends.
func (n *Navigator) SetMode(m Mode) {
	if m == ModeAnimate {
		return
	}
	n.mode = m
}

// Animating reports whether a view transition is running.
func (n *Navigator) Animating() bool {
	return n.anim.Active()
}

// AnimationEnabled reports whether navigation animates.
func (n *Navigator) AnimationEnabled() bool {
	return n.animationEnabled
}

// SetAnimationEnabled turns view transitions on or off.
func (n *Navigator) SetAnimationEnabled(enabled bool) {
	n.animationEnabled = enabled
}

// Focus returns the focused bubble set by Navigate, if any.
func (n *Navigator) Focus() (string, bool) {
	return n.focus, n.focus != ""
}

// ClearFocus drops the focused-bubble marker.
func (n *Navigator) ClearFocus() {
	n.focus = ""
}

func (n *Navigator) setFocus(path string) {
	n.focus = path
}

// Update advances a running transition by dt seconds.
func (n *Navigator) Update(dt float32) {
	n.anim.Update(dt)
}

// Interrupt ends a running transition at its target view. No-op when idle.
func (n *Navigator) Interrupt() {
	n.anim.Finish()
}

// Resize adapts the view to a new viewport pixel size and publishes it
// normalized. A running transition is cut short at its target, which is
// rescaled like the current view would be. Returns false when size is
// unchanged or not positive.
func (n *Navigator) Resize(size Vec2) bool {
	v := n.camera.View()
	if v.Size == size || size.X <= 0 || size.Y <= 0 {
		return false
	}
	if n.anim.Active() {
		v.Pos = n.anim.Target()
		n.anim.Cancel()
	}
	if n.UpdateView(v.Resized(size), nil) {
		return true
	}
	Logger().Warn("resize on unknown bubble, showing root", "path", v.Path)
	return n.UpdateView(RootView(size), nil)
}

// ZoomBubble computes the view that fits the bubble at path into the
// viewport, seen from the bubble's parent, and applies it through
// UpdateView with the current view as the transition start. It returns the
// computed view before normalization. ok is false when path does not
// resolve, the camera's own path is stale, or a transition is running.
// The empty path and "/" reset to the root view.
func (n *Navigator) ZoomBubble(path string) (view ViewCoord, ok bool) {
	if n.anim.Active() {
		return ViewCoord{}, false
	}
	if path == "" || path == RootPath {
		return n.resetRoot()
	}
	target, ok := n.tree.Find(path)
	if !ok {
		Logger().Warn("zoom to unknown bubble", "path", path)
		return ViewCoord{}, false
	}
	cur := n.camera.View()

	// Walk the camera up to global space, then down into the target's
	// parent, which becomes the new frame.
	global, ok := n.tree.Convert(cur.Pos, cur.Path, RootPath)
	if !ok {
		Logger().Warn("camera path is stale", "path", cur.Path)
		return ViewCoord{}, false
	}
	parentPath, _ := ParentPath(path)
	prev, _ := n.tree.Convert(global, RootPath, parentPath)

	visible, _ := n.tree.DescendantToChild(RootPath, path)
	newW, newH := fitAspect(target.Rect, visible, prev, cur.Size)

	view = ViewCoord{
		Pos: Rect{
			Top:    target.Top + (target.Height-newH)/2,
			Left:   target.Left + (target.Width-newW)/2,
			Width:  newW,
			Height: newH,
		},
		Size: cur.Size,
		Path: parentPath,
	}
	Logger().Debug("zoom to bubble", "path", path, "view", view.Pos, "frame", parentPath)
	n.UpdateView(view, &prev)
	return view, true
}

// fitAspect picks the camera window size, in the target's parent space, that
// shows all of target while keeping the camera's current aspect. The binding
// dimension is decided on the target's global rect against the viewport.
func fitAspect(target, global, camera Rect, viewport Vec2) (w, h float64) {
	isLongHeight := global.Width*viewport.Y < global.Height*viewport.X
	if isLongHeight {
		return target.Height * camera.Width / camera.Height, target.Height
	}
	return target.Width, target.Width * camera.Height / camera.Width
}

// resetRoot shows the whole root extent at one unit per pixel.
func (n *Navigator) resetRoot() (ViewCoord, bool) {
	cur := n.camera.View()
	view := RootView(cur.Size)
	prev, ok := n.tree.Convert(cur.Pos, cur.Path, RootPath)
	if !ok {
		n.UpdateView(view, nil)
		return view, true
	}
	Logger().Debug("reset to root", "from", cur.Path)
	n.UpdateView(view, &prev)
	return view, true
}

// Navigate is the entry point for explorer widgets. It zooms to path (the
// empty path or "/" meaning the root), sets or clears the focused bubble,
// and records a move in the history sink. Returns false when the request
// was dropped.
func (n *Navigator) Navigate(path string) bool {
	if n.anim.Active() {
		return false
	}
	origin := n.camera.View()
	view, ok := n.ZoomBubble(path)
	if !ok {
		return false
	}
	if path == "" || path == RootPath {
		n.focus = ""
	} else {
		n.focus = path
	}
	if n.history != nil {
		n.history.Push(Record{Type: RecordMove, Object: origin, NewCameraView: view})
	}
	return true
}

// Restore moves the camera to a previously recorded view, animating from
// the current one. Used by undo and redo.
func (n *Navigator) Restore(view ViewCoord) bool {
	if n.anim.Active() {
		return false
	}
	cur := n.camera.View()
	prev, ok := n.tree.Convert(cur.Pos, cur.Path, view.Path)
	if !ok {
		return n.UpdateView(view, nil)
	}
	return n.UpdateView(view, &prev)
}

// Pan moves the view by (dx, dy) viewport pixels: content follows the
// pointer, so a positive dx reveals what lies to the left.
func (n *Navigator) Pan(dx, dy float64) bool {
	if n.anim.Active() {
		return false
	}
	v := n.camera.View()
	v.Pos.Left -= dx * v.Pos.Width / v.Size.X
	v.Pos.Top -= dy * v.Pos.Height / v.Size.Y
	return n.UpdateView(v, nil)
}

// ZoomAt scales the view around a viewport pixel position. A factor above 1
// zooms in. The point under the anchor stays under it.
func (n *Navigator) ZoomAt(anchor Vec2, factor float64) bool {
	if n.anim.Active() || factor <= 0 {
		return false
	}
	v := n.camera.View()
	p := v.ScreenToLocal(anchor)
	v.Pos = Rect{
		Top:    p.Y - (p.Y-v.Pos.Top)/factor,
		Left:   p.X - (p.X-v.Pos.Left)/factor,
		Width:  v.Pos.Width / factor,
		Height: v.Pos.Height / factor,
	}
	return n.UpdateView(v, nil)
}

// UpdateView normalizes view and publishes it. When prev is given, it is
// the transition start expressed in view.Path's space: with animation
// enabled the camera jumps to prev (re-expressed in the normalized frame)
// and glides to the normalized view. Returns false when the request was
// dropped because a transition is running or view.Path is stale.
func (n *Navigator) UpdateView(view ViewCoord, prev *Rect) bool {
	if n.anim.Active() {
		return false
	}
	norm, prevPos, ok := n.normalize(view, prev)
	if !ok {
		Logger().Warn("update view on unknown bubble", "path", view.Path)
		return false
	}
	Logger().Debug("view normalized", "path", norm.Path, "pos", norm.Pos)
	if prevPos != nil && n.animationEnabled {
		n.camera.SetView(ViewCoord{Pos: *prevPos, Size: norm.Size, Path: norm.Path})
		n.anim.Start(*prevPos, norm.Pos, n.duration)
		return true
	}
	n.camera.SetView(norm)
	return true
}

// Normalize returns view re-expressed in the minimal bubble whose local
// space contains its Pos. It does not publish anything.
func (n *Navigator) Normalize(view ViewCoord) (ViewCoord, bool) {
	norm, _, ok := n.normalize(view, nil)
	return norm, ok
}

// normalize runs the zoom-out pass then the zoom-in pass. prev, when given,
// is transformed in lockstep with the view.
func (n *Navigator) normalize(view ViewCoord, prev *Rect) (ViewCoord, *Rect, bool) {
	if _, ok := n.tree.Find(view.Path); !ok {
		return view, nil, false
	}
	pos, path := view.Pos, view.Path
	var prevPos *Rect
	if prev != nil {
		p := *prev
		prevPos = &p
	}

	for path != RootPath && !pos.InsideExtent() {
		b, _ := n.tree.Find(path)
		pos = LocalToParent(pos, b.Rect)
		if prevPos != nil {
			*prevPos = LocalToParent(*prevPos, b.Rect)
		}
		path, _ = ParentPath(path)
	}

	for moved := true; moved; {
		moved = false
		for _, c := range n.tree.Children(path) {
			if !pos.StrictlyInside(c.Rect) {
				continue
			}
			pos = ParentToLocal(pos, c.Rect)
			if prevPos != nil {
				*prevPos = ParentToLocal(*prevPos, c.Rect)
			}
			path = c.Path
			moved = true
			break
		}
	}

	view.Pos, view.Path = pos, path
	return view, prevPos, true
}
