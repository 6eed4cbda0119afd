package bubble

import (
	"fmt"
	"strings"
)

// Bubble is a node of the bubble tree. Its embedded Rect is expressed in the
// parent's local space; its own contents live in [-100,100]².
//
// The parent is never stored: it is found by path through the Tree, which
// owns every bubble.
type Bubble struct {
	Rect

	Path        string
	IsBubblized bool
	IsVisible   bool

	children []string
}

// Name returns the last segment of the bubble's path.
func (b *Bubble) Name() string {
	return BaseName(b.Path)
}

// OutlineNode is a nested view of the tree used by explorer widgets.
type OutlineNode struct {
	Name     string
	Bubble   *Bubble
	Children []OutlineNode
}

// Tree is the hierarchical store of bubbles keyed by path. The root bubble
// "/" always exists and has no Rect of its own: its space is the global space.
type Tree struct {
	bubbles map[string]*Bubble
	gen     uint64
}

// NewTree creates a tree containing only the root bubble.
func NewTree() *Tree {
	return &Tree{bubbles: map[string]*Bubble{
		RootPath: {Path: RootPath, IsVisible: true},
	}}
}

// Root returns the root bubble.
func (t *Tree) Root() *Bubble {
	return t.bubbles[RootPath]
}

// Len returns the number of bubbles, root included.
func (t *Tree) Len() int {
	return len(t.bubbles)
}

// Generation counts structural edits: it changes on every successful Add,
// Remove and Move. Widgets caching paths compare it to know when to rebuild.
func (t *Tree) Generation() uint64 {
	return t.gen
}

// Find returns the bubble at path. A false ok means the path is stale or was
// never created; callers treat it as a no-op.
func (t *Tree) Find(path string) (*Bubble, bool) {
	b, ok := t.bubbles[path]
	return b, ok
}

// Children returns the direct children of the bubble at path, or nil if the
// path does not resolve.
func (t *Tree) Children(path string) []*Bubble {
	b, ok := t.bubbles[path]
	if !ok || len(b.children) == 0 {
		return nil
	}
	out := make([]*Bubble, 0, len(b.children))
	for _, cp := range b.children {
		out = append(out, t.bubbles[cp])
	}
	return out
}

// Add creates a visible bubble at path with r expressed in the parent's
// local space.
func (t *Tree) Add(path string, r Rect) (*Bubble, error) {
	if path == RootPath {
		return nil, fmt.Errorf("add %s: %w", path, ErrExists)
	}
	if !ValidPath(path) {
		return nil, fmt.Errorf("add %q: %w", path, ErrInvalidPath)
	}
	if !r.Valid() {
		return nil, fmt.Errorf("add %s: %w", path, ErrDegenerate)
	}
	if _, exists := t.bubbles[path]; exists {
		return nil, fmt.Errorf("add %s: %w", path, ErrExists)
	}
	parentPath, _ := ParentPath(path)
	parent, ok := t.bubbles[parentPath]
	if !ok {
		return nil, fmt.Errorf("add %s: %w", path, ErrNoParent)
	}
	b := &Bubble{Rect: r, Path: path, IsVisible: true}
	t.bubbles[path] = b
	parent.children = append(parent.children, path)
	t.gen++
	return b, nil
}

// Remove deletes the bubble at path and its whole subtree. It returns the
// removed paths, parents before children.
func (t *Tree) Remove(path string) ([]string, error) {
	if path == RootPath {
		return nil, fmt.Errorf("remove: %w", ErrRootImmutable)
	}
	if _, ok := t.bubbles[path]; !ok {
		return nil, fmt.Errorf("remove %s: %w", path, ErrNotFound)
	}
	removed := t.subtree(path)
	for _, p := range removed {
		delete(t.bubbles, p)
	}
	parentPath, _ := ParentPath(path)
	parent := t.bubbles[parentPath]
	parent.children = removeString(parent.children, path)
	t.gen++
	return removed, nil
}

// Move reparents the bubble at oldPath under newParent, renaming it and all
// its descendants. The bubble keeps its visual placement: its Rect is
// re-expressed in the new parent's space. Returns the new path.
func (t *Tree) Move(oldPath, newParent string) (string, error) {
	if oldPath == RootPath {
		return "", fmt.Errorf("move: %w", ErrRootImmutable)
	}
	b, ok := t.bubbles[oldPath]
	if !ok {
		return "", fmt.Errorf("move %s: %w", oldPath, ErrNotFound)
	}
	if _, ok := t.bubbles[newParent]; !ok {
		return "", fmt.Errorf("move %s to %s: %w", oldPath, newParent, ErrNoParent)
	}
	if IsAncestor(oldPath, newParent) {
		return "", fmt.Errorf("move %s into its own subtree %s: %w", oldPath, newParent, ErrInvalidPath)
	}
	newPath := JoinPath(newParent, b.Name())
	if newPath == oldPath {
		return oldPath, nil
	}
	if _, exists := t.bubbles[newPath]; exists {
		return "", fmt.Errorf("move %s: %s: %w", oldPath, newPath, ErrExists)
	}

	oldParent, _ := ParentPath(oldPath)
	placed, ok := t.Convert(b.Rect, oldParent, newParent)
	if !ok || !placed.Valid() {
		return "", fmt.Errorf("move %s: %w", oldPath, ErrDegenerate)
	}

	moved := t.subtree(oldPath)
	renamed := make(map[string]*Bubble, len(moved))
	for _, p := range moved {
		nb := t.bubbles[p]
		delete(t.bubbles, p)
		nb.Path = newPath + strings.TrimPrefix(p, oldPath)
		for i, cp := range nb.children {
			nb.children[i] = newPath + strings.TrimPrefix(cp, oldPath)
		}
		renamed[nb.Path] = nb
	}
	for p, nb := range renamed {
		t.bubbles[p] = nb
	}
	b.Rect = placed

	t.bubbles[oldParent].children = removeString(t.bubbles[oldParent].children, oldPath)
	np := t.bubbles[newParent]
	np.children = append(np.children, newPath)
	t.gen++
	return newPath, nil
}

// Walk visits the bubble at path and its descendants depth-first, parents
// before children. Returning false from fn skips that bubble's children.
func (t *Tree) Walk(path string, fn func(b *Bubble, depth int) bool) {
	b, ok := t.bubbles[path]
	if !ok {
		return
	}
	t.walk(b, 0, fn)
}

func (t *Tree) walk(b *Bubble, depth int, fn func(*Bubble, int) bool) {
	if !fn(b, depth) {
		return
	}
	for _, cp := range b.children {
		t.walk(t.bubbles[cp], depth+1, fn)
	}
}

// Outline returns the nested outline of the subtree rooted at path.
func (t *Tree) Outline(path string) (OutlineNode, bool) {
	b, ok := t.bubbles[path]
	if !ok {
		return OutlineNode{}, false
	}
	return t.outline(b), true
}

func (t *Tree) outline(b *Bubble) OutlineNode {
	node := OutlineNode{Name: b.Name(), Bubble: b}
	for _, cp := range b.children {
		node.Children = append(node.Children, t.outline(t.bubbles[cp]))
	}
	return node
}

// subtree lists path and all its descendants, parents first.
func (t *Tree) subtree(path string) []string {
	var out []string
	t.Walk(path, func(b *Bubble, _ int) bool {
		out = append(out, b.Path)
		return true
	})
	return out
}

// --- Coordinate conversion across the tree ---

// Convert re-expresses r from the local space of the bubble at from into the
// local space of the bubble at to. The rect is walked up to the deepest
// common ancestor with LocalToParent, then down with ParentToLocal.
func (t *Tree) Convert(r Rect, from, to string) (Rect, bool) {
	if _, ok := t.bubbles[from]; !ok {
		return Rect{}, false
	}
	if _, ok := t.bubbles[to]; !ok {
		return Rect{}, false
	}
	lca := commonAncestor(from, to)
	for cur := from; cur != lca; cur, _ = ParentPath(cur) {
		r = LocalToParent(r, t.bubbles[cur].Rect)
	}
	down := ancestry(to)
	for _, p := range down[PathDepth(lca)+1:] {
		r = ParentToLocal(r, t.bubbles[p].Rect)
	}
	return r, true
}

// matrix returns the affine matrix mapping points in from's local space into
// to's local space.
func (t *Tree) matrix(from, to string) ([6]float64, bool) {
	if _, ok := t.bubbles[from]; !ok {
		return identityTransform, false
	}
	if _, ok := t.bubbles[to]; !ok {
		return identityTransform, false
	}
	lca := commonAncestor(from, to)
	up := identityTransform
	for cur := from; cur != lca; cur, _ = ParentPath(cur) {
		up = chain(frameMatrix(t.bubbles[cur].Rect), up)
	}
	down := identityTransform
	lineage := ancestry(to)
	for _, p := range lineage[PathDepth(lca)+1:] {
		down = chain(down, frameMatrix(t.bubbles[p].Rect))
	}
	return chain(reverse(down), up), true
}

// ConvertPoints re-expresses points from from's local space into to's.
func (t *Tree) ConvertPoints(pts []Point, from, to string) ([]Point, bool) {
	m, ok := t.matrix(from, to)
	if !ok {
		return nil, false
	}
	return transformPoints(m, pts), true
}

// DescendantToChild returns the full extent of the bubble at descendant
// expressed in the local space of ancestor, composing LocalToParent from the
// descendant upward. When ancestor is the root the result is the descendant's
// global Rect.
func (t *Tree) DescendantToChild(ancestor, descendant string) (Rect, bool) {
	if !IsAncestor(ancestor, descendant) {
		return Rect{}, false
	}
	return t.Convert(FullExtent, descendant, ancestor)
}

// BubbleAt returns the deepest visible descendant of path whose frame
// contains p, with p expressed in path's local space. ok is false when no
// child contains the point.
func (t *Tree) BubbleAt(path string, p Point) (*Bubble, bool) {
	var hit *Bubble
	for {
		var next *Bubble
		children := t.Children(path)
		// Later children are drawn on top, so test them first.
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			if c.IsVisible && c.Contains(p) {
				next = c
				break
			}
		}
		if next == nil {
			return hit, hit != nil
		}
		hit = next
		p = PointToLocal(p, next.Rect)
		path = next.Path
	}
}

func removeString(s []string, v string) []string {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
