// Package bubble is an infinitely nestable zoomable canvas for [Ebitengine].
//
// A canvas is a tree of bubbles. Each bubble has its own local coordinate
// space spanning [-100, 100] on both axes, and sits inside its parent as a
// rectangle expressed in the parent's local space. The root "/" has no
// rectangle: its space is the unbounded global space. Freehand curves are
// stored in the local space of the bubble they were drawn in, so zooming
// never runs out of precision.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// the game loop:
//
//	space := bubble.NewSpace(bubble.DefaultConfig())
//	space.AddBubble("/notes", bubble.Rect{Top: -50, Left: -50, Width: 60, Height: 60})
//	bubble.Run(space, bubble.RunConfig{Title: "Notes", Width: 800, Height: 600}, nil)
//
// For full control, implement [ebiten.Game] yourself: feed [ReadInput] to a
// [Controller], tick [Space.Update] and paint [BuildFrame] with [DrawFrame].
//
// # Coordinates
//
// [LocalToParent] and [ParentToLocal] convert a rectangle across one level.
// [Tree.Convert] moves one between any two bubbles through their deepest
// common ancestor. A [ViewCoord] is the camera state: the visible rectangle
// in the local space of one bubble plus the viewport pixel size.
//
// # Navigation
//
// The [Navigator] keeps every published view normalized: its Path is the
// minimal bubble whose local space contains the visible rectangle. Zooming
// in far enough reparents the camera into a child; zooming out reparents it
// into the parent. [Navigator.ZoomBubble] fits a bubble into the viewport,
// keeping the viewport's aspect ratio.
//
// With animation enabled, view changes glide over [Config.TransitionDuration]
// using a [gween] tween. While a transition runs the mode is [ModeAnimate]
// and further navigation requests are dropped.
//
// # Drawing
//
// In [ModeDraw], [Space.DrawAt] feeds pointer positions to the
// [CurveStore], which keeps one point in every Sensitivity+1. Stroke
// thickness is stored relative to the bubble so it scales with zoom.
// [ModeErase] removes curves under the pointer.
//
// # Output
//
// [BuildFrame] produces a renderer-agnostic [Frame]. [DrawFrame] paints it
// with ebiten's vector package and [ExportPNG] rasterizes it with gg.
//
// # Logging
//
// The package is silent by default. Pass a [log/slog.Logger] to [SetLogger]
// to see navigation decisions and dropped requests.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package bubble
