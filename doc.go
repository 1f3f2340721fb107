// Package lattice is the interaction core of a drag-and-connect canvas
// editor: typed boxes placed on a canvas, repositioned by dragging, and
// wired into a directed containment graph by drawing connections between
// them.
//
// The package resolves ambiguous, overlapping pointer gestures (click vs.
// drag vs. connect) deterministically, converts page-space pointer
// coordinates into canvas-local space, computes edge-clipped connector
// geometry, and applies every state change through a retry-capable guard so
// that interleaved reads and writes on a cooperative scheduler never observe
// torn state.
//
// # Quick start
//
// Create an [Editor] session, drive it through a [Canvas], and hand the
// canvas to an [ebiten.Game]:
//
//	editor := lattice.NewEditor()
//	editor.CreateNode(lattice.VariantContainer)
//	canvas := lattice.NewCanvas(editor)
//
//	type Game struct{ canvas *lattice.Canvas }
//
//	func (g *Game) Update() error              { g.canvas.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.canvas.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Layers
//
// The [Graph] owns nodes and containment edges, referenced everywhere by
// stable integer [Handle] values rather than pointers, so deletion can never
// dangle. The [Editor] owns the transient gesture state machine (idle /
// dragging / connecting) and exposes one entry point per discrete gesture:
// [Editor.PointerDown], [Editor.PointerMove], [Editor.PointerUp],
// [Editor.Click], [Editor.PointerEnter], [Editor.PointerLeave], and
// [Editor.StartConnect]. All writes flow through a [Guard] that defers
// conflicting attempts by one turn instead of dropping or tearing them.
//
// Renderers consume [Editor.Snapshot]: a read-only projection carrying node
// views with decorations, edge-clipped connector lines, the dashed
// in-progress connector, and — in preview mode — the nested document tree
// grown from the containment roots.
//
// The [Canvas] is the ebiten frontend: it polls the cursor, hit-tests node
// boxes, synthesizes gesture events, and draws snapshots. Headless callers
// can skip it entirely and call the Editor's gesture API directly, or drive
// a Canvas with injected events ([Canvas.InjectDrag]) and JSON gesture
// scripts ([LoadScript]).
package lattice
