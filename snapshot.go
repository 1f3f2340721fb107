package lattice

// --- Editor-mode views ---

// NodeView is the render-facing projection of a single node. Styles and
// Children are copies; mutating them does not touch the model.
type NodeView struct {
	Handle   Handle
	Variant  Variant
	Content  string
	Styles   map[string]string
	X, Y     float64
	Children []Handle

	// Decorations for editor-mode rendering.
	Selected      bool
	Hovered       bool // container under the idle pointer
	ConnectSource bool
	ConnectTarget bool
}

// Box returns the view's bounding rectangle.
func (v NodeView) Box() Rect {
	return Rect{X: v.X, Y: v.Y, Width: BoxWidth, Height: BoxHeight}
}

// ConnectPreview is the dashed in-progress connector line. Active is false
// when no connection gesture is running.
type ConnectPreview struct {
	Active bool
	Line   Line
}

// --- Preview-mode views ---

// previewMaxDepth bounds the nested preview recursion. The graph does not
// reject cycles through multiple containers, so an unbounded walk could
// never terminate; past this depth the subtree renders truncated.
const previewMaxDepth = 64

// PreviewNode is one entry of the nested document tree rendered in preview
// mode. Containers wrap their children; headings and paragraphs carry their
// content.
type PreviewNode struct {
	Handle   Handle
	Variant  Variant
	Content  string
	Styles   map[string]string
	Children []PreviewNode
}

// --- Snapshot ---

// Snapshot is a read-only projection of the graph and gesture state for one
// render pass. It is built under the session guard as a single read span, so
// it never observes a mutation half-applied, and it shares no mutable data
// with the model.
type Snapshot struct {
	Mode     Mode
	Selected Handle

	// Editor mode: every node at its stored position, one edge-clipped
	// connector per containment edge, and the dashed preview line while a
	// connection gesture is active.
	Nodes      []NodeView
	Connectors []Line
	Preview    ConnectPreview

	// Preview mode: handles with no incoming containment edge, and the
	// nested tree grown from them.
	Roots []Handle
	Tree  []PreviewNode
}

// Snapshot projects the current model and gesture state. The pointer
// coordinates inside it are canvas-local, ready for the renderer.
func (e *Editor) Snapshot() *Snapshot {
	snap := &Snapshot{}
	e.guard.Inspect(func() {
		snap.Mode = e.mode
		snap.Selected = e.selected
		e.projectEditor(snap)
		e.projectPreview(snap)
	})
	return snap
}

// projectEditor fills the editor-mode sections: node views in paint order,
// connector lines clipped to both boxes, and the live preview line.
func (e *Editor) projectEditor(snap *Snapshot) {
	order := e.graph.Handles()
	snap.Nodes = make([]NodeView, 0, len(order))
	for _, h := range order {
		n := e.graph.Node(h)
		v := NodeView{
			Handle:        h,
			Variant:       n.Variant,
			Content:       n.Content,
			Styles:        copyStyles(n.Styles),
			X:             n.X,
			Y:             n.Y,
			Children:      append([]Handle(nil), n.children...),
			Selected:      e.selected == h,
			Hovered:       e.hoverContainer == h,
			ConnectSource: e.state == stateConnecting && e.connectSource == h,
			ConnectTarget: e.state == stateConnecting && e.connectTarget == h,
		}
		snap.Nodes = append(snap.Nodes, v)

		for _, c := range n.children {
			child := e.graph.Node(c)
			if child == nil {
				debugPanic("connector projection: child %d of node %d not in arena", c, h)
			}
			snap.Connectors = append(snap.Connectors, connectorLine(n.Box(), child.Box()))
		}
	}

	if e.state != stateConnecting {
		return
	}
	src := e.graph.Node(e.connectSource)
	if src == nil {
		debugPanic("connect preview: source %d not in arena", e.connectSource)
	}
	// Aim at the candidate's center when hovering one, else at the raw
	// pointer; clip both ends to box edges so the dash touches borders.
	to := e.connectPointer
	if t := e.graph.Node(e.connectTarget); t != nil {
		to = EdgePointTowards(src.Box().Center(), t.Box())
	}
	snap.Preview = ConnectPreview{
		Active: true,
		Line:   Line{From: EdgePointTowards(to, src.Box()), To: to},
	}
}

// projectPreview fills the preview-mode sections: the root set and the
// nested tree, depth-bounded against cyclic containment.
func (e *Editor) projectPreview(snap *Snapshot) {
	snap.Roots = e.graph.Roots()
	snap.Tree = make([]PreviewNode, 0, len(snap.Roots))
	for _, h := range snap.Roots {
		snap.Tree = append(snap.Tree, e.previewNode(h, 0))
	}
}

// previewNode builds the nested view for one node. Recursion stops at
// previewMaxDepth; children past the bound are omitted.
func (e *Editor) previewNode(h Handle, depth int) PreviewNode {
	n := e.graph.Node(h)
	pv := PreviewNode{
		Handle:  h,
		Variant: n.Variant,
		Content: n.Content,
		Styles:  copyStyles(n.Styles),
	}
	if depth >= previewMaxDepth {
		return pv
	}
	for _, c := range n.children {
		if e.graph.Node(c) == nil {
			debugPanic("preview projection: child %d of node %d not in arena", c, h)
		}
		pv.Children = append(pv.Children, e.previewNode(c, depth+1))
	}
	return pv
}

// copyStyles clones a style map so snapshots stay isolated from the model.
func copyStyles(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
