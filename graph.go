package lattice

// --- Node ---

// Node is a single box on the canvas. A flat struct covers all variants; only
// containers ever hold children, and Content is meaningful only for the text
// variants. Nodes live in the Graph's arena and are referenced everywhere
// else by Handle, never by pointer, so deleting a node cannot leave a
// dangling reference in gesture or selection state.
type Node struct {
	Handle  Handle
	Variant Variant
	Content string
	Styles  map[string]string
	X, Y    float64

	children []Handle
}

// Box returns the node's bounding rectangle on the canvas.
func (n *Node) Box() Rect {
	return Rect{X: n.X, Y: n.Y, Width: BoxWidth, Height: BoxHeight}
}

// Children returns the node's child handle list.
// The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []Handle {
	return n.children
}

// NumChildren returns the number of containment edges leaving this node.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// hasChild reports whether child already appears in n's child list.
func (n *Node) hasChild(child Handle) bool {
	for _, c := range n.children {
		if c == child {
			return true
		}
	}
	return false
}

// --- Graph ---

// Graph owns the node set and the containment relation. Handles are assigned
// monotonically starting at 1 and never reused within a session. All write
// operations are best-effort: operating on an absent handle is a silent
// no-op, matching an interactive editor where stale references from in-flight
// gestures are expected.
//
// Graph is not safe for concurrent use; the Editor serializes access to it
// through its Guard.
type Graph struct {
	nodes map[Handle]*Node
	order []Handle // insertion order, for deterministic iteration
	next  Handle
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[Handle]*Node)}
}

// CreateNode allocates the next handle and inserts a node of the given
// variant with default content and a staggered default position.
func (g *Graph) CreateNode(v Variant) Handle {
	g.next++
	h := g.next
	n := &Node{
		Handle:  h,
		Variant: v,
		Content: v.defaultContent(),
		Styles:  make(map[string]string),
		X:       spawnBaseX + float64(h)*spawnStep,
		Y:       spawnBaseY + float64(h)*spawnStep,
	}
	g.nodes[h] = n
	g.order = append(g.order, h)
	return h
}

// DeleteNode removes the node and scrubs its handle from every other node's
// child list. No-op if the handle is absent. Callers that track gesture or
// selection state referencing the handle must scrub that state themselves;
// Editor.DeleteNode does.
func (g *Graph) DeleteNode(h Handle) {
	if _, ok := g.nodes[h]; !ok {
		return
	}
	g.removeChildReferences(h)
	delete(g.nodes, h)
	for i, o := range g.order {
		if o == h {
			copy(g.order[i:], g.order[i+1:])
			g.order = g.order[:len(g.order)-1]
			break
		}
	}
}

// removeChildReferences scrubs h from every node's child list.
// Uses copy+truncate to avoid retaining stale handles in the backing array.
func (g *Graph) removeChildReferences(h Handle) {
	for _, n := range g.nodes {
		for i, c := range n.children {
			if c == h {
				copy(n.children[i:], n.children[i+1:])
				n.children = n.children[:len(n.children)-1]
				break
			}
		}
	}
}

// Node returns the node for h, or nil if absent.
func (g *Graph) Node(h Handle) *Node {
	return g.nodes[h]
}

// Handles returns all live handles in creation order.
// The returned slice MUST NOT be mutated by the caller.
func (g *Graph) Handles() []Handle {
	return g.order
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// --- Mutations ---

// SetContent replaces the node's free-text content. No-op on absent handle.
func (g *Graph) SetContent(h Handle, text string) {
	if n := g.nodes[h]; n != nil {
		n.Content = text
	}
}

// SetStyle sets a style key on the node. An empty value removes the key.
// No-op on absent handle.
func (g *Graph) SetStyle(h Handle, key, value string) {
	n := g.nodes[h]
	if n == nil {
		return
	}
	if value == "" {
		delete(n.Styles, key)
		return
	}
	n.Styles[key] = value
}

// SetPosition moves the node to (x, y) in canvas-local units.
// No-op on absent handle.
func (g *Graph) SetPosition(h Handle, x, y float64) {
	if n := g.nodes[h]; n != nil {
		n.X = x
		n.Y = y
	}
}

// AddChild records a containment edge parent→child. The edge is added only
// if parent is a container, both handles exist, child != parent, and the
// edge is not already present; every other case is a silent no-op. AddChild
// does not reject cycles through multiple containers — the preview
// projection bounds its recursion instead (see snapshot.go).
//
// Returns true if an edge was added, which makes the call idempotent and
// safe to invoke twice for the same logical gesture.
func (g *Graph) AddChild(parent, child Handle) bool {
	if parent == child {
		return false
	}
	p := g.nodes[parent]
	if p == nil || p.Variant != VariantContainer {
		return false
	}
	if _, ok := g.nodes[child]; !ok {
		return false
	}
	if p.hasChild(child) {
		return false
	}
	p.children = append(p.children, child)
	if globalDebug {
		debugCheckChildCount(p)
	}
	return true
}

// AddChildAuto attaches the first eligible node (in creation order) to the
// container: any node that is not the container itself and not already one
// of its children. Returns the attached handle, or None if no node was
// eligible or parent is not a container.
func (g *Graph) AddChildAuto(parent Handle) Handle {
	p := g.nodes[parent]
	if p == nil || p.Variant != VariantContainer {
		return None
	}
	for _, h := range g.order {
		if h == parent || p.hasChild(h) {
			continue
		}
		if g.AddChild(parent, h) {
			return h
		}
	}
	return None
}

// Roots returns the handles of all nodes with no incoming containment edge,
// in creation order. These are the top-level entries of the preview
// projection.
func (g *Graph) Roots() []Handle {
	contained := make(map[Handle]bool, len(g.nodes))
	for _, n := range g.nodes {
		for _, c := range n.children {
			contained[c] = true
		}
	}
	roots := make([]Handle, 0, len(g.order))
	for _, h := range g.order {
		if !contained[h] {
			roots = append(roots, h)
		}
	}
	return roots
}
