package lattice

import "testing"

// assertNoDanglingEdges verifies every handle in any child list still exists
// in the node set.
func assertNoDanglingEdges(t *testing.T, g *Graph) {
	t.Helper()
	for _, h := range g.Handles() {
		for _, c := range g.Node(h).Children() {
			if g.Node(c) == nil {
				t.Errorf("node %d references deleted child %d", h, c)
			}
		}
	}
}

func TestCreateNodeDefaults(t *testing.T) {
	g := NewGraph()
	h := g.CreateNode(VariantHeading)
	if h != 1 {
		t.Fatalf("first handle = %d, want 1", h)
	}

	n := g.Node(h)
	if n.Variant != VariantHeading {
		t.Errorf("Variant = %v, want Heading", n.Variant)
	}
	if n.Content != "Heading Text" {
		t.Errorf("Content = %q, want default heading text", n.Content)
	}
	if n.Styles == nil || len(n.Styles) != 0 {
		t.Errorf("Styles = %v, want empty map", n.Styles)
	}
	if n.X != spawnBaseX+spawnStep || n.Y != spawnBaseY+spawnStep {
		t.Errorf("position = (%v, %v), want staggered default", n.X, n.Y)
	}
}

// Each new node spawns offset from the previous one so creations never stack
// exactly.
func TestCreateNodeStaggersPositions(t *testing.T) {
	g := NewGraph()
	a := g.Node(g.CreateNode(VariantContainer))
	b := g.Node(g.CreateNode(VariantContainer))
	if a.X == b.X && a.Y == b.Y {
		t.Errorf("consecutive nodes share position (%v, %v)", a.X, a.Y)
	}
}

func TestHandlesNeverReused(t *testing.T) {
	g := NewGraph()
	g.CreateNode(VariantContainer)
	h2 := g.CreateNode(VariantHeading)
	g.DeleteNode(h2)
	h3 := g.CreateNode(VariantParagraph)
	if h3 == h2 {
		t.Errorf("handle %d was reused after delete", h2)
	}
}

func TestDeleteNodeScrubsChildReferences(t *testing.T) {
	g := NewGraph()
	parent := g.CreateNode(VariantContainer)
	other := g.CreateNode(VariantContainer)
	child := g.CreateNode(VariantParagraph)
	g.AddChild(parent, child)
	g.AddChild(other, child)

	g.DeleteNode(child)

	if g.Node(parent).NumChildren() != 0 {
		t.Errorf("parent still has %d children", g.Node(parent).NumChildren())
	}
	if g.Node(other).NumChildren() != 0 {
		t.Errorf("other still has %d children", g.Node(other).NumChildren())
	}
	assertNoDanglingEdges(t, g)
}

func TestDeleteNodeAbsentIsNoOp(t *testing.T) {
	g := NewGraph()
	g.CreateNode(VariantContainer)
	g.DeleteNode(999)
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}
}

// Interleaved creates and deletes must never leave a dangling edge.
func TestCreateDeleteSequenceKeepsEdgesConsistent(t *testing.T) {
	g := NewGraph()
	var handles []Handle
	for i := 0; i < 8; i++ {
		v := VariantParagraph
		if i%2 == 0 {
			v = VariantContainer
		}
		handles = append(handles, g.CreateNode(v))
	}
	for i, h := range handles {
		g.AddChild(handles[(i+2)%len(handles)], h)
	}
	for _, h := range []Handle{handles[0], handles[3], handles[6]} {
		g.DeleteNode(h)
		assertNoDanglingEdges(t, g)
	}
}

func TestAddChild(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(g *Graph) (parent, child Handle)
		wantAdded bool
	}{
		{
			"container parent",
			func(g *Graph) (Handle, Handle) {
				return g.CreateNode(VariantContainer), g.CreateNode(VariantParagraph)
			},
			true,
		},
		{
			"heading parent rejected",
			func(g *Graph) (Handle, Handle) {
				return g.CreateNode(VariantHeading), g.CreateNode(VariantParagraph)
			},
			false,
		},
		{
			"paragraph parent rejected",
			func(g *Graph) (Handle, Handle) {
				return g.CreateNode(VariantParagraph), g.CreateNode(VariantHeading)
			},
			false,
		},
		{
			"self edge rejected",
			func(g *Graph) (Handle, Handle) {
				h := g.CreateNode(VariantContainer)
				return h, h
			},
			false,
		},
		{
			"absent child rejected",
			func(g *Graph) (Handle, Handle) {
				return g.CreateNode(VariantContainer), 42
			},
			false,
		},
		{
			"absent parent rejected",
			func(g *Graph) (Handle, Handle) {
				return 42, g.CreateNode(VariantParagraph)
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			parent, child := tt.setup(g)
			if got := g.AddChild(parent, child); got != tt.wantAdded {
				t.Errorf("AddChild = %v, want %v", got, tt.wantAdded)
			}
			wantLen := 0
			if tt.wantAdded {
				wantLen = 1
			}
			if p := g.Node(parent); p != nil && p.NumChildren() != wantLen {
				t.Errorf("NumChildren = %d, want %d", p.NumChildren(), wantLen)
			}
		})
	}
}

func TestAddChildIdempotent(t *testing.T) {
	g := NewGraph()
	parent := g.CreateNode(VariantContainer)
	child := g.CreateNode(VariantParagraph)

	if !g.AddChild(parent, child) {
		t.Fatal("first AddChild should succeed")
	}
	if g.AddChild(parent, child) {
		t.Error("second AddChild should be a no-op")
	}
	if got := g.Node(parent).NumChildren(); got != 1 {
		t.Errorf("NumChildren = %d, want exactly 1", got)
	}
}

// Cycles through multiple containers are not rejected; the preview
// projection bounds its recursion instead.
func TestAddChildAllowsCycles(t *testing.T) {
	g := NewGraph()
	a := g.CreateNode(VariantContainer)
	b := g.CreateNode(VariantContainer)
	if !g.AddChild(a, b) || !g.AddChild(b, a) {
		t.Error("mutual containment between containers should be accepted")
	}
}

func TestAddChildAuto(t *testing.T) {
	g := NewGraph()
	parent := g.CreateNode(VariantContainer)
	first := g.CreateNode(VariantHeading)
	second := g.CreateNode(VariantParagraph)

	if got := g.AddChildAuto(parent); got != first {
		t.Errorf("first auto-attach = %d, want %d", got, first)
	}
	if got := g.AddChildAuto(parent); got != second {
		t.Errorf("second auto-attach = %d, want %d", got, second)
	}
	if got := g.AddChildAuto(parent); got != None {
		t.Errorf("exhausted auto-attach = %d, want None", got)
	}
	if got := g.AddChildAuto(first); got != None {
		t.Errorf("auto-attach on non-container = %d, want None", got)
	}
}

func TestRoots(t *testing.T) {
	g := NewGraph()
	a := g.CreateNode(VariantContainer)
	b := g.CreateNode(VariantHeading)
	c := g.CreateNode(VariantParagraph)
	g.AddChild(a, b)

	roots := g.Roots()
	if len(roots) != 2 || roots[0] != a || roots[1] != c {
		t.Errorf("Roots = %v, want [%d %d]", roots, a, c)
	}
}

func TestSetStyle(t *testing.T) {
	g := NewGraph()
	h := g.CreateNode(VariantHeading)

	g.SetStyle(h, "color", "red")
	g.SetStyle(h, "font-size", "18px")
	g.SetStyle(h, "color", "blue") // overwrite
	n := g.Node(h)
	if n.Styles["color"] != "blue" || n.Styles["font-size"] != "18px" {
		t.Errorf("Styles = %v", n.Styles)
	}

	g.SetStyle(h, "color", "") // empty value removes the key
	if _, ok := n.Styles["color"]; ok {
		t.Error("empty value should remove the style key")
	}

	g.SetStyle(999, "color", "red") // absent handle: no-op, no panic
}

func TestSetContentAndPosition(t *testing.T) {
	g := NewGraph()
	h := g.CreateNode(VariantParagraph)

	g.SetContent(h, "hello")
	g.SetPosition(h, 120, 240)

	n := g.Node(h)
	if n.Content != "hello" {
		t.Errorf("Content = %q", n.Content)
	}
	if n.X != 120 || n.Y != 240 {
		t.Errorf("position = (%v, %v), want (120, 240)", n.X, n.Y)
	}

	// Absent handles are silently ignored.
	g.SetContent(999, "x")
	g.SetPosition(999, 1, 1)
}
