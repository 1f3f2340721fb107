package lattice

// --- Gesture state ---

// gestureState is the primary state of the interaction machine. Hover
// markers (hovered container, connect candidate) are tracked alongside it
// and never block a transition.
type gestureState uint8

const (
	stateIdle       gestureState = iota
	stateDragging                // a node follows the pointer
	stateConnecting              // a containment edge is being drawn
)

// --- Editor ---

// Editor is the per-session interaction core: it owns the graph, the
// transient gesture state, and the guard that serializes access to both.
// All gesture entry points expect pointer coordinates already converted to
// canvas-local space (see ToLocal); the input adapter does that per event.
//
// Every externally triggered mutation goes through the Guard: it either
// applies immediately and atomically, or — when a read or another write span
// is still open — is deferred one turn and retried by Flush. Readers use
// Snapshot and never observe a half-applied update.
type Editor struct {
	graph *Graph
	guard Guard
	mode  Mode

	state gestureState

	// Selection and hover markers. All fields hold handles, never node
	// pointers, so a delete can scrub them by value comparison.
	selected       Handle
	hoverContainer Handle

	// Drag state, valid while state == stateDragging.
	dragNode   Handle
	dragOffset Vec2

	// Set when a drag ends; the next click on a node consumes it so a
	// drag-release is not misread as a select.
	justDragged bool

	// Connection state, valid while state == stateConnecting.
	connectSource  Handle
	connectPointer Vec2
	connectTarget  Handle
}

// NewEditor creates an editor session with an empty graph, in editor mode,
// with all gesture state idle.
func NewEditor() *Editor {
	return &Editor{graph: NewGraph()}
}

// Graph returns the editor's graph model.
func (e *Editor) Graph() *Graph {
	return e.graph
}

// Mode returns the current rendering mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Selected returns the selected node handle, or None.
func (e *Editor) Selected() Handle {
	return e.selected
}

// HoveredContainer returns the container currently under the idle pointer,
// or None. Purely a visual affordance marker.
func (e *Editor) HoveredContainer() Handle {
	return e.hoverContainer
}

// ConnectSource returns the node a connection gesture began from, or None.
func (e *Editor) ConnectSource() Handle {
	return e.connectSource
}

// ConnectTarget returns the candidate target under the pointer during a
// connection gesture, or None.
func (e *Editor) ConnectTarget() Handle {
	return e.connectTarget
}

// Dragging returns the node currently being dragged, or None.
func (e *Editor) Dragging() Handle {
	return e.dragNode
}

// Flush retries mutations deferred by earlier access conflicts. Call once
// per scheduling turn; the input adapter does this at the start of every
// frame.
func (e *Editor) Flush() {
	n := e.guard.Flush()
	if globalDebug && n > 0 {
		debugLogFlush(n, e.guard.Pending())
	}
}

// --- Pointer gestures ---

// PointerDown handles a pointer press. target is the node under the pointer,
// or None for the background. p is canvas-local.
//
// On a node while idle: begins a drag, capturing the pointer-to-node offset,
// and selects the node. On a node while connecting: ignored — a press never
// starts a drag mid-connection. On the background while connecting: aborts
// the connection.
func (e *Editor) PointerDown(target Handle, p Vec2) {
	e.guard.Attempt(func() {
		if !target.IsSet() {
			if e.state == stateConnecting {
				e.clearConnect()
			}
			return
		}
		if e.state == stateConnecting {
			return
		}
		n := e.graph.Node(target)
		if n == nil {
			return
		}
		e.state = stateDragging
		e.dragNode = target
		e.dragOffset = p.Sub(Vec2{n.X, n.Y})
		e.selected = target
	})
}

// PointerMove handles pointer movement at canvas-local p.
//
// While dragging, the drag subject follows the pointer with the captured
// offset preserved exactly; moves are never coalesced, each one repositions
// the node immediately. While connecting, the live preview point advances
// and the candidate target is recomputed as the topmost node whose box
// contains the pointer, excluding the source.
func (e *Editor) PointerMove(p Vec2) {
	e.guard.Attempt(func() {
		switch e.state {
		case stateDragging:
			e.graph.SetPosition(e.dragNode, p.X-e.dragOffset.X, p.Y-e.dragOffset.Y)
		case stateConnecting:
			e.connectPointer = p
			e.connectTarget = e.nodeAt(p, e.connectSource)
		}
	})
}

// PointerUp handles a pointer release. target is the node under the pointer,
// or None — a release anywhere unconditionally terminates a drag, which is
// why the adapter mirrors this from a window-level fallback listener.
//
// Releasing over a node while connecting completes the connection (see
// finishConnect); releasing over the source cancels it.
func (e *Editor) PointerUp(target Handle) {
	e.guard.Attempt(func() {
		switch e.state {
		case stateDragging:
			e.dragNode = None
			e.dragOffset = Vec2{}
			e.state = stateIdle
			e.justDragged = true
		case stateConnecting:
			if target.IsSet() {
				e.finishConnect(target)
			}
		}
	})
}

// Click handles a discrete click on a node or the background.
//
// While connecting, a click on a node completes the connection exactly like
// PointerUp would: pointer devices do not guarantee a click fires in every
// release scenario, so both entry points finalize, guarded by idempotent
// checks that make a double invocation harmless.
//
// While idle, a click selects the node — unless the drag-suppression flag is
// set, in which case the click is the tail of a drag release and is consumed
// without changing the selection.
func (e *Editor) Click(target Handle) {
	e.guard.Attempt(func() {
		if !target.IsSet() {
			return
		}
		suppressed := e.justDragged
		e.justDragged = false
		if e.state == stateConnecting {
			e.finishConnect(target)
			return
		}
		if suppressed {
			return
		}
		if e.graph.Node(target) != nil {
			e.selected = target
		}
	})
}

// PointerEnter handles the pointer entering a node's box.
// While connecting, any node except the source becomes the candidate
// target. While idle, entering a container sets the hover affordance.
func (e *Editor) PointerEnter(target Handle) {
	e.guard.Attempt(func() {
		n := e.graph.Node(target)
		if n == nil {
			return
		}
		if e.state == stateConnecting {
			if target != e.connectSource {
				e.connectTarget = target
			}
			return
		}
		if e.state == stateIdle && n.Variant == VariantContainer {
			e.hoverContainer = target
		}
	})
}

// PointerLeave handles the pointer leaving a node's box, clearing whichever
// hover marker pointed at it.
func (e *Editor) PointerLeave(target Handle) {
	e.guard.Attempt(func() {
		if e.hoverContainer == target {
			e.hoverContainer = None
		}
		if e.state == stateConnecting && e.connectTarget == target {
			e.connectTarget = None
		}
	})
}

// StartConnect begins a connection gesture from the given container. The
// live preview point seeds at the container's center. Starting a new
// connection while one is in progress re-anchors it to the new source.
// Ignored mid-drag: the machine leaves a drag only through a release, so a
// connect request can never leave drag fields set under the connecting
// state. No-op if the handle is absent or not a container.
func (e *Editor) StartConnect(source Handle) {
	e.guard.Attempt(func() {
		if e.state == stateDragging {
			return
		}
		n := e.graph.Node(source)
		if n == nil || n.Variant != VariantContainer {
			return
		}
		e.state = stateConnecting
		e.connectSource = source
		e.connectPointer = n.Box().Center()
		e.connectTarget = None
	})
}

// finishConnect completes or cancels the in-progress connection on target.
// Self-connection only clears the gesture; otherwise the edge is recorded
// (subject to the graph's structural checks) and the target selected.
// Must be called with the guard held.
func (e *Editor) finishConnect(target Handle) {
	src := e.connectSource
	e.clearConnect()
	if target == src {
		return
	}
	if e.graph.Node(target) == nil {
		return
	}
	e.graph.AddChild(src, target)
	e.selected = target
}

// clearConnect resets all connection-gesture fields as one unit.
func (e *Editor) clearConnect() {
	e.state = stateIdle
	e.connectSource = None
	e.connectTarget = None
	e.connectPointer = Vec2{}
}

// nodeAt returns the topmost node whose box contains p, excluding the given
// handle, or None. Topmost means latest in creation order, matching the
// paint order of the editor canvas.
func (e *Editor) nodeAt(p Vec2, exclude Handle) Handle {
	order := e.graph.Handles()
	for i := len(order) - 1; i >= 0; i-- {
		h := order[i]
		if h == exclude {
			continue
		}
		if e.graph.Node(h).Box().Contains(p) {
			return h
		}
	}
	return None
}

// --- Model operations routed through the guard ---

// CreateNode adds a node of the given variant and selects it. Returns the
// new handle, or None if the write had to be deferred to the next turn (the
// node is still created when the deferred attempt runs).
func (e *Editor) CreateNode(v Variant) Handle {
	h := None
	e.guard.Attempt(func() {
		h = e.graph.CreateNode(v)
		e.selected = h
	})
	return h
}

// DeleteNode removes the node and scrubs every gesture field referencing it
// before the graph delete, so no transient state survives pointing at a dead
// handle — even when the node is the active drag subject or connection
// endpoint.
func (e *Editor) DeleteNode(h Handle) {
	e.guard.Attempt(func() {
		if e.selected == h {
			e.selected = None
		}
		if e.hoverContainer == h {
			e.hoverContainer = None
		}
		if e.dragNode == h {
			e.dragNode = None
			e.dragOffset = Vec2{}
			e.justDragged = false
			e.state = stateIdle
		}
		if e.connectSource == h {
			e.clearConnect()
		}
		if e.connectTarget == h {
			e.connectTarget = None
		}
		e.graph.DeleteNode(h)
		if globalDebug {
			debugCheckNoDangling(e)
		}
	})
}

// SetContent updates a node's text content.
func (e *Editor) SetContent(h Handle, text string) {
	e.guard.Attempt(func() {
		e.graph.SetContent(h, text)
	})
}

// SetStyle sets a style key on a node; an empty value removes the key.
func (e *Editor) SetStyle(h Handle, key, value string) {
	e.guard.Attempt(func() {
		e.graph.SetStyle(h, key, value)
	})
}

// AddChildAuto attaches the first eligible node to the container, mirroring
// the properties-panel "add child" action. Returns the attached handle, or
// None (also None when deferred).
func (e *Editor) AddChildAuto(parent Handle) Handle {
	h := None
	e.guard.Attempt(func() {
		h = e.graph.AddChildAuto(parent)
	})
	return h
}

// SwitchMode toggles between editor and preview rendering.
func (e *Editor) SwitchMode(m Mode) {
	e.guard.Attempt(func() {
		e.mode = m
	})
}
