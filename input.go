package lattice

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas drives an Editor from ebiten input and renders its snapshots. It
// owns the page→local conversion, hit testing, and the synthesis of discrete
// gesture events (down/move/up, click, enter/leave) from polled mouse state.
//
// Because the cursor is polled globally every frame rather than observed
// through per-element listeners, a release is detected even when it happens
// outside the canvas bounds — the "window-level fallback" that guarantees
// drag state is never left dangling.
type Canvas struct {
	editor   *Editor
	origin   CanvasOrigin
	renderer *Renderer

	// Pointer synthesis state.
	down      bool
	downNode  Handle // node hit at press time, for click synthesis
	hoverNode Handle // last node under the pointer, for enter/leave
	lastX     float64
	lastY     float64

	injectQueue []syntheticPointerEvent
	script      *ScriptPlayer
	exportQueue []string
}

// NewCanvas creates a canvas bound to the given editor session.
func NewCanvas(editor *Editor) *Canvas {
	return &Canvas{editor: editor, renderer: NewRenderer()}
}

// Editor returns the session this canvas drives.
func (c *Canvas) Editor() *Editor {
	return c.editor
}

// SetOrigin updates the canvas element's page-space origin and scroll
// offset. Call it whenever the surrounding layout scrolls or moves; the
// conversion is applied per event, never cached across events.
func (c *Canvas) SetOrigin(origin CanvasOrigin) {
	c.origin = origin
}

// Update advances the canvas by one scheduling turn: deferred mutations are
// flushed first, then exactly one injected event or the live mouse state is
// processed, then the highlight animations tick.
func (c *Canvas) Update() {
	c.editor.Flush()

	if c.script != nil {
		c.script.step(c)
	}

	if !c.processInjected() {
		c.processMouse()
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	c.renderer.Update(dt, c.editor.Selected(), c.editor.HoveredContainer())
}

// Draw renders the editor's current snapshot to the screen, then writes any
// queued exports from the finished frame.
func (c *Canvas) Draw(screen *ebiten.Image) {
	c.renderer.Draw(screen, c.editor.Snapshot())
	c.flushExports(screen)
}

// processMouse polls the live cursor and left button.
func (c *Canvas) processMouse() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	c.processPointer(float64(mx), float64(my), pressed)
}

// processPointer feeds one pointer sample through the gesture API. Page
// coordinates are converted to canvas-local space first; everything past
// this point speaks local coordinates only.
func (c *Canvas) processPointer(pageX, pageY float64, pressed bool) {
	p := ToLocal(Vec2{pageX, pageY}, c.origin)
	target := c.editor.nodeAt(p, None)

	// Hover enter/leave fire when the node under the pointer changes.
	if target != c.hoverNode {
		if c.hoverNode.IsSet() {
			c.editor.PointerLeave(c.hoverNode)
		}
		if target.IsSet() {
			c.editor.PointerEnter(target)
		}
		c.hoverNode = target
	}

	switch {
	case pressed && !c.down:
		c.down = true
		c.downNode = target
		c.editor.PointerDown(target, p)

	case !pressed && c.down:
		// PointerUp first so a drag release arms the click-suppression flag
		// before the synthesized click arrives; both connection-completion
		// paths are idempotent, so the ordering is safe while connecting too.
		c.editor.PointerUp(target)
		if target.IsSet() && target == c.downNode {
			c.editor.Click(target)
		}
		c.down = false
		c.downNode = None

	default:
		if pageX != c.lastX || pageY != c.lastY {
			c.editor.PointerMove(p)
		}
	}

	c.lastX = pageX
	c.lastY = pageY
}
