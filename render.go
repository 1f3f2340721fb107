package lattice

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws editor snapshots to an ebiten screen. It holds no reference
// to the Editor itself — everything it needs arrives in the Snapshot, so a
// draw pass can never mutate interaction or graph state.
type Renderer struct {
	highlight *highlightState
}

// NewRenderer creates a renderer with idle highlight animations.
func NewRenderer() *Renderer {
	return &Renderer{highlight: newHighlightState()}
}

// Update ticks the decoration animations by dt seconds.
func (r *Renderer) Update(dt float32, selected, hovered Handle) {
	r.highlight.Update(dt, selected, hovered)
}

// --- Palette ---

var (
	colorCanvas      = color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}
	colorContainer   = color.RGBA{0x4C, 0xAF, 0x50, 0xFF}
	colorHeading     = color.RGBA{0x21, 0x96, 0xF3, 0xFF}
	colorParagraph   = color.RGBA{0xFF, 0x98, 0x00, 0xFF}
	colorBorder      = color.RGBA{0x33, 0x33, 0x33, 0xFF}
	colorSelected    = color.RGBA{0xF4, 0x43, 0x36, 0xFF}
	colorAffordance  = color.RGBA{0x9C, 0x27, 0xB0, 0xFF}
	colorConnector   = color.RGBA{0x66, 0x66, 0x66, 0xFF}
	// Debug text renders white, so the preview page is dark.
	colorPreviewPage = color.RGBA{0x20, 0x20, 0x24, 0xFF}
)

func variantFill(v Variant) color.RGBA {
	switch v {
	case VariantContainer:
		return colorContainer
	case VariantHeading:
		return colorHeading
	default:
		return colorParagraph
	}
}

// withAlpha scales a color's alpha, premultiplying the channels the way
// ebiten expects.
func withAlpha(c color.RGBA, a float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

// --- Drawing ---

// Draw renders the snapshot in its mode.
func (r *Renderer) Draw(screen *ebiten.Image, snap *Snapshot) {
	if snap.Mode == ModePreview {
		r.drawPreview(screen, snap)
		return
	}
	r.drawEditor(screen, snap)
}

func (r *Renderer) drawEditor(screen *ebiten.Image, snap *Snapshot) {
	screen.Fill(colorCanvas)

	// Connectors go under the boxes, like the SVG layer of a web canvas.
	for _, line := range snap.Connectors {
		strokeArrow(screen, line, colorConnector)
	}
	if snap.Preview.Active {
		strokeDashed(screen, snap.Preview.Line, colorAffordance)
	}

	for _, v := range snap.Nodes {
		r.drawNodeBox(screen, v)
	}
}

// drawNodeBox draws one node: border rect, inset fill, and text labels.
func (r *Renderer) drawNodeBox(screen *ebiten.Image, v NodeView) {
	box := v.Box()
	x, y := float32(box.X), float32(box.Y)
	w, h := float32(box.Width), float32(box.Height)

	border := colorBorder
	borderW := float32(2)
	switch {
	case v.Selected:
		border = withAlpha(colorSelected, r.highlight.pulseValue)
		borderW = 3
	case v.ConnectTarget:
		border = colorAffordance
		borderW = 3
	case v.Hovered:
		border = withAlpha(colorAffordance, r.highlight.fadeValue)
		borderW = 3
	case v.ConnectSource:
		border = colorAffordance
	}

	vector.DrawFilledRect(screen, x-borderW, y-borderW, w+2*borderW, h+2*borderW, border, false)
	vector.DrawFilledRect(screen, x, y, w, h, variantFill(v.Variant), false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s #%d", v.Variant, v.Handle), int(box.X)+8, int(box.Y)+8)
	switch {
	case v.Variant == VariantContainer:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Children: %d", len(v.Children)), int(box.X)+8, int(box.Y)+26)
		if v.Hovered {
			ebitenutil.DebugPrintAt(screen, "click to connect", int(box.X)+8, int(box.Y)+44)
		}
	case v.Content != "":
		ebitenutil.DebugPrintAt(screen, v.Content, int(box.X)+8, int(box.Y)+26)
	}
}

// strokeArrow draws a connector line with a small arrowhead at its tip.
func strokeArrow(screen *ebiten.Image, line Line, clr color.RGBA) {
	vector.StrokeLine(screen,
		float32(line.From.X), float32(line.From.Y),
		float32(line.To.X), float32(line.To.Y), 2, clr, false)

	angle := math.Atan2(line.To.Y-line.From.Y, line.To.X-line.From.X)
	const headLen, headSpread = 10.0, 2.6
	for _, side := range []float64{headSpread, -headSpread} {
		vector.StrokeLine(screen,
			float32(line.To.X), float32(line.To.Y),
			float32(line.To.X+headLen*math.Cos(angle+side)),
			float32(line.To.Y+headLen*math.Sin(angle+side)), 2, clr, false)
	}
}

// strokeDashed draws the in-progress connector as a dashed segment.
func strokeDashed(screen *ebiten.Image, line Line, clr color.RGBA) {
	const dash, gap = 6.0, 4.0
	dx := line.To.X - line.From.X
	dy := line.To.Y - line.From.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	for at := 0.0; at < length; at += dash + gap {
		end := at + dash
		if end > length {
			end = length
		}
		vector.StrokeLine(screen,
			float32(line.From.X+ux*at), float32(line.From.Y+uy*at),
			float32(line.From.X+ux*end), float32(line.From.Y+uy*end), 2, clr, false)
	}
}

// --- Preview mode ---

const (
	previewPad    = 32
	previewIndent = 16
	previewLine   = 20
)

func (r *Renderer) drawPreview(screen *ebiten.Image, snap *Snapshot) {
	screen.Fill(colorPreviewPage)
	y := previewPad
	for _, pv := range snap.Tree {
		y = r.drawPreviewNode(screen, pv, previewPad, y)
	}
}

// drawPreviewNode renders one nested entry and returns the next free y.
// Containers draw a thin outline around their children block.
func (r *Renderer) drawPreviewNode(screen *ebiten.Image, pv PreviewNode, x, y int) int {
	if pv.Variant == VariantContainer {
		top := y
		y += 6
		for _, child := range pv.Children {
			y = r.drawPreviewNode(screen, child, x+previewIndent, y)
		}
		y += 6
		vector.StrokeRect(screen, float32(x-6), float32(top), 4, float32(y-top), 1, colorConnector, false)
		return y
	}

	text := pv.Content
	if pv.Variant == VariantHeading {
		text = "# " + text
	}
	ebitenutil.DebugPrintAt(screen, text, x, y)
	return y + previewLine
}
