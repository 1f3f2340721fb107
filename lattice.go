package lattice

// Handle is a stable integer identifier for a node, unique for the lifetime
// of an Editor session and never reused. Handle 0 is reserved as "no node";
// optional references (selection, drag subject, connect source) store 0 when
// unset.
type Handle int

// None is the zero Handle, meaning "no node".
const None Handle = 0

// IsSet reports whether the handle refers to a node (i.e. is not None).
func (h Handle) IsSet() bool {
	return h != None
}

// Variant distinguishes node behavior and rendering.
type Variant uint8

const (
	VariantContainer Variant = iota // may own children via containment edges
	VariantHeading                  // renders its content as a heading
	VariantParagraph                // renders its content as body text
)

// String returns the display name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantContainer:
		return "Container"
	case VariantHeading:
		return "Heading"
	case VariantParagraph:
		return "Paragraph"
	default:
		return "Unknown"
	}
}

// defaultContent returns the initial content for a freshly created node.
func (v Variant) defaultContent() string {
	switch v {
	case VariantHeading:
		return "Heading Text"
	case VariantParagraph:
		return "Paragraph text"
	default:
		return ""
	}
}

// Mode selects which projection of the graph the renderer consumes.
type Mode uint8

const (
	ModeEditor  Mode = iota // free placement, decorations, connector arrows
	ModePreview             // nested document flow from the containment roots
)

// Every node occupies a fixed-size box on the canvas. Connector endpoints and
// hit testing both derive from these dimensions.
const (
	BoxWidth  = 200.0
	BoxHeight = 80.0
)

// New nodes are staggered by their handle so consecutive creations never
// stack exactly on top of each other.
const (
	spawnBaseX = 50.0
	spawnBaseY = 50.0
	spawnStep  = 20.0
)

// Vec2 is a 2D point or offset in canvas-local units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Line is a directed segment between two canvas-local points.
type Line struct {
	From, To Vec2
}
