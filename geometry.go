package lattice

import "math"

// CanvasOrigin describes where the canvas element sits in page space: its
// top-left corner position plus the current scroll offset. It must be
// re-read for every pointer event rather than cached, because the scroll
// offset can change between events.
type CanvasOrigin struct {
	X, Y             float64
	ScrollX, ScrollY float64
}

// ToLocal converts a page-space point into canvas-local space by subtracting
// the canvas origin and adding the scroll offset.
func ToLocal(page Vec2, origin CanvasOrigin) Vec2 {
	return Vec2{
		X: page.X - origin.X + origin.ScrollX,
		Y: page.Y - origin.Y + origin.ScrollY,
	}
}

// EdgePointTowards returns the point on rect's boundary lying on the segment
// from the rectangle's center to the external point. Connector arrows use it
// so their endpoints touch the box edge instead of overlapping the interior.
//
// If the external point coincides with the center, the center is returned
// unchanged.
func EdgePointTowards(from Vec2, rect Rect) Vec2 {
	c := rect.Center()
	dx := from.X - c.X
	dy := from.Y - c.Y
	if dx == 0 && dy == 0 {
		return c
	}

	// Pick the edge the center-to-point ray crosses first, pin the dominant
	// coordinate exactly onto it, and scale the other proportionally.
	halfW := rect.Width / 2
	halfH := rect.Height / 2
	if math.Abs(dx)*rect.Height >= math.Abs(dy)*rect.Width {
		x := c.X + math.Copysign(halfW, dx)
		return Vec2{x, c.Y + dy*(halfW/math.Abs(dx))}
	}
	y := c.Y + math.Copysign(halfH, dy)
	return Vec2{c.X + dx*(halfH/math.Abs(dy)), y}
}

// connectorLine computes the edge-clipped segment between two node boxes:
// each endpoint is the boundary point facing the other box's center.
func connectorLine(from, to Rect) Line {
	return Line{
		From: EdgePointTowards(to.Center(), from),
		To:   EdgePointTowards(from.Center(), to),
	}
}
