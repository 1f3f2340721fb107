package lattice

import "testing"

func TestToLocal(t *testing.T) {
	tests := []struct {
		name   string
		page   Vec2
		origin CanvasOrigin
		want   Vec2
	}{
		{"zero origin", Vec2{40, 60}, CanvasOrigin{}, Vec2{40, 60}},
		{"offset origin", Vec2{110, 120}, CanvasOrigin{X: 10, Y: 20}, Vec2{100, 100}},
		{"with scroll", Vec2{110, 120}, CanvasOrigin{X: 10, Y: 20, ScrollX: 5, ScrollY: 7}, Vec2{105, 107}},
		{"negative result", Vec2{5, 5}, CanvasOrigin{X: 10, Y: 20}, Vec2{-5, -15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLocal(tt.page, tt.origin); got != tt.want {
				t.Errorf("ToLocal(%v, %+v) = %v, want %v", tt.page, tt.origin, got, tt.want)
			}
		})
	}
}

// Scroll offsets are read per call; two conversions of the same page point
// with different scroll positions must differ.
func TestToLocalScrollNotCached(t *testing.T) {
	page := Vec2{100, 100}
	a := ToLocal(page, CanvasOrigin{X: 10, Y: 10})
	b := ToLocal(page, CanvasOrigin{X: 10, Y: 10, ScrollY: 50})
	if a == b {
		t.Error("conversion ignored scroll offset change")
	}
	if b.Y-a.Y != 50 {
		t.Errorf("scroll delta = %v, want 50", b.Y-a.Y)
	}
}

func TestEdgePointTowards(t *testing.T) {
	box := Rect{X: 0, Y: 0, Width: 200, Height: 80}

	tests := []struct {
		name string
		from Vec2
		want Vec2
	}{
		{"directly right", Vec2{400, 40}, Vec2{200, 40}},
		{"directly left", Vec2{-300, 40}, Vec2{0, 40}},
		{"directly above", Vec2{100, -100}, Vec2{100, 0}},
		{"directly below", Vec2{100, 300}, Vec2{100, 80}},
		{"diagonal to bottom edge", Vec2{300, 140}, Vec2{180, 80}},
		{"exact corner", Vec2{200, 80}, Vec2{200, 80}},
		{"degenerate center", Vec2{100, 40}, Vec2{100, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EdgePointTowards(tt.from, box); got != tt.want {
				t.Errorf("EdgePointTowards(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

// The returned point must lie on the box boundary for any external point.
func TestEdgePointOnBoundary(t *testing.T) {
	box := Rect{X: 50, Y: 50, Width: 200, Height: 80}
	points := []Vec2{
		{500, 90}, {-100, -100}, {150, 400}, {60, 55}, {300, 300}, {0, 90},
	}
	for _, p := range points {
		got := EdgePointTowards(p, box)
		onX := got.X == box.X || got.X == box.X+box.Width
		onY := got.Y == box.Y || got.Y == box.Y+box.Height
		if !box.Contains(got) {
			t.Errorf("EdgePointTowards(%v) = %v, outside the box", p, got)
		}
		if !onX && !onY {
			t.Errorf("EdgePointTowards(%v) = %v, not on the boundary", p, got)
		}
	}
}

func TestConnectorLine(t *testing.T) {
	from := Rect{X: 0, Y: 0, Width: 200, Height: 80}
	to := Rect{X: 300, Y: 0, Width: 200, Height: 80}

	line := connectorLine(from, to)
	if line.From != (Vec2{200, 40}) {
		t.Errorf("From = %v, want (200, 40)", line.From)
	}
	if line.To != (Vec2{300, 40}) {
		t.Errorf("To = %v, want (300, 40)", line.To)
	}
}
