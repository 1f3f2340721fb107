package lattice

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"inside", Vec2{50, 40}, true},
		{"top-left corner", Vec2{10, 20}, true},
		{"bottom-right corner", Vec2{110, 70}, true},
		{"outside left", Vec2{5, 40}, false},
		{"outside right", Vec2{115, 40}, false},
		{"outside top", Vec2{50, 15}, false},
		{"outside bottom", Vec2{50, 75}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Rect.Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: BoxWidth, Height: BoxHeight}
	if got := r.Center(); got != (Vec2{100, 40}) {
		t.Errorf("Center = %v, want (100, 40)", got)
	}
}

func TestVariantString(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{VariantContainer, "Container"},
		{VariantHeading, "Heading"},
		{VariantParagraph, "Paragraph"},
		{Variant(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Variant(%d).String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestVariantDefaultContent(t *testing.T) {
	if got := VariantHeading.defaultContent(); got != "Heading Text" {
		t.Errorf("heading default = %q", got)
	}
	if got := VariantParagraph.defaultContent(); got != "Paragraph text" {
		t.Errorf("paragraph default = %q", got)
	}
	if got := VariantContainer.defaultContent(); got != "" {
		t.Errorf("container default = %q, want empty", got)
	}
}

func TestHandleIsSet(t *testing.T) {
	if None.IsSet() {
		t.Error("None should not be set")
	}
	if !Handle(1).IsSet() {
		t.Error("Handle(1) should be set")
	}
}
