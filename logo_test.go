package qrink

import "testing"

func TestGridRectIntersects(t *testing.T) {
	r := GridRect{X: 5, Y: 5, W: 3, H: 3}
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           bool
	}{
		{name: "fully inside", x0: 6, y0: 6, x1: 7, y1: 7, want: true},
		{name: "overlapping corner", x0: 7, y0: 7, x1: 10, y1: 10, want: true},
		{name: "touching edge is exclusive", x0: 8, y0: 5, x1: 10, y1: 8, want: false},
		{name: "disjoint", x0: 0, y0: 0, x1: 5, y1: 5, want: false},
		{name: "containing", x0: 0, y0: 0, x1: 20, y1: 20, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.x0, tt.y0, tt.x1, tt.y1); got != tt.want {
				t.Errorf("Intersects(%d,%d,%d,%d) = %v, want %v", tt.x0, tt.y0, tt.x1, tt.y1, got, tt.want)
			}
		})
	}
}

func TestGridRectContains(t *testing.T) {
	r := GridRect{X: 2, Y: 2, W: 2, H: 2}
	in := [][2]int{{2, 2}, {3, 3}, {2, 3}}
	out := [][2]int{{1, 2}, {4, 2}, {2, 4}, {0, 0}}
	for _, p := range in {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d,%d) = false, want true", p[0], p[1])
		}
	}
	for _, p := range out {
		if r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d,%d) = true, want false", p[0], p[1])
		}
	}
}

func TestLogoValidate(t *testing.T) {
	tests := []struct {
		name string
		rect GridRect
		ok   bool
	}{
		{name: "center of 25", rect: GridRect{X: 10, Y: 10, W: 5, H: 5}, ok: true},
		{name: "adjacent to top-left eye", rect: GridRect{X: 7, Y: 7, W: 3, H: 3}, ok: true},
		{name: "inside top-left eye", rect: GridRect{X: 1, Y: 1, W: 2, H: 2}, ok: false},
		{name: "negative height", rect: GridRect{X: 10, Y: 10, W: 3, H: -1}, ok: false},
		{name: "past the right edge", rect: GridRect{X: 23, Y: 10, W: 3, H: 3}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logo := &LogoTemplate{Rect: tt.rect}
			err := logo.validate(25)
			if tt.ok && err != nil {
				t.Errorf("validate = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("validate = nil, want error")
			}
		})
	}
}
