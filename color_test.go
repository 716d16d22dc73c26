package qrink

import (
	"image/color"
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{name: "six digit black", hex: "#000000", want: Black},
		{name: "six digit white", hex: "#ffffff", want: White},
		{name: "no hash", hex: "ff0000", want: RGB(1, 0, 0)},
		{name: "three digit", hex: "#f00", want: RGB(1, 0, 0)},
		{name: "four digit", hex: "#f00f", want: RGB(1, 0, 0)},
		{name: "eight digit", hex: "#ff000080", want: RGBA{R: 1, A: 128.0 / 255}},
		{name: "uppercase", hex: "#FF0000", want: RGB(1, 0, 0)},
		{name: "malformed length", hex: "#ff00", want: Black},
		{name: "empty", hex: "", want: Black},
	}
	const tol = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); !approxColor(got, tt.want, tol) {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorRoundtrip(t *testing.T) {
	original := RGBA{R: 0.8, G: 0.3, B: 0.5, A: 1}
	back := FromColor(original.Color())
	const tol = 1.0 / 255
	if !approxColor(original, back, tol) {
		t.Errorf("roundtrip %v -> %v", original, back)
	}
}

func TestColorToNRGBA(t *testing.T) {
	c := RGB(1, 0, 0).Color()
	nrgba, ok := c.(color.NRGBA)
	if !ok {
		t.Fatalf("Color() returned %T, want color.NRGBA", c)
	}
	if nrgba.R != 255 || nrgba.G != 0 || nrgba.B != 0 || nrgba.A != 255 {
		t.Errorf("Color() = %+v", nrgba)
	}
}

func TestColorLerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := RGBA{0.5, 0.5, 0.5, 1}
	if !approxColor(got, want, 1e-9) {
		t.Errorf("Lerp = %v, want %v", got, want)
	}
	if Black.Lerp(White, 0) != Black {
		t.Error("Lerp(t=0) is not the receiver")
	}
	if Black.Lerp(White, 1) != White {
		t.Error("Lerp(t=1) is not the argument")
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGBA
	}{
		{name: "red", h: 0, s: 1, l: 0.5, want: RGB(1, 0, 0)},
		{name: "green", h: 120, s: 1, l: 0.5, want: RGB(0, 1, 0)},
		{name: "blue", h: 240, s: 1, l: 0.5, want: RGB(0, 0, 1)},
		{name: "white", h: 0, s: 0, l: 1, want: White},
		{name: "black", h: 0, s: 0, l: 0, want: Black},
		{name: "gray", h: 180, s: 0, l: 0.5, want: RGB(0.5, 0.5, 0.5)},
		{name: "negative hue wraps", h: -120, s: 1, l: 0.5, want: RGB(0, 0, 1)},
	}
	const tol = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSL(tt.h, tt.s, tt.l); !approxColor(got, tt.want, tol) {
				t.Errorf("HSL(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if clamp01(-0.5) != 0 || clamp01(1.5) != 1 || clamp01(0.25) != 0.25 {
		t.Error("clamp01 misbehaves")
	}
	if clamp255(-1) != 0 || clamp255(300) != 255 || clamp255(128) != 128 {
		t.Error("clamp255 misbehaves")
	}
	if math.IsNaN(clamp01(0)) {
		t.Error("unexpected NaN")
	}
}
