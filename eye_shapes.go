package qrink

import "math"

// Eye-role shape generators. Each produces the outer finder ring in the
// 90x90 frame: an outer contour plus the inner contour reversed, so the
// ring is a single path that fills correctly under the non-zero rule.

// ringPath combines an outer contour with a reversed inner contour.
func ringPath(outer, inner *Path) *Path {
	outer.Append(inner.Reverse())
	return outer
}

// leafContour adds a rectangle whose top-left and bottom-right corners are
// rounded while the other two stay sharp.
func leafContour(p *Path, x, y, w, h, r float64) {
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}
	if r <= 0 {
		p.Rectangle(x, y, w, h)
		return
	}
	k := 0.5522847498307936 * r

	p.MoveTo(x+r, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x, y+h)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	p.Close()
}

// squareEye is the canonical sharp-cornered finder ring.
type squareEye struct{}

func newSquareEye() *squareEye { return &squareEye{} }

func (s *squareEye) Name() string  { return "square" }
func (s *squareEye) Title() string { return "Square" }

func (s *squareEye) Supports(SettingKey) bool { return false }

func (s *squareEye) Set(key SettingKey, _ SettingValue) error {
	return &UnsupportedSettingError{Shape: s.Name(), Key: key}
}

func (s *squareEye) Settings() Settings { return Settings{} }

func (s *squareEye) Reset() {}

func (s *squareEye) Path() *Path {
	outer := NewPath()
	outer.Rectangle(0, 0, EyeFrame, EyeFrame)
	inner := NewPath()
	inner.Rectangle(eyeModule, eyeModule, EyeFrame-2*eyeModule, EyeFrame-2*eyeModule)
	return ringPath(outer, inner)
}

func (s *squareEye) Clone() EyeShape {
	c := *s
	return &c
}

// roundedEye rounds the ring corners. With hasInnerCorners the inner
// contour keeps sharp corners while the outer stays rounded.
type roundedEye struct {
	radius       float64
	innerCorners bool
}

func newRoundedEye() *roundedEye { return &roundedEye{radius: 0.35} }

func (s *roundedEye) Name() string  { return "rounded" }
func (s *roundedEye) Title() string { return "Rounded" }

func (s *roundedEye) Supports(key SettingKey) bool {
	return key == SettingCornerRadius || key == SettingInnerCorners
}

func (s *roundedEye) Set(key SettingKey, value SettingValue) error {
	switch key {
	case SettingCornerRadius:
		f, err := floatSetting(s.Name(), key, value)
		if err != nil {
			return err
		}
		s.radius = f
	case SettingInnerCorners:
		b, err := boolSetting(s.Name(), key, value)
		if err != nil {
			return err
		}
		s.innerCorners = b
	default:
		return &UnsupportedSettingError{Shape: s.Name(), Key: key}
	}
	return nil
}

func (s *roundedEye) Settings() Settings {
	return Settings{
		SettingCornerRadius: Float(s.radius),
		SettingInnerCorners: Bool(s.innerCorners),
	}
}

func (s *roundedEye) Reset() {
	s.radius = 0.35
	s.innerCorners = false
}

func (s *roundedEye) Path() *Path {
	r := clamp01(s.radius) * EyeFrame / 2
	outer := NewPath()
	outer.RoundedRectangle(0, 0, EyeFrame, EyeFrame, r)

	inner := NewPath()
	side := EyeFrame - 2*eyeModule
	if s.innerCorners {
		inner.Rectangle(eyeModule, eyeModule, side, side)
	} else {
		inner.RoundedRectangle(eyeModule, eyeModule, side, side, math.Max(0, r-eyeModule))
	}
	return ringPath(outer, inner)
}

func (s *roundedEye) Clone() EyeShape {
	c := *s
	return &c
}

// circleEye is an annular finder ring.
type circleEye struct{}

func newCircleEye() *circleEye { return &circleEye{} }

func (s *circleEye) Name() string  { return "circle" }
func (s *circleEye) Title() string { return "Circle" }

func (s *circleEye) Supports(SettingKey) bool { return false }

func (s *circleEye) Set(key SettingKey, _ SettingValue) error {
	return &UnsupportedSettingError{Shape: s.Name(), Key: key}
}

func (s *circleEye) Settings() Settings { return Settings{} }

func (s *circleEye) Reset() {}

func (s *circleEye) Path() *Path {
	outer := NewPath()
	outer.Circle(EyeFrame/2, EyeFrame/2, EyeFrame/2)
	inner := NewPath()
	inner.Circle(EyeFrame/2, EyeFrame/2, EyeFrame/2-eyeModule)
	return ringPath(outer, inner)
}

func (s *circleEye) Clone() EyeShape {
	c := *s
	return &c
}

// leafEye rounds two opposite corners for a leaf silhouette.
type leafEye struct {
	radius float64
}

func newLeafEye() *leafEye { return &leafEye{radius: 0.8} }

func (s *leafEye) Name() string  { return "leaf" }
func (s *leafEye) Title() string { return "Leaf" }

func (s *leafEye) Supports(key SettingKey) bool { return key == SettingCornerRadius }

func (s *leafEye) Set(key SettingKey, value SettingValue) error {
	if key != SettingCornerRadius {
		return &UnsupportedSettingError{Shape: s.Name(), Key: key}
	}
	f, err := floatSetting(s.Name(), key, value)
	if err != nil {
		return err
	}
	s.radius = f
	return nil
}

func (s *leafEye) Settings() Settings {
	return Settings{SettingCornerRadius: Float(s.radius)}
}

func (s *leafEye) Reset() { s.radius = 0.8 }

func (s *leafEye) Path() *Path {
	r := clamp01(s.radius) * EyeFrame / 2
	outer := NewPath()
	leafContour(outer, 0, 0, EyeFrame, EyeFrame, r)

	inner := NewPath()
	side := EyeFrame - 2*eyeModule
	leafContour(inner, eyeModule, eyeModule, side, side, math.Max(0, r-eyeModule))
	return ringPath(outer, inner)
}

func (s *leafEye) Clone() EyeShape {
	c := *s
	return &c
}
