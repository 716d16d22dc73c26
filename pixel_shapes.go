package qrink

// Pixel-role shape generators. Each produces a path for a single "on"
// module inside the 1x1 cell frame. Inset and coverage settings shrink the
// drawn figure inside the cell; the path never leaves the frame.

// squarePixel is the default full-cell square.
type squarePixel struct {
	inset float64
}

func newSquarePixel() *squarePixel { return &squarePixel{} }

func (s *squarePixel) Name() string  { return "square" }
func (s *squarePixel) Title() string { return "Square" }

func (s *squarePixel) Supports(key SettingKey) bool { return key == SettingInset }

func (s *squarePixel) Set(key SettingKey, value SettingValue) error {
	if key != SettingInset {
		return &UnsupportedSettingError{Shape: s.Name(), Key: key}
	}
	f, err := floatSetting(s.Name(), key, value)
	if err != nil {
		return err
	}
	s.inset = f
	return nil
}

func (s *squarePixel) Settings() Settings {
	return Settings{SettingInset: Float(s.inset)}
}

func (s *squarePixel) Reset() { s.inset = 0 }

func (s *squarePixel) ContextAware() bool { return false }

func (s *squarePixel) Path(Neighbors) *Path {
	in := clampInset(s.inset)
	p := NewPath()
	p.Rectangle(in, in, 1-2*in, 1-2*in)
	return p
}

func (s *squarePixel) Clone() PixelShape {
	c := *s
	return &c
}

// dotPixel is a circle inscribed in the cell.
type dotPixel struct {
	inset float64
}

func newDotPixel() *dotPixel { return &dotPixel{inset: 0.04} }

func (s *dotPixel) Name() string  { return "dot" }
func (s *dotPixel) Title() string { return "Dot" }

func (s *dotPixel) Supports(key SettingKey) bool { return key == SettingInset }

func (s *dotPixel) Set(key SettingKey, value SettingValue) error {
	if key != SettingInset {
		return &UnsupportedSettingError{Shape: s.Name(), Key: key}
	}
	f, err := floatSetting(s.Name(), key, value)
	if err != nil {
		return err
	}
	s.inset = f
	return nil
}

func (s *dotPixel) Settings() Settings {
	return Settings{SettingInset: Float(s.inset)}
}

func (s *dotPixel) Reset() { s.inset = 0.04 }

func (s *dotPixel) ContextAware() bool { return false }

func (s *dotPixel) Path(Neighbors) *Path {
	in := clampInset(s.inset)
	p := NewPath()
	p.Circle(0.5, 0.5, 0.5-in)
	return p
}

func (s *dotPixel) Clone() PixelShape {
	c := *s
	return &c
}

// roundedPixel rounds the cell corners that face empty space, so runs of
// adjacent modules connect into continuous bars.
type roundedPixel struct {
	radius float64 // fraction of the half-cell
}

func newRoundedPixel() *roundedPixel { return &roundedPixel{radius: 1} }

func (s *roundedPixel) Name() string  { return "rounded" }
func (s *roundedPixel) Title() string { return "Rounded" }

func (s *roundedPixel) Supports(key SettingKey) bool { return key == SettingCornerRadius }

func (s *roundedPixel) Set(key SettingKey, value SettingValue) error {
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

func (s *roundedPixel) Settings() Settings {
	return Settings{SettingCornerRadius: Float(s.radius)}
}

func (s *roundedPixel) Reset() { s.radius = 1 }

func (s *roundedPixel) ContextAware() bool { return true }

func (s *roundedPixel) Path(n Neighbors) *Path {
	r := clamp01(s.radius) * 0.5
	// A corner stays square when either adjacent module is on, so the
	// shape fuses with its neighbors.
	tl := cornerRadius(r, n.W, n.N)
	tr := cornerRadius(r, n.N, n.E)
	br := cornerRadius(r, n.E, n.S)
	bl := cornerRadius(r, n.S, n.W)

	const bez = 0.5522847498307936
	p := NewPath()
	p.MoveTo(tl, 0)
	p.LineTo(1-tr, 0)
	if tr > 0 {
		k := bez * tr
		p.CubicTo(1-tr+k, 0, 1, tr-k, 1, tr)
	}
	p.LineTo(1, 1-br)
	if br > 0 {
		k := bez * br
		p.CubicTo(1, 1-br+k, 1-br+k, 1, 1-br, 1)
	}
	p.LineTo(bl, 1)
	if bl > 0 {
		k := bez * bl
		p.CubicTo(bl-k, 1, 0, 1-bl+k, 0, 1-bl)
	}
	p.LineTo(0, tl)
	if tl > 0 {
		k := bez * tl
		p.CubicTo(0, tl-k, tl-k, 0, tl, 0)
	}
	p.Close()
	return p
}

func (s *roundedPixel) Clone() PixelShape {
	c := *s
	return &c
}

// cornerRadius suppresses rounding when either adjacent module is on.
func cornerRadius(r float64, a, b bool) float64 {
	if a || b {
		return 0
	}
	return r
}

// squirclePixel is a superellipse between a square and a circle.
type squirclePixel struct {
	inset float64
}

func newSquirclePixel() *squirclePixel { return &squirclePixel{} }

func (s *squirclePixel) Name() string  { return "squircle" }
func (s *squirclePixel) Title() string { return "Squircle" }

func (s *squirclePixel) Supports(key SettingKey) bool { return key == SettingInset }

func (s *squirclePixel) Set(key SettingKey, value SettingValue) error {
	if key != SettingInset {
		return &UnsupportedSettingError{Shape: s.Name(), Key: key}
	}
	f, err := floatSetting(s.Name(), key, value)
	if err != nil {
		return err
	}
	s.inset = f
	return nil
}

func (s *squirclePixel) Settings() Settings {
	return Settings{SettingInset: Float(s.inset)}
}

func (s *squirclePixel) Reset() { s.inset = 0 }

func (s *squirclePixel) ContextAware() bool { return false }

func (s *squirclePixel) Path(Neighbors) *Path {
	in := clampInset(s.inset)
	half := 0.5 - in
	// Control-point factor > circle's 0.5523 bulges the sides outward.
	k := half * 0.92

	p := NewPath()
	p.MoveTo(0.5+half, 0.5)
	p.CubicTo(0.5+half, 0.5+k, 0.5+k, 0.5+half, 0.5, 0.5+half)
	p.CubicTo(0.5-k, 0.5+half, 0.5-half, 0.5+k, 0.5-half, 0.5)
	p.CubicTo(0.5-half, 0.5-k, 0.5-k, 0.5-half, 0.5, 0.5-half)
	p.CubicTo(0.5+k, 0.5-half, 0.5+half, 0.5-k, 0.5+half, 0.5)
	p.Close()
	return p
}

func (s *squirclePixel) Clone() PixelShape {
	c := *s
	return &c
}

// diamondPixel is a square rotated 45 degrees.
type diamondPixel struct {
	inset float64
}

func newDiamondPixel() *diamondPixel { return &diamondPixel{} }

func (s *diamondPixel) Name() string  { return "diamond" }
func (s *diamondPixel) Title() string { return "Diamond" }

func (s *diamondPixel) Supports(key SettingKey) bool { return key == SettingInset }

func (s *diamondPixel) Set(key SettingKey, value SettingValue) error {
	if key != SettingInset {
		return &UnsupportedSettingError{Shape: s.Name(), Key: key}
	}
	f, err := floatSetting(s.Name(), key, value)
	if err != nil {
		return err
	}
	s.inset = f
	return nil
}

func (s *diamondPixel) Settings() Settings {
	return Settings{SettingInset: Float(s.inset)}
}

func (s *diamondPixel) Reset() { s.inset = 0 }

func (s *diamondPixel) ContextAware() bool { return false }

func (s *diamondPixel) Path(Neighbors) *Path {
	in := clampInset(s.inset)
	p := NewPath()
	p.MoveTo(0.5, in)
	p.LineTo(1-in, 0.5)
	p.LineTo(0.5, 1-in)
	p.LineTo(in, 0.5)
	p.Close()
	return p
}

func (s *diamondPixel) Clone() PixelShape {
	c := *s
	return &c
}

// hstripePixel is a horizontal bar through the cell.
type hstripePixel struct {
	coverage float64
}

func newHStripePixel() *hstripePixel { return &hstripePixel{coverage: 0.85} }

func (s *hstripePixel) Name() string  { return "hstripe" }
func (s *hstripePixel) Title() string { return "Horizontal stripe" }

func (s *hstripePixel) Supports(key SettingKey) bool { return key == SettingCoverage }

func (s *hstripePixel) Set(key SettingKey, value SettingValue) error {
	if key != SettingCoverage {
		return &UnsupportedSettingError{Shape: s.Name(), Key: key}
	}
	f, err := floatSetting(s.Name(), key, value)
	if err != nil {
		return err
	}
	s.coverage = f
	return nil
}

func (s *hstripePixel) Settings() Settings {
	return Settings{SettingCoverage: Float(s.coverage)}
}

func (s *hstripePixel) Reset() { s.coverage = 0.85 }

func (s *hstripePixel) ContextAware() bool { return false }

func (s *hstripePixel) Path(Neighbors) *Path {
	c := clamp01(s.coverage)
	p := NewPath()
	p.Rectangle(0, (1-c)/2, 1, c)
	return p
}

func (s *hstripePixel) Clone() PixelShape {
	c := *s
	return &c
}

// vstripePixel is a vertical bar through the cell.
type vstripePixel struct {
	coverage float64
}

func newVStripePixel() *vstripePixel { return &vstripePixel{coverage: 0.85} }

func (s *vstripePixel) Name() string  { return "vstripe" }
func (s *vstripePixel) Title() string { return "Vertical stripe" }

func (s *vstripePixel) Supports(key SettingKey) bool { return key == SettingCoverage }

func (s *vstripePixel) Set(key SettingKey, value SettingValue) error {
	if key != SettingCoverage {
		return &UnsupportedSettingError{Shape: s.Name(), Key: key}
	}
	f, err := floatSetting(s.Name(), key, value)
	if err != nil {
		return err
	}
	s.coverage = f
	return nil
}

func (s *vstripePixel) Settings() Settings {
	return Settings{SettingCoverage: Float(s.coverage)}
}

func (s *vstripePixel) Reset() { s.coverage = 0.85 }

func (s *vstripePixel) ContextAware() bool { return false }

func (s *vstripePixel) Path(Neighbors) *Path {
	c := clamp01(s.coverage)
	p := NewPath()
	p.Rectangle((1-c)/2, 0, c, 1)
	return p
}

func (s *vstripePixel) Clone() PixelShape {
	c := *s
	return &c
}

// clampInset keeps an inset from collapsing or escaping the cell.
func clampInset(in float64) float64 {
	if in < 0 {
		return 0
	}
	if in > 0.45 {
		return 0.45
	}
	return in
}
