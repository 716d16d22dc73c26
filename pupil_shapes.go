package qrink

// Pupil-role shape generators. Each fills the central 3x3 modules of the
// finder pattern inside the shared 90x90 frame.

// pupilBox returns the origin and edge length of the central 3x3 block.
func pupilBox() (origin, side float64) {
	return 2 * eyeModule, 3 * eyeModule
}

// squarePupil is the canonical solid square dot.
type squarePupil struct {
	inset float64
}

func newSquarePupil() *squarePupil { return &squarePupil{} }

func (s *squarePupil) Name() string  { return "square" }
func (s *squarePupil) Title() string { return "Square" }

func (s *squarePupil) Supports(key SettingKey) bool { return key == SettingInset }

func (s *squarePupil) Set(key SettingKey, value SettingValue) error {
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

func (s *squarePupil) Settings() Settings {
	return Settings{SettingInset: Float(s.inset)}
}

func (s *squarePupil) Reset() { s.inset = 0 }

func (s *squarePupil) Path() *Path {
	origin, side := pupilBox()
	in := clampInset(s.inset) * side
	p := NewPath()
	p.Rectangle(origin+in, origin+in, side-2*in, side-2*in)
	return p
}

func (s *squarePupil) Clone() PupilShape {
	c := *s
	return &c
}

// roundedPupil is a square dot with rounded corners.
type roundedPupil struct {
	radius float64
}

func newRoundedPupil() *roundedPupil { return &roundedPupil{radius: 0.4} }

func (s *roundedPupil) Name() string  { return "rounded" }
func (s *roundedPupil) Title() string { return "Rounded" }

func (s *roundedPupil) Supports(key SettingKey) bool { return key == SettingCornerRadius }

func (s *roundedPupil) Set(key SettingKey, value SettingValue) error {
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

func (s *roundedPupil) Settings() Settings {
	return Settings{SettingCornerRadius: Float(s.radius)}
}

func (s *roundedPupil) Reset() { s.radius = 0.4 }

func (s *roundedPupil) Path() *Path {
	origin, side := pupilBox()
	p := NewPath()
	p.RoundedRectangle(origin, origin, side, side, clamp01(s.radius)*side/2)
	return p
}

func (s *roundedPupil) Clone() PupilShape {
	c := *s
	return &c
}

// circlePupil is a circular dot.
type circlePupil struct{}

func newCirclePupil() *circlePupil { return &circlePupil{} }

func (s *circlePupil) Name() string  { return "circle" }
func (s *circlePupil) Title() string { return "Circle" }

func (s *circlePupil) Supports(SettingKey) bool { return false }

func (s *circlePupil) Set(key SettingKey, _ SettingValue) error {
	return &UnsupportedSettingError{Shape: s.Name(), Key: key}
}

func (s *circlePupil) Settings() Settings { return Settings{} }

func (s *circlePupil) Reset() {}

func (s *circlePupil) Path() *Path {
	origin, side := pupilBox()
	p := NewPath()
	p.Circle(origin+side/2, origin+side/2, side/2)
	return p
}

func (s *circlePupil) Clone() PupilShape {
	c := *s
	return &c
}

// leafPupil matches the leaf eye: two opposite corners rounded.
type leafPupil struct {
	radius float64
}

func newLeafPupil() *leafPupil { return &leafPupil{radius: 0.7} }

func (s *leafPupil) Name() string  { return "leaf" }
func (s *leafPupil) Title() string { return "Leaf" }

func (s *leafPupil) Supports(key SettingKey) bool { return key == SettingCornerRadius }

func (s *leafPupil) Set(key SettingKey, value SettingValue) error {
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

func (s *leafPupil) Settings() Settings {
	return Settings{SettingCornerRadius: Float(s.radius)}
}

func (s *leafPupil) Reset() { s.radius = 0.7 }

func (s *leafPupil) Path() *Path {
	origin, side := pupilBox()
	p := NewPath()
	leafContour(p, origin, origin, side, side, clamp01(s.radius)*side/2)
	return p
}

func (s *leafPupil) Clone() PupilShape {
	c := *s
	return &c
}
