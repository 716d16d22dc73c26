package qrink

// Design aggregates the full set of visual selections for a render: one
// shape generator per role, one fill style per role, and an optional logo.
//
// A Design is mutable up to the point it is handed to a render; Render
// works on a snapshot, so later mutations never affect an in-flight or
// finished render. Concurrent mutation of a single Design during a render
// is the caller's to avoid.
type Design struct {
	pixel PixelShape
	eye   EyeShape
	pupil PupilShape

	background FillStyle
	pixelFill  FillStyle
	eyeFill    FillStyle
	pupilFill  FillStyle

	logo *LogoTemplate
}

// NewDesign creates a design with the defaults: square pixel, eye and
// pupil shapes, solid black on solid white, no logo.
func NewDesign() *Design {
	return &Design{
		pixel:      newSquarePixel(),
		eye:        newSquareEye(),
		pupil:      newSquarePupil(),
		background: SolidOf(White),
		pixelFill:  SolidOf(Black),
		eyeFill:    SolidOf(Black),
		pupilFill:  SolidOf(Black),
	}
}

// SetPixelShape selects the module shape generator.
func (d *Design) SetPixelShape(s PixelShape) { d.pixel = s }

// SetEyeShape selects the finder-frame shape generator.
func (d *Design) SetEyeShape(s EyeShape) { d.eye = s }

// SetPupilShape selects the finder-dot shape generator.
func (d *Design) SetPupilShape(s PupilShape) { d.pupil = s }

// PixelShape returns the current module shape generator.
func (d *Design) PixelShape() PixelShape { return d.pixel }

// EyeShape returns the current finder-frame shape generator.
func (d *Design) EyeShape() EyeShape { return d.eye }

// PupilShape returns the current finder-dot shape generator.
func (d *Design) PupilShape() PupilShape { return d.pupil }

// SetBackground sets the canvas background fill.
func (d *Design) SetBackground(f FillStyle) { d.background = f }

// SetPixelFill sets the fill for on-modules.
func (d *Design) SetPixelFill(f FillStyle) { d.pixelFill = f }

// SetEyeFill sets the fill for the three finder frames.
func (d *Design) SetEyeFill(f FillStyle) { d.eyeFill = f }

// SetPupilFill sets the fill for the three finder dots.
func (d *Design) SetPupilFill(f FillStyle) { d.pupilFill = f }

// SetLogo sets the logo overlay; nil removes it.
func (d *Design) SetLogo(l *LogoTemplate) { d.logo = l }

// Logo returns the logo overlay, or nil.
func (d *Design) Logo() *LogoTemplate { return d.logo }

// snapshot deep-copies the design so a render is isolated from later
// mutations. Fill styles are treated as immutable values; the logo image
// is shared read-only.
func (d *Design) snapshot() *Design {
	s := &Design{
		pixel:      d.pixel.Clone(),
		eye:        d.eye.Clone(),
		pupil:      d.pupil.Clone(),
		background: d.background,
		pixelFill:  d.pixelFill,
		eyeFill:    d.eyeFill,
		pupilFill:  d.pupilFill,
	}
	if d.logo != nil {
		logo := *d.logo
		s.logo = &logo
	}
	return s
}
