package qrink

// Document binds a module matrix to a Design and an output canvas size.
// The matrix is borrowed read-only from the encoding collaborator; the
// design is snapshotted when Render runs.
//
// A Document is cheap to build; create one per render request rather than
// reusing it across matrix mutations.
type Document struct {
	matrix *BitMatrix
	design *Design
	size   float64

	quietZone int
}

// NewDocument creates a renderable document. size is the canvas edge
// length; the canvas is square because the symbol is.
func NewDocument(matrix *BitMatrix, design *Design, size float64) *Document {
	return &Document{
		matrix:    matrix,
		design:    design,
		size:      size,
		quietZone: 2,
	}
}

// SetQuietZone sets the width of the blank border, in modules, around the
// symbol. Negative values are treated as zero. Default is 2.
func (d *Document) SetQuietZone(modules int) {
	if modules < 0 {
		modules = 0
	}
	d.quietZone = modules
}

// Render composes the document into a format-neutral Rendered model.
//
// Render is pure: given the same matrix, design and size it produces a
// byte-identical model, which the golden regression tests rely on. It
// fails atomically with no partial output: a non-positive canvas returns
// ErrInvalidDimension, a logo rectangle touching a finder eye returns
// ErrInvalidLogoPlacement.
//
// The canvas size is a real number; module boundaries stay in float space
// and any rounding to device pixels is the exporting backend's concern.
func (d *Document) Render() (*Rendered, error) {
	if d.size <= 0 {
		return nil, ErrInvalidDimension
	}
	design := d.design.snapshot()
	if design.logo != nil {
		if err := design.logo.validate(d.matrix.Size()); err != nil {
			return nil, err
		}
	}
	return compose(d.matrix, design, d.size, d.quietZone), nil
}
