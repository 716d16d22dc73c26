package qrink

// GroupKind identifies the visual role of a path group.
type GroupKind int

const (
	// GroupPixels is the merged path of all rendered on-modules.
	GroupPixels GroupKind = iota
	// GroupEye is one finder-frame path.
	GroupEye
	// GroupPupil is one finder-dot path.
	GroupPupil
)

// String returns the group kind name.
func (k GroupKind) String() string {
	switch k {
	case GroupPixels:
		return "pixels"
	case GroupEye:
		return "eye"
	case GroupPupil:
		return "pupil"
	}
	return "unknown"
}

// Group is one styled path group in document coordinates.
type Group struct {
	Kind GroupKind
	Path *Path
	Fill FillStyle
}

// LogoGroup is the topmost overlay: the logo image and its frame in
// document coordinates.
type LogoGroup struct {
	Template *LogoTemplate

	// X, Y, W, H is the logo frame in document coordinates.
	X, Y, W, H float64

	// CornerRadius is the frame corner radius in document coordinates.
	CornerRadius float64
}

// Rendered is the format-neutral result of composing a document: the
// ordered, styled path groups every export backend consumes. Backends may
// rasterize or serialize it but never re-derive geometry, which keeps the
// output visually equivalent across formats.
//
// Group order is an invariant: the pixel group first, then the three eye
// groups, then the three pupil groups. The background fill underlies all
// groups and the logo, when present, occludes everything beneath it.
type Rendered struct {
	// Size is the canvas edge length.
	Size float64

	// Modules is the symbol side length in modules, quiet zone excluded.
	Modules int

	// ModuleSize is the edge length of one module in document coordinates.
	ModuleSize float64

	// Offset is the quiet-zone inset of the symbol's top-left corner.
	Offset float64

	// Background is the canvas fill drawn beneath all groups.
	Background FillStyle

	// Groups are the styled path groups in paint order.
	Groups []Group

	// Logo is the topmost overlay, nil when the design has none.
	Logo *LogoGroup

	matrix *BitMatrix
}

// Matrix returns the underlying module matrix. Text export backends render
// from it directly, ignoring styling.
func (r *Rendered) Matrix() *BitMatrix {
	return r.matrix
}

// compose merges module, eye, pupil and logo geometry into a Rendered.
// Callers have already validated the canvas size and logo placement.
func compose(matrix *BitMatrix, design *Design, size float64, quietZone int) *Rendered {
	n := matrix.Size()
	total := n + 2*quietZone
	moduleSize := size / float64(total)
	offset := float64(quietZone) * moduleSize

	r := &Rendered{
		Size:       size,
		Modules:    n,
		ModuleSize: moduleSize,
		Offset:     offset,
		Background: design.background,
		matrix:     matrix,
	}

	r.Groups = append(r.Groups, Group{
		Kind: GroupPixels,
		Path: composePixels(matrix, design, moduleSize, offset),
		Fill: design.pixelFill,
	})

	// The three finder positions; QR has no bottom-right eye.
	positions := [3][2]int{{0, 0}, {n - 7, 0}, {0, n - 7}}
	eyeScale := 7 * moduleSize / EyeFrame

	eyePath := design.eye.Path()
	for _, pos := range positions {
		m := placementMatrix(pos, moduleSize, offset, eyeScale)
		r.Groups = append(r.Groups, Group{
			Kind: GroupEye,
			Path: eyePath.Transform(m),
			Fill: design.eyeFill,
		})
	}

	pupilPath := design.pupil.Path()
	for _, pos := range positions {
		m := placementMatrix(pos, moduleSize, offset, eyeScale)
		r.Groups = append(r.Groups, Group{
			Kind: GroupPupil,
			Path: pupilPath.Transform(m),
			Fill: design.pupilFill,
		})
	}

	if design.logo != nil {
		r.Logo = composeLogo(design.logo, moduleSize, offset)
	}
	return r
}

// composePixels accumulates one translated pixel path per rendered
// on-module. Modules inside a finder region or under the logo rectangle
// are skipped; the neighbor mask always reflects the raw matrix.
func composePixels(matrix *BitMatrix, design *Design, moduleSize, offset float64) *Path {
	n := matrix.Size()
	merged := NewPath()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !matrix.At(x, y) {
				continue
			}
			if matrix.inFinderRegion(x, y) {
				continue
			}
			if design.logo != nil && design.logo.Rect.Contains(x, y) {
				continue
			}
			cell := design.pixel.Path(matrix.Neighbors(x, y))
			m := Translate(offset+float64(x)*moduleSize, offset+float64(y)*moduleSize).
				Multiply(Scale(moduleSize, moduleSize))
			merged.Append(cell.Transform(m))
		}
	}
	return merged
}

// placementMatrix maps the 90-unit eye frame onto the 7-module finder
// region whose top-left module is pos.
func placementMatrix(pos [2]int, moduleSize, offset, scale float64) Matrix {
	return Translate(offset+float64(pos[0])*moduleSize, offset+float64(pos[1])*moduleSize).
		Multiply(Scale(scale, scale))
}

// composeLogo converts the module-grid logo rectangle into document
// coordinates.
func composeLogo(logo *LogoTemplate, moduleSize, offset float64) *LogoGroup {
	x := offset + float64(logo.Rect.X)*moduleSize
	y := offset + float64(logo.Rect.Y)*moduleSize
	w := float64(logo.Rect.W) * moduleSize
	h := float64(logo.Rect.H) * moduleSize
	short := w
	if h < short {
		short = h
	}
	return &LogoGroup{
		Template:     logo,
		X:            x,
		Y:            y,
		W:            w,
		H:            h,
		CornerRadius: clamp01(logo.CornerRadiusFraction) * short / 2,
	}
}
