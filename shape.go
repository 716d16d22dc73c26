package qrink

// Normalized frames the generators draw in. Pixel shapes fill a single
// module cell; eye and pupil shapes share the 90-unit square covering the
// 7x7-module finder pattern, with the pupil confined to the inner 3x3.
const (
	// PixelFrame is the edge length of the pixel-shape frame.
	PixelFrame = 1.0

	// EyeFrame is the edge length of the eye/pupil-shape frame.
	EyeFrame = 90.0

	// eyeModule is the size of one module inside the eye frame.
	eyeModule = EyeFrame / 7
)

// Shape is the contract shared by all shape generators regardless of role.
//
// A generator is deterministic: for a given settings snapshot, its path
// output is byte-identical across calls. Settings change only through Set,
// which rejects keys the generator does not support.
type Shape interface {
	// Name returns the stable lowercase registry name.
	Name() string

	// Title returns the human-readable display name.
	Title() string

	// Supports reports whether the generator accepts the setting key.
	Supports(key SettingKey) bool

	// Set writes a setting value. Unsupported keys and wrongly typed
	// values return an *UnsupportedSettingError; the generator state is
	// unchanged on error.
	Set(key SettingKey, value SettingValue) error

	// Settings returns a snapshot of the current values for every
	// supported key.
	Settings() Settings

	// Reset restores all settings to their defaults.
	Reset()
}

// PixelShape generates the path for a single "on" module in a 1x1 frame
// with origin at the top-left of the cell.
type PixelShape interface {
	Shape

	// Path produces the module path. Context-aware generators shape the
	// output according to which neighbors are on; others ignore n.
	Path(n Neighbors) *Path

	// ContextAware reports whether Path uses the neighbor mask.
	ContextAware() bool

	// Clone returns a copy with independent settings.
	Clone() PixelShape
}

// EyeShape generates the outer finder-ring path in the 90x90 frame.
// Every emitted coordinate lies within [0, EyeFrame].
type EyeShape interface {
	Shape

	// Path produces the eye frame path (outer ring of the 7x7 finder).
	Path() *Path

	// Clone returns a copy with independent settings.
	Clone() EyeShape
}

// PupilShape generates the inner finder-dot path in the 90x90 frame,
// confined to the central 3x3 modules.
type PupilShape interface {
	Shape

	// Path produces the pupil path.
	Path() *Path

	// Clone returns a copy with independent settings.
	Clone() PupilShape
}

// Neighbors records which of the eight modules adjacent to a cell are on.
// The compositor fills it from the raw matrix; exclusion zones do not
// change a neighbor's on-ness.
type Neighbors struct {
	N, NE, E, SE, S, SW, W, NW bool
}
