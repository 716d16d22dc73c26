package qrink

// SettingKey identifies one tunable parameter of a shape generator. The key
// set is closed: every key a generator can accept is declared here, and a
// write with any other key is rejected with ErrUnsupportedSetting rather
// than silently stored.
type SettingKey string

const (
	// SettingInset shrinks a pixel shape inside its cell. The value is a
	// Float fraction of the cell edge in [0, 0.5).
	SettingInset SettingKey = "insetFraction"

	// SettingCornerRadius rounds the corners of a shape. The value is a
	// Float fraction of the available half-extent in [0, 1].
	SettingCornerRadius SettingKey = "cornerRadiusFraction"

	// SettingInnerCorners keeps the inner contour of an eye frame square
	// while the outer contour is rounded. The value is a Bool.
	SettingInnerCorners SettingKey = "hasInnerCorners"

	// SettingCoverage widens or narrows stripe shapes. The value is a
	// Float fraction of the cell edge in (0, 1].
	SettingCoverage SettingKey = "coverageFraction"
)

// SettingValue is a typed scalar setting value.
// This is a sealed interface - only Float and Bool implement it.
type SettingValue interface {
	isSettingValue()
}

// Float is a floating-point setting value.
type Float float64

func (Float) isSettingValue() {}

// Bool is a boolean setting value.
type Bool bool

func (Bool) isSettingValue() {}

// Settings is a snapshot of a generator's current setting values, keyed by
// the keys the generator supports. It is a copy: mutating the map has no
// effect on the generator.
type Settings map[SettingKey]SettingValue

// applySettings writes every entry of s into the shape, failing fast on the
// first unsupported key. Registries call this during Create so a generator
// is never returned partially configured.
func applySettings(shape Shape, s Settings) error {
	for key, value := range s {
		if err := shape.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// floatSetting extracts a Float value or reports the key as unsupported for
// the named shape. Generators use it to reject bool values on float keys.
func floatSetting(shape string, key SettingKey, v SettingValue) (float64, error) {
	f, ok := v.(Float)
	if !ok {
		return 0, &UnsupportedSettingError{Shape: shape, Key: key}
	}
	return float64(f), nil
}

// boolSetting extracts a Bool value or reports the key as unsupported.
func boolSetting(shape string, key SettingKey, v SettingValue) (bool, error) {
	b, ok := v.(Bool)
	if !ok {
		return false, &UnsupportedSettingError{Shape: shape, Key: key}
	}
	return bool(b), nil
}
