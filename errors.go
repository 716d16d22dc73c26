package qrink

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the rendering core. All failures are reported
// to the caller as values; the core never logs, retries, or substitutes
// defaults for bad input.
var (
	// ErrUnknownShape is returned by a registry when no generator is
	// registered under the requested name.
	ErrUnknownShape = errors.New("qrink: unknown shape name")

	// ErrUnsupportedSetting is the match target for setting rejections.
	// The concrete error is always an *UnsupportedSettingError carrying
	// the offending key.
	ErrUnsupportedSetting = errors.New("qrink: unsupported shape setting")

	// ErrInvalidDimension is returned when a render is requested with a
	// non-positive canvas size.
	ErrInvalidDimension = errors.New("qrink: canvas size must be positive")

	// ErrInvalidLogoPlacement is returned when a logo rectangle overlaps
	// one of the three finder-eye regions or falls outside the symbol.
	ErrInvalidLogoPlacement = errors.New("qrink: logo rectangle overlaps a finder eye or leaves the symbol")
)

// UnsupportedSettingError reports a setting key a shape generator does not
// accept, or a value of the wrong kind for a key it does accept.
type UnsupportedSettingError struct {
	Shape string     // generator name
	Key   SettingKey // offending key
}

func (e *UnsupportedSettingError) Error() string {
	return fmt.Sprintf("qrink: shape %q does not support setting %q", e.Shape, e.Key)
}

// Unwrap makes errors.Is(err, ErrUnsupportedSetting) succeed.
func (e *UnsupportedSettingError) Unwrap() error {
	return ErrUnsupportedSetting
}
