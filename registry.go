package qrink

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds the shape generators available for one visual role.
// Names are unique per role and matched case-insensitively; the same name
// may exist in different roles without conflict.
//
// The three process-wide registries are built once, on first use, and are
// never mutated afterwards. Discover them through PixelShapes, EyeShapes
// and PupilShapes.
type Registry[S Shape] struct {
	factories map[string]func() S
	names     []string
}

// newRegistry builds an immutable registry from generator factories.
// Each factory must produce instances with a stable lowercase name.
func newRegistry[S Shape](factories ...func() S) *Registry[S] {
	r := &Registry[S]{factories: make(map[string]func() S, len(factories))}
	for _, factory := range factories {
		name := strings.ToLower(factory().Name())
		if _, dup := r.factories[name]; dup {
			panic(fmt.Sprintf("qrink: duplicate shape name %q", name))
		}
		r.factories[name] = factory
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r
}

// Names returns the registered shape names, sorted for deterministic
// listing output.
func (r *Registry[S]) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Create instantiates the named generator and applies the initial settings.
// The lookup is case-insensitive. An unregistered name yields
// ErrUnknownShape; a setting the generator does not accept yields
// ErrUnsupportedSetting before any instance is returned, so a generator is
// never handed out partially configured.
func (r *Registry[S]) Create(name string, settings Settings) (S, error) {
	var zero S
	factory, ok := r.factories[strings.ToLower(name)]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	shape := factory()
	if err := applySettings(shape, settings); err != nil {
		return zero, err
	}
	return shape, nil
}

var (
	pixelRegistry = sync.OnceValue(func() *Registry[PixelShape] {
		return newRegistry(
			func() PixelShape { return newSquarePixel() },
			func() PixelShape { return newDotPixel() },
			func() PixelShape { return newRoundedPixel() },
			func() PixelShape { return newSquirclePixel() },
			func() PixelShape { return newDiamondPixel() },
			func() PixelShape { return newHStripePixel() },
			func() PixelShape { return newVStripePixel() },
		)
	})

	eyeRegistry = sync.OnceValue(func() *Registry[EyeShape] {
		return newRegistry(
			func() EyeShape { return newSquareEye() },
			func() EyeShape { return newRoundedEye() },
			func() EyeShape { return newCircleEye() },
			func() EyeShape { return newLeafEye() },
		)
	})

	pupilRegistry = sync.OnceValue(func() *Registry[PupilShape] {
		return newRegistry(
			func() PupilShape { return newSquarePupil() },
			func() PupilShape { return newRoundedPupil() },
			func() PupilShape { return newCirclePupil() },
			func() PupilShape { return newLeafPupil() },
		)
	})
)

// PixelShapes returns the registry of module shapes.
func PixelShapes() *Registry[PixelShape] { return pixelRegistry() }

// EyeShapes returns the registry of finder-eye frame shapes.
func EyeShapes() *Registry[EyeShape] { return eyeRegistry() }

// PupilShapes returns the registry of finder-eye pupil shapes.
func PupilShapes() *Registry[PupilShape] { return pupilRegistry() }
