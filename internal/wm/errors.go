package wm

import "errors"

var (
	// ErrInvalidBounds reports a window whose minimum size exceeds its
	// maximum. Construction fails fast rather than letting inconsistent
	// bounds reach the resize math.
	ErrInvalidBounds = errors.New("minimum size exceeds maximum size")

	// ErrUnknownPreset reports a preset name with no definition.
	ErrUnknownPreset = errors.New("unknown preset")
)
