package deraster

import "errors"

var (
	// ErrInvalidResolution is returned when the deraster resolution is
	// zero, negative or NaN. The caller must fix the configuration;
	// there is nothing sensible to extract at no resolution.
	ErrInvalidResolution = errors.New("deraster: resolution must be positive")

	// ErrEmptyBoundingBox is returned when the bounding box has zero
	// area.
	ErrEmptyBoundingBox = errors.New("deraster: bounding box has zero area")
)
