package grid1d

import "errors"

// Constructors return these sentinels directly, never wrapped. Callers
// crossing a package boundary may wrap them with fmt.Errorf("ctx: %w", err);
// errors.Is keeps matching.
//
// ERROR PRIORITY (enforced in tests):
// singular grid -> missing ghost positions -> non-monotonic positions.
// A non-monotonic array that also lacks ghost padding reports
// ErrMissingPositions.
var (
	// ErrSingularGrid indicates that fewer than one bulk cell was requested.
	ErrSingularGrid = errors.New("grid1d: grid must have at least one bulk cell")

	// ErrNonMonotonic indicates that positions do not strictly increase.
	// NaN values always trigger it.
	ErrNonMonotonic = errors.New("grid1d: positions must increase strictly")

	// ErrMissingPositions indicates that there is no ghost point below the
	// lower bulk wall or above the upper bulk wall.
	ErrMissingPositions = errors.New("grid1d: missing ghost positions around bulk region")

	// ErrInvalidPosition indicates an unknown position name.
	ErrInvalidPosition = errors.New("grid1d: invalid position")

	// ErrTooLarge indicates that Uniform would need more than
	// MaxUniformPoints positions.
	ErrTooLarge = errors.New("grid1d: grid too large")
)
