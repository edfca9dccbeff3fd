package maze

import "errors"

// Validation errors surfaced to callers. Internal consistency violations
// panic instead: they signal a generator defect, not bad input.
var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidLocation   = errors.New("invalid maze location")
	ErrInvalidDirection  = errors.New("invalid direction")
)
