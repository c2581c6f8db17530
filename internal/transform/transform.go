package transform

import (
	"fmt"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// ProfileTransform defines the interface for all what-if transformations.
// Transforms are composable operations that modify a contributor profile in
// predictable ways, enabling scenario comparison and the break-even solver.
type ProfileTransform interface {
	// Apply transforms a base profile and returns the modified copy.
	Apply(base domain.Profile) (domain.Profile, error)

	// Name returns a short identifier for this transform (e.g., "postpone_retirement").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks if the transform parameters are valid without applying it.
	Validate(base domain.Profile) error
}

// ApplyTransforms applies a sequence of transforms to a base profile.
// Transforms are applied in order, with each transform receiving the output of the previous one.
func ApplyTransforms(base domain.Profile, transforms []ProfileTransform) (domain.Profile, error) {
	current := base
	for i, transform := range transforms {
		if transform == nil {
			return domain.Profile{}, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return domain.Profile{}, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return domain.Profile{}, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}

		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
