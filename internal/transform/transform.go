package transform

import (
	"errors"
	"fmt"

	"github.com/lifebridge/lifebridge/internal/domain"
)

// ProfileTransform models a life event as a change to a household profile.
// Transforms are composable, which is what lets the compare command ask
// "what happens to our benefits if we have a baby".
type ProfileTransform interface {
	// Apply returns a modified copy of base. base is never mutated.
	Apply(base domain.UserProfile) (domain.UserProfile, error)

	// Name returns a short identifier for this transform (e.g., "add_child").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks the transform's parameters against base without applying it.
	Validate(base domain.UserProfile) error
}

// ErrUnknownTransform is returned by the registry for unregistered names
var ErrUnknownTransform = errors.New("unknown transform")

// ApplyTransforms applies transforms in order, each one receiving the output
// of the previous. The base profile is left untouched.
func ApplyTransforms(base domain.UserProfile, transforms []ProfileTransform) (domain.UserProfile, error) {
	current := base.Clone()

	for i, transform := range transforms {
		if transform == nil {
			return domain.UserProfile{}, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return domain.UserProfile{}, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return domain.UserProfile{}, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
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
