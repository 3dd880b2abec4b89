package detect

import (
	"errors"
	"fmt"
)

// Exported variables.
var (
	ErrAmbiguousOverload      = errors.New("ambiguous overload")
	ErrInvalidDirective       = errors.New("invalid impfake directive")
	ErrSymbolNotFound         = errors.New("symbol not found")
	ErrUnsupportedTargetShape = errors.New("unsupported target shape")
)

// AmbiguousOverloadError reports two members that cannot be told apart by their call shape.
type AmbiguousOverloadError struct {
	Name   string
	First  string
	Second string
}

func (e *AmbiguousOverloadError) Error() string {
	return fmt.Sprintf("%s: %s is declared as both %s and %s", ErrAmbiguousOverload, e.Name, e.First, e.Second)
}

func (e *AmbiguousOverloadError) Unwrap() error {
	return ErrAmbiguousOverload
}

// UnsupportedTargetShapeError reports a target that no fake kind can represent.
type UnsupportedTargetShapeError struct {
	Target string
	Reason string
}

func (e *UnsupportedTargetShapeError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrUnsupportedTargetShape, e.Target, e.Reason)
}

func (e *UnsupportedTargetShapeError) Unwrap() error {
	return ErrUnsupportedTargetShape
}

func unsupported(target, format string, args ...any) error {
	return &UnsupportedTargetShapeError{Target: target, Reason: fmt.Sprintf(format, args...)}
}
