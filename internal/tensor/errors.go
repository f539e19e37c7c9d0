package tensor

import "errors"

// Precondition failures reported by tensor construction, element access and
// the reductions built on views. Callers match them with errors.Is.
var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidShape     = errors.New("invalid shape")
	ErrOutOfRange       = errors.New("coordinate out of range")
)
