package math

import "errors"

var (
	// ErrSingularMatrix is returned by InvertGeneral when a pivot is zero.
	ErrSingularMatrix = errors.New("matrix is singular")
	// ErrInvalidProjection is returned by projection builders for out-of-domain arguments.
	ErrInvalidProjection = errors.New("invalid projection parameters")
	// ErrUnknownEulerOrder is returned by ParseEulerOrder.
	ErrUnknownEulerOrder = errors.New("unknown euler order")
)
