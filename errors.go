package rendiation

import "errors"

var (
	// ErrInvalidProjection is returned when projection parameters would produce a degenerate matrix.
	ErrInvalidProjection = errors.New("invalid projection parameters")
	// ErrInvalidSize is returned for non-positive or non-finite viewport sizes.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidController is returned for controller bounds or sensitivities that break its invariants.
	ErrInvalidController = errors.New("invalid controller parameters")
	// ErrInvalidHidpi is returned for a hidpi factor that is not a positive finite number.
	ErrInvalidHidpi = errors.New("invalid hidpi factor")
	// ErrReentrantDispatch is returned when a listener dispatches into the session that is running it.
	ErrReentrantDispatch = errors.New("re-entrant dispatch")
)
