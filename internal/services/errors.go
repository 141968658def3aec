package services

import "errors"

var (
	// ErrInvalidTransition means the requested status is not in the current
	// status's legal-next set. Nothing is written.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrNotCancellable means the order left the cancellable window
	// (pending, confirmed, preparing).
	ErrNotCancellable = errors.New("order can no longer be cancelled")

	// ErrOrderNotInTransit means a courier position was reported for an
	// order that is not out for delivery.
	ErrOrderNotInTransit = errors.New("order is not out for delivery")

	// ErrAlreadyDecided means approve/reject was called on an application
	// that already reached a terminal decision.
	ErrAlreadyDecided = errors.New("application has already been decided")
)
