package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	ErrTimeConflict = errors.New("booking window conflicts with an existing booking")

	ErrInvalidWindow = errors.New("end time must be after start time")

	ErrNotPending = errors.New("booking is not pending")
)
