package errors

import "errors"

var (
	ErrNotFound = errors.New("reservation not found")

	ErrInvalidID = errors.New("invalid reservation ID format")

	ErrSpaceTaken = errors.New("space is already reserved")

	ErrNotEnoughSpaces = errors.New("not enough available spaces")

	ErrClientNotFound = errors.New("reservation client does not exist")

	ErrAlreadyCompleted = errors.New("reservation is already completed")
)
