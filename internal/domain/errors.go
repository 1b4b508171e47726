package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrStateConflict  = errors.New("state conflict")

	ErrEditConflict = fmt.Errorf("%w: edit conflict", ErrStateConflict)
	ErrLocked       = fmt.Errorf("%w: resource is being modified by another request", ErrStateConflict)
	ErrRoomConflict = fmt.Errorf("%w: room is already booked for an overlapping time window", ErrStateConflict)
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func stateConflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStateConflict, fmt.Sprintf(format, args...))
}
