package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidRange    = errors.New("start date must be before end date")
	ErrRoomUnavailable = errors.New("room unavailable for the requested dates")
)
