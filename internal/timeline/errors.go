package timeline

import "errors"

var (
	ErrValidation           = errors.New("validation error")
	ErrNotFound             = errors.New("not found")
	ErrInvalidRange         = errors.New("invalid range")
	ErrMissingDayAssignment = errors.New("scene has no story day assignment")
)
