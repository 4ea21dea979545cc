package pagebar

import "errors"

var (
	// ErrInvalidArgument is returned when a page count is below 1.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidPage is returned when navigation targets a page outside [1, total].
	ErrInvalidPage = errors.New("invalid page")
)
