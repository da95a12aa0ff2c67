package apperror

import "errors"

var (
	ErrOutOfRange          = errors.New("coordinate is out of range")
	ErrInvalidSide         = errors.New("invalid side")
	ErrInvalidHistoryIndex = errors.New("invalid history index")
)
