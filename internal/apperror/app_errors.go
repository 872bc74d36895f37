package apperror

import "errors"

var (
	ErrIndexOutOfRange = errors.New("cell index out of range")
	ErrInvalidVariant  = errors.New("unknown game variant")
	ErrInvalidBoard    = errors.New("invalid board")
	ErrStateNotFound   = errors.New("state not found")
	ErrSummaryNotFound = errors.New("summary not found")
)
