package offday

import "errors"

var (
	ErrOffDayNotFound = errors.New("off day request not found")
	ErrAlreadyDecided = errors.New("off day request already decided")
	ErrInvalidRange   = errors.New("day count must be at least 1")
	ErrInvalidOffType = errors.New("off type must be full or half")
)
