package advance

import "errors"

var (
	ErrAdvanceNotFound    = errors.New("advance request not found")
	ErrAlreadyDecided     = errors.New("advance request already decided")
	ErrStaffOrManagerOnly = errors.New("only staff and managers can request advances")
	ErrInvalidAmount      = errors.New("advance amount must be greater than zero")
	ErrNoRemainingSalary  = errors.New("no remaining salary available for an advance")
	ErrExceedsRemaining   = errors.New("advance amount exceeds remaining salary")
)
