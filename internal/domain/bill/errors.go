package bill

import "errors"

var (
	ErrBillNotFound       = errors.New("bill not found")
	ErrManagerOrAdminOnly = errors.New("only managers or admins can record bills")
	ErrCannotBillSelf     = errors.New("managers cannot record bills for themselves")
	ErrExceedsSalary      = errors.New("bill would push used salary past base salary")
)
