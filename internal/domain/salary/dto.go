package salary

import "github.com/shopspring/decimal"

type Summary struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Role         string          `json:"role"`
	Salary       decimal.Decimal `json:"salary"`
	UsedSalary   decimal.Decimal `json:"used_salary"`
	// RemainingSalary is signed; negative means overdraft.
	RemainingSalary decimal.Decimal `json:"remaining_salary"`
	PayableSalary   decimal.Decimal `json:"payable_salary"`
	TotalBills      decimal.Decimal `json:"total_bills"`
	TotalAdvances   decimal.Decimal `json:"total_advances"`
	Overdrawn       bool            `json:"overdrawn"`
}

// RolloverStats reports what the monthly rollover did to each ledger.
type RolloverStats struct {
	// CarriedForward counts overdrawn employees whose debt was reduced by one
	// month's salary.
	CarriedForward int `json:"carried_forward"`
	// ResetToZero counts employees whose positive used salary was cleared.
	ResetToZero int `json:"reset_to_zero"`
	TotalReset  int `json:"total_reset"`
}
