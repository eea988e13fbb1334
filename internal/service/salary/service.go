package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/domain/salary"
	"github.com/salarydesk/salary-backend-go/internal/pkg/database"
)

type SalaryServiceImpl struct {
	txm database.TxManager
	employee.EmployeeRepository
	bill.BillRepository
	advance.AdvanceRepository
}

// UsedSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) UsedSalary(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return decimal.Zero, err
	}
	return s.usedFromTransactions(ctx, employeeID)
}

// RemainingSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) RemainingSalary(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}
	used, err := s.usedFromTransactions(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}
	return emp.Salary.Sub(used), nil
}

// PayableRemaining implements salary.SalaryService.
func (s *SalaryServiceImpl) PayableRemaining(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	remaining, err := s.RemainingSalary(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}
	return clampAtZero(remaining), nil
}

// RefreshUsedSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) RefreshUsedSalary(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return decimal.Zero, err
	}
	used, err := s.usedFromTransactions(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}
	if err := s.EmployeeRepository.SetUsedSalary(ctx, employeeID, used); err != nil {
		return decimal.Zero, fmt.Errorf("failed to store used salary: %w", err)
	}
	return used, nil
}

// Summary implements salary.SalaryService.
func (s *SalaryServiceImpl) Summary(ctx context.Context, employeeID string) (salary.Summary, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return salary.Summary{}, err
	}
	return s.summarize(ctx, emp)
}

// SummaryAll implements salary.SalaryService.
func (s *SalaryServiceImpl) SummaryAll(ctx context.Context) ([]salary.Summary, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	summaries := make([]salary.Summary, 0, len(employees))
	for _, emp := range employees {
		summary, err := s.summarize(ctx, emp)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// RolloverMonthly implements salary.SalaryService. It settles the stored
// used_salary column: overdrawn ledgers keep the debt beyond one salary,
// everything else starts the month at zero.
func (s *SalaryServiceImpl) RolloverMonthly(ctx context.Context, day time.Time) (salary.RolloverStats, error) {
	var stats salary.RolloverStats

	if day.Day() != 1 {
		return stats, nil
	}

	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		employees, err := s.EmployeeRepository.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}

		for _, emp := range employees {
			remaining := emp.Salary.Sub(emp.UsedSalary)

			switch {
			case remaining.IsNegative():
				// Carry the debt beyond one salary into the new month.
				debt := emp.UsedSalary.Sub(emp.Salary)
				if err := s.EmployeeRepository.SetUsedSalary(ctx, emp.ID, debt); err != nil {
					return fmt.Errorf("failed to carry forward balance for %s: %w", emp.ID, err)
				}
				stats.CarriedForward++
				stats.TotalReset++
			case emp.UsedSalary.IsPositive():
				if err := s.EmployeeRepository.SetUsedSalary(ctx, emp.ID, decimal.Zero); err != nil {
					return fmt.Errorf("failed to reset balance for %s: %w", emp.ID, err)
				}
				stats.ResetToZero++
				stats.TotalReset++
			}
		}
		return nil
	})
	if err != nil {
		return salary.RolloverStats{}, err
	}
	return stats, nil
}

func (s *SalaryServiceImpl) summarize(ctx context.Context, emp employee.Employee) (salary.Summary, error) {
	bills, err := s.BillRepository.SumByEmployee(ctx, emp.ID)
	if err != nil {
		return salary.Summary{}, fmt.Errorf("failed to sum bills: %w", err)
	}
	advances, err := s.AdvanceRepository.SumApproved(ctx, emp.ID, nil)
	if err != nil {
		return salary.Summary{}, fmt.Errorf("failed to sum advances: %w", err)
	}

	used := bills.Add(advances)
	remaining := emp.Salary.Sub(used)

	return salary.Summary{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName(),
		Role:            string(emp.Role),
		Salary:          emp.Salary,
		UsedSalary:      used,
		RemainingSalary: remaining,
		PayableSalary:   clampAtZero(remaining),
		TotalBills:      bills,
		TotalAdvances:   advances,
		Overdrawn:       remaining.IsNegative(),
	}, nil
}

func (s *SalaryServiceImpl) usedFromTransactions(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	bills, err := s.BillRepository.SumByEmployee(ctx, employeeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum bills: %w", err)
	}
	advances, err := s.AdvanceRepository.SumApproved(ctx, employeeID, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum advances: %w", err)
	}
	return bills.Add(advances), nil
}

func clampAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func NewSalaryService(
	txm database.TxManager,
	employeeRepo employee.EmployeeRepository,
	billRepo bill.BillRepository,
	advanceRepo advance.AdvanceRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		txm:                txm,
		EmployeeRepository: employeeRepo,
		BillRepository:     billRepo,
		AdvanceRepository:  advanceRepo,
	}
}
