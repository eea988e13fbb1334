package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salarydesk/salary-backend-go/internal/config"
	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/pkg/database"
)

type BillServiceImpl struct {
	txm    database.TxManager
	policy config.OverdraftPolicy
	bill.BillRepository
	employee.EmployeeRepository
	advance.AdvanceRepository
}

// Record implements bill.BillService.
func (s *BillServiceImpl) Record(ctx context.Context, req bill.CreateBillRequest) (bill.CreateBillResult, error) {
	if err := req.Validate(); err != nil {
		return bill.CreateBillResult{}, err
	}

	recorder, err := s.EmployeeRepository.GetByID(ctx, req.RecorderID)
	if err != nil {
		return bill.CreateBillResult{}, err
	}
	if !recorder.Role.CanRecordBills() {
		return bill.CreateBillResult{}, bill.ErrManagerOrAdminOnly
	}

	billed, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return bill.CreateBillResult{}, err
	}
	// Admins may bill anyone, including themselves.
	if recorder.Role == employee.RoleManager && recorder.ID == billed.ID {
		return bill.CreateBillResult{}, bill.ErrCannotBillSelf
	}

	billDate := req.DateValue()

	var (
		created bill.Bill
		warning *string
	)
	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		locked, err := s.EmployeeRepository.GetByIDForUpdate(ctx, billed.ID)
		if err != nil {
			return err
		}

		currentUsed, err := s.usedFromTransactions(ctx, locked.ID)
		if err != nil {
			return err
		}
		newUsed := currentUsed.Add(req.Amount)
		remaining := locked.Salary.Sub(currentUsed)

		if newUsed.GreaterThan(locked.Salary) {
			if s.policy == config.PolicyStrict {
				return bill.ErrExceedsSalary
			}
			msg := fmt.Sprintf("Bill recorded, but it pushes %s's used salary to $%s against a base salary of $%s. Remaining before this bill was $%s.",
				locked.FullName(), newUsed.StringFixed(2), locked.Salary.StringFixed(2), remaining.StringFixed(2))
			warning = &msg
		}

		now := time.Now().UTC()
		created, err = s.BillRepository.Create(ctx, bill.Bill{
			ID:               uuid.NewString(),
			BilledEmployeeID: locked.ID,
			RecordedByID:     recorder.ID,
			Amount:           req.Amount,
			Date:             billDate,
			Reason:           req.Reason,
			CreatedAt:        now,
		})
		if err != nil {
			return fmt.Errorf("failed to create bill: %w", err)
		}

		return s.EmployeeRepository.SetUsedSalary(ctx, locked.ID, newUsed)
	})
	if err != nil {
		return bill.CreateBillResult{}, err
	}

	billedName := billed.FullName()
	billedRole := string(billed.Role)
	recorderName := recorder.FullName()
	created.EmployeeName = &billedName
	created.EmployeeRole = &billedRole
	created.RecordedByName = &recorderName

	return bill.CreateBillResult{Bill: bill.ToResponse(created), Warning: warning}, nil
}

// ListAll implements bill.BillService.
func (s *BillServiceImpl) ListAll(ctx context.Context) ([]bill.BillResponse, error) {
	bills, err := s.BillRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return toResponses(bills), nil
}

// ListRecentByRecorder implements bill.BillService.
func (s *BillServiceImpl) ListRecentByRecorder(ctx context.Context, recorderID string, limit int) ([]bill.BillResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, recorderID); err != nil {
		return nil, err
	}
	bills, err := s.BillRepository.ListRecentByRecorder(ctx, recorderID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return toResponses(bills), nil
}

func (s *BillServiceImpl) usedFromTransactions(ctx context.Context, employeeID string) (decimal.Decimal, error) {
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

func toResponses(bills []bill.Bill) []bill.BillResponse {
	responses := make([]bill.BillResponse, 0, len(bills))
	for _, b := range bills {
		responses = append(responses, bill.ToResponse(b))
	}
	return responses
}

func NewBillService(
	txm database.TxManager,
	policy config.OverdraftPolicy,
	billRepo bill.BillRepository,
	employeeRepo employee.EmployeeRepository,
	advanceRepo advance.AdvanceRepository,
) bill.BillService {
	return &BillServiceImpl{
		txm:                txm,
		policy:             policy,
		BillRepository:     billRepo,
		EmployeeRepository: employeeRepo,
		AdvanceRepository:  advanceRepo,
	}
}
