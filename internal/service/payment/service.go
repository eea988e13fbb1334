package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/domain/payment"
	"github.com/salarydesk/salary-backend-go/internal/pkg/database"
)

type PaymentServiceImpl struct {
	txm database.TxManager
	payment.SalaryPaymentRepository
	employee.EmployeeRepository
	bill.BillRepository
	advance.AdvanceRepository
}

// Record implements payment.PaymentService. The payment row and the balance
// reset commit together; a payout can never exist without its settlement.
func (s *PaymentServiceImpl) Record(ctx context.Context, req payment.RecordPaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	admin, err := s.EmployeeRepository.GetByID(ctx, req.AdminID)
	if err != nil {
		return payment.PaymentResponse{}, employee.ErrAdminNotFound
	}
	if admin.Role != employee.RoleAdmin {
		return payment.PaymentResponse{}, payment.ErrAdminOnly
	}

	paymentDate := time.Now().UTC()
	if d := req.PaymentDateValue(); d != nil {
		paymentDate = *d
	}

	var created payment.SalaryPayment
	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		emp, err := s.EmployeeRepository.GetByIDForUpdate(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		amount := decimal.Zero
		if req.Amount != nil {
			amount = *req.Amount
		} else {
			remaining, err := s.remainingFromTransactions(ctx, emp)
			if err != nil {
				return err
			}
			if remaining.IsPositive() {
				amount = remaining
			}
		}

		created, err = s.SalaryPaymentRepository.Create(ctx, payment.SalaryPayment{
			ID:          uuid.NewString(),
			EmployeeID:  emp.ID,
			PaidByID:    admin.ID,
			AmountPaid:  amount,
			PaymentDate: paymentDate,
			Notes:       req.Notes,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("failed to create salary payment: %w", err)
		}

		// The payout settles the ledger in full regardless of the amount.
		return s.EmployeeRepository.SetUsedSalary(ctx, emp.ID, decimal.Zero)
	})
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err == nil {
		name := emp.FullName()
		created.EmployeeName = &name
	}
	adminName := admin.FullName()
	created.PaidByName = &adminName

	return payment.ToResponse(created), nil
}

// ListByEmployee implements payment.PaymentService.
func (s *PaymentServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payment.PaymentResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	payments, err := s.SalaryPaymentRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary payments: %w", err)
	}
	return toResponses(payments), nil
}

// ListAll implements payment.PaymentService.
func (s *PaymentServiceImpl) ListAll(ctx context.Context) ([]payment.PaymentResponse, error) {
	payments, err := s.SalaryPaymentRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary payments: %w", err)
	}
	return toResponses(payments), nil
}

func (s *PaymentServiceImpl) remainingFromTransactions(ctx context.Context, emp employee.Employee) (decimal.Decimal, error) {
	bills, err := s.BillRepository.SumByEmployee(ctx, emp.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum bills: %w", err)
	}
	advances, err := s.AdvanceRepository.SumApproved(ctx, emp.ID, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum advances: %w", err)
	}
	return emp.Salary.Sub(bills.Add(advances)), nil
}

func toResponses(payments []payment.SalaryPayment) []payment.PaymentResponse {
	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, payment.ToResponse(p))
	}
	return responses
}

func NewPaymentService(
	txm database.TxManager,
	paymentRepo payment.SalaryPaymentRepository,
	employeeRepo employee.EmployeeRepository,
	billRepo bill.BillRepository,
	advanceRepo advance.AdvanceRepository,
) payment.PaymentService {
	return &PaymentServiceImpl{
		txm:                     txm,
		SalaryPaymentRepository: paymentRepo,
		EmployeeRepository:      employeeRepo,
		BillRepository:          billRepo,
		AdvanceRepository:       advanceRepo,
	}
}
