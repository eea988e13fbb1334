package advance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salarydesk/salary-backend-go/internal/config"
	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/domain/notification"
	"github.com/salarydesk/salary-backend-go/internal/pkg/database"
)

type AdvanceServiceImpl struct {
	txm    database.TxManager
	policy config.OverdraftPolicy
	advance.AdvanceRepository
	employee.EmployeeRepository
	bill.BillRepository
	notifications notification.NotificationService
}

// Request implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Request(ctx context.Context, req advance.RequestAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if emp.Role == employee.RoleAdmin {
		return advance.AdvanceResponse{}, advance.ErrStaffOrManagerOnly
	}

	if s.policy == config.PolicyStrict {
		// Reject up front what approval could never pass.
		remaining, err := s.remainingFromTransactions(ctx, emp)
		if err != nil {
			return advance.AdvanceResponse{}, err
		}
		if !remaining.IsPositive() {
			return advance.AdvanceResponse{}, advance.ErrNoRemainingSalary
		}
		if req.Amount.GreaterThan(remaining) {
			return advance.AdvanceResponse{}, advance.ErrExceedsRemaining
		}
	}

	now := time.Now().UTC()
	adv := advance.Advance{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		Amount:     req.Amount,
		Reason:     req.Reason,
		Status:     advance.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.AdvanceRepository.Create(ctx, adv)
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to create advance: %w", err)
	}

	name := emp.FullName()
	created.EmployeeName = &name
	return advance.ToResponse(created), nil
}

// Decide implements advance.AdvanceService. The balance checks and the status
// transition run under a row lock on the employee so two concurrent approvals
// cannot both spend the same remaining salary.
func (s *AdvanceServiceImpl) Decide(ctx context.Context, advanceID string, req advance.DecideAdvanceRequest) (advance.AdvanceResponse, error) {
	admin, err := s.EmployeeRepository.GetByID(ctx, req.AdminID)
	if err != nil {
		return advance.AdvanceResponse{}, employee.ErrAdminNotFound
	}
	if admin.Role != employee.RoleAdmin {
		return advance.AdvanceResponse{}, employee.ErrAdminOnly
	}

	var (
		decided advance.Advance
		emp     employee.Employee
	)
	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		adv, err := s.AdvanceRepository.GetByID(ctx, advanceID)
		if err != nil {
			return err
		}
		if adv.Status.Decided() {
			return advance.ErrAlreadyDecided
		}

		emp, err = s.EmployeeRepository.GetByIDForUpdate(ctx, adv.EmployeeID)
		if err != nil {
			return err
		}

		// The row lock serializes deciders. Re-read the advance so a decision
		// committed while we waited on the lock stays terminal.
		adv, err = s.AdvanceRepository.GetByID(ctx, advanceID)
		if err != nil {
			return err
		}
		if adv.Status.Decided() {
			return advance.ErrAlreadyDecided
		}

		now := time.Now().UTC()
		adv.ApprovedAt = &now

		if !req.Approved {
			adv.Status = advance.StatusDenied
			adv.ApprovalNotes = req.Notes
		} else if err := s.approveLocked(ctx, &adv, emp, req.Notes); err != nil {
			return err
		}

		if err := s.AdvanceRepository.UpdateDecision(ctx, adv); err != nil {
			return fmt.Errorf("failed to store decision: %w", err)
		}
		decided = adv
		return nil
	})
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	if err := s.notifications.RecordAdvanceDecided(ctx, emp, decided); err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to record notification: %w", err)
	}

	name := emp.FullName()
	decided.EmployeeName = &name
	return advance.ToResponse(decided), nil
}

// approveLocked runs the balance checks for an approval. Any failed check
// turns the decision into a denial with a synthesized note; that is a valid
// outcome, not an error. Must be called with the employee row locked.
func (s *AdvanceServiceImpl) approveLocked(ctx context.Context, adv *advance.Advance, emp employee.Employee, notes *string) error {
	currentUsed, err := s.usedFromTransactions(ctx, emp.ID, &adv.ID)
	if err != nil {
		return err
	}

	newUsed := currentUsed.Add(adv.Amount)
	remaining := emp.Salary.Sub(currentUsed)
	newRemaining := emp.Salary.Sub(newUsed)
	shownRemaining := clampAtZero(remaining)

	var autoRejectMsg string
	switch {
	case newUsed.GreaterThan(emp.Salary):
		autoRejectMsg = fmt.Sprintf(" [AUTO-REJECTED: Would make total used salary $%s, exceeding base salary $%s. Remaining would be negative: $%s]",
			newUsed.StringFixed(2), emp.Salary.StringFixed(2), newRemaining.StringFixed(2))
	case newRemaining.IsNegative():
		autoRejectMsg = fmt.Sprintf(" [AUTO-REJECTED: No remaining salary. Would become negative: $%s. Current remaining: $%s]",
			newRemaining.StringFixed(2), shownRemaining.StringFixed(2))
	case !remaining.IsPositive():
		autoRejectMsg = fmt.Sprintf(" [AUTO-REJECTED: No remaining salary available. Current remaining: $%s]",
			shownRemaining.StringFixed(2))
	case adv.Amount.GreaterThan(remaining):
		autoRejectMsg = fmt.Sprintf(" [AUTO-REJECTED: Amount $%s exceeds remaining salary $%s]",
			adv.Amount.StringFixed(2), shownRemaining.StringFixed(2))
	}

	if autoRejectMsg != "" {
		adv.Status = advance.StatusDenied
		merged := strings.TrimSpace(autoRejectMsg)
		if notes != nil && *notes != "" {
			merged = *notes + autoRejectMsg
		}
		adv.ApprovalNotes = &merged
		return nil
	}

	adv.Status = advance.StatusApproved
	adv.ApprovalNotes = notes

	// Keep the cached column in step with the rows just committed to it.
	if err := s.EmployeeRepository.SetUsedSalary(ctx, emp.ID, newUsed); err != nil {
		return fmt.Errorf("failed to store used salary: %w", err)
	}
	return nil
}

// GetByID implements advance.AdvanceService.
func (s *AdvanceServiceImpl) GetByID(ctx context.Context, advanceID string) (advance.AdvanceResponse, error) {
	adv, err := s.AdvanceRepository.GetByID(ctx, advanceID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.ToResponse(adv), nil
}

// ListPending implements advance.AdvanceService.
func (s *AdvanceServiceImpl) ListPending(ctx context.Context) ([]advance.AdvanceResponse, error) {
	advances, err := s.AdvanceRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending advances: %w", err)
	}
	return toResponses(advances), nil
}

// ListByEmployee implements advance.AdvanceService.
func (s *AdvanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]advance.AdvanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	advances, err := s.AdvanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	return toResponses(advances), nil
}

// ListAll implements advance.AdvanceService.
func (s *AdvanceServiceImpl) ListAll(ctx context.Context) ([]advance.AdvanceResponse, error) {
	advances, err := s.AdvanceRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	return toResponses(advances), nil
}

func (s *AdvanceServiceImpl) usedFromTransactions(ctx context.Context, employeeID string, excludeID *string) (decimal.Decimal, error) {
	bills, err := s.BillRepository.SumByEmployee(ctx, employeeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum bills: %w", err)
	}
	advances, err := s.AdvanceRepository.SumApproved(ctx, employeeID, excludeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum advances: %w", err)
	}
	return bills.Add(advances), nil
}

func (s *AdvanceServiceImpl) remainingFromTransactions(ctx context.Context, emp employee.Employee) (decimal.Decimal, error) {
	used, err := s.usedFromTransactions(ctx, emp.ID, nil)
	if err != nil {
		return decimal.Zero, err
	}
	return emp.Salary.Sub(used), nil
}

func toResponses(advances []advance.Advance) []advance.AdvanceResponse {
	responses := make([]advance.AdvanceResponse, 0, len(advances))
	for _, adv := range advances {
		responses = append(responses, advance.ToResponse(adv))
	}
	return responses
}

func clampAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func NewAdvanceService(
	txm database.TxManager,
	policy config.OverdraftPolicy,
	advanceRepo advance.AdvanceRepository,
	employeeRepo employee.EmployeeRepository,
	billRepo bill.BillRepository,
	notificationService notification.NotificationService,
) advance.AdvanceService {
	return &AdvanceServiceImpl{
		txm:                txm,
		policy:             policy,
		AdvanceRepository:  advanceRepo,
		EmployeeRepository: employeeRepo,
		BillRepository:     billRepo,
		notifications:      notificationService,
	}
}
