package offday

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/domain/offday"
)

type OffDayServiceImpl struct {
	offday.OffDayRepository
	employee.EmployeeRepository
}

// Request implements offday.OffDayService.
func (s *OffDayServiceImpl) Request(ctx context.Context, req offday.RequestOffDayRequest) (offday.OffDayResponse, error) {
	if err := req.Validate(); err != nil {
		return offday.OffDayResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return offday.OffDayResponse{}, err
	}

	now := time.Now().UTC()

	created, err := s.OffDayRepository.Create(ctx, offday.OffDay{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		Date:       req.DateValue(),
		DayCount:   req.DayCount,
		OffType:    offday.OffType(req.OffType),
		Reason:     req.Reason,
		Status:     offday.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return offday.OffDayResponse{}, fmt.Errorf("failed to create off day: %w", err)
	}

	name := emp.FullName()
	created.EmployeeName = &name
	return offday.ToResponse(created), nil
}

// Decide implements offday.OffDayService.
func (s *OffDayServiceImpl) Decide(ctx context.Context, offDayID string, req offday.DecideOffDayRequest) (offday.OffDayResponse, error) {
	admin, err := s.EmployeeRepository.GetByID(ctx, req.AdminID)
	if err != nil {
		return offday.OffDayResponse{}, employee.ErrAdminNotFound
	}
	if admin.Role != employee.RoleAdmin {
		return offday.OffDayResponse{}, employee.ErrAdminOnly
	}

	o, err := s.OffDayRepository.GetByID(ctx, offDayID)
	if err != nil {
		return offday.OffDayResponse{}, err
	}
	if o.Status.Decided() {
		return offday.OffDayResponse{}, offday.ErrAlreadyDecided
	}

	status := offday.StatusDenied
	if req.Approved {
		status = offday.StatusApproved
	}
	if err := s.OffDayRepository.UpdateStatus(ctx, o.ID, status); err != nil {
		return offday.OffDayResponse{}, fmt.Errorf("failed to store decision: %w", err)
	}
	o.Status = status

	return offday.ToResponse(o), nil
}

// ListAll implements offday.OffDayService.
func (s *OffDayServiceImpl) ListAll(ctx context.Context) ([]offday.OffDayResponse, error) {
	offDays, err := s.OffDayRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list off days: %w", err)
	}
	return toResponses(offDays), nil
}

// ListByEmployee implements offday.OffDayService.
func (s *OffDayServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]offday.OffDayResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	offDays, err := s.OffDayRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list off days: %w", err)
	}
	return toResponses(offDays), nil
}

func toResponses(offDays []offday.OffDay) []offday.OffDayResponse {
	responses := make([]offday.OffDayResponse, 0, len(offDays))
	for _, o := range offDays {
		responses = append(responses, offday.ToResponse(o))
	}
	return responses
}

func NewOffDayService(
	offDayRepo offday.OffDayRepository,
	employeeRepo employee.EmployeeRepository,
) offday.OffDayService {
	return &OffDayServiceImpl{
		OffDayRepository:   offDayRepo,
		EmployeeRepository: employeeRepo,
	}
}
