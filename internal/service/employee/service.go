package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	now := time.Now().UTC()
	startDate := now.Truncate(24 * time.Hour)
	if d := req.StartDateValue(); d != nil {
		startDate = *d
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		ID:                  uuid.NewString(),
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Role:                employee.Role(req.Role),
		Salary:              req.Salary,
		PhoneNumber:         req.PhoneNumber,
		EmploymentStartDate: startDate,
		UsedSalary:          decimal.Zero,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}
