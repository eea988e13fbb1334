package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/pkg/validator"
	"github.com/salarydesk/salary-backend-go/internal/repository/memory"
)

func newEmployeeTestService() employee.EmployeeService {
	return NewEmployeeService(memory.NewEmployeeRepository(memory.NewStore()))
}

func validCreateRequest(phone string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:   "Alice",
		LastName:    "Smith",
		Role:        string(employee.RoleStaff),
		Salary:      decimal.RequireFromString("1500"),
		PhoneNumber: phone,
	}
}

func TestCreate_DefaultsStartDateToToday(t *testing.T) {
	svc := newEmployeeTestService()

	resp, err := svc.Create(context.Background(), validCreateRequest("+628111111111"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.EmploymentStartDate)
	assert.Equal(t, 0, resp.DaysWorkedThisMonth)
}

func TestCreate_ExplicitStartDate(t *testing.T) {
	svc := newEmployeeTestService()

	req := validCreateRequest("+628111111112")
	start := "2025-01-15"
	req.EmploymentStartDate = &start

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", resp.EmploymentStartDate)
}

func TestCreate_RejectsAdminRole(t *testing.T) {
	svc := newEmployeeTestService()

	req := validCreateRequest("+628111111113")
	req.Role = string(employee.RoleAdmin)

	_, err := svc.Create(context.Background(), req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestCreate_DuplicatePhoneNumber(t *testing.T) {
	svc := newEmployeeTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest("+628111111114"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreateRequest("+628111111114"))
	assert.ErrorIs(t, err, employee.ErrPhoneNumberExists)
}

func TestList_ReturnsAllCreated(t *testing.T) {
	svc := newEmployeeTestService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, validCreateRequest(fmt.Sprintf("+62811111112%d", i)))
		require.NoError(t, err)
	}

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newEmployeeTestService()

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
