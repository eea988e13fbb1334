package bill

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salarydesk/salary-backend-go/internal/config"
	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/repository/memory"
)

type billTestEnv struct {
	store        *memory.Store
	employeeRepo *memory.EmployeeRepository
	billRepo     *memory.BillRepository
	service      bill.BillService
}

func newBillTestEnv(policy config.OverdraftPolicy) *billTestEnv {
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	billRepo := memory.NewBillRepository(store)
	advanceRepo := memory.NewAdvanceRepository(store)
	return &billTestEnv{
		store:        store,
		employeeRepo: employeeRepo,
		billRepo:     billRepo,
		service:      NewBillService(store, policy, billRepo, employeeRepo, advanceRepo),
	}
}

func (e *billTestEnv) createEmployee(t *testing.T, role employee.Role, salary string) employee.Employee {
	t.Helper()
	now := time.Now().UTC()
	emp, err := e.employeeRepo.Create(context.Background(), employee.Employee{
		ID:                  uuid.NewString(),
		FirstName:           "Test",
		LastName:            string(role),
		Role:                role,
		Salary:              decimal.RequireFromString(salary),
		PhoneNumber:         uuid.NewString(),
		EmploymentStartDate: now.AddDate(-1, 0, 0),
		UsedSalary:          decimal.Zero,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
	require.NoError(t, err)
	return emp
}

func TestRecord_ChargesBalance(t *testing.T) {
	env := newBillTestEnv(config.PolicyWarn)
	ctx := context.Background()
	manager := env.createEmployee(t, employee.RoleManager, "2000")
	staff := env.createEmployee(t, employee.RoleStaff, "1000")

	result, err := env.service.Record(ctx, bill.CreateBillRequest{
		RecorderID: manager.ID,
		EmployeeID: staff.ID,
		Amount:     decimal.RequireFromString("250"),
		Date:       "2025-06-10",
	})
	require.NoError(t, err)
	assert.Nil(t, result.Warning)
	assert.Equal(t, staff.ID, result.Bill.EmployeeID)
	assert.Equal(t, "2025-06-10", result.Bill.Date)

	stored, err := env.employeeRepo.GetByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.Equal(decimal.RequireFromString("250")))
}

func TestRecord_StaffCannotRecord(t *testing.T) {
	env := newBillTestEnv(config.PolicyWarn)
	staff := env.createEmployee(t, employee.RoleStaff, "1000")
	other := env.createEmployee(t, employee.RoleStaff, "1000")

	_, err := env.service.Record(context.Background(), bill.CreateBillRequest{
		RecorderID: staff.ID,
		EmployeeID: other.ID,
		Amount:     decimal.RequireFromString("10"),
		Date:       "2025-06-10",
	})
	assert.ErrorIs(t, err, bill.ErrManagerOrAdminOnly)
}

func TestRecord_ManagerCannotBillSelf(t *testing.T) {
	env := newBillTestEnv(config.PolicyWarn)
	manager := env.createEmployee(t, employee.RoleManager, "2000")

	_, err := env.service.Record(context.Background(), bill.CreateBillRequest{
		RecorderID: manager.ID,
		EmployeeID: manager.ID,
		Amount:     decimal.RequireFromString("10"),
		Date:       "2025-06-10",
	})
	assert.ErrorIs(t, err, bill.ErrCannotBillSelf)
}

func TestRecord_AdminMayBillSelf(t *testing.T) {
	env := newBillTestEnv(config.PolicyWarn)
	admin := env.createEmployee(t, employee.RoleAdmin, "3000")

	result, err := env.service.Record(context.Background(), bill.CreateBillRequest{
		RecorderID: admin.ID,
		EmployeeID: admin.ID,
		Amount:     decimal.RequireFromString("100"),
		Date:       "2025-06-10",
	})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, result.Bill.EmployeeID)
}

func TestRecord_WarnPolicySurfacesOverdraft(t *testing.T) {
	env := newBillTestEnv(config.PolicyWarn)
	ctx := context.Background()
	manager := env.createEmployee(t, employee.RoleManager, "2000")
	staff := env.createEmployee(t, employee.RoleStaff, "500")

	result, err := env.service.Record(ctx, bill.CreateBillRequest{
		RecorderID: manager.ID,
		EmployeeID: staff.ID,
		Amount:     decimal.RequireFromString("600"),
		Date:       "2025-06-10",
	})
	require.NoError(t, err, "warn policy still records the bill")
	require.NotNil(t, result.Warning)
	assert.Contains(t, *result.Warning, "600.00")

	stored, err := env.employeeRepo.GetByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.Equal(decimal.RequireFromString("600")))

	bills, err := env.billRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bills, 1)
}

func TestRecord_StrictPolicyRejectsOverdraft(t *testing.T) {
	env := newBillTestEnv(config.PolicyStrict)
	ctx := context.Background()
	manager := env.createEmployee(t, employee.RoleManager, "2000")
	staff := env.createEmployee(t, employee.RoleStaff, "500")

	_, err := env.service.Record(ctx, bill.CreateBillRequest{
		RecorderID: manager.ID,
		EmployeeID: staff.ID,
		Amount:     decimal.RequireFromString("600"),
		Date:       "2025-06-10",
	})
	assert.ErrorIs(t, err, bill.ErrExceedsSalary)

	bills, err := env.billRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, bills, "rejected bill must not be recorded")

	stored, err := env.employeeRepo.GetByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.IsZero())
}

func TestListRecentByRecorder_Limits(t *testing.T) {
	env := newBillTestEnv(config.PolicyWarn)
	ctx := context.Background()
	manager := env.createEmployee(t, employee.RoleManager, "2000")
	staff := env.createEmployee(t, employee.RoleStaff, "10000")

	for i := 0; i < 5; i++ {
		_, err := env.service.Record(ctx, bill.CreateBillRequest{
			RecorderID: manager.ID,
			EmployeeID: staff.ID,
			Amount:     decimal.RequireFromString("10"),
			Date:       "2025-06-10",
		})
		require.NoError(t, err)
	}

	recent, err := env.service.ListRecentByRecorder(ctx, manager.ID, 3)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}
