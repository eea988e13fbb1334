package salary

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	domainSalary "github.com/salarydesk/salary-backend-go/internal/domain/salary"
	"github.com/salarydesk/salary-backend-go/internal/repository/memory"
)

type salaryTestEnv struct {
	store        *memory.Store
	employeeRepo *memory.EmployeeRepository
	billRepo     *memory.BillRepository
	advanceRepo  *memory.AdvanceRepository
	service      domainSalary.SalaryService
}

func newSalaryTestEnv() *salaryTestEnv {
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	billRepo := memory.NewBillRepository(store)
	advanceRepo := memory.NewAdvanceRepository(store)
	return &salaryTestEnv{
		store:        store,
		employeeRepo: employeeRepo,
		billRepo:     billRepo,
		advanceRepo:  advanceRepo,
		service:      NewSalaryService(store, employeeRepo, billRepo, advanceRepo),
	}
}

func (e *salaryTestEnv) createEmployee(t *testing.T, salary string, used string) employee.Employee {
	t.Helper()
	now := time.Now().UTC()
	emp, err := e.employeeRepo.Create(context.Background(), employee.Employee{
		ID:                  uuid.NewString(),
		FirstName:           "Test",
		LastName:            "Employee",
		Role:                employee.RoleStaff,
		Salary:              decimal.RequireFromString(salary),
		PhoneNumber:         uuid.NewString(),
		EmploymentStartDate: now.AddDate(-1, 0, 0),
		UsedSalary:          decimal.RequireFromString(used),
		CreatedAt:           now,
		UpdatedAt:           now,
	})
	require.NoError(t, err)
	return emp
}

func (e *salaryTestEnv) addBill(t *testing.T, employeeID, amount string) {
	t.Helper()
	_, err := e.billRepo.Create(context.Background(), bill.Bill{
		ID:               uuid.NewString(),
		BilledEmployeeID: employeeID,
		RecordedByID:     uuid.NewString(),
		Amount:           decimal.RequireFromString(amount),
		Date:             time.Now().UTC(),
		CreatedAt:        time.Now().UTC(),
	})
	require.NoError(t, err)
}

func (e *salaryTestEnv) addAdvance(t *testing.T, employeeID, amount string, status advance.Status) {
	t.Helper()
	_, err := e.advanceRepo.Create(context.Background(), advance.Advance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Amount:     decimal.RequireFromString(amount),
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestUsedSalary_SumsBillsAndApprovedAdvances(t *testing.T) {
	env := newSalaryTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "1000", "0")

	env.addBill(t, emp.ID, "400")
	env.addAdvance(t, emp.ID, "300", advance.StatusApproved)
	// Pending and denied advances must not count.
	env.addAdvance(t, emp.ID, "150", advance.StatusPending)
	env.addAdvance(t, emp.ID, "75", advance.StatusDenied)

	used, err := env.service.UsedSalary(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, used.Equal(decimal.RequireFromString("700")), "got %s", used)

	remaining, err := env.service.RemainingSalary(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, remaining.Equal(decimal.RequireFromString("300")), "got %s", remaining)
}

func TestRemainingSalary_GoesNegativeOnOverdraft(t *testing.T) {
	env := newSalaryTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "1000", "0")

	env.addBill(t, emp.ID, "1200")

	remaining, err := env.service.RemainingSalary(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, remaining.Equal(decimal.RequireFromString("-200")), "got %s", remaining)

	payable, err := env.service.PayableRemaining(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, payable.IsZero(), "got %s", payable)
}

func TestUsedSalary_UnknownEmployee(t *testing.T) {
	env := newSalaryTestEnv()

	_, err := env.service.UsedSalary(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRefreshUsedSalary_StoresRecomputedValue(t *testing.T) {
	env := newSalaryTestEnv()
	ctx := context.Background()
	// Stored cache is stale on purpose.
	emp := env.createEmployee(t, "1000", "999")

	env.addBill(t, emp.ID, "250")

	used, err := env.service.RefreshUsedSalary(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, used.Equal(decimal.RequireFromString("250")))

	stored, err := env.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.Equal(decimal.RequireFromString("250")))
}

func TestSummary_ReportsOverdraft(t *testing.T) {
	env := newSalaryTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "500", "0")

	env.addBill(t, emp.ID, "600")

	summary, err := env.service.Summary(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, summary.UsedSalary.Equal(decimal.RequireFromString("600")))
	assert.True(t, summary.RemainingSalary.Equal(decimal.RequireFromString("-100")))
	assert.True(t, summary.PayableSalary.IsZero())
	assert.True(t, summary.Overdrawn)
}

func TestRolloverMonthly_NoopOffTheFirst(t *testing.T) {
	env := newSalaryTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "1000", "300")

	stats, err := env.service.RolloverMonthly(ctx, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, domainSalary.RolloverStats{}, stats)

	stored, err := env.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.Equal(decimal.RequireFromString("300")), "balance must not move")
}

func TestRolloverMonthly_CarriesDebtForward(t *testing.T) {
	env := newSalaryTestEnv()
	ctx := context.Background()
	overdrawn := env.createEmployee(t, "1000", "1200")
	positive := env.createEmployee(t, "1000", "300")
	untouched := env.createEmployee(t, "1000", "0")

	stats, err := env.service.RolloverMonthly(ctx, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CarriedForward)
	assert.Equal(t, 1, stats.ResetToZero)
	assert.Equal(t, 2, stats.TotalReset)

	stored, err := env.employeeRepo.GetByID(ctx, overdrawn.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.Equal(decimal.RequireFromString("200")), "debt beyond one salary carries, got %s", stored.UsedSalary)

	stored, err = env.employeeRepo.GetByID(ctx, positive.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.IsZero())

	stored, err = env.employeeRepo.GetByID(ctx, untouched.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.IsZero())
}
