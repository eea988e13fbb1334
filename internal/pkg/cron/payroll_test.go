package cron

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/repository/memory"
	attendanceService "github.com/salarydesk/salary-backend-go/internal/service/attendance"
	notificationService "github.com/salarydesk/salary-backend-go/internal/service/notification"
	salaryService "github.com/salarydesk/salary-backend-go/internal/service/salary"
)

type payrollTestEnv struct {
	employeeRepo     *memory.EmployeeRepository
	advanceRepo      *memory.AdvanceRepository
	notificationRepo *memory.NotificationRepository
	jobs             *PayrollJobs
}

func newPayrollTestEnv() *payrollTestEnv {
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	billRepo := memory.NewBillRepository(store)
	advanceRepo := memory.NewAdvanceRepository(store)
	offDayRepo := memory.NewOffDayRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)

	jobs := NewPayrollJobs(
		salaryService.NewSalaryService(store, employeeRepo, billRepo, advanceRepo),
		attendanceService.NewAttendanceService(employeeRepo, offDayRepo),
		advanceRepo,
		employeeRepo,
		notificationService.NewNotificationService(notificationRepo),
	)
	return &payrollTestEnv{
		employeeRepo:     employeeRepo,
		advanceRepo:      advanceRepo,
		notificationRepo: notificationRepo,
		jobs:             jobs,
	}
}

func (e *payrollTestEnv) createEmployee(t *testing.T, salary, used string, daysThisMonth int) employee.Employee {
	t.Helper()
	now := time.Now().UTC()
	emp, err := e.employeeRepo.Create(context.Background(), employee.Employee{
		ID:                  uuid.NewString(),
		FirstName:           "Test",
		LastName:            "Staff",
		Role:                employee.RoleStaff,
		Salary:              decimal.RequireFromString(salary),
		PhoneNumber:         uuid.NewString(),
		EmploymentStartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DaysWorkedThisMonth: daysThisMonth,
		TotalDaysWorked:     daysThisMonth,
		UsedSalary:          decimal.RequireFromString(used),
		CreatedAt:           now,
		UpdatedAt:           now,
	})
	require.NoError(t, err)
	return emp
}

func (e *payrollTestEnv) createAdmin(t *testing.T) employee.Employee {
	t.Helper()
	now := time.Now().UTC()
	emp, err := e.employeeRepo.Create(context.Background(), employee.Employee{
		ID:                  uuid.NewString(),
		FirstName:           "Test",
		LastName:            "Admin",
		Role:                employee.RoleAdmin,
		Salary:              decimal.RequireFromString("3000"),
		PhoneNumber:         uuid.NewString(),
		EmploymentStartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UsedSalary:          decimal.Zero,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
	require.NoError(t, err)
	return emp
}

func TestDailySweep_OnlyRunsAtMidnight(t *testing.T) {
	env := newPayrollTestEnv()
	emp := env.createEmployee(t, "1000", "0", 0)

	env.jobs.now = func() time.Time {
		return time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	}
	require.NoError(t, env.jobs.DailySweep(context.Background()))

	stored, err := env.employeeRepo.GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.DaysWorkedThisMonth, "sweep must not run outside the midnight window")
	assert.Nil(t, stored.LastAttendanceDate)
}

func TestDailySweep_MidnightCountsTheDay(t *testing.T) {
	env := newPayrollTestEnv()
	emp := env.createEmployee(t, "1000", "0", 0)

	env.jobs.now = func() time.Time {
		return time.Date(2025, 6, 10, 0, 5, 0, 0, time.UTC)
	}
	require.NoError(t, env.jobs.DailySweep(context.Background()))

	stored, err := env.employeeRepo.GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.DaysWorkedThisMonth)
	require.NotNil(t, stored.LastAttendanceDate)
	assert.Equal(t, 10, stored.LastAttendanceDate.Day())
}

func TestRunForDate_FirstOfMonthRollsOverBeforeSweeping(t *testing.T) {
	env := newPayrollTestEnv()
	ctx := context.Background()
	overdrawn := env.createEmployee(t, "1000", "1200", 20)
	inCredit := env.createEmployee(t, "1000", "300", 18)

	firstOfMonth := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.jobs.RunForDate(ctx, firstOfMonth))

	stored, err := env.employeeRepo.GetByID(ctx, overdrawn.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.Equal(decimal.RequireFromString("200")), "debt carries forward, got %s", stored.UsedSalary)
	assert.Equal(t, 1, stored.DaysWorkedThisMonth, "counter reset then swept for the 1st")

	stored, err = env.employeeRepo.GetByID(ctx, inCredit.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.IsZero(), "unused balance resets")
	assert.Equal(t, 1, stored.DaysWorkedThisMonth)
}

func TestRunForDate_MidMonthSweepsOnly(t *testing.T) {
	env := newPayrollTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "1000", "1200", 5)

	require.NoError(t, env.jobs.RunForDate(ctx, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)))

	stored, err := env.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.Equal(decimal.RequireFromString("1200")), "rollover must not run mid-month")
	assert.Equal(t, 6, stored.DaysWorkedThisMonth)
}

func TestRunForDate_RecordsPendingDigestForAdmins(t *testing.T) {
	env := newPayrollTestEnv()
	ctx := context.Background()
	admin := env.createAdmin(t)
	staff := env.createEmployee(t, "1000", "0", 0)

	_, err := env.advanceRepo.Create(ctx, advance.Advance{
		ID:         uuid.NewString(),
		EmployeeID: staff.ID,
		Amount:     decimal.RequireFromString("100"),
		Status:     advance.StatusPending,
		CreatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, env.jobs.RunForDate(ctx, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)))

	notes, err := env.notificationRepo.ListByEmployee(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Message, "1 advance request")

	staffNotes, err := env.notificationRepo.ListByEmployee(ctx, staff.ID)
	require.NoError(t, err)
	assert.Empty(t, staffNotes, "only admins get the digest")
}

func TestRunForDate_NoPendingNoDigest(t *testing.T) {
	env := newPayrollTestEnv()
	ctx := context.Background()
	admin := env.createAdmin(t)

	require.NoError(t, env.jobs.RunForDate(ctx, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)))

	notes, err := env.notificationRepo.ListByEmployee(ctx, admin.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
