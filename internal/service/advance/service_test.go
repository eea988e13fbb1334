package advance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salarydesk/salary-backend-go/internal/config"
	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/repository/memory"
	notificationService "github.com/salarydesk/salary-backend-go/internal/service/notification"
)

type advanceTestEnv struct {
	store            *memory.Store
	employeeRepo     *memory.EmployeeRepository
	advanceRepo      *memory.AdvanceRepository
	billRepo         *memory.BillRepository
	notificationRepo *memory.NotificationRepository
	service          advance.AdvanceService
}

func newAdvanceTestEnv(policy config.OverdraftPolicy) *advanceTestEnv {
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	advanceRepo := memory.NewAdvanceRepository(store)
	billRepo := memory.NewBillRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	return &advanceTestEnv{
		store:            store,
		employeeRepo:     employeeRepo,
		advanceRepo:      advanceRepo,
		billRepo:         billRepo,
		notificationRepo: notificationRepo,
		service:          NewAdvanceService(store, policy, advanceRepo, employeeRepo, billRepo, notificationSvc),
	}
}

func (e *advanceTestEnv) createEmployee(t *testing.T, role employee.Role, salary string) employee.Employee {
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

func (e *advanceTestEnv) addBill(t *testing.T, employeeID, amount string) {
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

func (e *advanceTestEnv) pendingAdvance(t *testing.T, employeeID, amount string) advance.Advance {
	t.Helper()
	adv, err := e.advanceRepo.Create(context.Background(), advance.Advance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Amount:     decimal.RequireFromString(amount),
		Status:     advance.StatusPending,
		CreatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
	return adv
}

func TestRequest_CreatesPendingAdvance(t *testing.T) {
	env := newAdvanceTestEnv(config.PolicyStrict)
	emp := env.createEmployee(t, employee.RoleStaff, "1000")

	resp, err := env.service.Request(context.Background(), advance.RequestAdvanceRequest{
		EmployeeID: emp.ID,
		Amount:     decimal.RequireFromString("200"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(advance.StatusPending), resp.Status)
	assert.Equal(t, emp.ID, resp.EmployeeID)
}

func TestRequest_AdminCannotRequest(t *testing.T) {
	env := newAdvanceTestEnv(config.PolicyStrict)
	admin := env.createEmployee(t, employee.RoleAdmin, "1000")

	_, err := env.service.Request(context.Background(), advance.RequestAdvanceRequest{
		EmployeeID: admin.ID,
		Amount:     decimal.RequireFromString("200"),
	})
	assert.ErrorIs(t, err, advance.ErrStaffOrManagerOnly)
}

func TestRequest_RejectedWhenNothingRemains(t *testing.T) {
	env := newAdvanceTestEnv(config.PolicyStrict)
	emp := env.createEmployee(t, employee.RoleStaff, "500")
	env.addBill(t, emp.ID, "500")

	_, err := env.service.Request(context.Background(), advance.RequestAdvanceRequest{
		EmployeeID: emp.ID,
		Amount:     decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, advance.ErrNoRemainingSalary)
}

func TestRequest_RejectedWhenAmountExceedsRemaining(t *testing.T) {
	env := newAdvanceTestEnv(config.PolicyStrict)
	emp := env.createEmployee(t, employee.RoleStaff, "1000")
	env.addBill(t, emp.ID, "800")

	_, err := env.service.Request(context.Background(), advance.RequestAdvanceRequest{
		EmployeeID: emp.ID,
		Amount:     decimal.RequireFromString("300"),
	})
	assert.ErrorIs(t, err, advance.ErrExceedsRemaining)
}

func TestRequest_WarnPolicySkipsBalanceChecks(t *testing.T) {
	env := newAdvanceTestEnv(config.PolicyWarn)
	emp := env.createEmployee(t, employee.RoleStaff, "500")
	env.addBill(t, emp.ID, "500")

	resp, err := env.service.Request(context.Background(), advance.RequestAdvanceRequest{
		EmployeeID: emp.ID,
		Amount:     decimal.RequireFromString("100"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(advance.StatusPending), resp.Status)
}

func TestDecide_ApproveUpdatesLedger(t *testing.T) {
	env := newAdvanceTestEnv(config.PolicyStrict)
	ctx := context.Background()
	admin := env.createEmployee(t, employee.RoleAdmin, "1000")
	emp := env.createEmployee(t, employee.RoleStaff, "1000")
	env.addBill(t, emp.ID, "400")
	adv := env.pendingAdvance(t, emp.ID, "300")

	resp, err := env.service.Decide(ctx, adv.ID, advance.DecideAdvanceRequest{
		AdminID:  admin.ID,
		Approved: true,
	})
	require.NoError(t, err)
	assert.Equal(t, string(advance.StatusApproved), resp.Status)
	assert.NotNil(t, resp.ApprovedAt)

	stored, err := env.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.Equal(decimal.RequireFromString("700")), "cache refreshed, got %s", stored.UsedSalary)

	notifications, err := env.notificationRepo.ListByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Title, "approved")
}

func TestDecide_AutoDeniesBeyondRemaining(t *testing.T) {
	env := newAdvanceTestEnv(config.PolicyStrict)
	ctx := context.Background()
	admin := env.createEmployee(t, employee.RoleAdmin, "1000")
	emp := env.createEmployee(t, employee.RoleStaff, "1000")
	env.addBill(t, emp.ID, "400")
	env.pendingAdvance(t, emp.ID, "300")

	// Approve the 300 first; used becomes 700, remaining 300.
	pending, err := env.advanceRepo.ListPending(ctx)
	require.NoError(t, err)
	_, err = env.service.Decide(ctx, pending[0].ID, advance.DecideAdvanceRequest{AdminID: admin.ID, Approved: true})
	require.NoError(t, err)

	// 400 against a remaining of 300: the approval comes back as a denial.
	adv := env.pendingAdvance(t, emp.ID, "400")
	resp, err := env.service.Decide(ctx, adv.ID, advance.DecideAdvanceRequest{AdminID: admin.ID, Approved: true})
	require.NoError(t, err, "auto-denial is a decision, not an error")
	assert.Equal(t, string(advance.StatusDenied), resp.Status)
	require.NotNil(t, resp.ApprovalNotes)
	assert.Contains(t, *resp.ApprovalNotes, "[AUTO-REJECTED:")

	// The denial must leave the ledger untouched.
	stored, err := env.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.Equal(decimal.RequireFromString("700")))
}

func TestDecide_AutoDenyKeepsAdminNotes(t *testing.T) {
	env := newAdvanceTestEnv(config.PolicyStrict)
	ctx := context.Background()
	admin := env.createEmployee(t, employee.RoleAdmin, "1000")
	emp := env.createEmployee(t, employee.RoleStaff, "500")
	env.addBill(t, emp.ID, "500")
	adv := env.pendingAdvance(t, emp.ID, "100")

	notes := "looks fine to me"
	resp, err := env.service.Decide(ctx, adv.ID, advance.DecideAdvanceRequest{
		AdminID:  admin.ID,
		Approved: true,
		Notes:    &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, string(advance.StatusDenied), resp.Status)
	require.NotNil(t, resp.ApprovalNotes)
	assert.Contains(t, *resp.ApprovalNotes, notes)
	assert.Contains(t, *resp.ApprovalNotes, "[AUTO-REJECTED:")
}

func TestDecide_ManualDenial(t *testing.T) {
	env := newAdvanceTestEnv(config.PolicyStrict)
	ctx := context.Background()
	admin := env.createEmployee(t, employee.RoleAdmin, "1000")
	emp := env.createEmployee(t, employee.RoleStaff, "1000")
	adv := env.pendingAdvance(t, emp.ID, "100")

	notes := "not this month"
	resp, err := env.service.Decide(ctx, adv.ID, advance.DecideAdvanceRequest{
		AdminID:  admin.ID,
		Approved: false,
		Notes:    &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, string(advance.StatusDenied), resp.Status)
	require.NotNil(t, resp.ApprovalNotes)
	assert.Equal(t, notes, *resp.ApprovalNotes)

	stored, err := env.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.IsZero(), "denial must not touch the ledger")
}

func TestDecide_AlreadyDecided(t *testing.T) {
	env := newAdvanceTestEnv(config.PolicyStrict)
	ctx := context.Background()
	admin := env.createEmployee(t, employee.RoleAdmin, "1000")
	emp := env.createEmployee(t, employee.RoleStaff, "1000")
	adv := env.pendingAdvance(t, emp.ID, "100")

	_, err := env.service.Decide(ctx, adv.ID, advance.DecideAdvanceRequest{AdminID: admin.ID, Approved: true})
	require.NoError(t, err)

	_, err = env.service.Decide(ctx, adv.ID, advance.DecideAdvanceRequest{AdminID: admin.ID, Approved: false})
	assert.ErrorIs(t, err, advance.ErrAlreadyDecided)
}

func TestUpdateDecision_TerminalStatusSticks(t *testing.T) {
	env := newAdvanceTestEnv(config.PolicyStrict)
	ctx := context.Background()
	admin := env.createEmployee(t, employee.RoleAdmin, "1000")
	emp := env.createEmployee(t, employee.RoleStaff, "1000")
	adv := env.pendingAdvance(t, emp.ID, "100")

	_, err := env.service.Decide(ctx, adv.ID, advance.DecideAdvanceRequest{AdminID: admin.ID, Approved: true})
	require.NoError(t, err)

	// A writer still holding a pending snapshot must not flip the decision.
	stale := adv
	stale.Status = advance.StatusDenied
	err = env.advanceRepo.UpdateDecision(ctx, stale)
	assert.ErrorIs(t, err, advance.ErrAlreadyDecided)

	stored, err := env.advanceRepo.GetByID(ctx, adv.ID)
	require.NoError(t, err)
	assert.Equal(t, advance.StatusApproved, stored.Status)
}

func TestDecide_RequiresAdmin(t *testing.T) {
	env := newAdvanceTestEnv(config.PolicyStrict)
	ctx := context.Background()
	manager := env.createEmployee(t, employee.RoleManager, "1000")
	emp := env.createEmployee(t, employee.RoleStaff, "1000")
	adv := env.pendingAdvance(t, emp.ID, "100")

	_, err := env.service.Decide(ctx, adv.ID, advance.DecideAdvanceRequest{AdminID: manager.ID, Approved: true})
	assert.ErrorIs(t, err, employee.ErrAdminOnly)

	stored, err := env.advanceRepo.GetByID(ctx, adv.ID)
	require.NoError(t, err)
	assert.Equal(t, advance.StatusPending, stored.Status)
}
