package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/domain/payment"
	"github.com/salarydesk/salary-backend-go/internal/repository/memory"
)

type paymentTestEnv struct {
	store        *memory.Store
	employeeRepo *memory.EmployeeRepository
	billRepo     *memory.BillRepository
	paymentRepo  *memory.SalaryPaymentRepository
	service      payment.PaymentService
}

func newPaymentTestEnv() *paymentTestEnv {
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	billRepo := memory.NewBillRepository(store)
	advanceRepo := memory.NewAdvanceRepository(store)
	paymentRepo := memory.NewSalaryPaymentRepository(store)
	return &paymentTestEnv{
		store:        store,
		employeeRepo: employeeRepo,
		billRepo:     billRepo,
		paymentRepo:  paymentRepo,
		service:      NewPaymentService(store, paymentRepo, employeeRepo, billRepo, advanceRepo),
	}
}

func (e *paymentTestEnv) createEmployee(t *testing.T, role employee.Role, salary, used string) employee.Employee {
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
		UsedSalary:          decimal.RequireFromString(used),
		CreatedAt:           now,
		UpdatedAt:           now,
	})
	require.NoError(t, err)
	return emp
}

func (e *paymentTestEnv) addBill(t *testing.T, employeeID, amount string) {
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

func TestRecord_DefaultsToPayableRemaining(t *testing.T) {
	env := newPaymentTestEnv()
	ctx := context.Background()
	admin := env.createEmployee(t, employee.RoleAdmin, "3000", "0")
	staff := env.createEmployee(t, employee.RoleStaff, "1000", "0")
	env.addBill(t, staff.ID, "400")

	resp, err := env.service.Record(ctx, payment.RecordPaymentRequest{
		EmployeeID: staff.ID,
		AdminID:    admin.ID,
	})
	require.NoError(t, err)
	assert.True(t, resp.AmountPaid.Equal(decimal.RequireFromString("600")), "got %s", resp.AmountPaid)

	stored, err := env.employeeRepo.GetByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.IsZero(), "payout settles the ledger")
}

func TestRecord_OverdrawnDefaultsToZero(t *testing.T) {
	env := newPaymentTestEnv()
	ctx := context.Background()
	admin := env.createEmployee(t, employee.RoleAdmin, "3000", "0")
	staff := env.createEmployee(t, employee.RoleStaff, "500", "0")
	env.addBill(t, staff.ID, "700")

	resp, err := env.service.Record(ctx, payment.RecordPaymentRequest{
		EmployeeID: staff.ID,
		AdminID:    admin.ID,
	})
	require.NoError(t, err)
	assert.True(t, resp.AmountPaid.IsZero())

	// Even a zero payout clears the debt.
	stored, err := env.employeeRepo.GetByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.True(t, stored.UsedSalary.IsZero())
}

func TestRecord_ExplicitAmount(t *testing.T) {
	env := newPaymentTestEnv()
	ctx := context.Background()
	admin := env.createEmployee(t, employee.RoleAdmin, "3000", "0")
	staff := env.createEmployee(t, employee.RoleStaff, "1000", "0")

	amount := decimal.RequireFromString("123.45")
	resp, err := env.service.Record(ctx, payment.RecordPaymentRequest{
		EmployeeID: staff.ID,
		AdminID:    admin.ID,
		Amount:     &amount,
	})
	require.NoError(t, err)
	assert.True(t, resp.AmountPaid.Equal(amount))
}

func TestRecord_ExplicitPaymentDate(t *testing.T) {
	env := newPaymentTestEnv()
	admin := env.createEmployee(t, employee.RoleAdmin, "3000", "0")
	staff := env.createEmployee(t, employee.RoleStaff, "1000", "0")

	paidOn := "2025-03-01"
	resp, err := env.service.Record(context.Background(), payment.RecordPaymentRequest{
		EmployeeID:  staff.ID,
		AdminID:     admin.ID,
		PaymentDate: &paidOn,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", resp.PaymentDate)
}

func TestRecord_RequiresAdmin(t *testing.T) {
	env := newPaymentTestEnv()
	manager := env.createEmployee(t, employee.RoleManager, "2000", "0")
	staff := env.createEmployee(t, employee.RoleStaff, "1000", "0")

	_, err := env.service.Record(context.Background(), payment.RecordPaymentRequest{
		EmployeeID: staff.ID,
		AdminID:    manager.ID,
	})
	assert.ErrorIs(t, err, payment.ErrAdminOnly)
}

func TestListByEmployee(t *testing.T) {
	env := newPaymentTestEnv()
	ctx := context.Background()
	admin := env.createEmployee(t, employee.RoleAdmin, "3000", "0")
	staff := env.createEmployee(t, employee.RoleStaff, "1000", "0")

	for i := 0; i < 2; i++ {
		_, err := env.service.Record(ctx, payment.RecordPaymentRequest{
			EmployeeID: staff.ID,
			AdminID:    admin.ID,
		})
		require.NoError(t, err)
	}

	payments, err := env.service.ListByEmployee(ctx, staff.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}
