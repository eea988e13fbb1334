package memory

import (
	"context"

	"github.com/salarydesk/salary-backend-go/internal/domain/payment"
)

type SalaryPaymentRepository struct {
	store *Store
}

func NewSalaryPaymentRepository(store *Store) *SalaryPaymentRepository {
	return &SalaryPaymentRepository{store: store}
}

func (r *SalaryPaymentRepository) Create(ctx context.Context, p payment.SalaryPayment) (payment.SalaryPayment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.payments[p.ID] = p
	r.store.paymentOrder = append(r.store.paymentOrder, p.ID)
	return p, nil
}

func (r *SalaryPaymentRepository) GetByID(ctx context.Context, id string) (payment.SalaryPayment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.payments[id]
	if !ok {
		return payment.SalaryPayment{}, payment.ErrPaymentNotFound
	}
	return p, nil
}

func (r *SalaryPaymentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payment.SalaryPayment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.listLocked(func(p payment.SalaryPayment) bool { return p.EmployeeID == employeeID }), nil
}

func (r *SalaryPaymentRepository) ListAll(ctx context.Context) ([]payment.SalaryPayment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.listLocked(func(payment.SalaryPayment) bool { return true }), nil
}

func (r *SalaryPaymentRepository) listLocked(keep func(payment.SalaryPayment) bool) []payment.SalaryPayment {
	var out []payment.SalaryPayment
	for i := len(r.store.paymentOrder) - 1; i >= 0; i-- {
		p := r.store.payments[r.store.paymentOrder[i]]
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
