package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
)

type BillRepository struct {
	store *Store
}

func NewBillRepository(store *Store) *BillRepository {
	return &BillRepository{store: store}
}

func (r *BillRepository) Create(ctx context.Context, b bill.Bill) (bill.Bill, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.bills[b.ID] = b
	r.store.billOrder = append(r.store.billOrder, b.ID)
	return b, nil
}

func (r *BillRepository) ListAll(ctx context.Context) ([]bill.Bill, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.listLocked(func(bill.Bill) bool { return true }, 0), nil
}

func (r *BillRepository) ListRecentByRecorder(ctx context.Context, recorderID string, limit int) ([]bill.Bill, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.listLocked(func(b bill.Bill) bool { return b.RecordedByID == recorderID }, limit), nil
}

func (r *BillRepository) SumByEmployee(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sum := decimal.Zero
	for _, b := range r.store.bills {
		if b.BilledEmployeeID == employeeID {
			sum = sum.Add(b.Amount)
		}
	}
	return sum, nil
}

func (r *BillRepository) listLocked(keep func(bill.Bill) bool, limit int) []bill.Bill {
	var out []bill.Bill
	for i := len(r.store.billOrder) - 1; i >= 0; i-- {
		b := r.store.bills[r.store.billOrder[i]]
		if keep(b) {
			out = append(out, b)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}
