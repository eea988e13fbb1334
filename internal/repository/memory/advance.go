package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
)

type AdvanceRepository struct {
	store *Store
}

func NewAdvanceRepository(store *Store) *AdvanceRepository {
	return &AdvanceRepository{store: store}
}

func (r *AdvanceRepository) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.advances[adv.ID] = adv
	r.store.advanceOrder = append(r.store.advanceOrder, adv.ID)
	return adv, nil
}

func (r *AdvanceRepository) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	adv, ok := r.store.advances[id]
	if !ok {
		return advance.Advance{}, advance.ErrAdvanceNotFound
	}
	return adv, nil
}

func (r *AdvanceRepository) ListPending(ctx context.Context) ([]advance.Advance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.listLocked(func(a advance.Advance) bool { return a.Status == advance.StatusPending }), nil
}

func (r *AdvanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]advance.Advance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.listLocked(func(a advance.Advance) bool { return a.EmployeeID == employeeID }), nil
}

func (r *AdvanceRepository) ListAll(ctx context.Context) ([]advance.Advance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.listLocked(func(advance.Advance) bool { return true }), nil
}

func (r *AdvanceRepository) UpdateDecision(ctx context.Context, adv advance.Advance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.advances[adv.ID]
	if !ok {
		return advance.ErrAdvanceNotFound
	}
	if stored.Status.Decided() {
		return advance.ErrAlreadyDecided
	}
	stored.Status = adv.Status
	stored.ApprovedAt = adv.ApprovedAt
	stored.ApprovalNotes = adv.ApprovalNotes
	stored.UpdatedAt = time.Now()
	r.store.advances[adv.ID] = stored
	return nil
}

func (r *AdvanceRepository) SumApproved(ctx context.Context, employeeID string, excludeID *string) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sum := decimal.Zero
	for _, a := range r.store.advances {
		if a.EmployeeID != employeeID || a.Status != advance.StatusApproved {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		sum = sum.Add(a.Amount)
	}
	return sum, nil
}

// listLocked returns matching advances newest first, mirroring the
// created_at DESC ordering of the postgresql queries.
func (r *AdvanceRepository) listLocked(keep func(advance.Advance) bool) []advance.Advance {
	var out []advance.Advance
	for i := len(r.store.advanceOrder) - 1; i >= 0; i-- {
		a := r.store.advances[r.store.advanceOrder[i]]
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
