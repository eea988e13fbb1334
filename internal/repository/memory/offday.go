package memory

import (
	"context"
	"time"

	"github.com/salarydesk/salary-backend-go/internal/domain/offday"
)

type OffDayRepository struct {
	store *Store
}

func NewOffDayRepository(store *Store) *OffDayRepository {
	return &OffDayRepository{store: store}
}

func (r *OffDayRepository) Create(ctx context.Context, o offday.OffDay) (offday.OffDay, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.offDays[o.ID] = o
	r.store.offDayOrder = append(r.store.offDayOrder, o.ID)
	return o, nil
}

func (r *OffDayRepository) GetByID(ctx context.Context, id string) (offday.OffDay, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.offDays[id]
	if !ok {
		return offday.OffDay{}, offday.ErrOffDayNotFound
	}
	return o, nil
}

func (r *OffDayRepository) ListAll(ctx context.Context) ([]offday.OffDay, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.listLocked(func(offday.OffDay) bool { return true }), nil
}

func (r *OffDayRepository) ListByEmployee(ctx context.Context, employeeID string) ([]offday.OffDay, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.listLocked(func(o offday.OffDay) bool { return o.EmployeeID == employeeID }), nil
}

func (r *OffDayRepository) ListApprovedCovering(ctx context.Context, employeeID string, date time.Time) ([]offday.OffDay, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.listLocked(func(o offday.OffDay) bool {
		return o.EmployeeID == employeeID && o.Status == offday.StatusApproved && !o.Date.After(date)
	}), nil
}

func (r *OffDayRepository) UpdateStatus(ctx context.Context, id string, status offday.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.offDays[id]
	if !ok {
		return offday.ErrOffDayNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	r.store.offDays[id] = o
	return nil
}

func (r *OffDayRepository) listLocked(keep func(offday.OffDay) bool) []offday.OffDay {
	var out []offday.OffDay
	for i := len(r.store.offDayOrder) - 1; i >= 0; i-- {
		o := r.store.offDays[r.store.offDayOrder[i]]
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
