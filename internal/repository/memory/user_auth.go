package memory

import (
	"context"

	"github.com/salarydesk/salary-backend-go/internal/domain/auth"
)

type UserAuthRepository struct {
	store *Store
}

func NewUserAuthRepository(store *Store) *UserAuthRepository {
	return &UserAuthRepository{store: store}
}

func (r *UserAuthRepository) Upsert(ctx context.Context, ua auth.UserAuth) (auth.UserAuth, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if existing, ok := r.store.auths[ua.EmployeeID]; ok {
		existing.PINHash = ua.PINHash
		r.store.auths[ua.EmployeeID] = existing
		return existing, nil
	}
	r.store.auths[ua.EmployeeID] = ua
	return ua, nil
}

func (r *UserAuthRepository) GetByEmployeeID(ctx context.Context, employeeID string) (auth.UserAuth, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ua, ok := r.store.auths[employeeID]
	if !ok {
		return auth.UserAuth{}, auth.ErrPINNotSet
	}
	return ua, nil
}
