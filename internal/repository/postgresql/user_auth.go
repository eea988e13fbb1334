package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/salarydesk/salary-backend-go/internal/domain/auth"
	"github.com/salarydesk/salary-backend-go/internal/pkg/database"
)

type userAuthRepositoryImpl struct {
	db *database.DB
}

func NewUserAuthRepository(db *database.DB) auth.UserAuthRepository {
	return &userAuthRepositoryImpl{db: db}
}

func (r *userAuthRepositoryImpl) Upsert(ctx context.Context, ua auth.UserAuth) (auth.UserAuth, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_auth (id, employee_id, pin_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id) DO UPDATE SET pin_hash = EXCLUDED.pin_hash
		RETURNING id, employee_id, pin_hash, created_at
	`

	var saved auth.UserAuth
	err := q.QueryRow(ctx, query, ua.ID, ua.EmployeeID, ua.PINHash).Scan(
		&saved.ID, &saved.EmployeeID, &saved.PINHash, &saved.CreatedAt,
	)
	if err != nil {
		return auth.UserAuth{}, fmt.Errorf("failed to upsert user auth: %w", err)
	}

	return saved, nil
}

func (r *userAuthRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (auth.UserAuth, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, employee_id, pin_hash, created_at FROM user_auth WHERE employee_id = $1`

	var ua auth.UserAuth
	err := q.QueryRow(ctx, query, employeeID).Scan(&ua.ID, &ua.EmployeeID, &ua.PINHash, &ua.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.UserAuth{}, auth.ErrPINNotSet
		}
		return auth.UserAuth{}, fmt.Errorf("failed to get user auth: %w", err)
	}

	return ua, nil
}
