package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

func (r *advanceRepositoryImpl) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (id, employee_id, amount, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, amount, reason, status, approved_at, approval_notes, created_at, updated_at
	`

	var created advance.Advance
	err := q.QueryRow(ctx, query, adv.ID, adv.EmployeeID, adv.Amount, adv.Reason, adv.Status).Scan(
		&created.ID, &created.EmployeeID, &created.Amount, &created.Reason, &created.Status,
		&created.ApprovedAt, &created.ApprovalNotes, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return created, nil
}

func (r *advanceRepositoryImpl) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, reason, status, approved_at, approval_notes, created_at, updated_at
		FROM advances
		WHERE id = $1
	`

	var adv advance.Advance
	err := q.QueryRow(ctx, query, id).Scan(
		&adv.ID, &adv.EmployeeID, &adv.Amount, &adv.Reason, &adv.Status,
		&adv.ApprovedAt, &adv.ApprovalNotes, &adv.CreatedAt, &adv.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return adv, nil
}

func (r *advanceRepositoryImpl) ListPending(ctx context.Context) ([]advance.Advance, error) {
	return r.list(ctx, `WHERE a.status = 'pending'`)
}

func (r *advanceRepositoryImpl) ListAll(ctx context.Context) ([]advance.Advance, error) {
	return r.list(ctx, ``)
}

func (r *advanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, reason, status, approved_at, approval_notes, created_at, updated_at
		FROM advances
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances for employee: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var adv advance.Advance
		if err := rows.Scan(
			&adv.ID, &adv.EmployeeID, &adv.Amount, &adv.Reason, &adv.Status,
			&adv.ApprovedAt, &adv.ApprovalNotes, &adv.CreatedAt, &adv.UpdatedAt,
		); err != nil {
			return nil, err
		}
		advances = append(advances, adv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return advances, nil
}

func (r *advanceRepositoryImpl) list(ctx context.Context, filter string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.amount, a.reason, a.status, a.approved_at, a.approval_notes,
			a.created_at, a.updated_at, e.first_name || ' ' || e.last_name
		FROM advances a
		JOIN employees e ON e.id = a.employee_id
		` + filter + `
		ORDER BY a.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var adv advance.Advance
		if err := rows.Scan(
			&adv.ID, &adv.EmployeeID, &adv.Amount, &adv.Reason, &adv.Status,
			&adv.ApprovedAt, &adv.ApprovalNotes, &adv.CreatedAt, &adv.UpdatedAt, &adv.EmployeeName,
		); err != nil {
			return nil, err
		}
		advances = append(advances, adv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return advances, nil
}

func (r *advanceRepositoryImpl) UpdateDecision(ctx context.Context, adv advance.Advance) error {
	q := GetQuerier(ctx, r.db)

	// Decisions are terminal. The status guard makes the transition
	// pending -> decided atomic even for writers that skipped the row lock.
	query := `
		UPDATE advances
		SET status = $1, approved_at = $2, approval_notes = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, adv.Status, adv.ApprovedAt, adv.ApprovalNotes, adv.ID)
	if err != nil {
		return fmt.Errorf("failed to update advance decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM advances WHERE id = $1)`, adv.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to update advance decision: %w", err)
		}
		if exists {
			return advance.ErrAlreadyDecided
		}
		return advance.ErrAdvanceNotFound
	}

	return nil
}

func (r *advanceRepositoryImpl) SumApproved(ctx context.Context, employeeID string, excludeID *string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM advances
		WHERE employee_id = $1 AND status = 'approved' AND ($2::uuid IS NULL OR id <> $2)
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, excludeID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum approved advances: %w", err)
	}

	return sum, nil
}
