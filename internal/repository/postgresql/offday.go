package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/salarydesk/salary-backend-go/internal/domain/offday"
	"github.com/salarydesk/salary-backend-go/internal/pkg/database"
)

type offDayRepositoryImpl struct {
	db *database.DB
}

func NewOffDayRepository(db *database.DB) offday.OffDayRepository {
	return &offDayRepositoryImpl{db: db}
}

func (r *offDayRepositoryImpl) Create(ctx context.Context, o offday.OffDay) (offday.OffDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO off_days (id, employee_id, date, day_count, off_type, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, date, day_count, off_type, reason, status, created_at, updated_at
	`

	var created offday.OffDay
	err := q.QueryRow(ctx, query, o.ID, o.EmployeeID, o.Date, o.DayCount, o.OffType, o.Reason, o.Status).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.DayCount, &created.OffType,
		&created.Reason, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return offday.OffDay{}, fmt.Errorf("failed to create off day: %w", err)
	}

	return created, nil
}

func (r *offDayRepositoryImpl) GetByID(ctx context.Context, id string) (offday.OffDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, day_count, off_type, reason, status, created_at, updated_at
		FROM off_days
		WHERE id = $1
	`

	var o offday.OffDay
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.EmployeeID, &o.Date, &o.DayCount, &o.OffType,
		&o.Reason, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return offday.OffDay{}, offday.ErrOffDayNotFound
		}
		return offday.OffDay{}, fmt.Errorf("failed to get off day: %w", err)
	}

	return o, nil
}

func (r *offDayRepositoryImpl) ListAll(ctx context.Context) ([]offday.OffDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.employee_id, o.date, o.day_count, o.off_type, o.reason, o.status,
			o.created_at, o.updated_at, e.first_name || ' ' || e.last_name
		FROM off_days o
		JOIN employees e ON e.id = o.employee_id
		ORDER BY o.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list off days: %w", err)
	}
	defer rows.Close()

	var offDays []offday.OffDay
	for rows.Next() {
		var o offday.OffDay
		if err := rows.Scan(
			&o.ID, &o.EmployeeID, &o.Date, &o.DayCount, &o.OffType, &o.Reason, &o.Status,
			&o.CreatedAt, &o.UpdatedAt, &o.EmployeeName,
		); err != nil {
			return nil, err
		}
		offDays = append(offDays, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offDays, nil
}

func (r *offDayRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]offday.OffDay, error) {
	return r.listByEmployee(ctx, employeeID, ``)
}

func (r *offDayRepositoryImpl) ListApprovedCovering(ctx context.Context, employeeID string, date time.Time) ([]offday.OffDay, error) {
	// Range arithmetic stays in the domain; SQL narrows to approved requests
	// starting no later than the given date.
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, day_count, off_type, reason, status, created_at, updated_at
		FROM off_days
		WHERE employee_id = $1 AND status = 'approved' AND date <= $2
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved off days: %w", err)
	}
	defer rows.Close()

	return collectOffDays(rows)
}

func (r *offDayRepositoryImpl) listByEmployee(ctx context.Context, employeeID, filter string) ([]offday.OffDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, day_count, off_type, reason, status, created_at, updated_at
		FROM off_days
		WHERE employee_id = $1 ` + filter + `
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list off days for employee: %w", err)
	}
	defer rows.Close()

	return collectOffDays(rows)
}

func (r *offDayRepositoryImpl) UpdateStatus(ctx context.Context, id string, status offday.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE off_days SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update off day status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return offday.ErrOffDayNotFound
	}

	return nil
}

func collectOffDays(rows pgx.Rows) ([]offday.OffDay, error) {
	var offDays []offday.OffDay
	for rows.Next() {
		var o offday.OffDay
		if err := rows.Scan(
			&o.ID, &o.EmployeeID, &o.Date, &o.DayCount, &o.OffType,
			&o.Reason, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		offDays = append(offDays, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return offDays, nil
}
