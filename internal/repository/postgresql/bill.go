package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type billRepositoryImpl struct {
	db *database.DB
}

func NewBillRepository(db *database.DB) bill.BillRepository {
	return &billRepositoryImpl{db: db}
}

func (r *billRepositoryImpl) Create(ctx context.Context, b bill.Bill) (bill.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bills (id, billed_employee_id, recorded_by_id, amount, date, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, billed_employee_id, recorded_by_id, amount, date, reason, created_at
	`

	var created bill.Bill
	err := q.QueryRow(ctx, query, b.ID, b.BilledEmployeeID, b.RecordedByID, b.Amount, b.Date, b.Reason).Scan(
		&created.ID, &created.BilledEmployeeID, &created.RecordedByID,
		&created.Amount, &created.Date, &created.Reason, &created.CreatedAt,
	)
	if err != nil {
		return bill.Bill{}, fmt.Errorf("failed to create bill: %w", err)
	}

	return created, nil
}

func (r *billRepositoryImpl) ListAll(ctx context.Context) ([]bill.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.billed_employee_id, b.recorded_by_id, b.amount, b.date, b.reason, b.created_at,
			be.first_name || ' ' || be.last_name, be.role,
			rb.first_name || ' ' || rb.last_name
		FROM bills b
		JOIN employees be ON be.id = b.billed_employee_id
		JOIN employees rb ON rb.id = b.recorded_by_id
		ORDER BY b.date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	return collectBills(rows)
}

func (r *billRepositoryImpl) ListRecentByRecorder(ctx context.Context, recorderID string, limit int) ([]bill.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.billed_employee_id, b.recorded_by_id, b.amount, b.date, b.reason, b.created_at,
			be.first_name || ' ' || be.last_name, be.role,
			rb.first_name || ' ' || rb.last_name
		FROM bills b
		JOIN employees be ON be.id = b.billed_employee_id
		JOIN employees rb ON rb.id = b.recorded_by_id
		WHERE b.recorded_by_id = $1
		ORDER BY b.date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, recorderID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent bills: %w", err)
	}
	defer rows.Close()

	return collectBills(rows)
}

func (r *billRepositoryImpl) SumByEmployee(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COALESCE(SUM(amount), 0) FROM bills WHERE billed_employee_id = $1`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum bills: %w", err)
	}

	return sum, nil
}

func collectBills(rows pgx.Rows) ([]bill.Bill, error) {
	var bills []bill.Bill
	for rows.Next() {
		var b bill.Bill
		if err := rows.Scan(
			&b.ID, &b.BilledEmployeeID, &b.RecordedByID, &b.Amount, &b.Date, &b.Reason, &b.CreatedAt,
			&b.EmployeeName, &b.EmployeeRole, &b.RecordedByName,
		); err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bills, nil
}
