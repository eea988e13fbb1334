package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/salarydesk/salary-backend-go/internal/domain/payment"
	"github.com/salarydesk/salary-backend-go/internal/pkg/database"
)

type salaryPaymentRepositoryImpl struct {
	db *database.DB
}

func NewSalaryPaymentRepository(db *database.DB) payment.SalaryPaymentRepository {
	return &salaryPaymentRepositoryImpl{db: db}
}

func (r *salaryPaymentRepositoryImpl) Create(ctx context.Context, p payment.SalaryPayment) (payment.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_payments (id, employee_id, paid_by_id, amount_paid, payment_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, paid_by_id, amount_paid, payment_date, notes, created_at
	`

	var created payment.SalaryPayment
	err := q.QueryRow(ctx, query, p.ID, p.EmployeeID, p.PaidByID, p.AmountPaid, p.PaymentDate, p.Notes).Scan(
		&created.ID, &created.EmployeeID, &created.PaidByID,
		&created.AmountPaid, &created.PaymentDate, &created.Notes, &created.CreatedAt,
	)
	if err != nil {
		return payment.SalaryPayment{}, fmt.Errorf("failed to create salary payment: %w", err)
	}

	return created, nil
}

func (r *salaryPaymentRepositoryImpl) GetByID(ctx context.Context, id string) (payment.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, paid_by_id, amount_paid, payment_date, notes, created_at
		FROM salary_payments
		WHERE id = $1
	`

	var p payment.SalaryPayment
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.PaidByID, &p.AmountPaid, &p.PaymentDate, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.SalaryPayment{}, payment.ErrPaymentNotFound
		}
		return payment.SalaryPayment{}, fmt.Errorf("failed to get salary payment: %w", err)
	}

	return p, nil
}

func (r *salaryPaymentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payment.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, paid_by_id, amount_paid, payment_date, notes, created_at
		FROM salary_payments
		WHERE employee_id = $1
		ORDER BY payment_date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary payments for employee: %w", err)
	}
	defer rows.Close()

	var payments []payment.SalaryPayment
	for rows.Next() {
		var p payment.SalaryPayment
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PaidByID, &p.AmountPaid, &p.PaymentDate, &p.Notes, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *salaryPaymentRepositoryImpl) ListAll(ctx context.Context) ([]payment.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.paid_by_id, p.amount_paid, p.payment_date, p.notes, p.created_at,
			e.first_name || ' ' || e.last_name, a.first_name || ' ' || a.last_name
		FROM salary_payments p
		JOIN employees e ON e.id = p.employee_id
		JOIN employees a ON a.id = p.paid_by_id
		ORDER BY p.payment_date DESC, p.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.SalaryPayment
	for rows.Next() {
		var p payment.SalaryPayment
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PaidByID, &p.AmountPaid, &p.PaymentDate, &p.Notes, &p.CreatedAt,
			&p.EmployeeName, &p.PaidByName,
		); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
