package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

const employeeColumns = `id, first_name, last_name, role, salary, phone_number,
	employment_start_date, days_worked_this_month, total_days_worked,
	last_attendance_date, used_salary, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, first_name, last_name, role, salary, phone_number, employment_start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	row := q.QueryRow(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Role, emp.Salary, emp.PhoneNumber, emp.EmploymentStartDate,
	)
	created, err := scanEmployee(row)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_phone_number") {
			return employee.Employee{}, employee.ErrPhoneNumberExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 FOR UPDATE`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to lock employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByFirstName(ctx context.Context, firstName string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE LOWER(first_name) = LOWER($1) ORDER BY created_at LIMIT 1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, firstName))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByPhoneNumber(ctx context.Context, phone string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE phone_number = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, phone))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by phone: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY first_name, last_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) ListStartedBy(ctx context.Context, date time.Time) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employment_start_date <= $1 ORDER BY first_name, last_name`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by start date: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) UpdateAttendance(ctx context.Context, id string, daysThisMonth, totalDays int, lastAttendance time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET days_worked_this_month = $1, total_days_worked = $2, last_attendance_date = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, daysThisMonth, totalDays, lastAttendance, id)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepositoryImpl) StampAttendance(ctx context.Context, id string, lastAttendance time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET last_attendance_date = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, lastAttendance, id)
	if err != nil {
		return fmt.Errorf("failed to stamp attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepositoryImpl) ResetMonthlyWorkedDays(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET days_worked_this_month = 0, updated_at = NOW() WHERE days_worked_this_month > 0`

	tag, err := q.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to reset monthly worked days: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *employeeRepositoryImpl) SetUsedSalary(ctx context.Context, id string, used decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET used_salary = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, used, id)
	if err != nil {
		return fmt.Errorf("failed to set used salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Role, &emp.Salary, &emp.PhoneNumber,
		&emp.EmploymentStartDate, &emp.DaysWorkedThisMonth, &emp.TotalDaysWorked,
		&emp.LastAttendanceDate, &emp.UsedSalary, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}
