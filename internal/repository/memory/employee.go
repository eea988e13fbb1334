package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.employees {
		if existing.PhoneNumber == emp.PhoneNumber {
			return employee.Employee{}, employee.ErrPhoneNumberExists
		}
	}
	r.store.employees[emp.ID] = emp
	return emp, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	emp, ok := r.store.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) GetByFirstName(ctx context.Context, firstName string) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matches []employee.Employee
	for _, emp := range r.store.employees {
		if strings.EqualFold(emp.FirstName, firstName) {
			matches = append(matches, emp)
		}
	}
	if len(matches) == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.Before(matches[j].CreatedAt) })
	return matches[0], nil
}

func (r *EmployeeRepository) GetByPhoneNumber(ctx context.Context, phone string) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, emp := range r.store.employees {
		if emp.PhoneNumber == phone {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.sortedLocked(func(employee.Employee) bool { return true }), nil
}

func (r *EmployeeRepository) ListStartedBy(ctx context.Context, date time.Time) ([]employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.sortedLocked(func(emp employee.Employee) bool {
		return !emp.EmploymentStartDate.After(date)
	}), nil
}

// GetByIDForUpdate behaves like GetByID; WithinTx already serializes callers.
func (r *EmployeeRepository) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return r.GetByID(ctx, id)
}

func (r *EmployeeRepository) UpdateAttendance(ctx context.Context, id string, daysThisMonth, totalDays int, lastAttendance time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	emp, ok := r.store.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.DaysWorkedThisMonth = daysThisMonth
	emp.TotalDaysWorked = totalDays
	emp.LastAttendanceDate = &lastAttendance
	emp.UpdatedAt = time.Now()
	r.store.employees[id] = emp
	return nil
}

func (r *EmployeeRepository) StampAttendance(ctx context.Context, id string, lastAttendance time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	emp, ok := r.store.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.LastAttendanceDate = &lastAttendance
	emp.UpdatedAt = time.Now()
	r.store.employees[id] = emp
	return nil
}

func (r *EmployeeRepository) ResetMonthlyWorkedDays(ctx context.Context) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	reset := 0
	for id, emp := range r.store.employees {
		if emp.DaysWorkedThisMonth > 0 {
			emp.DaysWorkedThisMonth = 0
			emp.UpdatedAt = time.Now()
			r.store.employees[id] = emp
			reset++
		}
	}
	return reset, nil
}

func (r *EmployeeRepository) SetUsedSalary(ctx context.Context, id string, used decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	emp, ok := r.store.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.UsedSalary = used
	emp.UpdatedAt = time.Now()
	r.store.employees[id] = emp
	return nil
}

func (r *EmployeeRepository) sortedLocked(keep func(employee.Employee) bool) []employee.Employee {
	out := make([]employee.Employee, 0, len(r.store.employees))
	for _, emp := range r.store.employees {
		if keep(emp) {
			out = append(out, emp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
