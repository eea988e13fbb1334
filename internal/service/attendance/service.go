package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/salarydesk/salary-backend-go/internal/domain/attendance"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/domain/offday"
)

type AttendanceServiceImpl struct {
	employee.EmployeeRepository
	offday.OffDayRepository
}

// IsOffDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) IsOffDay(ctx context.Context, employeeID string, day time.Time) (bool, error) {
	offDays, err := a.OffDayRepository.ListApprovedCovering(ctx, employeeID, day)
	if err != nil {
		return false, fmt.Errorf("failed to list approved off days: %w", err)
	}
	for _, o := range offDays {
		if o.Covers(day) {
			return true, nil
		}
	}
	return false, nil
}

// SweepEmployee implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SweepEmployee(ctx context.Context, employeeID string, day time.Time) (attendance.Outcome, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return "", err
	}
	return a.sweepOne(ctx, emp, day)
}

// SweepAll implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SweepAll(ctx context.Context, day time.Time) (attendance.SweepStats, error) {
	employees, err := a.EmployeeRepository.ListStartedBy(ctx, day)
	if err != nil {
		return attendance.SweepStats{}, fmt.Errorf("failed to list employees: %w", err)
	}

	stats := attendance.SweepStats{Total: len(employees)}
	for _, emp := range employees {
		outcome, err := a.sweepOne(ctx, emp, day)
		if err != nil {
			return attendance.SweepStats{}, err
		}
		switch outcome {
		case attendance.OutcomeCounted:
			stats.Updated++
		case attendance.OutcomeOffDay:
			stats.OffDays++
		case attendance.OutcomeNotStarted:
			stats.NotStarted++
		case attendance.OutcomeAlreadyCounted:
			stats.AlreadyCounted++
		}
	}
	return stats, nil
}

// ResetMonthlyCounters implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ResetMonthlyCounters(ctx context.Context, day time.Time) (int, error) {
	if day.Day() != 1 {
		return 0, nil
	}
	count, err := a.EmployeeRepository.ResetMonthlyWorkedDays(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset monthly counters: %w", err)
	}
	return count, nil
}

func (a *AttendanceServiceImpl) sweepOne(ctx context.Context, emp employee.Employee, day time.Time) (attendance.Outcome, error) {
	if calendarDay(day).Before(calendarDay(emp.EmploymentStartDate)) {
		return attendance.OutcomeNotStarted, nil
	}
	if emp.LastAttendanceDate != nil && sameDay(*emp.LastAttendanceDate, day) {
		return attendance.OutcomeAlreadyCounted, nil
	}

	off, err := a.IsOffDay(ctx, emp.ID, day)
	if err != nil {
		return "", err
	}
	if off {
		// Stamp the marker so reruns skip this employee, without counting.
		if err := a.EmployeeRepository.StampAttendance(ctx, emp.ID, calendarDay(day)); err != nil {
			return "", fmt.Errorf("failed to stamp attendance: %w", err)
		}
		return attendance.OutcomeOffDay, nil
	}

	daysThisMonth := emp.DaysWorkedThisMonth
	// A marker from a different month means the monthly counter is stale.
	// ResetMonthlyCounters normally handles this on the 1st; this is the
	// per-employee fallback.
	if emp.LastAttendanceDate != nil && !sameMonth(*emp.LastAttendanceDate, day) {
		daysThisMonth = 0
	}

	err = a.EmployeeRepository.UpdateAttendance(ctx, emp.ID, daysThisMonth+1, emp.TotalDaysWorked+1, calendarDay(day))
	if err != nil {
		return "", fmt.Errorf("failed to update attendance: %w", err)
	}
	return attendance.OutcomeCounted, nil
}

func sameDay(a, b time.Time) bool {
	return calendarDay(a).Equal(calendarDay(b))
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func NewAttendanceService(
	employeeRepo employee.EmployeeRepository,
	offDayRepo offday.OffDayRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		EmployeeRepository: employeeRepo,
		OffDayRepository:   offDayRepo,
	}
}
