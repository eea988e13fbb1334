package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/domain/attendance"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/domain/notification"
	"github.com/salarydesk/salary-backend-go/internal/domain/salary"
)

// PayrollJobs owns the daily batch work: the attendance sweep every day, the
// monthly counter reset and ledger rollover on the 1st, and a pending-advance
// digest for the admins.
type PayrollJobs struct {
	salaryService     salary.SalaryService
	attendanceService attendance.AttendanceService
	advanceRepo       advance.AdvanceRepository
	employeeRepo      employee.EmployeeRepository
	notifications     notification.NotificationService
	now               func() time.Time
}

func NewPayrollJobs(
	salaryService salary.SalaryService,
	attendanceService attendance.AttendanceService,
	advanceRepo advance.AdvanceRepository,
	employeeRepo employee.EmployeeRepository,
	notifications notification.NotificationService,
) *PayrollJobs {
	return &PayrollJobs{
		salaryService:     salaryService,
		attendanceService: attendanceService,
		advanceRepo:       advanceRepo,
		employeeRepo:      employeeRepo,
		notifications:     notifications,
		now:               time.Now,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("daily_payroll_sweep", interval, j.DailySweep)
}

// DailySweep applies one day of attendance to every employee. On the first of
// the month it first resets the monthly counters and rolls the salary ledgers
// over; the sweep must see post-rollover state or the new month would start
// with last month's debt double-counted.
func (j *PayrollJobs) DailySweep(ctx context.Context) error {
	now := j.now().UTC()

	// Only run at midnight (00:00-00:59 UTC)
	if now.Hour() != 0 {
		return nil
	}

	return j.RunForDate(ctx, now)
}

// RunForDate executes the full daily batch for an explicit date. Split out so
// a missed day can be replayed.
func (j *PayrollJobs) RunForDate(ctx context.Context, day time.Time) error {
	if day.Day() == 1 {
		resetCount, err := j.attendanceService.ResetMonthlyCounters(ctx, day)
		if err != nil {
			return fmt.Errorf("monthly counter reset failed: %w", err)
		}
		slog.Info("Cron: Monthly attendance counters reset", "count", resetCount)

		stats, err := j.salaryService.RolloverMonthly(ctx, day)
		if err != nil {
			return fmt.Errorf("monthly rollover failed: %w", err)
		}
		slog.Info("Cron: Monthly salary rollover complete",
			"carried_forward", stats.CarriedForward,
			"reset_to_zero", stats.ResetToZero,
			"total_reset", stats.TotalReset)
	}

	stats, err := j.attendanceService.SweepAll(ctx, day)
	if err != nil {
		return fmt.Errorf("attendance sweep failed: %w", err)
	}
	slog.Info("Cron: Daily attendance sweep complete",
		"total", stats.Total,
		"updated", stats.Updated,
		"off_days", stats.OffDays,
		"not_started", stats.NotStarted,
		"already_counted", stats.AlreadyCounted)

	if err := j.recordPendingDigest(ctx); err != nil {
		return err
	}

	return nil
}

// recordPendingDigest leaves each admin a summary of advances still awaiting
// a decision. No pending advances, no notification.
func (j *PayrollJobs) recordPendingDigest(ctx context.Context) error {
	pending, err := j.advanceRepo.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("pending advance digest failed: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("pending advance digest failed: %w", err)
	}
	for _, emp := range employees {
		if emp.Role != employee.RoleAdmin {
			continue
		}
		if err := j.notifications.RecordPendingSummary(ctx, emp, pending); err != nil {
			return fmt.Errorf("pending advance digest failed: %w", err)
		}
	}
	slog.Info("Cron: Pending advance digest recorded", "pending", len(pending))
	return nil
}
