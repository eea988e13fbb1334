// Package memory provides map-backed implementations of the domain
// repositories. They exist for service-level unit tests; the production
// wiring uses the postgresql package.
package memory

import (
	"context"
	"sync"

	"github.com/salarydesk/salary-backend-go/internal/domain/advance"
	"github.com/salarydesk/salary-backend-go/internal/domain/auth"
	"github.com/salarydesk/salary-backend-go/internal/domain/bill"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/domain/notification"
	"github.com/salarydesk/salary-backend-go/internal/domain/offday"
	"github.com/salarydesk/salary-backend-go/internal/domain/payment"
)

type Store struct {
	mu sync.Mutex
	// txMu serializes WithinTx blocks, standing in for the employee row lock
	// the postgresql implementation takes.
	txMu sync.Mutex

	employees     map[string]employee.Employee
	advances      map[string]advance.Advance
	bills         map[string]bill.Bill
	offDays       map[string]offday.OffDay
	payments      map[string]payment.SalaryPayment
	notifications map[string]notification.Notification
	auths         map[string]auth.UserAuth // keyed by employee id

	// order of insertion, newest last, for deterministic listings
	advanceOrder      []string
	billOrder         []string
	offDayOrder       []string
	paymentOrder      []string
	notificationOrder []string
}

func NewStore() *Store {
	return &Store{
		employees:     make(map[string]employee.Employee),
		advances:      make(map[string]advance.Advance),
		bills:         make(map[string]bill.Bill),
		offDays:       make(map[string]offday.OffDay),
		payments:      make(map[string]payment.SalaryPayment),
		notifications: make(map[string]notification.Notification),
		auths:         make(map[string]auth.UserAuth),
	}
}

// WithinTx serializes the callback. The memory store commits writes
// immediately; rollback fidelity is the postgresql implementation's job.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}
