package bill

import "context"

type BillService interface {
	// Record charges a bill against an employee. Managers and admins may
	// record; managers cannot bill themselves. Depending on the bill overdraft
	// policy an overdrawing bill is either rejected or recorded with a
	// warning.
	Record(ctx context.Context, req CreateBillRequest) (CreateBillResult, error)

	ListAll(ctx context.Context) ([]BillResponse, error)
	ListRecentByRecorder(ctx context.Context, recorderID string, limit int) ([]BillResponse, error)
}
