package attendance

import "context"

type Service interface {
	// Sheet assembles the month grid: one row per active employee with
	// its day statuses, in/out times and derived counts.
	Sheet(ctx context.Context, month string, year int) (SheetResponse, error)

	MarkDay(ctx context.Context, employeeID, month string, year int, req MarkDayRequest) (Record, error)
	MarkTime(ctx context.Context, employeeID, month string, year int, req MarkTimeRequest) (Record, error)
}
