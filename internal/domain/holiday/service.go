package holiday

import "context"

type Service interface {
	List(ctx context.Context, year int) ([]Holiday, error)
	Add(ctx context.Context, req AddHolidayRequest) (Holiday, error)
	Remove(ctx context.Context, date string) error
}
