package holiday

import (
	"context"

	"github.com/excelpro/staffledger-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.Repository
}

func NewHolidayService(repo holiday.Repository) holiday.Service {
	return &HolidayServiceImpl{Repository: repo}
}

// Add implements holiday.Service.
func (s *HolidayServiceImpl) Add(ctx context.Context, req holiday.AddHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	return s.Repository.Add(ctx, holiday.Holiday{
		Date:   req.Date,
		Reason: req.Reason,
		Type:   holiday.Type(req.Type),
	})
}
