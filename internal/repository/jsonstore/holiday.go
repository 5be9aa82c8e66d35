package jsonstore

import (
	"context"
	"strconv"
	"strings"

	"github.com/excelpro/staffledger-backend-go/internal/domain/holiday"
)

type HolidayRepository struct {
	store *Store
}

func NewHolidayRepository(store *Store) *HolidayRepository {
	return &HolidayRepository{store: store}
}

func (r *HolidayRepository) List(ctx context.Context, year int) ([]holiday.Holiday, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []holiday.Holiday
	for _, h := range r.store.holidays {
		if year > 0 && !inYear(h.Date, year) {
			continue
		}
		result = append(result, h)
	}
	return result, nil
}

func (r *HolidayRepository) Add(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.holidays = append(r.store.holidays, h)
	if err := r.store.persist(holidaysFile, r.store.holidays); err != nil {
		return holiday.Holiday{}, err
	}
	return h, nil
}

func (r *HolidayRepository) Remove(ctx context.Context, date string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, h := range r.store.holidays {
		if h.Date == date {
			r.store.holidays = append(r.store.holidays[:i], r.store.holidays[i+1:]...)
			return r.store.persist(holidaysFile, r.store.holidays)
		}
	}
	return holiday.ErrHolidayNotFound
}

// inYear checks the ISO date prefix ("2006-01-02") against a year.
func inYear(date string, year int) bool {
	return strings.HasPrefix(date, strconv.Itoa(year)+"-")
}
