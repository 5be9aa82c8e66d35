package jsonstore

import (
	"context"
	"maps"

	"github.com/excelpro/staffledger-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

func (r *AttendanceRepository) GetByKey(ctx context.Context, key attendance.Key) (attendance.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if i := r.indexOf(key); i >= 0 {
		return cloneRecord(r.store.attendance[i]), nil
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (r *AttendanceRepository) ListByPeriod(ctx context.Context, month string, year int) ([]attendance.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []attendance.Record
	for _, rec := range r.store.attendance {
		if rec.Month == month && rec.Year == year {
			result = append(result, cloneRecord(rec))
		}
	}
	return result, nil
}

func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]attendance.Record, 0, len(r.store.attendance))
	for _, rec := range r.store.attendance {
		result = append(result, cloneRecord(rec))
	}
	return result, nil
}

func (r *AttendanceRepository) UpsertDayStatus(ctx context.Context, key attendance.Key, day int, status attendance.Status) (attendance.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexOf(key)
	if i < 0 {
		r.store.attendance = append(r.store.attendance, attendance.NewRecord(key))
		i = len(r.store.attendance) - 1
	}

	rec := &r.store.attendance[i]
	if rec.Days == nil {
		rec.Days = make(map[int]attendance.Status)
	}
	rec.Days[day] = status

	if err := r.store.persist(attendanceFile, r.store.attendance); err != nil {
		return attendance.Record{}, err
	}
	return cloneRecord(*rec), nil
}

func (r *AttendanceRepository) UpsertDayTime(ctx context.Context, key attendance.Key, day int, t attendance.DayTime) (attendance.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexOf(key)
	if i < 0 {
		r.store.attendance = append(r.store.attendance, attendance.NewRecord(key))
		i = len(r.store.attendance) - 1
	}

	rec := &r.store.attendance[i]
	if rec.Times == nil {
		rec.Times = make(map[int]attendance.DayTime)
	}
	rec.Times[day] = t

	if err := r.store.persist(attendanceFile, r.store.attendance); err != nil {
		return attendance.Record{}, err
	}
	return cloneRecord(*rec), nil
}

// cloneRecord detaches the day maps so callers can read them without
// holding the store lock.
func cloneRecord(rec attendance.Record) attendance.Record {
	rec.Days = maps.Clone(rec.Days)
	rec.Times = maps.Clone(rec.Times)
	return rec
}

// indexOf finds the unique record for a key. Callers hold the store lock.
func (r *AttendanceRepository) indexOf(key attendance.Key) int {
	for i, rec := range r.store.attendance {
		if rec.EmployeeID == key.EmployeeID && rec.Month == key.Month && rec.Year == key.Year {
			return i
		}
	}
	return -1
}
