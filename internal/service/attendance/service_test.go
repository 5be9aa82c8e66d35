package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelpro/staffledger-backend-go/internal/domain/attendance"
	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
	"github.com/excelpro/staffledger-backend-go/internal/repository/jsonstore"
)

func newAttendanceTestService(t *testing.T) (attendance.Service, *jsonstore.Store) {
	t.Helper()
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	_, err = jsonstore.NewEmployeeRepository(store).Create(context.Background(), employee.Employee{
		ID: "EMP-001", Name: "Ravi Kumar", Designation: "Guard", Status: employee.StatusActive,
	})
	require.NoError(t, err)

	svc := NewAttendanceService(
		jsonstore.NewAttendanceRepository(store),
		jsonstore.NewEmployeeRepository(store),
	)
	return svc, store
}

func TestAttendanceService_MarkDay(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAttendanceTestService(t)

	rec, err := svc.MarkDay(ctx, "EMP-001", "January", 2025, attendance.MarkDayRequest{Day: 5, Status: "P"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, rec.Days[5])

	// overwrite is a plain replace
	rec, err = svc.MarkDay(ctx, "EMP-001", "January", 2025, attendance.MarkDayRequest{Day: 5, Status: "A"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, rec.Days[5])

	_, err = svc.MarkDay(ctx, "EMP-001", "January", 2025, attendance.MarkDayRequest{Day: 32, Status: "P"})
	assert.Error(t, err)

	_, err = svc.MarkDay(ctx, "EMP-001", "Smarch", 2025, attendance.MarkDayRequest{Day: 5, Status: "P"})
	assert.Error(t, err)

	_, err = svc.MarkDay(ctx, "EMP-404", "January", 2025, attendance.MarkDayRequest{Day: 5, Status: "P"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_MarkTime(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAttendanceTestService(t)

	rec, err := svc.MarkTime(ctx, "EMP-001", "January", 2025, attendance.MarkTimeRequest{Day: 5, In: "09:00", Out: "17:30"})
	require.NoError(t, err)
	assert.Equal(t, attendance.DayTime{In: "09:00", Out: "17:30"}, rec.Times[5])
}

func TestAttendanceService_Sheet(t *testing.T) {
	ctx := context.Background()
	svc, store := newAttendanceTestService(t)

	_, err := svc.MarkDay(ctx, "EMP-001", "January", 2025, attendance.MarkDayRequest{Day: 1, Status: "P"})
	require.NoError(t, err)
	_, err = svc.MarkDay(ctx, "EMP-001", "January", 2025, attendance.MarkDayRequest{Day: 2, Status: "HD"})
	require.NoError(t, err)

	// records from other months never leak into the grid
	_, err = svc.MarkDay(ctx, "EMP-001", "February", 2025, attendance.MarkDayRequest{Day: 1, Status: "A"})
	require.NoError(t, err)

	// inactive employees are excluded even with records on file
	_, err = jsonstore.NewEmployeeRepository(store).Create(ctx, employee.Employee{
		ID: "EMP-002", Name: "Gone", Status: employee.StatusInactive,
	})
	require.NoError(t, err)

	sheet, err := svc.Sheet(ctx, "January", 2025)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)

	row := sheet.Rows[0]
	assert.Equal(t, "Ravi Kumar", row.EmployeeName)
	assert.Equal(t, 1, row.Summary.Present)
	assert.Equal(t, 1, row.Summary.HalfDay)
	assert.Equal(t, 0, row.Summary.Absent)
	assert.Equal(t, "1.5", row.Summary.TotalWorking.String())
}
