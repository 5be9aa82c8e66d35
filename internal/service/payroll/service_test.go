package payroll

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelpro/staffledger-backend-go/internal/domain/attendance"
	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
	"github.com/excelpro/staffledger-backend-go/internal/domain/payroll"
	"github.com/excelpro/staffledger-backend-go/internal/repository/jsonstore"
)

func newPayrollTestService(t *testing.T) (payroll.Service, *jsonstore.Store) {
	t.Helper()
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	svc := NewPayrollService(
		jsonstore.NewSalaryRepository(store),
		jsonstore.NewAttendanceRepository(store),
		jsonstore.NewEmployeeRepository(store),
	)
	return svc, store
}

func createPayrollTestEmployee(t *testing.T, ctx context.Context, store *jsonstore.Store, id string, basic int64) {
	t.Helper()
	_, err := jsonstore.NewEmployeeRepository(store).Create(ctx, employee.Employee{
		ID:          id,
		Name:        "Employee " + id,
		BasicSalary: decimal.NewFromInt(basic),
		Status:      employee.StatusActive,
	})
	require.NoError(t, err)
}

func TestPayrollService_Sheet_ZeroState(t *testing.T) {
	ctx := context.Background()
	svc, store := newPayrollTestService(t)
	createPayrollTestEmployee(t, ctx, store, "EMP-001", 9000)

	sheet, err := svc.Sheet(ctx, "January", 2025)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)

	row := sheet.Rows[0]
	// no attendance, no adjustments: defaults apply, nothing deductible
	assert.Equal(t, 0, row.Attendance.Absent)
	assert.True(t, row.Record.AllowedLeave.Equal(decimal.NewFromInt(1)))
	assert.True(t, row.Computation.DeductibleDays.IsZero())
	assert.True(t, row.Computation.NetPayable.Equal(decimal.NewFromInt(9000)))
}

func TestPayrollService_Sheet_FullComputation(t *testing.T) {
	ctx := context.Background()
	svc, store := newPayrollTestService(t)
	createPayrollTestEmployee(t, ctx, store, "EMP-001", 9000)

	attRepo := jsonstore.NewAttendanceRepository(store)
	key := attendance.Key{EmployeeID: "EMP-001", Month: "January", Year: 2025}
	for day := 1; day <= 3; day++ {
		_, err := attRepo.UpsertDayStatus(ctx, key, day, attendance.StatusAbsent)
		require.NoError(t, err)
	}

	_, err := svc.UpdateField(ctx, "EMP-001", payroll.UpdateFieldRequest{
		Month: "January", Year: 2025, Field: "pf", Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	_, err = svc.UpdateField(ctx, "EMP-001", payroll.UpdateFieldRequest{
		Month: "January", Year: 2025, Field: "advancePaid", Amount: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	row, err := svc.EmployeeRow(ctx, "EMP-001", "January", 2025)
	require.NoError(t, err)

	// 3 absences less 1 allowed leave, at 9000/30 per day
	assert.True(t, row.Computation.DeductibleDays.Equal(decimal.NewFromInt(2)))
	assert.True(t, row.Computation.LeaveCharge.Equal(decimal.NewFromInt(600)))
	assert.True(t, row.Computation.GrossEarnings.Equal(decimal.NewFromInt(8400)))
	assert.True(t, row.Computation.TotalDeductions.Equal(decimal.NewFromInt(100)))
	assert.True(t, row.Computation.NetPayable.Equal(decimal.NewFromInt(7800)))
}

func TestPayrollService_Sheet_SkipsInactiveEmployees(t *testing.T) {
	ctx := context.Background()
	svc, store := newPayrollTestService(t)
	createPayrollTestEmployee(t, ctx, store, "EMP-001", 9000)

	_, err := jsonstore.NewEmployeeRepository(store).Create(ctx, employee.Employee{
		ID: "EMP-002", Name: "Gone", Status: employee.StatusInactive,
	})
	require.NoError(t, err)

	sheet, err := svc.Sheet(ctx, "January", 2025)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "EMP-001", sheet.Rows[0].EmployeeID)
}

func TestPayrollService_UpdateField_Validation(t *testing.T) {
	ctx := context.Background()
	svc, store := newPayrollTestService(t)
	createPayrollTestEmployee(t, ctx, store, "EMP-001", 9000)

	_, err := svc.UpdateField(ctx, "EMP-001", payroll.UpdateFieldRequest{
		Month: "Janvier", Year: 2025, Field: "pf", Amount: decimal.NewFromInt(1),
	})
	assert.Error(t, err)

	_, err = svc.UpdateField(ctx, "EMP-001", payroll.UpdateFieldRequest{
		Month: "January", Year: 2025, Field: "pf", Amount: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidAmount)

	_, err = svc.UpdateField(ctx, "EMP-404", payroll.UpdateFieldRequest{
		Month: "January", Year: 2025, Field: "pf", Amount: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.UpdateField(ctx, "EMP-001", payroll.UpdateFieldRequest{
		Month: "January", Year: 2025, Field: "netPayable", Amount: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, payroll.ErrUnknownField)
}

func TestPayrollService_EmployeeRow_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPayrollTestService(t)

	_, err := svc.EmployeeRow(ctx, "EMP-404", "January", 2025)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
