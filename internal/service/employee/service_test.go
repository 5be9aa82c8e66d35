package employee

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelpro/staffledger-backend-go/internal/domain/employee"
	"github.com/excelpro/staffledger-backend-go/internal/pkg/storage"
	"github.com/excelpro/staffledger-backend-go/internal/repository/jsonstore"
)

func newEmployeeTestService(t *testing.T) employee.Service {
	t.Helper()
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	fileStorage, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	return NewEmployeeService(jsonstore.NewEmployeeRepository(store), fileStorage)
}

func TestEmployeeService_Create_Success(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeTestService(t)

	created, err := svc.Create(ctx, employee.SaveEmployeeRequest{
		ID:          "EMP-001",
		Name:        "Ravi Kumar",
		Gender:      "Male",
		BasicSalary: decimal.NewFromInt(12000),
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP-001", created.ID)
	assert.Equal(t, employee.StatusActive, created.Status)
	assert.Regexp(t, regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`), created.StatusChangeDate)
}

func TestEmployeeService_Create_GeneratesIDWhenBlank(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeTestService(t)

	created, err := svc.Create(ctx, employee.SaveEmployeeRequest{Name: "No ID"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeTestService(t)

	_, err := svc.Create(ctx, employee.SaveEmployeeRequest{Name: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	_, err = svc.Create(ctx, employee.SaveEmployeeRequest{Name: "X", Gender: "Other"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gender")
}

func TestEmployeeService_Update_PreservesStatusAndPhoto(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeTestService(t)

	created, err := svc.Create(ctx, employee.SaveEmployeeRequest{ID: "EMP-001", Name: "Before"})
	require.NoError(t, err)

	photo, err := svc.AttachPhoto(ctx, created.ID, strings.NewReader("fake-image"), "me.png", "image/png")
	require.NoError(t, err)
	require.NotNil(t, photo.PhotoURL)

	updated, err := svc.Update(ctx, created.ID, employee.SaveEmployeeRequest{Name: "After"})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, employee.StatusActive, updated.Status)
	require.NotNil(t, updated.PhotoURL)
	assert.Equal(t, *photo.PhotoURL, *updated.PhotoURL)
}

func TestEmployeeService_UpdateStatus_StampsDate(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeTestService(t)

	created, err := svc.Create(ctx, employee.SaveEmployeeRequest{ID: "EMP-001", Name: "Toggle"})
	require.NoError(t, err)

	toggled, err := svc.UpdateStatus(ctx, created.ID, employee.UpdateStatusRequest{Status: "Inactive"})
	require.NoError(t, err)
	assert.Equal(t, employee.StatusInactive, toggled.Status)
	assert.Regexp(t, regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`), toggled.StatusChangeDate)
	require.NotNil(t, toggled.LeavingDate)
	assert.Regexp(t, regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`), *toggled.LeavingDate)

	rehired, err := svc.UpdateStatus(ctx, created.ID, employee.UpdateStatusRequest{Status: "Active"})
	require.NoError(t, err)
	assert.Equal(t, employee.StatusActive, rehired.Status)
	assert.Nil(t, rehired.LeavingDate)

	_, err = svc.UpdateStatus(ctx, created.ID, employee.UpdateStatusRequest{Status: "Retired"})
	assert.Error(t, err)

	_, err = svc.UpdateStatus(ctx, "EMP-404", employee.UpdateStatusRequest{Status: "Inactive"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeTestService(t)

	created, err := svc.Create(ctx, employee.SaveEmployeeRequest{ID: "EMP-001", Name: "Temp"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
