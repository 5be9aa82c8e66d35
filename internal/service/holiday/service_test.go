package holiday

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelpro/staffledger-backend-go/internal/domain/holiday"
	"github.com/excelpro/staffledger-backend-go/internal/repository/jsonstore"
)

func TestHolidayService_AddAndRemove(t *testing.T) {
	ctx := context.Background()
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)
	svc := NewHolidayService(jsonstore.NewHolidayRepository(store))

	added, err := svc.Add(ctx, holiday.AddHolidayRequest{
		Date: "2025-08-15", Reason: "Independence Day", Type: "National",
	})
	require.NoError(t, err)
	assert.Equal(t, holiday.TypeNational, added.Type)

	_, err = svc.Add(ctx, holiday.AddHolidayRequest{Date: "15-08-2025", Reason: "Bad date", Type: "National"})
	assert.Error(t, err)

	listed, err := svc.List(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, svc.Remove(ctx, "2025-08-15"))
	assert.ErrorIs(t, svc.Remove(ctx, "2025-08-15"), holiday.ErrHolidayNotFound)
}
