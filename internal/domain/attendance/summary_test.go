package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_ZeroState(t *testing.T) {
	t.Parallel()

	for _, days := range []map[int]Status{nil, {}} {
		s := Summarize(days)
		assert.Zero(t, s.Present)
		assert.Zero(t, s.Absent)
		assert.Zero(t, s.HalfDay)
		assert.Zero(t, s.Leave)
		assert.Zero(t, s.Holiday)
		assert.Zero(t, s.Off)
		assert.True(t, s.TotalWorking.IsZero())
	}
}

func TestSummarize_CountsEveryRecognizedStatus(t *testing.T) {
	t.Parallel()

	days := map[int]Status{
		1: StatusPresent, 2: StatusPresent, 3: StatusPresent,
		4: StatusAbsent,
		5: StatusHalfDay, 6: StatusHalfDay,
		7:  StatusLeave,
		8:  StatusHoliday,
		9:  StatusOff,
		10: StatusUnset,
		11: Status("X"), // unrecognized, excluded from every counter
	}

	s := Summarize(days)

	assert.Equal(t, 3, s.Present)
	assert.Equal(t, 1, s.Absent)
	assert.Equal(t, 2, s.HalfDay)
	assert.Equal(t, 1, s.Leave)
	assert.Equal(t, 1, s.Holiday)
	assert.Equal(t, 1, s.Off)
	assert.Equal(t, 9, s.Marked())
}

func TestSummarize_TotalWorkingFormula(t *testing.T) {
	t.Parallel()

	// present + 0.5*halfDay + leave + holiday + off
	days := map[int]Status{
		1: StatusPresent, 2: StatusPresent,
		3: StatusHalfDay, 4: StatusHalfDay, 5: StatusHalfDay,
		6: StatusLeave,
		7: StatusHoliday,
		8: StatusOff,
		9: StatusAbsent, // absences do not credit working days
	}

	s := Summarize(days)
	assert.True(t, s.TotalWorking.Equal(decimal.RequireFromString("6.5")),
		"got %s", s.TotalWorking)
}

func TestSummarize_FractionalHalfDays(t *testing.T) {
	t.Parallel()

	days := map[int]Status{1: StatusHalfDay, 2: StatusHalfDay, 3: StatusHalfDay}
	s := Summarize(days)
	assert.True(t, s.TotalWorking.Equal(decimal.RequireFromString("1.5")))
}

func TestSummarize_Idempotent(t *testing.T) {
	t.Parallel()

	days := map[int]Status{1: StatusPresent, 2: StatusAbsent, 3: StatusHalfDay}
	first := Summarize(days)
	second := Summarize(days)
	assert.Equal(t, first.Present, second.Present)
	assert.Equal(t, first.Absent, second.Absent)
	assert.True(t, first.TotalWorking.Equal(second.TotalWorking))
}

func TestStatusIsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave, StatusOff, StatusHoliday, StatusUnset} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, Status("X").IsValid())
	assert.False(t, Status("p").IsValid())
}
