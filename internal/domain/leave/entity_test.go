package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNumberOfDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2026, 3, 10), date(2026, 3, 10), 1},
		{"three days", date(2026, 3, 1), date(2026, 3, 3), 3},
		{"across month boundary", date(2026, 1, 30), date(2026, 2, 2), 4},
		{"full week", date(2026, 6, 1), date(2026, 6, 7), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumberOfDays(tt.start, tt.end))
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	today := date(2026, 3, 15)

	t.Run("valid future range", func(t *testing.T) {
		assert.NoError(t, ValidateDateRange(date(2026, 3, 20), date(2026, 3, 22), today))
	})

	t.Run("starting today is allowed", func(t *testing.T) {
		assert.NoError(t, ValidateDateRange(today, today, today))
	})

	t.Run("end before start", func(t *testing.T) {
		err := ValidateDateRange(date(2026, 3, 22), date(2026, 3, 20), today)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("start in the past", func(t *testing.T) {
		err := ValidateDateRange(date(2026, 3, 14), date(2026, 3, 20), today)
		assert.ErrorIs(t, err, ErrPastDateNotAllowed)
	})

	t.Run("ordering checked before past check", func(t *testing.T) {
		err := ValidateDateRange(date(2026, 3, 10), date(2026, 3, 5), today)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("today with a time component still passes", func(t *testing.T) {
		now := time.Date(2026, 3, 15, 17, 30, 0, 0, time.UTC)
		assert.NoError(t, ValidateDateRange(date(2026, 3, 15), date(2026, 3, 16), now))
	})
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint before", date(2026, 3, 1), date(2026, 3, 5), date(2026, 3, 6), date(2026, 3, 10), false},
		{"touching endpoints overlap", date(2026, 3, 1), date(2026, 3, 5), date(2026, 3, 5), date(2026, 3, 10), true},
		{"contained range", date(2026, 3, 1), date(2026, 3, 10), date(2026, 3, 4), date(2026, 3, 6), true},
		{"identical ranges", date(2026, 3, 1), date(2026, 3, 5), date(2026, 3, 1), date(2026, 3, 5), true},
		{"disjoint after", date(2026, 3, 10), date(2026, 3, 12), date(2026, 3, 1), date(2026, 3, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestDefaultBalances(t *testing.T) {
	b := DefaultBalances()
	assert.Equal(t, 12, b.Casual)
	assert.Equal(t, 12, b.Medical)
	assert.Equal(t, 15, b.Earned)
	assert.Equal(t, 0, b.Unpaid)
}

func TestLeaveTypeHasBalance(t *testing.T) {
	assert.True(t, LeaveTypeCasual.HasBalance())
	assert.True(t, LeaveTypeMedical.HasBalance())
	assert.True(t, LeaveTypeEarned.HasBalance())
	assert.False(t, LeaveTypeUnpaid.HasBalance())
}
