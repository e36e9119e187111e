package get_daily_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestGenerateSlots_LastSlotFitsBeforeClose(t *testing.T) {
	open := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)
	closeAt := time.Date(2026, 6, 10, 10, 30, 0, 0, time.UTC)

	slots := generateSlots(open, closeAt, 30)
	require.Len(t, slots, 3)

	// Последний слот целиком помещается до закрытия
	assert.Equal(t, open, slots[0])
	assert.Equal(t, time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC), slots[2])
}

func TestGenerateSlots_SlotLongerThanWindow(t *testing.T) {
	open := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)
	closeAt := time.Date(2026, 6, 10, 9, 15, 0, 0, time.UTC)

	slots := generateSlots(open, closeAt, 30)
	assert.Empty(t, slots)
}

func TestDayWindow_DegradedWhenEntryMalformed(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	ts := func(s string) *types.TimeString {
		v := types.TimeString(s)
		return &v
	}

	tests := []struct {
		name string
		day  domain.BusinessHour
	}{
		{
			name: "times missing",
			day:  domain.BusinessHour{Weekday: 3},
		},
		{
			name: "close not after open",
			day:  domain.BusinessHour{Weekday: 3, OpenTime: ts("17:00"), CloseTime: ts("09:00")},
		},
		{
			name: "unparsable times",
			day:  domain.BusinessHour{Weekday: 3, OpenTime: ts("9am"), CloseTime: ts("5pm")},
		},
	}

	// Поврежденная запись дня не валит агрегацию: применяется страховочное окно
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, closeAt, degraded := dayWindow(tt.day, date, time.UTC)

			assert.True(t, degraded)
			assert.Equal(t, 8, open.Hour())
			assert.Equal(t, 18, closeAt.Hour())
		})
	}
}

func TestDayWindow_UsesStoredTimes(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	openTS := types.TimeString("10:00")
	closeTS := types.TimeString("19:00")

	open, closeAt, degraded := dayWindow(domain.BusinessHour{
		Weekday: 3, OpenTime: &openTS, CloseTime: &closeTS,
	}, date, time.UTC)

	assert.False(t, degraded)
	assert.Equal(t, 10, open.Hour())
	assert.Equal(t, 19, closeAt.Hour())
}

func TestPaddedWindow(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	from, to := paddedWindow(date)
	assert.Equal(t, time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 6, 18, 0, 0, 0, 0, time.UTC), to)
}
