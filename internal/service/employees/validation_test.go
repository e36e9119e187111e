package employees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

func TestValidateSchedule_FillsMissingDaysOff(t *testing.T) {
	schedule, err := validateSchedule([]models.ScheduleDayIn{
		{Weekday: 1, IsWorking: true, Start: ptr.Ptr("09:00"), End: ptr.Ptr("18:00")},
	})
	require.NoError(t, err)
	require.Len(t, schedule, 7)

	assert.True(t, schedule[1].IsWorking)

	// Дни, отсутствующие во вводе, считаются нерабочими
	for day := 2; day <= 7; day++ {
		assert.False(t, schedule[day].IsWorking, "weekday %d", day)
	}
}

func TestValidateScheduleDay(t *testing.T) {
	tests := []struct {
		name    string
		day     models.ScheduleDayIn
		wantErr error
	}{
		{
			name:    "weekday out of range",
			day:     models.ScheduleDayIn{Weekday: 0, IsWorking: true, Start: ptr.Ptr("09:00"), End: ptr.Ptr("18:00")},
			wantErr: ErrInvalidWeekday,
		},
		{
			name:    "off day with times",
			day:     models.ScheduleDayIn{Weekday: 1, Start: ptr.Ptr("09:00")},
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "working day without end",
			day:     models.ScheduleDayIn{Weekday: 1, IsWorking: true, Start: ptr.Ptr("09:00")},
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "start not before end",
			day:     models.ScheduleDayIn{Weekday: 1, IsWorking: true, Start: ptr.Ptr("18:00"), End: ptr.Ptr("09:00")},
			wantErr: ErrInvalidSchedule,
		},
		{
			name: "break outside working window",
			day: models.ScheduleDayIn{
				Weekday: 1, IsWorking: true, Start: ptr.Ptr("09:00"), End: ptr.Ptr("18:00"),
				Breaks: []models.ScheduleBreakIn{{Start: "08:00", End: "09:30"}},
			},
			wantErr: ErrInvalidScheduleBreak,
		},
		{
			name: "break reversed",
			day: models.ScheduleDayIn{
				Weekday: 1, IsWorking: true, Start: ptr.Ptr("09:00"), End: ptr.Ptr("18:00"),
				Breaks: []models.ScheduleBreakIn{{Start: "14:00", End: "13:00"}},
			},
			wantErr: ErrInvalidScheduleBreak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateScheduleDay(tt.day)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateScheduleDay_BreakAtExactBounds(t *testing.T) {
	// Границы рабочего интервала включительные для перерывов
	day, err := validateScheduleDay(models.ScheduleDayIn{
		Weekday: 5, IsWorking: true, Start: ptr.Ptr("09:00"), End: ptr.Ptr("18:00"),
		Breaks: []models.ScheduleBreakIn{{Start: "09:00", End: "18:00"}},
	})
	require.NoError(t, err)
	require.Len(t, day.Breaks, 1)
	assert.Equal(t, "09:00", day.Breaks[0].Start.String())
}

func TestValidateVisibility(t *testing.T) {
	assert.NoError(t, validateVisibility("public"))
	assert.NoError(t, validateVisibility("archived"))
	assert.ErrorIs(t, validateVisibility("hidden"), ErrInvalidVisibility)
}
