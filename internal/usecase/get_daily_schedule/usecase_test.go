package get_daily_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/locations"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type mockLocationProvider struct {
	mock.Mock
}

func (m *mockLocationProvider) Get(ctx context.Context, id int64) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

type mockHoursProvider struct {
	mock.Mock
}

func (m *mockHoursProvider) GetLocationHours(ctx context.Context, locationID int64) (domain.WeeklyHours, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.WeeklyHours), args.Error(1)
}

type mockEmployeeDirectory struct {
	mock.Mock
}

func (m *mockEmployeeDirectory) ListByLocation(ctx context.Context, locationID int64) ([]*domain.Employee, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).([]*domain.Employee), args.Error(1)
}

type mockAppointmentProvider struct {
	mock.Mock
}

func (m *mockAppointmentProvider) GetForEmployees(ctx context.Context, providerIDs []int64, from, to time.Time) ([]*domain.Appointment, error) {
	args := m.Called(ctx, providerIDs, from, to)
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

type recordingLogger struct {
	warns int
}

func (l *recordingLogger) Info(format string, args ...any)  {}
func (l *recordingLogger) Warn(format string, args ...any)  { l.warns++ }
func (l *recordingLogger) Error(format string, args ...any) {}

// weeklyOpenOn возвращает недельный график, где открыт только один день
func weeklyOpenOn(weekday int, open, closeAt string) domain.WeeklyHours {
	hours := domain.DefaultWeeklyHours(1)
	openTS := types.TimeString(open)
	closeTS := types.TimeString(closeAt)
	hours[weekday] = domain.BusinessHour{
		LocationID: 1,
		Weekday:    weekday,
		OpenTime:   &openTS,
		CloseTime:  &closeTS,
	}
	return hours
}

func newTestUseCase(
	locationProvider *mockLocationProvider,
	hoursProvider *mockHoursProvider,
	directory *mockEmployeeDirectory,
	appointmentProvider *mockAppointmentProvider,
	logger *recordingLogger,
) *UseCase {
	return NewUseCase(locationProvider, hoursProvider, directory, appointmentProvider, "Europe/Budapest", 30, logger)
}

func TestExecute_OpenDayBuildsSlots(t *testing.T) {
	locationProvider := new(mockLocationProvider)
	locationProvider.On("Get", mock.Anything, int64(1)).Return(&domain.Location{
		ID: 1, Timezone: "Europe/Budapest",
	}, nil)

	// 2026-06-10 среда, ISO weekday = 3
	hoursProvider := new(mockHoursProvider)
	hoursProvider.On("GetLocationHours", mock.Anything, int64(1)).Return(weeklyOpenOn(3, "09:00", "10:30"), nil)

	directory := new(mockEmployeeDirectory)
	directory.On("ListByLocation", mock.Anything, int64(1)).Return([]*domain.Employee{{ID: 5}}, nil)

	appointmentProvider := new(mockAppointmentProvider)
	appointmentProvider.On("GetForEmployees", mock.Anything, []int64{5}, mock.Anything, mock.Anything).
		Return([]*domain.Appointment{}, nil)

	logger := &recordingLogger{}
	uc := newTestUseCase(locationProvider, hoursProvider, directory, appointmentProvider, logger)

	schedule, err := uc.Execute(context.Background(), In{LocationID: 1, Date: "2026-06-10"})
	require.NoError(t, err)

	assert.False(t, schedule.IsClosed)
	assert.Len(t, schedule.Slots, 3)
	assert.Equal(t, "Europe/Budapest", schedule.Timezone)
	assert.False(t, schedule.TimezoneFallback)
	assert.Zero(t, logger.warns)
}

func TestExecute_ClosedDayHasNoSlots(t *testing.T) {
	locationProvider := new(mockLocationProvider)
	locationProvider.On("Get", mock.Anything, int64(1)).Return(&domain.Location{
		ID: 1, Timezone: "Europe/Budapest",
	}, nil)

	hoursProvider := new(mockHoursProvider)
	hoursProvider.On("GetLocationHours", mock.Anything, int64(1)).Return(domain.DefaultWeeklyHours(1), nil)

	directory := new(mockEmployeeDirectory)
	directory.On("ListByLocation", mock.Anything, int64(1)).Return([]*domain.Employee{}, nil)

	appointmentProvider := new(mockAppointmentProvider)
	appointmentProvider.On("GetForEmployees", mock.Anything, []int64{}, mock.Anything, mock.Anything).
		Return([]*domain.Appointment{}, nil)

	uc := newTestUseCase(locationProvider, hoursProvider, directory, appointmentProvider, &recordingLogger{})

	schedule, err := uc.Execute(context.Background(), In{LocationID: 1, Date: "2026-06-10"})
	require.NoError(t, err)

	assert.True(t, schedule.IsClosed)
	assert.Empty(t, schedule.Slots)
}

func TestExecute_DeletedLocation(t *testing.T) {
	locationProvider := new(mockLocationProvider)
	locationProvider.On("Get", mock.Anything, int64(1)).Return(&domain.Location{
		ID: 1, IsDeleted: true,
	}, nil)

	uc := newTestUseCase(locationProvider, new(mockHoursProvider), new(mockEmployeeDirectory), new(mockAppointmentProvider), &recordingLogger{})

	_, err := uc.Execute(context.Background(), In{LocationID: 1, Date: "2026-06-10"})
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestExecute_UnknownLocation(t *testing.T) {
	locationProvider := new(mockLocationProvider)
	locationProvider.On("Get", mock.Anything, int64(99)).Return(nil, locations.ErrLocationNotFound)

	uc := newTestUseCase(locationProvider, new(mockHoursProvider), new(mockEmployeeDirectory), new(mockAppointmentProvider), &recordingLogger{})

	_, err := uc.Execute(context.Background(), In{LocationID: 99, Date: "2026-06-10"})
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestExecute_InvalidDate(t *testing.T) {
	locationProvider := new(mockLocationProvider)
	locationProvider.On("Get", mock.Anything, int64(1)).Return(&domain.Location{
		ID: 1, Timezone: "Europe/Budapest",
	}, nil)

	uc := newTestUseCase(locationProvider, new(mockHoursProvider), new(mockEmployeeDirectory), new(mockAppointmentProvider), &recordingLogger{})

	_, err := uc.Execute(context.Background(), In{LocationID: 1, Date: "10.06.2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TimezoneFallbackFlagged(t *testing.T) {
	locationProvider := new(mockLocationProvider)
	locationProvider.On("Get", mock.Anything, int64(1)).Return(&domain.Location{
		ID: 1, Timezone: "Mars/Olympus",
	}, nil)

	hoursProvider := new(mockHoursProvider)
	hoursProvider.On("GetLocationHours", mock.Anything, int64(1)).Return(domain.DefaultWeeklyHours(1), nil)

	directory := new(mockEmployeeDirectory)
	directory.On("ListByLocation", mock.Anything, int64(1)).Return([]*domain.Employee{}, nil)

	appointmentProvider := new(mockAppointmentProvider)
	appointmentProvider.On("GetForEmployees", mock.Anything, []int64{}, mock.Anything, mock.Anything).
		Return([]*domain.Appointment{}, nil)

	logger := &recordingLogger{}
	uc := newTestUseCase(locationProvider, hoursProvider, directory, appointmentProvider, logger)

	schedule, err := uc.Execute(context.Background(), In{LocationID: 1, Date: "2026-06-10"})
	require.NoError(t, err)

	assert.True(t, schedule.TimezoneFallback)
	assert.Equal(t, "Europe/Budapest", schedule.Timezone)
	assert.Equal(t, 1, logger.warns)
}

func TestExecute_DegradedDayGetsFallbackWindow(t *testing.T) {
	locationProvider := new(mockLocationProvider)
	locationProvider.On("Get", mock.Anything, int64(1)).Return(&domain.Location{
		ID: 1, Timezone: "Europe/Budapest",
	}, nil)

	// День открыт, но времена отсутствуют
	hours := domain.DefaultWeeklyHours(1)
	hours[3] = domain.BusinessHour{LocationID: 1, Weekday: 3}
	hoursProvider := new(mockHoursProvider)
	hoursProvider.On("GetLocationHours", mock.Anything, int64(1)).Return(hours, nil)

	directory := new(mockEmployeeDirectory)
	directory.On("ListByLocation", mock.Anything, int64(1)).Return([]*domain.Employee{}, nil)

	appointmentProvider := new(mockAppointmentProvider)
	appointmentProvider.On("GetForEmployees", mock.Anything, []int64{}, mock.Anything, mock.Anything).
		Return([]*domain.Appointment{}, nil)

	logger := &recordingLogger{}
	uc := newTestUseCase(locationProvider, hoursProvider, directory, appointmentProvider, logger)

	schedule, err := uc.Execute(context.Background(), In{LocationID: 1, Date: "2026-06-10"})
	require.NoError(t, err)

	assert.Equal(t, 8, schedule.OpensAt.Hour())
	assert.Equal(t, 18, schedule.ClosesAt.Hour())
	assert.Len(t, schedule.Slots, 20)
	assert.Equal(t, 1, logger.warns)
}

func TestExecute_ReversedStoredWindowGetsFallback(t *testing.T) {
	locationProvider := new(mockLocationProvider)
	locationProvider.On("Get", mock.Anything, int64(1)).Return(&domain.Location{
		ID: 1, Timezone: "Europe/Budapest",
	}, nil)

	// Импортированная запись с закрытием раньше открытия
	hoursProvider := new(mockHoursProvider)
	hoursProvider.On("GetLocationHours", mock.Anything, int64(1)).Return(weeklyOpenOn(3, "17:00", "09:00"), nil)

	directory := new(mockEmployeeDirectory)
	directory.On("ListByLocation", mock.Anything, int64(1)).Return([]*domain.Employee{}, nil)

	appointmentProvider := new(mockAppointmentProvider)
	appointmentProvider.On("GetForEmployees", mock.Anything, []int64{}, mock.Anything, mock.Anything).
		Return([]*domain.Appointment{}, nil)

	logger := &recordingLogger{}
	uc := newTestUseCase(locationProvider, hoursProvider, directory, appointmentProvider, logger)

	schedule, err := uc.Execute(context.Background(), In{LocationID: 1, Date: "2026-06-10"})
	require.NoError(t, err)

	assert.Equal(t, 8, schedule.OpensAt.Hour())
	assert.Equal(t, 18, schedule.ClosesAt.Hour())
	assert.NotEmpty(t, schedule.Slots)
	assert.Equal(t, 1, logger.warns)
}

func TestExecute_UnparsableStoredTimesDoNotFail(t *testing.T) {
	locationProvider := new(mockLocationProvider)
	locationProvider.On("Get", mock.Anything, int64(1)).Return(&domain.Location{
		ID: 1, Timezone: "Europe/Budapest",
	}, nil)

	hoursProvider := new(mockHoursProvider)
	hoursProvider.On("GetLocationHours", mock.Anything, int64(1)).Return(weeklyOpenOn(3, "9am", "5pm"), nil)

	directory := new(mockEmployeeDirectory)
	directory.On("ListByLocation", mock.Anything, int64(1)).Return([]*domain.Employee{}, nil)

	appointmentProvider := new(mockAppointmentProvider)
	appointmentProvider.On("GetForEmployees", mock.Anything, []int64{}, mock.Anything, mock.Anything).
		Return([]*domain.Appointment{}, nil)

	logger := &recordingLogger{}
	uc := newTestUseCase(locationProvider, hoursProvider, directory, appointmentProvider, logger)

	schedule, err := uc.Execute(context.Background(), In{LocationID: 1, Date: "2026-06-10"})
	require.NoError(t, err)

	assert.Equal(t, 8, schedule.OpensAt.Hour())
	assert.Equal(t, 18, schedule.ClosesAt.Hour())
	assert.Equal(t, 1, logger.warns)
}

func TestExecute_SplitsDayAndWindowAppointments(t *testing.T) {
	zone, err := time.LoadLocation("Europe/Budapest")
	require.NoError(t, err)

	locationProvider := new(mockLocationProvider)
	locationProvider.On("Get", mock.Anything, int64(1)).Return(&domain.Location{
		ID: 1, Timezone: "Europe/Budapest",
	}, nil)

	hoursProvider := new(mockHoursProvider)
	hoursProvider.On("GetLocationHours", mock.Anything, int64(1)).Return(weeklyOpenOn(3, "09:00", "18:00"), nil)

	directory := new(mockEmployeeDirectory)
	directory.On("ListByLocation", mock.Anything, int64(1)).Return([]*domain.Employee{{ID: 5}}, nil)

	onDay := &domain.Appointment{ID: 1, ProviderID: 5, ScheduledStart: time.Date(2026, 6, 10, 14, 0, 0, 0, zone)}
	neighbour := &domain.Appointment{ID: 2, ProviderID: 5, ScheduledStart: time.Date(2026, 6, 12, 14, 0, 0, 0, zone)}

	appointmentProvider := new(mockAppointmentProvider)
	appointmentProvider.On("GetForEmployees", mock.Anything, []int64{5}, mock.Anything, mock.Anything).
		Return([]*domain.Appointment{onDay, neighbour}, nil)

	uc := newTestUseCase(locationProvider, hoursProvider, directory, appointmentProvider, &recordingLogger{})

	schedule, err := uc.Execute(context.Background(), In{LocationID: 1, Date: "2026-06-10"})
	require.NoError(t, err)

	require.Len(t, schedule.Appointments, 1)
	assert.Equal(t, int64(1), schedule.Appointments[0].ID)
	assert.Len(t, schedule.WindowAppointments, 2)
}
