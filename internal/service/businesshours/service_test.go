package businesshours

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/cache"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/location"
	"github.com/m04kA/SMC-ScheduleService/internal/service/businesshours/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type mockHoursRepo struct {
	mock.Mock
}

func (m *mockHoursRepo) GetByLocation(ctx context.Context, locationID int64) ([]*domain.BusinessHour, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BusinessHour), args.Error(1)
}

func (m *mockHoursRepo) ReplaceForLocation(ctx context.Context, locationID int64, hours []*domain.BusinessHour) error {
	return m.Called(ctx, locationID, hours).Error(0)
}

type mockLocationRepo struct {
	mock.Mock
}

func (m *mockLocationRepo) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

type mockHoursCache struct {
	mock.Mock
}

func (m *mockHoursCache) Get(ctx context.Context, locationID int64) (domain.WeeklyHours, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.WeeklyHours), args.Error(1)
}

func (m *mockHoursCache) Set(ctx context.Context, locationID int64, hours domain.WeeklyHours) error {
	return m.Called(ctx, locationID, hours).Error(0)
}

func (m *mockHoursCache) Invalidate(ctx context.Context, locationID int64) error {
	return m.Called(ctx, locationID).Error(0)
}

// mockTxManager выполняет функцию без реальной транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, args ...any)  {}
func (nopLogger) Warn(format string, args ...any)  {}
func (nopLogger) Error(format string, args ...any) {}

func newTestService(hoursRepo *mockHoursRepo, locationRepo *mockLocationRepo, hoursCache *mockHoursCache) *Service {
	return NewService(hoursRepo, locationRepo, hoursCache, &mockTxManager{}, nopLogger{})
}

func TestGetLocationHours_LocationNotFound(t *testing.T) {
	locationRepo := new(mockLocationRepo)
	locationRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, location.ErrLocationNotFound)

	svc := newTestService(new(mockHoursRepo), locationRepo, new(mockHoursCache))

	_, err := svc.GetLocationHours(context.Background(), 42)
	assert.ErrorIs(t, err, ErrLocationNotFound)
	locationRepo.AssertExpectations(t)
}

func TestGetLocationHours_CacheHitSkipsRepo(t *testing.T) {
	locationRepo := new(mockLocationRepo)
	locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)

	cached := domain.DefaultWeeklyHours(1)
	hoursCache := new(mockHoursCache)
	hoursCache.On("Get", mock.Anything, int64(1)).Return(cached, nil)

	hoursRepo := new(mockHoursRepo)
	svc := newTestService(hoursRepo, locationRepo, hoursCache)

	got, err := svc.GetLocationHours(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, cached, got)

	hoursRepo.AssertNotCalled(t, "GetByLocation", mock.Anything, mock.Anything)
}

func TestGetLocationHours_FillsMissingDaysClosed(t *testing.T) {
	locationRepo := new(mockLocationRepo)
	locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)

	hoursCache := new(mockHoursCache)
	hoursCache.On("Get", mock.Anything, int64(1)).Return(nil, cache.ErrCacheMiss)
	hoursCache.On("Set", mock.Anything, int64(1), mock.Anything).Return(nil)

	open := types.TimeString("09:00")
	closeAt := types.TimeString("18:00")
	hoursRepo := new(mockHoursRepo)
	hoursRepo.On("GetByLocation", mock.Anything, int64(1)).Return([]*domain.BusinessHour{
		{LocationID: 1, Weekday: 1, OpenTime: &open, CloseTime: &closeAt},
	}, nil)

	svc := newTestService(hoursRepo, locationRepo, hoursCache)

	got, err := svc.GetLocationHours(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 7)

	assert.True(t, got[1].IsOpen())
	assert.Equal(t, open, *got[1].OpenTime)

	// Дни без сохраненной записи возвращаются как выходные
	for day := 2; day <= 7; day++ {
		assert.True(t, got[day].IsClosed, "weekday %d", day)
	}

	hoursCache.AssertExpectations(t)
}

func TestSaveLocationHours_Validation(t *testing.T) {
	tests := []struct {
		name    string
		day     models.DayHoursIn
		wantErr error
	}{
		{
			name:    "weekday out of range",
			day:     models.DayHoursIn{Weekday: 8, OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("18:00")},
			wantErr: ErrInvalidWeekday,
		},
		{
			name:    "only open time set",
			day:     models.DayHoursIn{Weekday: 1, OpenTime: ptr.Ptr("09:00")},
			wantErr: ErrMissingTime,
		},
		{
			name:    "time off the grid",
			day:     models.DayHoursIn{Weekday: 1, OpenTime: ptr.Ptr("09:10"), CloseTime: ptr.Ptr("18:00")},
			wantErr: ErrInvalidTime,
		},
		{
			name:    "malformed time",
			day:     models.DayHoursIn{Weekday: 1, OpenTime: ptr.Ptr("9am"), CloseTime: ptr.Ptr("18:00")},
			wantErr: ErrInvalidTime,
		},
		{
			name:    "close before open",
			day:     models.DayHoursIn{Weekday: 1, OpenTime: ptr.Ptr("18:00"), CloseTime: ptr.Ptr("09:00")},
			wantErr: ErrOrderViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locationRepo := new(mockLocationRepo)
			locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)

			// Валидация должна отработать до первого обращения к репозиторию
			hoursRepo := new(mockHoursRepo)
			svc := newTestService(hoursRepo, locationRepo, new(mockHoursCache))

			_, err := svc.SaveLocationHours(context.Background(), 1, models.SaveHoursIn{
				Days: []models.DayHoursIn{tt.day},
			})
			assert.ErrorIs(t, err, tt.wantErr)
			hoursRepo.AssertNotCalled(t, "ReplaceForLocation", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSaveLocationHours_BothTimesNilMeansClosed(t *testing.T) {
	locationRepo := new(mockLocationRepo)
	locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)

	hoursRepo := new(mockHoursRepo)
	hoursRepo.On("ReplaceForLocation", mock.Anything, int64(1), mock.Anything).Return(nil)

	hoursCache := new(mockHoursCache)
	hoursCache.On("Invalidate", mock.Anything, int64(1)).Return(nil)

	svc := newTestService(hoursRepo, locationRepo, hoursCache)

	got, err := svc.SaveLocationHours(context.Background(), 1, models.SaveHoursIn{
		Days: []models.DayHoursIn{{Weekday: 3}},
	})
	require.NoError(t, err)

	assert.True(t, got[3].IsClosed)
	assert.Nil(t, got[3].OpenTime)
	hoursCache.AssertExpectations(t)
}

func TestSaveLocationHours_LastDuplicateWins(t *testing.T) {
	locationRepo := new(mockLocationRepo)
	locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)

	hoursRepo := new(mockHoursRepo)
	hoursRepo.On("ReplaceForLocation", mock.Anything, int64(1), mock.MatchedBy(func(rows []*domain.BusinessHour) bool {
		return len(rows) == 1 && rows[0].OpenTime != nil && *rows[0].OpenTime == "10:00"
	})).Return(nil)

	hoursCache := new(mockHoursCache)
	hoursCache.On("Invalidate", mock.Anything, int64(1)).Return(nil)

	svc := newTestService(hoursRepo, locationRepo, hoursCache)

	got, err := svc.SaveLocationHours(context.Background(), 1, models.SaveHoursIn{
		Days: []models.DayHoursIn{
			{Weekday: 1, OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("18:00")},
			{Weekday: 1, OpenTime: ptr.Ptr("10:00"), CloseTime: ptr.Ptr("19:00")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("10:00"), *got[1].OpenTime)
	hoursRepo.AssertExpectations(t)
}

func TestSaveLocationHours_InvalidationFailureIsAdvisory(t *testing.T) {
	locationRepo := new(mockLocationRepo)
	locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)

	hoursRepo := new(mockHoursRepo)
	hoursRepo.On("ReplaceForLocation", mock.Anything, int64(1), mock.Anything).Return(nil)

	// Кэш консультативный: упавшая инвалидация не отменяет сохранение,
	// устаревший график живет не дольше TTL
	hoursCache := new(mockHoursCache)
	hoursCache.On("Invalidate", mock.Anything, int64(1)).Return(errors.New("connection refused"))

	svc := newTestService(hoursRepo, locationRepo, hoursCache)

	got, err := svc.SaveLocationHours(context.Background(), 1, models.SaveHoursIn{
		Days: []models.DayHoursIn{{Weekday: 2, IsClosed: true}},
	})
	require.NoError(t, err)
	assert.True(t, got[2].IsClosed)
	hoursCache.AssertExpectations(t)
}

func TestSaveLocationHours_RepoErrorPropagates(t *testing.T) {
	locationRepo := new(mockLocationRepo)
	locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)

	repoErr := errors.New("connection reset")
	hoursRepo := new(mockHoursRepo)
	hoursRepo.On("ReplaceForLocation", mock.Anything, int64(1), mock.Anything).Return(repoErr)

	hoursCache := new(mockHoursCache)
	svc := newTestService(hoursRepo, locationRepo, hoursCache)

	_, err := svc.SaveLocationHours(context.Background(), 1, models.SaveHoursIn{
		Days: []models.DayHoursIn{{Weekday: 2, IsClosed: true}},
	})
	assert.ErrorIs(t, err, repoErr)
	hoursCache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}
