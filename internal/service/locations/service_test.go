package locations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/location"
	"github.com/m04kA/SMC-ScheduleService/internal/service/locations/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type mockLocationRepo struct {
	mock.Mock
}

func (m *mockLocationRepo) Create(ctx context.Context, loc *domain.Location) (*domain.Location, error) {
	args := m.Called(ctx, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *mockLocationRepo) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *mockLocationRepo) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Location, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domain.Location), args.Error(1)
}

func (m *mockLocationRepo) Update(ctx context.Context, id int64, loc *domain.Location) (*domain.Location, error) {
	args := m.Called(ctx, id, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *mockLocationRepo) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockLocationRepo) Restore(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, args ...any)  {}
func (nopLogger) Warn(format string, args ...any)  {}
func (nopLogger) Error(format string, args ...any) {}

func TestCreate_InvalidTimezoneRejected(t *testing.T) {
	repo := new(mockLocationRepo)
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), models.CreateLocationIn{
		Name:     "Салон на Невском",
		Timezone: "Mars/Olympus",
	})
	assert.ErrorIs(t, err, ErrInvalidTimezone)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_EmptyTimezoneAllowed(t *testing.T) {
	repo := new(mockLocationRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Location{ID: 1, Name: "Салон"}, nil)

	svc := NewService(repo, nopLogger{})

	// Пустая таймзона допустима: при чтении сработает цепочка фолбэков
	loc, err := svc.Create(context.Background(), models.CreateLocationIn{Name: "Салон"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), loc.ID)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := new(mockLocationRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{
		ID: 1, Name: "Салон", City: "Будапешт", Timezone: "Europe/Budapest",
	}, nil)
	repo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(loc *domain.Location) bool {
		// Nil поля не изменяются
		return loc.Name == "Новое имя" && loc.City == "Будапешт" && loc.Timezone == "Europe/Budapest"
	})).Return(&domain.Location{ID: 1, Name: "Новое имя"}, nil)

	svc := NewService(repo, nopLogger{})

	loc, err := svc.Update(context.Background(), 1, models.UpdateLocationIn{
		Name: ptr.Ptr("Новое имя"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Новое имя", loc.Name)
	repo.AssertExpectations(t)
}

func TestDelete_UnknownLocation(t *testing.T) {
	repo := new(mockLocationRepo)
	repo.On("SoftDelete", mock.Anything, int64(99)).Return(location.ErrLocationNotFound)

	svc := NewService(repo, nopLogger{})

	assert.ErrorIs(t, svc.Delete(context.Background(), 99), ErrLocationNotFound)
}
