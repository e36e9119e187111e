package employees

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type mockEmployeeRepo struct {
	mock.Mock
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, emp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Employee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) ListByLocation(ctx context.Context, locationID int64) ([]*domain.Employee, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Update(ctx context.Context, id int64, emp *domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, id, emp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEmployeeRepo) Restore(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEmployeeRepo) ReplaceLocations(ctx context.Context, employeeID int64, locationIDs []int64) error {
	return m.Called(ctx, employeeID, locationIDs).Error(0)
}

func (m *mockEmployeeRepo) ReplaceServices(ctx context.Context, employeeID int64, services []domain.EmployeeService) error {
	return m.Called(ctx, employeeID, services).Error(0)
}

func (m *mockEmployeeRepo) ReplaceSchedule(ctx context.Context, employeeID int64, schedule domain.WeeklySchedule) error {
	return m.Called(ctx, employeeID, schedule).Error(0)
}

func (m *mockEmployeeRepo) GetLocations(ctx context.Context, employeeID int64) ([]int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *mockEmployeeRepo) GetServices(ctx context.Context, employeeID int64) ([]domain.EmployeeService, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]domain.EmployeeService), args.Error(1)
}

func (m *mockEmployeeRepo) GetSchedule(ctx context.Context, employeeID int64) (domain.WeeklySchedule, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(domain.WeeklySchedule), args.Error(1)
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, args ...any)  {}
func (nopLogger) Warn(format string, args ...any)  {}
func (nopLogger) Error(format string, args ...any) {}

func emptyAssignments(repo *mockEmployeeRepo, employeeID int64) {
	repo.On("GetLocations", mock.Anything, employeeID).Return([]int64{}, nil)
	repo.On("GetServices", mock.Anything, employeeID).Return([]domain.EmployeeService{}, nil)
	repo.On("GetSchedule", mock.Anything, employeeID).Return(domain.WeeklySchedule{}, nil)
}

func TestList_SortsByNameCaseInsensitive(t *testing.T) {
	repo := new(mockEmployeeRepo)
	repo.On("List", mock.Anything, domain.ListFilter{}).Return([]*domain.Employee{
		{ID: 3, Name: "zoe"},
		{ID: 1, Name: "Anna"},
		{ID: 2, Name: "anna"},
	}, nil)
	for _, id := range []int64{1, 2, 3} {
		emptyAssignments(repo, id)
	}

	svc := NewService(repo, new(mockCatalog), &mockTxManager{}, nopLogger{})

	emps, err := svc.List(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, emps, 3)

	// Регистронезависимая сортировка, при равенстве имен по ID
	assert.Equal(t, int64(1), emps[0].ID)
	assert.Equal(t, int64(2), emps[1].ID)
	assert.Equal(t, int64(3), emps[2].ID)
}

func TestEnrichServices_EmptyInput(t *testing.T) {
	catalog := new(mockCatalog)
	svc := NewService(new(mockEmployeeRepo), catalog, &mockTxManager{}, nopLogger{})

	enriched, err := svc.EnrichServices(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, enriched)

	catalog.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything)
}

func TestEnrichServices_PriceOverrideAndMissingCatalogEntry(t *testing.T) {
	catalog := new(mockCatalog)
	catalog.On("ListByIDs", mock.Anything, []int64{10, 11, 12}).Return([]*domain.Service{
		{ID: 10, Name: "Стрижка", DurationMinutes: 30, Price: 1500},
		{ID: 12, Name: "Окрашивание", DurationMinutes: 90, Price: 5000},
	}, nil)

	svc := NewService(new(mockEmployeeRepo), catalog, &mockTxManager{}, nopLogger{})

	enriched, err := svc.EnrichServices(context.Background(), []domain.EmployeeService{
		{ServiceID: 10, SortOrder: 1, Price: ptr.Ptr(1800.0)},
		{ServiceID: 11, SortOrder: 2}, // отсутствует в каталоге
		{ServiceID: 12, SortOrder: 3},
	})
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	assert.Equal(t, int64(10), enriched[0].ServiceID)
	assert.Equal(t, 1800.0, enriched[0].Price)
	assert.Equal(t, 30, enriched[0].DurationMinutes)

	assert.Equal(t, int64(12), enriched[1].ServiceID)
	assert.Equal(t, 5000.0, enriched[1].Price)
}

func TestUpdate_NilAssignmentsUntouched(t *testing.T) {
	repo := new(mockEmployeeRepo)
	repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Employee{
		ID: 7, Name: "Ольга", Visibility: domain.VisibilityPublic,
	}, nil)
	repo.On("Update", mock.Anything, int64(7), mock.Anything).Return(&domain.Employee{ID: 7}, nil)
	emptyAssignments(repo, 7)

	svc := NewService(repo, new(mockCatalog), &mockTxManager{}, nopLogger{})

	emp, err := svc.Update(context.Background(), 7, models.UpdateEmployeeIn{
		Name: ptr.Ptr("Ольга Петрова"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ольга Петрова", emp.Name)

	repo.AssertNotCalled(t, "ReplaceLocations", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ReplaceServices", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ReplaceSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_InvalidVisibilityRejectedBeforeWrite(t *testing.T) {
	repo := new(mockEmployeeRepo)
	svc := NewService(repo, new(mockCatalog), &mockTxManager{}, nopLogger{})

	_, err := svc.Create(context.Background(), models.CreateEmployeeIn{
		Name:       "Иван",
		Visibility: "secret",
	})
	assert.ErrorIs(t, err, ErrInvalidVisibility)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
