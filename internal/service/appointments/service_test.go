package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, appt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) Update(ctx context.Context, id int64, appt *domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, id, appt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAppointmentRepo) Restore(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) Count(ctx context.Context, filter domain.AppointmentFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepo) GetByProvidersInRange(ctx context.Context, providerIDs []int64, from, to time.Time) ([]*domain.Appointment, error) {
	args := m.Called(ctx, providerIDs, from, to)
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

type mockEmployeeRepo struct {
	mock.Mock
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, args ...any)  {}
func (nopLogger) Warn(format string, args ...any)  {}
func (nopLogger) Error(format string, args ...any) {}

func budapest(t *testing.T) *time.Location {
	t.Helper()
	zone, err := time.LoadLocation("Europe/Budapest")
	require.NoError(t, err)
	return zone
}

func activeProvider(employeeRepo *mockEmployeeRepo, id int64) {
	employeeRepo.On("GetByID", mock.Anything, id).Return(&domain.Employee{ID: id}, nil)
}

func TestCreate_EndComputedFromServiceDuration(t *testing.T) {
	zone := budapest(t)

	employeeRepo := new(mockEmployeeRepo)
	activeProvider(employeeRepo, 5)

	catalog := new(mockCatalog)
	catalog.On("GetByID", mock.Anything, int64(10)).Return(&domain.Service{ID: 10, DurationMinutes: 45}, nil)

	repo := new(mockAppointmentRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(appt *domain.Appointment) bool {
		return appt.ScheduledEnd.Sub(appt.ScheduledStart) == 45*time.Minute
	})).Return(&domain.Appointment{ID: 1}, nil)

	svc := NewService(repo, employeeRepo, catalog, zone, nopLogger{})

	_, err := svc.Create(context.Background(), models.CreateAppointmentIn{
		ServiceID:    10,
		ProviderID:   5,
		CustomerName: "Анна",
		Date:         "2026-06-10",
		StartTime:    "14:00",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreate_StartInterpretedInReferenceZone(t *testing.T) {
	zone := budapest(t)

	employeeRepo := new(mockEmployeeRepo)
	activeProvider(employeeRepo, 5)

	catalog := new(mockCatalog)
	catalog.On("GetByID", mock.Anything, int64(10)).Return(&domain.Service{ID: 10, DurationMinutes: 30}, nil)

	repo := new(mockAppointmentRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(appt *domain.Appointment) bool {
		want := time.Date(2026, 6, 10, 14, 0, 0, 0, zone)
		return appt.ScheduledStart.Equal(want)
	})).Return(&domain.Appointment{ID: 1}, nil)

	svc := NewService(repo, employeeRepo, catalog, zone, nopLogger{})

	_, err := svc.Create(context.Background(), models.CreateAppointmentIn{
		ServiceID:    10,
		ProviderID:   5,
		CustomerName: "Анна",
		Date:         "2026-06-10",
		StartTime:    "14:00",
		EndTime:      "15:00",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      models.CreateAppointmentIn
		wantErr error
	}{
		{
			name: "invalid email",
			in: models.CreateAppointmentIn{
				ServiceID: 10, ProviderID: 5, CustomerName: "Анна",
				CustomerEmail: ptr.Ptr("not-an-email"),
				Date:          "2026-06-10", StartTime: "14:00",
			},
			wantErr: ErrInvalidEmail,
		},
		{
			name: "invalid date",
			in: models.CreateAppointmentIn{
				ServiceID: 10, ProviderID: 5, CustomerName: "Анна",
				Date: "10.06.2026", StartTime: "14:00",
			},
			wantErr: ErrInvalidDate,
		},
		{
			name: "end before start",
			in: models.CreateAppointmentIn{
				ServiceID: 10, ProviderID: 5, CustomerName: "Анна",
				Date: "2026-06-10", StartTime: "14:00", EndTime: "13:00",
			},
			wantErr: ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employeeRepo := new(mockEmployeeRepo)
			activeProvider(employeeRepo, 5)

			catalog := new(mockCatalog)
			catalog.On("GetByID", mock.Anything, int64(10)).Return(&domain.Service{ID: 10, DurationMinutes: 30}, nil)

			repo := new(mockAppointmentRepo)
			svc := NewService(repo, employeeRepo, catalog, time.UTC, nopLogger{})

			_, err := svc.Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_ProviderNotFound(t *testing.T) {
	employeeRepo := new(mockEmployeeRepo)
	employeeRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, employee.ErrEmployeeNotFound)

	svc := NewService(new(mockAppointmentRepo), employeeRepo, new(mockCatalog), time.UTC, nopLogger{})

	_, err := svc.Create(context.Background(), models.CreateAppointmentIn{
		ServiceID: 10, ProviderID: 5, CustomerName: "Анна",
		Date: "2026-06-10", StartTime: "14:00",
	})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestCreate_SoftDeletedProviderRejected(t *testing.T) {
	employeeRepo := new(mockEmployeeRepo)
	employeeRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Employee{ID: 5, IsDeleted: true}, nil)

	svc := NewService(new(mockAppointmentRepo), employeeRepo, new(mockCatalog), time.UTC, nopLogger{})

	_, err := svc.Create(context.Background(), models.CreateAppointmentIn{
		ServiceID: 10, ProviderID: 5, CustomerName: "Анна",
		Date: "2026-06-10", StartTime: "14:00",
	})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestCreate_NormalizesStatuses(t *testing.T) {
	employeeRepo := new(mockEmployeeRepo)
	activeProvider(employeeRepo, 5)

	catalog := new(mockCatalog)
	catalog.On("GetByID", mock.Anything, int64(10)).Return(&domain.Service{ID: 10, DurationMinutes: 30}, nil)

	repo := new(mockAppointmentRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(appt *domain.Appointment) bool {
		return appt.Status == domain.StatusPending && appt.PaymentStatus == nil
	})).Return(&domain.Appointment{ID: 1}, nil)

	svc := NewService(repo, employeeRepo, catalog, time.UTC, nopLogger{})

	// Нераспознанный статус приводится к pending, нераспознанная оплата сбрасывается
	_, err := svc.Create(context.Background(), models.CreateAppointmentIn{
		ServiceID: 10, ProviderID: 5, CustomerName: "Анна",
		Date: "2026-06-10", StartTime: "14:00",
		Status:        "approved",
		PaymentStatus: ptr.Ptr("gold"),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_PartialPeriodKeepsCurrentValues(t *testing.T) {
	zone := budapest(t)

	existing := &domain.Appointment{
		ID:             3,
		ScheduledStart: time.Date(2026, 6, 10, 14, 0, 0, 0, zone),
		ScheduledEnd:   time.Date(2026, 6, 10, 15, 0, 0, 0, zone),
		Status:         domain.StatusConfirmed,
	}

	repo := new(mockAppointmentRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(existing, nil)
	repo.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(appt *domain.Appointment) bool {
		// Дата взята из текущей записи, изменилось только время начала
		wantStart := time.Date(2026, 6, 10, 16, 0, 0, 0, zone)
		wantEnd := time.Date(2026, 6, 10, 17, 0, 0, 0, zone)
		return appt.ScheduledStart.Equal(wantStart) && appt.ScheduledEnd.Equal(wantEnd)
	})).Return(existing, nil)

	svc := NewService(repo, new(mockEmployeeRepo), new(mockCatalog), zone, nopLogger{})

	_, err := svc.Update(context.Background(), 3, models.UpdateAppointmentIn{
		StartTime: ptr.Ptr("16:00"),
		EndTime:   ptr.Ptr("17:00"),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCancel_SetsStatusAndSoftDeletes(t *testing.T) {
	repo := new(mockAppointmentRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Appointment{
		ID: 3, Status: domain.StatusConfirmed,
	}, nil)
	repo.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(appt *domain.Appointment) bool {
		return appt.Status == domain.StatusCanceled
	})).Return(&domain.Appointment{ID: 3}, nil)
	repo.On("SoftDelete", mock.Anything, int64(3)).Return(nil)

	svc := NewService(repo, new(mockEmployeeRepo), new(mockCatalog), time.UTC, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 3))
	repo.AssertExpectations(t)
}

func TestGetForEmployees_EmptyProvidersSkipsQuery(t *testing.T) {
	repo := new(mockAppointmentRepo)
	svc := NewService(repo, new(mockEmployeeRepo), new(mockCatalog), time.UTC, nopLogger{})

	appts, err := svc.GetForEmployees(context.Background(), nil, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, appts)

	repo.AssertNotCalled(t, "GetByProvidersInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaginate_DefaultsPageAndPerPage(t *testing.T) {
	repo := new(mockAppointmentRepo)
	repo.On("List", mock.Anything, domain.AppointmentFilter{}).Return([]*domain.Appointment{{ID: 1}}, nil)
	repo.On("Count", mock.Anything, domain.AppointmentFilter{}).Return(int64(1), nil)

	svc := NewService(repo, new(mockEmployeeRepo), new(mockCatalog), time.UTC, nopLogger{})

	page, err := svc.Paginate(context.Background(), domain.AppointmentFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, domain.DefaultPerPage, page.PerPage)
	assert.Equal(t, int64(1), page.Total)
}
