package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_appointment"
	createEmployeeHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_employee"
	createLocationHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_location"
	deleteEmployeeHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_employee"
	deleteLocationHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_location"
	getAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_appointment"
	getDailyScheduleHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_daily_schedule"
	getEmployeeHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_employee"
	getLocationHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_location"
	getLocationHoursHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_location_hours"
	listAppointmentsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_appointments"
	listEmployeesHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_employees"
	listLocationsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_locations"
	restoreAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/restore_appointment"
	restoreEmployeeHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/restore_employee"
	restoreLocationHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/restore_location"
	saveLocationHoursHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/save_location_hours"
	updateAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_appointment"
	updateEmployeeHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_employee"
	updateLocationHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_location"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/cache"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	businesshoursRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/businesshours"
	employeeRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/employee"
	locationRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/location"
	servicecatalogRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/servicecatalog"
	appointmentsService "github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	businesshoursService "github.com/m04kA/SMC-ScheduleService/internal/service/businesshours"
	employeesService "github.com/m04kA/SMC-ScheduleService/internal/service/employees"
	locationsService "github.com/m04kA/SMC-ScheduleService/internal/service/locations"
	getDailyScheduleUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_daily_schedule"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Опорная таймзона сайта
	refZone, err := time.LoadLocation(cfg.Schedule.DefaultTimezone)
	if err != nil {
		log.Warn("Unknown default timezone %q, falling back to UTC", cfg.Schedule.DefaultTimezone)
		refZone = time.UTC
	}

	// Подключаемся к Redis (если включен)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Failed to ping Redis at %s, hours cache disabled: %v", cfg.Redis.Addr, err)
			redisClient = nil
		} else {
			log.Info("Successfully connected to Redis at %s", cfg.Redis.Addr)
		}
		cancelPing()
	}
	hoursCache := cache.NewWeeklyHoursCache(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)

	// Инициализируем репозитории (с метриками или без)
	var (
		locationRepository       *locationRepo.Repository
		businesshoursRepository  *businesshoursRepo.Repository
		servicecatalogRepository *servicecatalogRepo.Repository
		employeeRepository       *employeeRepo.Repository
		appointmentRepository    *appointmentRepo.Repository
	)

	// Интерфейс transaction manager (используется в сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		locationRepository = locationRepo.NewRepository(wrappedDB)
		businesshoursRepository = businesshoursRepo.NewRepository(wrappedDB)
		servicecatalogRepository = servicecatalogRepo.NewRepository(wrappedDB)
		employeeRepository = employeeRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		locationRepository = locationRepo.NewRepository(db)
		businesshoursRepository = businesshoursRepo.NewRepository(db)
		servicecatalogRepository = servicecatalogRepo.NewRepository(db)
		employeeRepository = employeeRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	locationsSvc := locationsService.NewService(locationRepository, log)
	businesshoursSvc := businesshoursService.NewService(
		businesshoursRepository,
		locationRepository,
		hoursCache,
		txMgr,
		log,
	)
	employeesSvc := employeesService.NewService(
		employeeRepository,
		servicecatalogRepository,
		txMgr,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		employeeRepository,
		servicecatalogRepository,
		refZone,
		log,
	)

	// Инициализируем use cases
	getDailyScheduleUseCase := getDailyScheduleUC.NewUseCase(
		locationsSvc,
		businesshoursSvc,
		employeesSvc,
		appointmentsSvc,
		cfg.Schedule.DefaultTimezone,
		cfg.Schedule.SlotDurationMinutes,
		log,
	)

	// Инициализируем handlers
	createLocation := createLocationHandler.NewHandler(locationsSvc, log)
	getLocation := getLocationHandler.NewHandler(locationsSvc, log)
	listLocations := listLocationsHandler.NewHandler(locationsSvc, log)
	updateLocation := updateLocationHandler.NewHandler(locationsSvc, log)
	deleteLocation := deleteLocationHandler.NewHandler(locationsSvc, log)
	restoreLocation := restoreLocationHandler.NewHandler(locationsSvc, log)
	getLocationHours := getLocationHoursHandler.NewHandler(businesshoursSvc, log)
	saveLocationHours := saveLocationHoursHandler.NewHandler(businesshoursSvc, log)
	getDailySchedule := getDailyScheduleHandler.NewHandler(getDailyScheduleUseCase, log)
	createEmployee := createEmployeeHandler.NewHandler(employeesSvc, log)
	getEmployee := getEmployeeHandler.NewHandler(employeesSvc, log)
	listEmployees := listEmployeesHandler.NewHandler(employeesSvc, log)
	updateEmployee := updateEmployeeHandler.NewHandler(employeesSvc, log)
	deleteEmployee := deleteEmployeeHandler.NewHandler(employeesSvc, log)
	restoreEmployee := restoreEmployeeHandler.NewHandler(employeesSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	restoreAppointment := restoreAppointmentHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Локации и их графики
	api.HandleFunc("/locations", listLocations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{locationId}", getLocation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{locationId}/hours", getLocationHours.Handle).Methods(http.MethodGet)

	// Дневной календарь локации
	api.HandleFunc("/locations/{locationId}/schedule", getDailySchedule.Handle).Methods(http.MethodGet)

	// Сотрудники
	api.HandleFunc("/employees", listEmployees.Handle).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}", getEmployee.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Локации ---
	protected.HandleFunc("/locations", createLocation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/locations/{locationId}", updateLocation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/locations/{locationId}", deleteLocation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/locations/{locationId}/restore", restoreLocation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/locations/{locationId}/hours", saveLocationHours.Handle).Methods(http.MethodPut)

	// --- Сотрудники ---
	protected.HandleFunc("/employees", createEmployee.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/employees/{employeeId}", updateEmployee.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/employees/{employeeId}", deleteEmployee.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/employees/{employeeId}/restore", restoreEmployee.Handle).Methods(http.MethodPatch)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/restore", restoreAppointment.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis client: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
