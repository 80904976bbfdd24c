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

	createBlockedSlotHandler "github.com/m04kA/Salon-AvailabilityService/internal/api/handlers/create_blocked_slot"
	deleteBlockedSlotHandler "github.com/m04kA/Salon-AvailabilityService/internal/api/handlers/delete_blocked_slot"
	getAvailableSlotsHandler "github.com/m04kA/Salon-AvailabilityService/internal/api/handlers/get_available_slots"
	getWorkingHoursHandler "github.com/m04kA/Salon-AvailabilityService/internal/api/handlers/get_working_hours"
	listBlockedSlotsHandler "github.com/m04kA/Salon-AvailabilityService/internal/api/handlers/list_blocked_slots"
	listEmployeesHandler "github.com/m04kA/Salon-AvailabilityService/internal/api/handlers/list_employees"
	"github.com/m04kA/Salon-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/Salon-AvailabilityService/internal/config"
	appointmentRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/appointment"
	blockedRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/blocked"
	employeeRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/employee"
	holidayRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/holiday"
	scheduleRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/service"
	blockedService "github.com/m04kA/Salon-AvailabilityService/internal/service/blocked"
	staffService "github.com/m04kA/Salon-AvailabilityService/internal/service/staff"
	getAvailableSlotsUC "github.com/m04kA/Salon-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/Salon-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/Salon-AvailabilityService/pkg/logger"
	"github.com/m04kA/Salon-AvailabilityService/pkg/metrics"
	"github.com/m04kA/Salon-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/Salon-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting Salon-AvailabilityService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		employees    *employeeRepo.Repository
		schedules    *scheduleRepo.Repository
		holidays     *holidayRepo.Repository
		appointments *appointmentRepo.Repository
		blockedSlots *blockedRepo.Repository
		services     *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecase)
	type TxManager interface {
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		employees = employeeRepo.NewRepository(wrappedDB)
		schedules = scheduleRepo.NewRepository(wrappedDB)
		holidays = holidayRepo.NewRepository(wrappedDB)
		appointments = appointmentRepo.NewRepository(wrappedDB)
		blockedSlots = blockedRepo.NewRepository(wrappedDB)
		services = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		employees = employeeRepo.NewRepository(db)
		schedules = scheduleRepo.NewRepository(db)
		holidays = holidayRepo.NewRepository(db)
		appointments = appointmentRepo.NewRepository(db)
		blockedSlots = blockedRepo.NewRepository(db)
		services = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	staffSvc := staffService.NewService(employees, schedules, log)
	blockedSvc := blockedService.NewService(blockedSlots, employees, log)

	// Инициализируем use case расчёта доступных слотов
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		employees,
		schedules,
		holidays,
		appointments,
		blockedSlots,
		services,
		txMgr,
		log,
		cfg.Availability.StepIntervalMinutes,
		cfg.Availability.DefaultBufferMinutes,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(staffSvc, log)
	listEmployees := listEmployeesHandler.NewHandler(staffSvc, log)
	createBlockedSlot := createBlockedSlotHandler.NewHandler(blockedSvc, log)
	deleteBlockedSlot := deleteBlockedSlotHandler.NewHandler(blockedSvc, log)
	listBlockedSlots := listBlockedSlotsHandler.NewHandler(blockedSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу присваивается идентификатор
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Ограничение частоты запросов по тенанту (если включено)
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))
		log.Info("Rate limiting enabled: %d req/min, burst %d",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов для записи
	api.HandleFunc("/tenants/{tenantId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Список активных сотрудников салона
	api.HandleFunc("/tenants/{tenantId}/employees",
		listEmployees.Handle).Methods(http.MethodGet)

	// Рабочие часы сотрудника по дням недели
	api.HandleFunc("/tenants/{tenantId}/employees/{employeeId}/working-hours",
		getWorkingHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление блокировками времени ---
	// Создание блокировки
	protected.HandleFunc("/tenants/{tenantId}/blocked-slots",
		createBlockedSlot.Handle).Methods(http.MethodPost)

	// Список блокировок на дату
	protected.HandleFunc("/tenants/{tenantId}/blocked-slots",
		listBlockedSlots.Handle).Methods(http.MethodGet)

	// Снятие блокировки
	protected.HandleFunc("/tenants/{tenantId}/blocked-slots/{slotId}",
		deleteBlockedSlot.Handle).Methods(http.MethodDelete)

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
