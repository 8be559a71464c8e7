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

	adminCreateWashHandler "github.com/m04kA/SMC-WashService/internal/api/handlers/admin_create_wash"
	adminListAvailabilityHandler "github.com/m04kA/SMC-WashService/internal/api/handlers/admin_list_availability"
	adminListWashesHandler "github.com/m04kA/SMC-WashService/internal/api/handlers/admin_list_washes"
	createBookingHandler "github.com/m04kA/SMC-WashService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-WashService/internal/api/handlers/get_availability"
	getAvailabilitySummaryHandler "github.com/m04kA/SMC-WashService/internal/api/handlers/get_availability_summary"
	getAvailableSlotsHandler "github.com/m04kA/SMC-WashService/internal/api/handlers/get_available_slots"
	getDashboardHandler "github.com/m04kA/SMC-WashService/internal/api/handlers/get_dashboard"
	getScheduleHandler "github.com/m04kA/SMC-WashService/internal/api/handlers/get_schedule"
	saveScheduleHandler "github.com/m04kA/SMC-WashService/internal/api/handlers/save_schedule"
	"github.com/m04kA/SMC-WashService/internal/api/middleware"
	"github.com/m04kA/SMC-WashService/internal/config"
	washersCache "github.com/m04kA/SMC-WashService/internal/infra/cache/washers"
	availabilityRepo "github.com/m04kA/SMC-WashService/internal/infra/storage/availability"
	creditRepo "github.com/m04kA/SMC-WashService/internal/infra/storage/credit"
	scheduleRepo "github.com/m04kA/SMC-WashService/internal/infra/storage/schedule"
	washRepo "github.com/m04kA/SMC-WashService/internal/infra/storage/wash"
	washerRepo "github.com/m04kA/SMC-WashService/internal/infra/storage/washer"
	scheduleService "github.com/m04kA/SMC-WashService/internal/service/schedule"
	washesService "github.com/m04kA/SMC-WashService/internal/service/washes"
	createBookingUC "github.com/m04kA/SMC-WashService/internal/usecase/create_booking"
	getAvailabilitySummaryUC "github.com/m04kA/SMC-WashService/internal/usecase/get_availability_summary"
	getAvailableSlotsUC "github.com/m04kA/SMC-WashService/internal/usecase/get_available_slots"
	saveScheduleUC "github.com/m04kA/SMC-WashService/internal/usecase/save_schedule"
	"github.com/m04kA/SMC-WashService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WashService/pkg/logger"
	"github.com/m04kA/SMC-WashService/pkg/metrics"
	"github.com/m04kA/SMC-WashService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-WashService/pkg/txmanager"
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

	log.Info("Starting SMC-WashService...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load booking timezone %q: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Booking timezone: %s, block capacity: %d, min weekly hours: %.1f",
		location, cfg.Booking.MaxBookingsPerBlock, cfg.Booking.MinWeeklyHours)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Репозитории работают через обертку с метриками или напрямую через *sql.DB
	var (
		executor dbmetrics.DBExecutor
		txMgr    *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		executor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем репозитории
	availabilityRepository := availabilityRepo.NewRepository(executor)
	scheduleRepository := scheduleRepo.NewRepository(executor)
	washRepository := washRepo.NewRepository(executor)
	creditRepository := creditRepo.NewRepository(executor)
	washerRepository := washerRepo.NewRepository(executor)

	// Профили мойщиков читаются через LRU кеш, если он включен
	var washerDirectory getAvailableSlotsUC.WasherDirectory = washerRepository
	if cfg.Cache.WashersEnabled {
		cache, err := washersCache.NewCache(washerRepository, cfg.Cache.WashersSize, washersCache.DefaultTTL, metricsCollector)
		if err != nil {
			log.Fatal("Failed to create washers cache: %v", err)
		}
		washerDirectory = cache
		log.Info("Washers cache enabled (size=%d, ttl=%s)", cfg.Cache.WashersSize, washersCache.DefaultTTL)
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, log)
	washesSvc := washesService.NewService(
		washRepository,
		availabilityRepository,
		creditRepository,
		washerDirectory,
		location,
		log,
	)

	// Инициализируем use cases
	saveScheduleUseCase := saveScheduleUC.NewUseCase(
		scheduleRepository,
		availabilityRepository,
		txMgr,
		metricsCollector,
		saveScheduleUC.Settings{
			MaxBookingsPerBlock: cfg.Booking.MaxBookingsPerBlock,
			MinWeeklyHours:      cfg.Booking.MinWeeklyHours,
			DefaultZip:          cfg.Booking.DefaultZip,
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(availabilityRepository, washerDirectory, log)
	getAvailabilitySummaryUseCase := getAvailabilitySummaryUC.NewUseCase(availabilityRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		availabilityRepository,
		washRepository,
		creditRepository,
		txMgr,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	saveSchedule := saveScheduleHandler.NewHandler(saveScheduleUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailabilitySummary := getAvailabilitySummaryHandler.NewHandler(getAvailabilitySummaryUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailableSlots, getAvailabilitySummary)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getDashboard := getDashboardHandler.NewHandler(washesSvc, log)
	adminCreateWash := adminCreateWashHandler.NewHandler(washesSvc, log)
	adminListWashes := adminListWashesHandler.NewHandler(washesSvc, log)
	adminListAvailability := adminListAvailabilityHandler.NewHandler(washesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность: слоты дня, сводка по периоду и общий endpoint
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/summary", getAvailabilitySummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание мойщика ---
	protected.HandleFunc("/staff/washers/{washerId}/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/washers/{washerId}/schedule", saveSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/staff/washers/{washerId}/schedule/preview", saveSchedule.HandlePreview).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	protected.HandleFunc("/admin/washes", adminCreateWash.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/washes", adminListWashes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/availability", adminListAvailability.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
