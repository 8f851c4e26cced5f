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

	cancelReservationHandler "github.com/m04kA/TRP-AvailabilityService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/TRP-AvailabilityService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/TRP-AvailabilityService/internal/api/handlers/get_available_slots"
	getDateAvailabilityHandler "github.com/m04kA/TRP-AvailabilityService/internal/api/handlers/get_date_availability"
	getOccupancyHandler "github.com/m04kA/TRP-AvailabilityService/internal/api/handlers/get_occupancy"
	getReservationHandler "github.com/m04kA/TRP-AvailabilityService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/TRP-AvailabilityService/internal/api/handlers/get_user_reservations"
	getVenueConfigHandler "github.com/m04kA/TRP-AvailabilityService/internal/api/handlers/get_venue_config"
	getVenueReservationsHandler "github.com/m04kA/TRP-AvailabilityService/internal/api/handlers/get_venue_reservations"
	updateReservationStatusHandler "github.com/m04kA/TRP-AvailabilityService/internal/api/handlers/update_reservation_status"
	updateVenueConfigHandler "github.com/m04kA/TRP-AvailabilityService/internal/api/handlers/update_venue_config"
	validateReservationHandler "github.com/m04kA/TRP-AvailabilityService/internal/api/handlers/validate_reservation"
	"github.com/m04kA/TRP-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/TRP-AvailabilityService/internal/config"
	occupancyCache "github.com/m04kA/TRP-AvailabilityService/internal/infra/cache"
	reservationRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/table"
	configRepo "github.com/m04kA/TRP-AvailabilityService/internal/infra/storage/venueconfig"
	venueServiceClient "github.com/m04kA/TRP-AvailabilityService/internal/integrations/venueservice"
	reservationsService "github.com/m04kA/TRP-AvailabilityService/internal/service/reservations"
	venueConfigService "github.com/m04kA/TRP-AvailabilityService/internal/service/venueconfig"
	createReservationUC "github.com/m04kA/TRP-AvailabilityService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/TRP-AvailabilityService/internal/usecase/get_available_slots"
	getDateAvailabilityUC "github.com/m04kA/TRP-AvailabilityService/internal/usecase/get_date_availability"
	getOccupancyUC "github.com/m04kA/TRP-AvailabilityService/internal/usecase/get_occupancy"
	validateReservationUC "github.com/m04kA/TRP-AvailabilityService/internal/usecase/validate_reservation"
	"github.com/m04kA/TRP-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/TRP-AvailabilityService/pkg/logger"
	"github.com/m04kA/TRP-AvailabilityService/pkg/metrics"
	"github.com/m04kA/TRP-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/TRP-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting TRP-AvailabilityService...")
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

	// Инициализируем клиент VenueService
	venueClient := venueServiceClient.NewClient(
		cfg.VenueService.URL,
		time.Duration(cfg.VenueService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (VenueService=%s timeout=%ds)",
		cfg.VenueService.URL, cfg.VenueService.Timeout)

	// Кеш оценки загруженности
	occCache := occupancyCache.NewOccupancyCache(time.Duration(cfg.Cache.OccupancyTTL) * time.Second)
	log.Info("Occupancy cache initialized (ttl=%ds)", cfg.Cache.OccupancyTTL)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		tableRepository       *tableRepo.Repository
		configRepository      *configRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		reservationRepository = reservationRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		venueClient,
		occCache,
		log,
	)
	venueConfigSvc := venueConfigService.NewService(
		configRepository,
		venueClient,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		configRepository,
		venueClient,
		txMgr,
		occCache,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		tableRepository,
		configRepository,
		venueClient,
		log,
	)

	getDateAvailabilityUseCase := getDateAvailabilityUC.NewUseCase(configRepository, log)

	validateReservationUseCase := validateReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		configRepository,
		venueClient,
		log,
	)

	getOccupancyUseCase := getOccupancyUC.NewUseCase(
		reservationRepository,
		tableRepository,
		venueClient,
		occCache,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	validateReservation := validateReservationHandler.NewHandler(validateReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getDateAvailability := getDateAvailabilityHandler.NewHandler(getDateAvailabilityUseCase, log)
	getOccupancy := getOccupancyHandler.NewHandler(getOccupancyUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getVenueReservations := getVenueReservationsHandler.NewHandler(reservationsSvc, log)
	getVenueConfig := getVenueConfigHandler.NewHandler(venueConfigSvc, log)
	updateVenueConfig := updateVenueConfigHandler.NewHandler(venueConfigSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request ID для всех запросов
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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты для бронирования столика
	api.HandleFunc("/venues/{venueId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Быстрая проверка доступности даты
	api.HandleFunc("/venues/{venueId}/date-availability",
		getDateAvailability.Handle).Methods(http.MethodGet)

	// Оценка загруженности заведения
	api.HandleFunc("/venues/{venueId}/occupancy",
		getOccupancy.Handle).Methods(http.MethodGet)

	// Конфигурация бронирования заведения
	api.HandleFunc("/venues/{venueId}/config",
		getVenueConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Предварительная валидация брони (без создания)
	protected.HandleFunc("/reservations/validate", validateReservation.Handle).Methods(http.MethodPost)

	// Создание брони
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение брони по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена брони
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Смена статуса брони (для менеджеров)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// История броней пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Управление заведением (для менеджеров) ---
	// Список броней заведения
	protected.HandleFunc("/venues/{venueId}/reservations", getVenueReservations.Handle).Methods(http.MethodGet)

	// Обновление конфигурации заведения
	protected.HandleFunc("/venues/{venueId}/config", updateVenueConfig.Handle).Methods(http.MethodPut)

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
