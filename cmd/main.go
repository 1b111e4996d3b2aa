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

	cancelBookingHandler "github.com/annecarv/barber-schedule/internal/api/handlers/cancel_booking"
	createBarberHandler "github.com/annecarv/barber-schedule/internal/api/handlers/create_barber"
	createBookingHandler "github.com/annecarv/barber-schedule/internal/api/handlers/create_booking"
	createServiceHandler "github.com/annecarv/barber-schedule/internal/api/handlers/create_service"
	deleteBarberHandler "github.com/annecarv/barber-schedule/internal/api/handlers/delete_barber"
	deleteServiceHandler "github.com/annecarv/barber-schedule/internal/api/handlers/delete_service"
	getAvailableTimesHandler "github.com/annecarv/barber-schedule/internal/api/handlers/get_available_times"
	getBarberHandler "github.com/annecarv/barber-schedule/internal/api/handlers/get_barber"
	getBookingHandler "github.com/annecarv/barber-schedule/internal/api/handlers/get_booking"
	getServiceHandler "github.com/annecarv/barber-schedule/internal/api/handlers/get_service"
	listBarbersHandler "github.com/annecarv/barber-schedule/internal/api/handlers/list_barbers"
	listBookingsHandler "github.com/annecarv/barber-schedule/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/annecarv/barber-schedule/internal/api/handlers/list_services"
	updateBarberHandler "github.com/annecarv/barber-schedule/internal/api/handlers/update_barber"
	updateBookingHandler "github.com/annecarv/barber-schedule/internal/api/handlers/update_booking"
	updateServiceHandler "github.com/annecarv/barber-schedule/internal/api/handlers/update_service"
	"github.com/annecarv/barber-schedule/internal/api/middleware"
	"github.com/annecarv/barber-schedule/internal/config"
	barberRepo "github.com/annecarv/barber-schedule/internal/infra/storage/barber"
	bookingRepo "github.com/annecarv/barber-schedule/internal/infra/storage/booking"
	serviceRepo "github.com/annecarv/barber-schedule/internal/infra/storage/service"
	barbersService "github.com/annecarv/barber-schedule/internal/service/barbers"
	bookingsService "github.com/annecarv/barber-schedule/internal/service/bookings"
	catalogService "github.com/annecarv/barber-schedule/internal/service/catalog"
	createBookingUC "github.com/annecarv/barber-schedule/internal/usecase/create_booking"
	getAvailableTimesUC "github.com/annecarv/barber-schedule/internal/usecase/get_available_times"
	"github.com/annecarv/barber-schedule/pkg/dbmetrics"
	"github.com/annecarv/barber-schedule/pkg/logger"
	"github.com/annecarv/barber-schedule/pkg/metrics"
	"github.com/annecarv/barber-schedule/pkg/simpletxmanager"
	"github.com/annecarv/barber-schedule/pkg/txmanager"
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

	log.Info("Starting barber-schedule...")
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
		bookingRepository *bookingRepo.Repository
		serviceRepository *serviceRepo.Repository
		barberRepository  *barberRepo.Repository
	)

	// Интерфейс transaction manager, используется в usecase создания бронирования
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		barberRepository = barberRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		barberRepository = barberRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	barberSvc := barbersService.NewService(barberRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		barberRepository,
		txMgr,
		log,
	)

	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	createService := createServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	createBarber := createBarberHandler.NewHandler(barberSvc, log)
	listBarbers := listBarbersHandler.NewHandler(barberSvc, log)
	getBarber := getBarberHandler.NewHandler(barberSvc, log)
	updateBarber := updateBarberHandler.NewHandler(barberSvc, log)
	deleteBarber := deleteBarberHandler.NewHandler(barberSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Доступные времена для записи
	api.HandleFunc("/bookings/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Справочники (чтение) ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId:[0-9]+}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers", listBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{barberId:[0-9]+}", getBarber.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление каталогом услуг ---
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId:[0-9]+}", updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId:[0-9]+}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Управление реестром мастеров ---
	protected.HandleFunc("/barbers", createBarber.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/barbers/{barberId:[0-9]+}", updateBarber.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/barbers/{barberId:[0-9]+}", deleteBarber.Handle).Methods(http.MethodDelete)

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
