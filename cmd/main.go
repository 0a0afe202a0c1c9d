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
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/create_booking"
	createGuestHouseHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/create_guest_house"
	deleteGuestHouseHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/delete_guest_house"
	exportBookingsHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/export_bookings"
	exportGuestHousesHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/export_guest_houses"
	getBookingHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/get_bookings"
	getGuestHouseStatsHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/get_guest_house_stats"
	getGuestHousesHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/get_guest_houses"
	updateBookingHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/update_booking"
	updateGuestHouseHandler "github.com/m04kA/GHM-BookingService/internal/api/handlers/update_guest_house"
	"github.com/m04kA/GHM-BookingService/internal/api/middleware"
	"github.com/m04kA/GHM-BookingService/internal/config"
	"github.com/m04kA/GHM-BookingService/internal/infra/export/excel"
	bookingRepo "github.com/m04kA/GHM-BookingService/internal/infra/storage/booking"
	guesthouseRepo "github.com/m04kA/GHM-BookingService/internal/infra/storage/guesthouse"
	"github.com/m04kA/GHM-BookingService/internal/infra/storage/schema"
	bookingsService "github.com/m04kA/GHM-BookingService/internal/service/bookings"
	guesthousesService "github.com/m04kA/GHM-BookingService/internal/service/guesthouses"
	checkAvailabilityUC "github.com/m04kA/GHM-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/GHM-BookingService/internal/usecase/create_booking"
	getHouseStatsUC "github.com/m04kA/GHM-BookingService/internal/usecase/get_house_stats"
	"github.com/m04kA/GHM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GHM-BookingService/pkg/logger"
	"github.com/m04kA/GHM-BookingService/pkg/metrics"
	"github.com/m04kA/GHM-BookingService/pkg/txmanager"
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

	log.Info("Starting GHM-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Открываем in-memory базу. Данные живут только пока жив процесс:
	// перезапуск сервиса начинает реестр с чистого листа.
	db, err := sql.Open("sqlite3", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// In-memory sqlite живет в одном соединении, пул шире не имеет смысла
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully opened database (dsn=%s)", cfg.Database.DSN)

	// Накатываем схему
	ctx := context.Background()
	if err := schema.Apply(ctx, db); err != nil {
		log.Fatal("Failed to apply schema: %v", err)
	}
	log.Info("Database schema applied")

	// Наполняем демонстрационными данными (если включено)
	if cfg.Demo.SeedData {
		if err := schema.SeedDemoData(ctx, db); err != nil {
			log.Fatal("Failed to seed demo data: %v", err)
		}
		log.Info("Demo data seeded")
	}

	// Инициализируем репозитории (с метриками или без)
	var executor txmanager.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.Wrap(db, metricsCollector)
		log.Info("Database metrics collection enabled")
	}

	guestHouseRepository := guesthouseRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)
	txMgr := txmanager.New(db)

	// Инициализируем сервисы
	guestHouseSvc := guesthousesService.NewService(guestHouseRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(guestHouseRepository, bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, guestHouseRepository, txMgr, log)
	getHouseStatsUseCase := getHouseStatsUC.NewUseCase(guestHouseRepository, bookingRepository, log)

	// Экспорт в xlsx
	exporter := excel.NewExporter()

	// Инициализируем handlers
	createGuestHouse := createGuestHouseHandler.NewHandler(guestHouseSvc, log)
	updateGuestHouse := updateGuestHouseHandler.NewHandler(guestHouseSvc, log)
	deleteGuestHouse := deleteGuestHouseHandler.NewHandler(guestHouseSvc, log)
	getGuestHouses := getGuestHousesHandler.NewHandler(guestHouseSvc, log)
	getGuestHouseStats := getGuestHouseStatsHandler.NewHandler(getHouseStatsUseCase, log)
	exportGuestHouses := exportGuestHousesHandler.NewHandler(guestHouseRepository, exporter, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingRepository, exporter, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Гостевые дома ---
	// Статичные пути регистрируем раньше путей с {guestHouseId}
	api.HandleFunc("/guest-houses/stats", getGuestHouseStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/guest-houses/export", exportGuestHouses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/guest-houses", createGuestHouse.Handle).Methods(http.MethodPost)
	api.HandleFunc("/guest-houses", getGuestHouses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/guest-houses/{guestHouseId}", updateGuestHouse.Handle).Methods(http.MethodPut)
	api.HandleFunc("/guest-houses/{guestHouseId}", deleteGuestHouse.Handle).Methods(http.MethodDelete)

	// --- Доступность ---
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
