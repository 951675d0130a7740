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

	cancelBookingHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/create_booking"
	createLabHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/create_lab"
	deleteLabHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/delete_lab"
	getRulesHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/get_rules"
	getScheduleHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/get_schedule"
	getSlotConfigHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/get_slot_config"
	getUserBookingsHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/get_user_bookings"
	listLabsHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/list_labs"
	listUsersHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/list_users"
	loginHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/login"
	updateLabHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/update_lab"
	updateRulesHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/update_rules"
	updateSlotConfigHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/update_slot_config"
	updateUserActiveHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/update_user_active"
	updateUserInstrumentsHandler "github.com/kitty100176/nmr-booking-system/internal/api/handlers/update_user_instruments"
	"github.com/kitty100176/nmr-booking-system/internal/api/middleware"
	"github.com/kitty100176/nmr-booking-system/internal/config"
	bookingRepo "github.com/kitty100176/nmr-booking-system/internal/infra/storage/booking"
	labRepo "github.com/kitty100176/nmr-booking-system/internal/infra/storage/lab"
	settingsRepo "github.com/kitty100176/nmr-booking-system/internal/infra/storage/settings"
	userRepo "github.com/kitty100176/nmr-booking-system/internal/infra/storage/user"
	authService "github.com/kitty100176/nmr-booking-system/internal/service/auth"
	bookingsService "github.com/kitty100176/nmr-booking-system/internal/service/bookings"
	labsService "github.com/kitty100176/nmr-booking-system/internal/service/labs"
	settingsService "github.com/kitty100176/nmr-booking-system/internal/service/settings"
	usersService "github.com/kitty100176/nmr-booking-system/internal/service/users"
	createBookingUC "github.com/kitty100176/nmr-booking-system/internal/usecase/create_booking"
	getScheduleUC "github.com/kitty100176/nmr-booking-system/internal/usecase/get_schedule"
	"github.com/kitty100176/nmr-booking-system/pkg/dbmetrics"
	"github.com/kitty100176/nmr-booking-system/pkg/logger"
	"github.com/kitty100176/nmr-booking-system/pkg/metrics"
	"github.com/kitty100176/nmr-booking-system/pkg/simpletxmanager"
	"github.com/kitty100176/nmr-booking-system/pkg/txmanager"
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

	log.Info("Starting nmr-booking-system...")
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
		bookingRepository  *bookingRepo.Repository
		userRepository     *userRepo.Repository
		labRepository      *labRepo.Repository
		settingsRepository *settingsRepo.Repository
		txMgr              labsService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		labRepository = labRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		labRepository = labRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, userRepository, log)
	usersSvc := usersService.NewService(userRepository, log)
	labsSvc := labsService.NewService(labRepository, userRepository, txMgr, log)
	settingsSvc := settingsService.NewService(settingsRepository, userRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		userRepository,
		labRepository,
		settingsRepository,
		log,
	)
	getScheduleUseCase := getScheduleUC.NewUseCase(
		bookingRepository,
		userRepository,
		settingsRepository,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	getRules := getRulesHandler.NewHandler(settingsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listLabs := listLabsHandler.NewHandler(labsSvc, log)
	listUsers := listUsersHandler.NewHandler(usersSvc, log)
	updateUserInstruments := updateUserInstrumentsHandler.NewHandler(usersSvc, log)
	updateUserActive := updateUserActiveHandler.NewHandler(usersSvc, log)
	createLab := createLabHandler.NewHandler(labsSvc, log)
	updateLab := updateLabHandler.NewHandler(labsSvc, log)
	deleteLab := deleteLabHandler.NewHandler(labsSvc, log)
	getSlotConfig := getSlotConfigHandler.NewHandler(settingsSvc, log)
	updateSlotConfig := updateSlotConfigHandler.NewHandler(settingsSvc, log)
	updateRules := updateRulesHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Вход в систему
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Правила пользования (показываются на экране входа)
	api.HandleFunc("/rules", getRules.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Username header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Расписание инструмента на дату
	protected.HandleFunc("/instruments/{instrument}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Создание и отмена бронирований
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// История бронирований пользователя
	protected.HandleFunc("/users/{username}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Список лабораторий
	protected.HandleFunc("/labs", listLabs.Handle).Methods(http.MethodGet)

	// --- Административные маршруты ---
	admin := protected.PathPrefix("/admin").Subrouter()

	admin.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId}/instruments", updateUserInstruments.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{userId}/active", updateUserActive.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/labs", createLab.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/labs/{labId}", updateLab.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/labs/{labId}", deleteLab.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/settings/timeslots", getSlotConfig.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings/timeslots", updateSlotConfig.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/rules", updateRules.Handle).Methods(http.MethodPut)

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
