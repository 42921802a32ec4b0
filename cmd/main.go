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
	"github.com/rs/cors"

	adminLoginHandler "github.com/asavich/GymClub-BookingService/internal/api/handlers/admin_login"
	createBookingHandler "github.com/asavich/GymClub-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/asavich/GymClub-BookingService/internal/api/handlers/delete_booking"
	getAllBookingsHandler "github.com/asavich/GymClub-BookingService/internal/api/handlers/get_all_bookings"
	getAvailableSlotsHandler "github.com/asavich/GymClub-BookingService/internal/api/handlers/get_available_slots"
	getServicesHandler "github.com/asavich/GymClub-BookingService/internal/api/handlers/get_services"
	"github.com/asavich/GymClub-BookingService/internal/api/middleware"
	"github.com/asavich/GymClub-BookingService/internal/config"
	"github.com/asavich/GymClub-BookingService/internal/domain"
	availabilityCache "github.com/asavich/GymClub-BookingService/internal/infra/cache/availability"
	bookingRepo "github.com/asavich/GymClub-BookingService/internal/infra/storage/booking"
	"github.com/asavich/GymClub-BookingService/internal/service/adminauth"
	bookingsService "github.com/asavich/GymClub-BookingService/internal/service/bookings"
	createBookingUC "github.com/asavich/GymClub-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/asavich/GymClub-BookingService/internal/usecase/get_available_slots"
	"github.com/asavich/GymClub-BookingService/pkg/dbmetrics"
	"github.com/asavich/GymClub-BookingService/pkg/logger"
	"github.com/asavich/GymClub-BookingService/pkg/metrics"
	"github.com/asavich/GymClub-BookingService/pkg/simpletxmanager"
	"github.com/asavich/GymClub-BookingService/pkg/txmanager"
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

	log.Info("Starting GymClub-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем расписание зала из конфигурации
	schedule, err := domain.NewSchedule(
		cfg.Schedule.OpenTime,
		cfg.Schedule.CloseTime,
		cfg.Schedule.SlotStepMinutes,
		cfg.Schedule.Services,
	)
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	log.Info("Schedule: %s-%s, step %d min, services %v",
		cfg.Schedule.OpenTime, cfg.Schedule.CloseTime, cfg.Schedule.SlotStepMinutes, cfg.Schedule.Services)

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

	// Инициализируем кэш занятых слотов (если включен)
	var bookedCache *availabilityCache.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		bookedCache = availabilityCache.NewCache(
			redisClient,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			log,
		)
		log.Info("Booked slots cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		cacheOrNilForService(bookedCache),
		log,
	)
	adminAuthSvc := adminauth.NewService(
		cfg.Admin.Password,
		cfg.Admin.TokenSecret,
		time.Duration(cfg.Admin.TokenTTLHours)*time.Hour,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		cacheOrNilForCreate(bookedCache),
		txMgr,
		schedule,
		cfg.Schedule.BookingYearWindow,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		cacheOrNilForSlots(bookedCache),
		schedule,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getServices := getServicesHandler.NewHandler(cfg.Schedule.Services)
	adminLogin := adminLoginHandler.NewHandler(adminAuthSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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
	// PUBLIC ROUTES (виджет бронирования)
	// ============================================================

	// Список услуг для выпадающего списка
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Слоты дня с признаком занятости
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Вход администратора (пароль проверяется на сервере, выдается токен)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(adminAuthSvc, log))

	// Список всех бронирований (сначала новые)
	admin.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)

	// Удаление бронирования по ID
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// CORS: сервис обслуживает браузерный виджет с другого origin
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

// Кэш опционален: при выключенном Redis в конструкторы уходит нетипизированный nil.
// Типизированный nil *Cache в значении интерфейса не был бы равен nil внутри usecase.

func cacheOrNilForService(c *availabilityCache.Cache) bookingsService.BookedTimesCache {
	if c == nil {
		return nil
	}
	return c
}

func cacheOrNilForCreate(c *availabilityCache.Cache) createBookingUC.BookedTimesCache {
	if c == nil {
		return nil
	}
	return c
}

func cacheOrNilForSlots(c *availabilityCache.Cache) getAvailableSlotsUC.BookedTimesCache {
	if c == nil {
		return nil
	}
	return c
}
