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

	createBookingHandler "github.com/Lingges29/mypark/internal/api/handlers/create_booking"
	extendBookingHandler "github.com/Lingges29/mypark/internal/api/handlers/extend_booking"
	finalizeBookingHandler "github.com/Lingges29/mypark/internal/api/handlers/finalize_booking"
	getAdminAnalyticsHandler "github.com/Lingges29/mypark/internal/api/handlers/get_admin_analytics"
	getBookingHandler "github.com/Lingges29/mypark/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/Lingges29/mypark/internal/api/handlers/get_dashboard"
	getFloorStatusHandler "github.com/Lingges29/mypark/internal/api/handlers/get_floor_status"
	getUserBookingsHandler "github.com/Lingges29/mypark/internal/api/handlers/get_user_bookings"
	recommendSlotHandler "github.com/Lingges29/mypark/internal/api/handlers/recommend_slot"
	"github.com/Lingges29/mypark/internal/api/middleware"
	"github.com/Lingges29/mypark/internal/config"
	"github.com/Lingges29/mypark/internal/infra/events"
	analyticsRepo "github.com/Lingges29/mypark/internal/infra/storage/analytics"
	bookingRepo "github.com/Lingges29/mypark/internal/infra/storage/booking"
	paymentRepo "github.com/Lingges29/mypark/internal/infra/storage/payment"
	slotRepo "github.com/Lingges29/mypark/internal/infra/storage/slot"
	userServiceClient "github.com/Lingges29/mypark/internal/integrations/userservice"
	analyticsService "github.com/Lingges29/mypark/internal/service/analytics"
	bookingsService "github.com/Lingges29/mypark/internal/service/bookings"
	createBookingUC "github.com/Lingges29/mypark/internal/usecase/create_booking"
	extendBookingUC "github.com/Lingges29/mypark/internal/usecase/extend_booking"
	finalizeBookingUC "github.com/Lingges29/mypark/internal/usecase/finalize_booking"
	getFloorStatusUC "github.com/Lingges29/mypark/internal/usecase/get_floor_status"
	recommendSlotUC "github.com/Lingges29/mypark/internal/usecase/recommend_slot"
	"github.com/Lingges29/mypark/pkg/dbmetrics"
	"github.com/Lingges29/mypark/pkg/logger"
	"github.com/Lingges29/mypark/pkg/metrics"
	"github.com/Lingges29/mypark/pkg/simpletxmanager"
	"github.com/Lingges29/mypark/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting mypark booking service...")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("User directory client initialized (url=%s, timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	var (
		bookingRepository   *bookingRepo.Repository
		slotRepository      *slotRepo.Repository
		paymentRepository   *paymentRepo.Repository
		analyticsRepository *analyticsRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		analyticsRepository = analyticsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		analyticsRepository = analyticsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Analytics snapshot cache
	var snapshotCache analyticsService.SnapshotCache = analyticsService.NopCache{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}

		snapshotCache = analyticsService.NewRedisCache(
			redisClient,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
		)
		log.Info("Analytics cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTL)
	}

	// Booking event sink
	var publisher finalizeBookingUC.EventPublisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		producer, err := events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Fatal("Failed to initialize kafka producer: %v", err)
		}
		defer producer.Close()
		publisher = producer
		log.Info("Kafka producer initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		userClient,
		bookingsService.RealTimeProvider{},
		log,
	)
	analyticsSvc := analyticsService.NewService(
		analyticsRepository,
		slotRepository,
		paymentRepository,
		snapshotCache,
		analyticsService.RealTimeProvider{},
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		userClient,
		txMgr,
		snapshotCache,
		log,
	)
	extendBookingUseCase := extendBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		snapshotCache,
		log,
	)
	finalizeBookingUseCase := finalizeBookingUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		userClient,
		publisher,
		txMgr,
		snapshotCache,
		finalizeBookingUC.RealTimeProvider{},
		log,
	)
	getFloorStatusUseCase := getFloorStatusUC.NewUseCase(
		slotRepository,
		bookingRepository,
		getFloorStatusUC.RealTimeProvider{},
		log,
	)
	recommendSlotUseCase := recommendSlotUC.NewUseCase(
		slotRepository,
		bookingRepository,
		recommendSlotUC.RealTimeProvider{},
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	extendBooking := extendBookingHandler.NewHandler(extendBookingUseCase, log)
	finalizeBooking := finalizeBookingHandler.NewHandler(finalizeBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(bookingSvc, log)
	getFloorStatus := getFloorStatusHandler.NewHandler(getFloorStatusUseCase, log)
	recommendSlot := recommendSlotHandler.NewHandler(recommendSlotUseCase, log)
	getAdminAnalytics := getAdminAnalyticsHandler.NewHandler(analyticsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Admin aggregates
	api.HandleFunc("/admin/analytics", getAdminAnalytics.Handle).Methods(http.MethodGet)

	// Everything else requires the X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/floors/{floor}/slots", getFloorStatus.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slots/recommendation", recommendSlot.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/extend", extendBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/finalize", finalizeBooking.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
