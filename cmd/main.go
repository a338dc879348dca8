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

	getExcursionConfigHandler "github.com/m04kA/SMC-ExcursionService/internal/api/handlers/get_excursion_config"
	quotePriceHandler "github.com/m04kA/SMC-ExcursionService/internal/api/handlers/quote_price"
	validateBookingHandler "github.com/m04kA/SMC-ExcursionService/internal/api/handlers/validate_booking"
	"github.com/m04kA/SMC-ExcursionService/internal/api/middleware"
	"github.com/m04kA/SMC-ExcursionService/internal/availability"
	"github.com/m04kA/SMC-ExcursionService/internal/config"
	"github.com/m04kA/SMC-ExcursionService/internal/infra/cache"
	excursionRepo "github.com/m04kA/SMC-ExcursionService/internal/infra/storage/excursion"
	ledgerRepo "github.com/m04kA/SMC-ExcursionService/internal/infra/storage/ledger"
	excursionsService "github.com/m04kA/SMC-ExcursionService/internal/service/excursions"
	quotePriceUC "github.com/m04kA/SMC-ExcursionService/internal/usecase/quote_price"
	validateBookingUC "github.com/m04kA/SMC-ExcursionService/internal/usecase/validate_booking"
	"github.com/m04kA/SMC-ExcursionService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExcursionService/pkg/logger"
	"github.com/m04kA/SMC-ExcursionService/pkg/metrics"
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

	log.Info("Starting SMC-ExcursionService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Оборачиваем соединение записью метрик запросов
	var dbExecutor dbmetrics.Executor = db
	if cfg.Metrics.Enabled {
		dbExecutor = dbmetrics.Wrap(db, metricsCollector)
	}

	// Инициализируем репозитории коллабораторов: хранилище конфигураций
	// и журнал бронирований (оба read-only для движка)
	excursionRepository := excursionRepo.NewRepository(dbExecutor)
	ledgerRepository := ledgerRepo.NewRepository(dbExecutor)

	// Инициализируем кеш результатов
	cacheStore := cache.NewMemoryStore()
	stopJanitorCh := make(chan struct{})
	if cfg.Cache.JanitorIntervalSecs > 0 {
		cacheStore.StartJanitor(time.Duration(cfg.Cache.JanitorIntervalSecs)*time.Second, stopJanitorCh)
	}

	ttls := map[string]time.Duration{
		cache.OpQuote:    time.Duration(cfg.Cache.QuoteTTLSeconds) * time.Second,
		cache.OpValidate: time.Duration(cfg.Cache.ValidationTTLSeconds) * time.Second,
	}

	var resultCache *cache.ResultCache
	if cfg.Metrics.Enabled {
		resultCache = cache.New(cacheStore, ttls, metricsCollector)
	} else {
		resultCache = cache.New(cacheStore, ttls, nil)
	}
	log.Info("Result cache initialized (quote TTL=%ds, validation TTL=%ds)",
		cfg.Cache.QuoteTTLSeconds, cfg.Cache.ValidationTTLSeconds)

	// Инициализируем проверку доступности
	checker := availability.NewChecker(ledgerRepository)

	// Инициализируем сервисы
	excursionsSvc := excursionsService.NewService(excursionRepository, log)

	// Инициализируем use cases
	quotePriceUseCase := quotePriceUC.NewUseCase(excursionRepository, resultCache, log)
	validateBookingUseCase := validateBookingUC.NewUseCase(excursionRepository, checker, resultCache, log)

	// Инициализируем handlers
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	validateBooking := validateBookingHandler.NewHandler(validateBookingUseCase, log)
	getExcursionConfig := getExcursionConfigHandler.NewHandler(excursionsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты движка публичные: форма бронирования дергает их
	// до аутентификации пользователя

	// Расчет котировки бронирования
	api.HandleFunc("/excursions/{productId}/quote", quotePrice.Handle).Methods(http.MethodPost)

	// Проверка выполнимости бронирования
	api.HandleFunc("/excursions/{productId}/validate", validateBooking.Handle).Methods(http.MethodPost)

	// Публичная конфигурация продукта для формы бронирования
	api.HandleFunc("/excursions/{productId}/config", getExcursionConfig.Handle).Methods(http.MethodGet)

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

	close(stopJanitorCh)

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
