package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	advanceStepHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/advance_step"
	cancelBookingHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/cancel_booking"
	createSessionHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/create_session"
	getBookingHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_booking"
	getSessionHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_session"
	getStepOptionsHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_step_options"
	listBookingsHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/list_bookings"
	retreatStepHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/retreat_step"
	submitBookingHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/submit_booking"
	updateSelectionHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/update_selection"
	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/config"
	catalogServiceClient "github.com/m04kA/SMC-DetailingService/internal/integrations/catalogservice"
	bookingsService "github.com/m04kA/SMC-DetailingService/internal/service/bookings"
	sessionsService "github.com/m04kA/SMC-DetailingService/internal/service/sessions"
	getStepOptionsUC "github.com/m04kA/SMC-DetailingService/internal/usecase/get_step_options"
	submitBookingUC "github.com/m04kA/SMC-DetailingService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-DetailingService/pkg/httpmetrics"
	"github.com/m04kA/SMC-DetailingService/pkg/logger"
	"github.com/m04kA/SMC-DetailingService/pkg/metrics"
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

	log.Info("Starting SMC-DetailingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента CatalogService
	var upstreamCollector httpmetrics.Collector
	if cfg.Metrics.Enabled {
		upstreamCollector = metricsCollector
	}
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		upstreamCollector,
		log,
	)
	log.Info("Integration client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем хранилище сессий визарда
	var sessionMetrics sessionsService.MetricsCollector
	if cfg.Metrics.Enabled {
		sessionMetrics = metricsCollector
	}
	sessionStore := sessionsService.NewStore(
		time.Duration(cfg.Sessions.TTLMinutes)*time.Minute,
		sessionMetrics,
	)

	stopJanitorCh := make(chan struct{})
	sessionStore.StartJanitor(time.Duration(cfg.Sessions.CleanupInterval)*time.Second, stopJanitorCh)
	log.Info("Session store initialized (ttl=%dm, cleanup_interval=%ds)",
		cfg.Sessions.TTLMinutes, cfg.Sessions.CleanupInterval)

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(sessionStore, log)
	bookingSvc := bookingsService.NewService(catalogClient, log)

	// Инициализируем use cases
	getStepOptionsUseCase := getStepOptionsUC.NewUseCase(sessionSvc, catalogClient, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(sessionSvc, catalogClient, log)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	updateSelection := updateSelectionHandler.NewHandler(sessionSvc, log)
	advanceStep := advanceStepHandler.NewHandler(sessionSvc, log)
	retreatStep := retreatStepHandler.NewHandler(sessionSvc, log)
	getStepOptions := getStepOptionsHandler.NewHandler(getStepOptionsUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Визард бронирования ---
	// Создание сессии визарда
	api.HandleFunc("/wizard/sessions", createSession.Handle).Methods(http.MethodPost)

	// Текущее состояние сессии
	api.HandleFunc("/wizard/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Обновление выбора (каскадный сброс зависимых шагов)
	api.HandleFunc("/wizard/sessions/{sessionId}/selection", updateSelection.Handle).Methods(http.MethodPatch)

	// Переход на следующий шаг
	api.HandleFunc("/wizard/sessions/{sessionId}/next", advanceStep.Handle).Methods(http.MethodPost)

	// Возврат на предыдущий шаг (с первого шага — выход из визарда)
	api.HandleFunc("/wizard/sessions/{sessionId}/back", retreatStep.Handle).Methods(http.MethodPost)

	// Варианты выбора для шага (прокси к каталогу с кешем в сессии)
	api.HandleFunc("/wizard/sessions/{sessionId}/options", getStepOptions.Handle).Methods(http.MethodGet)

	// Отправка бронирования
	api.HandleFunc("/wizard/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Получение бронирования по референс-коду
	api.HandleFunc("/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	api.HandleFunc("/bookings/{reference}", cancelBooking.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (требуют сессионную cookie администратора)
	// ============================================================

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.Auth)

	// Список всех бронирований с пагинацией
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

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

	// Останавливаем фоновую очистку сессий
	close(stopJanitorCh)
	log.Info("Session janitor stopped")

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
