package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/finapi/internal/auth"
	"github.com/mmynk/finapi/internal/config"
	"github.com/mmynk/finapi/internal/events"
	"github.com/mmynk/finapi/internal/events/kafka"
	"github.com/mmynk/finapi/internal/metrics"
	"github.com/mmynk/finapi/internal/middleware"
	"github.com/mmynk/finapi/internal/service"
	"github.com/mmynk/finapi/internal/statements"
	"github.com/mmynk/finapi/internal/storage"
	"github.com/mmynk/finapi/internal/storage/memory"
	"github.com/mmynk/finapi/internal/storage/postgres"
	"github.com/mmynk/finapi/internal/storage/sqlite"
	"github.com/mmynk/finapi/pkg/api/apiconnect"
	"github.com/mmynk/finapi/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, relying on environment")
	}

	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.App.LogLevel, cfg.App.IsDev())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	logger.Info("Storage initialized", "driver", cfg.DB.Driver)

	publisher := newPublisher(cfg.Kafka, logger)
	defer publisher.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	ledgerMetrics := metrics.NewLedgerMetrics(registry)

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authenticator := auth.NewPasswordAuthenticator(store, cfg.Password.MinLength, cfg.Password.BcryptCost)
	ledger := statements.NewService(store, store, publisher, ledgerMetrics, logger)

	mux := http.NewServeMux()

	userPath, userHandler := apiconnect.NewUserServiceHandler(
		service.NewUserService(authenticator, jwtManager, store, logger),
		connect.WithInterceptors(
			middleware.MetricsInterceptor(ledgerMetrics),
			middleware.OptionalAuth(jwtManager),
			middleware.LoggingInterceptor(logger),
		),
	)
	mux.Handle(userPath, userHandler)

	statementPath, statementHandler := apiconnect.NewStatementServiceHandler(
		service.NewStatementService(ledger, logger),
		connect.WithInterceptors(
			middleware.MetricsInterceptor(ledgerMetrics),
			middleware.RequireAuth(jwtManager),
			middleware.LoggingInterceptor(logger),
		),
	)
	mux.Handle(statementPath, statementHandler)

	if cfg.Metrics.Enabled {
		mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// h2c serves HTTP/2 without TLS for Connect and gRPC clients
	handler := h2c.NewHandler(
		middleware.LogRequests(logger, middleware.CORS(mux), userPath, statementPath),
		&http2.Server{},
	)

	server := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Connect server starting", "address", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down", "timeout", cfg.App.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openStore(ctx context.Context, cfg config.DBConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		return sqlite.New(cfg.Path)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func newPublisher(cfg config.KafkaConfig, logger *slog.Logger) events.Publisher {
	if !cfg.Enabled() {
		logger.Info("Kafka brokers not configured, statement events disabled")
		return events.NopPublisher{}
	}
	logger.Info("Publishing statement events", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return kafka.NewPublisher(cfg.Brokers, cfg.Topic)
}
