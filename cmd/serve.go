package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/spf13/cobra"

	"github.com/Surajsachintha/itams-haci-project/internal/api"
	"github.com/Surajsachintha/itams-haci-project/internal/api/events"
	"github.com/Surajsachintha/itams-haci-project/internal/clients/mailer"
	"github.com/Surajsachintha/itams-haci-project/internal/clients/push"
	"github.com/Surajsachintha/itams-haci-project/internal/repository"
	"github.com/Surajsachintha/itams-haci-project/internal/schema"
	"github.com/Surajsachintha/itams-haci-project/internal/service"
	"github.com/Surajsachintha/itams-haci-project/pkg/broker"
	"github.com/Surajsachintha/itams-haci-project/pkg/job"
	"github.com/Surajsachintha/itams-haci-project/pkg/postgres"
)

const (
	ReadHeaderTimeout = 1 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, background jobs and the audit consumer",
	RunE:  runServe,
}

//nolint:funlen
func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, l, err := setup()
	if err != nil {
		return err
	}

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	db := postgres.OpenDB(pool)

	if cfg.MigrateOnStartup {
		err = postgres.UpMigrations(db)
		if err != nil {
			return fmt.Errorf("up migrations: %w", err)
		}
	}

	pushClient, err := push.NewClient(ctx, cfg.Push)
	if err != nil {
		return fmt.Errorf("push client: %w", err)
	}

	s := service.New(cfg,
		repository.NewUserRepository(pool),
		repository.NewDeviceRepository(pool),
		repository.NewComputerRepository(pool),
		repository.NewCodeDataRepository(pool),
		repository.NewDashboardRepository(pool),
		repository.NewAuditRepository(pool),
		repository.NewUsedTokenRepository(pool),
		repository.NewTableGateway(db, sq.Dollar),
		schema.CodeTables(),
		mailer.New(cfg.Mailer),
		pushClient,
	)

	if cfg.Kafka.Enabled() {
		producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.AuditTopic)
		defer producer.Close()

		s.WithAuditPublisher(producer)

		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.AuditTopic).
			Handle(cfg.Kafka.AuditTopic, events.NewEventHandler(s).OnAuditEvent).
			Consume(ctx)
		defer consumer.Close()
	}

	jobs := job.NewRunner().
		TryRegisterJob(cfg.Jobs.WarrantyAlertsEnabled, "warranty_alerts", cfg.Jobs.WarrantyAlertsInterval, s.WarrantyAlertJob).
		RegisterJob("cleanup_used_tokens", cfg.Jobs.TokenCleanupInterval, s.CleanupUsedTokens)

	jobs.Start(ctx)
	defer jobs.Stop()

	l.Info("jobs started", "jobs", jobs.Jobs())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           api.NewRouter(api.NewHandler(s, cfg.APIExposeErrors), api.NewMiddleware(s, cfg.APIExposeErrors)),
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		l.Info("http server started", "port", cfg.HTTPPort, "kafka", cfg.Kafka.Enabled())

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("listen and serve", "error", err)
			cancel()
		}

		l.Debug("http server stopped")
	}()

	waitSignal(ctx, l, cancel, server)
	wg.Wait()

	return nil
}

// waitSignal blocks until an OS signal arrives or ctx is done, then stops the server.
func waitSignal(ctx context.Context, l *slog.Logger, cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(ch)

	select {
	case sig := <-ch:
		l.Info("got OS signal", "signal", sig.String())
	case <-ctx.Done():
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		l.Error("server shutdown", "error", err)
	}
}
