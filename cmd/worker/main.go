package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/worker"

	"github.com/tapestack/tapestack/pkg/app"
	"github.com/tapestack/tapestack/pkg/cache"
	"github.com/tapestack/tapestack/pkg/clock"
	"github.com/tapestack/tapestack/pkg/config"
	"github.com/tapestack/tapestack/pkg/database"
	"github.com/tapestack/tapestack/pkg/events"
	"github.com/tapestack/tapestack/pkg/logger"
	"github.com/tapestack/tapestack/pkg/telemetry"
	"github.com/tapestack/tapestack/pkg/workflows"
	catalogEvents "github.com/tapestack/tapestack/services/catalog/domain/events"
	rentalWorkflows "github.com/tapestack/tapestack/services/rental/application/workflows"
	rentalEvents "github.com/tapestack/tapestack/services/rental/domain/events"
	rentalPostgres "github.com/tapestack/tapestack/services/rental/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if cfg.TemporalEnabled {
		temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
		appConfig.TemporalClient = temporalClient

		if err := startOverdueSweep(ctx, appConfig); err != nil {
			log.Error("failed to start overdue sweep", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		catalogEvents.TopicVHSCreated:    handleVHSCreated(a),
		rentalEvents.TopicRentalCreated:  handleRentalCreated(a),
		rentalEvents.TopicRentalFinished: handleRentalFinished(a),
	}

	registered := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		registered = append(registered, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", registered)
	return nil
}

// handleVHSCreated returns a handler for vhs.created events.
// Handlers must be idempotent; EventBus retries up to 3 times on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served from cache.
func handleVHSCreated(a *app.Application) func(context.Context, *message.Message) error {
	vhsCache := cache.NewVHSCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.VHSCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := vhsCache.Set(ctx, &cache.CachedVHS{
			ID:          evt.VHSID,
			Title:       evt.Title,
			ReleaseDate: evt.ReleaseDate,
			Genre:       evt.Genre,
			RentalPrice: evt.RentalPrice,
			StockLevel:  evt.StockLevel,
			Status:      evt.Status,
			CreatedAt:   evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for vhs.created",
				"vhs_id", evt.VHSID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "vhs_id", evt.VHSID)
		}

		return nil
	}
}

// handleRentalCreated audit-logs each new rental.
func handleRentalCreated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt rentalEvents.RentalCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "rental created",
			"rental_id", evt.RentalID, "vhs_id", evt.VHSID,
			"user_id", evt.UserID, "due_date", evt.DueDate)
		return nil
	}
}

// handleRentalFinished audit-logs each completed rental with its final price.
func handleRentalFinished(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt rentalEvents.RentalFinishedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "rental finished",
			"rental_id", evt.RentalID, "vhs_id", evt.VHSID,
			"user_id", evt.UserID, "price", evt.Price)
		return nil
	}
}

// startOverdueSweep registers the sweep workflow and activity on a Temporal
// worker and schedules the hourly cron execution. A sweep already running
// from a previous worker process is reused.
func startOverdueSweep(ctx context.Context, a *app.Application) error {
	sweeper := &rentalWorkflows.OverdueSweeper{
		Repo:  rentalPostgres.NewRentalRepository(a.Db, nil),
		Clock: clock.System(),
		Log:   a.Logger,
	}

	w := worker.New(a.TemporalClient.Client, rentalWorkflows.OverdueTaskQueue, worker.Options{})
	w.RegisterWorkflow(rentalWorkflows.OverdueSweepWorkflow)
	w.RegisterActivity(sweeper.ListOverdueRentals)

	if err := w.Start(); err != nil {
		return err
	}

	return rentalWorkflows.ScheduleSweep(ctx, a.TemporalClient.Client)
}
