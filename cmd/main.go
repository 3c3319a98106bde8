package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/vatisha/water-reminders/internal/config"
	"github.com/vatisha/water-reminders/internal/handler"
	"github.com/vatisha/water-reminders/internal/health"
	"github.com/vatisha/water-reminders/internal/infra/plantstore"
	"github.com/vatisha/water-reminders/internal/infra/push"
	"github.com/vatisha/water-reminders/internal/infra/repository"
	"github.com/vatisha/water-reminders/internal/observability"
	"github.com/vatisha/water-reminders/internal/observability/metrics"
	"github.com/vatisha/water-reminders/internal/service/recommend"
	"github.com/vatisha/water-reminders/internal/service/reminder"
	"github.com/vatisha/water-reminders/internal/service/schedule"
	"github.com/vatisha/water-reminders/internal/service/soil"
	"github.com/vatisha/water-reminders/internal/timezone"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceName: "water-reminders",
		Version:     Version,
		LogLevel:    cfg.LogLevel,
	})
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	sender, cleanup, err := initPushSender(cfg)
	if err != nil {
		slog.Error("failed to initialize push sender", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Warn("push sender cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	tzResolver, err := timezone.NewResolver(cfg.Reminder.Timezone)
	if err != nil {
		slog.Error("failed to load fallback timezone", slog.String("error", err.Error()))
		return 1
	}

	plantClient := plantstore.NewClient(cfg.PlantStoreURL)
	notificationRepo := repository.NewNotificationRepository(redisClient)
	stateRepo := repository.NewReminderStateRepository(redisClient)

	engine := recommend.NewEngine(schedule.NewCalculator(), soil.NewAdjuster(cfg.Soil))

	generator := reminder.NewGenerator(
		plantClient,
		notificationRepo,
		stateRepo,
		engine,
		sender,
		tzResolver,
		cfg.Reminder,
		reminderMetrics,
	)
	actionService := reminder.NewActionService(
		notificationRepo,
		stateRepo,
		plantClient,
		tzResolver,
		cfg.Reminder,
		reminderMetrics,
	)
	sweeper := reminder.NewSweeper(notificationRepo, sender, reminderMetrics)

	reminderHandler := handler.NewReminderHandler(generator, sweeper, actionService)
	actionHandler := handler.NewActionHandler(actionService)

	r := gin.New()
	r.Use(gin.Recovery())

	healthChecker := health.NewChecker(redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/reminders/run", reminderHandler.HandleRun)
		v1.POST("/reminders/sweep", reminderHandler.HandleSweep)
		v1.POST("/plants/:id/reminders/resume", reminderHandler.HandleResume)
		v1.POST("/notifications/:id/action", actionHandler.HandleAction)
	}

	if cfg.Reminder.SweepInterval > 0 {
		go runSweepTicker(ctx, sweeper, cfg.Reminder.SweepInterval)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("reminder_max_days", cfg.Reminder.MaxDays),
			slog.Int("reminder_hour_local", cfg.Reminder.HourLocal),
			slog.String("timezone", cfg.Reminder.Timezone),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

func initPushSender(cfg *config.Config) (push.Sender, func() error, error) {
	if cfg.Push.AMQPURL == "" {
		slog.Warn("AMQP_URL not set, push delivery disabled")
		return push.NewNoopSender(), nil, nil
	}

	sender, err := push.NewAMQPSender(cfg.Push.AMQPURL, cfg.Push.Exchange, cfg.Push.RoutingKey)
	if err != nil {
		return nil, nil, err
	}

	slog.Info("push sender initialized",
		slog.String("type", "amqp"),
		slog.String("exchange", cfg.Push.Exchange),
		slog.String("routing_key", cfg.Push.RoutingKey),
	)

	return sender, sender.Close, nil
}

// runSweepTicker sweeps snoozed notifications in-process when configured;
// deployments with an external scheduler leave the interval at zero.
func runSweepTicker(ctx context.Context, sweeper *reminder.Sweeper, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := sweeper.Sweep(ctx, time.Now()); err != nil {
				slog.Error("snooze sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}
