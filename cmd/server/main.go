// main wires the onboarding stack: stores (Postgres or in-memory), the
// notification service (Redis or in-memory), the event bus with its
// subscribers, the use cases and the HTTP server. Business logic lives in
// the internal packages; this file only composes them.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"helperhub/internal/confirmation"
	"helperhub/internal/eventbus"
	"helperhub/internal/helper/domain"
	"helperhub/internal/helper/handler"
	helpermetrics "helperhub/internal/helper/metrics"
	"helperhub/internal/helper/ports"
	"helperhub/internal/helper/service"
	"helperhub/internal/helper/store"
	"helperhub/internal/notification"
	"helperhub/internal/platform/config"
	"helperhub/internal/platform/httpserver"
	"helperhub/internal/platform/logger"
	"helperhub/internal/platform/metrics"
	"helperhub/internal/platform/middleware"
	platformredis "helperhub/internal/platform/redis"
	"helperhub/pkg/platform/clock"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	clk := clock.System{}

	var helpers ports.HelperRepository
	var accounts ports.HelperAccountRepository
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Error("ping database", "error", err)
			os.Exit(1)
		}
		helpers = store.NewPostgresHelperStore(db)
		accounts = store.NewPostgresAccountStore(db)
		log.Info("using postgres stores")
	} else {
		memAccounts := store.NewMemoryAccountStore()
		helpers = store.NewMemoryHelperStore(memAccounts)
		accounts = memAccounts
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	var notifier ports.NotificationService
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		notifier = notification.NewRedis(redisClient.Client, "notif:outbox")
		log.Info("using redis notification service")
	} else {
		notifier = notification.NewMemory()
		log.Warn("REDIS_URL not set, using in-memory notification service")
	}

	bus := eventbus.New(log)
	eventNames := []string{
		domain.EventHelperOnboardingSucceeded,
		domain.EventHelperOnboardingFailed,
		domain.EventHelperEmailConfirmationSucceeded,
		domain.EventHelperEmailConfirmationFailed,
		domain.EventHelperCredentialsUpdated,
	}

	inbox := make(chan domain.Event, 64)
	eventStore := eventbus.NewMemoryStore()
	worker := eventbus.NewWorker(eventStore, inbox)
	for _, name := range eventNames {
		bus.Subscribe(name, eventbus.ChannelHandler(inbox))
	}

	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := eventbus.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("connect kafka", "error", err)
			os.Exit(1)
		}
		defer kafka.Close()
		for _, name := range eventNames {
			bus.Subscribe(name, kafka.Handle)
		}
		log.Info("publishing events to kafka", "topic", cfg.Kafka.Topic)
	}

	helperMetrics := helpermetrics.New()
	httpMetrics := metrics.New()
	confirmer := confirmation.New([]byte(cfg.ConfirmationSecret), accounts, clk)

	h := handler.New(
		service.NewOnboardHelper(helpers, accounts, notifier, bus, clk, cfg.SetupTokenTTL, cfg.ProfessionCatalog,
			service.WithLogger(log), service.WithMetrics(helperMetrics)),
		service.NewSetupHelperPassword(accounts, bus, clk,
			service.WithLogger(log), service.WithMetrics(helperMetrics)),
		service.NewConfirmHelperEmail(confirmer, bus, clk,
			service.WithLogger(log), service.WithMetrics(helperMetrics)),
		log,
	)

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Latency(httpMetrics))
	router.Use(middleware.ContentTypeJSON)
	h.Register(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		log.Info("starting helperhub", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
