package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bankwise_support_backend/internal/accounts"
	"bankwise_support_backend/internal/agents"
	"bankwise_support_backend/internal/cards"
	"bankwise_support_backend/internal/chat"
	"bankwise_support_backend/internal/cheques"
	"bankwise_support_backend/internal/complaints"
	"bankwise_support_backend/internal/dashboard"
	"bankwise_support_backend/internal/deposits"
	"bankwise_support_backend/internal/disputes"
	"bankwise_support_backend/internal/email"
	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/internal/http/router"
	"bankwise_support_backend/internal/loans"
	"bankwise_support_backend/internal/locator"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/internal/notification"
	"bankwise_support_backend/internal/scheduler"
	"bankwise_support_backend/internal/sessions"
	"bankwise_support_backend/internal/sms"
	"bankwise_support_backend/migrations"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/db"
	"bankwise_support_backend/platform/events"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// The database is optional. Every read path falls back to the generated
	// dataset, so a missing or unreachable Postgres only degrades the service.
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			log.Warn("database unavailable, serving from generated data only", "error", err)
		} else {
			pool = p
			defer pool.Close()

			if err := db.RunMigrations(ctx, cfg, migrations.FS); err != nil {
				log.Error("failed to run database migrations", "error", err)
				panic("failed to run database migrations: " + err.Error())
			}
			log.Info("database ready")
		}
	} else {
		log.Info("no database configured, serving from generated data only")
	}

	store, err := mockdata.Open(cfg.MockDataDir, mockdata.NewGenerator(), log)
	if err != nil {
		log.Error("failed to open mock data store", "error", err)
		panic("failed to open mock data store: " + err.Error())
	}

	eventBus := events.NewInMemoryBus(log)
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	smsModule := sms.NewModule(cfg, store, val, log)
	emailSender := email.NewSender(cfg, log)

	var (
		queueClient *scheduler.Client
		worker      *scheduler.Worker
	)
	if cfg.RedisURL != "" {
		queueClient, err = scheduler.NewClient(cfg)
		if err != nil {
			log.Warn("delivery queue unavailable, notifications are sent inline", "error", err)
		} else {
			defer queueClient.Close()
		}

		worker, err = scheduler.NewWorker(cfg, smsModule.Service(), emailSender, log)
		if err != nil {
			log.Warn("delivery worker unavailable", "error", err)
			worker = nil
		}
	} else {
		log.Info("no redis configured, notifications are sent inline")
	}

	agentsModule, err := agents.NewModule(cfg, eventBus, val, log)
	if err != nil {
		log.Error("failed to initialize agents module", "error", err)
		panic("failed to initialize agents module: " + err.Error())
	}

	sessionsModule := sessions.NewModule(cfg, val, log)
	chatModule, err := chat.NewModule(sessionsModule.Store(), val, log)
	if err != nil {
		log.Error("failed to initialize chat module", "error", err)
		panic("failed to initialize chat module: " + err.Error())
	}

	// Notification subscribers bridge domain events to SMS and email.
	var enqueuer scheduler.Enqueuer
	if queueClient != nil {
		enqueuer = queueClient
	}
	notification.New(store, smsModule.Service(), emailSender, enqueuer, log).Register(eventBus)

	modules := []apphttp.Module{
		accounts.NewModule(pool, cfg, store, val, log),
		cards.NewModule(pool, cfg, store, eventBus, val, log),
		complaints.NewModule(pool, cfg, store, eventBus, val, log),
		disputes.NewModule(store, eventBus, val, log),
		locator.NewModule(pool, cfg, store, val, log),
		cheques.NewModule(pool, cfg, store, val, log),
		deposits.NewModule(pool, cfg, store, val, log),
		loans.NewModule(pool, cfg, store, val, log),
		agentsModule,
		smsModule,
		chatModule,
		sessionsModule,
		dashboard.NewModule(pool, cfg, store, agentsModule.Directory(), log),
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Sessions: sessionsModule.Store(),
		Modules:  modules,
	}
	if pool != nil {
		app.Health = pool
	}

	engine := router.New(app)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if worker != nil {
		g.Go(func() error {
			worker.Run(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
