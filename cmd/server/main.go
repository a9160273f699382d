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

	"go.uber.org/zap"

	"github.com/obaro89/afridev-backend/internal/config"
	"github.com/obaro89/afridev-backend/internal/handler"
	"github.com/obaro89/afridev-backend/internal/observability"
	"github.com/obaro89/afridev-backend/internal/repository"
	"github.com/obaro89/afridev-backend/internal/repository/memory"
	"github.com/obaro89/afridev-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("failed to load config", zap.Error(err))
	}

	// Observability
	if err := observability.InitLogger(cfg.ServiceName, cfg.LogLevel); err != nil {
		panic(err)
	}
	log := observability.Log
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.TracingEnabled {
		tp, err := observability.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
		if err != nil {
			log.Fatal("failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Error("failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	// Storage
	var (
		users    service.UserStore
		profiles service.ProfileStore
		posts    service.PostStore
		ready    observability.Pinger
	)
	switch cfg.StoreDriver {
	case config.StoreMemory:
		store := memory.New()
		users, profiles, posts, ready = store.Users(), store.Profiles(), store.Posts(), store
		log.Warn("using in-memory store, data is lost on restart")
	default:
		db, err := repository.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("db open failed", zap.Error(err))
		}
		defer closeDB(log, db)
		if err := repository.EnsureSchema(ctx, db); err != nil {
			log.Fatal("schema bootstrap failed", zap.Error(err))
		}
		users = &repository.UserRepo{DB: db}
		profiles = &repository.ProfileRepo{DB: db}
		posts = &repository.PostRepo{DB: db}
		ready = db
	}

	// Services
	svcs := handler.Services{
		Auth:    service.NewAuthService(users, cfg),
		Profile: service.NewProfileService(profiles, users),
		Post:    service.NewPostService(posts, users),
		GitHub:  service.NewGitHubClient(cfg),
	}

	// HTTP server
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.NewRouter(cfg, svcs, ready),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("HTTP server started", zap.String("addr", cfg.HTTPAddr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("received signal, initiating shutdown")
	cancel()

	ctxShut, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutCancel()

	if err := srv.Shutdown(ctxShut); err != nil {
		log.Error("HTTP shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

func closeDB(log *zap.Logger, db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Error("db close failed", zap.Error(err))
	}
}
