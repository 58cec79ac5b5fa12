package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kanishkdw/mita/internal/config"
	"github.com/kanishkdw/mita/internal/handler"
	"github.com/kanishkdw/mita/internal/server"
	"github.com/kanishkdw/mita/pkg/db"
	"github.com/kanishkdw/mita/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	cfg, warnings := config.Load()

	log, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	for _, w := range warnings {
		log.Warn("config", zap.String("warning", w))
	}

	var pgPinger, redisPinger handler.Pinger
	if cfg.PostgresURL != "" {
		pgPool, err := db.New(context.Background(), cfg.PostgresURL)
		if err != nil {
			log.Fatal("postgres setup", zap.Error(err))
		}
		defer pgPool.Close()
		pgPinger = pgPool
	}
	if cfg.RedisURL != "" {
		rdbClient, err := redis.New(cfg.RedisURL)
		if err != nil {
			log.Fatal("redis setup", zap.Error(err))
		}
		defer rdbClient.Close()
		redisPinger = rdbClient
	}

	deps := server.NewDeps(log, cfg.ReadyTimeout, pgPinger, redisPinger)
	srv := server.New(cfg, log, deps)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
