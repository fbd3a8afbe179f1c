package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Harshavarthini19/campus-connect/internal/config"
	"github.com/Harshavarthini19/campus-connect/internal/database"
	"github.com/Harshavarthini19/campus-connect/internal/router"
	"github.com/Harshavarthini19/campus-connect/pkg/logger"
)

func main() {
	// config + logger
	cfg := config.Load()
	l := logger.New(cfg.Env)

	// db (skipped when running against the in-memory backend)
	var pool *pgxpool.Pool
	if cfg.Store != "memory" {
		var err error
		pool, err = database.Open(context.Background(), cfg)
		if err != nil {
			l.Fatal().Err(err).Msg("db connect failed")
		}
		defer pool.Close()
	}

	// http
	r := router.New(l, pool, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Str("store", cfg.Store).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info().Msg("shutdown complete")
}
