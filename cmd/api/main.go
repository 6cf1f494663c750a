package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dab1n-Lee/TDD-Study-hh/internal/api"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/config"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/keylock"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/logger"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/metrics"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/repository/memory"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/services"
	"github.com/Dab1n-Lee/TDD-Study-hh/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.Init()

	repos := memory.NewRepositories()
	wp := worker.NewPool(cfg.WorkerCount)
	defer wp.Stop()

	pointSvc := services.NewPointService(
		repos.Balances,
		repos.Transactions,
		repos.AuditLogs,
		keylock.NewRegistry(),
		wp,
	)

	r := api.NewRouter(pointSvc)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
