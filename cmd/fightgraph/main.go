// Command fightgraph runs the fight record reconciliation and
// relationship-graph HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fightgraph/fightgraph/internal/api"
	"github.com/fightgraph/fightgraph/internal/config"
	"github.com/fightgraph/fightgraph/internal/db"
	"github.com/fightgraph/fightgraph/internal/db/migrations"
	"github.com/fightgraph/fightgraph/internal/dbpool"
	"github.com/fightgraph/fightgraph/internal/metrics"
	"github.com/fightgraph/fightgraph/internal/service"
	"github.com/fightgraph/fightgraph/internal/store"
)

const (
	shutdownTimeout = 10 * time.Second
	gaugeInterval   = 30 * time.Second
)

// graphStore combines the two concrete stores into the single
// data-access surface the graph service expects.
type graphStore struct {
	*store.BoutStore
	*store.FighterStore
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := run(log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(log *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		return err
	}

	base := store.Base{Pool: pool, Log: log}
	fighters := store.NewFighterStore(base)
	bouts := store.NewBoutStore(base)

	caps, err := fighters.DetectCapabilities(ctx)
	if err != nil {
		return err
	}

	log.WithField("streak_cache", caps.StreakCache).Info("schema capabilities detected")

	router := api.NewRouter(&api.RouterDeps{
		Log:         log,
		Pool:        pool,
		Fighters:    service.NewFighterService(fighters, log),
		History:     service.NewHistoryService(bouts, fighters, log),
		Streaks:     service.NewStreakService(bouts, fighters, caps, log),
		Graph:       service.NewGraphService(&graphStore{bouts, fighters}, log),
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
	})

	go updateGauges(ctx, fighters, log)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.WithFields(logrus.Fields{
			"addr":    cfg.Addr(),
			"version": config.Version,
		}).Info("server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// updateGauges periodically refreshes the roster and bout count gauges.
func updateGauges(ctx context.Context, fighters *store.FighterStore, log *logrus.Logger) {
	ticker := time.NewTicker(gaugeInterval)
	defer ticker.Stop()

	for {
		fighterCount, boutCount, err := fighters.CollectionCounts(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			log.WithError(err).Warn("refreshing collection gauges failed")
		} else {
			metrics.FighterCount.Set(float64(fighterCount))
			metrics.BoutCount.Set(float64(boutCount))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
