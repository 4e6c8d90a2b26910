package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fightgraph/fightgraph/internal/domain"
	"github.com/fightgraph/fightgraph/internal/metrics"
	"github.com/fightgraph/fightgraph/internal/models"
	"github.com/fightgraph/fightgraph/internal/record"
)

// StreakBoutFetcher fetches windowed bout rows for a batch of fighters
// in one set-oriented query.
type StreakBoutFetcher interface {
	FetchBoutsForFighters(ctx context.Context, fighterIDs []string, windowPerFighter int) ([]models.BoutRecord, error)
}

// StreakCacheWriter persists computed streaks into the optional cache
// columns.
type StreakCacheWriter interface {
	WriteStreakCache(ctx context.Context, results map[string]models.StreakResult) error
}

// Compile-time check: *StreakService must satisfy domain.StreakService.
var _ domain.StreakService = (*StreakService)(nil)

// StreakService computes sliding-window streaks for fighter batches.
// The caps value is detected once at startup and injected; the service
// never consults global state to learn what the schema supports.
type StreakService struct {
	bouts StreakBoutFetcher
	cache StreakCacheWriter
	caps  models.Capabilities
	log   *logrus.Logger
}

// NewStreakService creates a StreakService.
func NewStreakService(bouts StreakBoutFetcher, cache StreakCacheWriter, caps models.Capabilities, log *logrus.Logger) *StreakService {
	return &StreakService{bouts: bouts, cache: cache, caps: caps, log: log}
}

// Streaks returns a streak per requested fighter. The whole batch is
// served by one unioned, windowed fetch; cost scales with fighters times
// rows, not round trips. When the schema carries the streak cache
// columns the results are written back best-effort; computation is
// always from the raw rows, so a stale or absent cache cannot skew it.
func (s *StreakService) Streaks(ctx context.Context, req models.StreakRequest) (map[string]models.StreakResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	metrics.StreakBatchSize.Observe(float64(len(req.FighterIDs)))

	window := req.EffectiveWindow()

	rows, err := s.bouts.FetchBoutsForFighters(ctx, req.FighterIDs, window)
	if err != nil {
		return nil, fmt.Errorf("fetching bouts for streaks: %w", err)
	}

	results := record.Streaks(req.FighterIDs, rows, window)

	s.log.WithFields(logrus.Fields{
		"fighters": len(req.FighterIDs),
		"rows":     len(rows),
		"window":   window,
	}).Debug("streak.computed")

	if s.caps.StreakCache && s.cache != nil {
		if err := s.cache.WriteStreakCache(ctx, results); err != nil {
			s.log.WithError(err).Warn("streak cache write failed")
		}
	}

	return results, nil
}
