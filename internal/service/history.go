package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fightgraph/fightgraph/internal/domain"
	"github.com/fightgraph/fightgraph/internal/metrics"
	"github.com/fightgraph/fightgraph/internal/models"
	"github.com/fightgraph/fightgraph/internal/record"
)

// HistoryBoutFetcher fetches both perspectives of a fighter's bout rows
// in one round trip.
type HistoryBoutFetcher interface {
	FetchBoutsForFighter(ctx context.Context, fighterID string) ([]models.BoutRecord, error)
}

// NameResolver batch-resolves fighter IDs to display names.
type NameResolver interface {
	ResolveNames(ctx context.Context, fighterIDs []string) (map[string]string, error)
}

// Compile-time check: *HistoryService must satisfy domain.HistoryService.
var _ domain.HistoryService = (*HistoryService)(nil)

// HistoryService produces canonical, deduplicated fight histories.
type HistoryService struct {
	bouts HistoryBoutFetcher
	names NameResolver
	log   *logrus.Logger
}

// NewHistoryService creates a HistoryService.
func NewHistoryService(bouts HistoryBoutFetcher, names NameResolver, log *logrus.Logger) *HistoryService {
	return &HistoryService{bouts: bouts, names: names, log: log}
}

// FightHistory reconciles both perspectives of a fighter's record into
// one chronologically ordered history. Store failures propagate; data
// quality problems (missing names, undated bouts, malformed results)
// degrade per entry instead of failing the request.
func (s *HistoryService) FightHistory(ctx context.Context, fighterID string) ([]models.CanonicalFightEntry, error) {
	start := time.Now()
	defer func() {
		metrics.ReconcileDuration.Observe(time.Since(start).Seconds())
	}()

	rows, err := s.bouts.FetchBoutsForFighter(ctx, fighterID)
	if err != nil {
		return nil, fmt.Errorf("fetching bouts: %w", err)
	}

	// Resolve display names for every opponent-side principal in one
	// batched lookup, never one query per row.
	idSet := make(map[string]bool)
	for _, r := range rows {
		if r.Side == models.SideOpponent && r.PrincipalID != "" {
			idSet[r.PrincipalID] = true
		}
	}

	names := map[string]string{}

	if len(idSet) > 0 {
		ids := make([]string, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}

		names, err = s.names.ResolveNames(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("resolving opponent names: %w", err)
		}
	}

	entries := record.Reconcile(rows, names)

	s.log.WithFields(logrus.Fields{
		"fighter_id": fighterID,
		"rows":       len(rows),
		"entries":    len(entries),
	}).Debug("history.reconciled")

	return entries, nil
}
