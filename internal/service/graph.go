package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/fightgraph/fightgraph/internal/domain"
	"github.com/fightgraph/fightgraph/internal/models"
	"github.com/fightgraph/fightgraph/internal/record"
)

// GraphStore is the data access the graph service depends on.
type GraphStore interface {
	TopFightersByBoutVolume(ctx context.Context, filters models.GraphFilters) ([]models.Fighter, error)
	FetchSubsetBouts(ctx context.Context, fighterIDs []string, from, to *time.Time) ([]models.BoutRecord, error)
	ListFighters(ctx context.Context, division string, limit int) ([]models.Fighter, error)
}

// Compile-time check: *GraphService must satisfy domain.GraphService.
var _ domain.GraphService = (*GraphService)(nil)

// GraphService builds the fighter relationship graph. Identical
// concurrent requests collapse into one computation via singleflight;
// callers must treat the returned result as read-only.
type GraphService struct {
	store GraphStore
	log   *logrus.Logger
	group singleflight.Group
}

// NewGraphService creates a GraphService.
func NewGraphService(store GraphStore, log *logrus.Logger) *GraphService {
	return &GraphService{store: store, log: log}
}

// RelationshipGraph returns nodes for the filtered fighter subset and
// undirected links for the bouts among them. When the volume-ranked
// candidate query finds nobody, the graph degrades to the plain roster
// listing with zero-fight nodes and no links instead of failing.
func (s *GraphService) RelationshipGraph(ctx context.Context, filters models.GraphFilters) (*models.GraphResult, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	v, err, shared := s.group.Do(graphKey(filters), func() (any, error) {
		return s.buildGraph(ctx, filters)
	})
	if err != nil {
		return nil, err
	}

	if shared {
		s.log.Debug("graph.request_coalesced")
	}

	return v.(*models.GraphResult), nil
}

func (s *GraphService) buildGraph(ctx context.Context, filters models.GraphFilters) (*models.GraphResult, error) {
	fighters, err := s.store.TopFightersByBoutVolume(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("ranking graph candidates: %w", err)
	}

	if len(fighters) == 0 {
		fighters, err = s.store.ListFighters(ctx, filters.Division, filters.Limit)
		if err != nil {
			return nil, fmt.Errorf("listing fallback fighters: %w", err)
		}

		s.log.WithField("fighters", len(fighters)).Debug("graph.volume_fallback")

		return record.AggregateGraph(fighters, nil, filters.GroupBy), nil
	}

	ids := make([]string, len(fighters))
	for i, f := range fighters {
		ids[i] = f.ID
	}

	bouts, err := s.store.FetchSubsetBouts(ctx, ids, filters.From, filters.To)
	if err != nil {
		return nil, fmt.Errorf("fetching subset bouts: %w", err)
	}

	result := record.AggregateGraph(fighters, bouts, filters.GroupBy)

	s.log.WithFields(logrus.Fields{
		"fighters": len(result.Nodes),
		"links":    len(result.Links),
		"bouts":    result.Metadata.BoutCount,
	}).Debug("graph.aggregated")

	return result, nil
}

// graphKey canonicalizes filters into a singleflight key.
func graphKey(f models.GraphFilters) string {
	from, to := "", ""
	if f.From != nil {
		from = f.From.Format("2006-01-02")
	}

	if f.To != nil {
		to = f.To.Format("2006-01-02")
	}

	return fmt.Sprintf("%s|%s|%s|%d|%s", f.Division, from, to, f.Limit, f.GroupBy)
}
