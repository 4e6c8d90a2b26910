// Package domain defines the canonical service interfaces shared across
// API layers. Consumers should depend on these interfaces rather than
// re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/fightgraph/fightgraph/internal/models"
)

// FighterService defines roster operations.
type FighterService interface {
	ListFighters(ctx context.Context, division string, limit int) ([]models.Fighter, error)
	GetFighter(ctx context.Context, fighterID string) (*models.Fighter, error)
	CreateFighter(ctx context.Context, req models.CreateFighterRequest) (*models.Fighter, error)
	CreateBout(ctx context.Context, fighterID string, req models.CreateBoutRequest) (*models.BoutRecord, error)
}

// HistoryService reconciles a fighter's dual-perspective bout rows into
// one canonical history.
type HistoryService interface {
	FightHistory(ctx context.Context, fighterID string) ([]models.CanonicalFightEntry, error)
}

// StreakService computes win/loss/draw streaks for batches of fighters.
type StreakService interface {
	Streaks(ctx context.Context, req models.StreakRequest) (map[string]models.StreakResult, error)
}

// GraphService aggregates bouts into the fighter relationship graph.
type GraphService interface {
	RelationshipGraph(ctx context.Context, filters models.GraphFilters) (*models.GraphResult, error)
}
