package api_test

import (
	"context"

	"github.com/fightgraph/fightgraph/internal/models"
)

// mockFighterRepo implements api.FighterRepository for testing.
type mockFighterRepo struct {
	listFn       func(ctx context.Context, division string, limit int) ([]models.Fighter, error)
	getFn        func(ctx context.Context, fighterID string) (*models.Fighter, error)
	createFn     func(ctx context.Context, req models.CreateFighterRequest) (*models.Fighter, error)
	createBoutFn func(ctx context.Context, fighterID string, req models.CreateBoutRequest) (*models.BoutRecord, error)
}

func (m *mockFighterRepo) ListFighters(ctx context.Context, division string, limit int) ([]models.Fighter, error) {
	return m.listFn(ctx, division, limit)
}

func (m *mockFighterRepo) GetFighter(ctx context.Context, fighterID string) (*models.Fighter, error) {
	return m.getFn(ctx, fighterID)
}

func (m *mockFighterRepo) CreateFighter(ctx context.Context, req models.CreateFighterRequest) (*models.Fighter, error) {
	return m.createFn(ctx, req)
}

func (m *mockFighterRepo) CreateBout(ctx context.Context, fighterID string, req models.CreateBoutRequest) (*models.BoutRecord, error) {
	return m.createBoutFn(ctx, fighterID, req)
}

// mockHistoryRepo implements api.HistoryRepository for testing.
type mockHistoryRepo struct {
	historyFn func(ctx context.Context, fighterID string) ([]models.CanonicalFightEntry, error)
}

func (m *mockHistoryRepo) FightHistory(ctx context.Context, fighterID string) ([]models.CanonicalFightEntry, error) {
	return m.historyFn(ctx, fighterID)
}

// mockStreakRepo implements api.StreakRepository for testing.
type mockStreakRepo struct {
	streaksFn func(ctx context.Context, req models.StreakRequest) (map[string]models.StreakResult, error)
}

func (m *mockStreakRepo) Streaks(ctx context.Context, req models.StreakRequest) (map[string]models.StreakResult, error) {
	return m.streaksFn(ctx, req)
}

// mockGraphRepo implements api.GraphRepository for testing.
type mockGraphRepo struct {
	graphFn func(ctx context.Context, filters models.GraphFilters) (*models.GraphResult, error)
}

func (m *mockGraphRepo) RelationshipGraph(ctx context.Context, filters models.GraphFilters) (*models.GraphResult, error) {
	return m.graphFn(ctx, filters)
}
