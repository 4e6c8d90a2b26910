package service

import (
	"context"
	"sync"
	"time"

	"github.com/fightgraph/fightgraph/internal/models"
)

// mockBoutFetcher records calls and returns configured responses.
type mockBoutFetcher struct {
	mu    sync.Mutex
	calls []string

	fetchForFighter  func(ctx context.Context, fighterID string) ([]models.BoutRecord, error)
	fetchForFighters func(ctx context.Context, fighterIDs []string, window int) ([]models.BoutRecord, error)
}

func (m *mockBoutFetcher) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockBoutFetcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.calls)
}

func (m *mockBoutFetcher) FetchBoutsForFighter(ctx context.Context, fighterID string) ([]models.BoutRecord, error) {
	m.record("FetchBoutsForFighter")

	return m.fetchForFighter(ctx, fighterID)
}

func (m *mockBoutFetcher) FetchBoutsForFighters(ctx context.Context, fighterIDs []string, window int) ([]models.BoutRecord, error) {
	m.record("FetchBoutsForFighters")

	return m.fetchForFighters(ctx, fighterIDs, window)
}

// mockNameResolver records the ID batches it was asked to resolve.
type mockNameResolver struct {
	mu      sync.Mutex
	batches [][]string

	resolve func(ctx context.Context, fighterIDs []string) (map[string]string, error)
}

func (m *mockNameResolver) ResolveNames(ctx context.Context, fighterIDs []string) (map[string]string, error) {
	m.mu.Lock()
	m.batches = append(m.batches, fighterIDs)
	m.mu.Unlock()

	return m.resolve(ctx, fighterIDs)
}

// mockCacheWriter captures streak cache writes.
type mockCacheWriter struct {
	mu     sync.Mutex
	writes []map[string]models.StreakResult
	err    error
}

func (m *mockCacheWriter) WriteStreakCache(_ context.Context, results map[string]models.StreakResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, results)

	return m.err
}

func (m *mockCacheWriter) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.writes)
}

// mockGraphStore records calls and returns configured responses.
type mockGraphStore struct {
	mu    sync.Mutex
	calls []string

	topFighters  func(ctx context.Context, filters models.GraphFilters) ([]models.Fighter, error)
	subsetBouts  func(ctx context.Context, fighterIDs []string, from, to *time.Time) ([]models.BoutRecord, error)
	listFighters func(ctx context.Context, division string, limit int) ([]models.Fighter, error)
}

func (m *mockGraphStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockGraphStore) TopFightersByBoutVolume(ctx context.Context, filters models.GraphFilters) ([]models.Fighter, error) {
	m.record("TopFightersByBoutVolume")

	return m.topFighters(ctx, filters)
}

func (m *mockGraphStore) FetchSubsetBouts(ctx context.Context, fighterIDs []string, from, to *time.Time) ([]models.BoutRecord, error) {
	m.record("FetchSubsetBouts")

	return m.subsetBouts(ctx, fighterIDs, from, to)
}

func (m *mockGraphStore) ListFighters(ctx context.Context, division string, limit int) ([]models.Fighter, error) {
	m.record("ListFighters")

	return m.listFighters(ctx, division, limit)
}
