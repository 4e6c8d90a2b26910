package store

import (
	"context"
	"fmt"

	"github.com/fightgraph/fightgraph/internal/models"
)

// DetectCapabilities inspects the live schema once, at startup, and
// reports which optional features it supports. The result is passed
// explicitly into services instead of living in process-wide state, so
// tests stay deterministic and concurrent requests never race on it.
func (s *FighterStore) DetectCapabilities(ctx context.Context) (models.Capabilities, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var hasStreakCache bool

	err := s.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = 'fighters' AND column_name = 'streak_type'
		)`).Scan(&hasStreakCache)
	if err != nil {
		return models.Capabilities{}, fmt.Errorf("detecting schema capabilities: %w", err)
	}

	return models.Capabilities{StreakCache: hasStreakCache}, nil
}

// WriteStreakCache persists computed streaks into the optional cache
// columns in one statement. Callers must hold a Capabilities value with
// StreakCache set; the cache is advisory and computation never reads it,
// so a failed write is the caller's to log and ignore.
func (s *FighterStore) WriteStreakCache(ctx context.Context, results map[string]models.StreakResult) error {
	if len(results) == 0 {
		return nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	ids := make([]string, 0, len(results))
	types := make([]string, 0, len(results))
	counts := make([]int, 0, len(results))

	for id, r := range results {
		ids = append(ids, id)
		types = append(types, string(r.Type))
		counts = append(counts, r.Count)
	}

	_, err := s.Pool.Exec(ctx, `
		UPDATE fighters SET
			streak_type = u.streak_type,
			streak_count = u.streak_count,
			updated_at = now()
		FROM (
			SELECT unnest($1::text[]) AS id,
			       unnest($2::text[]) AS streak_type,
			       unnest($3::int[]) AS streak_count
		) u
		WHERE fighters.id = u.id`, ids, types, counts)
	if err != nil {
		return fmt.Errorf("writing streak cache: %w", err)
	}

	return nil
}
