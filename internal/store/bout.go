package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fightgraph/fightgraph/internal/models"
)

// maxGraphCandidates caps the candidate set for graph queries.
const maxGraphCandidates = 1000

// BoutStore handles all bout-row fetches. Every method is set-oriented:
// the two perspectives of a fighter's record come back as one unioned
// result, tagged with subject_id and side.
type BoutStore struct {
	Base
}

// NewBoutStore creates a BoutStore with the given shared base.
func NewBoutStore(base Base) *BoutStore {
	return &BoutStore{Base: base}
}

// boutUnionSQL selects both perspectives for a set of subject fighters:
// rows stored under the fighter (side primary) and rows on other
// fighters' records naming it as opponent (side opponent).
const boutUnionSQL = `
	SELECT ` + boutColumns + `, fighter_id AS subject_id, 'primary' AS side
	FROM fights
	WHERE fighter_id = ANY($1)
	UNION ALL
	SELECT ` + boutColumns + `, opponent_id AS subject_id, 'opponent' AS side
	FROM fights
	WHERE opponent_id = ANY($1)`

// FetchBoutsForFighter returns all bout rows involving one fighter,
// from both perspectives, in a single round trip.
func (s *BoutStore) FetchBoutsForFighter(ctx context.Context, fighterID string) ([]models.BoutRecord, error) {
	return s.FetchBoutsForFighters(ctx, []string{fighterID}, 0)
}

// FetchBoutsForFighters returns bout rows for a whole batch of fighters
// in one query. windowPerFighter > 0 bounds the result to that many most
// recent rows per fighter (by event date descending, undated rows last);
// 0 fetches everything. Cost scales with fighters times fetched rows,
// never with round trips.
func (s *BoutStore) FetchBoutsForFighters(ctx context.Context, fighterIDs []string, windowPerFighter int) ([]models.BoutRecord, error) {
	if len(fighterIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := boutUnionSQL
	args := []any{fighterIDs}

	if windowPerFighter > 0 {
		query = `
			SELECT ` + boutColumns + `, subject_id, side FROM (
				SELECT u.*, row_number() OVER (
					PARTITION BY u.subject_id
					ORDER BY u.event_date DESC NULLS LAST, u.id
				) AS rn
				FROM (` + boutUnionSQL + `) u
			) ranked
			WHERE rn <= $2`
		args = append(args, windowPerFighter)
	}

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching bouts for fighters: %w", err)
	}
	defer rows.Close()

	return collectBouts(rows)
}

// FetchSubsetBouts returns bout rows where both endpoints are inside the
// subset. Cross-subset bouts are excluded entirely rather than partially
// represented. A date window, when present, drops undated rows.
func (s *BoutStore) FetchSubsetBouts(ctx context.Context, fighterIDs []string, from, to *time.Time) ([]models.BoutRecord, error) {
	if len(fighterIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + boutColumns + `, fighter_id AS subject_id, 'primary' AS side
		FROM fights
		WHERE fighter_id = ANY($1)
		  AND opponent_id = ANY($1)
		  AND ($2::date IS NULL OR event_date >= $2)
		  AND ($3::date IS NULL OR event_date <= $3)`

	rows, err := s.Pool.Query(ctx, query, fighterIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetching subset bouts: %w", err)
	}
	defer rows.Close()

	return collectBouts(rows)
}

// TopFightersByBoutVolume returns the fighters with the most recorded
// bout involvement inside the filter, candidates for graph nodes.
// An empty result is not an error; the graph service falls back to the
// plain roster listing.
func (s *BoutStore) TopFightersByBoutVolume(ctx context.Context, filters models.GraphFilters) ([]models.Fighter, error) {
	limit := filters.Limit
	if limit <= 0 || limit > maxGraphCandidates {
		limit = maxGraphCandidates
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		WITH involvement AS (
			SELECT fighter_id AS id
			FROM fights
			WHERE ($2::date IS NULL OR event_date >= $2)
			  AND ($3::date IS NULL OR event_date <= $3)
			UNION ALL
			SELECT opponent_id
			FROM fights
			WHERE opponent_id IS NOT NULL
			  AND ($2::date IS NULL OR event_date >= $2)
			  AND ($3::date IS NULL OR event_date <= $3)
		)
		SELECT ` + qualifiedFighterColumns("f") + `
		FROM involvement i
		JOIN fighters f ON f.id = i.id
		WHERE ($1 = '' OR f.division = $1)
		GROUP BY ` + qualifiedFighterColumns("f") + `
		ORDER BY count(*) DESC, f.name
		LIMIT $4`

	rows, err := s.Pool.Query(ctx, query, filters.Division, filters.From, filters.To, limit)
	if err != nil {
		return nil, fmt.Errorf("ranking fighters by bout volume: %w", err)
	}
	defer rows.Close()

	return collectFighters(rows)
}

// qualifiedFighterColumns prefixes the fighter column list with a table
// alias for use in joins.
func qualifiedFighterColumns(alias string) string {
	return alias + `.id, ` + alias + `.name, ` + alias + `.nickname, ` +
		alias + `.division, ` + alias + `.country, ` + alias + `.image_url, ` +
		alias + `.created_at, ` + alias + `.updated_at`
}
