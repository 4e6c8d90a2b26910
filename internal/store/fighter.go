package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fightgraph/fightgraph/internal/models"
)

// maxListLimit is a defense-in-depth cap on limit values for list queries.
const maxListLimit = 1000

// FighterStore handles roster reads and writes.
type FighterStore struct {
	Base
}

// NewFighterStore creates a FighterStore with the given shared base.
func NewFighterStore(base Base) *FighterStore {
	return &FighterStore{Base: base}
}

// ListFighters returns roster entries, optionally restricted to a division.
func (s *FighterStore) ListFighters(ctx context.Context, division string, limit int) ([]models.Fighter, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + fighterColumns + ` FROM fighters
		WHERE ($1 = '' OR division = $1)
		ORDER BY name
		LIMIT $2`

	rows, err := s.Pool.Query(ctx, query, division, limit)
	if err != nil {
		return nil, fmt.Errorf("listing fighters: %w", err)
	}
	defer rows.Close()

	return collectFighters(rows)
}

// GetFighter returns one fighter by ID.
func (s *FighterStore) GetFighter(ctx context.Context, fighterID string) (*models.Fighter, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, `SELECT `+fighterColumns+` FROM fighters WHERE id = $1`, fighterID)

	f, err := scanFighter(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrFighterNotFound
		}

		return nil, fmt.Errorf("scanning fighter: %w", err)
	}

	return f, nil
}

// CreateFighter inserts a roster entry and returns the created record.
func (s *FighterStore) CreateFighter(ctx context.Context, req models.CreateFighterRequest) (*models.Fighter, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO fighters (id, name, nickname, division, country, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + fighterColumns

	row := s.Pool.QueryRow(ctx, query, req.ID, req.Name, req.Nickname, req.Division, req.Country, req.ImageURL)

	f, err := scanFighter(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created fighter: %w", err)
	}

	return f, nil
}

// CreateBout inserts a fight row under the given fighter. The opponent ID
// is stored only when it resolves to a roster entry; otherwise the bout
// carries the scraped opponent name alone until identity resolution.
func (s *FighterStore) CreateBout(ctx context.Context, fighterID string, req models.CreateBoutRequest) (*models.BoutRecord, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	stats := req.Stats
	if stats == nil {
		stats = map[string]any{}
	}

	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("encoding bout stats: %w", err)
	}

	var opponentID *string
	if req.OpponentID != "" {
		opponentID = &req.OpponentID
	}

	var method *string
	if req.Method != "" {
		method = &req.Method
	}

	var fightTime *string
	if req.Time != "" {
		fightTime = &req.Time
	}

	query := `INSERT INTO fights
		(id, fighter_id, opponent_id, opponent_name, event_name, event_date,
		 result, method, round, fight_time, stats)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + boutColumns + `, fighter_id AS subject_id, 'primary' AS side`

	row := s.Pool.QueryRow(ctx, query,
		uuid.New().String(), fighterID, opponentID, req.OpponentName, req.EventName,
		req.EventDate, req.Result, method, req.Round, fightTime, statsJSON)

	b, err := scanBout(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, models.ErrDuplicateKey
			case "23503":
				return nil, models.ErrFighterNotFound
			}
		}

		return nil, fmt.Errorf("scanning created bout: %w", err)
	}

	return b, nil
}

// CollectionCounts returns total fighter and bout row counts, used to
// feed the process gauges.
func (s *FighterStore) CollectionCounts(ctx context.Context) (fighters, bouts int64, err error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err = s.Pool.QueryRow(ctx,
		`SELECT (SELECT count(*) FROM fighters), (SELECT count(*) FROM fights)`).
		Scan(&fighters, &bouts)
	if err != nil {
		return 0, 0, fmt.Errorf("counting collections: %w", err)
	}

	return fighters, bouts, nil
}

// ResolveNames maps fighter IDs to display names in one query. IDs with
// no roster entry are simply absent from the result; callers degrade
// them to a placeholder rather than failing.
func (s *FighterStore) ResolveNames(ctx context.Context, fighterIDs []string) (map[string]string, error) {
	if len(fighterIDs) == 0 {
		return map[string]string{}, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, `SELECT id, name FROM fighters WHERE id = ANY($1)`, fighterIDs)
	if err != nil {
		return nil, fmt.Errorf("resolving fighter names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string, len(fighterIDs))

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning fighter name: %w", err)
		}

		names[id] = name
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fighter names: %w", err)
	}

	return names, nil
}
