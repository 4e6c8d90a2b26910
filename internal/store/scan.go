package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fightgraph/fightgraph/internal/models"
)

// fighterColumns lists the columns selected for fighter queries.
const fighterColumns = `id, name, nickname, division, country, image_url,
	created_at, updated_at`

// boutColumns lists the fight-row columns common to every bout query.
// subject_id and side are appended per query since they depend on which
// arm of the union produced the row.
const boutColumns = `id, fighter_id, opponent_id, opponent_name, event_name,
	event_date, result, method, round, fight_time, stats`

// scanFighter scans a single row into a models.Fighter.
func scanFighter(scan func(dest ...any) error) (*models.Fighter, error) {
	var f models.Fighter

	err := scan(
		&f.ID,
		&f.Name,
		&f.Nickname,
		&f.Division,
		&f.Country,
		&f.ImageURL,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &f, nil
}

// collectFighters drains rows into a fighter slice.
func collectFighters(rows pgx.Rows) ([]models.Fighter, error) {
	out := make([]models.Fighter, 0, 32)

	for rows.Next() {
		f, err := scanFighter(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning fighter: %w", err)
		}

		out = append(out, *f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fighters: %w", err)
	}

	return out, nil
}

// scanBout scans a single row (bout columns plus subject_id and side)
// into a models.BoutRecord.
func scanBout(scan func(dest ...any) error) (*models.BoutRecord, error) {
	var (
		b         models.BoutRecord
		eventDate *time.Time
		stats     []byte
		side      string
	)

	err := scan(
		&b.FightID,
		&b.PrincipalID,
		&b.OpponentID,
		&b.OpponentName,
		&b.EventName,
		&eventDate,
		&b.Result,
		&b.Method,
		&b.Round,
		&b.Time,
		&stats,
		&b.SubjectID,
		&side,
	)
	if err != nil {
		return nil, err
	}

	b.EventDate = eventDate
	b.Side = models.Side(side)

	if len(stats) > 0 {
		if err := json.Unmarshal(stats, &b.Stats); err != nil {
			return nil, fmt.Errorf("unmarshalling bout stats: %w", err)
		}
	}

	return &b, nil
}

// collectBouts drains rows into a bout slice.
func collectBouts(rows pgx.Rows) ([]models.BoutRecord, error) {
	out := make([]models.BoutRecord, 0, 64)

	for rows.Next() {
		b, err := scanBout(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning bout: %w", err)
		}

		out = append(out, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bouts: %w", err)
	}

	return out, nil
}
