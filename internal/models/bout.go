// Package models defines data types for the fight graph.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Side tags which participant's row a BoutRecord was read from.
type Side string

// Side values for BoutRecord.
const (
	// SidePrimary means the row is stored under the fighter being queried.
	SidePrimary Side = "primary"
	// SideOpponent means the queried fighter appears only as the named
	// opponent on another fighter's row.
	SideOpponent Side = "opponent"
)

// ResultPlaceholder is the value scrapers write when a bout has no recorded
// result yet. Reconciliation prefers any real result over it.
const ResultPlaceholder = "N/A"

// BoutRecord is a raw bout row as read from storage. A single real-world
// bout may exist as two rows, one keyed by each participant, with the
// result recorded from that participant's perspective.
type BoutRecord struct {
	FightID      string         `json:"fight_id"`
	SubjectID    string         `json:"subject_id"`
	PrincipalID  string         `json:"principal_fighter_id"`
	OpponentID   *string        `json:"opponent_id,omitempty"`
	OpponentName string         `json:"opponent_name"`
	EventName    string         `json:"event_name"`
	EventDate    *time.Time     `json:"event_date,omitempty"`
	Result       string         `json:"result"`
	Method       *string        `json:"method,omitempty"`
	Round        *int           `json:"round,omitempty"`
	Time         *string        `json:"time,omitempty"`
	Stats        map[string]any `json:"stats,omitempty"`
	Side         Side           `json:"side"`
}

// CanonicalFightEntry is one deduplicated entry in a fighter's history,
// with the result expressed from the querying fighter's perspective.
type CanonicalFightEntry struct {
	FightID      string         `json:"fight_id"`
	EventName    string         `json:"event_name"`
	EventDate    *time.Time     `json:"event_date,omitempty"`
	OpponentName string         `json:"opponent_name"`
	OpponentID   *string        `json:"opponent_id,omitempty"`
	Result       string         `json:"result"`
	Method       *string        `json:"method,omitempty"`
	Round        *int           `json:"round,omitempty"`
	Time         *string        `json:"time,omitempty"`
	Stats        map[string]any `json:"stats,omitempty"`
}

// Fighter is a roster entry.
type Fighter struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Nickname  string    `json:"nickname,omitempty"`
	Division  string    `json:"division,omitempty"`
	Country   string    `json:"country,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateFighterRequest is the payload for adding a fighter.
type CreateFighterRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	Division string `json:"division,omitempty"`
	Country  string `json:"country,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Validate checks required fields on CreateFighterRequest.
// If ID is empty, a UUID is auto-generated.
func (r *CreateFighterRequest) Validate() error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	if len(r.ID) > 255 {
		return ErrFieldTooLong("id", 255)
	}

	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 500 {
		return ErrFieldTooLong("name", 500)
	}

	if len(r.Division) > 100 {
		return ErrFieldTooLong("division", 100)
	}

	return nil
}

// CreateBoutRequest is the payload for recording a bout under a fighter.
// OpponentID may be empty when the opponent has not been resolved to a
// roster entry yet; OpponentName is then the only identity available.
type CreateBoutRequest struct {
	OpponentID   string         `json:"opponent_id,omitempty"`
	OpponentName string         `json:"opponent_name"`
	EventName    string         `json:"event_name"`
	EventDate    *time.Time     `json:"event_date,omitempty"`
	Result       string         `json:"result"`
	Method       string         `json:"method,omitempty"`
	Round        *int           `json:"round,omitempty"`
	Time         string         `json:"time,omitempty"`
	Stats        map[string]any `json:"stats,omitempty"`
}

// Validate checks required fields on CreateBoutRequest.
func (r *CreateBoutRequest) Validate() error {
	if r.OpponentName == "" && r.OpponentID == "" {
		return ErrMissingOpponent
	}

	if r.EventName == "" {
		return ErrMissingEvent
	}

	if len(r.EventName) > 500 {
		return ErrFieldTooLong("event_name", 500)
	}

	if r.Result == "" {
		r.Result = ResultPlaceholder
	}

	return nil
}
