package models

import "time"

// GraphNode is one fighter vertex in the relationship graph.
type GraphNode struct {
	FighterID       string     `json:"fighter_id"`
	Name            string     `json:"name"`
	Nickname        string     `json:"nickname,omitempty"`
	Division        string     `json:"division,omitempty"`
	Country         string     `json:"country,omitempty"`
	ImageURL        string     `json:"image_url,omitempty"`
	Group           string     `json:"group,omitempty"`
	TotalFights     int        `json:"total_fights"`
	LatestEventDate *time.Time `json:"latest_event_date,omitempty"`
}

// GraphLink is one undirected pairing of fighters who have faced each
// other, with aggregated outcome metadata. FighterA/FighterB are ordered
// so that FighterA < FighterB, making the pair key canonical.
type GraphLink struct {
	FighterA       string     `json:"fighter_a"`
	FighterB       string     `json:"fighter_b"`
	FightCount     int        `json:"fight_count"`
	FirstEventName string     `json:"first_event_name,omitempty"`
	FirstEventDate *time.Time `json:"first_event_date,omitempty"`
	LastEventName  string     `json:"last_event_name,omitempty"`
	LastEventDate  *time.Time `json:"last_event_date,omitempty"`
	// ResultBreakdown maps each fighter in the pair to a histogram of the
	// results recorded on that fighter's own rows (not inverted).
	ResultBreakdown map[string]*CategoryCounts `json:"result_breakdown"`
}

// GraphMetadata summarizes an aggregated graph.
type GraphMetadata struct {
	FighterCount  int        `json:"fighter_count"`
	LinkCount     int        `json:"link_count"`
	BoutCount     int        `json:"bout_count"`
	EarliestEvent *time.Time `json:"earliest_event,omitempty"`
	LatestEvent   *time.Time `json:"latest_event,omitempty"`
}

// GraphResult is the full relationship graph payload.
type GraphResult struct {
	Nodes    []GraphNode   `json:"nodes"`
	Links    []GraphLink   `json:"links"`
	Metadata GraphMetadata `json:"metadata"`
}

// Graph filter limits.
const (
	DefaultGraphLimit = 150
	MaxGraphLimit     = 1000
)

// GraphGroupings lists the supported node grouping keys.
var GraphGroupings = map[string]bool{
	"":         true,
	"division": true,
	"country":  true,
}

// GraphFilters restricts which fighters and bouts enter the graph.
type GraphFilters struct {
	Division string     `json:"division,omitempty"`
	From     *time.Time `json:"from,omitempty"`
	To       *time.Time `json:"to,omitempty"`
	Limit    int        `json:"limit,omitempty"`
	GroupBy  string     `json:"group_by,omitempty"`
}

// Validate checks filter bounds and the grouping enum. Invalid caller
// input is rejected here, at the boundary, never deeper in aggregation.
func (f *GraphFilters) Validate() error {
	if f.Limit < 0 {
		return ErrInvalidLimit
	}

	if f.Limit == 0 {
		f.Limit = DefaultGraphLimit
	}

	if f.Limit > MaxGraphLimit {
		f.Limit = MaxGraphLimit
	}

	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return ErrInvalidDateRange
	}

	if !GraphGroupings[f.GroupBy] {
		return ErrInvalidGroupBy
	}

	return nil
}
