package models

// StreakType classifies a fighter's current run of results.
type StreakType string

// Streak types. StreakNone covers fighters with no bouts, fighters whose
// recent bouts are all no-contests or upcoming, and single results (a run
// of one is not a streak).
const (
	StreakWin  StreakType = "win"
	StreakLoss StreakType = "loss"
	StreakDraw StreakType = "draw"
	StreakNone StreakType = "none"
)

// DefaultStreakWindow is the number of recent bouts considered when the
// caller does not specify a window.
const DefaultStreakWindow = 6

// MinStreakWindow is the smallest effective window. A bounded window below
// this is raised to it, since a streak needs at least two results.
const MinStreakWindow = 2

// StreakResult is the computed streak for one fighter.
type StreakResult struct {
	FighterID string     `json:"fighter_id"`
	Type      StreakType `json:"streak_type"`
	Count     int        `json:"streak_count"`
}

// NoStreak returns the zero-value streak for a fighter.
func NoStreak(fighterID string) StreakResult {
	return StreakResult{FighterID: fighterID, Type: StreakNone, Count: 0}
}

// StreakRequest is the payload for batch streak computation.
type StreakRequest struct {
	FighterIDs []string `json:"fighter_ids"`
	// Window bounds how many recent bouts are considered per fighter.
	// Omitted means DefaultStreakWindow; an explicit 0 means unbounded;
	// any other bounded value is floored at MinStreakWindow.
	Window *int `json:"window,omitempty"`
}

// MaxStreakBatch caps how many fighters one streak request may cover.
const MaxStreakBatch = 5000

// Validate checks the batch bounds and window sign.
func (r *StreakRequest) Validate() error {
	if len(r.FighterIDs) == 0 {
		return ErrMissingFighterIDs
	}

	if len(r.FighterIDs) > MaxStreakBatch {
		return ErrBatchTooLarge
	}

	if r.Window != nil && *r.Window < 0 {
		return ErrInvalidWindow
	}

	return nil
}

// EffectiveWindow resolves the request window: omitted values take the
// default, an explicit 0 stays unbounded, and bounded values are floored
// at MinStreakWindow.
func (r *StreakRequest) EffectiveWindow() int {
	if r.Window == nil {
		return DefaultStreakWindow
	}

	if *r.Window == 0 {
		return 0
	}

	if *r.Window < MinStreakWindow {
		return MinStreakWindow
	}

	return *r.Window
}

// Capabilities reports optional schema features detected once at startup
// and passed explicitly to services. No global state.
type Capabilities struct {
	// StreakCache is true when the fighters table carries the optional
	// streak_type/streak_count columns. The cache is a write-through
	// optimization only; streak computation never reads it.
	StreakCache bool
}
