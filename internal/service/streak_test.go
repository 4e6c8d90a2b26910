package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fightgraph/fightgraph/internal/models"
)

func streakRows(fighterID string, results ...string) []models.BoutRecord {
	rows := make([]models.BoutRecord, len(results))
	for i, res := range results {
		d := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		rows[i] = models.BoutRecord{
			SubjectID:   fighterID,
			PrincipalID: fighterID,
			EventName:   "Event",
			EventDate:   &d,
			Result:      res,
			Side:        models.SidePrimary,
		}
	}

	return rows
}

func TestStreakService_SingleBatchFetch(t *testing.T) {
	t.Parallel()

	var gotWindow int
	var gotIDs []string

	bouts := &mockBoutFetcher{
		fetchForFighters: func(_ context.Context, ids []string, window int) ([]models.BoutRecord, error) {
			gotIDs = ids
			gotWindow = window

			return append(streakRows("f1", "W", "W", "L"), streakRows("f2", "L", "L")...), nil
		},
	}

	svc := NewStreakService(bouts, nil, models.Capabilities{}, testLogger())

	results, err := svc.Streaks(context.Background(), models.StreakRequest{FighterIDs: []string{"f1", "f2"}})
	if err != nil {
		t.Fatalf("Streaks: %v", err)
	}

	if bouts.callCount() != 1 {
		t.Fatalf("fetch called %d times, want exactly 1 for the whole batch", bouts.callCount())
	}

	if gotWindow != models.DefaultStreakWindow {
		t.Errorf("window = %d, want default %d", gotWindow, models.DefaultStreakWindow)
	}

	if len(gotIDs) != 2 {
		t.Errorf("fetched ids = %v, want both fighters", gotIDs)
	}

	if r := results["f1"]; r.Type != models.StreakWin || r.Count != 2 {
		t.Errorf("f1 = {%s, %d}, want {win, 2}", r.Type, r.Count)
	}

	if r := results["f2"]; r.Type != models.StreakLoss || r.Count != 2 {
		t.Errorf("f2 = {%s, %d}, want {loss, 2}", r.Type, r.Count)
	}
}

func TestStreakService_WindowResolution(t *testing.T) {
	t.Parallel()

	one, zero, ten := 1, 0, 10

	tests := []struct {
		name   string
		window *int
		want   int
	}{
		{name: "omitted takes default", window: nil, want: models.DefaultStreakWindow},
		{name: "zero means unbounded", window: &zero, want: 0},
		{name: "bounded floors at two", window: &one, want: models.MinStreakWindow},
		{name: "explicit bound kept", window: &ten, want: 10},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotWindow int

			bouts := &mockBoutFetcher{
				fetchForFighters: func(_ context.Context, _ []string, window int) ([]models.BoutRecord, error) {
					gotWindow = window

					return nil, nil
				},
			}

			svc := NewStreakService(bouts, nil, models.Capabilities{}, testLogger())

			req := models.StreakRequest{FighterIDs: []string{"f1"}, Window: tc.window}
			if _, err := svc.Streaks(context.Background(), req); err != nil {
				t.Fatalf("Streaks: %v", err)
			}

			if gotWindow != tc.want {
				t.Errorf("window = %d, want %d", gotWindow, tc.want)
			}
		})
	}
}

func TestStreakService_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := NewStreakService(&mockBoutFetcher{}, nil, models.Capabilities{}, testLogger())

	if _, err := svc.Streaks(context.Background(), models.StreakRequest{}); !errors.Is(err, models.ErrMissingFighterIDs) {
		t.Errorf("err = %v, want ErrMissingFighterIDs", err)
	}

	neg := -1
	req := models.StreakRequest{FighterIDs: []string{"f1"}, Window: &neg}

	if _, err := svc.Streaks(context.Background(), req); !errors.Is(err, models.ErrInvalidWindow) {
		t.Errorf("err = %v, want ErrInvalidWindow", err)
	}
}

func TestStreakService_CacheWriteGatedOnCapability(t *testing.T) {
	t.Parallel()

	bouts := &mockBoutFetcher{
		fetchForFighters: func(_ context.Context, _ []string, _ int) ([]models.BoutRecord, error) {
			return streakRows("f1", "W", "W"), nil
		},
	}

	// Without the capability the cache is never written.
	cache := &mockCacheWriter{}
	svc := NewStreakService(bouts, cache, models.Capabilities{StreakCache: false}, testLogger())

	if _, err := svc.Streaks(context.Background(), models.StreakRequest{FighterIDs: []string{"f1"}}); err != nil {
		t.Fatalf("Streaks: %v", err)
	}

	if cache.writeCount() != 0 {
		t.Errorf("cache written %d times without capability, want 0", cache.writeCount())
	}

	// With it, the write happens and a failure stays best-effort.
	failing := &mockCacheWriter{err: errors.New("no such column")}
	svc = NewStreakService(bouts, failing, models.Capabilities{StreakCache: true}, testLogger())

	results, err := svc.Streaks(context.Background(), models.StreakRequest{FighterIDs: []string{"f1"}})
	if err != nil {
		t.Fatalf("Streaks with failing cache: %v", err)
	}

	if failing.writeCount() != 1 {
		t.Errorf("cache written %d times with capability, want 1", failing.writeCount())
	}

	if r := results["f1"]; r.Type != models.StreakWin || r.Count != 2 {
		t.Errorf("result = {%s, %d}, want {win, 2} despite cache failure", r.Type, r.Count)
	}
}
