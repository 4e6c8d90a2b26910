package record

import (
	"sort"

	"github.com/fightgraph/fightgraph/internal/models"
)

// Streaks computes the current streak for every fighter in the batch.
// rows must be tagged with SubjectID and Side; the caller fetches them
// for the whole batch in one set-oriented query, already bounded to the
// most recent window entries per fighter where the store supports it.
// window <= 0 means unbounded. Fighters with no rows get {none, 0}.
func Streaks(fighterIDs []string, rows []models.BoutRecord, window int) map[string]models.StreakResult {
	bySubject := make(map[string][]models.BoutRecord, len(fighterIDs))
	for _, r := range rows {
		bySubject[r.SubjectID] = append(bySubject[r.SubjectID], r)
	}

	out := make(map[string]models.StreakResult, len(fighterIDs))
	for _, id := range fighterIDs {
		out[id] = computeStreak(id, bySubject[id], window)
	}

	return out
}

// computeStreak derives one fighter's streak from its recent bouts.
func computeStreak(fighterID string, bouts []models.BoutRecord, window int) models.StreakResult {
	if len(bouts) == 0 {
		return models.NoStreak(fighterID)
	}

	// Most recent first, undated bouts last. Stable for determinism.
	sort.SliceStable(bouts, func(i, j int) bool {
		di, dj := bouts[i].EventDate, bouts[j].EventDate

		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.After(*dj)
		}
	})

	if window > 0 && len(bouts) > window {
		bouts = bouts[:window]
	}

	var (
		streakType  models.StreakType
		streakCount int
	)

	for _, b := range bouts {
		cat := subjectCategory(b)

		// No-contest, upcoming, and unrecognized results neither break
		// nor extend a streak.
		if cat != models.CategoryWin && cat != models.CategoryLoss && cat != models.CategoryDraw {
			continue
		}

		if streakCount == 0 {
			streakType = models.StreakType(cat)
			streakCount = 1

			continue
		}

		if models.StreakType(cat) != streakType {
			break
		}

		streakCount++
	}

	if streakCount < models.MinStreakWindow {
		return models.NoStreak(fighterID)
	}

	return models.StreakResult{FighterID: fighterID, Type: streakType, Count: streakCount}
}

// subjectCategory normalizes a row's result from the subject fighter's
// perspective, inverting opponent-side rows.
func subjectCategory(b models.BoutRecord) models.ResultCategory {
	if b.Side == models.SideOpponent {
		return Categorize(Invert(b.Result))
	}

	return Categorize(b.Result)
}
