package record

import (
	"sort"

	"github.com/fightgraph/fightgraph/internal/models"
)

// Reconcile merges both perspectives of a fighter's bout rows into one
// canonical, deduplicated history.
//
// Rows with Side == SidePrimary were stored under the fighter and are
// taken as-is. Rows with Side == SideOpponent belong to another fighter's
// record; their principal becomes the opponent and the result is inverted.
// names resolves principal IDs to display names for opponent-side rows,
// batched by the caller over all IDs at once; an unresolvable ID degrades
// to "Unknown" rather than dropping the bout.
//
// Primary rows are processed before opponent rows, so on a key collision
// the primary perspective wins unless it only carries the "N/A"
// placeholder and the other row has a real result.
func Reconcile(rows []models.BoutRecord, names map[string]string) []models.CanonicalFightEntry {
	entries := make([]models.CanonicalFightEntry, 0, len(rows))
	index := make(map[FightKey]int, len(rows))

	insert := func(e models.CanonicalFightEntry, key FightKey) {
		if i, ok := index[key]; ok {
			if entries[i].Result == models.ResultPlaceholder && e.Result != models.ResultPlaceholder {
				entries[i] = e
			}

			return
		}

		index[key] = len(entries)
		entries = append(entries, e)
	}

	for _, r := range rows {
		if r.Side != models.SidePrimary {
			continue
		}

		e := models.CanonicalFightEntry{
			FightID:      r.FightID,
			EventName:    r.EventName,
			EventDate:    r.EventDate,
			OpponentName: r.OpponentName,
			OpponentID:   r.OpponentID,
			Result:       r.Result,
			Method:       r.Method,
			Round:        r.Round,
			Time:         r.Time,
			Stats:        r.Stats,
		}
		insert(e, BuildKey(r.EventName, r.EventDate, r.OpponentID, r.OpponentName))
	}

	for _, r := range rows {
		if r.Side != models.SideOpponent {
			continue
		}

		oppID := r.PrincipalID
		oppName, ok := names[oppID]
		if !ok || oppName == "" {
			oppName = UnknownResult
		}

		e := models.CanonicalFightEntry{
			FightID:      r.FightID,
			EventName:    r.EventName,
			EventDate:    r.EventDate,
			OpponentName: oppName,
			OpponentID:   &oppID,
			Result:       Invert(r.Result),
			Method:       r.Method,
			Round:        r.Round,
			Time:         r.Time,
			Stats:        r.Stats,
		}
		insert(e, BuildKey(r.EventName, r.EventDate, &oppID, oppName))
	}

	sortHistory(entries)

	return entries
}

// sortHistory orders entries upcoming-first, then by event date
// descending with undated bouts last. The sort is stable so repeated
// reconciliation of the same rows yields identical output.
func sortHistory(entries []models.CanonicalFightEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ui := Categorize(entries[i].Result) == models.CategoryUpcoming
		uj := Categorize(entries[j].Result) == models.CategoryUpcoming

		if ui != uj {
			return ui
		}

		di, dj := entries[i].EventDate, entries[j].EventDate

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
}
