package record

import (
	"strings"
	"time"
)

// FightKey is the canonical dedup identity of a bout. Storage row IDs
// differ between the principal-side and opponent-side rows of the same
// real-world bout, so identity is derived from event plus opponent
// instead.
type FightKey struct {
	Event    string
	Date     string
	Opponent string
}

// keyDateLayout formats event dates for key purposes; undated bouts get
// an empty date slot and still participate in dedup.
const keyDateLayout = "2006-01-02"

// BuildKey derives the canonical key for a bout against the given
// opponent. The opponent discriminator is the roster ID when resolved;
// rows scraped before identity resolution only carry a name, so the
// lower-cased trimmed name stands in and dedups against any later
// entry for the same bout.
func BuildKey(eventName string, eventDate *time.Time, opponentID *string, opponentName string) FightKey {
	k := FightKey{Event: eventName}

	if eventDate != nil {
		k.Date = eventDate.Format(keyDateLayout)
	}

	if opponentID != nil && *opponentID != "" {
		k.Opponent = *opponentID
	} else {
		k.Opponent = strings.ToLower(strings.TrimSpace(opponentName))
	}

	return k
}
