// Package record implements the pure core of the fight graph: result
// normalization, canonical fight keys, dual-perspective history
// reconciliation, windowed streak computation, and relationship-graph
// aggregation. Everything here is deterministic and free of I/O; the
// store layer fetches rows, this package transforms them.
package record

import (
	"strings"

	"github.com/fightgraph/fightgraph/internal/models"
)

// UnknownResult is returned by Invert for empty input and used as the
// display name for opponents that cannot be resolved.
const UnknownResult = "Unknown"

// Categorize maps a free-form result string to its category. It is total:
// any unrecognized string, including empty, falls into CategoryOther.
func Categorize(result string) models.ResultCategory {
	switch r := strings.ToLower(strings.TrimSpace(result)); {
	case r == "w" || r == "win":
		return models.CategoryWin
	case r == "l" || r == "loss":
		return models.CategoryLoss
	case strings.HasPrefix(r, "draw"):
		return models.CategoryDraw
	case r == "nc" || r == "no contest":
		return models.CategoryNC
	case r == "next":
		return models.CategoryUpcoming
	default:
		return models.CategoryOther
	}
}

// Invert rewrites a result string from the opponent's perspective. Wins
// and losses swap; draws, no-contests, and upcoming bouts are symmetric
// and pass through unchanged. Unrecognized strings also pass through
// unchanged: malformed historical data must never abort reconciliation.
// Empty input returns UnknownResult.
func Invert(result string) string {
	if strings.TrimSpace(result) == "" {
		return UnknownResult
	}

	switch strings.ToLower(strings.TrimSpace(result)) {
	case "w", "win":
		return "loss"
	case "l", "loss":
		return "win"
	default:
		return result
	}
}
