package record

import (
	"sort"
	"time"

	"github.com/fightgraph/fightgraph/internal/models"
)

// AggregateGraph folds the bouts among a fighter subset into undirected
// pairwise links with per-fighter result breakdowns. fighters is the
// filtered candidate set; bouts must already be restricted so both
// endpoints are in the subset, and the aggregator re-checks that rather
// than partially representing cross-subset bouts. Each stored row counts
// toward fight_count, so a bout recorded from both sides contributes two.
func AggregateGraph(fighters []models.Fighter, bouts []models.BoutRecord, groupBy string) *models.GraphResult {
	subset := make(map[string]*models.GraphNode, len(fighters))
	nodes := make([]models.GraphNode, len(fighters))

	for i, f := range fighters {
		nodes[i] = models.GraphNode{
			FighterID: f.ID,
			Name:      f.Name,
			Nickname:  f.Nickname,
			Division:  f.Division,
			Country:   f.Country,
			ImageURL:  f.ImageURL,
			Group:     nodeGroup(f, groupBy),
		}
		subset[f.ID] = &nodes[i]
	}

	links := make(map[[2]string]*models.GraphLink)

	var (
		order    [][2]string
		earliest *time.Time
		latest   *time.Time
	)

	boutCount := 0

	for _, b := range bouts {
		if b.OpponentID == nil {
			continue
		}

		a, z := b.PrincipalID, *b.OpponentID
		if a == z {
			// Self-pair: malformed data, dropped.
			continue
		}

		na, ok := subset[a]
		if !ok {
			continue
		}

		nz, ok := subset[z]
		if !ok {
			continue
		}

		if a > z {
			a, z = z, a
		}

		pair := [2]string{a, z}

		l, ok := links[pair]
		if !ok {
			l = &models.GraphLink{
				FighterA: a,
				FighterB: z,
				ResultBreakdown: map[string]*models.CategoryCounts{
					a: {},
					z: {},
				},
			}
			links[pair] = l
			order = append(order, pair)
		}

		l.FightCount++
		boutCount++

		// The breakdown reflects each fighter's own recorded result on
		// its row, not an inverted or symmetric view.
		l.ResultBreakdown[b.PrincipalID].Add(Categorize(b.Result))

		touchLinkEvents(l, b)
		touchNode(na, b.EventDate)
		touchNode(nz, b.EventDate)

		if b.EventDate != nil {
			if earliest == nil || b.EventDate.Before(*earliest) {
				earliest = b.EventDate
			}

			if latest == nil || b.EventDate.After(*latest) {
				latest = b.EventDate
			}
		}
	}

	sorted := make([]models.GraphLink, 0, len(order))
	for _, pair := range order {
		sorted = append(sorted, *links[pair])
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FightCount > sorted[j].FightCount
	})

	return &models.GraphResult{
		Nodes: nodes,
		Links: sorted,
		Metadata: models.GraphMetadata{
			FighterCount:  len(nodes),
			LinkCount:     len(sorted),
			BoutCount:     boutCount,
			EarliestEvent: earliest,
			LatestEvent:   latest,
		},
	}
}

// touchLinkEvents updates a link's first/last event bookkeeping. Undated
// bouts only set the last-event fields when nothing is set yet and never
// override a dated value.
func touchLinkEvents(l *models.GraphLink, b models.BoutRecord) {
	if b.EventDate == nil {
		if l.LastEventDate == nil && l.LastEventName == "" {
			l.LastEventName = b.EventName
		}

		return
	}

	if l.FirstEventDate == nil || b.EventDate.Before(*l.FirstEventDate) {
		l.FirstEventName = b.EventName
		l.FirstEventDate = b.EventDate
	}

	if l.LastEventDate == nil || b.EventDate.After(*l.LastEventDate) {
		l.LastEventName = b.EventName
		l.LastEventDate = b.EventDate
	}
}

// touchNode bumps a node's bout involvement and latest event date.
func touchNode(n *models.GraphNode, date *time.Time) {
	n.TotalFights++

	if date != nil && (n.LatestEventDate == nil || date.After(*n.LatestEventDate)) {
		n.LatestEventDate = date
	}
}

// nodeGroup picks the grouping label for a node.
func nodeGroup(f models.Fighter, groupBy string) string {
	switch groupBy {
	case "division":
		return f.Division
	case "country":
		return f.Country
	default:
		return ""
	}
}
