package record

import (
	"testing"

	"github.com/fightgraph/fightgraph/internal/models"
)

func graphFighters(ids ...string) []models.Fighter {
	fs := make([]models.Fighter, len(ids))
	for i, id := range ids {
		fs[i] = models.Fighter{ID: id, Name: "Fighter " + id}
	}

	return fs
}

func pairBout(fightID, principal, opponent, event, date, result string) models.BoutRecord {
	b := models.BoutRecord{
		FightID:     fightID,
		PrincipalID: principal,
		OpponentID:  strPtr(opponent),
		EventName:   event,
		Result:      result,
	}
	if date != "" {
		b.EventDate = dateOf(date)
	}

	return b
}

// Rows stored from either side of the same rivalry collapse into one
// undirected link.
func TestAggregateGraph_PairCanonicalization(t *testing.T) {
	t.Parallel()

	fighters := graphFighters("a", "b")
	bouts := []models.BoutRecord{
		pairBout("r1", "a", "b", "UFC 100", "2020-01-01", "W"),
		pairBout("r2", "b", "a", "UFC 100", "2020-01-01", "L"),
	}

	res := AggregateGraph(fighters, bouts, "")

	if len(res.Links) != 1 {
		t.Fatalf("got %d links, want 1", len(res.Links))
	}

	l := res.Links[0]
	if l.FighterA != "a" || l.FighterB != "b" {
		t.Errorf("pair = (%s, %s), want (a, b)", l.FighterA, l.FighterB)
	}

	if l.FightCount != 2 {
		t.Errorf("fight_count = %d, want 2", l.FightCount)
	}

	// Each row increments its own principal's bucket, uninverted.
	if l.ResultBreakdown["a"].Wins != 1 || l.ResultBreakdown["b"].Losses != 1 {
		t.Errorf("breakdown = %+v, want a:1 win, b:1 loss", l.ResultBreakdown)
	}
}

func TestAggregateGraph_DropsSelfPairsAndCrossSubset(t *testing.T) {
	t.Parallel()

	fighters := graphFighters("a", "b")
	bouts := []models.BoutRecord{
		pairBout("self", "a", "a", "Bad Data Invitational", "2020-01-01", "W"),
		pairBout("cross", "a", "outsider", "UFC 101", "2020-02-02", "W"),
		pairBout("nilopp", "a", "", "UFC 102", "2020-03-03", "W"),
		pairBout("ok", "a", "b", "UFC 103", "2020-04-04", "W"),
	}
	bouts[2].OpponentID = nil

	res := AggregateGraph(fighters, bouts, "")

	if len(res.Links) != 1 || res.Links[0].FightCount != 1 {
		t.Fatalf("links = %+v, want single link with one bout", res.Links)
	}

	if res.Metadata.BoutCount != 1 {
		t.Errorf("bout count = %d, want 1", res.Metadata.BoutCount)
	}
}

func TestAggregateGraph_FirstLastEventTracking(t *testing.T) {
	t.Parallel()

	fighters := graphFighters("a", "b")
	bouts := []models.BoutRecord{
		pairBout("mid", "a", "b", "Mid Card", "2021-06-01", "W"),
		pairBout("first", "b", "a", "Debut Clash", "2019-03-01", "W"),
		pairBout("last", "a", "b", "Trilogy Final", "2023-09-09", "L"),
		pairBout("undated", "a", "b", "Lost Card", "", "W"),
	}

	res := AggregateGraph(fighters, bouts, "")

	l := res.Links[0]
	if l.FirstEventName != "Debut Clash" {
		t.Errorf("first event = %q, want Debut Clash", l.FirstEventName)
	}

	if l.LastEventName != "Trilogy Final" {
		t.Errorf("last event = %q, want Trilogy Final (undated must not override)", l.LastEventName)
	}

	if res.Metadata.EarliestEvent == nil || res.Metadata.EarliestEvent.Year() != 2019 {
		t.Errorf("earliest = %v, want 2019", res.Metadata.EarliestEvent)
	}

	if res.Metadata.LatestEvent == nil || res.Metadata.LatestEvent.Year() != 2023 {
		t.Errorf("latest = %v, want 2023", res.Metadata.LatestEvent)
	}
}

func TestAggregateGraph_UndatedOnlySetsLastWhenUnset(t *testing.T) {
	t.Parallel()

	fighters := graphFighters("a", "b")
	bouts := []models.BoutRecord{
		pairBout("undated", "a", "b", "Lost Card", "", "W"),
	}

	res := AggregateGraph(fighters, bouts, "")

	l := res.Links[0]
	if l.LastEventName != "Lost Card" || l.LastEventDate != nil {
		t.Errorf("last = %q/%v, want Lost Card with nil date", l.LastEventName, l.LastEventDate)
	}

	if l.FirstEventName != "" {
		t.Errorf("first = %q, want unset for undated-only link", l.FirstEventName)
	}
}

func TestAggregateGraph_LinksSortedByFightCount(t *testing.T) {
	t.Parallel()

	fighters := graphFighters("a", "b", "c")
	bouts := []models.BoutRecord{
		pairBout("r1", "a", "c", "E1", "2020-01-01", "W"),
		pairBout("r2", "a", "b", "E2", "2020-02-01", "W"),
		pairBout("r3", "b", "a", "E2", "2020-02-01", "L"),
		pairBout("r4", "a", "b", "E3", "2021-02-01", "W"),
	}

	res := AggregateGraph(fighters, bouts, "")

	if len(res.Links) != 2 {
		t.Fatalf("got %d links, want 2", len(res.Links))
	}

	if res.Links[0].FightCount < res.Links[1].FightCount {
		t.Errorf("links not sorted by fight_count desc: %d then %d",
			res.Links[0].FightCount, res.Links[1].FightCount)
	}

	if res.Links[0].FighterA != "a" || res.Links[0].FighterB != "b" {
		t.Errorf("busiest link = (%s, %s), want (a, b)", res.Links[0].FighterA, res.Links[0].FighterB)
	}
}

func TestAggregateGraph_NodeTotalsAndGrouping(t *testing.T) {
	t.Parallel()

	fighters := []models.Fighter{
		{ID: "a", Name: "A", Division: "bantamweight", Country: "US"},
		{ID: "b", Name: "B", Division: "bantamweight", Country: "BR"},
		{ID: "c", Name: "C", Division: "flyweight", Country: "US"},
	}
	bouts := []models.BoutRecord{
		pairBout("r1", "a", "b", "E1", "2020-01-01", "W"),
		pairBout("r2", "b", "a", "E1", "2020-01-01", "L"),
	}

	res := AggregateGraph(fighters, bouts, "division")

	byID := make(map[string]models.GraphNode, len(res.Nodes))
	for _, n := range res.Nodes {
		byID[n.FighterID] = n
	}

	if byID["a"].TotalFights != 2 || byID["b"].TotalFights != 2 {
		t.Errorf("totals = a:%d b:%d, want 2 and 2", byID["a"].TotalFights, byID["b"].TotalFights)
	}

	if byID["c"].TotalFights != 0 {
		t.Errorf("c total = %d, want 0", byID["c"].TotalFights)
	}

	if byID["a"].Group != "bantamweight" || byID["c"].Group != "flyweight" {
		t.Errorf("grouping by division not applied: %+v", byID)
	}

	if byID["a"].LatestEventDate == nil || byID["a"].LatestEventDate.Year() != 2020 {
		t.Errorf("latest event date = %v, want 2020", byID["a"].LatestEventDate)
	}
}
