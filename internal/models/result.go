package models

// ResultCategory is the closed category set a free-form result string
// normalizes into.
type ResultCategory string

// Result categories.
const (
	CategoryWin      ResultCategory = "win"
	CategoryLoss     ResultCategory = "loss"
	CategoryDraw     ResultCategory = "draw"
	CategoryNC       ResultCategory = "nc"
	CategoryUpcoming ResultCategory = "upcoming"
	CategoryOther    ResultCategory = "other"
)

// CategoryCounts is a per-fighter histogram of normalized results.
type CategoryCounts struct {
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	Draws      int `json:"draws"`
	NoContests int `json:"no_contests"`
	Upcoming   int `json:"upcoming"`
	Other      int `json:"other"`
}

// Add increments the bucket for the given category.
func (c *CategoryCounts) Add(cat ResultCategory) {
	switch cat {
	case CategoryWin:
		c.Wins++
	case CategoryLoss:
		c.Losses++
	case CategoryDraw:
		c.Draws++
	case CategoryNC:
		c.NoContests++
	case CategoryUpcoming:
		c.Upcoming++
	case CategoryOther:
		c.Other++
	}
}

// Total returns the sum of all buckets.
func (c CategoryCounts) Total() int {
	return c.Wins + c.Losses + c.Draws + c.NoContests + c.Upcoming + c.Other
}
