package store

import (
	"context"

	"github.com/nenelobo/NeneloBot_Go/internal/gacha"
)

// Totals is the cumulative gacha counter document for one calendar year.
// Counts only grow within a year; a new year starts from the zero value.
type Totals struct {
	Count        int `json:"count"`
	Common       int `json:"commonTotal"`
	Rare         int `json:"rareTotal"`
	StandardEpic int `json:"standardEpicTotal"`
	FeaturedEpic int `json:"featuredEpicTotal"`
}

// AddSession folds one session's tally into the totals.
func (t *Totals) AddSession(tally gacha.Tally) {
	t.Common += tally.Common
	t.Rare += tally.Rare
	t.StandardEpic += tally.StandardEpic
	t.FeaturedEpic += tally.FeaturedEpic
}

// LoadTotals returns the totals for the given year, or false when no
// document for that year exists yet.
func (s *Store) LoadTotals(ctx context.Context, year int) (Totals, bool) {
	var t Totals
	if !s.readDocument(ctx, totalsFileName(year), &t) {
		return Totals{}, false
	}
	return t, true
}

// SaveTotals replaces the totals document for the given year.
func (s *Store) SaveTotals(ctx context.Context, year int, t Totals) {
	s.writeDocument(ctx, totalsFileName(year), t)
}

// HasTotals reports whether a totals document exists for the given year.
// Used to detect a year rollover: the current year missing while the
// previous year exists means the counters just reset.
func (s *Store) HasTotals(ctx context.Context, year int) bool {
	var t Totals
	return s.readDocument(ctx, totalsFileName(year), &t)
}
