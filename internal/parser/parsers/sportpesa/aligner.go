package sportpesa

import (
	"math"
	"strconv"
	"strings"

	"github.com/Vodeneev/easybets/internal/pkg/models"
)

// Aligner joins independently extracted field lists into matches.
type Aligner interface {
	Align(fields ExtractedFields) []models.Match
}

// PositionalAligner correlates lists purely by index: the i-th entry of every
// list belongs to match i. Exactly min(teams, 1X2 groups, kickoff times)
// matches are produced; shorter market lists leave their fields nil.
//
// Grouping 1X2 tokens in threes assumes every match lists all three prices.
// A suspended selection shifts every later group; this is not detected.
type PositionalAligner struct{}

func (PositionalAligner) Align(f ExtractedFields) []models.Match {
	n := min(len(f.Teams), len(f.FullTime), len(f.Times))
	matches := make([]models.Match, 0, n)

	for i := 0; i < n; i++ {
		home, away := f.Teams[i][0], f.Teams[i][1]
		ft := f.FullTime[i]

		matches = append(matches, models.Match{
			ID:    i,
			Name:  models.MatchLabel(home, away),
			Teams: f.Teams[i],
			Time:  f.Times[i],
			FullTimeOdds: models.FullTimeOdds{
				Home: oddAt(ft, 0),
				Draw: oddAt(ft, 1),
				Away: oddAt(ft, 2),
			},
			DoubleChance: models.DoubleChance{
				HomeOrDraw: oddAt(f.Markets[MarketHomeOrDraw], i),
				DrawOrAway: oddAt(f.Markets[MarketDrawOrAway], i),
				HomeOrAway: oddAt(f.Markets[MarketHomeOrAway], i),
			},
			OverUnder: models.OverUnder{
				Over:  oddAt(f.Markets[MarketOver], i),
				Under: oddAt(f.Markets[MarketUnder], i),
			},
			BTTS: models.BTTS{
				Yes: oddAt(f.Markets[MarketBTTSYes], i),
				No:  oddAt(f.Markets[MarketBTTSNo], i),
			},
		})
	}
	return matches
}

// oddAt parses list[i] as decimal odds; a missing index or unparsable token is nil.
func oddAt(list []string, i int) *float64 {
	if i < 0 || i >= len(list) {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(list[i]), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
