package models

// Outcome is a 1X2 result.
type Outcome string

const (
	OutcomeHomeWin Outcome = "home_win"
	OutcomeDraw    Outcome = "draw"
	OutcomeAwayWin Outcome = "away_win"
)

// Outcomes lists the 1X2 results in the order used to break probability ties.
var Outcomes = []Outcome{OutcomeHomeWin, OutcomeDraw, OutcomeAwayWin}

// Probabilities is a distribution over the three 1X2 results.
type Probabilities struct {
	HomeWin float64 `json:"home_win"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"away_win"`
}

// Of returns the probability for a single outcome.
func (p Probabilities) Of(o Outcome) float64 {
	switch o {
	case OutcomeHomeWin:
		return p.HomeWin
	case OutcomeDraw:
		return p.Draw
	case OutcomeAwayWin:
		return p.AwayWin
	}
	return 0
}

// Sum returns HomeWin + Draw + AwayWin.
func (p Probabilities) Sum() float64 {
	return p.HomeWin + p.Draw + p.AwayWin
}

// Prediction is a heuristic outcome forecast attached to a match.
type Prediction struct {
	MostLikelyOutcome Outcome       `json:"most_likely_outcome"`
	OutcomeText       string        `json:"outcome_text"`
	Confidence        float64       `json:"confidence"`
	Probabilities     Probabilities `json:"probabilities"`
}
