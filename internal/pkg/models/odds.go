package models

// FullTimeOdds holds decimal 1X2 odds for the regular 90 minutes.
// A nil field means the bookmaker page did not list that selection.
type FullTimeOdds struct {
	Home *float64 `json:"home"`
	Draw *float64 `json:"draw"`
	Away *float64 `json:"away"`
}

// Complete reports whether all three outcomes carry a usable price.
func (o *FullTimeOdds) Complete() bool {
	if o == nil {
		return false
	}
	return positive(o.Home) && positive(o.Draw) && positive(o.Away)
}

// DoubleChance covers two of the three 1X2 outcomes per selection.
type DoubleChance struct {
	HomeOrDraw *float64 `json:"1X"`
	DrawOrAway *float64 `json:"X2"`
	HomeOrAway *float64 `json:"12"`
}

// OverUnder holds total goals odds.
type OverUnder struct {
	Over  *float64 `json:"over"`
	Under *float64 `json:"under"`
}

// BTTS holds "both teams to score" odds.
type BTTS struct {
	Yes *float64 `json:"yes"`
	No  *float64 `json:"no"`
}

// Odd returns a pointer to v, for building odds literals.
func Odd(v float64) *float64 {
	return &v
}

func positive(v *float64) bool {
	return v != nil && *v > 0
}
