package models

// Source tells where a match list came from.
type Source string

const (
	SourceScraped Source = "scraped"
	SourceMock    Source = "mock"
	SourceCache   Source = "cache"
)

// Match is one football fixture with every market scraped from the listing page.
// ID is the zero-based position in the returned list and is only unique within one response.
type Match struct {
	ID           int          `json:"id"`
	Name         string       `json:"match"`
	Teams        [2]string    `json:"teams"`
	Time         string       `json:"time"`
	FullTimeOdds FullTimeOdds `json:"full_time_odds"`
	DoubleChance DoubleChance `json:"double_chance"`
	OverUnder    OverUnder    `json:"over_under"`
	BTTS         BTTS         `json:"btts"`
	Prediction   *Prediction  `json:"prediction,omitempty"`
}

// HomeTeam returns the first team of the pair.
func (m *Match) HomeTeam() string {
	return m.Teams[0]
}

// AwayTeam returns the second team of the pair.
func (m *Match) AwayTeam() string {
	return m.Teams[1]
}

// MatchLabel builds the "Home vs Away" label used for lookups.
func MatchLabel(home, away string) string {
	return home + " vs " + away
}

// ScrapeResult is the outcome of one scrape: the matches and where they came from.
type ScrapeResult struct {
	Matches []Match
	Source  Source
}
