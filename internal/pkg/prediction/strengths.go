package prediction

import (
	"fmt"
	"maps"

	"github.com/Vodeneev/easybets/internal/pkg/models"
)

// UnknownTeam is the sentinel entry used for teams missing from the table.
const UnknownTeam = "UNKNOWN"

const defaultUnknownStrength = 0.5

// defaultStrengths are rough club ratings in [0,1].
var defaultStrengths = map[string]float64{
	// Premier League
	"Manchester United": 0.85,
	"Manchester City":   0.9,
	"Chelsea":           0.85,
	"Arsenal":           0.82,
	"Liverpool":         0.87,
	"Tottenham":         0.8,
	"Leicester":         0.75,
	"Wolves":            0.7,
	"Everton":           0.72,
	"West Ham":          0.71,

	// La Liga
	"Barcelona":       0.89,
	"Real Madrid":     0.9,
	"Atletico Madrid": 0.86,
	"Sevilla":         0.78,
	"Valencia":        0.75,

	UnknownTeam: defaultUnknownStrength,
}

// DefaultStrengths returns a copy of the built-in ratings, UNKNOWN included.
func DefaultStrengths() map[string]float64 {
	return maps.Clone(defaultStrengths)
}

// StrengthTable is an immutable team -> strength mapping.
// Lookups are keyed by models.TeamKey so casing and club affixes do not matter.
type StrengthTable struct {
	byKey   map[string]float64
	unknown float64
}

// NewStrengthTable builds a table from base with overrides merged on top.
// Every strength must be within [0,1].
func NewStrengthTable(base map[string]float64, overrides map[string]float64) (*StrengthTable, error) {
	t := &StrengthTable{
		byKey:   make(map[string]float64, len(base)+len(overrides)),
		unknown: defaultUnknownStrength,
	}
	for _, src := range []map[string]float64{base, overrides} {
		for name, s := range src {
			if s < 0 || s > 1 {
				return nil, fmt.Errorf("strength for %q out of range [0,1]: %v", name, s)
			}
			if name == UnknownTeam {
				t.unknown = s
				continue
			}
			t.byKey[models.TeamKey(name)] = s
		}
	}
	return t, nil
}

// DefaultStrengthTable returns a table built from the built-in ratings.
func DefaultStrengthTable() *StrengthTable {
	t, err := NewStrengthTable(defaultStrengths, nil)
	if err != nil {
		panic(err)
	}
	return t
}

// Strength returns the rating for team, or the UNKNOWN rating if absent.
func (t *StrengthTable) Strength(team string) float64 {
	if s, ok := t.byKey[models.TeamKey(team)]; ok {
		return s
	}
	return t.unknown
}

// Len returns the number of named teams, not counting the UNKNOWN sentinel.
func (t *StrengthTable) Len() int {
	return len(t.byKey)
}
