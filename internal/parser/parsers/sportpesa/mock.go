package sportpesa

import "github.com/Vodeneev/easybets/internal/pkg/models"

// MockMatches returns the fixed dataset served when scraping fails.
// Every call returns a fresh slice.
func MockMatches() []models.Match {
	odd := models.Odd
	return []models.Match{
		{
			ID:           0,
			Name:         "Manchester United vs Liverpool",
			Teams:        [2]string{"Manchester United", "Liverpool"},
			Time:         "22/06/25 - 20:00",
			FullTimeOdds: models.FullTimeOdds{Home: odd(2.45), Draw: odd(3.40), Away: odd(2.85)},
			DoubleChance: models.DoubleChance{HomeOrDraw: odd(1.45), DrawOrAway: odd(1.50), HomeOrAway: odd(1.30)},
			OverUnder:    models.OverUnder{Over: odd(1.85), Under: odd(1.95)},
			BTTS:         models.BTTS{Yes: odd(1.70), No: odd(2.10)},
		},
		{
			ID:           1,
			Name:         "Arsenal vs Chelsea",
			Teams:        [2]string{"Arsenal", "Chelsea"},
			Time:         "23/06/25 - 15:30",
			FullTimeOdds: models.FullTimeOdds{Home: odd(2.20), Draw: odd(3.20), Away: odd(3.40)},
			DoubleChance: models.DoubleChance{HomeOrDraw: odd(1.35), DrawOrAway: odd(1.65), HomeOrAway: odd(1.40)},
			OverUnder:    models.OverUnder{Over: odd(1.90), Under: odd(1.90)},
			BTTS:         models.BTTS{Yes: odd(1.75), No: odd(2.05)},
		},
		{
			ID:           2,
			Name:         "Barcelona vs Real Madrid",
			Teams:        [2]string{"Barcelona", "Real Madrid"},
			Time:         "24/06/25 - 21:00",
			FullTimeOdds: models.FullTimeOdds{Home: odd(2.30), Draw: odd(3.50), Away: odd(2.90)},
			DoubleChance: models.DoubleChance{HomeOrDraw: odd(1.40), DrawOrAway: odd(1.55), HomeOrAway: odd(1.30)},
			OverUnder:    models.OverUnder{Over: odd(1.80), Under: odd(2.00)},
			BTTS:         models.BTTS{Yes: odd(1.65), No: odd(2.20)},
		},
	}
}
