package prediction

import (
	"math"
	"math/rand/v2"

	"github.com/Vodeneev/easybets/internal/pkg/models"
)

const (
	homeAdvantage = 0.10
	drawScale     = 0.5
	modelWeight   = 0.7
	oddsWeight    = 0.3

	// DefaultNoise is the half-width of the uniform perturbation applied to each outcome.
	DefaultNoise = 0.05
)

// Predictor maps a fixture to an outcome distribution using team strengths,
// optionally blended with bookmaker implied probabilities.
// Output is deliberately perturbed by bounded noise.
type Predictor struct {
	strengths *StrengthTable
	noise     float64
	rnd       func() float64
}

// Option configures a Predictor.
type Option func(*Predictor)

// WithRand sets the uniform [0,1) source used for the perturbation.
func WithRand(f func() float64) Option {
	return func(p *Predictor) { p.rnd = f }
}

// WithNoise sets the perturbation half-width. Zero disables it.
func WithNoise(noise float64) Option {
	return func(p *Predictor) { p.noise = noise }
}

// NewPredictor creates a predictor over the given strength table.
func NewPredictor(strengths *StrengthTable, opts ...Option) *Predictor {
	if strengths == nil {
		strengths = DefaultStrengthTable()
	}
	p := &Predictor{
		strengths: strengths,
		noise:     DefaultNoise,
		rnd:       rand.Float64,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Predict forecasts homeTeam vs awayTeam. odds may be nil or partially filled,
// in which case only the strength model is used.
func (p *Predictor) Predict(homeTeam, awayTeam string, odds *models.FullTimeOdds) models.Prediction {
	probs := p.baseProbabilities(homeTeam, awayTeam, odds)
	probs = p.perturb(probs)

	rounded := models.Probabilities{
		HomeWin: round(probs.HomeWin, 3),
		Draw:    round(probs.Draw, 3),
		AwayWin: round(probs.AwayWin, 3),
	}

	best := models.Outcomes[0]
	for _, o := range models.Outcomes[1:] {
		if rounded.Of(o) > rounded.Of(best) {
			best = o
		}
	}

	return models.Prediction{
		MostLikelyOutcome: best,
		OutcomeText:       outcomeText(best, homeTeam, awayTeam),
		Confidence:        round(rounded.Of(best)*100, 1),
		Probabilities:     rounded,
	}
}

// baseProbabilities is the deterministic part of the model, normalized to sum to 1.
func (p *Predictor) baseProbabilities(homeTeam, awayTeam string, odds *models.FullTimeOdds) models.Probabilities {
	home := p.strengths.Strength(homeTeam) + homeAdvantage
	away := p.strengths.Strength(awayTeam)

	if m := math.Max(home, away); m > 1 {
		home /= m
		away /= m
	}

	// evenly matched sides draw more often
	drawFactor := 1 - math.Abs(home-away)

	probs := models.Probabilities{
		HomeWin: home,
		Draw:    drawFactor * drawScale,
		AwayWin: away,
	}

	if odds.Complete() {
		implied := impliedProbabilities(*odds.Home, *odds.Draw, *odds.Away)
		probs = models.Probabilities{
			HomeWin: modelWeight*probs.HomeWin + oddsWeight*implied.HomeWin,
			Draw:    modelWeight*probs.Draw + oddsWeight*implied.Draw,
			AwayWin: modelWeight*probs.AwayWin + oddsWeight*implied.AwayWin,
		}
	}

	return normalize(probs)
}

func (p *Predictor) perturb(probs models.Probabilities) models.Probabilities {
	if p.noise == 0 {
		return probs
	}
	jitter := func(v float64) float64 {
		v += (p.rnd()*2 - 1) * p.noise
		return math.Max(0, math.Min(1, v))
	}
	return normalize(models.Probabilities{
		HomeWin: jitter(probs.HomeWin),
		Draw:    jitter(probs.Draw),
		AwayWin: jitter(probs.AwayWin),
	})
}

// impliedProbabilities converts decimal 1X2 odds into a margin-free distribution.
func impliedProbabilities(home, draw, away float64) models.Probabilities {
	return normalize(models.Probabilities{
		HomeWin: 1 / home,
		Draw:    1 / draw,
		AwayWin: 1 / away,
	})
}

func normalize(p models.Probabilities) models.Probabilities {
	total := p.Sum()
	if total <= 0 {
		return models.Probabilities{HomeWin: 1.0 / 3, Draw: 1.0 / 3, AwayWin: 1.0 / 3}
	}
	return models.Probabilities{
		HomeWin: p.HomeWin / total,
		Draw:    p.Draw / total,
		AwayWin: p.AwayWin / total,
	}
}

func outcomeText(o models.Outcome, homeTeam, awayTeam string) string {
	switch o {
	case models.OutcomeHomeWin:
		return homeTeam + " Win"
	case models.OutcomeAwayWin:
		return awayTeam + " Win"
	default:
		return "Draw"
	}
}

func round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
