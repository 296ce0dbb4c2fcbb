package odds

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Vodeneev/easybets/internal/pkg/interfaces"
	"github.com/Vodeneev/easybets/internal/pkg/models"
	"github.com/Vodeneev/easybets/internal/pkg/performance"
	"github.com/Vodeneev/easybets/internal/pkg/storage"
)

// ErrNotFound is returned when no match fits a lookup key.
var ErrNotFound = errors.New("match not found")

// Predictor forecasts a match outcome from team names and full-time odds.
type Predictor interface {
	Predict(homeTeam, awayTeam string, odds *models.FullTimeOdds) models.Prediction
}

// Service serves match lists, single-match lookups and predictions on top of a scraper.
type Service struct {
	scraper   interfaces.Scraper
	predictor Predictor
	cache     storage.MatchCache
	tracker   *performance.Tracker
}

func NewService(scraper interfaces.Scraper, predictor Predictor, cache storage.MatchCache, tracker *performance.Tracker) *Service {
	if cache == nil {
		cache = storage.NopCache{}
	}
	return &Service{
		scraper:   scraper,
		predictor: predictor,
		cache:     cache,
		tracker:   tracker,
	}
}

// List returns the current match list and where it came from.
func (s *Service) List(ctx context.Context) ([]models.Match, string, error) {
	name := s.scraper.GetName()

	cached, ok, err := s.cache.GetMatches(ctx, name)
	if err != nil {
		slog.Warn("Cache read failed", "parser", name, "error", err)
	} else if ok {
		slog.Debug("Serving matches from cache", "parser", name, "count", len(cached))
		return cached, string(models.SourceCache), nil
	}

	res, err := s.scraper.Scrape(ctx)
	if err != nil {
		return nil, "", err
	}

	if res.Source == models.SourceScraped {
		if err := s.cache.SetMatches(ctx, name, res.Matches); err != nil {
			slog.Warn("Cache write failed", "parser", name, "error", err)
		}
	}
	return res.Matches, string(res.Source), nil
}

// Get looks a match up by list index, falling back to a case-insensitive
// substring of the "Home vs Away" label when key is not an integer.
func (s *Service) Get(ctx context.Context, key string) (models.Match, string, error) {
	matches, source, err := s.List(ctx)
	if err != nil {
		return models.Match{}, "", err
	}
	m, err := Find(matches, key)
	return m, source, err
}

// Predictions returns the match list with a freshly computed prediction on every match.
func (s *Service) Predictions(ctx context.Context) ([]models.Match, string, error) {
	matches, source, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}

	out := make([]models.Match, len(matches))
	for i, m := range matches {
		p := s.predictor.Predict(m.HomeTeam(), m.AwayTeam(), &m.FullTimeOdds)
		m.Prediction = &p
		out[i] = m
		s.tracker.RecordPrediction(string(p.MostLikelyOutcome))
	}
	return out, source, nil
}

// Find resolves key against matches. An integer key is an index and is never
// retried as a label, even when out of range.
func Find(matches []models.Match, key string) (models.Match, error) {
	if id, err := strconv.Atoi(key); err == nil {
		if id >= 0 && id < len(matches) {
			return matches[id], nil
		}
		return models.Match{}, ErrNotFound
	}

	q := strings.ToLower(key)
	for _, m := range matches {
		if strings.Contains(strings.ToLower(m.Name), q) {
			return m, nil
		}
	}
	return models.Match{}, ErrNotFound
}
