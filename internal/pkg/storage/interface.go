package storage

import (
	"context"

	"github.com/Vodeneev/easybets/internal/pkg/models"
)

// MatchCache stores scraped match lists between requests.
// Only successfully scraped lists are cached, never fallback data.
type MatchCache interface {
	GetMatches(ctx context.Context, source string) ([]models.Match, bool, error)
	SetMatches(ctx context.Context, source string, matches []models.Match) error
	Close() error
}

// NopCache never stores anything, so every request scrapes afresh.
type NopCache struct{}

func (NopCache) GetMatches(context.Context, string) ([]models.Match, bool, error) {
	return nil, false, nil
}

func (NopCache) SetMatches(context.Context, string, []models.Match) error {
	return nil
}

func (NopCache) Close() error {
	return nil
}
