package sportpesa

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Vodeneev/easybets/internal/pkg/interfaces"
	"github.com/Vodeneev/easybets/internal/pkg/models"
	"github.com/Vodeneev/easybets/internal/pkg/performance"
)

const bookmakerName = "SportPesa"

// Parser scrapes the SportPesa football listing: fetch, extract, and fall
// back to mock data when either step fails.
type Parser struct {
	fetcher   interfaces.PageFetcher
	extractor *Extractor
	tracker   *performance.Tracker
}

func NewParser(fetcher interfaces.PageFetcher, extractor *Extractor, tracker *performance.Tracker) *Parser {
	if extractor == nil {
		extractor = NewExtractor(nil)
	}
	return &Parser{
		fetcher:   fetcher,
		extractor: extractor,
		tracker:   tracker,
	}
}

func (p *Parser) GetName() string {
	return bookmakerName
}

// Scrape returns scraped matches, or the mock dataset when the page could not
// be fetched or yielded no matches. Any other error is returned as-is.
func (p *Parser) Scrape(ctx context.Context) (models.ScrapeResult, error) {
	start := time.Now()

	matches, err := p.scrape(ctx)
	if err != nil {
		if !errors.Is(err, ErrFetch) && !errors.Is(err, ErrExtraction) {
			return models.ScrapeResult{}, err
		}
		slog.Warn("Scraping failed, serving mock data", "parser", bookmakerName, "error", err)
		mock := MockMatches()
		p.tracker.RecordScrape(string(models.SourceMock), len(mock), false)
		return models.ScrapeResult{Matches: mock, Source: models.SourceMock}, nil
	}

	slog.Info("Scraped matches", "parser", bookmakerName, "strategy", p.fetcher.Strategy(),
		"count", len(matches), "duration", time.Since(start))
	p.tracker.RecordScrape(string(models.SourceScraped), len(matches), true)
	return models.ScrapeResult{Matches: matches, Source: models.SourceScraped}, nil
}

func (p *Parser) scrape(ctx context.Context) ([]models.Match, error) {
	html, err := p.fetcher.FetchPage(ctx)
	if err != nil {
		return nil, err
	}
	return p.extractor.Extract(html)
}
