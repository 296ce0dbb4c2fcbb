package interfaces

import (
	"context"

	"github.com/Vodeneev/easybets/internal/pkg/models"
)

// Scraper produces the current match list for one bookmaker page.
// Implementations handle their own fallbacks; a returned error is unexpected.
type Scraper interface {
	// GetName returns the scraper name
	GetName() string

	// Scrape runs one full fetch and extraction cycle
	Scrape(ctx context.Context) (models.ScrapeResult, error)
}

// PageFetcher retrieves the raw HTML of a listing page.
type PageFetcher interface {
	FetchPage(ctx context.Context) (string, error)

	// Strategy names the retrieval method, e.g. "browser" or "http"
	Strategy() string
}
