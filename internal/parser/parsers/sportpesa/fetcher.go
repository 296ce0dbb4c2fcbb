package sportpesa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/Vodeneev/easybets/internal/pkg/config"
	"github.com/Vodeneev/easybets/internal/pkg/interfaces"
	"github.com/Vodeneev/easybets/internal/pkg/performance"
)

// ErrFetch means the listing page could not be retrieved by any strategy.
var ErrFetch = errors.New("fetch page")

const (
	StrategyBrowser  = "browser"
	StrategyHTTP     = "http"
	StrategyFallback = "browser+http"
)

// browserBinaries are tried in order when no explicit exec path is configured.
var browserBinaries = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
	"headless-shell",
}

var lookPath = exec.LookPath

// LookupBrowser returns the Chrome executable to use, if any is installed.
func LookupBrowser(execPath string) (string, bool) {
	if execPath != "" {
		p, err := lookPath(execPath)
		return p, err == nil
	}
	for _, name := range browserBinaries {
		if p, err := lookPath(name); err == nil {
			return p, true
		}
	}
	return "", false
}

// NewFetcher picks the page retrieval strategy once, at startup.
// The browser is used only outside cloud mode and when Chrome is installed;
// browser failures then fall through to plain HTTP.
func NewFetcher(cfg *config.Config, tracker *performance.Tracker) interfaces.PageFetcher {
	httpClient := Instrument(NewHTTPClient(cfg.Scraper), tracker)

	if cfg.Scraper.CloudMode {
		slog.Info("Cloud mode: headless browser disabled", "strategy", StrategyHTTP)
		return httpClient
	}

	execPath, ok := LookupBrowser(cfg.Browser.ExecPath)
	if !ok {
		slog.Info("No Chrome executable found, using plain HTTP", "strategy", StrategyHTTP)
		return httpClient
	}

	slog.Info("Using headless browser with HTTP fallback", "strategy", StrategyFallback, "exec_path", execPath)
	browser := Instrument(NewBrowserClient(cfg.Scraper, cfg.Browser, execPath), tracker)
	return NewFallbackFetcher(browser, httpClient)
}

// FallbackFetcher tries primary and falls through to secondary on any error.
type FallbackFetcher struct {
	primary   interfaces.PageFetcher
	secondary interfaces.PageFetcher
}

func NewFallbackFetcher(primary, secondary interfaces.PageFetcher) *FallbackFetcher {
	return &FallbackFetcher{primary: primary, secondary: secondary}
}

func (f *FallbackFetcher) Strategy() string {
	return f.primary.Strategy() + "+" + f.secondary.Strategy()
}

func (f *FallbackFetcher) FetchPage(ctx context.Context) (string, error) {
	html, err := f.primary.FetchPage(ctx)
	if err == nil {
		return html, nil
	}
	slog.Warn("Primary fetch failed, falling back",
		"primary", f.primary.Strategy(), "fallback", f.secondary.Strategy(), "error", err)

	html, err = f.secondary.FetchPage(ctx)
	if err != nil {
		if errors.Is(err, ErrFetch) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return html, nil
}

type instrumented struct {
	interfaces.PageFetcher
	tracker *performance.Tracker
}

// Instrument records duration and failures of every fetch made through f.
func Instrument(f interfaces.PageFetcher, tracker *performance.Tracker) interfaces.PageFetcher {
	if tracker == nil {
		return f
	}
	return &instrumented{PageFetcher: f, tracker: tracker}
}

func (i *instrumented) FetchPage(ctx context.Context) (string, error) {
	start := time.Now()
	html, err := i.PageFetcher.FetchPage(ctx)
	i.tracker.RecordFetch(i.Strategy(), time.Since(start), err)
	return html, err
}
