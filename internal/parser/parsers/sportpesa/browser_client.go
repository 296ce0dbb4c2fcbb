package sportpesa

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/Vodeneev/easybets/internal/pkg/config"
)

const scrollToBottomJS = `window.scrollTo(0, document.body.scrollHeight); document.body.scrollHeight`

// BrowserClient renders the listing page in a fresh headless Chrome per call,
// so the odds injected by client-side scripts are present in the captured HTML.
type BrowserClient struct {
	url         string
	userAgent   string
	execPath    string
	headers     map[string]string
	initialWait time.Duration
	renderWait  time.Duration
	timeout     time.Duration
}

func NewBrowserClient(scraper config.ScraperConfig, browser config.BrowserConfig, execPath string) *BrowserClient {
	return &BrowserClient{
		url:         scraper.TargetURL,
		userAgent:   scraper.UserAgent,
		execPath:    execPath,
		headers:     scraper.Headers,
		initialWait: browser.InitialWait,
		renderWait:  browser.RenderWait,
		timeout:     browser.Timeout,
	}
}

func (c *BrowserClient) Strategy() string {
	return StrategyBrowser
}

// FetchPage starts Chrome, loads the page, waits for scripts, scrolls to trigger
// lazy content and returns the rendered document. Chrome and its profile dir
// are torn down on every return path.
func (c *BrowserClient) FetchPage(ctx context.Context) (string, error) {
	chromeDir, err := os.MkdirTemp("", "easybets_chrome_")
	if err != nil {
		return "", fmt.Errorf("%w: create chrome temp dir: %w", ErrFetch, err)
	}
	defer os.RemoveAll(chromeDir)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserDataDir(chromeDir),
	)
	if c.userAgent != "" {
		opts = append(opts, chromedp.UserAgent(c.userAgent))
	}
	if c.execPath != "" {
		opts = append(opts, chromedp.ExecPath(c.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, v ...interface{}) {
		slog.Debug("chromedp", "message", fmt.Sprintf(format, v...))
	}))
	defer cancelTab()

	headers := network.Headers{"Accept-Language": "en-US,en;q=0.9"}
	for k, v := range c.headers {
		headers[k] = v
	}

	var (
		scrollHeight int64
		html         string
	)
	err = chromedp.Run(tabCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(headers),
		chromedp.Navigate(c.url),
		chromedp.Sleep(c.initialWait),
		chromedp.Evaluate(scrollToBottomJS, &scrollHeight),
		chromedp.Sleep(c.renderWait),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("%w: chromedp: %w", ErrFetch, err)
	}

	slog.Debug("Rendered page in headless browser", "url", c.url, "scroll_height", scrollHeight, "bytes", len(html))
	return html, nil
}
