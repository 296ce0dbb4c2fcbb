package sportpesa

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vodeneev/easybets/internal/pkg/config"
	"github.com/Vodeneev/easybets/internal/pkg/performance"
)

type stubFetcher struct {
	strategy string
	html     string
	err      error
	calls    int
}

func (s *stubFetcher) FetchPage(context.Context) (string, error) {
	s.calls++
	return s.html, s.err
}

func (s *stubFetcher) Strategy() string {
	return s.strategy
}

func TestFallbackFetcher(t *testing.T) {
	tests := []struct {
		name          string
		primaryErr    error
		secondaryErr  error
		wantHTML      string
		wantErr       bool
		wantSecondary int
	}{
		{"primary succeeds", nil, nil, "<browser/>", false, 0},
		{"falls through to secondary", errors.New("chrome crashed"), nil, "<http/>", false, 1},
		{"both fail", errors.New("chrome crashed"), errors.New("connection refused"), "", true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &stubFetcher{strategy: StrategyBrowser, html: "<browser/>", err: tt.primaryErr}
			secondary := &stubFetcher{strategy: StrategyHTTP, html: "<http/>", err: tt.secondaryErr}
			f := NewFallbackFetcher(primary, secondary)

			html, err := f.FetchPage(context.Background())

			assert.Equal(t, 1, primary.calls)
			assert.Equal(t, tt.wantSecondary, secondary.calls)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrFetch)
				require.ErrorIs(t, err, tt.secondaryErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTML, html)
		})
	}
	assert.Equal(t, StrategyFallback, NewFallbackFetcher(&stubFetcher{strategy: StrategyBrowser}, &stubFetcher{strategy: StrategyHTTP}).Strategy())
}

func stubLookPath(t *testing.T, found map[string]string) {
	t.Helper()
	prev := lookPath
	lookPath = func(name string) (string, error) {
		if p, ok := found[name]; ok {
			return p, nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = prev })
}

func TestLookupBrowser(t *testing.T) {
	stubLookPath(t, map[string]string{
		"chromium":        "/usr/bin/chromium",
		"/opt/chrome/bin": "/opt/chrome/bin",
	})

	p, ok := LookupBrowser("")
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin/chromium", p)

	p, ok = LookupBrowser("/opt/chrome/bin")
	assert.True(t, ok)
	assert.Equal(t, "/opt/chrome/bin", p)

	_, ok = LookupBrowser("/missing/chrome")
	assert.False(t, ok)
}

func TestNewFetcher_StrategySelection(t *testing.T) {
	tests := []struct {
		name      string
		cloudMode bool
		installed bool
		want      string
	}{
		{"cloud mode forces http", true, true, StrategyHTTP},
		{"no chrome installed", false, false, StrategyHTTP},
		{"local with chrome", false, true, StrategyFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := map[string]string{}
			if tt.installed {
				found["google-chrome"] = "/usr/bin/google-chrome"
			}
			stubLookPath(t, found)

			cfg := config.Default()
			cfg.Scraper.CloudMode = tt.cloudMode

			assert.Equal(t, tt.want, NewFetcher(cfg, nil).Strategy())
		})
	}
}

func TestInstrument(t *testing.T) {
	inner := &stubFetcher{strategy: StrategyHTTP, err: ErrFetch}
	assert.Same(t, inner, Instrument(inner, nil))

	tracker := performance.NewTracker()
	f := Instrument(inner, tracker)
	assert.Equal(t, StrategyHTTP, f.Strategy())

	_, err := f.FetchPage(context.Background())
	require.ErrorIs(t, err, ErrFetch)

	n, err := testutil.GatherAndCount(tracker.Registry(), "easybets_fetch_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBrowserClient_FromConfig(t *testing.T) {
	cfg := config.Default()
	c := NewBrowserClient(cfg.Scraper, cfg.Browser, "/usr/bin/chromium")

	assert.Equal(t, StrategyBrowser, c.Strategy())
	assert.Equal(t, config.DefaultTargetURL, c.url)
	assert.Equal(t, 3*time.Second, c.initialWait)
	assert.Equal(t, 6*time.Second, c.renderWait)
	assert.Equal(t, "/usr/bin/chromium", c.execPath)
}

func TestBrowserClient_FailureCleansUp(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	cfg := config.Default()
	cfg.Browser.InitialWait = 0
	cfg.Browser.RenderWait = 0
	cfg.Browser.Timeout = 5 * time.Second
	c := NewBrowserClient(cfg.Scraper, cfg.Browser, filepath.Join(tmp, "missing", "chrome"))

	html, err := c.FetchPage(context.Background())

	require.ErrorIs(t, err, ErrFetch)
	assert.Empty(t, html)

	leftovers, err := filepath.Glob(filepath.Join(os.TempDir(), "easybets_chrome_*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}
