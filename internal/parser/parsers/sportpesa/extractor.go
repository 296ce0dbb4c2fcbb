package sportpesa

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Vodeneev/easybets/internal/pkg/models"
)

// ErrExtraction means the page did not yield any matches.
var ErrExtraction = errors.New("extract matches")

const (
	teamSelector     = "div.event-team.ng-binding"
	timeSelector     = "span.ng-binding"
	fullTimeSelector = "div.event-selection > div.ng-binding"
	marketSelector   = `div[data-qa="prematch-event-selections-%s"] > div.ng-binding`
)

// Market is the data-qa suffix of a secondary market selection container.
type Market string

const (
	MarketHomeOrDraw Market = "1x"
	MarketDrawOrAway Market = "x2"
	MarketHomeOrAway Market = "12"
	MarketOver       Market = "over"
	MarketUnder      Market = "under"
	MarketBTTSYes    Market = "yes"
	MarketBTTSNo     Market = "no"
)

var secondaryMarkets = []Market{
	MarketHomeOrDraw, MarketDrawOrAway, MarketHomeOrAway,
	MarketOver, MarketUnder,
	MarketBTTSYes, MarketBTTSNo,
}

// kickoffRegex matches "dd/mm/yy - HH:MM" exactly.
var kickoffRegex = regexp.MustCompile(`^\d{2}/\d{2}/\d{2} - \d{2}:\d{2}$`)

// ExtractedFields are the independent per-field lists scraped from the page,
// each in page order. They share no key; only position correlates them.
type ExtractedFields struct {
	Teams    [][2]string
	Times    []string
	FullTime [][]string // 1X2 groups of up to three tokens
	Markets  map[Market][]string
}

// Extractor turns listing HTML into matches.
type Extractor struct {
	aligner Aligner
}

// NewExtractor creates an extractor; a nil aligner means PositionalAligner.
func NewExtractor(aligner Aligner) *Extractor {
	if aligner == nil {
		aligner = PositionalAligner{}
	}
	return &Extractor{aligner: aligner}
}

// Extract parses html and aligns the field lists into matches.
// It never panics; a page without team names yields ErrExtraction.
func (e *Extractor) Extract(html string) (matches []models.Match, err error) {
	defer func() {
		if r := recover(); r != nil {
			matches = nil
			err = fmt.Errorf("%w: panic: %v", ErrExtraction, r)
		}
	}()

	fields, err := ParseFields(html)
	if err != nil {
		return nil, err
	}
	if len(fields.Teams) == 0 {
		return nil, fmt.Errorf("%w: no team names found", ErrExtraction)
	}
	return e.aligner.Align(fields), nil
}

// ParseFields runs every selector over html and returns the raw field lists.
func ParseFields(html string) (ExtractedFields, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ExtractedFields{}, fmt.Errorf("%w: parse html: %w", ErrExtraction, err)
	}

	fields := ExtractedFields{
		Teams:    PairTeams(selectText(doc, teamSelector)),
		Times:    FilterKickoffTimes(selectText(doc, timeSelector)),
		FullTime: GroupTriples(FilterNumeric(selectText(doc, fullTimeSelector))),
		Markets:  make(map[Market][]string, len(secondaryMarkets)),
	}
	for _, m := range secondaryMarkets {
		fields.Markets[m] = selectText(doc, fmt.Sprintf(marketSelector, m))
	}
	return fields, nil
}

func selectText(doc *goquery.Document, selector string) []string {
	var out []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

// PairTeams pairs names (2i, 2i+1) into (home, away); a trailing odd name is dropped.
func PairTeams(names []string) [][2]string {
	pairs := make([][2]string, 0, len(names)/2)
	for i := 0; i+1 < len(names); i += 2 {
		pairs = append(pairs, [2]string{names[i], names[i+1]})
	}
	return pairs
}

// FilterKickoffTimes keeps the candidates shaped exactly like "dd/mm/yy - HH:MM", in order.
func FilterKickoffTimes(candidates []string) []string {
	var out []string
	for _, c := range candidates {
		if kickoffRegex.MatchString(c) {
			out = append(out, c)
		}
	}
	return out
}

// IsNumericToken reports whether s is ASCII digits with at most one decimal point.
func IsNumericToken(s string) bool {
	digits := 0
	dots := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}

// FilterNumeric keeps the numeric-looking tokens, in order.
func FilterNumeric(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if IsNumericToken(t) {
			out = append(out, t)
		}
	}
	return out
}

// GroupTriples splits tokens into consecutive (home, draw, away) groups.
// The last group may hold fewer than three tokens.
func GroupTriples(tokens []string) [][]string {
	groups := make([][]string, 0, (len(tokens)+2)/3)
	for i := 0; i < len(tokens); i += 3 {
		end := min(i+3, len(tokens))
		groups = append(groups, tokens[i:end:end])
	}
	return groups
}
