package odds

import (
	"strings"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/analyzer"
)

// BookmakerOdds is one bookmaker's full quote sheet for a fixture.
type BookmakerOdds struct {
	Bookmaker string
	Markets   []MarketOdds
}

// MarketOdds is one market in the provider's vocabulary.
type MarketOdds struct {
	Name     string
	Outcomes []Outcome
}

// Outcome is one priced outcome label.
type Outcome struct {
	Label string
	Price float64
}

// Quote is the selected best price for a (market, outcome) pair.
type Quote struct {
	Bookmaker string
	Market    string
	Outcome   string
	Price     float64
}

// DefaultPreferredBookmakers break price ties in this priority order.
var DefaultPreferredBookmakers = []string{"bet365", "betano", "superbet", "pinnacle"}

// Enricher attaches the best known bookmaker price to recommendations.
// It is explicitly best-effort: an unmapped market leaves a recommendation
// without odds, never drops it.
type Enricher struct {
	prefRank map[string]int
}

// NewEnricher builds an enricher with the given preferred-bookmaker list;
// nil falls back to DefaultPreferredBookmakers.
func NewEnricher(preferred []string) *Enricher {
	if preferred == nil {
		preferred = DefaultPreferredBookmakers
	}
	rank := make(map[string]int, len(preferred))
	for i, name := range preferred {
		rank[strings.ToLower(name)] = i
	}
	return &Enricher{prefRank: rank}
}

// Enrich fills BestOdd/BestBook on each recommendation for which a quote is
// found. Length and order of the input list are preserved; with no odds
// data every recommendation simply stays unpriced.
func (e *Enricher) Enrich(recs []analyzer.Recommendation, books []BookmakerOdds) []analyzer.Recommendation {
	if len(books) == 0 {
		return recs
	}
	index := e.buildIndex(books)
	for i := range recs {
		market, outcome, ok := translate(recs[i].Market, recs[i].Recommendation)
		if !ok {
			continue
		}
		if quote, found := index[indexKey(market, outcome)]; found {
			price := quote.Price
			recs[i].BestOdd = &price
			recs[i].BestBook = quote.Bookmaker
		}
	}
	return recs
}

// buildIndex scans every bookmaker and keeps, per (market, outcome), the
// highest price; ties go to the better-ranked preferred bookmaker.
func (e *Enricher) buildIndex(books []BookmakerOdds) map[string]Quote {
	index := make(map[string]Quote)
	for _, book := range books {
		for _, market := range book.Markets {
			for _, outcome := range market.Outcomes {
				if outcome.Price < 1.0 {
					continue
				}
				candidate := Quote{
					Bookmaker: book.Bookmaker,
					Market:    market.Name,
					Outcome:   outcome.Label,
					Price:     outcome.Price,
				}
				key := indexKey(market.Name, outcome.Label)
				current, exists := index[key]
				if !exists || candidate.Price > current.Price ||
					(candidate.Price == current.Price && e.rank(candidate.Bookmaker) < e.rank(current.Bookmaker)) {
					index[key] = candidate
				}
			}
		}
	}
	return index
}

func (e *Enricher) rank(bookmaker string) int {
	if r, ok := e.prefRank[strings.ToLower(bookmaker)]; ok {
		return r
	}
	return len(e.prefRank)
}

func indexKey(market, outcome string) string {
	return strings.ToLower(strings.TrimSpace(market)) + "|" + strings.ToLower(strings.TrimSpace(outcome))
}
