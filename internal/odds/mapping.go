package odds

import (
	"strings"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/analyzer"
)

// Provider market names (API-Football vocabulary).
const (
	providerMatchWinner  = "Match Winner"
	providerDoubleChance = "Double Chance"
	providerHomeAway     = "Home/Away"
	providerGoalsOU      = "Goals Over/Under"
	providerBTTS         = "Both Teams Score"
	providerAsianHcp     = "Asian Handicap"
	providerCornersOU    = "Total Corners"
)

// fixedOutcomes maps (internal market, normalized label) pairs with no
// numeric line straight to the provider vocabulary. Markets absent here
// (team corners, next goal, cards, european handicap) have no reliable
// provider counterpart and intentionally stay unpriced.
var fixedOutcomes = map[analyzer.Market]map[string][2]string{
	analyzer.MarketMoneyline: {
		"vitória casa":            {providerMatchWinner, "Home"},
		"vitória do time da casa": {providerMatchWinner, "Home"},
		"vitória visitante":       {providerMatchWinner, "Away"},
		"vitória do visitante":    {providerMatchWinner, "Away"},
		"empate":                  {providerMatchWinner, "Draw"},
	},
	analyzer.MarketDoubleChance: {
		"casa ou empate":      {providerDoubleChance, "Home/Draw"},
		"visitante ou empate": {providerDoubleChance, "Draw/Away"},
	},
	analyzer.MarketDrawNoBet: {
		"casa":      {providerHomeAway, "Home"},
		"visitante": {providerHomeAway, "Away"},
	},
	analyzer.MarketBTTS: {
		"sim": {providerBTTS, "Yes"},
		"não": {providerBTTS, "No"},
	},
}

// translate converts an internal (market, label) pair into the provider's
// (market, outcome) vocabulary. ok is false when no mapping exists.
func translate(market analyzer.Market, label string) (string, string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(label))

	if outcomes, ok := fixedOutcomes[market]; ok {
		if pair, found := outcomes[normalized]; found {
			return pair[0], pair[1], true
		}
		return "", "", false
	}

	switch market {
	case analyzer.MarketGoalsOverUnder, analyzer.MarketGoalsAsian:
		return translateTotals(providerGoalsOU, normalized)
	case analyzer.MarketCornersTotal, analyzer.MarketCornersAsian:
		return translateTotals(providerCornersOU, normalized)
	case analyzer.MarketHandicapAsian:
		return translateHandicap(normalized)
	default:
		return "", "", false
	}
}

// translateTotals splits "mais de 2.5" / "menos de 3" into the provider's
// "Over 2.5" / "Under 3" outcome labels.
func translateTotals(providerMarket, normalized string) (string, string, bool) {
	switch {
	case strings.HasPrefix(normalized, "mais de "):
		line := strings.TrimSpace(strings.TrimPrefix(normalized, "mais de "))
		if line == "" {
			return "", "", false
		}
		return providerMarket, "Over " + line, true
	case strings.HasPrefix(normalized, "menos de "):
		line := strings.TrimSpace(strings.TrimPrefix(normalized, "menos de "))
		if line == "" {
			return "", "", false
		}
		return providerMarket, "Under " + line, true
	default:
		return "", "", false
	}
}

// translateHandicap converts "casa -1.0" / "visitante +0.5" into the
// provider's "Home -1" / "Away +0.5" labels; integral lines lose the ".0".
func translateHandicap(normalized string) (string, string, bool) {
	var side string
	var rest string
	switch {
	case strings.HasPrefix(normalized, "casa "):
		side = "Home"
		rest = strings.TrimSpace(strings.TrimPrefix(normalized, "casa "))
	case strings.HasPrefix(normalized, "visitante "):
		side = "Away"
		rest = strings.TrimSpace(strings.TrimPrefix(normalized, "visitante "))
	default:
		return "", "", false
	}
	if rest == "" {
		return "", "", false
	}
	rest = strings.TrimSuffix(rest, ".0")
	return providerAsianHcp, side + " " + rest, true
}
