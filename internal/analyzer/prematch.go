package analyzer

import (
	"fmt"
	"math"
	"sort"
)

// Power score weights. A crude, transparent proxy for attacking threat:
// shots on target dominate, fouls drag the score down slightly.
const (
	WeightShotsOnTarget = 1.6
	WeightShotsTotal    = 0.35
	WeightCorners       = 0.25
	WeightPossession    = 0.05
	WeightFouls         = -0.1
)

// Thresholds gathers every tunable cutoff used by the heuristic engines.
// The historical rule sets never converged on single values, so these are
// configuration with opinionated defaults rather than hard-coded law.
type Thresholds struct {
	// Pre-match power-diff bands (strict >, boundary values fall outside).
	PowerDiffStrong float64
	PowerDiffSlight float64

	// Pre-match shot activity, from the highest totals band down.
	HighShotsCombined     int
	HighSOTCombined       int
	OverShotsCombined     int
	OverSOTCombined       int
	ModerateShotsCombined int
	BTTSMinSOT            int

	// Pre-match corners and cards.
	CornersOverCombined int
	CardsOverCombined   int

	// Live rules.
	LiveMinMinute      int
	LiveCornerMinute   int
	LiveLateMinute     int
	LiveActiveShots    int
	LiveQuietShots     int
	LiveBTTSMinShots   int
	LiveCornersOver    int
	LivePressureShots  int
	LivePressureMargin int
	LivePressureMinSOT int
}

// DefaultThresholds returns the canonical cutoffs of the most complete
// rule-set revision.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PowerDiffStrong:       6,
		PowerDiffSlight:       3,
		HighShotsCombined:     22,
		HighSOTCombined:       9,
		OverShotsCombined:     14,
		OverSOTCombined:       6,
		ModerateShotsCombined: 8,
		BTTSMinSOT:            3,
		CornersOverCombined:   9,
		CardsOverCombined:     4,
		LiveMinMinute:         20,
		LiveCornerMinute:      25,
		LiveLateMinute:        75,
		LiveActiveShots:       7,
		LiveQuietShots:        3,
		LiveBTTSMinShots:      3,
		LiveCornersOver:       5,
		LivePressureShots:     10,
		LivePressureMargin:    8,
		LivePressureMinSOT:    3,
	}
}

// TopN returns the first n recommendations, or all of them when fewer exist.
func TopN(recs []Recommendation, n int) []Recommendation {
	if len(recs) <= n {
		return recs
	}
	return recs[:n]
}

// PowerScore computes the weighted offensive composite for one side.
func PowerScore(stats TeamStats) float64 {
	score := float64(stats[StatShotsOnTarget])*WeightShotsOnTarget +
		float64(stats[StatShotsTotal])*WeightShotsTotal +
		float64(stats[StatCorners])*WeightCorners +
		float64(stats[StatPossessionPct])*WeightPossession +
		float64(stats[StatFouls])*WeightFouls
	return math.Round(score*100) / 100
}

// Heuristics derives the pre-match recommendation list from normalized
// statistics. The result is deduplicated by (market, label), sorted by
// confidence descending and always contains at least three entries;
// conservative low-confidence pads fill in when fewer rules fire.
func Heuristics(ctx MatchContext, stats StatsBySide) ([]Recommendation, Summary) {
	return HeuristicsWithThresholds(ctx, stats, DefaultThresholds())
}

// HeuristicsWithThresholds is Heuristics with explicit cutoffs.
func HeuristicsWithThresholds(ctx MatchContext, stats StatsBySide, t Thresholds) ([]Recommendation, Summary) {
	homePower := PowerScore(stats.Home)
	awayPower := PowerScore(stats.Away)
	powerDiff := math.Round((homePower-awayPower)*100) / 100

	summary := Summary{
		HomeTeam:  ctx.HomeTeam,
		AwayTeam:  ctx.AwayTeam,
		HomePower: homePower,
		AwayPower: awayPower,
		PowerDiff: powerDiff,
	}

	var recs []Recommendation
	add := func(market Market, label string, conf float64, reason string) {
		recs = append(recs, Recommendation{
			Market:         market,
			Recommendation: label,
			Confidence:     conf,
			Reason:         reason,
		})
	}

	homeSOT := stats.Home[StatShotsOnTarget]
	awaySOT := stats.Away[StatShotsOnTarget]
	combinedShots := stats.Home[StatShotsTotal] + stats.Away[StatShotsTotal]
	combinedSOT := homeSOT + awaySOT
	combinedCorners := stats.Home[StatCorners] + stats.Away[StatCorners]
	combinedCards := stats.Home[StatYellowCards] + stats.Away[StatYellowCards] +
		2*(stats.Home[StatRedCards]+stats.Away[StatRedCards])

	// Favorite bands. Boundaries are strict: a diff of exactly
	// PowerDiffStrong lands in the slight-favorite band.
	switch {
	case powerDiff > t.PowerDiffStrong:
		reason := fmt.Sprintf("diferença de poder ofensivo %.2f a favor do %s", powerDiff, ctx.HomeTeam)
		add(MarketMoneyline, "Vitória Casa", 0.85, reason)
		add(MarketHandicapAsian, "Casa -1.0", 0.70, reason)
		add(MarketHandicapEuro, "Casa -1", 0.60, reason)
	case powerDiff < -t.PowerDiffStrong:
		reason := fmt.Sprintf("diferença de poder ofensivo %.2f a favor do %s", -powerDiff, ctx.AwayTeam)
		add(MarketMoneyline, "Vitória Visitante", 0.85, reason)
		add(MarketHandicapAsian, "Visitante -1.0", 0.70, reason)
		add(MarketHandicapEuro, "Visitante -1", 0.60, reason)
	case powerDiff > t.PowerDiffSlight:
		reason := fmt.Sprintf("leve favoritismo do %s (diferença %.2f)", ctx.HomeTeam, powerDiff)
		add(MarketDoubleChance, "Casa ou Empate", 0.70, reason)
		add(MarketDrawNoBet, "Casa", 0.65, reason)
		add(MarketHandicapAsian, "Casa -0.5", 0.60, reason)
	case powerDiff < -t.PowerDiffSlight:
		reason := fmt.Sprintf("leve favoritismo do %s (diferença %.2f)", ctx.AwayTeam, -powerDiff)
		add(MarketDoubleChance, "Visitante ou Empate", 0.70, reason)
		add(MarketDrawNoBet, "Visitante", 0.65, reason)
		add(MarketHandicapAsian, "Visitante -0.5", 0.60, reason)
	default:
		add(MarketMoneyline, "Sem favorito claro", 0.35, "forças ofensivas equilibradas")
	}

	// Totals. Pre-match counts come from historical tendency snapshots, so
	// only positive signals fire; the absence of shots is not evidence.
	if combinedShots > t.HighShotsCombined && combinedSOT > t.HighSOTCombined {
		reason := fmt.Sprintf("volume alto: %d chutes combinados, %d no alvo", combinedShots, combinedSOT)
		add(MarketGoalsOverUnder, "Mais de 2.5", 0.75, reason)
		add(MarketGoalsOverUnder, "Mais de 3.5", 0.60, reason)
	} else if combinedShots > t.OverShotsCombined && combinedSOT > t.OverSOTCombined {
		add(MarketGoalsOverUnder, "Mais de 2.5", 0.70,
			fmt.Sprintf("%d chutes combinados, %d no alvo", combinedShots, combinedSOT))
	} else if combinedShots > t.ModerateShotsCombined {
		add(MarketGoalsOverUnder, "Mais de 1.5", 0.60,
			fmt.Sprintf("%d chutes combinados", combinedShots))
	}

	if homeSOT > t.BTTSMinSOT && awaySOT > t.BTTSMinSOT {
		add(MarketBTTS, "Sim", 0.70,
			fmt.Sprintf("ambos os times finalizam no alvo (%d vs %d)", homeSOT, awaySOT))
	}

	if combinedCorners > t.CornersOverCombined {
		add(MarketCornersTotal, "Mais de 9.5", 0.65,
			fmt.Sprintf("%d escanteios combinados", combinedCorners))
	}
	if combinedCards > t.CardsOverCombined {
		add(MarketCardsTotal, "Mais de 4.5", 0.55,
			fmt.Sprintf("%d cartões ponderados", combinedCards))
	}

	recs = padRecommendations(recs, combinedShots, t)
	recs = dedupeRecommendations(recs)
	sortByConfidence(recs)
	return recs, summary
}

// padRecommendations guarantees the minimum of three picks with explicitly
// conservative fallbacks, never above 0.45 confidence.
func padRecommendations(recs []Recommendation, combinedShots int, t Thresholds) []Recommendation {
	if len(recs) >= 3 {
		return recs
	}

	var pads []Recommendation
	if combinedShots >= t.ModerateShotsCombined {
		pads = append(pads, Recommendation{
			Market: MarketGoalsOverUnder, Recommendation: "Mais de 1.5",
			Confidence: 0.45, Reason: "atividade de chute moderada",
		})
	} else {
		pads = append(pads, Recommendation{
			Market: MarketGoalsOverUnder, Recommendation: "Menos de 2.5",
			Confidence: 0.40, Reason: "pouca atividade ofensiva registrada",
		})
	}
	pads = append(pads,
		Recommendation{
			Market: MarketBTTS, Recommendation: "Não",
			Confidence: 0.35, Reason: "sinal ofensivo insuficiente dos dois lados",
		},
		Recommendation{
			Market: MarketMoneyline, Recommendation: "Sem favorito claro",
			Confidence: 0.30, Reason: "sem sinal dominante",
		},
		Recommendation{
			Market: MarketDoubleChance, Recommendation: "Casa ou Empate",
			Confidence: 0.30, Reason: "aposta de cobertura conservadora",
		},
	)

	for _, pad := range pads {
		if len(recs) >= 3 {
			break
		}
		if !containsRecommendation(recs, pad) {
			recs = append(recs, pad)
		}
	}
	return recs
}

func containsRecommendation(recs []Recommendation, candidate Recommendation) bool {
	for _, r := range recs {
		if r.Market == candidate.Market && r.Recommendation == candidate.Recommendation {
			return true
		}
	}
	return false
}

// dedupeRecommendations drops later duplicates of a (market, label) pair.
func dedupeRecommendations(recs []Recommendation) []Recommendation {
	seen := make(map[string]bool, len(recs))
	out := recs[:0]
	for _, r := range recs {
		key := string(r.Market) + "|" + r.Recommendation
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// sortByConfidence orders recommendations descending; the stable sort keeps
// rule emission order for equal confidence, so output is deterministic.
func sortByConfidence(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Confidence > recs[j].Confidence
	})
}
