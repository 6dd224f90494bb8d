package analyzer

import "fmt"

// LiveHeuristics derives in-play tips from elapsed time, live counts and the
// current score. Before minute LiveMinMinute the sample is too small for
// goal tips. The result is deduplicated, sorted by confidence and capped to
// the top three.
func LiveHeuristics(ctx MatchContext, stats StatsBySide) []Recommendation {
	return LiveHeuristicsWithThresholds(ctx, stats, DefaultThresholds())
}

// LiveHeuristicsWithThresholds is LiveHeuristics with explicit cutoffs.
func LiveHeuristicsWithThresholds(ctx MatchContext, stats StatsBySide, t Thresholds) []Recommendation {
	var tips []Recommendation
	add := func(market Market, label, reason string, conf float64) {
		tips = append(tips, Recommendation{
			Market:         market,
			Recommendation: label,
			Reason:         reason,
			Confidence:     conf,
		})
	}

	homeShots := stats.Home[StatShotsTotal]
	awayShots := stats.Away[StatShotsTotal]
	totalShots := homeShots + awayShots
	totalCorners := stats.Home[StatCorners] + stats.Away[StatCorners]
	totalGoals := ctx.TotalGoals()

	// Goal pace.
	if ctx.Elapsed > t.LiveMinMinute {
		if totalShots > t.LiveActiveShots && totalGoals < 2 {
			add(MarketGoalsAsian, fmt.Sprintf("Mais de %.1f", float64(totalGoals)+0.5),
				fmt.Sprintf("%d chutes totais", totalShots), 0.70)
		} else if totalShots < t.LiveQuietShots {
			add(MarketGoalsAsian, fmt.Sprintf("Menos de %.1f", float64(totalGoals)+1.5),
				fmt.Sprintf("apenas %d chutes", totalShots), 0.65)
		}
	}

	// Both teams to score.
	if homeShots > t.LiveBTTSMinShots && awayShots > t.LiveBTTSMinShots && totalGoals < 3 {
		add(MarketBTTS, "Sim",
			fmt.Sprintf("ambos os times chutando (%d vs %d)", homeShots, awayShots), 0.75)
	}

	// Corners.
	if ctx.Elapsed > t.LiveCornerMinute {
		if totalCorners > t.LiveCornersOver {
			add(MarketCornersAsian, fmt.Sprintf("Mais de %d", totalCorners+2),
				fmt.Sprintf("%d escanteios já cobrados", totalCorners), 0.80)
		} else if totalShots > t.LivePressureShots && totalCorners < 4 {
			side := ctx.HomeTeam
			if awayShots > homeShots {
				side = ctx.AwayTeam
			}
			add(MarketCornersTeam, fmt.Sprintf("Próximo escanteio: %s", side),
				"alta pressão, poucos cantos", 0.60)
		}
	}

	// Pressure differential: one side dominating volume with shots on target.
	homeSOT := stats.Home[StatShotsOnTarget]
	awaySOT := stats.Away[StatShotsOnTarget]
	if homeShots-awayShots > t.LivePressureMargin && homeSOT >= t.LivePressureMinSOT {
		reason := fmt.Sprintf("pressão do %s (%d chutes contra %d)", ctx.HomeTeam, homeShots, awayShots)
		add(MarketMoneyline, "Vitória Casa", reason, 0.72)
		add(MarketNextGoal, "Casa", reason, 0.68)
	} else if awayShots-homeShots > t.LivePressureMargin && awaySOT >= t.LivePressureMinSOT {
		reason := fmt.Sprintf("pressão do %s (%d chutes contra %d)", ctx.AwayTeam, awayShots, homeShots)
		add(MarketMoneyline, "Vitória Visitante", reason, 0.72)
		add(MarketNextGoal, "Visitante", reason, 0.68)
	}

	// Closing stages: the game state dominates the statistics.
	if ctx.Elapsed > t.LiveLateMinute {
		if totalGoals == 0 {
			add(MarketGoalsOverUnder, "Menos de 1.5",
				"poucos gols e pouco tempo restante", 0.85)
		} else if ctx.HomeGoals > ctx.AwayGoals {
			add(MarketMoneyline, "Vitória do Time da Casa",
				fmt.Sprintf("time da casa segurando o resultado aos %d'", ctx.Elapsed), 0.70)
		} else if ctx.AwayGoals > ctx.HomeGoals {
			add(MarketMoneyline, "Vitória do Visitante",
				fmt.Sprintf("visitante segurando o resultado aos %d'", ctx.Elapsed), 0.70)
		}
	}

	// Conservative fallback so a live query never comes back empty.
	if len(tips) == 0 {
		if totalShots >= t.LiveActiveShots {
			add(MarketGoalsOverUnder, "Mais de 1.5", "ritmo de chutes razoável", 0.45)
		} else {
			add(MarketGoalsOverUnder, "Menos de 2.5", "jogo de pouca atividade", 0.40)
		}
	}

	tips = dedupeRecommendations(tips)
	sortByConfidence(tips)
	return TopN(tips, 3)
}
