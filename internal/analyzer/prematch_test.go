package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsWith(values map[StatKey]int) TeamStats {
	stats := emptyTeamStats()
	for k, v := range values {
		stats[k] = v
	}
	return stats
}

func prematchContext() MatchContext {
	return MatchContext{
		FixtureID:  101,
		HomeTeamID: 1,
		AwayTeamID: 2,
		HomeTeam:   "Flamengo",
		AwayTeam:   "Vasco",
	}
}

func TestHeuristics_StrongHomeFavorite(t *testing.T) {
	stats := StatsBySide{
		Home: statsWith(map[StatKey]int{StatShotsOnTarget: 10}),
		Away: statsWith(map[StatKey]int{StatShotsOnTarget: 2}),
	}

	recs, summary := Heuristics(prematchContext(), stats)

	assert.InDelta(t, 16.0, summary.HomePower, 0.001)
	assert.InDelta(t, 3.2, summary.AwayPower, 0.001)
	assert.InDelta(t, 12.8, summary.PowerDiff, 0.001)

	require.NotEmpty(t, recs)
	top := recs[0]
	assert.Equal(t, MarketMoneyline, top.Market)
	assert.Equal(t, "Vitória Casa", top.Recommendation)
	assert.InDelta(t, 0.85, top.Confidence, 0.001)
}

func TestHeuristics_StrongAwayFavoriteMirrors(t *testing.T) {
	stats := StatsBySide{
		Home: statsWith(map[StatKey]int{StatShotsOnTarget: 2}),
		Away: statsWith(map[StatKey]int{StatShotsOnTarget: 10}),
	}

	recs, summary := Heuristics(prematchContext(), stats)

	assert.InDelta(t, -12.8, summary.PowerDiff, 0.001)
	require.NotEmpty(t, recs)
	assert.Equal(t, "Vitória Visitante", recs[0].Recommendation)
	assert.InDelta(t, 0.85, recs[0].Confidence, 0.001)
}

func TestHeuristics_BoundaryDiffIsSlightBand(t *testing.T) {
	// Home power 6.4 vs away 0.4 -> diff exactly 6.0, which must land in
	// the slight-favorite band, not the strong one.
	stats := StatsBySide{
		Home: statsWith(map[StatKey]int{StatShotsOnTarget: 4}),
		Away: statsWith(map[StatKey]int{StatShotsOnTarget: 0, StatShotsTotal: 0, StatPossessionPct: 8}),
	}

	recs, summary := Heuristics(prematchContext(), stats)
	require.InDelta(t, 6.0, summary.PowerDiff, 0.001)

	for _, r := range recs {
		assert.NotEqual(t, "Vitória Casa", r.Recommendation)
	}
	found := false
	for _, r := range recs {
		if r.Market == MarketDoubleChance && r.Recommendation == "Casa ou Empate" {
			found = true
			assert.InDelta(t, 0.70, r.Confidence, 0.001)
		}
	}
	assert.True(t, found, "expected double chance pick for slight favorite")
}

func TestHeuristics_AllZeroStatsPadsConservatively(t *testing.T) {
	stats := StatsBySide{Home: emptyTeamStats(), Away: emptyTeamStats()}

	recs, summary := Heuristics(prematchContext(), stats)

	assert.Zero(t, summary.PowerDiff)
	require.GreaterOrEqual(t, len(recs), 3)
	for _, r := range recs {
		assert.LessOrEqual(t, r.Confidence, 0.45, "pick %q should stay conservative", r.Recommendation)
	}

	found := false
	for _, r := range recs {
		if r.Recommendation == "Sem favorito claro" {
			found = true
		}
	}
	assert.True(t, found, "balanced game must name no clear favorite")
}

func TestHeuristics_ActiveGameFiresTotalsAndBTTS(t *testing.T) {
	stats := StatsBySide{
		Home: statsWith(map[StatKey]int{StatShotsTotal: 9, StatShotsOnTarget: 4, StatCorners: 6}),
		Away: statsWith(map[StatKey]int{StatShotsTotal: 8, StatShotsOnTarget: 4, StatCorners: 5}),
	}

	recs, _ := Heuristics(prematchContext(), stats)

	labels := make(map[string]float64)
	for _, r := range recs {
		labels[string(r.Market)+"|"+r.Recommendation] = r.Confidence
	}
	assert.Contains(t, labels, "goals_over_under|Mais de 2.5")
	assert.Contains(t, labels, "btts|Sim")
	assert.Contains(t, labels, "corners_over_under|Mais de 9.5")
}

func TestHeuristics_TotalsBands(t *testing.T) {
	cases := []struct {
		name                 string
		homeShots, awayShots int
		homeSOT, awaySOT     int
		want                 []string
		wantNot              []string
	}{
		{
			name:      "high volume reaches the 3.5 line",
			homeShots: 14, awayShots: 10, homeSOT: 6, awaySOT: 5,
			want: []string{"Mais de 2.5", "Mais de 3.5"},
		},
		{
			name:      "over band stops at 2.5",
			homeShots: 9, awayShots: 8, homeSOT: 4, awaySOT: 4,
			want:    []string{"Mais de 2.5"},
			wantNot: []string{"Mais de 3.5"},
		},
		{
			name:      "moderate activity only clears 1.5",
			homeShots: 5, awayShots: 4, homeSOT: 1, awaySOT: 1,
			want:    []string{"Mais de 1.5"},
			wantNot: []string{"Mais de 2.5", "Mais de 3.5"},
		},
		{
			name:      "quiet game fires no over line",
			homeShots: 2, awayShots: 1,
			wantNot: []string{"Mais de 1.5", "Mais de 2.5", "Mais de 3.5"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stats := StatsBySide{
				Home: statsWith(map[StatKey]int{StatShotsTotal: tc.homeShots, StatShotsOnTarget: tc.homeSOT}),
				Away: statsWith(map[StatKey]int{StatShotsTotal: tc.awayShots, StatShotsOnTarget: tc.awaySOT}),
			}
			recs, _ := Heuristics(prematchContext(), stats)

			labels := make(map[string]bool)
			for _, r := range recs {
				if r.Market == MarketGoalsOverUnder {
					labels[r.Recommendation] = true
				}
			}
			for _, want := range tc.want {
				assert.True(t, labels[want], "missing %q", want)
			}
			for _, not := range tc.wantNot {
				assert.False(t, labels[not], "unexpected %q", not)
			}
		})
	}
}

func TestHeuristics_OutputSortedAndDeduplicated(t *testing.T) {
	stats := StatsBySide{
		Home: statsWith(map[StatKey]int{StatShotsTotal: 12, StatShotsOnTarget: 6, StatCorners: 7, StatYellowCards: 3}),
		Away: statsWith(map[StatKey]int{StatShotsTotal: 10, StatShotsOnTarget: 5, StatCorners: 6, StatYellowCards: 3}),
	}

	recs, _ := Heuristics(prematchContext(), stats)

	seen := make(map[string]bool)
	for i, r := range recs {
		key := string(r.Market) + "|" + r.Recommendation
		assert.False(t, seen[key], "duplicate pick %s", key)
		seen[key] = true
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].Confidence, r.Confidence)
		}
	}
}

func TestHeuristics_Deterministic(t *testing.T) {
	stats := StatsBySide{
		Home: statsWith(map[StatKey]int{StatShotsTotal: 12, StatShotsOnTarget: 6, StatCorners: 7}),
		Away: statsWith(map[StatKey]int{StatShotsTotal: 10, StatShotsOnTarget: 5, StatCorners: 6}),
	}

	first, firstSummary := Heuristics(prematchContext(), stats)
	second, secondSummary := Heuristics(prematchContext(), stats)

	assert.Equal(t, firstSummary, secondSummary)
	assert.Equal(t, first, second)
}

func TestPowerScore_Weights(t *testing.T) {
	stats := statsWith(map[StatKey]int{
		StatShotsOnTarget: 5,
		StatShotsTotal:    10,
		StatCorners:       4,
		StatPossessionPct: 60,
		StatFouls:         10,
	})

	// 5*1.6 + 10*0.35 + 4*0.25 + 60*0.05 + 10*-0.1 = 14.5
	assert.InDelta(t, 14.5, PowerScore(stats), 0.001)
}

func TestTopN(t *testing.T) {
	recs := []Recommendation{{Recommendation: "a"}, {Recommendation: "b"}}
	assert.Len(t, TopN(recs, 3), 2)
	assert.Len(t, TopN(recs, 1), 1)
	assert.Equal(t, "a", TopN(recs, 1)[0].Recommendation)
}
