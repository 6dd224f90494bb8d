package apifootball

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/analyzer"
)

func intPtr(n int) *int { return &n }

func TestMatchContext_LiveFixture(t *testing.T) {
	fixture := FixtureData{
		Fixture: Fixture{ID: 55, Status: FixtureStatus{Short: "2H", Elapsed: intPtr(67)}},
		Teams: Teams{
			Home: Team{ID: 1, Name: "Palmeiras"},
			Away: Team{ID: 2, Name: "Santos"},
		},
		Goals: Score{Home: intPtr(2), Away: intPtr(1)},
	}

	ctx := fixture.MatchContext()

	assert.Equal(t, 55, ctx.FixtureID)
	assert.Equal(t, 1, ctx.HomeTeamID)
	assert.Equal(t, "Santos", ctx.AwayTeam)
	assert.Equal(t, 67, ctx.Elapsed)
	assert.Equal(t, 2, ctx.HomeGoals)
	assert.Equal(t, 1, ctx.AwayGoals)
	assert.True(t, fixture.IsLive())
}

func TestMatchContext_PreMatchDefaultsToZero(t *testing.T) {
	fixture := FixtureData{
		Fixture: Fixture{ID: 56, Status: FixtureStatus{Short: "NS"}},
		Teams:   Teams{Home: Team{ID: 1}, Away: Team{ID: 2}},
	}

	ctx := fixture.MatchContext()

	assert.Zero(t, ctx.Elapsed)
	assert.Zero(t, ctx.HomeGoals)
	assert.Zero(t, ctx.AwayGoals)
	assert.False(t, fixture.IsLive())
}

func TestMatchContext_FallsBackToFulltimeScore(t *testing.T) {
	fixture := FixtureData{
		Teams: Teams{Home: Team{ID: 1}, Away: Team{ID: 2}},
		Score: ScoreBreakdown{Fulltime: Score{Home: intPtr(3), Away: intPtr(0)}},
	}

	ctx := fixture.MatchContext()
	assert.Equal(t, 3, ctx.HomeGoals)
	assert.Equal(t, 0, ctx.AwayGoals)
}

func TestStatRecords(t *testing.T) {
	data := []TeamStatisticsData{
		{
			Team: Team{ID: 7},
			Statistics: []StatisticEntry{
				{Type: "Shots on Goal", Value: 4},
				{Type: "Ball Possession", Value: "55%"},
			},
		},
	}

	records := StatRecords(data)

	require.Len(t, records, 1)
	assert.Equal(t, 7, records[0].TeamID)
	require.Len(t, records[0].Entries, 2)
	assert.Equal(t, "Shots on Goal", records[0].Entries[0].Label)
	assert.Equal(t, "55%", records[0].Entries[1].Value)
}

func TestMatchEvents_Classification(t *testing.T) {
	data := []EventData{
		{Time: EventTime{Elapsed: 23}, Type: "Goal", Detail: "Normal Goal", Player: Named{Name: "Pedro"}},
		{Time: EventTime{Elapsed: 40}, Type: "Card", Detail: "Yellow Card"},
		{Time: EventTime{Elapsed: 45, Extra: intPtr(2)}, Type: "Card", Detail: "Red Card"},
		{Time: EventTime{Elapsed: 60}, Type: "subst", Detail: "Substitution 1"},
		{Time: EventTime{Elapsed: 70}, Type: "Var", Detail: "Goal cancelled"},
		{Time: EventTime{Elapsed: 80}, Type: "???", Detail: "Unknown thing"},
	}

	events := MatchEvents(data)

	require.Len(t, events, 6)
	assert.Equal(t, analyzer.EventGoal, events[0].Kind)
	assert.Equal(t, "Pedro", events[0].Player)
	assert.Equal(t, analyzer.EventYellowCard, events[1].Kind)
	assert.Equal(t, analyzer.EventRedCard, events[2].Kind)
	assert.Equal(t, 2, events[2].Extra)
	assert.Equal(t, analyzer.EventSubstitution, events[3].Kind)
	assert.Equal(t, analyzer.EventVAR, events[4].Kind)
	assert.Equal(t, analyzer.EventOther, events[5].Kind)
}

func TestBookmakerQuotes(t *testing.T) {
	data := []OddsData{
		{
			Bookmakers: []BookmakerData{
				{
					Name: "Bet365",
					Bets: []BetData{
						{Name: "Match Winner", Values: []BetValue{
							{Value: "Home", Odd: "1.85"},
							{Value: "Away", Odd: "broken"},
							{Value: "Draw", Odd: "0.10"},
						}},
						{Name: "Empty Market", Values: []BetValue{{Value: "X", Odd: "bad"}}},
					},
				},
			},
		},
	}

	books := BookmakerQuotes(data)

	require.Len(t, books, 1)
	require.Len(t, books[0].Markets, 1)
	require.Len(t, books[0].Markets[0].Outcomes, 1)
	assert.Equal(t, "Home", books[0].Markets[0].Outcomes[0].Label)
	assert.InDelta(t, 1.85, books[0].Markets[0].Outcomes[0].Price, 0.001)
}

func TestBookmakerQuotes_EmptyPayload(t *testing.T) {
	assert.Empty(t, BookmakerQuotes(nil))
	assert.Empty(t, BookmakerQuotes([]OddsData{{}}))
}
