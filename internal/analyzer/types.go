package analyzer

// StatKey identifies a normalized per-team statistic.
type StatKey string

const (
	StatShotsOnTarget  StatKey = "shots_on_target"
	StatShotsOffTarget StatKey = "shots_off_target"
	StatShotsTotal     StatKey = "shots_total"
	StatCorners        StatKey = "corners"
	StatPossessionPct  StatKey = "possession_pct"
	StatFouls          StatKey = "fouls"
	StatYellowCards    StatKey = "yellow_cards"
	StatRedCards       StatKey = "red_cards"
	StatOffsides       StatKey = "offsides"
	StatSaves          StatKey = "saves"
)

// SemanticKeys lists every key a normalized TeamStats map must contain.
var SemanticKeys = []StatKey{
	StatShotsOnTarget,
	StatShotsOffTarget,
	StatShotsTotal,
	StatCorners,
	StatPossessionPct,
	StatFouls,
	StatYellowCards,
	StatRedCards,
	StatOffsides,
	StatSaves,
}

// TeamStats maps semantic keys to numeric values for one side.
// Percentages are stored as whole integers (57% -> 57).
type TeamStats map[StatKey]int

// StatsBySide holds the normalized statistics for both sides of a fixture.
type StatsBySide struct {
	Home TeamStats
	Away TeamStats
}

// StatEntry is a single raw statistic as delivered by the data provider.
// Labels are free text and values may be numbers, strings or null.
type StatEntry struct {
	Label string
	Value interface{}
}

// TeamStatistics is the raw per-team statistics record from the provider.
type TeamStatistics struct {
	TeamID  int
	Entries []StatEntry
}

// MatchContext is the immutable match state for one analysis call.
type MatchContext struct {
	FixtureID  int
	HomeTeamID int
	AwayTeamID int
	HomeTeam   string
	AwayTeam   string
	// Elapsed is 0 for pre-match fixtures.
	Elapsed   int
	HomeGoals int
	AwayGoals int
}

// TotalGoals returns the combined score.
func (m MatchContext) TotalGoals() int {
	return m.HomeGoals + m.AwayGoals
}

// Market tags form a closed vocabulary consumed by the odds enricher.
type Market string

const (
	MarketMoneyline      Market = "moneyline"
	MarketDoubleChance   Market = "double_chance"
	MarketDrawNoBet      Market = "draw_no_bet"
	MarketGoalsOverUnder Market = "goals_over_under"
	MarketGoalsAsian     Market = "goals_asian"
	MarketBTTS           Market = "btts"
	MarketHandicapAsian  Market = "handicap_asian"
	MarketHandicapEuro   Market = "handicap_euro"
	MarketCornersAsian   Market = "corners_asian"
	MarketCornersTotal   Market = "corners_over_under"
	MarketCornersTeam    Market = "corners_team"
	MarketCardsTotal     Market = "cards_over_under"
	MarketNextGoal       Market = "next_goal"
)

// Recommendation is a single betting tip. BestOdd and BestBook stay empty
// until the odds enricher finds a matching bookmaker quote.
type Recommendation struct {
	Market         Market   `json:"market"`
	Recommendation string   `json:"recommendation"`
	Confidence     float64  `json:"confidence"`
	Reason         string   `json:"reason,omitempty"`
	BestOdd        *float64 `json:"best_odd,omitempty"`
	BestBook       string   `json:"best_book,omitempty"`
}

// Summary carries the per-side power scores shown alongside the tips.
type Summary struct {
	HomeTeam  string  `json:"home_team"`
	AwayTeam  string  `json:"away_team"`
	HomePower float64 `json:"home_power"`
	AwayPower float64 `json:"away_power"`
	PowerDiff float64 `json:"power_diff"`
}

// EventKind classifies a live match event.
type EventKind string

const (
	EventGoal         EventKind = "Gol"
	EventYellowCard   EventKind = "Cartão Amarelo"
	EventRedCard      EventKind = "Cartão Vermelho"
	EventSubstitution EventKind = "Substituição"
	EventCorner       EventKind = "Escanteio"
	EventFoul         EventKind = "Falta"
	EventVAR          EventKind = "VAR"
	EventOther        EventKind = "Evento"
)

// MatchEvent is one classified in-play event.
type MatchEvent struct {
	Minute int
	Extra  int
	Kind   EventKind
	Detail string
	Player string
	TeamID int
}
