package apifootball

// Response envelopes and payload shapes for v3.football.api-sports.io.
// Only the fields the bot reads are declared; everything else is ignored.

type fixturesResponse struct {
	Response []FixtureData `json:"response"`
}

// FixtureData is one fixture record, scheduled or live.
type FixtureData struct {
	Fixture Fixture        `json:"fixture"`
	League  League         `json:"league"`
	Teams   Teams          `json:"teams"`
	Goals   Score          `json:"goals"`
	Score   ScoreBreakdown `json:"score"`
}

type Fixture struct {
	ID     int           `json:"id"`
	Date   string        `json:"date"`
	Status FixtureStatus `json:"status"`
}

type FixtureStatus struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

type League struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Teams struct {
	Home Team `json:"home"`
	Away Team `json:"away"`
}

type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Score fields are pointers: the provider sends null before kickoff.
type Score struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type ScoreBreakdown struct {
	Halftime Score `json:"halftime"`
	Fulltime Score `json:"fulltime"`
}

type statisticsResponse struct {
	Response []TeamStatisticsData `json:"response"`
}

// TeamStatisticsData is the raw per-team statistics block. Value is left
// untyped: the provider mixes numbers, percentage strings and nulls.
type TeamStatisticsData struct {
	Team       Team             `json:"team"`
	Statistics []StatisticEntry `json:"statistics"`
}

type StatisticEntry struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

type eventsResponse struct {
	Response []EventData `json:"response"`
}

type EventData struct {
	Time   EventTime `json:"time"`
	Team   Team      `json:"team"`
	Player Named     `json:"player"`
	Type   string    `json:"type"`
	Detail string    `json:"detail"`
}

type EventTime struct {
	Elapsed int  `json:"elapsed"`
	Extra   *int `json:"extra"`
}

type Named struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type oddsResponse struct {
	Response []OddsData `json:"response"`
}

type OddsData struct {
	Bookmakers []BookmakerData `json:"bookmakers"`
}

type BookmakerData struct {
	ID   int       `json:"id"`
	Name string    `json:"name"`
	Bets []BetData `json:"bets"`
}

type BetData struct {
	Name   string     `json:"name"`
	Values []BetValue `json:"values"`
}

// BetValue's odd arrives as a decimal string ("1.85").
type BetValue struct {
	Value string `json:"value"`
	Odd   string `json:"odd"`
}

type playersResponse struct {
	Response []PlayerData `json:"response"`
}

type PlayerData struct {
	Player     PlayerInfo        `json:"player"`
	Statistics []PlayerSeasonRow `json:"statistics"`
}

type PlayerInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Nationality string `json:"nationality"`
}

type PlayerSeasonRow struct {
	Team   Team        `json:"team"`
	League League      `json:"league"`
	Games  PlayerGames `json:"games"`
	Goals  PlayerGoals `json:"goals"`
	Shots  PlayerShots `json:"shots"`
	Cards  PlayerCards `json:"cards"`
}

type PlayerGames struct {
	Appearances int    `json:"appearences"` // provider spelling
	Minutes     *int   `json:"minutes"`
	Position    string `json:"position"`
}

type PlayerGoals struct {
	Total   *int `json:"total"`
	Assists *int `json:"assists"`
}

type PlayerShots struct {
	Total *int `json:"total"`
	On    *int `json:"on"`
}

type PlayerCards struct {
	Yellow *int `json:"yellow"`
	Red    *int `json:"red"`
}

type squadResponse struct {
	Response []SquadData `json:"response"`
}

type SquadData struct {
	Team    Team          `json:"team"`
	Players []SquadPlayer `json:"players"`
}

type SquadPlayer struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}
