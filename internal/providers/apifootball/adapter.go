package apifootball

import (
	"strconv"
	"strings"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/analyzer"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/odds"
)

// This file is the single defensive boundary between the provider's
// loosely-shaped JSON and the strongly-typed core structures.

// MatchContext converts a fixture record into the immutable analysis
// context. The current score shows up either under the top-level goals key
// or nested under score.fulltime depending on the snapshot; both are tried
// and anything missing defaults to zero.
func (f *FixtureData) MatchContext() analyzer.MatchContext {
	ctx := analyzer.MatchContext{
		FixtureID:  f.Fixture.ID,
		HomeTeamID: f.Teams.Home.ID,
		AwayTeamID: f.Teams.Away.ID,
		HomeTeam:   f.Teams.Home.Name,
		AwayTeam:   f.Teams.Away.Name,
	}
	if f.Fixture.Status.Elapsed != nil {
		ctx.Elapsed = *f.Fixture.Status.Elapsed
	}
	ctx.HomeGoals = scoreValue(f.Goals.Home, f.Score.Fulltime.Home)
	ctx.AwayGoals = scoreValue(f.Goals.Away, f.Score.Fulltime.Away)
	return ctx
}

// IsLive reports whether the fixture has in-play elapsed time.
func (f *FixtureData) IsLive() bool {
	return f.Fixture.Status.Elapsed != nil && *f.Fixture.Status.Elapsed > 0
}

func scoreValue(candidates ...*int) int {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return 0
}

// StatRecords converts the raw statistics payload into the normalizer's
// input shape.
func StatRecords(data []TeamStatisticsData) []analyzer.TeamStatistics {
	records := make([]analyzer.TeamStatistics, 0, len(data))
	for _, team := range data {
		record := analyzer.TeamStatistics{TeamID: team.Team.ID}
		for _, entry := range team.Statistics {
			record.Entries = append(record.Entries, analyzer.StatEntry{
				Label: entry.Type,
				Value: entry.Value,
			})
		}
		records = append(records, record)
	}
	return records
}

// MatchEvents converts and classifies the raw event feed.
func MatchEvents(data []EventData) []analyzer.MatchEvent {
	events := make([]analyzer.MatchEvent, 0, len(data))
	for _, ev := range data {
		event := analyzer.MatchEvent{
			Minute: ev.Time.Elapsed,
			Kind:   classifyEvent(ev),
			Detail: ev.Detail,
			Player: ev.Player.Name,
			TeamID: ev.Team.ID,
		}
		if ev.Time.Extra != nil {
			event.Extra = *ev.Time.Extra
		}
		events = append(events, event)
	}
	return events
}

func classifyEvent(ev EventData) analyzer.EventKind {
	detail := strings.ToLower(ev.Detail)
	eventType := strings.ToLower(ev.Type)
	switch {
	// VAR first: its details often mention goals ("Goal cancelled").
	case eventType == "var" || strings.Contains(detail, "var"):
		return analyzer.EventVAR
	case strings.Contains(detail, "goal"):
		return analyzer.EventGoal
	case strings.Contains(detail, "yellow card"):
		return analyzer.EventYellowCard
	case strings.Contains(detail, "red card"):
		return analyzer.EventRedCard
	case strings.Contains(detail, "substitution") || eventType == "subst":
		return analyzer.EventSubstitution
	case strings.Contains(detail, "corner"):
		return analyzer.EventCorner
	case strings.Contains(detail, "foul"):
		return analyzer.EventFoul
	default:
		return analyzer.EventOther
	}
}

// BookmakerQuotes flattens the odds payload across every response entry
// into the enricher's input shape. Unparsable prices are skipped.
func BookmakerQuotes(data []OddsData) []odds.BookmakerOdds {
	var books []odds.BookmakerOdds
	for _, entry := range data {
		for _, bookmaker := range entry.Bookmakers {
			book := odds.BookmakerOdds{Bookmaker: bookmaker.Name}
			for _, bet := range bookmaker.Bets {
				market := odds.MarketOdds{Name: bet.Name}
				for _, value := range bet.Values {
					price, err := strconv.ParseFloat(strings.TrimSpace(value.Odd), 64)
					if err != nil || price < 1.0 {
						continue
					}
					market.Outcomes = append(market.Outcomes, odds.Outcome{
						Label: value.Value,
						Price: price,
					})
				}
				if len(market.Outcomes) > 0 {
					book.Markets = append(book.Markets, market)
				}
			}
			if len(book.Markets) > 0 {
				books = append(books, book)
			}
		}
	}
	return books
}
