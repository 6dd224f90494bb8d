package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/analyzer"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/providers/apifootball"
)

// LiveEvent is one classified event rendered for display.
type LiveEvent struct {
	DisplayTime string `json:"display_time"`
	Category    string `json:"category"`
	Detail      string `json:"detail"`
	Player      string `json:"player,omitempty"`
}

// LiveSnapshot is the full in-play picture of one fixture: context, side
// statistics and the recent event feed, newest first.
type LiveSnapshot struct {
	Context       analyzer.MatchContext `json:"context"`
	Stats         analyzer.StatsBySide  `json:"statistics"`
	Events        []analyzer.MatchEvent `json:"-"`
	DisplayEvents []LiveEvent           `json:"events"`
}

// RadarService builds live snapshots from the provider feeds.
type RadarService struct {
	api    *apifootball.Client
	logger *logrus.Logger
}

// NewRadarService creates the live snapshot builder.
func NewRadarService(api *apifootball.Client, logger *logrus.Logger) *RadarService {
	return &RadarService{api: api, logger: logger}
}

// Snapshot assembles the current state of a fixture. A missing fixture is
// ErrFixtureNotFound; missing statistics or events degrade to empty data.
// The fixture record goes through the live cache: the score and elapsed
// minute must never be staler than the statistics they are analyzed with.
func (s *RadarService) Snapshot(ctx context.Context, gameID int) (*LiveSnapshot, error) {
	fixture, err := s.api.LiveFixtureByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if fixture == nil {
		return nil, ErrFixtureNotFound
	}
	matchCtx := fixture.MatchContext()

	rawStats, err := s.api.Statistics(ctx, gameID)
	if err != nil {
		s.logger.Warnf("live statistics unavailable for fixture %d: %v", gameID, err)
		rawStats = nil
	}
	stats := analyzer.NormalizeStats(apifootball.StatRecords(rawStats), matchCtx.HomeTeamID)

	rawEvents, err := s.api.Events(ctx, gameID)
	if err != nil {
		s.logger.Warnf("events unavailable for fixture %d: %v", gameID, err)
		rawEvents = nil
	}
	events := apifootball.MatchEvents(rawEvents)

	// Newest events first for the chat display.
	sorted := make([]analyzer.MatchEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Minute+sorted[i].Extra > sorted[j].Minute+sorted[j].Extra
	})

	display := make([]LiveEvent, 0, len(sorted))
	for _, ev := range sorted {
		display = append(display, LiveEvent{
			DisplayTime: displayTime(ev),
			Category:    string(ev.Kind),
			Detail:      ev.Detail,
			Player:      ev.Player,
		})
	}

	return &LiveSnapshot{
		Context:       matchCtx,
		Stats:         stats,
		Events:        events,
		DisplayEvents: display,
	}, nil
}

func displayTime(ev analyzer.MatchEvent) string {
	if ev.Extra > 0 {
		return fmt.Sprintf("%d+%d'", ev.Minute, ev.Extra)
	}
	return fmt.Sprintf("%d'", ev.Minute)
}
