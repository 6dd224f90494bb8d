package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/analyzer"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/odds"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/providers/apifootball"
)

// ErrFixtureNotFound signals that the upstream has no record for the
// requested game; callers translate it into user-facing text.
var ErrFixtureNotFound = errors.New("fixture not found")

// GameRef is one entry of the fixture menu shown to a user.
type GameRef struct {
	ID     int    `json:"game_id"`
	Home   string `json:"home"`
	Away   string `json:"away"`
	League string `json:"league"`
	Live   bool   `json:"live"`
}

// Analysis is the pre-match result for one fixture.
type Analysis struct {
	GameID      int                       `json:"game_id"`
	HomeTeamID  int                       `json:"home_team_id"`
	Summary     analyzer.Summary          `json:"summary"`
	Predictions []analyzer.Recommendation `json:"predictions"`
	Top3        []analyzer.Recommendation `json:"top3"`
}

// LiveAnalysis bundles the live snapshot with the derived tips.
type LiveAnalysis struct {
	Snapshot  *LiveSnapshot             `json:"snapshot"`
	Tips      []analyzer.Recommendation `json:"tips"`
	AddedTime int                       `json:"added_time_estimate"`
}

// TipsterService orchestrates the full analysis pipeline: fixture lookup,
// statistics normalization, heuristics and odds enrichment.
type TipsterService struct {
	api        *apifootball.Client
	radar      *RadarService
	enricher   *odds.Enricher
	thresholds analyzer.Thresholds
	logger     *logrus.Logger
}

// NewTipsterService wires the analysis pipeline.
func NewTipsterService(api *apifootball.Client, radar *RadarService, enricher *odds.Enricher, thresholds analyzer.Thresholds, logger *logrus.Logger) *TipsterService {
	return &TipsterService{
		api:        api,
		radar:      radar,
		enricher:   enricher,
		thresholds: thresholds,
		logger:     logger,
	}
}

// Analyze runs the pre-match pipeline for one fixture. A missing fixture
// yields ErrFixtureNotFound; partial upstream failures degrade to an
// analysis without statistics or odds rather than an error.
func (s *TipsterService) Analyze(ctx context.Context, gameID int) (*Analysis, error) {
	fixture, err := s.api.FixtureByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if fixture == nil {
		return nil, ErrFixtureNotFound
	}
	matchCtx := fixture.MatchContext()

	rawStats, err := s.api.Statistics(ctx, gameID)
	if err != nil {
		s.logger.Warnf("statistics unavailable for fixture %d: %v", gameID, err)
		rawStats = nil
	}
	stats := analyzer.NormalizeStats(apifootball.StatRecords(rawStats), matchCtx.HomeTeamID)

	recs, summary := analyzer.HeuristicsWithThresholds(matchCtx, stats, s.thresholds)

	rawOdds, err := s.api.Odds(ctx, gameID)
	if err != nil {
		s.logger.Warnf("odds unavailable for fixture %d: %v", gameID, err)
		rawOdds = nil
	}
	recs = s.enricher.Enrich(recs, apifootball.BookmakerQuotes(rawOdds))

	return &Analysis{
		GameID:      gameID,
		HomeTeamID:  matchCtx.HomeTeamID,
		Summary:     summary,
		Predictions: recs,
		Top3:        analyzer.TopN(recs, 3),
	}, nil
}

// AnalyzeLive runs the in-play pipeline: radar snapshot, live heuristics,
// added-time estimate and odds enrichment.
func (s *TipsterService) AnalyzeLive(ctx context.Context, gameID int) (*LiveAnalysis, error) {
	snapshot, err := s.radar.Snapshot(ctx, gameID)
	if err != nil {
		return nil, err
	}

	tips := analyzer.LiveHeuristicsWithThresholds(snapshot.Context, snapshot.Stats, s.thresholds)

	rawOdds, err := s.api.Odds(ctx, gameID)
	if err != nil {
		s.logger.Warnf("odds unavailable for live fixture %d: %v", gameID, err)
		rawOdds = nil
	}
	tips = s.enricher.Enrich(tips, apifootball.BookmakerQuotes(rawOdds))

	return &LiveAnalysis{
		Snapshot:  snapshot,
		Tips:      tips,
		AddedTime: analyzer.EstimateAddedTime(snapshot.Events, snapshot.Context.Elapsed),
	}, nil
}

// TodayFixtures lists live fixtures first, then the given date's schedule,
// deduplicated by fixture id.
func (s *TipsterService) TodayFixtures(ctx context.Context, date string) ([]GameRef, error) {
	var games []GameRef
	seen := make(map[int]bool)

	live, err := s.api.LiveFixtures(ctx)
	if err != nil {
		s.logger.Warnf("live fixtures unavailable: %v", err)
	}
	for _, f := range live {
		if seen[f.Fixture.ID] {
			continue
		}
		seen[f.Fixture.ID] = true
		games = append(games, gameRef(f, true))
	}

	scheduled, err := s.api.FixturesByDate(ctx, date)
	if err != nil {
		if len(games) == 0 {
			return nil, err
		}
		s.logger.Warnf("scheduled fixtures unavailable: %v", err)
	}
	for _, f := range scheduled {
		if seen[f.Fixture.ID] {
			continue
		}
		seen[f.Fixture.ID] = true
		games = append(games, gameRef(f, f.IsLive()))
	}

	return games, nil
}

// LiveFixtureList lists only the fixtures currently in play.
func (s *TipsterService) LiveFixtureList(ctx context.Context) ([]GameRef, error) {
	live, err := s.api.LiveFixtures(ctx)
	if err != nil {
		return nil, err
	}
	games := make([]GameRef, 0, len(live))
	for _, f := range live {
		games = append(games, gameRef(f, true))
	}
	return games, nil
}

func gameRef(f apifootball.FixtureData, live bool) GameRef {
	return GameRef{
		ID:     f.Fixture.ID,
		Home:   f.Teams.Home.Name,
		Away:   f.Teams.Away.Name,
		League: f.League.Name,
		Live:   live,
	}
}
