package services

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/analyzer"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/providers/apifootball"
)

// PlayerAnalysis is the per-player aggregation result.
type PlayerAnalysis struct {
	PlayerInfo      PlayerHeader              `json:"player_info"`
	KeyStats        map[string]string         `json:"key_stats"`
	Recommendations []analyzer.Recommendation `json:"recommendations"`
}

// PlayerHeader identifies the analyzed player.
type PlayerHeader struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

// OptaService aggregates player-level season statistics into per-game
// averages and a scoring recommendation. It mirrors the game-level
// heuristics structurally but stays deliberately shallow.
type OptaService struct {
	api    *apifootball.Client
	season int
	logger *logrus.Logger
}

// NewOptaService creates the player analyzer for one season.
func NewOptaService(api *apifootball.Client, season int, logger *logrus.Logger) *OptaService {
	return &OptaService{api: api, season: season, logger: logger}
}

// AnalyzePlayer aggregates every season row with appearances into per-game
// averages; nil when the player is unknown upstream.
func (s *OptaService) AnalyzePlayer(ctx context.Context, playerID int) (*PlayerAnalysis, error) {
	player, err := s.api.Player(ctx, playerID, s.season)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, nil
	}

	totalGames := 0
	totalGoals := 0.0
	totalShotsOn := 0.0
	totalAssists := 0.0
	team := ""
	for _, row := range player.Statistics {
		if row.Games.Appearances <= 0 {
			continue
		}
		totalGames += row.Games.Appearances
		totalGoals += float64(intOrZero(row.Goals.Total))
		totalAssists += float64(intOrZero(row.Goals.Assists))
		totalShotsOn += float64(intOrZero(row.Shots.On))
		if team == "" {
			team = row.Team.Name
		}
	}

	result := &PlayerAnalysis{
		PlayerInfo: PlayerHeader{Name: player.Player.Name, Team: team},
		KeyStats:   map[string]string{},
	}
	if totalGames == 0 {
		return result, nil
	}

	avgGoals := totalGoals / float64(totalGames)
	avgShotsOn := totalShotsOn / float64(totalGames)
	result.KeyStats["Gols (média/jogo)"] = fmt.Sprintf("%.2f", avgGoals)
	result.KeyStats["Chutes no Gol (m/jogo)"] = fmt.Sprintf("%.2f", avgShotsOn)
	result.KeyStats["Assistências (m/jogo)"] = fmt.Sprintf("%.2f", totalAssists/float64(totalGames))

	if avgGoals > 0.35 {
		result.Recommendations = append(result.Recommendations, analyzer.Recommendation{
			Market:         "player_to_score",
			Recommendation: "Sim",
			Confidence:     math.Min(0.95, avgGoals/0.7),
			Reason:         fmt.Sprintf("média de %.2f gols por jogo", avgGoals),
		})
	}
	return result, nil
}

// TeamHighlight analyzes the first squad member of a team as the featured
// player for the pre-match report; nil when no analysis is possible.
func (s *OptaService) TeamHighlight(ctx context.Context, teamID int) (*PlayerAnalysis, error) {
	squad, err := s.api.Squad(ctx, teamID)
	if err != nil || len(squad) == 0 {
		return nil, err
	}
	return s.AnalyzePlayer(ctx, squad[0].ID)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
