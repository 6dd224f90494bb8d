package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// BotService turns inbound chat commands into formatted replies. It is
// transport-agnostic: the webhook handlers only pass strings in and out.
type BotService struct {
	tipster  *TipsterService
	opta     *OptaService
	sessions *SessionStore
	logger   *logrus.Logger
	today    func() string
}

// NewBotService wires the conversational layer.
func NewBotService(tipster *TipsterService, opta *OptaService, sessions *SessionStore, logger *logrus.Logger) *BotService {
	return &BotService{
		tipster:  tipster,
		opta:     opta,
		sessions: sessions,
		logger:   logger,
		today: func() string {
			return time.Now().UTC().Format("2006-01-02")
		},
	}
}

// HandleCommand processes one inbound message and returns the reply body.
// It never returns an empty string; unknown input gets the help text.
func (s *BotService) HandleCommand(ctx context.Context, from, body string) string {
	text := strings.ToLower(strings.TrimSpace(body))

	switch {
	case strings.HasPrefix(text, "jogos"):
		return s.handleGames(ctx, from)
	case strings.HasPrefix(text, "analisar"):
		return s.handleAnalyze(ctx, from, text)
	case strings.HasPrefix(text, "ao vivo"):
		return s.handleLive(ctx, from, text)
	case strings.HasPrefix(text, "jogador"):
		return s.handlePlayer(ctx, text)
	default:
		return helpMessage
	}
}

func (s *BotService) handleGames(ctx context.Context, from string) string {
	games, err := s.tipster.TodayFixtures(ctx, s.today())
	if err != nil {
		s.logger.Errorf("fixture list for %s: %v", from, err)
		return "Não consegui buscar os jogos agora. Tente novamente em instantes."
	}
	if len(games) == 0 {
		return "Nenhum jogo encontrado para hoje."
	}
	s.sessions.SetGames(from, games)
	return FormatGamesList(games)
}

func (s *BotService) handleAnalyze(ctx context.Context, from, text string) string {
	game, reply := s.resolveGame(from, text, "analisar 1")
	if reply != "" {
		return reply
	}

	analysis, err := s.tipster.Analyze(ctx, game.ID)
	if errors.Is(err, ErrFixtureNotFound) {
		return "Nenhum dado encontrado para este jogo."
	}
	if err != nil {
		s.logger.Errorf("analyze fixture %d: %v", game.ID, err)
		return "Não consegui analisar este jogo agora. Tente novamente em instantes."
	}

	var players []*PlayerAnalysis
	if s.opta != nil {
		highlight, err := s.opta.TeamHighlight(ctx, analysis.HomeTeamID)
		if err != nil {
			s.logger.Warnf("player highlight for fixture %d: %v", game.ID, err)
		} else if highlight != nil {
			players = append(players, highlight)
		}
	}

	return FormatPreGameAnalysis(analysis, players)
}

func (s *BotService) handleLive(ctx context.Context, from, text string) string {
	game, reply := s.resolveGame(from, text, "ao vivo 1")
	if reply != "" {
		return reply
	}

	live, err := s.tipster.AnalyzeLive(ctx, game.ID)
	if errors.Is(err, ErrFixtureNotFound) {
		return "Nenhum jogo ao vivo encontrado para este índice."
	}
	if err != nil {
		s.logger.Errorf("live analysis fixture %d: %v", game.ID, err)
		return "Não consegui buscar os dados ao vivo agora. Tente novamente em instantes."
	}
	return FormatLiveAnalysis(live)
}

func (s *BotService) handlePlayer(ctx context.Context, text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return "Comando inválido. Use o formato: *jogador 874*"
	}
	playerID, err := strconv.Atoi(fields[1])
	if err != nil {
		return "Comando inválido. Use o formato: *jogador 874*"
	}
	if s.opta == nil {
		return "Análise de jogadores indisponível no momento."
	}

	player, err := s.opta.AnalyzePlayer(ctx, playerID)
	if err != nil {
		s.logger.Errorf("player analysis %d: %v", playerID, err)
		return "Não consegui buscar os dados do jogador agora."
	}
	return FormatPlayerAnalysis(player)
}

// resolveGame parses the trailing menu index and looks it up in the user's
// session. The second return value is a ready error reply, empty on success.
func (s *BotService) resolveGame(from, text, example string) (GameRef, string) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return GameRef{}, "Comando inválido. Use o formato: *" + example + "*"
	}
	index, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return GameRef{}, "Comando inválido. Use o formato: *" + example + "*"
	}
	game, ok := s.sessions.Game(from, index)
	if !ok {
		return GameRef{}, "Índice de jogo inválido. Envie 'jogos' primeiro."
	}
	return game, ""
}
