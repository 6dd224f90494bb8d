package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/services"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/pkg/utils"
)

// AnalysisHandler exposes the fixture and analysis pipeline over REST.
type AnalysisHandler struct {
	tipster *services.TipsterService
	logger  *logrus.Logger
}

// NewAnalysisHandler creates the REST analysis handler.
func NewAnalysisHandler(tipster *services.TipsterService, logger *logrus.Logger) *AnalysisHandler {
	return &AnalysisHandler{tipster: tipster, logger: logger}
}

type analyzeRequest struct {
	GameID int `json:"game_id" binding:"required"`
}

// ListFixtures returns the fixture menu for ?date (default: today, UTC).
func (h *AnalysisHandler) ListFixtures(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	games, err := h.tipster.TodayFixtures(c.Request.Context(), date)
	if err != nil {
		h.logger.Errorf("list fixtures for %s: %v", date, err)
		utils.SendUpstreamError(c, "Não foi possível carregar os jogos no momento.")
		return
	}
	utils.SendSuccess(c, games)
}

// ListLiveFixtures returns only the fixtures currently in play.
func (h *AnalysisHandler) ListLiveFixtures(c *gin.Context) {
	games, err := h.tipster.LiveFixtureList(c.Request.Context())
	if err != nil {
		h.logger.Errorf("list live fixtures: %v", err)
		utils.SendUpstreamError(c, "Não foi possível carregar os jogos ao vivo.")
		return
	}
	utils.SendSuccess(c, games)
}

// AnalyzeGame runs the pre-match pipeline for the posted game id.
func (h *AnalysisHandler) AnalyzeGame(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "game_id é obrigatório", err.Error())
		return
	}

	analysis, err := h.tipster.Analyze(c.Request.Context(), req.GameID)
	if err != nil {
		if errors.Is(err, services.ErrFixtureNotFound) {
			utils.SendNotFound(c, "Jogo não encontrado.")
			return
		}
		h.logger.Errorf("analyze fixture %d: %v", req.GameID, err)
		utils.SendUpstreamError(c, "Falha ao analisar o jogo.")
		return
	}
	utils.SendSuccess(c, analysis)
}

// AnalyzeLive runs the in-play pipeline for the game id in the path.
func (h *AnalysisHandler) AnalyzeLive(c *gin.Context) {
	gameID, err := strconv.Atoi(c.Param("id"))
	if err != nil || gameID <= 0 {
		utils.SendValidationError(c, "id de jogo inválido", c.Param("id"))
		return
	}

	analysis, err := h.tipster.AnalyzeLive(c.Request.Context(), gameID)
	if err != nil {
		if errors.Is(err, services.ErrFixtureNotFound) {
			utils.SendNotFound(c, "Jogo não encontrado ou não está ao vivo.")
			return
		}
		h.logger.Errorf("analyze live fixture %d: %v", gameID, err)
		utils.SendUpstreamError(c, "Falha ao analisar o jogo ao vivo.")
		return
	}
	utils.SendSuccess(c, analysis)
}
