package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/services"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/pkg/utils"
)

// PlayerHandler exposes the player aggregation over REST.
type PlayerHandler struct {
	opta   *services.OptaService
	logger *logrus.Logger
}

// NewPlayerHandler creates the REST player handler.
func NewPlayerHandler(opta *services.OptaService, logger *logrus.Logger) *PlayerHandler {
	return &PlayerHandler{opta: opta, logger: logger}
}

// AnalyzePlayer returns season averages and the scoring recommendation for
// the player id in the path.
func (h *PlayerHandler) AnalyzePlayer(c *gin.Context) {
	playerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || playerID <= 0 {
		utils.SendValidationError(c, "id de jogador inválido", c.Param("id"))
		return
	}

	analysis, err := h.opta.AnalyzePlayer(c.Request.Context(), playerID)
	if err != nil {
		h.logger.Errorf("analyze player %d: %v", playerID, err)
		utils.SendUpstreamError(c, "Falha ao analisar o jogador.")
		return
	}
	if analysis == nil {
		utils.SendNotFound(c, "Jogador não encontrado.")
		return
	}
	utils.SendSuccess(c, analysis)
}
