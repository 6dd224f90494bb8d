package services

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testBot() *BotService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewBotService(nil, nil, NewSessionStore(30*time.Minute), logger)
}

func TestHandleCommand_UnknownInputGetsHelp(t *testing.T) {
	bot := testBot()

	for _, body := range []string{"", "oi", "menu", "quero apostar"} {
		reply := bot.HandleCommand(context.Background(), "user", body)
		assert.Equal(t, helpMessage, reply, "body %q", body)
	}
}

func TestHandleCommand_AnalyzeWithoutIndex(t *testing.T) {
	bot := testBot()

	reply := bot.HandleCommand(context.Background(), "user", "analisar")
	assert.Equal(t, "Comando inválido. Use o formato: *analisar 1*", reply)

	reply = bot.HandleCommand(context.Background(), "user", "analisar abc")
	assert.Equal(t, "Comando inválido. Use o formato: *analisar 1*", reply)
}

func TestHandleCommand_AnalyzeWithoutSession(t *testing.T) {
	bot := testBot()

	reply := bot.HandleCommand(context.Background(), "user", "analisar 1")
	assert.Equal(t, "Índice de jogo inválido. Envie 'jogos' primeiro.", reply)
}

func TestHandleCommand_LiveWithoutSession(t *testing.T) {
	bot := testBot()

	reply := bot.HandleCommand(context.Background(), "user", "ao vivo 2")
	assert.Equal(t, "Índice de jogo inválido. Envie 'jogos' primeiro.", reply)

	reply = bot.HandleCommand(context.Background(), "user", "ao vivo")
	assert.Equal(t, "Comando inválido. Use o formato: *ao vivo 1*", reply)
}

func TestHandleCommand_PlayerNeedsNumericID(t *testing.T) {
	bot := testBot()

	reply := bot.HandleCommand(context.Background(), "user", "jogador")
	assert.Equal(t, "Comando inválido. Use o formato: *jogador 874*", reply)

	reply = bot.HandleCommand(context.Background(), "user", "jogador neymar")
	assert.Equal(t, "Comando inválido. Use o formato: *jogador 874*", reply)
}

func TestHandleCommand_PlayerWithoutOptaService(t *testing.T) {
	bot := testBot()

	reply := bot.HandleCommand(context.Background(), "user", "jogador 874")
	assert.Equal(t, "Análise de jogadores indisponível no momento.", reply)
}

func TestHandleCommand_NormalizesCaseAndSpacing(t *testing.T) {
	bot := testBot()

	reply := bot.HandleCommand(context.Background(), "user", "  ANALISAR 1  ")
	assert.Equal(t, "Índice de jogo inválido. Envie 'jogos' primeiro.", reply)
}
