package services

import (
	"fmt"
	"strings"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/analyzer"
)

// WhatsApp text formatting for the bot replies. Labels follow the
// Portuguese copy the users already know.

const helpMessage = "Olá! Envie *jogos* para ver a lista de partidas.\n" +
	"Depois responda com *analisar <n>*, *ao vivo <n>* ou *jogador <id>*."

// FormatGamesList renders the fixture menu, capped at 20 entries.
func FormatGamesList(games []GameRef) string {
	if len(games) == 0 {
		return "Nenhum jogo encontrado para hoje."
	}
	lines := []string{"*Jogos de hoje:*"}
	for i, game := range games {
		if i >= 20 {
			break
		}
		marker := ""
		if game.Live {
			marker = " ⚡"
		}
		lines = append(lines, fmt.Sprintf("%d. %s x %s (%s)%s", i+1, game.Home, game.Away, game.League, marker))
	}
	lines = append(lines, "", "Responda com 'analisar <n>' ou 'ao vivo <n>'")
	return strings.Join(lines, "\n")
}

// FormatPreGameAnalysis renders the full pre-match report: match tips plus
// the featured-player section.
func FormatPreGameAnalysis(analysis *Analysis, players []*PlayerAnalysis) string {
	if analysis == nil {
		return "Não foi possível obter a análise para este jogo."
	}
	summary := analysis.Summary
	lines := []string{fmt.Sprintf("Análise Completa: *%s vs %s*", summary.HomeTeam, summary.AwayTeam)}

	lines = append(lines, "", "*🤖 Análise da Partida (TipsterIA)*")
	for _, pick := range analysis.Top3 {
		market := strings.Title(strings.ReplaceAll(string(pick.Market), "_", " "))
		line := fmt.Sprintf("- *%s*: %s (Confiança: %.0f%%)", market, pick.Recommendation, pick.Confidence*100)
		if pick.BestOdd != nil && pick.BestBook != "" {
			line += fmt.Sprintf(" - Odd *%.2f* na %s", *pick.BestOdd, strings.Title(pick.BestBook))
		}
		lines = append(lines, line)
	}
	lines = append(lines, fmt.Sprintf("Poder ofensivo: casa %.2f / visitante %.2f", summary.HomePower, summary.AwayPower))

	lines = append(lines, "", "*👤 Jogadores em Destaque (OptaIA)*")
	hasPlayer := false
	for _, player := range players {
		if player == nil || player.PlayerInfo.Name == "" {
			continue
		}
		hasPlayer = true
		lines = append(lines, "", fmt.Sprintf("*%s* (%s)", player.PlayerInfo.Name, player.PlayerInfo.Team))
		if len(player.Recommendations) == 0 {
			lines = append(lines, "  - Sem dicas de aposta específicas.")
			continue
		}
		for _, rec := range player.Recommendations {
			lines = append(lines, fmt.Sprintf("  - *%s*: %s", rec.Market, rec.Recommendation))
		}
	}
	if !hasPlayer {
		lines = append(lines, "_Nenhuma análise de jogador disponível._")
	}

	lines = append(lines, "", "_Lembre-se: analise por conta própria. Odds podem variar._")
	return strings.Join(lines, "\n")
}

// FormatLiveAnalysis renders the in-play report: scoreline, key counts,
// tips, the added-time estimate and the most recent events.
func FormatLiveAnalysis(live *LiveAnalysis) string {
	if live == nil || live.Snapshot == nil {
		return "Não foi possível obter os dados ao vivo para este jogo."
	}
	snap := live.Snapshot
	ctx := snap.Context
	home := snap.Stats.Home
	away := snap.Stats.Away

	lines := []string{
		fmt.Sprintf("Ao Vivo: *%s %d x %d %s* (%d')", ctx.HomeTeam, ctx.HomeGoals, ctx.AwayGoals, ctx.AwayTeam, ctx.Elapsed),
		"---",
		fmt.Sprintf("Posse: *%d%%* / *%d%%*", home[analyzer.StatPossessionPct], away[analyzer.StatPossessionPct]),
		fmt.Sprintf("Chutes: *%d* / *%d*", home[analyzer.StatShotsTotal], away[analyzer.StatShotsTotal]),
		fmt.Sprintf("Escanteios: *%d* / *%d*", home[analyzer.StatCorners], away[analyzer.StatCorners]),
		"---",
	}

	if len(live.Tips) > 0 {
		lines = append(lines, "*📡 Dicas ao Vivo (RadarIA)*")
		for _, tip := range live.Tips {
			line := fmt.Sprintf("- *%s* (Confiança: %.0f%%) — %s", tip.Recommendation, tip.Confidence*100, tip.Reason)
			if tip.BestOdd != nil && tip.BestBook != "" {
				line += fmt.Sprintf(" - Odd *%.2f* na %s", *tip.BestOdd, strings.Title(tip.BestBook))
			}
			lines = append(lines, line)
		}
	}
	if live.AddedTime > 0 {
		lines = append(lines, fmt.Sprintf("⏱️ Acréscimos estimados: +%d min", live.AddedTime))
	}

	lines = append(lines, "*Eventos Recentes:*")
	if len(snap.DisplayEvents) == 0 {
		lines = append(lines, "_Sem eventos registrados._")
	}
	for i, event := range snap.DisplayEvents {
		if i >= 3 {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s *%s*: %s", event.DisplayTime, event.Category, event.Detail))
	}

	return strings.Join(lines, "\n")
}

// FormatPlayerAnalysis renders the standalone player report.
func FormatPlayerAnalysis(player *PlayerAnalysis) string {
	if player == nil || player.PlayerInfo.Name == "" {
		return "Nenhum dado encontrado para este jogador."
	}
	lines := []string{fmt.Sprintf("👤 *%s* (%s)", player.PlayerInfo.Name, player.PlayerInfo.Team)}
	for label, value := range player.KeyStats {
		lines = append(lines, fmt.Sprintf("%s: *%s*", label, value))
	}
	for _, rec := range player.Recommendations {
		lines = append(lines, fmt.Sprintf("- *%s*: %s (%.0f%%)", rec.Market, rec.Recommendation, rec.Confidence*100))
	}
	return strings.Join(lines, "\n")
}
