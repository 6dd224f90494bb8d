package analyzer

import (
	"strconv"
	"strings"
)

// statAliases maps each semantic key to the raw labels accepted for it,
// in priority order. Label spelling drifts between provider snapshots, so
// the first alias that matches wins and anything unmatched defaults to 0.
var statAliases = map[StatKey][]string{
	StatShotsOnTarget:  {"shots on goal", "shots on target"},
	StatShotsOffTarget: {"shots off goal", "shots off target"},
	StatShotsTotal:     {"total shots", "shots total", "shots"},
	StatCorners:        {"corner kicks", "corners"},
	StatPossessionPct:  {"ball possession", "possession"},
	StatFouls:          {"fouls"},
	StatYellowCards:    {"yellow cards"},
	StatRedCards:       {"red cards"},
	StatOffsides:       {"offsides"},
	StatSaves:          {"goalkeeper saves", "saves"},
}

// SafeInt coerces a raw statistic value to an integer. Percentage strings
// ("57%") lose the suffix, anything unparsable becomes 0. It never fails.
func SafeInt(v interface{}) int {
	switch t := v.(type) {
	case nil:
		return 0
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(t), "%"))
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

// NormalizeStats converts the raw per-team statistics payload into a
// normalized map per side. A record belongs to home iff its team id equals
// homeTeamID. Every semantic key is present in the result, defaulting to 0.
func NormalizeStats(records []TeamStatistics, homeTeamID int) StatsBySide {
	out := StatsBySide{
		Home: emptyTeamStats(),
		Away: emptyTeamStats(),
	}
	for _, rec := range records {
		byLabel := make(map[string]interface{}, len(rec.Entries))
		for _, e := range rec.Entries {
			label := strings.ToLower(strings.TrimSpace(e.Label))
			if label == "" {
				continue
			}
			if _, seen := byLabel[label]; !seen {
				byLabel[label] = e.Value
			}
		}

		stats := emptyTeamStats()
		for key, aliases := range statAliases {
			for _, alias := range aliases {
				if raw, ok := byLabel[alias]; ok {
					stats[key] = SafeInt(raw)
					break
				}
			}
		}

		if rec.TeamID == homeTeamID {
			out.Home = stats
		} else {
			out.Away = stats
		}
	}
	return out
}

func emptyTeamStats() TeamStats {
	stats := make(TeamStats, len(SemanticKeys))
	for _, key := range SemanticKeys {
		stats[key] = 0
	}
	return stats
}
