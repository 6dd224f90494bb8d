package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeInt(t *testing.T) {
	assert.Equal(t, 0, SafeInt(nil))
	assert.Equal(t, 7, SafeInt(7))
	assert.Equal(t, 7, SafeInt(int64(7)))
	assert.Equal(t, 7, SafeInt(7.9))
	assert.Equal(t, 57, SafeInt("57%"))
	assert.Equal(t, 57, SafeInt(" 57 "))
	assert.Equal(t, 3, SafeInt("3.5"))
	assert.Equal(t, 0, SafeInt(""))
	assert.Equal(t, 0, SafeInt("n/a"))
	assert.Equal(t, 0, SafeInt([]string{"junk"}))
}

func TestNormalizeStats_ProviderPayload(t *testing.T) {
	records := []TeamStatistics{
		{
			TeamID: 1,
			Entries: []StatEntry{
				{Label: "Shots on Goal", Value: 5},
				{Label: "Total Shots", Value: "12"},
				{Label: "Ball Possession", Value: "61%"},
				{Label: "Corner Kicks", Value: 7.0},
				{Label: "Fouls", Value: nil},
			},
		},
		{
			TeamID: 2,
			Entries: []StatEntry{
				{Label: "Shots on Goal", Value: 2},
				{Label: "Total Shots", Value: 6},
				{Label: "Ball Possession", Value: "39%"},
			},
		},
	}

	stats := NormalizeStats(records, 1)

	assert.Equal(t, 5, stats.Home[StatShotsOnTarget])
	assert.Equal(t, 12, stats.Home[StatShotsTotal])
	assert.Equal(t, 61, stats.Home[StatPossessionPct])
	assert.Equal(t, 7, stats.Home[StatCorners])
	assert.Equal(t, 0, stats.Home[StatFouls])

	assert.Equal(t, 2, stats.Away[StatShotsOnTarget])
	assert.Equal(t, 6, stats.Away[StatShotsTotal])
}

func TestNormalizeStats_AllSemanticKeysAlwaysPresent(t *testing.T) {
	cases := map[string][]TeamStatistics{
		"nil records":   nil,
		"empty records": {},
		"garbage labels": {
			{TeamID: 1, Entries: []StatEntry{{Label: "Expected Goals", Value: "1.4"}, {Label: "", Value: 3}}},
		},
	}

	for name, records := range cases {
		t.Run(name, func(t *testing.T) {
			stats := NormalizeStats(records, 1)
			for _, key := range SemanticKeys {
				_, ok := stats.Home[key]
				require.True(t, ok, "home missing %s", key)
				_, ok = stats.Away[key]
				require.True(t, ok, "away missing %s", key)
			}
		})
	}
}

func TestNormalizeStats_SideAssignmentByTeamID(t *testing.T) {
	records := []TeamStatistics{
		{TeamID: 9, Entries: []StatEntry{{Label: "Total Shots", Value: 4}}},
		{TeamID: 1, Entries: []StatEntry{{Label: "Total Shots", Value: 11}}},
	}

	stats := NormalizeStats(records, 1)
	assert.Equal(t, 11, stats.Home[StatShotsTotal])
	assert.Equal(t, 4, stats.Away[StatShotsTotal])
}

func TestNormalizeStats_FirstLabelWins(t *testing.T) {
	records := []TeamStatistics{
		{TeamID: 1, Entries: []StatEntry{
			{Label: "Total Shots", Value: 10},
			{Label: "total shots", Value: 3},
		}},
	}

	stats := NormalizeStats(records, 1)
	assert.Equal(t, 10, stats.Home[StatShotsTotal])
}
