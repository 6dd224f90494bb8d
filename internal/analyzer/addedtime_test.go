package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateAddedTime_SecondHalfWindow(t *testing.T) {
	events := []MatchEvent{
		{Minute: 82, Kind: EventFoul},        // 15s
		{Minute: 84, Kind: EventYellowCard},  // 30s
		{Minute: 86, Kind: EventGoal},        // 60s
		{Minute: 88, Kind: EventVAR},         // 60s
		{Minute: 60, Kind: EventGoal},        // outside window
		{Minute: 85, Kind: EventSubstitution}, // unweighted
	}

	// 165s -> ceil to 3 minutes
	assert.Equal(t, 3, EstimateAddedTime(events, 89))
}

func TestEstimateAddedTime_FirstHalfWindow(t *testing.T) {
	events := []MatchEvent{
		{Minute: 36, Kind: EventFoul},
		{Minute: 44, Kind: EventFoul},
		{Minute: 41, Kind: EventYellowCard},
	}

	// 60s -> exactly 1 minute
	assert.Equal(t, 1, EstimateAddedTime(events, 43))
}

func TestEstimateAddedTime_OutsideWindows(t *testing.T) {
	events := []MatchEvent{{Minute: 60, Kind: EventGoal}}

	assert.Equal(t, 0, EstimateAddedTime(events, 60))
	assert.Equal(t, 0, EstimateAddedTime(events, 10))
}

func TestEstimateAddedTime_NoWeightedEvents(t *testing.T) {
	events := []MatchEvent{{Minute: 85, Kind: EventSubstitution}}
	assert.Equal(t, 0, EstimateAddedTime(events, 85))
	assert.Equal(t, 0, EstimateAddedTime(nil, 85))
}
