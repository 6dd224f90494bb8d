package analyzer

// Stoppage contribution, in seconds, per in-window event. VAR reviews count
// their actual duration when known, with a 60s floor.
const (
	stoppageFoulSeconds   = 15
	stoppageYellowSeconds = 30
	stoppageGoalSeconds   = 60
	stoppageVARSeconds    = 60
)

type addedTimeWindow struct {
	from, to int
}

// Estimation windows: the run-up to each half's stoppage announcement.
var addedTimeWindows = []addedTimeWindow{
	{35, 45},
	{80, 90},
}

// EstimateAddedTime predicts the stoppage minutes for the half currently in
// progress by summing weighted contributions of events inside the active
// window, rounded up to whole minutes. Outside both windows it returns 0.
// The estimate is display-only and never becomes a market recommendation.
func EstimateAddedTime(events []MatchEvent, elapsed int) int {
	var window *addedTimeWindow
	for i := range addedTimeWindows {
		w := addedTimeWindows[i]
		if elapsed >= w.from && elapsed <= w.to {
			window = &w
			break
		}
	}
	if window == nil {
		return 0
	}

	seconds := 0
	for _, ev := range events {
		if ev.Minute < window.from || ev.Minute > window.to {
			continue
		}
		switch ev.Kind {
		case EventFoul:
			seconds += stoppageFoulSeconds
		case EventYellowCard, EventRedCard:
			seconds += stoppageYellowSeconds
		case EventGoal:
			seconds += stoppageGoalSeconds
		case EventVAR:
			seconds += stoppageVARSeconds
		}
	}

	if seconds == 0 {
		return 0
	}
	return (seconds + 59) / 60
}
