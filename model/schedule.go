package model

// ScheduleCell is a single game seen from one team's side of the grid.
type ScheduleCell struct {
	GameID     int64  `json:"gameId"`
	Week       int    `json:"week"`
	OpponentID int64  `json:"opponentId"`
	Opponent   string `json:"opponent"` // empty when the opponent isn't in the roster
	Home       bool   `json:"home"`
	TeamScore  *int32 `json:"teamScore"`
	OppScore   *int32 `json:"oppScore"`
	Result     Result `json:"result"`
	Locked     bool   `json:"locked"`
	// Outcome from the team's point of view: "W", "L", "T" or "" when unplayed.
	Outcome string `json:"outcome"`
}

type ScheduleRow struct {
	Team Team `json:"team"`
	// Cells is indexed by week - 1. A week can hold more than one game, or none.
	Cells [][]ScheduleCell `json:"cells"`
}

type ConferenceSection struct {
	Conference string        `json:"conference"`
	Rows       []ScheduleRow `json:"rows"`
}

type ScheduleGrid struct {
	Season   int                 `json:"season"`
	Division Division            `json:"division"`
	Weeks    int                 `json:"weeks"`
	Sections []ConferenceSection `json:"sections"`
}

// TeamOutcome translates a game outcome into "W", "L", "T" or "" for the given team.
func (g *Game) TeamOutcome(teamID int64) string {
	o := g.Outcome()
	switch {
	case o == OutcomeTie:
		return "T"
	case o == OutcomeHomeWin && g.HomeTeamID == teamID, o == OutcomeAwayWin && g.AwayTeamID == teamID:
		return "W"
	case o == OutcomeHomeWin && g.AwayTeamID == teamID, o == OutcomeAwayWin && g.HomeTeamID == teamID:
		return "L"
	default:
		return ""
	}
}
