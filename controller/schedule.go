package controller

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/mww/cfb_rankings/model"
)

func (c *controller) GetSchedule(ctx context.Context, year int, division model.Division) (*model.ScheduleGrid, error) {
	teams, err := c.db.ListTeams(ctx, year, division)
	if err != nil {
		return nil, fmt.Errorf("error getting teams for %d: %w", year, err)
	}

	games, err := c.db.ListGames(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("error getting games for %d: %w", year, err)
	}

	return buildScheduleGrid(year, division, teams, games), nil
}

// buildScheduleGrid lays the games out as one row per team and one column per
// week. Rows are grouped by conference, conferences sorted by name.
func buildScheduleGrid(year int, division model.Division, teams []model.Team, games []model.Game) *model.ScheduleGrid {
	names := make(map[int64]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	weeks := 1
	for _, g := range games {
		_, home := names[g.HomeTeamID]
		_, away := names[g.AwayTeamID]
		if (home || away) && g.Week > weeks {
			weeks = g.Week
		}
	}

	var sections []model.ConferenceSection
	byConference := make(map[string]int)
	for _, t := range teams {
		row := model.ScheduleRow{
			Team:  t,
			Cells: make([][]model.ScheduleCell, weeks),
		}
		for i := range games {
			g := &games[i]
			if !g.Involves(t.ID) || g.Week < 1 || g.HomeTeamID == g.AwayTeamID {
				continue
			}
			row.Cells[g.Week-1] = append(row.Cells[g.Week-1], newScheduleCell(g, t.ID, names))
		}

		idx, found := byConference[t.Conference]
		if !found {
			idx = len(sections)
			byConference[t.Conference] = idx
			sections = append(sections, model.ConferenceSection{Conference: t.Conference})
		}
		sections[idx].Rows = append(sections[idx].Rows, row)
	}

	slices.SortStableFunc(sections, func(a, b model.ConferenceSection) int {
		return cmp.Compare(a.Conference, b.Conference)
	})

	return &model.ScheduleGrid{
		Season:   year,
		Division: division,
		Weeks:    weeks,
		Sections: sections,
	}
}

func newScheduleCell(g *model.Game, teamID int64, names map[int64]string) model.ScheduleCell {
	cell := model.ScheduleCell{
		GameID:  g.ID,
		Week:    g.Week,
		Home:    g.HomeTeamID == teamID,
		Result:  g.Result,
		Locked:  g.IsLocked(),
		Outcome: g.TeamOutcome(teamID),
	}

	if cell.Home {
		cell.OpponentID = g.AwayTeamID
		cell.TeamScore, cell.OppScore = g.HomeScore, g.AwayScore
	} else {
		cell.OpponentID = g.HomeTeamID
		cell.TeamScore, cell.OppScore = g.AwayScore, g.HomeScore
	}
	cell.Opponent = names[cell.OpponentID]

	return cell
}
