package cfbd

import (
	"strings"

	"github.com/mww/cfb_rankings/model"
)

type cfbdTeam struct {
	ID             int64  `json:"id"`
	School         string `json:"school"`
	Mascot         string `json:"mascot"`
	Abbreviation   string `json:"abbreviation"`
	Conference     string `json:"conference"`
	Classification string `json:"classification"`
}

func (t *cfbdTeam) toTeam() (model.Team, bool) {
	div := model.ParseDivision(t.Classification)
	name := strings.TrimSpace(t.School)
	if t.ID == 0 || name == "" || div == model.DivisionUnknown {
		return model.Team{}, false
	}

	return model.Team{
		ID:         t.ID,
		Name:       name,
		Conference: strings.TrimSpace(t.Conference),
		Division:   div,
	}, true
}

type cfbdGame struct {
	ID         int64  `json:"id"`
	Season     int    `json:"season"`
	Week       int    `json:"week"`
	SeasonType string `json:"seasonType"`
	Completed  bool   `json:"completed"`
	HomeID     int64  `json:"homeId"`
	HomeTeam   string `json:"homeTeam"`
	HomePoints *int32 `json:"homePoints"`
	AwayID     int64  `json:"awayId"`
	AwayTeam   string `json:"awayTeam"`
	AwayPoints *int32 `json:"awayPoints"`
}

func (g *cfbdGame) toGame() (model.Game, bool) {
	if g.ID == 0 || g.HomeID == 0 || g.AwayID == 0 || g.Week < 0 {
		return model.Game{}, false
	}

	// Week 0 games are played the weekend before week 1 and are counted with it.
	week := g.Week
	if week == 0 {
		week = 1
	}

	game := model.Game{
		ID:         g.ID,
		Season:     g.Season,
		Week:       week,
		HomeTeamID: g.HomeID,
		AwayTeamID: g.AwayID,
	}

	// In progress games can have points, only keep the final score.
	if g.Completed && g.HomePoints != nil && g.AwayPoints != nil {
		game.HomeScore = model.Score(*g.HomePoints)
		game.AwayScore = model.Score(*g.AwayPoints)
	}
	return game, true
}
