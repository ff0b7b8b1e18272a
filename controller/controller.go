package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/cfb_rankings/cfbd"
	"github.com/mww/cfb_rankings/db"
	"github.com/mww/cfb_rankings/model"
)

// ErrSeasonNotLoaded is returned when there are no teams saved for a season.
var ErrSeasonNotLoaded = errors.New("season has not been loaded")

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Loads the teams and regular season games for a season from CFBD and
	// saves them. Results toggled by the user are kept.
	SyncSeason(ctx context.Context, year int) error
	ListTeams(ctx context.Context, year int, division model.Division) ([]model.Team, error)
	GetSchedule(ctx context.Context, year int, division model.Division) (*model.ScheduleGrid, error)
	// Moves the game to the next result (none -> win -> loss -> none) and
	// returns the updated game. Returns model.ErrGameLocked if the game
	// already has a score.
	ToggleGameResult(ctx context.Context, gameID int64) (*model.Game, error)
	// Clears all of the toggled results for a season.
	ResetResults(ctx context.Context, year int) error
	// Rank the teams in the division as of the end of week. If weights is nil
	// the controller's default weights are used.
	CalculateRankings(ctx context.Context, year, week int, division model.Division, weights *model.RankingWeights) (*model.RankingTable, error)
	// The weights used by CalculateRankings when none are given.
	DefaultWeights() model.RankingWeights
	RunPeriodicScheduleUpdates(year int, frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock   clock.Clock
	cfbd    cfbd.Client
	db      db.DB
	weights model.RankingWeights
}

func New(clock clock.Clock, cfbd cfbd.Client, db db.DB, weights model.RankingWeights) (C, error) {
	c := &controller{
		clock:   clock,
		cfbd:    cfbd,
		db:      db,
		weights: weights,
	}
	return c, nil
}
