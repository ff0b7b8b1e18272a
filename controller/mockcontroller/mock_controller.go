package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/mww/cfb_rankings/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) SyncSeason(ctx context.Context, year int) error {
	args := c.Called(ctx, year)
	return args.Error(0)
}

func (c *C) ListTeams(ctx context.Context, year int, division model.Division) ([]model.Team, error) {
	args := c.Called(ctx, year, division)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}

func (c *C) GetSchedule(ctx context.Context, year int, division model.Division) (*model.ScheduleGrid, error) {
	args := c.Called(ctx, year, division)

	var res *model.ScheduleGrid
	if args.Get(0) != nil {
		res = args.Get(0).(*model.ScheduleGrid)
	}

	return res, args.Error(1)
}

func (c *C) ToggleGameResult(ctx context.Context, gameID int64) (*model.Game, error) {
	args := c.Called(ctx, gameID)

	var res *model.Game
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Game)
	}

	return res, args.Error(1)
}

func (c *C) ResetResults(ctx context.Context, year int) error {
	args := c.Called(ctx, year)
	return args.Error(0)
}

func (c *C) CalculateRankings(ctx context.Context, year, week int, division model.Division, weights *model.RankingWeights) (*model.RankingTable, error) {
	args := c.Called(ctx, year, week, division, weights)

	var res *model.RankingTable
	if args.Get(0) != nil {
		res = args.Get(0).(*model.RankingTable)
	}

	return res, args.Error(1)
}

func (c *C) DefaultWeights() model.RankingWeights {
	args := c.Called()
	return args.Get(0).(model.RankingWeights)
}

func (c *C) RunPeriodicScheduleUpdates(year int, frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(year, frequency, shutdown, wg)
}
