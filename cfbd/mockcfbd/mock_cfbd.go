package mockcfbd

import (
	"context"

	"github.com/mww/cfb_rankings/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadTeams(ctx context.Context, year int) ([]model.Team, error) {
	args := c.Called(ctx, year)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}

func (c *Client) LoadGames(ctx context.Context, year int, seasonType string) ([]model.Game, error) {
	args := c.Called(ctx, year, seasonType)

	var res []model.Game
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Game)
	}

	return res, args.Error(1)
}
