package mockdb

import (
	"context"

	"github.com/mww/cfb_rankings/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) SaveTeams(ctx context.Context, season int, teams []model.Team) error {
	args := db.Called(ctx, season, teams)
	return args.Error(0)
}

func (db *DB) ListTeams(ctx context.Context, season int, division model.Division) ([]model.Team, error) {
	args := db.Called(ctx, season, division)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) SaveGames(ctx context.Context, games []model.Game) error {
	args := db.Called(ctx, games)
	return args.Error(0)
}

func (db *DB) GetGame(ctx context.Context, id int64) (*model.Game, error) {
	args := db.Called(ctx, id)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}

	return g, args.Error(1)
}

func (db *DB) ListGames(ctx context.Context, season int) ([]model.Game, error) {
	args := db.Called(ctx, season)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) SaveGameResult(ctx context.Context, id int64, prev, next model.Result) error {
	args := db.Called(ctx, id, prev, next)
	return args.Error(0)
}

func (db *DB) ResetResults(ctx context.Context, season int) error {
	args := db.Called(ctx, season)
	return args.Error(0)
}
