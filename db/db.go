package db

import (
	"context"

	"github.com/mww/cfb_rankings/model"
)

type DB interface {
	// Inserts or updates the teams for a season.
	SaveTeams(ctx context.Context, season int, teams []model.Team) error
	// Lists the teams for a season sorted by name. DivisionUnknown lists every team.
	ListTeams(ctx context.Context, season int, division model.Division) ([]model.Team, error)

	// Inserts or updates games. A user applied result on an existing game is
	// never overwritten.
	SaveGames(ctx context.Context, games []model.Game) error
	GetGame(ctx context.Context, id int64) (*model.Game, error)
	// Lists all of the games for a season ordered by week.
	ListGames(ctx context.Context, season int) ([]model.Game, error)
	// Moves the game from the prev result to next. Only succeeds if the game
	// still has the prev result and no score. Returns model.ErrGameLocked if a
	// score has been recorded and ErrResultChanged if the result is no longer prev.
	SaveGameResult(ctx context.Context, id int64, prev, next model.Result) error
	// Clears every user applied result for a season.
	ResetResults(ctx context.Context, season int) error
}
