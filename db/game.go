package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mww/cfb_rankings/model"
)

const gameColumns = `id, season, week, home_team, away_team, home_score, away_score, result`

func (db *postgresDB) SaveGames(ctx context.Context, games []model.Game) error {
	// result is left out of the update so a toggle made by the user survives
	// a refresh from the data source.
	const query = `INSERT INTO games (
		id,
		season,
		week,
		home_team,
		away_team,
		home_score,
		away_score,
		result
	) VALUES (
		@id,
		@season,
		@week,
		@homeTeam,
		@awayTeam,
		@homeScore,
		@awayScore,
		@result
	) ON CONFLICT (id) DO UPDATE
		SET season=EXCLUDED.season,
			week=EXCLUDED.week,
			home_team=EXCLUDED.home_team,
			away_team=EXCLUDED.away_team,
			home_score=EXCLUDED.home_score,
			away_score=EXCLUDED.away_score,
			updated=@updated`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	updated := db.now()
	for _, g := range games {
		args := pgx.NamedArgs{
			"id":        g.ID,
			"season":    g.Season,
			"week":      g.Week,
			"homeTeam":  g.HomeTeamID,
			"awayTeam":  g.AwayTeamID,
			"homeScore": g.HomeScore,
			"awayScore": g.AwayScore,
			"result":    &DBResult{result: g.Result},
			"updated":   updated,
		}
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error saving game %d: %w", g.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing games transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) GetGame(ctx context.Context, id int64) (*model.Game, error) {
	const query = `SELECT ` + gameColumns + ` FROM games WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	g, err := scanGame(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error scanning game %d: %w", id, err)
	}
	return g, nil
}

func (db *postgresDB) ListGames(ctx context.Context, season int) ([]model.Game, error) {
	const query = `SELECT ` + gameColumns + ` FROM games WHERE season=@season ORDER BY week, id`

	args := pgx.NamedArgs{
		"season": season,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying games: %w", err)
	}
	defer rows.Close()

	results := make([]model.Game, 0, 1024)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning game: %w", err)
		}
		results = append(results, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating games: %w", err)
	}

	return results, nil
}

func (db *postgresDB) SaveGameResult(ctx context.Context, id int64, prev, next model.Result) error {
	const query = `UPDATE games SET result=@next, updated=@updated
					WHERE id=@id AND result=@prev AND (home_score IS NULL OR away_score IS NULL)`

	args := pgx.NamedArgs{
		"id":      id,
		"prev":    &DBResult{result: prev},
		"next":    &DBResult{result: next},
		"updated": db.now(),
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error saving result for game %d: %w", id, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Nothing was updated, figure out why.
	const lockedQuery = `SELECT home_score IS NOT NULL AND away_score IS NOT NULL FROM games WHERE id=@id`
	var locked bool
	if err := db.pool.QueryRow(ctx, lockedQuery, pgx.NamedArgs{"id": id}).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrGameNotFound
		}
		return fmt.Errorf("error checking game %d: %w", id, err)
	}
	if locked {
		return model.ErrGameLocked
	}
	return ErrResultChanged
}

func (db *postgresDB) ResetResults(ctx context.Context, season int) error {
	const query = `UPDATE games SET result='none', updated=@updated WHERE season=@season AND result <> 'none'`

	args := pgx.NamedArgs{
		"season":  season,
		"updated": db.now(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error resetting results for %d: %w", season, err)
	}
	return nil
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var g model.Game
	var result DBResult
	err := row.Scan(
		&g.ID,
		&g.Season,
		&g.Week,
		&g.HomeTeamID,
		&g.AwayTeamID,
		&g.HomeScore,
		&g.AwayScore,
		&result)
	if err != nil {
		return nil, err
	}
	g.Result = result.result
	return &g, nil
}
