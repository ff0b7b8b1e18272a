package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mww/cfb_rankings/model"
)

func (db *postgresDB) SaveTeams(ctx context.Context, season int, teams []model.Team) error {
	const query = `INSERT INTO teams (
		season,
		id,
		name,
		conference,
		division
	) VALUES (
		@season,
		@id,
		@name,
		@conference,
		@division
	) ON CONFLICT (season, id) DO UPDATE
		SET name=EXCLUDED.name,
			conference=EXCLUDED.conference,
			division=EXCLUDED.division,
			updated=@updated`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	updated := db.now()
	for _, t := range teams {
		args := pgx.NamedArgs{
			"season":     season,
			"id":         t.ID,
			"name":       t.Name,
			"conference": t.Conference,
			"division":   &DBDivision{division: t.Division},
			"updated":    updated,
		}
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error saving team %d (%s): %w", t.ID, t.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing teams transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) ListTeams(ctx context.Context, season int, division model.Division) ([]model.Team, error) {
	const query = `SELECT id, name, conference, division
					FROM teams
					WHERE season=@season AND (@division = '' OR division=@division)
					ORDER BY name, id`

	args := pgx.NamedArgs{
		"season":   season,
		"division": string(division),
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying teams: %w", err)
	}
	defer rows.Close()

	results := make([]model.Team, 0, 150)
	for rows.Next() {
		var t model.Team
		var div DBDivision
		if err := rows.Scan(&t.ID, &t.Name, &t.Conference, &div); err != nil {
			return nil, fmt.Errorf("error scanning team: %w", err)
		}
		t.Division = div.division
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teams: %w", err)
	}

	return results, nil
}
