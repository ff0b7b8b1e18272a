package db

import (
	"context"
	"errors"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mww/cfb_rankings/model"
)

var (
	ErrGameNotFound  error = errors.New("game not found")
	ErrResultChanged error = errors.New("game result was changed by another request")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) now() pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}

type DBDivision struct {
	division model.Division
}

func (d *DBDivision) ScanText(v pgtype.Text) error {
	d.division = model.ParseDivision(v.String)
	return nil
}

func (d *DBDivision) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(d.division),
		Valid:  true,
	}, nil
}

type DBResult struct {
	result model.Result
}

func (r *DBResult) ScanText(v pgtype.Text) error {
	res, err := model.ParseResult(v.String)
	if err != nil {
		return err
	}
	r.result = res
	return nil
}

func (r *DBResult) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: r.result.String(),
		Valid:  true,
	}, nil
}
