package controller

import (
	"context"
	"fmt"

	"github.com/mww/cfb_rankings/engine"
	"github.com/mww/cfb_rankings/model"
)

func (c *controller) CalculateRankings(ctx context.Context, year, week int, division model.Division, weights *model.RankingWeights) (*model.RankingTable, error) {
	w := c.weights
	if weights != nil {
		w = *weights
	}

	teams, err := c.db.ListTeams(ctx, year, division)
	if err != nil {
		return nil, fmt.Errorf("error getting teams for %d: %w", year, err)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("error no %s teams for %d: %w", division, year, ErrSeasonNotLoaded)
	}

	games, err := c.db.ListGames(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("error getting games for %d: %w", year, err)
	}

	rankings, err := engine.ComputeRankings(teams, games, week, &w)
	if err != nil {
		return nil, fmt.Errorf("error ranking %s teams for %d week %d: %w", division, year, week, err)
	}

	// Compare against the week before so the table can show movement.
	if week > 1 {
		prior, err := engine.ComputeRankings(teams, games, week-1, &w)
		if err != nil {
			return nil, fmt.Errorf("error ranking %s teams for %d week %d: %w", division, year, week-1, err)
		}
		rankings = engine.ApplyRankChanges(rankings, prior)
	}

	return &model.RankingTable{
		Season:   year,
		Week:     week,
		Division: division,
		Weights:  w,
		Teams:    rankings,
		Summary:  engine.Summarize(rankings),
		Created:  c.clock.Now().UTC(),
	}, nil
}

func (c *controller) DefaultWeights() model.RankingWeights {
	return c.weights
}
