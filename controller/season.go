package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mww/cfb_rankings/cfbd"
	"github.com/mww/cfb_rankings/db"
	"github.com/mww/cfb_rankings/model"
)

func (c *controller) SyncSeason(ctx context.Context, year int) error {
	start := c.clock.Now()
	log.Printf("sync of %d season starting at %v", year, start.Format(time.DateTime))

	teams, err := c.cfbd.LoadTeams(ctx, year)
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		return fmt.Errorf("error no teams found for the %d season", year)
	}

	games, err := c.cfbd.LoadGames(ctx, year, cfbd.SeasonTypeRegular)
	if err != nil {
		return err
	}
	for i := range games {
		if games[i].Season == 0 {
			games[i].Season = year
		}
	}

	if err := c.db.SaveTeams(ctx, year, teams); err != nil {
		return fmt.Errorf("error saving teams for %d: %w", year, err)
	}
	if err := c.db.SaveGames(ctx, games); err != nil {
		return fmt.Errorf("error saving games for %d: %w", year, err)
	}

	log.Printf("sync of %d season finished, %d teams and %d games, took %v", year, len(teams), len(games), c.clock.Now().Sub(start))
	return nil
}

func (c *controller) ListTeams(ctx context.Context, year int, division model.Division) ([]model.Team, error) {
	return c.db.ListTeams(ctx, year, division)
}

// How many times to re-read a game when another request changed its result
// between the read and the write.
const maxToggleAttempts = 3

func (c *controller) ToggleGameResult(ctx context.Context, gameID int64) (*model.Game, error) {
	var err error
	for i := 0; i < maxToggleAttempts; i++ {
		var g *model.Game
		g, err = c.db.GetGame(ctx, gameID)
		if err != nil {
			return nil, err
		}

		var toggled model.Game
		toggled, err = g.Toggle()
		if err != nil {
			return nil, err
		}

		err = c.db.SaveGameResult(ctx, gameID, g.Result, toggled.Result)
		if err == nil {
			return &toggled, nil
		}
		if !errors.Is(err, db.ErrResultChanged) {
			return nil, fmt.Errorf("error saving result for game %d: %w", gameID, err)
		}
	}
	return nil, fmt.Errorf("error saving result for game %d: %w", gameID, err)
}

func (c *controller) ResetResults(ctx context.Context, year int) error {
	return c.db.ResetResults(ctx, year)
}

func (c *controller) RunPeriodicScheduleUpdates(year int, frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer ticker.Stop()
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			if err := c.SyncSeason(ctx, year); err != nil {
				log.Printf("error syncing the %d season: %v", year, err)
			}
			cancel()
		}
	}
}
