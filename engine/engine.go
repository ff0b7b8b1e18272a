// Package engine computes team rankings from a season's games. Everything in
// here is a pure function of its inputs, so it can be called as often as
// needed, from any goroutine, without locking.
package engine

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/mww/cfb_rankings/model"
)

var ErrInvalidInput = errors.New("invalid input")

// Scores are rounded to this many decimal places so that sums of decimal
// weights compare equal, e.g. 1.3 + 1.3 and 1.3 + 1.3 + 1.0 - 1.0.
const scorePrecision = 1e4

type tally struct {
	score  float64
	wins   int
	losses int
}

// ComputeRankings scores each team using the games played (or toggled) up to
// and including weekCutoff and returns the teams ordered best first. If
// weights is nil the default weights are used.
//
// Games that reference a team not in teams, or that are after the cutoff, are
// ignored. Equal scores are broken by wins (more first), then by team name,
// then by team id, so the order is always deterministic.
func ComputeRankings(teams []model.Team, games []model.Game, weekCutoff int, weights *model.RankingWeights) ([]model.Ranking, error) {
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: at least one team is required", ErrInvalidInput)
	}
	if weekCutoff < 1 {
		return nil, fmt.Errorf("%w: week cutoff must be at least 1, got %d", ErrInvalidInput, weekCutoff)
	}

	w := model.DefaultWeights()
	if weights != nil {
		w = *weights
	}

	tallies := make(map[int64]*tally, len(teams))
	for _, t := range teams {
		if _, found := tallies[t.ID]; found {
			return nil, fmt.Errorf("%w: duplicate team id %d", ErrInvalidInput, t.ID)
		}
		tallies[t.ID] = &tally{}
	}

	for i := range games {
		g := &games[i]
		if g.Week > weekCutoff || g.HomeTeamID == g.AwayTeamID {
			continue
		}
		home, homeFound := tallies[g.HomeTeamID]
		away, awayFound := tallies[g.AwayTeamID]
		if !homeFound || !awayFound {
			continue
		}

		switch g.Outcome() {
		case model.OutcomeHomeWin:
			home.score += w.HomeWin
			home.wins++
			away.score += w.AwayLoss
			away.losses++
		case model.OutcomeAwayWin:
			away.score += w.AwayWin
			away.wins++
			home.score += w.HomeLoss
			home.losses++
		}
	}

	rankings := make([]model.Ranking, 0, len(teams))
	for _, t := range teams {
		tl := tallies[t.ID]
		rankings = append(rankings, model.Ranking{
			Team:   t,
			Score:  roundScore(tl.score),
			Wins:   tl.wins,
			Losses: tl.losses,
			Record: model.FormatRecord(tl.wins, tl.losses),
		})
	}

	slices.SortStableFunc(rankings, compareRankings)
	for i := range rankings {
		rankings[i].Rank = i + 1
	}

	return rankings, nil
}

func compareRankings(a, b model.Ranking) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Team.Name, b.Team.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Team.ID, b.Team.ID)
}

func roundScore(s float64) float64 {
	r := math.Round(s*scorePrecision) / scorePrecision
	if r == 0 {
		// avoid -0 showing up in the output
		return 0
	}
	return r
}

// ApplyRankChanges returns a copy of current with RankChange filled in for
// every team that also appears in prior.
func ApplyRankChanges(current, prior []model.Ranking) []model.Ranking {
	priorRanks := make(map[int64]int, len(prior))
	for _, p := range prior {
		priorRanks[p.Team.ID] = p.Rank
	}

	result := slices.Clone(current)
	for i := range result {
		if rank, found := priorRanks[result[i].Team.ID]; found {
			result[i].RankChange = rank - result[i].Rank
			result[i].HasPrior = true
		}
	}
	return result
}
