package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrGameLocked = errors.New("game has a recorded score and cannot be changed")

// Result is the user applied outcome of a game that hasn't been played yet.
// It is recorded from the point of view of the home team, so ResultWin means
// the home team won.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultLoss
)

// Next cycles none -> win -> loss -> none.
func (r Result) Next() Result {
	switch r {
	case ResultNone:
		return ResultWin
	case ResultWin:
		return ResultLoss
	default:
		return ResultNone
	}
}

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLoss:
		return "loss"
	default:
		return "none"
	}
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Result) UnmarshalText(b []byte) error {
	parsed, err := ParseResult(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func ParseResult(s string) (Result, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ResultNone, nil
	case "win", "w":
		return ResultWin, nil
	case "loss", "l":
		return ResultLoss, nil
	default:
		return ResultNone, fmt.Errorf("unknown result: '%s'", s)
	}
}

type Outcome string

const (
	OutcomeUnplayed Outcome = "unplayed"
	OutcomeHomeWin  Outcome = "home-win"
	OutcomeAwayWin  Outcome = "away-win"
	OutcomeTie      Outcome = "tie"
)

type Game struct {
	ID         int64 `json:"id"`
	Season     int   `json:"season"`
	Week       int   `json:"week"`
	HomeTeamID int64 `json:"homeTeamId"`
	AwayTeamID int64 `json:"awayTeamId"`
	// Scores are nil until the game has been played.
	HomeScore *int32 `json:"homeScore"`
	AwayScore *int32 `json:"awayScore"`
	Result    Result `json:"result"`
}

// IsLocked reports whether the game has a recorded score. Locked games
// can't have their result toggled.
func (g *Game) IsLocked() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// Outcome uses the recorded score when there is one and falls back to the
// user applied result otherwise.
func (g *Game) Outcome() Outcome {
	if g.IsLocked() {
		switch {
		case *g.HomeScore > *g.AwayScore:
			return OutcomeHomeWin
		case *g.HomeScore < *g.AwayScore:
			return OutcomeAwayWin
		default:
			return OutcomeTie
		}
	}

	switch g.Result {
	case ResultWin:
		return OutcomeHomeWin
	case ResultLoss:
		return OutcomeAwayWin
	default:
		return OutcomeUnplayed
	}
}

// Toggle returns a copy of the game with the next result applied.
func (g Game) Toggle() (Game, error) {
	if g.IsLocked() {
		return g, ErrGameLocked
	}
	g.Result = g.Result.Next()
	return g, nil
}

func (g *Game) Involves(teamID int64) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

func (g *Game) ScoreLine() string {
	if !g.IsLocked() {
		return ""
	}
	return fmt.Sprintf("%d-%d", *g.HomeScore, *g.AwayScore)
}

// Score is a helper for building games with recorded scores.
func Score(s int32) *int32 {
	return &s
}
