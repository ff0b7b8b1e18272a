package model

import (
	"fmt"
	"time"
)

// RankingWeights are the per game multipliers used when scoring a team. The
// loss weights are signed and get added to the score as is.
type RankingWeights struct {
	HomeWin  float64 `json:"homeWin"`
	AwayWin  float64 `json:"awayWin"`
	HomeLoss float64 `json:"homeLoss"`
	AwayLoss float64 `json:"awayLoss"`
}

// DefaultWeights reward road wins more than home wins and punish home losses
// more than road losses.
func DefaultWeights() RankingWeights {
	return RankingWeights{
		HomeWin:  1.0,
		AwayWin:  1.3,
		HomeLoss: -1.0,
		AwayLoss: -0.8,
	}
}

type Ranking struct {
	Team   Team    `json:"team"`
	Score  float64 `json:"score"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Record string  `json:"record"`
	Rank   int     `json:"rank"`
	// RankChange is only meaningful when HasPrior is true. Positive values
	// mean the team moved up compared to the prior ranking.
	RankChange int  `json:"rankChange"`
	HasPrior   bool `json:"hasPrior"`
}

func FormatRecord(wins, losses int) string {
	return fmt.Sprintf("%d-%d", wins, losses)
}

type RankingSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type RankingTable struct {
	Season   int            `json:"season"`
	Week     int            `json:"week"`
	Division Division       `json:"division"`
	Weights  RankingWeights `json:"weights"`
	Teams    []Ranking      `json:"teams"`
	Summary  RankingSummary `json:"summary"`
	Created  time.Time      `json:"created"`
}
