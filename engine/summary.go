package engine

import (
	"github.com/montanaflynn/stats"
	"github.com/mww/cfb_rankings/model"
)

// Summarize describes the spread of scores in a set of rankings. An empty
// input gives an empty summary.
func Summarize(rankings []model.Ranking) model.RankingSummary {
	if len(rankings) == 0 {
		return model.RankingSummary{}
	}

	data := make(stats.Float64Data, 0, len(rankings))
	for _, r := range rankings {
		data = append(data, r.Score)
	}

	// None of these fail on non-empty input.
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	stdDev, _ := stats.StandardDeviation(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)

	return model.RankingSummary{
		Mean:   roundScore(mean),
		Median: roundScore(median),
		StdDev: roundScore(stdDev),
		Min:    roundScore(min),
		Max:    roundScore(max),
	}
}
