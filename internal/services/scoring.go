package services

import (
	"math"
	"sort"

	"talentfit/resume-scorer/internal/models"
)

// ScoreWeights is the caller-supplied blend. The weights are used exactly
// as given: pairs that do not sum to 1 produce blended scores outside
// [0,100], which is intentional and surfaced to the caller unchanged.
type ScoreWeights struct {
	Keyword  float64
	Semantic float64
}

// BlendScore combines the two similarity scores into the final ranking
// key: a literal weighted sum rounded to two decimals, no clamping.
func BlendScore(keyword, semantic models.SimilarityResult, weights ScoreWeights) float64 {
	return round2(keyword.Score*weights.Keyword + semantic.Score*weights.Semantic)
}

// RankCandidates orders results by blended score descending. The sort is
// stable: tied candidates keep their upload order.
func RankCandidates(results []models.CandidateResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
