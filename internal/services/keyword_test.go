package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordScorer_IdenticalDocuments(t *testing.T) {
	scorer := NewKeywordScorer()

	text := "Senior Python developer with Docker and Kubernetes experience building REST APIs"
	result := scorer.Estimate(text, text)

	assert.InDelta(t, 100.0, result.Score, 0.01)
	assert.Empty(t, result.MissingTerms)
	assert.NotEmpty(t, result.MatchedTerms)
}

func TestKeywordScorer_EmptyDocuments(t *testing.T) {
	scorer := NewKeywordScorer()

	tests := []struct {
		name   string
		resume string
		jd     string
	}{
		{"empty resume", "", "Looking for a Go engineer"},
		{"empty jd", "Go engineer with five years of experience", ""},
		{"both empty", "", ""},
		{"whitespace only", "   \n\t  ", "Looking for a Go engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Estimate(tt.resume, tt.jd)

			assert.Equal(t, 0.0, result.Score)
			assert.Empty(t, result.MatchedTerms)
			assert.Empty(t, result.MissingTerms)
		})
	}
}

func TestKeywordScorer_StopWordsOnly(t *testing.T) {
	scorer := NewKeywordScorer()

	result := scorer.Estimate("the and of with", "for from into their")

	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.MatchedTerms)
	assert.Empty(t, result.MissingTerms)
}

func TestKeywordScorer_MatchedAndMissingTerms(t *testing.T) {
	scorer := NewKeywordScorer()

	resume := "Python developer experienced with Docker containers and PostgreSQL databases"
	jd := "We need a Python engineer familiar with Kubernetes and PostgreSQL"

	result := scorer.Estimate(resume, jd)

	require.Greater(t, result.Score, 0.0)
	assert.Contains(t, result.MatchedTerms, "python")
	assert.Contains(t, result.MatchedTerms, "postgresql")
	assert.Contains(t, result.MissingTerms, "kubernetes")
	assert.NotContains(t, result.MatchedTerms, "kubernetes")
}

func TestKeywordScorer_TermListsBounded(t *testing.T) {
	scorer := NewKeywordScorer()

	jd := "alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima " +
		"mike november oscar papa quebec romeo sierra tango uniform victor whiskey xray yankee zulu"
	resume := "completely unrelated resume text about gardening tomatoes peacefully"

	result := scorer.Estimate(resume, jd)

	assert.LessOrEqual(t, len(result.MatchedTerms), matchedTermsLimit)
	assert.LessOrEqual(t, len(result.MissingTerms), missingTermsLimit)
}

func TestKeywordScorer_ScoreWithinScale(t *testing.T) {
	scorer := NewKeywordScorer()

	result := scorer.Estimate(
		"Go developer who ships microservices with gRPC and Postgres",
		"Hiring a Go engineer to build microservices on Kubernetes",
	)

	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 100.0)
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("The Quick-Brown Fox, v2.0!")

	assert.Equal(t, []string{"quick", "brown", "fox", "v2"}, tokens)
}

func TestNgramCounts_IncludesBigrams(t *testing.T) {
	counts := ngramCounts([]string{"machine", "learning", "engineer"})

	assert.Equal(t, 1, counts["machine"])
	assert.Equal(t, 1, counts["machine learning"])
	assert.Equal(t, 1, counts["learning engineer"])
	assert.Zero(t, counts["machine engineer"])
}
