package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fakeEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float32{1, 0, 0}, nil
}

func TestSemanticScorer_Score(t *testing.T) {
	embedder := &fakeEmbedder{
		vectors: map[string][]float32{
			"resume text": {0, 1, 0},
		},
	}
	scorer := NewSemanticScorer(embedder, 50.0, 500)

	t.Run("identical direction scores 100", func(t *testing.T) {
		result, vector, err := scorer.Score(context.Background(), "resume text", []float32{0, 2, 0})

		require.NoError(t, err)
		assert.InDelta(t, 100.0, result.Score, 0.01)
		assert.False(t, result.Degraded)
		assert.Equal(t, []float32{0, 1, 0}, vector)
	})

	t.Run("orthogonal vectors score 0", func(t *testing.T) {
		result, _, err := scorer.Score(context.Background(), "resume text", []float32{1, 0, 0})

		require.NoError(t, err)
		assert.InDelta(t, 0.0, result.Score, 0.01)
	})
}

func TestSemanticScorer_EmptyResume(t *testing.T) {
	embedder := &fakeEmbedder{}
	scorer := NewSemanticScorer(embedder, 50.0, 500)

	result, vector, err := scorer.Score(context.Background(), "   ", []float32{1, 0})

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
	assert.Nil(t, vector)
	assert.Zero(t, embedder.calls, "empty resume must not hit the provider")
}

func TestSemanticScorer_ProviderOutageFallsBack(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("quota exceeded")}
	scorer := NewSemanticScorer(embedder, 50.0, 500)

	result, vector, err := scorer.Score(context.Background(), "resume text", []float32{1, 0, 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmbeddingUnavailable)
	assert.Equal(t, 50.0, result.Score)
	assert.True(t, result.Degraded)
	assert.Nil(t, vector)
}

func TestSemanticScorer_MissingJDVectorFallsBack(t *testing.T) {
	embedder := &fakeEmbedder{}
	scorer := NewSemanticScorer(embedder, 50.0, 500)

	result, _, err := scorer.Score(context.Background(), "resume text", nil)

	assert.ErrorIs(t, err, ErrEmbeddingUnavailable)
	assert.Equal(t, 50.0, result.Score)
	assert.True(t, result.Degraded)
	assert.Zero(t, embedder.calls, "no point embedding the resume without a jd vector")
}

func TestSemanticScorer_ConfigurableFallback(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("down")}
	scorer := NewSemanticScorer(embedder, 0.0, 500)

	result, _, err := scorer.Score(context.Background(), "resume text", []float32{1})

	require.Error(t, err)
	assert.Equal(t, 0.0, result.Score)
	assert.True(t, result.Degraded)
}

func TestSemanticScorer_EmbedDocumentTruncates(t *testing.T) {
	var captured string
	capturing := &capturingEmbedder{inner: &fakeEmbedder{}, captured: &captured}
	scorer := NewSemanticScorer(capturing, 50.0, 3)

	_, err := scorer.EmbedDocument(context.Background(), "one two three four five")

	require.NoError(t, err)
	assert.Equal(t, "one two three", captured)
}

func TestSemanticScorer_EmbedDocumentEmpty(t *testing.T) {
	embedder := &fakeEmbedder{}
	scorer := NewSemanticScorer(embedder, 50.0, 500)

	_, err := scorer.EmbedDocument(context.Background(), "  \n ")

	require.Error(t, err)
	assert.Zero(t, embedder.calls)
}

type capturingEmbedder struct {
	inner    Embedder
	captured *string
}

func (c *capturingEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	*c.captured = text
	return c.inner.GenerateEmbedding(ctx, text)
}

func TestTruncateWords(t *testing.T) {
	assert.Equal(t, "a b", truncateWords("a b", 5))
	assert.Equal(t, "a b", truncateWords("a b c", 2))
	assert.Equal(t, "", truncateWords("   ", 5))
	assert.Equal(t, strings.Repeat("w ", 499)+"w", truncateWords(strings.Repeat("w ", 600), 500))
}
