package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"talentfit/resume-scorer/internal/models"
)

// ErrEmbeddingUnavailable marks a semantic result that carries the
// fallback score because the embedding provider could not be reached.
var ErrEmbeddingUnavailable = errors.New("embedding provider unavailable")

// Embedder is the slice of GeminiService the semantic scorer needs.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// SemanticScorer estimates meaning-level similarity between a resume and a
// job description via embedding vectors. Term lists are not applicable and
// stay empty.
type SemanticScorer interface {
	// EmbedDocument truncates the text to the configured word budget and
	// returns its embedding vector.
	EmbedDocument(ctx context.Context, text string) ([]float32, error)

	// Score compares the resume text against a pre-computed job
	// description vector. On any provider failure the result holds the
	// configured fallback score and the returned error (wrapping
	// ErrEmbeddingUnavailable) says so; the error is informational, the
	// result is always usable. The resume's embedding vector is returned
	// on success so callers can store it.
	Score(ctx context.Context, resumeText string, jdVector []float32) (models.SimilarityResult, []float32, error)
}

type semanticScorer struct {
	embedder      Embedder
	fallbackScore float64
	maxWords      int
}

func NewSemanticScorer(embedder Embedder, fallbackScore float64, maxWords int) SemanticScorer {
	if maxWords <= 0 {
		maxWords = 500
	}
	return &semanticScorer{
		embedder:      embedder,
		fallbackScore: fallbackScore,
		maxWords:      maxWords,
	}
}

// EmbedDocument implements SemanticScorer.
func (s *semanticScorer) EmbedDocument(ctx context.Context, text string) ([]float32, error) {
	text = truncateWords(text, s.maxWords)
	if text == "" {
		return nil, fmt.Errorf("empty document")
	}

	vector, err := s.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}
	return vector, nil
}

// Score implements SemanticScorer.
func (s *semanticScorer) Score(ctx context.Context, resumeText string, jdVector []float32) (models.SimilarityResult, []float32, error) {
	if strings.TrimSpace(resumeText) == "" {
		return models.SimilarityResult{Score: 0.0}, nil, nil
	}

	if len(jdVector) == 0 {
		return s.fallback(), nil, ErrEmbeddingUnavailable
	}

	resumeVector, err := s.EmbedDocument(ctx, resumeText)
	if err != nil {
		return s.fallback(), nil, err
	}

	similarity := cosineSimilarity(resumeVector, jdVector)
	return models.SimilarityResult{Score: round2(similarity * 100)}, resumeVector, nil
}

func (s *semanticScorer) fallback() models.SimilarityResult {
	return models.SimilarityResult{Score: s.fallbackScore, Degraded: true}
}

// truncateWords bounds embedding input to the first n whitespace-separated
// words, keeping latency and provider cost predictable.
func truncateWords(text string, n int) string {
	fields := strings.Fields(text)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
