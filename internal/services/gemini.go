package services

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// GeminiService wraps the Gemini API for embeddings and text generation.
// All provider calls pass through a shared token bucket so the process
// never exceeds the configured requests-per-minute quota, regardless of
// how many resumes a request carries.
type GeminiService interface {
	Available() bool
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
	limiter    *rate.Limiter
}

// NewGeminiService builds the service. An empty API key yields a disabled
// service whose calls fail fast; scoring degrades per the fallback policy
// instead of the process refusing to start.
func NewGeminiService(apiKey string, requestsPerMinute int) (GeminiService, error) {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1)

	if apiKey == "" {
		return &geminiService{limiter: limiter}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:     client,
		modelName:  "gemini-2.5-flash",
		embedModel: "text-embedding-004",
		limiter:    limiter,
	}, nil
}

// Available implements GeminiService.
func (g *geminiService) Available() bool {
	return g.client != nil
}

// GenerateEmbedding implements GeminiService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if g.client == nil {
		return nil, fmt.Errorf("gemini is not configured")
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("gemini is not configured")
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 2048,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
