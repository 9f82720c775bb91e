package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"talentfit/resume-scorer/internal/models"
)

// ResumeIndexService stores embedding vectors of scored resumes so past
// candidates can be searched by similarity. Writes are best-effort; an
// unreachable index never fails a scoring request.
type ResumeIndexService interface {
	InitCollection() error
	UpsertResume(ctx context.Context, resumeID, filename, snippet string, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]models.SimilarResume, error)
}

type resumeIndexService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewResumeIndexService(urlStr, apiKey, collectionName string) (ResumeIndexService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port, not the REST one
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &resumeIndexService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 dimension
	}, nil
}

// InitCollection implements ResumeIndexService.
func (q *resumeIndexService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Resume collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertResume implements ResumeIndexService.
func (q *resumeIndexService) UpsertResume(ctx context.Context, resumeID, filename, snippet string, embedding []float32) error {
	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"resume_id": resumeID,
			"filename":  filename,
			"snippet":   snippet,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// SearchSimilar implements ResumeIndexService.
func (q *resumeIndexService) SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]models.SimilarResume, error) {
	if limit <= 0 {
		limit = 5
	}

	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var results []models.SimilarResume
	for _, point := range searchResult {
		payload := point.Payload

		result := models.SimilarResume{
			Score: point.Score,
		}

		if id, ok := payload["resume_id"]; ok {
			if val, ok := id.GetKind().(*qdrant.Value_StringValue); ok {
				result.ID = val.StringValue
			}
		}

		if filename, ok := payload["filename"]; ok {
			if val, ok := filename.GetKind().(*qdrant.Value_StringValue); ok {
				result.Filename = val.StringValue
			}
		}

		if snippet, ok := payload["snippet"]; ok {
			if val, ok := snippet.GetKind().(*qdrant.Value_StringValue); ok {
				result.Snippet = val.StringValue
			}
		}

		results = append(results, result)
	}

	return results, nil
}
