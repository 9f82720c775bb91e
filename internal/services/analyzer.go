package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"talentfit/resume-scorer/internal/models"
)

// ResumeUpload is one uploaded resume held in memory for the duration of a
// scoring request.
type ResumeUpload struct {
	Filename string
	Data     []byte
}

// AnalyzerService scores a batch of resumes against one job description.
// Resumes are processed sequentially; the Gemini token bucket provides the
// backpressure toward the provider quota.
type AnalyzerService interface {
	AnalyzeBatch(ctx context.Context, jobDescription string, uploads []ResumeUpload, weights ScoreWeights) []models.CandidateResult
}

type analyzerService struct {
	extractor      TextExtractor
	keywordScorer  KeywordScorer
	semanticScorer SemanticScorer
	skillExtractor SkillExtractor
	geminiService  GeminiService
	resumeIndex    ResumeIndexService
	promptBuilder  *PromptBuilder
}

func NewAnalyzerService(
	extractor TextExtractor,
	keywordScorer KeywordScorer,
	semanticScorer SemanticScorer,
	skillExtractor SkillExtractor,
	geminiService GeminiService,
	resumeIndex ResumeIndexService,
) AnalyzerService {
	return &analyzerService{
		extractor:      extractor,
		keywordScorer:  keywordScorer,
		semanticScorer: semanticScorer,
		skillExtractor: skillExtractor,
		geminiService:  geminiService,
		resumeIndex:    resumeIndex,
		promptBuilder:  NewPromptBuilder(),
	}
}

// AnalyzeBatch implements AnalyzerService. A failure on one resume (bad
// file, provider outage) degrades that entry only; the batch always
// returns one entry per upload, ranked by blended score descending.
func (a *analyzerService) AnalyzeBatch(ctx context.Context, jobDescription string, uploads []ResumeUpload, weights ScoreWeights) []models.CandidateResult {
	// The job description is embedded once per request, not once per
	// resume. A failure here degrades every semantic score to the
	// configured fallback.
	jdVector, jdErr := a.semanticScorer.EmbedDocument(ctx, jobDescription)
	if jdErr != nil {
		log.Printf("⚠️  Failed to embed job description, semantic scores will fall back: %v\n", jdErr)
	}

	results := make([]models.CandidateResult, 0, len(uploads))

	for idx, upload := range uploads {
		log.Printf("🔄 Scoring resume %d/%d: %s\n", idx+1, len(uploads), upload.Filename)

		text, err := a.extractor.ExtractText(upload.Filename, upload.Data)
		if err != nil || strings.TrimSpace(text) == "" {
			log.Printf("⚠️  Extraction failed for %s: %v\n", upload.Filename, err)
			results = append(results, a.extractionFailure(idx, upload.Filename, err))
			continue
		}

		keywordRes := a.keywordScorer.Estimate(text, jobDescription)

		semanticRes, resumeVector, semErr := a.semanticScorer.Score(ctx, text, jdVector)
		if semErr != nil {
			log.Printf("⚠️  Semantic scoring degraded for %s: %v\n", upload.Filename, semErr)
		}

		found, missing := a.skillExtractor.Extract(text)

		candidate := models.CandidateResult{
			ID:            idx,
			Filename:      upload.Filename,
			Score:         BlendScore(keywordRes, semanticRes, weights),
			Email:         ParseEmail(text),
			FoundSkills:   found,
			MissingSkills: missing,
			Breakdown: models.ScoreBreakdown{
				Keyword:  keywordRes,
				Semantic: semanticRes,
			},
		}

		candidate.AISummary = a.generateSummary(ctx, jobDescription, candidate)

		a.indexResume(ctx, upload.Filename, text, resumeVector)

		results = append(results, candidate)
	}

	RankCandidates(results)
	return results
}

func (a *analyzerService) extractionFailure(idx int, filename string, err error) models.CandidateResult {
	msg := "failed to extract text from file"
	if err != nil {
		msg = err.Error()
	}

	return models.CandidateResult{
		ID:            idx,
		Filename:      filename,
		Score:         0.0,
		FoundSkills:   []string{},
		MissingSkills: []string{},
		Breakdown: models.ScoreBreakdown{
			Keyword:  models.SimilarityResult{Score: 0.0, MatchedTerms: []string{}, MissingTerms: []string{}},
			Semantic: models.SimilarityResult{Score: 0.0},
		},
		Error: msg,
	}
}

// generateSummary is best-effort: it never fails the candidate, only the
// summary text.
func (a *analyzerService) generateSummary(ctx context.Context, jobDescription string, candidate models.CandidateResult) string {
	if !a.geminiService.Available() {
		return "AI summary unavailable (no API key)."
	}

	prompt := a.promptBuilder.BuildSummaryPrompt(jobDescription, candidate)
	summary, err := a.geminiService.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		log.Printf("⚠️  Summary generation failed for %s: %v\n", candidate.Filename, err)
		return "AI analysis failed."
	}

	return strings.TrimSpace(summary)
}

// indexResume stores the resume vector for later similarity search.
// Best-effort: an unreachable index is logged and ignored.
func (a *analyzerService) indexResume(ctx context.Context, filename, text string, vector []float32) {
	if a.resumeIndex == nil || len(vector) == 0 {
		return
	}

	snippet := text
	if len(snippet) > 200 {
		snippet = strings.ToValidUTF8(snippet[:200], "")
	}

	if err := a.resumeIndex.UpsertResume(ctx, uuid.New().String(), filename, snippet, vector); err != nil {
		log.Printf("⚠️  Failed to index resume %s: %v\n", filename, err)
	}
}
