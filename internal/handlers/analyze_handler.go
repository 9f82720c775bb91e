package handlers

import (
	"io"
	"log"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentfit/resume-scorer/internal/models"
	"talentfit/resume-scorer/internal/repositories"
	"talentfit/resume-scorer/internal/services"
)

type AnalyzeHandler struct {
	analyzer     services.AnalyzerService
	extractor    services.TextExtractor
	authService  services.AuthService
	analysisRepo repositories.AnalysisRepository
	defaults     services.ScoreWeights
}

// NewAnalyzeHandler wires the scoring pipeline. analysisRepo may be nil
// when the database is unavailable; history recording is then skipped.
func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	extractor services.TextExtractor,
	authService services.AuthService,
	analysisRepo repositories.AnalysisRepository,
	defaults services.ScoreWeights,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:     analyzer,
		extractor:    extractor,
		authService:  authService,
		analysisRepo: analysisRepo,
		defaults:     defaults,
	}
}

// HandleAnalyze handles POST /analyze.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	jobDescription, err := h.resolveJobDescription(form)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if strings.TrimSpace(jobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No Job Description provided",
		})
	}

	resumeFiles := form.File["files"]
	if len(resumeFiles) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume files provided",
		})
	}

	weights := h.parseWeights(form)

	uploads := make([]services.ResumeUpload, 0, len(resumeFiles))
	for _, fh := range resumeFiles {
		data, err := readMultipartFile(fh)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to read uploaded file: " + fh.Filename,
			})
		}
		uploads = append(uploads, services.ResumeUpload{
			Filename: fh.Filename,
			Data:     data,
		})
	}

	results := h.analyzer.AnalyzeBatch(c.Context(), jobDescription, uploads, weights)

	h.recordHistory(c, jobDescription, results)

	return c.JSON(models.AnalyzeResponse{Results: results})
}

// resolveJobDescription prefers an uploaded file over the text field.
func (h *AnalyzeHandler) resolveJobDescription(form *multipart.Form) (string, error) {
	if jdFiles := form.File["jd_file"]; len(jdFiles) > 0 {
		data, err := readMultipartFile(jdFiles[0])
		if err != nil {
			return "", fiber.NewError(fiber.StatusBadRequest, "failed to read job description file")
		}
		text, err := h.extractor.ExtractText(jdFiles[0].Filename, data)
		if err != nil {
			return "", fiber.NewError(fiber.StatusBadRequest, "failed to extract text from job description file")
		}
		return text, nil
	}

	if values := form.Value["job_description"]; len(values) > 0 {
		return values[0], nil
	}
	return "", nil
}

// parseWeights reads the optional weight fields; any unparsable value
// reverts both weights to the configured defaults.
func (h *AnalyzeHandler) parseWeights(form *multipart.Form) services.ScoreWeights {
	weights := h.defaults

	kStr := formValue(form, "keyword_weight")
	sStr := formValue(form, "semantic_weight")
	if kStr == "" && sStr == "" {
		return weights
	}

	k, kErr := strconv.ParseFloat(kStr, 64)
	s, sErr := strconv.ParseFloat(sStr, 64)
	if kErr != nil || sErr != nil {
		return h.defaults
	}

	weights.Keyword = k
	weights.Semantic = s
	return weights
}

// recordHistory stores one analysis row, attributed to the caller when a
// valid bearer token is present. Failures are logged, never surfaced.
func (h *AnalyzeHandler) recordHistory(c *fiber.Ctx, jobDescription string, results []models.CandidateResult) {
	if h.analysisRepo == nil || len(results) == 0 {
		return
	}

	userID := ""
	if token := bearerToken(c); token != "" && h.authService != nil {
		if id, err := h.authService.VerifyToken(token); err == nil {
			userID = id
		}
	}

	summary := strings.Join(strings.Fields(jobDescription), " ")
	if len(summary) > 120 {
		summary = strings.ToValidUTF8(summary[:120], "")
	}

	analysis := &models.Analysis{
		ID:           uuid.New(),
		UserID:       userID,
		JobSummary:   summary,
		ResumeCount:  len(results),
		TopScore:     results[0].Score,
		TopCandidate: results[0].Filename,
	}

	if err := h.analysisRepo.Create(analysis); err != nil {
		log.Printf("⚠️  Failed to record analysis history: %v\n", err)
	}
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
