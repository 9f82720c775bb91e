package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentfit/resume-scorer/internal/models"
	"talentfit/resume-scorer/internal/repositories"
	"talentfit/resume-scorer/internal/services"
)

const historyPageSize = 20

type HistoryHandler struct {
	authService    services.AuthService
	analysisRepo   repositories.AnalysisRepository
	semanticScorer services.SemanticScorer
	resumeIndex    services.ResumeIndexService
}

// NewHistoryHandler wires analysis history and similar-resume search.
// analysisRepo and resumeIndex may be nil when their backends are down.
func NewHistoryHandler(
	authService services.AuthService,
	analysisRepo repositories.AnalysisRepository,
	semanticScorer services.SemanticScorer,
	resumeIndex services.ResumeIndexService,
) *HistoryHandler {
	return &HistoryHandler{
		authService:    authService,
		analysisRepo:   analysisRepo,
		semanticScorer: semanticScorer,
		resumeIndex:    resumeIndex,
	}
}

// HandleGetHistory handles GET /history.
func (h *HistoryHandler) HandleGetHistory(c *fiber.Ctx) error {
	userID, err := authenticateBearer(c, h.authService)
	if err != nil {
		return respondUnauthorized(c, err)
	}

	if h.analysisRepo == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database unavailable",
		})
	}

	analyses, err := h.analysisRepo.FindRecentByUser(userID, historyPageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"analyses": analyses})
}

// HandleFindSimilar handles POST /similar: nearest previously scored
// resumes to the given text.
func (h *HistoryHandler) HandleFindSimilar(c *fiber.Ctx) error {
	if h.resumeIndex == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Resume index unavailable",
		})
	}

	var req models.SimilarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}

	vector, err := h.semanticScorer.EmbedDocument(c.Context(), req.Text)
	if err != nil {
		if errors.Is(err, services.ErrEmbeddingUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Embedding service unavailable",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	matches, err := h.resumeIndex.SearchSimilar(c.Context(), vector, req.Limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"matches": matches})
}
