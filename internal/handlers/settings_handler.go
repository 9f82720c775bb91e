package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentfit/resume-scorer/internal/models"
	"talentfit/resume-scorer/internal/repositories"
	"talentfit/resume-scorer/internal/services"
)

type SettingsHandler struct {
	authService services.AuthService
	configRepo  repositories.UserConfigRepository
}

// NewSettingsHandler wires per-user settings. configRepo may be nil when
// the database is unavailable.
func NewSettingsHandler(
	authService services.AuthService,
	configRepo repositories.UserConfigRepository,
) *SettingsHandler {
	return &SettingsHandler{
		authService: authService,
		configRepo:  configRepo,
	}
}

// HandleGetSettings handles GET /settings. A first read auto-creates the
// row with default weights.
func (h *SettingsHandler) HandleGetSettings(c *fiber.Ctx) error {
	userID, err := authenticateBearer(c, h.authService)
	if err != nil {
		return respondUnauthorized(c, err)
	}

	if h.configRepo == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database unavailable",
		})
	}

	cfg, err := h.configRepo.GetOrCreate(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(cfg)
}

// HandleSaveSettings handles POST /settings. Only allowlisted fields are
// written; absent fields reset to their defaults.
func (h *SettingsHandler) HandleSaveSettings(c *fiber.Ctx) error {
	userID, err := authenticateBearer(c, h.authService)
	if err != nil {
		return respondUnauthorized(c, err)
	}

	if h.configRepo == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database unavailable",
		})
	}

	var req models.SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	cfg := &models.UserConfig{
		UserID:           userID,
		KeywordWeight:    models.DefaultUserKeywordWeight,
		SemanticWeight:   models.DefaultUserSemanticWeight,
		SignatureName:    "",
		SignatureRole:    "",
		SignatureCompany: "",
	}
	if req.KeywordWeight != nil {
		cfg.KeywordWeight = *req.KeywordWeight
	}
	if req.SemanticWeight != nil {
		cfg.SemanticWeight = *req.SemanticWeight
	}
	if req.SignatureName != nil {
		cfg.SignatureName = *req.SignatureName
	}
	if req.SignatureRole != nil {
		cfg.SignatureRole = *req.SignatureRole
	}
	if req.SignatureCompany != nil {
		cfg.SignatureCompany = *req.SignatureCompany
	}

	if err := h.configRepo.Upsert(cfg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Settings saved",
		"data":    cfg,
	})
}

// authenticateBearer resolves the bearer token to a user id. The returned
// error carries the message for the 401 response.
func authenticateBearer(c *fiber.Ctx, authService services.AuthService) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", errors.New("No authorization header provided")
	}

	token := bearerToken(c)
	if token == "" {
		return "", errors.New("Invalid authorization format")
	}

	userID, err := authService.VerifyToken(token)
	if err != nil {
		return "", errors.New("Invalid or expired token")
	}

	return userID, nil
}

func respondUnauthorized(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
