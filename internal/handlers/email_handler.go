package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentfit/resume-scorer/internal/models"
	"talentfit/resume-scorer/internal/services"
)

type EmailHandler struct {
	geminiService services.GeminiService
	promptBuilder *services.PromptBuilder
}

func NewEmailHandler(geminiService services.GeminiService) *EmailHandler {
	return &EmailHandler{
		geminiService: geminiService,
		promptBuilder: services.NewPromptBuilder(),
	}
}

// HandleGenerateEmail handles POST /generate_email.
func (h *EmailHandler) HandleGenerateEmail(c *fiber.Ctx) error {
	if !h.geminiService.Available() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "AI service unavailable",
		})
	}

	var req models.GenerateEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.CandidateName) == "" || strings.TrimSpace(req.JobTitle) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "candidate_name and job_title are required",
		})
	}

	prompt := h.promptBuilder.BuildRecruitingEmailPrompt(req)

	response, err := h.geminiService.GenerateText(c.Context(), prompt, 0.7)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var email models.GeneratedEmail
	if err := json.Unmarshal([]byte(services.ExtractJSON(response)), &email); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to parse generated email",
		})
	}

	return c.JSON(email)
}
