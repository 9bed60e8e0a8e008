package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/hrms-assistant/internal/repositories"
)

type CandidateHandler struct {
	candidateRepo repositories.CandidateRepository
}

func NewCandidateHandler(candidateRepo repositories.CandidateRepository) *CandidateHandler {
	return &CandidateHandler{
		candidateRepo: candidateRepo,
	}
}

// HandleList handles GET /candidates
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	candidates, err := h.candidateRepo.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load candidates",
		})
	}

	return c.JSON(fiber.Map{
		"candidates": candidates,
	})
}

// HandleGet handles GET /candidates/:id
func (h *CandidateHandler) HandleGet(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	candidate, err := h.candidateRepo.FindByID(candidateID)
	if err != nil {
		if errors.Is(err, repositories.ErrCandidateNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Candidate not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load candidate",
		})
	}

	return c.JSON(candidate)
}
