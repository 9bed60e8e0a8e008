package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/hrms-assistant/internal/models"
	"alfredoptarigan/hrms-assistant/internal/repositories"
	"alfredoptarigan/hrms-assistant/internal/services"
)

type AnalysisHandler struct {
	candidateRepo repositories.CandidateRepository
	generator     services.TextGenerator
	analyses      *services.Registry[*services.AnalysisPipeline]
	drain         *services.Drain
	logger        *zap.Logger
}

func NewAnalysisHandler(
	candidateRepo repositories.CandidateRepository,
	generator services.TextGenerator,
	analyses *services.Registry[*services.AnalysisPipeline],
	drain *services.Drain,
	logger *zap.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		candidateRepo: candidateRepo,
		generator:     generator,
		analyses:      analyses,
		drain:         drain,
		logger:        logger,
	}
}

// HandleCreate handles POST /analyses. Each open analysis dialog gets its
// own handle.
func (h *AnalysisHandler) HandleCreate(c *fiber.Ctx) error {
	id := uuid.New()
	pipeline := services.NewAnalysisPipeline(h.generator, h.logger.With(zap.String("analysis_id", id.String())))
	h.analyses.Put(id, pipeline)

	return c.Status(fiber.StatusCreated).JSON(models.NewAnalysisResponse(id.String(), pipeline.State()))
}

// HandleAnalyze handles POST /analyses/:id/candidates/:candidateId
func (h *AnalysisHandler) HandleAnalyze(c *fiber.Ctx) error {
	id, pipeline, err := h.lookup(c)
	if err != nil {
		return err
	}

	candidateID, err := uuid.Parse(c.Params("candidateId"))
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

	pipeline.Analyze(c.UserContext(), candidate.Profile())

	return c.Status(fiber.StatusAccepted).JSON(models.NewAnalysisResponse(id.String(), pipeline.State()))
}

// HandleGet handles GET /analyses/:id
func (h *AnalysisHandler) HandleGet(c *fiber.Ctx) error {
	id, pipeline, err := h.lookup(c)
	if err != nil {
		return err
	}

	return c.JSON(models.NewAnalysisResponse(id.String(), pipeline.State()))
}

// HandleDelete handles DELETE /analyses/:id
func (h *AnalysisHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid analysis ID format")
	}

	pipeline, ok := h.analyses.Delete(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Analysis not found")
	}
	pipeline.Reset()
	h.drain.Track(pipeline.Wait)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AnalysisHandler) lookup(c *fiber.Ctx) (uuid.UUID, *services.AnalysisPipeline, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid analysis ID format")
	}

	pipeline, ok := h.analyses.Get(id)
	if !ok {
		return uuid.Nil, nil, fiber.NewError(fiber.StatusNotFound, "Analysis not found")
	}

	return id, pipeline, nil
}
