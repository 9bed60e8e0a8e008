package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Candidate *CandidateHandler
	Analysis  *AnalysisHandler
	Chat      *ChatHandler
	Search    *SearchHandler
}

// RegisterRoutes mounts the API under router, normally the /api/v1 group.
func (h *Handlers) RegisterRoutes(router fiber.Router) {
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	router.Get("/candidates", h.Candidate.HandleList)
	router.Get("/candidates/:id", h.Candidate.HandleGet)

	router.Post("/analyses", h.Analysis.HandleCreate)
	router.Get("/analyses/:id", h.Analysis.HandleGet)
	router.Delete("/analyses/:id", h.Analysis.HandleDelete)
	router.Post("/analyses/:id/candidates/:candidateId", h.Analysis.HandleAnalyze)

	router.Post("/chat/sessions", h.Chat.HandleCreateSession)
	router.Get("/chat/sessions/:id/messages", h.Chat.HandleGetMessages)
	router.Post("/chat/sessions/:id/messages", h.Chat.HandleSendMessage)
	router.Delete("/chat/sessions/:id", h.Chat.HandleDeleteSession)

	router.Get("/search/suggestions", h.Search.HandleSuggestions)
}

// ErrorHandler renders errors returned from handlers as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
