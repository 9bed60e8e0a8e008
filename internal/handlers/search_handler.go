package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/hrms-assistant/internal/models"
	"alfredoptarigan/hrms-assistant/internal/services"
)

type SearchHandler struct {
	interpreter services.SearchInterpreter
}

func NewSearchHandler(interpreter services.SearchInterpreter) *SearchHandler {
	return &SearchHandler{
		interpreter: interpreter,
	}
}

// HandleSuggestions handles GET /search/suggestions?q=. It always answers
// 200; an uninterpretable query simply has no suggestions.
func (h *SearchHandler) HandleSuggestions(c *fiber.Ctx) error {
	query := c.Query("q")

	return c.JSON(models.SearchSuggestionsResponse{
		Query:       query,
		Suggestions: h.interpreter.Interpret(c.UserContext(), query),
	})
}
