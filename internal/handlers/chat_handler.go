package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/hrms-assistant/internal/models"
	"alfredoptarigan/hrms-assistant/internal/services"
)

type ChatHandler struct {
	generator services.TextGenerator
	sessions  *services.Registry[*services.ChatSession]
	drain     *services.Drain
	logger    *zap.Logger
}

func NewChatHandler(
	generator services.TextGenerator,
	sessions *services.Registry[*services.ChatSession],
	drain *services.Drain,
	logger *zap.Logger,
) *ChatHandler {
	return &ChatHandler{
		generator: generator,
		sessions:  sessions,
		drain:     drain,
		logger:    logger,
	}
}

// HandleCreateSession handles POST /chat/sessions
func (h *ChatHandler) HandleCreateSession(c *fiber.Ctx) error {
	session := services.NewChatSession(uuid.New(), services.NewSessionLog(), h.generator, h.logger)
	h.sessions.Put(session.ID(), session)

	return c.Status(fiber.StatusCreated).JSON(models.CreateChatSessionResponse{
		ID:       session.ID().String(),
		Greeting: session.Greeting(),
	})
}

// HandleSendMessage handles POST /chat/sessions/:id/messages. The reply is
// appended to the log asynchronously.
func (h *ChatHandler) HandleSendMessage(c *fiber.Ctx) error {
	session, err := h.lookup(c)
	if err != nil {
		return err
	}

	var req models.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if _, err := session.Send(c.UserContext(), req.Text, req.Context); err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "text is required",
			})
		case errors.Is(err, services.ErrReplyPending):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Horizon AI is still replying to the previous message",
			})
		default:
			return err
		}
	}

	return c.Status(fiber.StatusAccepted).JSON(chatLogResponse(session))
}

// HandleGetMessages handles GET /chat/sessions/:id/messages
func (h *ChatHandler) HandleGetMessages(c *fiber.Ctx) error {
	session, err := h.lookup(c)
	if err != nil {
		return err
	}

	return c.JSON(chatLogResponse(session))
}

// HandleDeleteSession handles DELETE /chat/sessions/:id
func (h *ChatHandler) HandleDeleteSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session ID format")
	}

	session, ok := h.sessions.Delete(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Chat session not found")
	}
	h.drain.Track(session.Wait)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ChatHandler) lookup(c *fiber.Ctx) (*services.ChatSession, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid session ID format")
	}

	session, ok := h.sessions.Get(id)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Chat session not found")
	}

	return session, nil
}

func chatLogResponse(session *services.ChatSession) models.ChatLogResponse {
	return models.ChatLogResponse{
		ID:            session.ID().String(),
		AwaitingReply: session.AwaitingReply(),
		Messages:      session.Turns(),
	}
}
