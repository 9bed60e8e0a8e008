package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/hrms-assistant/internal/metrics"
	"alfredoptarigan/hrms-assistant/internal/models"
)

const (
	ChatGreeting       = "Hello! I am Horizon AI. How can I assist with your workforce planning today?"
	ChatPlaceholder    = "I'm thinking..."
	ChatFailureMessage = "I encountered an error connecting to the AI service."
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrReplyPending = errors.New("a reply is still pending")
)

// ChatSession serializes the exchanges of one conversation: a message is
// only accepted while no earlier reply is outstanding, so every user turn is
// followed directly by its assistant turn.
type ChatSession struct {
	id        uuid.UUID
	log       *SessionLog
	generator TextGenerator
	prompts   *PromptBuilder
	logger    *zap.Logger
	now       func() time.Time

	mu            sync.Mutex
	awaitingReply bool
	wg            sync.WaitGroup
}

func NewChatSession(id uuid.UUID, log *SessionLog, generator TextGenerator, logger *zap.Logger) *ChatSession {
	return &ChatSession{
		id:        id,
		log:       log,
		generator: generator,
		prompts:   NewPromptBuilder(),
		logger:    logger.Named("chat").With(zap.String("session_id", id.String())),
		now:       time.Now,
	}
}

func (s *ChatSession) ID() uuid.UUID {
	return s.id
}

func (s *ChatSession) Greeting() string {
	return ChatGreeting
}

// Send appends the user turn before returning and requests the reply in the
// background. The returned channel is closed after the assistant turn has
// been appended. Blank messages and messages sent while a reply is pending
// are rejected without touching the log.
func (s *ChatSession) Send(ctx context.Context, text, chatContext string) (<-chan struct{}, error) {
	if strings.TrimSpace(text) == "" {
		metrics.ChatSendsRejected.WithLabelValues("empty").Inc()
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.awaitingReply {
		s.mu.Unlock()
		metrics.ChatSendsRejected.WithLabelValues("pending").Inc()
		return nil, ErrReplyPending
	}
	s.awaitingReply = true
	s.log.Append(s.newTurn(models.SpeakerUser, text))
	s.wg.Add(1)
	s.mu.Unlock()

	content := s.prompts.BuildChatContent(text, chatContext)
	ctx = context.WithoutCancel(ctx)

	done := make(chan struct{})
	go func() {
		defer s.wg.Done()
		defer close(done)

		reply := s.reply(ctx, content)

		s.mu.Lock()
		s.log.Append(s.newTurn(models.SpeakerAssistant, reply))
		s.awaitingReply = false
		s.mu.Unlock()

		s.logger.Debug("assistant turn appended", zap.Int("turns", s.log.Len()))
	}()

	return done, nil
}

func (s *ChatSession) reply(ctx context.Context, content string) string {
	text, err := s.generator.GenerateText(ctx, content, &GenerateOptions{
		Operation:         "chat",
		SystemInstruction: hrAssistantPersona,
	})
	if err != nil {
		return ChatFailureMessage
	}

	if text == "" {
		s.logger.Warn("empty chat reply, using placeholder")
		return ChatPlaceholder
	}

	return text
}

func (s *ChatSession) newTurn(speaker models.Speaker, text string) models.ChatTurn {
	return models.ChatTurn{
		ID:        uuid.New(),
		Speaker:   speaker,
		Text:      text,
		CreatedAt: s.now(),
	}
}

func (s *ChatSession) Turns() []models.ChatTurn {
	return s.log.Turns()
}

func (s *ChatSession) AwaitingReply() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.awaitingReply
}

// Wait blocks until the outstanding reply, if any, has been appended.
func (s *ChatSession) Wait() {
	s.wg.Wait()
}
