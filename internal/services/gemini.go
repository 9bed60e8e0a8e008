package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/hrms-assistant/internal/config"
	"alfredoptarigan/hrms-assistant/internal/metrics"
)

// ErrGenerationFailed is the only error GenerateText returns. The cause is
// logged, never returned.
var ErrGenerationFailed = errors.New("text generation failed")

type GenerateOptions struct {
	// Operation labels logs and metrics, e.g. "analysis" or "chat".
	Operation         string
	SystemInstruction string
	// ResponseSchema switches the response to application/json.
	ResponseSchema *genai.Schema
}

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts *GenerateOptions) (string, error)
}

// contentGenerator is the part of *genai.Models the service calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiService struct {
	models    contentGenerator
	modelName string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewGeminiService(cfg config.GeminiConfig, logger *zap.Logger) (TextGenerator, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newGeminiService(client.Models, cfg, logger), nil
}

func newGeminiService(models contentGenerator, cfg config.GeminiConfig, logger *zap.Logger) *geminiService {
	return &geminiService{
		models:    models,
		modelName: cfg.Model,
		timeout:   cfg.RequestTimeout,
		logger:    logger.Named("gemini"),
	}
}

// GenerateText implements TextGenerator. Each call is attempted exactly once.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, opts *GenerateOptions) (text string, err error) {
	if opts == nil {
		opts = &GenerateOptions{}
	}
	operation := opts.Operation
	if operation == "" {
		operation = "generate"
	}
	log := g.logger.With(zap.String("operation", operation), zap.String("model", g.modelName))

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Error("gemini call panicked", zap.Any("panic", r))
			text, err = "", ErrGenerationFailed
		}

		metrics.GenerationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		outcome := metrics.OutcomeSuccess
		switch {
		case err != nil:
			outcome = metrics.OutcomeFailure
		case text == "":
			outcome = metrics.OutcomeEmpty
		}
		metrics.GenerationRequests.WithLabelValues(operation, outcome).Inc()
	}()

	if strings.TrimSpace(prompt) == "" {
		log.Error("refusing to send empty prompt")
		return "", ErrGenerationFailed
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(prompt), buildContentConfig(opts))
	if err != nil {
		log.Error("gemini API error", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", ErrGenerationFailed
	}

	if resp == nil {
		log.Error("gemini API returned nil response")
		return "", ErrGenerationFailed
	}

	text = resp.Text()
	log.Debug("gemini response received", zap.Int("chars", len(text)), zap.Duration("elapsed", time.Since(start)))

	return text, nil
}

func buildContentConfig(opts *GenerateOptions) *genai.GenerateContentConfig {
	if opts.SystemInstruction == "" && opts.ResponseSchema == nil {
		return nil
	}

	cfg := &genai.GenerateContentConfig{}
	if opts.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(opts.SystemInstruction, genai.RoleUser)
	}
	if opts.ResponseSchema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = opts.ResponseSchema
	}

	return cfg
}

type unavailableGenerator struct {
	cause  error
	logger *zap.Logger
}

// NewUnavailableGenerator stands in for the Gemini client when it could not
// be constructed, so the service still starts and every AI call fails soft.
func NewUnavailableGenerator(cause error, logger *zap.Logger) TextGenerator {
	return &unavailableGenerator{cause: cause, logger: logger.Named("gemini")}
}

func (u *unavailableGenerator) GenerateText(_ context.Context, _ string, opts *GenerateOptions) (string, error) {
	operation := "generate"
	if opts != nil && opts.Operation != "" {
		operation = opts.Operation
	}

	u.logger.Error("gemini client unavailable", zap.String("operation", operation), zap.Error(u.cause))
	metrics.GenerationRequests.WithLabelValues(operation, metrics.OutcomeFailure).Inc()

	return "", ErrGenerationFailed
}
