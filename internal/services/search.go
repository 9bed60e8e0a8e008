package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"alfredoptarigan/hrms-assistant/internal/metrics"
)

var errInvalidSuggestions = errors.New("payload is not an array of strings")

var suggestionListValidator = mustCompileSchema(suggestionListJSONSchema)

func mustCompileSchema(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid json schema: %v", err))
	}
	return compiled
}

type SearchInterpreter interface {
	// Interpret never fails: any problem yields an empty, non-nil list.
	Interpret(ctx context.Context, query string) []string
}

type searchInterpreter struct {
	generator TextGenerator
	prompts   *PromptBuilder
	logger    *zap.Logger
}

func NewSearchInterpreter(generator TextGenerator, logger *zap.Logger) SearchInterpreter {
	return &searchInterpreter{
		generator: generator,
		prompts:   NewPromptBuilder(),
		logger:    logger.Named("search"),
	}
}

// Interpret implements SearchInterpreter.
func (s *searchInterpreter) Interpret(ctx context.Context, query string) []string {
	if strings.TrimSpace(query) == "" {
		return []string{}
	}

	payload, err := s.generator.GenerateText(ctx, s.prompts.BuildSearchInterpretationPrompt(query), &GenerateOptions{
		Operation:      "search",
		ResponseSchema: suggestionListSchema,
	})
	if err != nil {
		metrics.SearchDegradations.Inc()
		return []string{}
	}

	suggestions, err := parseSuggestions(payload)
	if err != nil {
		s.logger.Warn("discarding search suggestions", zap.Error(err), zap.Int("payload_chars", len(payload)))
		metrics.SearchDegradations.Inc()
		return []string{}
	}

	return suggestions
}

// parseSuggestions validates payload against the array-of-strings schema and
// decodes it.
func parseSuggestions(payload string) ([]string, error) {
	payload = stripCodeFence(payload)
	if payload == "" {
		return nil, errors.New("empty payload")
	}

	result, err := suggestionListValidator.Validate(gojsonschema.NewStringLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %v", errInvalidSuggestions, errs)
	}

	suggestions := []string{}
	if err := json.Unmarshal([]byte(payload), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
	}

	return suggestions, nil
}

// stripCodeFence removes a surrounding markdown code block, which models
// occasionally add even in JSON mode.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}
