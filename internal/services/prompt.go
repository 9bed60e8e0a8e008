package services

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/hrms-assistant/internal/models"
)

const hrAssistantPersona = `You are "Horizon AI", the intelligent assistant for Nexus Horizon HRMS.
Your tone is professional, empathetic, and strategic.
You help HR professionals with tasks like drafting emails, analyzing trends, and suggesting policy.
Keep answers concise (under 150 words) unless asked for detail.`

// suggestionListSchema constrains search interpretation output to a JSON
// array of strings. suggestionListJSONSchema is the same shape for validation.
var suggestionListSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

const suggestionListJSONSchema = `{"type": "array", "items": {"type": "string"}}`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCandidateAnalysisPrompt creates the analysis prompt for a candidate.
// The output depends only on the profile: no clock, ids or locale.
func (pb *PromptBuilder) BuildCandidateAnalysisPrompt(profile models.CandidateProfile) string {
	return fmt.Sprintf(`You are an expert HR AI Analyst for Nexus Horizon HRMS.
Analyze the following candidate profile for the role of %s.

Candidate Data:
Name: %s
Experience: %d years
Skills: %s
Bio: %s

Please provide:
1. A brief executive summary (max 50 words).
2. Top 3 Strengths.
3. Potential areas for development or interview questions to ask.
4. A predicted "Success Score" (0-100) based on the profile match.

Format the output as Markdown.`,
		profile.Role, profile.Name, profile.Experience, strings.Join(profile.Skills, ", "), profile.Bio)
}

// BuildChatContent appends optional conversational context to a user message.
func (pb *PromptBuilder) BuildChatContent(message, chatContext string) string {
	if chatContext == "" {
		return message
	}
	return message + "\nContext: " + chatContext
}

func (pb *PromptBuilder) BuildSearchInterpretationPrompt(query string) string {
	return fmt.Sprintf(`Interpret this HR search query: %q. Return a JSON array of 3 specific search terms or module names that might be relevant.`, query)
}
