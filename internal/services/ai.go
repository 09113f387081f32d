package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/skillnet/skillnet-api/internal/models"
)

var (
	ErrContentRequired     = errors.New("content is required for skill extraction")
	ErrAIEmptyResponse     = errors.New("no response from the language model")
	ErrUnparseableResponse = errors.New("unable to parse a skill list from the AI response")
	ErrSkillWithoutName    = errors.New("a skill without a name was returned")
)

// ChatCompleter is the slice of the OpenAI client the AI service depends on.
// Tests substitute a fake; production uses *openai.Client.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AIService wraps the chat-completion API for skill extraction and
// recommendation. The model's output is treated as an untrusted blob: every
// call runs the reply through an ordered chain of parse strategies and only
// the recommendation path is allowed to paper over failures.
type AIService struct {
	client      ChatCompleter
	maxAttempts int
	backoffBase time.Duration
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client:      openai.NewClient(apiKey),
		maxAttempts: 3,
		backoffBase: 500 * time.Millisecond,
	}
}

// NewAIServiceWithClient builds an AIService around an existing client.
// Used by tests to inject fakes and shrink the backoff.
func NewAIServiceWithClient(client ChatCompleter, maxAttempts int, backoffBase time.Duration) *AIService {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &AIService{
		client:      client,
		maxAttempts: maxAttempts,
		backoffBase: backoffBase,
	}
}

// ExtractedSkill is one skill pulled out of free text.
type ExtractedSkill struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Proficiency models.ProficiencyLevel `json:"proficiencyLevel"`
}

// SkillRecommendation is one suggested next skill for a user.
type SkillRecommendation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// UserSkillSummary is the (skill, proficiency) pair fed into the
// recommendation prompt.
type UserSkillSummary struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Proficiency models.ProficiencyLevel `json:"proficiency"`
}

// ExtractSkills analyzes free text and returns the technical skills it
// mentions. This is a strict contract: if no JSON can be salvaged from the
// reply the call fails rather than guessing.
func (s *AIService) ExtractSkills(ctx context.Context, content string) ([]ExtractedSkill, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	prompt := fmt.Sprintf(`Analyze the following text and extract a list of technical skills mentioned.
For each skill:
1. Provide the skill name
2. Write a brief description of the skill
3. Estimate the proficiency level as either "Beginner", "Intermediate", or "Expert" based on context clues

Format your response as a JSON array of objects with "name", "description", and "proficiencyLevel" fields.
Only include technical skills, not soft skills or personal traits. The proficiency level must be exactly one of: "Beginner", "Intermediate", or "Expert".

Text to analyze:
%s`, content)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	raw, err := extractJSONArray(text)
	if err != nil {
		return nil, err
	}

	var skills []ExtractedSkill
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableResponse, err)
	}

	validated := make([]ExtractedSkill, 0, len(skills))
	for _, skill := range skills {
		if strings.TrimSpace(skill.Name) == "" {
			return nil, ErrSkillWithoutName
		}
		if !skill.Proficiency.Valid() {
			skill.Proficiency = models.ProficiencyIntermediate
		}
		validated = append(validated, skill)
	}

	return validated, nil
}

// RecommendSkills asks the model for skills complementary to the given set.
// Transport and parse failures are retried with exponential backoff up to the
// attempt cap; the error returned after exhaustion is the last one seen.
// Entries without a name are dropped rather than failing the whole call.
func (s *AIService) RecommendSkills(ctx context.Context, current []UserSkillSummary) ([]SkillRecommendation, error) {
	formatted, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode current skills: %w", err)
	}

	prompt := fmt.Sprintf(`Based on the following skills a user has, suggest 5 new skills they should learn next.

User's current skills:
%s

Provide a JSON array of objects with the following structure:
[
  {
    "name": "Skill Name",
    "description": "Brief description of the skill",
    "reason": "Why this skill complements their existing skillset"
  }
]

Return ONLY the JSON array, with no additional text.`, formatted)

	var lastErr error
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := s.backoffBase << (attempt - 1)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		recs, err := s.recommendOnce(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}
		return recs, nil
	}

	return nil, lastErr
}

func (s *AIService) recommendOnce(ctx context.Context, prompt string) ([]SkillRecommendation, error) {
	text, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	raw, err := extractJSONArray(text)
	if err != nil {
		return nil, err
	}

	var recs []SkillRecommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableResponse, err)
	}

	valid := make([]SkillRecommendation, 0, len(recs))
	for _, rec := range recs {
		if strings.TrimSpace(rec.Name) == "" {
			continue
		}
		valid = append(valid, rec)
	}

	if len(valid) == 0 {
		return nil, ErrUnparseableResponse
	}

	return valid, nil
}

func (s *AIService) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrAIEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

var (
	fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	jsonArrayRe   = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
)

// extractJSONArray salvages a JSON array from model output. The reply may
// wrap the JSON in a fenced code block or surround it with prose, so parsing
// tries, in order: fenced block contents, the whole reply, and finally a
// bracket-delimited array anywhere in the text.
func extractJSONArray(text string) (json.RawMessage, error) {
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), nil
		}
		// Fall through: a fence whose contents aren't valid JSON may still
		// contain a parseable array alongside commentary.
	}

	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), nil
	}

	if m := jsonArrayRe.FindString(text); m != "" {
		if json.Valid([]byte(m)) {
			return json.RawMessage(m), nil
		}
	}

	return nil, ErrUnparseableResponse
}
