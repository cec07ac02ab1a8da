package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"nurtureplan/internal/dietplan"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-1.5-flash"

// ErrEmptyResponse is returned when Gemini returns no text candidate.
var ErrEmptyResponse = errors.New("empty response from Gemini")

// Client is a client for the Gemini API.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient creates a new Gemini client.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.4)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(dietplan.AdvisorInstruction)}}

	return &Client{client: client, model: model}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// SummarizePlan returns a short prose overview of a plan.
func (c *Client) SummarizePlan(ctx context.Context, plan *dietplan.DietPlan) (string, error) {
	return c.generateText(ctx, dietplan.SummaryPrompt(plan))
}

// AnswerQuestion answers a nutrition question in the context of a plan.
func (c *Client) AnswerQuestion(ctx context.Context, plan *dietplan.DietPlan, question string) (string, error) {
	return c.generateText(ctx, dietplan.QuestionPrompt(plan, question))
}

func (c *Client) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("unexpected response format from Gemini: %w", ErrEmptyResponse)
	}
	return strings.TrimSpace(b.String()), nil
}
