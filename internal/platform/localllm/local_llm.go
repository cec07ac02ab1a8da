package localllm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"nurtureplan/internal/dietplan"
)

const (
	DefaultURL   = "http://localhost:1234/v1/chat/completions"
	DefaultModel = "gemma-3-12b-it:2"
)

// ErrNoContent is returned when the model answers without any choices.
var ErrNoContent = errors.New("no content found in response")

// Client represents a client for an OpenAI compatible local LLM server.
type Client struct {
	httpClient *http.Client
	apiURL     string
	model      string
}

// NewClient creates a new client for the local LLM. Empty arguments fall
// back to DefaultURL and DefaultModel.
func NewClient(apiURL, model string) *Client {
	if apiURL == "" {
		apiURL = DefaultURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		httpClient: &http.Client{},
		apiURL:     apiURL,
		model:      model,
	}
}

// Request represents the request body for the local LLM.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Message represents a message in the request.
type Message struct {
	Role    string    `json:"role"`
	Content []Content `json:"content"`
}

// Content represents the content of a message.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Response represents the response from the local LLM.
type Response struct {
	Choices []Choice `json:"choices"`
}

// Choice represents a choice in the response.
type Choice struct {
	Message ResponseMessage `json:"message"`
}

// ResponseMessage represents a message in the response.
type ResponseMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func textMessage(role, text string) Message {
	return Message{Role: role, Content: []Content{{Type: "text", Text: text}}}
}

// GenerateContent sends a system instruction and a user prompt to the local
// LLM and returns the first choice.
func (c *Client) GenerateContent(ctx context.Context, instruction, prompt string) (string, error) {
	reqBody := Request{
		Model: c.model,
		Messages: []Message{
			textMessage("system", instruction),
			textMessage("user", prompt),
		},
		Temperature: 0.4,
		MaxTokens:   512,
	}

	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(reqBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-OK status code: %d", resp.StatusCode)
	}

	var llmResp Response
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", ErrNoContent
	}

	content := strings.TrimSpace(llmResp.Choices[0].Message.Content)
	log.Debug().Str("model", c.model).Int("chars", len(content)).Msg("local llm response")
	return content, nil
}

// SummarizePlan returns a short prose overview of a plan.
func (c *Client) SummarizePlan(ctx context.Context, plan *dietplan.DietPlan) (string, error) {
	text, err := c.GenerateContent(ctx, dietplan.AdvisorInstruction, dietplan.SummaryPrompt(plan))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return text, nil
}

// AnswerQuestion answers a nutrition question in the context of a plan.
func (c *Client) AnswerQuestion(ctx context.Context, plan *dietplan.DietPlan, question string) (string, error) {
	text, err := c.GenerateContent(ctx, dietplan.AdvisorInstruction, dietplan.QuestionPrompt(plan, question))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return text, nil
}
