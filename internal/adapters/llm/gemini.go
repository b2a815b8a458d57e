package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"fitcoach/internal/domain"
)

const defaultModel = "gemini-2.5-flash"

// Client implements domain.ResponseGenerator on the Gemini API.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a Gemini-backed generator. timeout bounds every
// generation call; a non-positive value falls back to 30s.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Client{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Generate sends one fresh request per call; there is no retry and no
// caching here. Every failure mode, including the wait bound expiring and
// an empty payload, surfaces as a domain.UpstreamError so provider types
// never leak to callers.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	temp := float32(0.7)
	cfg := &genai.GenerateContentConfig{
		Temperature: &temp,
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", &domain.UpstreamError{Err: err}
	}

	text := res.Text()
	if text == "" {
		return "", &domain.UpstreamError{Err: errors.New("model returned empty text")}
	}

	return text, nil
}
