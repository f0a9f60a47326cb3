package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	defaultGeminiModel = "gemini-1.5-flash"
	geminiTimeout      = 30 * time.Second
)

type GeminiChatClient struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiChatClient(ctx context.Context, apiKey, model string, temperature float32) (ChatClient, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required for the gemini backend")
	}
	if model == "" {
		model = defaultGeminiModel // free tier
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiChatClient{
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

func (c *GeminiChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(c.temperature)
	m.SetMaxOutputTokens(1024)

	ctx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: %w: no content", ErrUnexpectedBehaviorOfAI)
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			out.WriteString(string(t))
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("gemini: %w: no text parts", ErrUnexpectedBehaviorOfAI)
	}
	return out.String(), nil
}

func (c *GeminiChatClient) Backend() string { return BackendGemini }

func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}
