package utils

import (
	"context"
	"fmt"
	"strings"
)

const (
	BackendStub   = "stub"
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// ChatClient sends a single user message to a language model and returns
// its text reply.
type ChatClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Backend() string
}

type StubChatClient struct{}

func NewStubChatClient() ChatClient {
	return StubChatClient{}
}

func (StubChatClient) Complete(_ context.Context, prompt string) (string, error) {
	return fmt.Sprintf("[STUB] You asked: %s\nThis is a simulated response.", prompt), nil
}

func (StubChatClient) Backend() string { return BackendStub }

type LLMConfig struct {
	Backend     string
	OpenAIKey   string
	OpenAIModel string
	OpenAIURL   string
	GeminiKey   string
	GeminiModel string
	Temperature float32
}

// NewChatClient builds the client named by cfg.Backend. Unknown backends
// are an error; an empty backend means the stub.
func NewChatClient(ctx context.Context, cfg LLMConfig) (ChatClient, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendStub:
		return NewStubChatClient(), nil
	case BackendOpenAI:
		return NewOpenAIChatClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIURL, cfg.Temperature)
	case BackendGemini:
		return NewGeminiChatClient(ctx, cfg.GeminiKey, cfg.GeminiModel, cfg.Temperature)
	default:
		return nil, fmt.Errorf("%w: unsupported LLM backend %q, use stub, openai or gemini", ErrInvalidInput, cfg.Backend)
	}
}
