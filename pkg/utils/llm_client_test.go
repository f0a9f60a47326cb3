package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubChatClient(t *testing.T) {
	c := NewStubChatClient()

	got, err := c.Complete(context.Background(), "visa free countries?")
	require.NoError(t, err)
	assert.Equal(t, "[STUB] You asked: visa free countries?\nThis is a simulated response.", got)
	assert.Equal(t, BackendStub, c.Backend())
}

func TestNewChatClient(t *testing.T) {
	ctx := context.Background()

	c, err := NewChatClient(ctx, LLMConfig{})
	require.NoError(t, err)
	assert.Equal(t, BackendStub, c.Backend())

	_, err = NewChatClient(ctx, LLMConfig{Backend: "ollama"})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = NewChatClient(ctx, LLMConfig{Backend: "OpenAI"})
	assert.ErrorContains(t, err, "OPENAI_API_KEY")

	_, err = NewChatClient(ctx, LLMConfig{Backend: "gemini"})
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}

func newFakeOpenAI(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model       string  `json:"model"`
			Temperature float32 `json:"temperature"`
			Messages    []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.InDelta(t, 0.3, req.Temperature, 1e-6)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": content},
			}},
		})
	}))
}

func TestOpenAIChatClient_Complete(t *testing.T) {
	srv := newFakeOpenAI(t, "Enjoy Goa!")
	defer srv.Close()

	c, err := NewOpenAIChatClient("test-key", "", srv.URL+"/v1", 0.3)
	require.NoError(t, err)

	got, err := c.Complete(context.Background(), "summarise my trip")
	require.NoError(t, err)
	assert.Equal(t, "Enjoy Goa!", got)
	assert.Equal(t, BackendOpenAI, c.Backend())
}

func TestOpenAIChatClient_EmptyReply(t *testing.T) {
	srv := newFakeOpenAI(t, "  ")
	defer srv.Close()

	c, err := NewOpenAIChatClient("test-key", "", srv.URL+"/v1", 0.3)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "hi")
	assert.True(t, errors.Is(err, ErrUnexpectedBehaviorOfAI))
}
