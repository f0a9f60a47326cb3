package summary_fx

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyager/internal/config"
	"voyager/internal/services"
	"voyager/pkg/utils"
)

const summaryTemperature = 0.3

var Module = fx.Provide(
	provideChatClient,
	services.NewSummaryService)

// provideChatClient builds the backend named by LLM_BACKEND. A backend that
// cannot be built fails startup instead of silently using the stub.
func provideChatClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (utils.ChatClient, error) {
	client, err := utils.NewChatClient(context.Background(), utils.LLMConfig{
		Backend:     cfg.LLMBackend,
		OpenAIKey:   cfg.OpenAIKey,
		OpenAIModel: cfg.OpenAIModel,
		OpenAIURL:   cfg.OpenAIURL,
		GeminiKey:   cfg.GeminiKey,
		GeminiModel: cfg.GeminiModel,
		Temperature: summaryTemperature,
	})
	if err != nil {
		return nil, err
	}
	if closer, ok := client.(io.Closer); ok {
		lc.Append(fx.StopHook(closer.Close))
	}
	log.Info("LLM backend ready", zap.String("backend", client.Backend()))
	return client, nil
}
