package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voyager/internal/planner"
	"voyager/internal/telemetry"
	"voyager/pkg/utils"
)

func TestSummaryPrompt(t *testing.T) {
	prompt := SummaryPrompt(goaPlan(t))
	lines := strings.Split(prompt, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "Write a short, friendly summary of this 3-day trip to Goa from Mumbai "+
		"(2026-03-01 to 2026-03-03). Stay tier: mid. Estimated total ~₹21000 vs your budget ₹20000.", lines[0])
	assert.Equal(t, "Day 1 (2026-03-01): Baga Beach, Tito's Lane, Dudhsagar Falls, Fontainhas", lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "Day 3 (2026-03-03): "))
}

func TestSummaryService_Summarize(t *testing.T) {
	chat := &echoChat{}
	svc := NewSummaryService(chat, zap.NewNop(), nil)

	out, err := svc.Summarize(context.Background(), goaPlan(t))
	require.NoError(t, err)
	assert.Equal(t, "summary: Write a short, frien", out)
	assert.Len(t, chat.prompts, 1)
	assert.Equal(t, utils.BackendGemini, svc.Backend())
}

func TestSummaryService_NotReady(t *testing.T) {
	svc := NewSummaryService(nil, zap.NewNop(), nil)

	_, err := svc.Summarize(context.Background(), planner.Plan{Status: planner.StatusNeedInfo, Ask: "?"})
	assert.True(t, errors.Is(err, utils.ErrPlanNotReady))
	assert.Equal(t, utils.BackendStub, svc.Backend())
}

func TestSummaryService_FallsBackToStub(t *testing.T) {
	chat := &failingChat{}
	metrics := telemetry.NewMetrics()
	svc := NewSummaryService(chat, zap.NewNop(), metrics)

	out := svc.Reply(context.Background(), "is Bali visa-free?")
	assert.Equal(t, "[STUB] You asked: is Bali visa-free?\nThis is a simulated response.", out)
	assert.Equal(t, 1, chat.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SummaryFallback))

	out, err := svc.Summarize(context.Background(), goaPlan(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[STUB] You asked: Write a short"))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.SummaryFallback))
}
