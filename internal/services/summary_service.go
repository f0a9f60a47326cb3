package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"voyager/internal/planner"
	"voyager/internal/telemetry"
	"voyager/pkg/utils"
)

type SummaryServiceInterface interface {
	// Summarize phrases an ok plan for a human reader.
	Summarize(ctx context.Context, plan planner.Plan) (string, error)
	// Reply answers free text that is not a trip request.
	Reply(ctx context.Context, text string) string
	Backend() string
}

// SummaryService wraps the configured chat backend. Backend failures fall
// back to the stub reply so a plan is never lost to a model outage.
type SummaryService struct {
	client   utils.ChatClient
	fallback utils.ChatClient
	log      *zap.Logger
	metrics  *telemetry.Metrics
}

func NewSummaryService(client utils.ChatClient, log *zap.Logger, metrics *telemetry.Metrics) SummaryServiceInterface {
	if client == nil {
		client = utils.NewStubChatClient()
	}
	return &SummaryService{
		client:   client,
		fallback: utils.NewStubChatClient(),
		log:      log,
		metrics:  metrics,
	}
}

func (s *SummaryService) Backend() string {
	return s.client.Backend()
}

func (s *SummaryService) Summarize(ctx context.Context, plan planner.Plan) (string, error) {
	if !plan.Ready() || plan.Summary == nil {
		return "", utils.ErrPlanNotReady
	}
	return s.complete(ctx, SummaryPrompt(plan)), nil
}

func (s *SummaryService) Reply(ctx context.Context, text string) string {
	return s.complete(ctx, text)
}

func (s *SummaryService) complete(ctx context.Context, prompt string) string {
	out, err := s.client.Complete(ctx, prompt)
	if err == nil {
		return out
	}
	s.log.Warn("LLM backend failed, using stub reply",
		zap.String("backend", s.client.Backend()),
		zap.Error(err))
	if s.metrics != nil {
		s.metrics.SummaryFallback.Inc()
	}
	out, _ = s.fallback.Complete(ctx, prompt)
	return out
}

// SummaryPrompt describes the plan in a few plain lines for the model.
func SummaryPrompt(plan planner.Plan) string {
	sum := plan.Summary
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short, friendly summary of this %d-day trip to %s", sum.NDays, sum.Destination)
	if sum.Origin != "" {
		fmt.Fprintf(&b, " from %s", sum.Origin)
	}
	fmt.Fprintf(&b, " (%s to %s). Stay tier: %s. %s\n", sum.StartDate, sum.EndDate, sum.StayTier, sum.Notes)
	for i, day := range plan.Days {
		var names []string
		for _, item := range day.Items {
			if item.Kind == planner.BlockVisit {
				names = append(names, item.Name)
			}
		}
		if len(names) == 0 {
			names = []string{"free day"}
		}
		fmt.Fprintf(&b, "Day %d (%s): %s\n", i+1, day.Date, strings.Join(names, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
