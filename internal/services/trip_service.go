package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"voyager/internal/models/response_models"
	"voyager/internal/nlu"
	"voyager/internal/planner"
	"voyager/internal/telemetry"
	"voyager/pkg/utils"
)

type TripServiceInterface interface {
	Parse(text string) (nlu.Result, error)
	Plan(ctx context.Context, text string) (response_models.PlanResponse, error)
	Chat(ctx context.Context, text string) (response_models.ChatResponse, error)
	Export(ctx context.Context, text, format string) (Document, error)
}

// TripService runs text through the parser and planner and decorates the
// result with travel context, a phrased summary or an export.
type TripService struct {
	parser  *nlu.Parser
	planner *planner.Planner
	summary SummaryServiceInterface
	export  ExportServiceInterface
	tools   ToolsServiceInterface
	log     *zap.Logger
	metrics *telemetry.Metrics
}

func NewTripService(
	parser *nlu.Parser,
	plan *planner.Planner,
	summary SummaryServiceInterface,
	export ExportServiceInterface,
	tools ToolsServiceInterface,
	log *zap.Logger,
	metrics *telemetry.Metrics,
) TripServiceInterface {
	return &TripService{
		parser:  parser,
		planner: plan,
		summary: summary,
		export:  export,
		tools:   tools,
		log:     log,
		metrics: metrics,
	}
}

func requireText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text required", utils.ErrInvalidInput)
	}
	return nil
}

func (t *TripService) Parse(text string) (nlu.Result, error) {
	if err := requireText(text); err != nil {
		return nlu.Result{}, err
	}
	res := t.parser.Parse(text)
	if t.metrics != nil {
		t.metrics.Intents.WithLabelValues(string(res.Intent)).Inc()
	}
	return res, nil
}

func (t *TripService) buildPlan(res nlu.Result) planner.Plan {
	plan := t.planner.Plan(res.Entities)
	if t.metrics != nil {
		t.metrics.Plans.WithLabelValues(string(plan.Status)).Inc()
	}
	t.log.Info("Plan built",
		zap.String("intent", string(res.Intent)),
		zap.String("status", string(plan.Status)),
		zap.String("destination", res.Entities.Destination))
	return plan
}

func (t *TripService) Plan(ctx context.Context, text string) (response_models.PlanResponse, error) {
	res, err := t.Parse(text)
	if err != nil {
		return response_models.PlanResponse{}, err
	}
	out := response_models.PlanResponse{NLU: res, Plan: t.buildPlan(res)}
	if out.Plan.Ready() {
		out.Route, out.Weather = t.travelContext(ctx, out.Plan)
	}
	return out, nil
}

// travelContext is best effort: unknown places or tool errors leave the
// fields empty.
func (t *TripService) travelContext(ctx context.Context, plan planner.Plan) (*response_models.RouteEstimate, *response_models.Forecast) {
	sum := plan.Summary
	var route *response_models.RouteEstimate
	if sum.Origin != "" {
		r, err := t.tools.RouteBetween(ctx, sum.Origin, sum.Destination)
		if err != nil {
			t.log.Warn("Route lookup failed", zap.Error(err))
		}
		route = r
	}

	var weather *response_models.Forecast
	at, err := t.tools.Geocode(ctx, sum.Destination)
	if err != nil {
		t.log.Warn("Geocode failed", zap.Error(err))
	}
	if at != nil {
		f, err := t.tools.Weather(ctx, *at, sum.StartDate.String(), sum.EndDate.String())
		if err != nil {
			t.log.Warn("Weather lookup failed", zap.Error(err))
		} else {
			weather = &f
		}
	}
	return route, weather
}

// Chat plans trip requests and hands every other intent to the language
// model. need_info plans answer with their clarifying question.
func (t *TripService) Chat(ctx context.Context, text string) (response_models.ChatResponse, error) {
	res, err := t.Parse(text)
	if err != nil {
		return response_models.ChatResponse{}, err
	}
	if res.Intent != nlu.IntentPlanTrip {
		return response_models.ChatResponse{NLU: res, Assistant: t.summary.Reply(ctx, text)}, nil
	}

	plan := t.buildPlan(res)
	out := response_models.ChatResponse{NLU: res, Plan: &plan}
	if !plan.Ready() {
		out.Assistant = plan.Ask
		return out, nil
	}
	out.Assistant, err = t.summary.Summarize(ctx, plan)
	if err != nil {
		return response_models.ChatResponse{}, err
	}
	return out, nil
}

func (t *TripService) Export(ctx context.Context, text, format string) (Document, error) {
	res, err := t.Parse(text)
	if err != nil {
		return Document{}, err
	}
	plan := t.buildPlan(res)
	if !plan.Ready() {
		return Document{}, fmt.Errorf("%w: %s", utils.ErrPlanNotReady, plan.Ask)
	}
	return t.export.Render(plan, format)
}
