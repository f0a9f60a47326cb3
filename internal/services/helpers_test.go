package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voyager/internal/catalog"
	"voyager/internal/models/db_models"
	"voyager/internal/nlu"
	"voyager/internal/planner"
	"voyager/internal/telemetry"
	"voyager/pkg/memcache"
	"voyager/pkg/utils"
)

const goaRequest = "Plan a 3-day trip to Goa from Mumbai under ₹20000 in October with beaches and nightlife."

func fixedNow() time.Time {
	return time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
}

func goaPlan(t *testing.T) planner.Plan {
	t.Helper()
	p, err := planner.New(catalog.Default(), planner.DefaultTables(), planner.WithClock(fixedNow))
	require.NoError(t, err)
	plan := p.Plan(nlu.NewParser(fixedNow).Parse(goaRequest).Entities)
	require.True(t, plan.Ready())
	return plan
}

type failingChat struct{ calls int }

func (f *failingChat) Complete(context.Context, string) (string, error) {
	f.calls++
	return "", errors.New("upstream unavailable")
}

func (f *failingChat) Backend() string { return utils.BackendOpenAI }

type echoChat struct{ prompts []string }

func (e *echoChat) Complete(_ context.Context, prompt string) (string, error) {
	e.prompts = append(e.prompts, prompt)
	return "summary: " + prompt[:20], nil
}

func (e *echoChat) Backend() string { return utils.BackendGemini }

// fakePOIRepo keeps rows in memory in insertion order.
type fakePOIRepo struct {
	rows     []db_models.CatalogPOI
	listErr  error
	writeErr error
	replaced int
}

func (f *fakePOIRepo) ListAll(context.Context) ([]db_models.CatalogPOI, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]db_models.CatalogPOI(nil), f.rows...), nil
}

func (f *fakePOIRepo) ReplaceAll(_ context.Context, rows []db_models.CatalogPOI) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.replaced++
	f.rows = append([]db_models.CatalogPOI(nil), rows...)
	return nil
}

func (f *fakePOIRepo) Count(context.Context) (int64, error) {
	if f.listErr != nil {
		return 0, f.listErr
	}
	return int64(len(f.rows)), nil
}

func newTripService(t *testing.T, chat utils.ChatClient) (TripServiceInterface, *telemetry.Metrics) {
	t.Helper()
	log := zap.NewNop()
	metrics := telemetry.NewMetrics()
	p, err := planner.New(catalog.Default(), planner.DefaultTables(), planner.WithClock(fixedNow))
	require.NoError(t, err)
	svc := NewTripService(
		nlu.NewParser(fixedNow),
		p,
		NewSummaryService(chat, log, metrics),
		NewExportService(log),
		NewToolsService(memcache.NewMemoryStore(), log),
		log,
		metrics,
	)
	return svc, metrics
}
