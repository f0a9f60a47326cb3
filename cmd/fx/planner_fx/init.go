package planner_fx

import (
	"time"

	"go.uber.org/fx"

	"voyager/internal/config"
	"voyager/internal/nlu"
	"voyager/internal/planner"
	"voyager/internal/services"
)

var Module = fx.Provide(
	provideParser,
	providePlanner)

func provideParser() *nlu.Parser {
	return nlu.NewParser(time.Now)
}

// The planner reads the live catalog snapshot, so reloads apply to the
// next plan without rebuilding it.
func providePlanner(cfg config.Config, catalog services.CatalogServiceInterface) (*planner.Planner, error) {
	tables, err := planner.LoadTables(cfg.PlannerTablesFile)
	if err != nil {
		return nil, err
	}
	return planner.New(catalog.Store(), tables)
}
