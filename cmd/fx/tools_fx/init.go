package tools_fx

import (
	"go.uber.org/fx"

	"voyager/internal/services"
)

var Module = fx.Provide(
	services.NewToolsService,
	services.NewExportService,
	services.NewTripService)
