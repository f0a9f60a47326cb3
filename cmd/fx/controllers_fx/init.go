package controllers_fx

import (
	"go.uber.org/fx"

	"voyager/internal/api"
	"voyager/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewPOIsController),
	fx.Provide(controllers.NewToolsController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(provideControllers),
	fx.Provide(api.NewRouter))

func provideControllers(
	trip *controllers.TripController,
	pois *controllers.POIsController,
	tools *controllers.ToolsController,
	health *controllers.HealthController,
) api.Controllers {
	return api.Controllers{Trip: trip, POIs: pois, Tools: tools, Health: health}
}
