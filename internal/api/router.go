// Package api assembles the gin engine: middleware, controllers and routes.
package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyager/internal/api/controllers"
	"voyager/internal/config"
	"voyager/internal/telemetry"
	"voyager/pkg/middleware"
)

type Controllers struct {
	Trip   *controllers.TripController
	POIs   *controllers.POIsController
	Tools  *controllers.ToolsController
	Health *controllers.HealthController
}

func NewRouter(cfg config.Config, log *zap.Logger, metrics *telemetry.Metrics, ctl Controllers) *gin.Engine {
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r, ctl)
	return r
}

func RegisterRoutes(r *gin.Engine, ctl Controllers) {
	r.GET("/", ctl.Health.HealthHandler)
	r.GET("/metrics", ctl.Health.MetricsHandler())

	r.GET("/nlu/parse", ctl.Trip.ParseHandler)
	r.POST("/plan", ctl.Trip.PlanHandler)
	r.POST("/plan/export", ctl.Trip.ExportHandler)
	r.POST("/chat", ctl.Trip.ChatHandler)

	r.GET("/pois/:city", ctl.POIs.GetCityPOIsHandler)
	r.GET("/cities", ctl.POIs.ListCitiesHandler)
	r.GET("/interests", ctl.POIs.ListInterestsHandler)

	toolsGroup := r.Group("/tools")
	toolsGroup.GET("/geocode", ctl.Tools.GeocodeHandler)
	toolsGroup.GET("/route", ctl.Tools.RouteHandler)
	toolsGroup.GET("/weather", ctl.Tools.WeatherHandler)
	toolsGroup.GET("/fx", ctl.Tools.ConvertCurrencyHandler)
	toolsGroup.GET("/country", ctl.Tools.CountryHandler)
	toolsGroup.GET("/holidays", ctl.Tools.HolidaysHandler)
}
