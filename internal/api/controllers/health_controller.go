package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"voyager/internal/models/response_models"
	"voyager/internal/services"
	"voyager/internal/telemetry"
	"voyager/pkg/utils"
)

const serviceName = "voyager"

type HealthController struct {
	catalogService services.CatalogServiceInterface
	summaryService services.SummaryServiceInterface
	metrics        *telemetry.Metrics
}

func NewHealthController(
	catalogService services.CatalogServiceInterface,
	summaryService services.SummaryServiceInterface,
	metrics *telemetry.Metrics,
) *HealthController {
	return &HealthController{
		catalogService: catalogService,
		summaryService: summaryService,
		metrics:        metrics,
	}
}

// GET /
func (h *HealthController) HealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, response_models.Health{
		Service:    serviceName,
		Status:     "ok",
		LLMBackend: h.summaryService.Backend(),
		Cities:     len(h.catalogService.Cities()),
	}, "")
}

// GET /metrics
func (h *HealthController) MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(h.metrics.Registry, promhttp.HandlerOpts{}))
}
