package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyager/internal/nlu"
	"voyager/internal/services"
	"voyager/pkg/utils"
)

type POIsController struct {
	catalogService services.CatalogServiceInterface
}

func NewPOIsController(catalogService services.CatalogServiceInterface) *POIsController {
	return &POIsController{
		catalogService: catalogService,
	}
}

// GET /pois/:city?interests=beach,food
func (p *POIsController) GetCityPOIsHandler(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	pois := p.catalogService.RankedPOIs(city, utils.SplitCSV(c.Query("interests")))
	utils.RespondSuccess(c, pois, "POIs fetched successfully")
}

func (p *POIsController) ListCitiesHandler(c *gin.Context) {
	utils.RespondSuccess(c, p.catalogService.Cities(), "Fetched cities successfully")
}

func (p *POIsController) ListInterestsHandler(c *gin.Context) {
	utils.RespondSuccess(c, nlu.Vocabulary(), "Fetched interests successfully")
}
