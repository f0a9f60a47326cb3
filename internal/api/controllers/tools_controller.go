package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyager/internal/services"
	"voyager/pkg/utils"
)

type ToolsController struct {
	toolsService services.ToolsServiceInterface
	log          *zap.Logger
}

func NewToolsController(toolsService services.ToolsServiceInterface, log *zap.Logger) *ToolsController {
	return &ToolsController{
		toolsService: toolsService,
		log:          log,
	}
}

// GET /tools/geocode?city=
func (t *ToolsController) GeocodeHandler(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "city is required")
		return
	}
	p, err := t.toolsService.Geocode(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	if p == nil {
		utils.RespondError(c, http.StatusNotFound, "Unknown city")
		return
	}
	utils.RespondSuccess(c, p, "Geocoded successfully")
}

// GET /tools/route?from=&to=
func (t *ToolsController) RouteHandler(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		utils.RespondError(c, http.StatusBadRequest, "from and to are required")
		return
	}
	r, err := t.toolsService.RouteBetween(c.Request.Context(), from, to)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	if r == nil {
		utils.RespondError(c, http.StatusNotFound, "Unknown city")
		return
	}
	utils.RespondSuccess(c, r, "Route estimated successfully")
}

// GET /tools/weather?city=&start=&end=
func (t *ToolsController) WeatherHandler(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "city is required")
		return
	}
	ctx := c.Request.Context()
	at, err := t.toolsService.Geocode(ctx, city)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	if at == nil {
		utils.RespondError(c, http.StatusNotFound, "Unknown city")
		return
	}
	f, err := t.toolsService.Weather(ctx, *at, c.Query("start"), c.Query("end"))
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, f, "Forecast fetched successfully")
}

// GET /tools/fx?amount=&from=&to=
func (t *ToolsController) ConvertCurrencyHandler(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.DefaultQuery("amount", "1"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid amount")
		return
	}
	from, to := c.Query("from"), c.DefaultQuery("to", "INR")
	if from == "" {
		utils.RespondError(c, http.StatusBadRequest, "from is required")
		return
	}
	conv, err := t.toolsService.ConvertCurrency(c.Request.Context(), amount, from, to)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, conv, "Converted successfully")
}

// GET /tools/country?name=
func (t *ToolsController) CountryHandler(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}
	info, err := t.toolsService.CountryInfo(c.Request.Context(), name)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, info, "Country fetched successfully")
}

// GET /tools/holidays?country=&year=
func (t *ToolsController) HolidaysHandler(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		utils.RespondError(c, http.StatusBadRequest, "country is required")
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid year")
		return
	}
	days, err := t.toolsService.PublicHolidays(c.Request.Context(), country, year)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, days, "Holidays fetched successfully")
}
