package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyager/internal/models/request_models"
	"voyager/internal/services"
	"voyager/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
	log         *zap.Logger
}

func NewTripController(tripService services.TripServiceInterface, log *zap.Logger) *TripController {
	return &TripController{
		tripService: tripService,
		log:         log,
	}
}

func bindText(c *gin.Context) (string, bool) {
	var req request_models.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return "", false
	}
	return req.Text, true
}

// GET /nlu/parse?text=
func (t *TripController) ParseHandler(c *gin.Context) {
	res, err := t.tripService.Parse(c.Query("text"))
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, res, "Text parsed successfully")
}

// POST /plan
func (t *TripController) PlanHandler(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}
	out, err := t.tripService.Plan(c.Request.Context(), text)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	message := "Travel plan created successfully"
	if !out.Plan.Ready() {
		message = out.Plan.Ask
	}
	utils.RespondSuccess(c, out, message)
}

// POST /chat
func (t *TripController) ChatHandler(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}
	out, err := t.tripService.Chat(c.Request.Context(), text)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	utils.RespondSuccess(c, out, "Reply generated")
}

// POST /plan/export?format=markdown|pdf
func (t *TripController) ExportHandler(c *gin.Context) {
	var query request_models.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	text, ok := bindText(c)
	if !ok {
		return
	}
	doc, err := t.tripService.Export(c.Request.Context(), text, query.Format)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
