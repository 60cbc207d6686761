package handlers

import (
	"net/http"

	response "crm_pipeline/internal/adapter/http/dto/response"
	"crm_pipeline/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// Ping answers liveness probes
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// ListStages returns the funnel stages in display order
// @Summary Stage table
// @Tags system
// @Produce json
// @Success 200 {array} response.StageResponse
// @Router /stages [get]
func ListStages(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStageDefinitions(entities.Stages))
}
