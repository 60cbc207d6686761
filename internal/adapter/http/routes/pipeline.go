package routes

import (
	"crm_pipeline/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPipeline = "/organizations/:organization_id/pipeline"
	PathStages   = "/stages"
)

func addPipelineRoutes(rg *gin.RouterGroup, pipelineHandler *handlers.PipelineHandler) {
	rg.GET(PathStages, handlers.ListStages)

	p := rg.Group(PathPipeline)
	{
		p.GET("", pipelineHandler.GetView)
		p.GET("/items", pipelineHandler.GetItems)
		p.GET("/metrics", pipelineHandler.GetMetrics)
		p.GET("/stages", pipelineHandler.GetStageGroups)
		p.GET("/kanban", pipelineHandler.GetKanban)
		p.GET("/table", pipelineHandler.GetTable)
		p.GET("/split", pipelineHandler.GetSplit)
		p.GET("/status", pipelineHandler.GetStatus)
		p.POST("/refresh", pipelineHandler.Refresh)
	}
}
