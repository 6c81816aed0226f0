package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/logger"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/server/handlers/problem"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	problemHandler *problem.ProblemHandler,
	log logger.Logger,
) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "riskboard",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		problems := v1.Group("/problems")
		{
			problems.GET("", problemHandler.List)
			problems.GET("/delta", problemHandler.Delta)
			problems.GET("/:id/link", problemHandler.DrilldownLink)
			problems.POST("/refresh", problemHandler.Refresh)
		}

		v1.GET("/drilldown", problemHandler.Drilldown)
		v1.GET("/workbench", problemHandler.Workbench)
		v1.GET("/feeds/status", problemHandler.Status)
	}

	return r
}
