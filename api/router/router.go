package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"conmates/api/handlers"
	"conmates/api/middleware"
	"conmates/db"
	_ "conmates/docs"
	"conmates/services"
)

// Deps carries the wired services the router exposes.
type Deps struct {
	Suggestions *services.SuggestionService
	Analysis    *services.AnalysisService
	Resources   *services.ResourceService
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if client := db.Client(); client != nil {
			if err := client.Ping(c.Request.Context(), readpref.Primary()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/chat/suggestions", handlers.SuggestChatFollowupsHandler(deps.Suggestions))

		api.POST("/lease/analyze", handlers.AnalyzeLeaseHandler(deps.Analysis))
		api.GET("/lease/analysis", handlers.GetLeaseAnalysisHandler(deps.Analysis))

		api.GET("/resources", handlers.ListResourcesHandler(deps.Resources))
		api.POST("/resources/:id/view", handlers.IncrementResourceViewCountHandler(deps.Resources))
	}

	return r
}
