package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fitness-chatbot/api/handlers"
	_ "fitness-chatbot/docs"
	"fitness-chatbot/services"
	"fitness-chatbot/speech"
)

// New builds the chat API engine. ping may be nil when the configured
// store has no reachable backend to check (memory store).
func New(svc *services.ChatService, transcriber speech.Transcriber, ping func(ctx context.Context) error) *gin.Engine {
	r := gin.Default()

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "down", "error": err.Error()})
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
		api.POST("/sessions", handlers.CreateSessionHandler())
		api.GET("/sessions/:id/messages", handlers.ListMessagesHandler(svc))
		api.POST("/chat", handlers.ChatHandler(svc))
		api.POST("/chat/speech", handlers.SpeechChatHandler(svc, transcriber))
	}

	return r
}
