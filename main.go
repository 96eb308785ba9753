package main

import (
	"log"

	"github.com/Ofranc1208/ScrubbingSheet/config"
	"github.com/Ofranc1208/ScrubbingSheet/handler"
	"github.com/Ofranc1208/ScrubbingSheet/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize service layer
	scrubService := service.NewScrubService()

	// Initialize handler layer
	scrubHandler := handler.NewScrubHandler(scrubService, cfg.MaxPasteSize)

	// Setup Gin router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "ScrubbingSheet Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		scrub := api.Group("/scrub")
		{
			scrub.POST("/extract", scrubHandler.Extract)
			scrub.POST("/validate", scrubHandler.Validate)
			scrub.POST("/preview", scrubHandler.Preview)
		}
	}

	// Start server
	log.Printf("Starting ScrubbingSheet Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
