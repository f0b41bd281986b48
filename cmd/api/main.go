package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jobtracker-api/internal/auth"
	"jobtracker-api/internal/database"
	"jobtracker-api/internal/extract"
	"jobtracker-api/internal/handlers"
	"jobtracker-api/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	ctx := context.Background()

	// 2. Database Connection (only /submit depends on it)
	db, err := database.Connect()
	if err != nil {
		log.Printf("⚠️  Database unavailable, /submit will be degraded: %v", err)
	}

	// 3. Semantic inference capability: loaded once, read-only for the
	// life of the process. Without it the parse endpoints return 503.
	var inferencer extract.Inferencer
	llmService, err := services.NewLLMService(ctx)
	if err != nil {
		log.Printf("⚠️  LLM unavailable, parse endpoints will return 503: %v", err)
	} else {
		inferencer = llmService
		log.Println("✅ Gemini client ready.")
	}

	// 4. Core pipeline and services
	pipeline := extract.NewPipeline(inferencer)
	appService := services.NewApplicationService(db)
	jobHandler := handlers.NewJobHandler(pipeline, appService)

	// 5. Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// 6. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/parse", jobHandler.ParseText)
		api.POST("/parse-link", jobHandler.ParseLink)
		api.POST("/submit", auth.RequireUser(os.Getenv("JWT_SECRET")), jobHandler.Submit)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server starting on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
