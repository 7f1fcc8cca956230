package main

import (
	"log"
	"os"

	"travel-concierge/api/db"
	"travel-concierge/api/handlers"
	"travel-concierge/api/kafka"
	"travel-concierge/api/logger"
	"travel-concierge/api/middleware"
	"travel-concierge/api/mongodb"
	"travel-concierge/api/reasoning"
	"travel-concierge/api/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	if err := logger.Init(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

func main() {
	defer logger.Sync()

	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"}) // Only trust local proxies

	router.Use(middleware.CorsMiddleware)

	// Initialize databases and infra
	if err := db.InitDB(); err != nil {
		log.Fatalf("Failed to initialize Postgres: %v", err)
	}
	defer db.CloseDB()

	if err := mongodb.InitMongoDB(); err != nil {
		log.Fatalf("Failed to initialize MongoDB: %v", err)
	}
	defer mongodb.CloseMongoDB()

	if err := reasoning.InitClient(); err != nil {
		log.Fatalf("Failed to initialize reasoning engine client: %v", err)
	}

	if err := kafka.InitProducer(); err != nil {
		log.Fatalf("Failed to initialize Kafka producer: %v", err)
	}

	pool := worker.NewWorkerPool(6)
	pool.Start()
	defer pool.Stop()

	if err := kafka.StartEventConsumer(pool); err != nil {
		log.Fatalf("Failed to start Kafka consumer: %v", err)
	}

	// SSE subscription authenticates via token query param, outside the
	// bearer-auth group
	router.GET("/api/sessions/:id/events", handlers.HandleSSE)

	// Runtime → service tool callbacks, API-key authenticated
	internal := router.Group("/api/agents", middleware.MicroserviceAuthMiddleware)
	{
		internal.POST("/:name/tools/:tool", handlers.HandleInvokeTool)
	}

	// Worker pool metrics
	router.GET("/metrics", gin.WrapF(pool.MetricsHandler))

	// API routes
	api := router.Group("/api", middleware.AuthMiddleware)
	{
		api.GET("/agents", handlers.HandleListAgents)
		api.GET("/agents/:name", handlers.HandleGetAgent)

		api.POST("/sessions", handlers.HandleCreateSession)
		api.GET("/sessions", handlers.HandleGetSessions)
		api.DELETE("/sessions/:id", handlers.HandleDeleteSession)
		api.POST("/sessions/:id/stream", handlers.HandleStreamQuery)

		api.GET("/expense/apps", handlers.HandleListApps)
		api.POST("/expense/run", handlers.HandleRun)
		api.POST("/expense/run_sse", handlers.HandleRunSSE)
		api.GET("/expense/dashboard", handlers.HandleDashboard)
		api.GET("/expense/dashboard/range", handlers.HandleDashboardRange)

		api.GET("/itinerary", handlers.HandleGetItinerary)
		api.PUT("/itinerary", handlers.HandleSaveItinerary)
		api.DELETE("/itinerary", handlers.HandleDeleteItinerary)

		// WebSocket route
		api.GET("/ws", handlers.HandleCreateWebsocketConnection)
		api.POST("/ws/close", handlers.HandleCloseWebsocketConnection)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
