package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/skillnet/skillnet-api/internal/config"
	"github.com/skillnet/skillnet-api/internal/constants"
	"github.com/skillnet/skillnet-api/internal/database"
	"github.com/skillnet/skillnet-api/internal/handlers"
	"github.com/skillnet/skillnet-api/internal/middleware"
	"github.com/skillnet/skillnet-api/internal/repository"
	"github.com/skillnet/skillnet-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Initialize AI service
	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	// Initialize services
	authService := services.NewAuthService(userRepo)
	skillService := services.NewSkillService(skillRepo, userRepo, aiService)
	requestService := services.NewRequestService(requestRepo, userRepo)
	messageService := services.NewMessageService(messageRepo, requestService)
	ratingService := services.NewRatingService(ratingRepo, userRepo, requestService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userRepo, authService, skillService, ratingService)
	skillHandler := handlers.NewSkillHandler(skillService)
	requestHandler := handlers.NewRequestHandler(requestService)
	messageHandler := handlers.NewMessageHandler(messageService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	aiHandler := handlers.NewAIHandler(skillService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "SkillNet API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/verify-email", authHandler.VerifyEmail)
			auth.POST("/request-password-reset", authHandler.RequestPasswordReset)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// User discovery and profile routes (protected)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth())
		{
			users.GET("", userHandler.ListUsers)
			users.PATCH("/me", userHandler.UpdateProfile)
			users.POST("/me/password", authHandler.ChangePassword)
			users.POST("/me/skills", skillHandler.AddUserSkill)
			users.DELETE("/me/skills/:skillId", skillHandler.RemoveUserSkill)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/skills", skillHandler.ListUserSkills)
			users.GET("/:id/ratings", ratingHandler.ListRatings)
		}

		// Skill catalog routes (protected)
		skills := api.Group("/skills")
		skills.Use(middleware.RequireAuth())
		{
			skills.GET("", skillHandler.ListSkills)
			skills.POST("", skillHandler.CreateSkill)
			skills.DELETE("/:id", skillHandler.DeleteSkill)
		}

		// Connection request routes (protected)
		requests := api.Group("/requests")
		requests.Use(middleware.RequireAuth())
		{
			requests.GET("", requestHandler.ListRequests)
			requests.POST("", requestHandler.CreateRequest)
			requests.POST("/:id/respond", requestHandler.RespondToRequest)
			requests.POST("/:id/cancel", requestHandler.CancelRequest)
			requests.DELETE("/:id", requestHandler.DeleteRequest)
		}
		api.GET("/connections", middleware.RequireAuth(), requestHandler.ListConnections)

		// Messaging routes (protected)
		messages := api.Group("/messages")
		messages.Use(middleware.RequireAuth())
		{
			messages.GET("", messageHandler.GetConversation)
			messages.POST("", messageHandler.SendMessage)
			messages.POST("/read", messageHandler.MarkRead)
			messages.GET("/unread-count", messageHandler.UnreadCount)
		}

		// Rating routes (protected)
		api.POST("/ratings", middleware.RequireAuth(), ratingHandler.CreateRating)

		// AI routes (protected)
		ai := api.Group("/ai")
		ai.Use(middleware.RequireAuth())
		{
			ai.POST("/extract-skills", aiHandler.ExtractSkills)
			ai.GET("/recommendations", aiHandler.Recommendations)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
